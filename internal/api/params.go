package api

import (
	"fmt"

	"github.com/oapi-codegen/runtime"
)

// BindIDPathParam はパスパラメータ（simpleスタイル）を正の整数IDとしてバインドします。
func BindIDPathParam(name, value string) (uint, error) {
	var id uint
	err := runtime.BindStyledParameterWithOptions("simple", name, value, &id, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	})
	if err != nil {
		return 0, fmt.Errorf("invalid format for parameter %s: %w", name, err)
	}
	if id == 0 {
		return 0, fmt.Errorf("invalid format for parameter %s: must be positive", name)
	}
	return id, nil
}

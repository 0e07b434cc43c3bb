package api

// 型はapi/openapi.yamlから生成する。
//go:generate go tool oapi-codegen -config oapi-codegen.yaml ../../api/openapi.yaml

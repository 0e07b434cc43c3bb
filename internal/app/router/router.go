// Package router はHTTPルーティングを組み立てます。
package router

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	analysishandler "audience_backend/internal/feature/analysis/transport/handler"
	authhandler "audience_backend/internal/feature/auth/transport/handler"
	questionnairehandler "audience_backend/internal/feature/questionnaire/transport/handler"
	platformhandler "audience_backend/internal/platform/http/handler"
	"audience_backend/internal/platform/http/middleware"
	jwtmw "audience_backend/internal/platform/jwt"
)

// Handlers はルーターに登録するハンドラーの集合です。
type Handlers struct {
	Health        *platformhandler.HealthHandler
	Auth          *authhandler.AuthHandler
	Analysis      *analysishandler.AnalysisHandler
	Questionnaire *questionnairehandler.QuestionnaireHandler
}

// Config はルーター全体の設定です。
type Config struct {
	JWTSecret string
	// AllowOrigins が空の場合、CORSミドルウェアは登録しません。"*"のみなら全オリジンを許可します。
	AllowOrigins []string
}

// ParseOrigins はカンマ区切りのオリジン一覧を分解します。
func ParseOrigins(raw string) []string {
	var out []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

// NewRouter はミドルウェアとルートを登録したgin.Engineを返します。
func NewRouter(cfg Config, h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.RequestLogger(), gin.Recovery())

	if len(cfg.AllowOrigins) > 0 {
		corsCfg := cors.Config{
			AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.HeaderRequestID},
			ExposeHeaders: []string{"Content-Length", middleware.HeaderRequestID},
			MaxAge:        12 * time.Hour,
		}
		if len(cfg.AllowOrigins) == 1 && cfg.AllowOrigins[0] == "*" {
			corsCfg.AllowAllOrigins = true
		} else {
			corsCfg.AllowOrigins = cfg.AllowOrigins
		}
		r.Use(cors.New(corsCfg))
	}

	// 認証不要
	// 導通確認用
	r.GET("/healthz", h.Health.Live)
	r.HEAD("/healthz", h.Health.Live)
	r.OPTIONS("/healthz", h.Health.Live)
	r.GET("/readyz", h.Health.Ready)
	// 新規ユーザー登録
	r.POST("/signup", h.Auth.Signup)
	// ログイン（JWT 発行）
	r.POST("/login", h.Auth.Login)

	// 認証必須のルート
	v1 := r.Group("/v1")
	v1.Use(jwtmw.AuthRequired(cfg.JWTSecret))
	{
		v1.POST("/analyses", h.Analysis.Create)
		v1.GET("/analyses", h.Analysis.List)
		v1.GET("/analyses/:id", h.Analysis.Get)

		q := v1.Group("/questionnaire")
		q.GET("/questions", h.Questionnaire.Questions)
		q.GET("", h.Questionnaire.State)
		q.PUT("/answer", h.Questionnaire.Answer)
		q.POST("/next", h.Questionnaire.Next)
		q.POST("/previous", h.Questionnaire.Previous)
		q.DELETE("", h.Questionnaire.Reset)
	}

	return r
}

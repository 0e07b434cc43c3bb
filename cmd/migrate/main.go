// migrate はスキーマのマイグレーションだけを実行する一回限りのジョブです。
package main

import (
	"log"

	"github.com/joho/godotenv"

	analysisadapters "audience_backend/internal/feature/analysis/adapters"
	authentity "audience_backend/internal/feature/auth/domain/entity"
	"audience_backend/internal/platform/db"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}

	cfg := db.LoadConfigFromEnv()
	cfg.Migrate = true

	if _, err := db.OpenDB(cfg, &authentity.User{}, &analysisadapters.AnalysisModel{}); err != nil {
		log.Fatal(err)
	}
	log.Println("migrate ok")
}

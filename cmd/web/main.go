package main

import (
	"github.com/joho/godotenv"

	"jobtrack/internal/app"
)

func main() {
	// .env опционален: в проде конфигурация приходит из окружения
	_ = godotenv.Load()

	app.Run()
}

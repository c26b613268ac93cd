package main

import (
	"context"
	"log/slog"
	"os"

	"ai-image-studio/internal/server"

	"github.com/joho/godotenv"
)

func main() {
	// ローカル開発では .env から API キー等を読み込む。無ければそのまま進む。
	_ = godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))
	if err := server.Run(context.Background()); err != nil {
		slog.Error("Application failed", "error", err)
		os.Exit(1)
	}
}

package builder

import (
	"context"
	"fmt"
	"log/slog"

	"ai-image-studio/internal/config"
	"ai-image-studio/internal/gateway"
	"ai-image-studio/internal/imagesource"
	"ai-image-studio/internal/pipeline"

	"github.com/shouni/go-gemini-client/pkg/gemini"
	"github.com/shouni/go-http-kit/pkg/httpkit"
	"github.com/shouni/go-remote-io/pkg/gcsfactory"
	"github.com/shouni/go-remote-io/pkg/remoteio"
	"google.golang.org/genai"
)

// AppContext はアプリケーションの依存関係を保持します。
// 各フィールドをインターフェースで定義することで、将来的なモック利用を容易にします。
type AppContext struct {
	Config *config.Config

	// I/O and Storage
	IOFactory remoteio.IOFactory
	Reader    remoteio.InputReader

	// External Adapters
	AIClient   gemini.GenerativeModel
	HTTPClient httpkit.ClientInterface

	// Business Logic
	Gateway  *gateway.GeminiGateway
	Fetcher  *imagesource.Fetcher
	Pipeline *pipeline.GenerationPipeline
}

// BuildAppContext は外部サービスとの接続を確立し、依存関係を組み立てます。
func BuildAppContext(ctx context.Context, cfg *config.Config) (*AppContext, error) {
	// 1. 基盤クライアントの初期化
	httpClient := httpkit.New(cfg.HTTPTimeout)

	aiClient, err := initializeAIClient(ctx, cfg.GeminiAPIKey)
	if err != nil {
		return nil, err
	}

	// 2. I/O インフラ (GCS) の初期化。gs:// URL 取り込みの拡張機能であり、
	//    認証情報が無いローカル環境では無効化して続行する。
	var ioFactory remoteio.IOFactory
	var reader remoteio.InputReader
	if factory, ferr := gcsfactory.New(ctx); ferr != nil {
		slog.WarnContext(ctx, "GCSファクトリを初期化できないため gs:// の取り込みを無効化します", "error", ferr)
	} else {
		ioFactory = factory
		reader, err = factory.InputReader()
		if err != nil {
			return nil, fmt.Errorf("failed to create input reader: %w", err)
		}
	}

	// 3. ドメインコンポーネントの組み立て
	gw, err := gateway.NewGeminiGateway(aiClient, cfg.TextModel, cfg.ImageModel)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini gateway: %w", err)
	}

	fetcher, err := imagesource.NewFetcher(httpClient, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create image fetcher: %w", err)
	}

	pipe, err := pipeline.New(gw)
	if err != nil {
		return nil, fmt.Errorf("failed to create generation pipeline: %w", err)
	}

	return &AppContext{
		Config:     cfg,
		IOFactory:  ioFactory,
		Reader:     reader,
		AIClient:   aiClient,
		HTTPClient: httpClient,
		Gateway:    gw,
		Fetcher:    fetcher,
		Pipeline:   pipe,
	}, nil
}

// Close は、AppContextが保持するすべてのリソースを解放します。
func (a *AppContext) Close() {
	if a.IOFactory != nil {
		if err := a.IOFactory.Close(); err != nil {
			slog.Error("failed to close IOFactory", "error", err)
		}
	}
}

// initializeAIClient は gemini クライアントを初期化します。
func initializeAIClient(ctx context.Context, apiKey string) (gemini.GenerativeModel, error) {
	const defaultGeminiTemperature = float32(0.2)
	clientConfig := gemini.Config{
		APIKey:      apiKey,
		Temperature: genai.Ptr(defaultGeminiTemperature),
	}
	aiClient, err := gemini.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("AIクライアントの初期化に失敗しました: %w", err)
	}
	return aiClient, nil
}

package config

import (
	"os"
	"path"
	"time"

	"github.com/shouni/go-utils/envutil"
)

const (
	DefaultTextModel  = "gemini-2.5-flash"
	DefaultImageModel = "gemini-2.5-flash-image"
	// DefaultHTTPTimeout 画像生成や Gemini API の応答を考慮したタイムアウト
	DefaultHTTPTimeout = 60 * time.Second
	// DefaultMaxUploadBytes ブラウザからの元画像アップロードの上限 (10MiB)
	DefaultMaxUploadBytes = 10 << 20
)

// Config は環境変数から読み込まれたアプリケーションの全設定を保持します。
type Config struct {
	ServiceURL   string
	Port         string
	GeminiAPIKey string
	TextModel    string // 翻訳・画像解析用モデル
	ImageModel   string // 画像生成・編集用モデル

	HTTPTimeout     time.Duration
	MaxUploadBytes  int64
	TemplateDir     string // HTMLテンプレートの格納ディレクトリ
	ShutdownTimeout time.Duration
}

// LoadConfig は環境変数から設定を読み込み、Config 構造体を生成します。
func LoadConfig() *Config {
	// 実行環境（Cloud Run, ko）に応じたパスの解決
	baseDir := "."
	if os.Getenv("KO_DATA_PATH") != "" || os.Getenv("K_SERVICE") != "" {
		baseDir = "/app"
	}

	return &Config{
		ServiceURL:   envutil.GetEnv("SERVICE_URL", "http://localhost:8080"),
		Port:         envutil.GetEnv("PORT", "8080"),
		GeminiAPIKey: envutil.GetEnv("GEMINI_API_KEY", ""),
		TextModel:    envutil.GetEnv("GEMINI_TEXT_MODEL", DefaultTextModel),
		ImageModel:   envutil.GetEnv("GEMINI_IMAGE_MODEL", DefaultImageModel),

		HTTPTimeout:     DefaultHTTPTimeout,
		MaxUploadBytes:  DefaultMaxUploadBytes,
		TemplateDir:     path.Join(baseDir, "templates"),
		ShutdownTimeout: 15 * time.Second,
	}
}

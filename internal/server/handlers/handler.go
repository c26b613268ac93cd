package handlers

import (
	"context"
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"ai-image-studio/internal/config"
	"ai-image-studio/internal/domain"
)

const titleSuffix = " - AI Image Studio"

// Generator は生成オーケストレーターのハンドラー向けインターフェースです。
type Generator interface {
	Run(ctx context.Context, req domain.GenerationRequest) (*domain.GenerationResult, error)
	Progress() (running bool, percent int)
}

// ImageSource は元画像の取り込み窓口です。
type ImageSource interface {
	FromBytes(data []byte) (*domain.SourceImage, error)
	FromURL(ctx context.Context, rawURL string) (*domain.SourceImage, error)
}

// ImageDescriber は画像からプロンプトを逆生成する窓口です。
type ImageDescriber interface {
	DescribeImage(ctx context.Context, source *domain.SourceImage) (string, error)
}

type Handler struct {
	cfg           *config.Config
	templateCache map[string]*template.Template
	generator     Generator
	imageSource   ImageSource
	describer     ImageDescriber
}

// NewHandler は指定された構成に基づいて新しいハンドラーを初期化します。
// テンプレートをコンパイルし、レイアウトファイルが存在することを確認します。
func NewHandler(
	cfg *config.Config,
	generator Generator,
	imageSource ImageSource,
	describer ImageDescriber,
) (*Handler, error) {
	cache := make(map[string]*template.Template)
	layoutPath := filepath.Join(cfg.TemplateDir, "layout.html")
	if _, err := os.Stat(layoutPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("レイアウトテンプレートが見つかりません: %s", layoutPath)
	}

	pagePaths, err := filepath.Glob(filepath.Join(cfg.TemplateDir, "*.html"))
	if err != nil {
		return nil, fmt.Errorf("ページテンプレートの検索に失敗しました: %w", err)
	}

	for _, pagePath := range pagePaths {
		pageName := filepath.Base(pagePath)
		if pageName == "layout.html" {
			continue
		}

		tmpl, err := template.New(pageName).ParseFiles(layoutPath, pagePath)
		if err != nil {
			return nil, fmt.Errorf("テンプレート %s の解析に失敗しました: %w", pageName, err)
		}
		cache[pageName] = tmpl
	}

	return &Handler{
		cfg:           cfg,
		templateCache: cache,
		generator:     generator,
		imageSource:   imageSource,
		describer:     describer,
	}, nil
}

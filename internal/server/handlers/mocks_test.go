package handlers

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"ai-image-studio/internal/config"
	"ai-image-studio/internal/domain"
)

// mockGenerator は Generator のテスト用実装です。
type mockGenerator struct {
	runFn      func(ctx context.Context, req domain.GenerationRequest) (*domain.GenerationResult, error)
	progressFn func() (bool, int)

	lastRequest *domain.GenerationRequest
}

func (m *mockGenerator) Run(ctx context.Context, req domain.GenerationRequest) (*domain.GenerationResult, error) {
	m.lastRequest = &req
	if m.runFn != nil {
		return m.runFn(ctx, req)
	}
	return &domain.GenerationResult{
		PromptEnglish: "A detailed, high-quality image of illustration.",
		PromptKorean:  "일러스트의 상세한 고품질 이미지.",
		ImageData:     []byte{0x01, 0x02},
		MimeType:      "image/png",
	}, nil
}

func (m *mockGenerator) Progress() (bool, int) {
	if m.progressFn != nil {
		return m.progressFn()
	}
	return false, 0
}

// mockImageSource は ImageSource のテスト用実装です。
type mockImageSource struct {
	fromBytesFn func(data []byte) (*domain.SourceImage, error)
	fromURLFn   func(ctx context.Context, rawURL string) (*domain.SourceImage, error)
}

func (m *mockImageSource) FromBytes(data []byte) (*domain.SourceImage, error) {
	if m.fromBytesFn != nil {
		return m.fromBytesFn(data)
	}
	return &domain.SourceImage{Data: data, MimeType: "image/png", Ratio: 1.0}, nil
}

func (m *mockImageSource) FromURL(ctx context.Context, rawURL string) (*domain.SourceImage, error) {
	if m.fromURLFn != nil {
		return m.fromURLFn(ctx, rawURL)
	}
	return &domain.SourceImage{Data: []byte{0xAA}, MimeType: "image/png", Ratio: 0.75}, nil
}

// mockDescriber は ImageDescriber のテスト用実装です。
type mockDescriber struct {
	describeFn func(ctx context.Context, source *domain.SourceImage) (string, error)
}

func (m *mockDescriber) DescribeImage(ctx context.Context, source *domain.SourceImage) (string, error) {
	if m.describeFn != nil {
		return m.describeFn(ctx, source)
	}
	return "a watercolor painting of a cat", nil
}

// newTestHandler はテンポラリのテンプレート一式と共にハンドラーを構築します。
func newTestHandler(t *testing.T, gen Generator, src ImageSource, desc ImageDescriber) *Handler {
	t.Helper()

	dir := t.TempDir()
	layout := `{{define "layout.html"}}<html><title>{{.Title}}</title><body>{{template "content" .Data}}</body></html>{{end}}`
	index := `{{define "content"}}<main>{{range .ImageTypes}}<option>{{.Label}}</option>{{end}}</main>{{end}}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "layout.html"), []byte(layout), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte(index), 0o644))

	cfg := &config.Config{
		TemplateDir:    dir,
		MaxUploadBytes: config.DefaultMaxUploadBytes,
	}

	h, err := NewHandler(cfg, gen, src, desc)
	require.NoError(t, err)
	return h
}

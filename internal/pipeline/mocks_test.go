package pipeline

import (
	"context"

	"ai-image-studio/internal/domain"
	"ai-image-studio/internal/gateway"
)

// mockGateway は ImageGenerator のテスト用実装です。
// 呼び出し履歴を記録し、関数フィールドで応答を差し替えます。
type mockGateway struct {
	calls []string

	translateFn func(ctx context.Context, text string, lang gateway.TargetLanguage) (string, error)
	generateFn  func(ctx context.Context, prompt, aspectRatio string) (*gateway.ImageOutput, error)
	editFn      func(ctx context.Context, source *domain.SourceImage, prompt string) (*gateway.ImageOutput, error)
	describeFn  func(ctx context.Context, source *domain.SourceImage) (string, error)
}

func (m *mockGateway) Translate(ctx context.Context, text string, lang gateway.TargetLanguage) (string, error) {
	m.calls = append(m.calls, "translate:"+string(lang))
	if m.translateFn != nil {
		return m.translateFn(ctx, text, lang)
	}
	return text, nil
}

func (m *mockGateway) GenerateImage(ctx context.Context, prompt, aspectRatio string) (*gateway.ImageOutput, error) {
	m.calls = append(m.calls, "generate")
	if m.generateFn != nil {
		return m.generateFn(ctx, prompt, aspectRatio)
	}
	return &gateway.ImageOutput{Data: []byte{0x01}, MimeType: "image/png"}, nil
}

func (m *mockGateway) EditImage(ctx context.Context, source *domain.SourceImage, prompt string) (*gateway.ImageOutput, error) {
	m.calls = append(m.calls, "edit")
	if m.editFn != nil {
		return m.editFn(ctx, source, prompt)
	}
	return &gateway.ImageOutput{Data: []byte{0x02}, MimeType: "image/png"}, nil
}

func (m *mockGateway) DescribeImage(ctx context.Context, source *domain.SourceImage) (string, error) {
	m.calls = append(m.calls, "describe")
	if m.describeFn != nil {
		return m.describeFn(ctx, source)
	}
	return "described", nil
}

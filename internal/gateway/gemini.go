package gateway

import (
	"context"
	"fmt"
	"strings"

	"github.com/shouni/go-gemini-client/pkg/gemini"
	"google.golang.org/genai"

	"ai-image-studio/internal/catalog"
	"ai-image-studio/internal/domain"
)

const (
	// translateInstruction は text-to-image 向けに自然な一文へ翻訳させる固定指示です。
	// 翻訳文以外を返させないことで後段のプロンプト組み立てを安定させます。
	translateInstruction = `Translate the following phrase into a natural and fluent %s sentence, suitable for a text-to-image AI prompt. Respond only with the translated text, nothing else. The phrase is: "%s"`

	// describeInstruction は画像からプロンプトを逆生成させる固定指示です。
	describeInstruction = "You are a world-class AI image prompt engineer. Your task is to analyze an image and generate a highly detailed, artistic, and unique prompt for a text-to-image AI model. The prompt should capture the essence of the image's content, style, lighting, mood, color palette, and composition. The output should be a single, ready-to-use prompt string, without any additional conversation or explanation. Analyze this image and create an AI image prompt."
)

// GeminiGateway は gemini.GenerativeModel の上に翻訳・生成・編集の
// 3操作を束ねたアダプターです。
type GeminiGateway struct {
	aiClient   gemini.GenerativeModel
	textModel  string
	imageModel string
}

// NewGeminiGateway は依存関係を検証して GeminiGateway を初期化します。
func NewGeminiGateway(aiClient gemini.GenerativeModel, textModel, imageModel string) (*GeminiGateway, error) {
	if aiClient == nil {
		return nil, fmt.Errorf("aiClient is required")
	}
	if textModel == "" || imageModel == "" {
		return nil, fmt.Errorf("model names are required (text=%q, image=%q)", textModel, imageModel)
	}

	return &GeminiGateway{
		aiClient:   aiClient,
		textModel:  textModel,
		imageModel: imageModel,
	}, nil
}

// Translate は翻訳専用の固定指示でテキストモデルを呼び出します。
func (g *GeminiGateway) Translate(ctx context.Context, text string, targetLanguage TargetLanguage) (string, error) {
	instruction := fmt.Sprintf(translateInstruction, targetLanguage, text)

	resp, err := g.aiClient.GenerateContent(ctx, g.textModel, instruction)
	if err != nil {
		return "", fmt.Errorf("번역 요청에 실패했습니다: %w", err)
	}

	translated := strings.TrimSpace(resp.Text)
	if translated == "" {
		return "", ErrEmptyTranslation
	}
	return translated, nil
}

// GenerateImage はプロンプトのみを渡して新規画像を生成します。
func (g *GeminiGateway) GenerateImage(ctx context.Context, prompt string, aspectRatio string) (*ImageOutput, error) {
	if aspectRatio == "" {
		aspectRatio = catalog.DefaultAspectRatio
	}

	parts := []*genai.Part{{Text: prompt}}
	opts := gemini.GenerateOptions{AspectRatio: aspectRatio}

	resp, err := g.aiClient.GenerateWithParts(ctx, g.imageModel, parts, opts)
	if err != nil {
		return nil, fmt.Errorf("이미지 생성 요청에 실패했습니다: %w", err)
	}

	out, err := parseImageResponse(resp)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoImageReturned, err)
	}
	return out, nil
}

// EditImage は元画像パートを先頭に、プロンプトを後続に並べて編集を依頼します。
// パートの順序は応答品質に影響するため固定です。
func (g *GeminiGateway) EditImage(ctx context.Context, source *domain.SourceImage, prompt string) (*ImageOutput, error) {
	if source == nil || len(source.Data) == 0 {
		return nil, fmt.Errorf("source image is required for editing")
	}

	parts := []*genai.Part{
		{InlineData: &genai.Blob{MIMEType: source.MimeType, Data: source.Data}},
		{Text: prompt},
	}

	resp, err := g.aiClient.GenerateWithParts(ctx, g.imageModel, parts, gemini.GenerateOptions{})
	if err != nil {
		return nil, fmt.Errorf("이미지 편집 요청에 실패했습니다: %w", err)
	}

	out, err := parseImageResponse(resp)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoEditedImage, err)
	}
	return out, nil
}

// DescribeImage は画像解析指示と画像パートをテキストモデルへ渡し、
// 生成済みプロンプト文字列を返します。
func (g *GeminiGateway) DescribeImage(ctx context.Context, source *domain.SourceImage) (string, error) {
	if source == nil || len(source.Data) == 0 {
		return "", fmt.Errorf("source image is required for analysis")
	}

	parts := []*genai.Part{
		{Text: describeInstruction},
		{InlineData: &genai.Blob{MIMEType: source.MimeType, Data: source.Data}},
	}

	resp, err := g.aiClient.GenerateWithParts(ctx, g.textModel, parts, gemini.GenerateOptions{})
	if err != nil {
		return "", fmt.Errorf("이미지 분석 요청에 실패했습니다: %w", err)
	}

	text := strings.TrimSpace(extractText(resp))
	if text == "" {
		return "", fmt.Errorf("image analysis returned no text")
	}
	return text, nil
}

// parseImageResponse は最初の候補から画像パートを探して返します。
func parseImageResponse(resp *gemini.Response) (*ImageOutput, error) {
	if resp == nil || resp.RawResponse == nil || len(resp.RawResponse.Candidates) == 0 {
		return nil, fmt.Errorf("invalid response")
	}

	candidate := resp.RawResponse.Candidates[0]
	if candidate.Content == nil {
		return nil, fmt.Errorf("no content in candidate")
	}
	for _, part := range candidate.Content.Parts {
		if part.InlineData != nil && len(part.InlineData.Data) > 0 &&
			strings.HasPrefix(part.InlineData.MIMEType, "image/") {
			return &ImageOutput{
				Data:     part.InlineData.Data,
				MimeType: part.InlineData.MIMEType,
			}, nil
		}
	}
	return nil, fmt.Errorf("no image data")
}

// extractText は Text フィールドが空の場合に RawResponse から本文を拾います。
func extractText(resp *gemini.Response) string {
	if resp == nil {
		return ""
	}
	if resp.Text != "" {
		return resp.Text
	}
	if resp.RawResponse == nil || len(resp.RawResponse.Candidates) == 0 {
		return ""
	}
	candidate := resp.RawResponse.Candidates[0]
	if candidate.Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range candidate.Content.Parts {
		sb.WriteString(part.Text)
	}
	return sb.String()
}

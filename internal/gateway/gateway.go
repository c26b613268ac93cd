package gateway

import (
	"context"
	"errors"

	"ai-image-studio/internal/domain"
)

// TargetLanguage は翻訳先言語です。本アプリでは英語と韓国語のみを扱います。
type TargetLanguage string

const (
	LanguageEnglish TargetLanguage = "English"
	LanguageKorean  TargetLanguage = "Korean"
)

var (
	// ErrEmptyTranslation はプロバイダが空の翻訳結果を返したことを示します。
	ErrEmptyTranslation = errors.New("translation returned no text")
	// ErrNoImageReturned は生成応答に画像が1枚も含まれなかったことを示します。
	ErrNoImageReturned = errors.New("image generation failed or returned no images")
	// ErrNoEditedImage は編集応答に画像パートが含まれなかったことを示します。
	ErrNoEditedImage = errors.New("image editing failed or the model did not return an image")
)

// ImageOutput は生成・編集で得られた画像データです。
type ImageOutput struct {
	Data     []byte
	MimeType string
}

// ImageGenerator は生成オーケストレーターが利用するリモートAIの窓口です。
type ImageGenerator interface {
	// Translate は text を targetLanguage に翻訳し、翻訳文のみをトリムして返します。
	Translate(ctx context.Context, text string, targetLanguage TargetLanguage) (string, error)
	// GenerateImage はプロンプトから新規画像を生成します。aspectRatio 空は "1:1" 扱いです。
	GenerateImage(ctx context.Context, prompt string, aspectRatio string) (*ImageOutput, error)
	// EditImage は元画像を保ちながらプロンプトの要素を反映した画像を返します。
	EditImage(ctx context.Context, source *domain.SourceImage, prompt string) (*ImageOutput, error)
	// DescribeImage は画像から text-to-image 用プロンプトを逆生成します。
	DescribeImage(ctx context.Context, source *domain.SourceImage) (string, error)
}

package pipeline

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-image-studio/internal/domain"
	"ai-image-studio/internal/gateway"
	"ai-image-studio/internal/prompt"
)

func newTestPipeline(t *testing.T, gw gateway.ImageGenerator) *GenerationPipeline {
	t.Helper()
	p, err := New(gw)
	require.NoError(t, err)
	return p
}

func TestNew_ゲートウェイ必須(t *testing.T) {
	_, err := New(nil)
	assert.Error(t, err)
}

func TestRun_入力ゼロはリモート呼び出しなしで拒否する(t *testing.T) {
	mock := &mockGateway{}
	p := newTestPipeline(t, mock)

	result, err := p.Run(context.Background(), domain.GenerationRequest{})

	assert.ErrorIs(t, err, ErrNoInput)
	assert.Nil(t, result)
	assert.Empty(t, mock.calls, "ゲートウェイは一切呼ばれないこと")
}

func TestRun_生成パスの呼び出し順序(t *testing.T) {
	mock := &mockGateway{
		translateFn: func(_ context.Context, text string, lang gateway.TargetLanguage) (string, error) {
			if lang == gateway.LanguageEnglish {
				return "a cat", nil
			}
			return "고양이 그림", nil
		},
	}
	p := newTestPipeline(t, mock)

	req := domain.GenerationRequest{
		Selections: domain.Selections{ImageType: "illustration"},
		Keywords:   domain.NewKeywordList("고양이"),
	}
	result, err := p.Run(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, []string{"translate:English", "generate", "translate:Korean"}, mock.calls)
	assert.Equal(t, "A detailed, high-quality image of illustration, a cat.", result.PromptEnglish)
	assert.Equal(t, "고양이 그림", result.PromptKorean)
	assert.Equal(t, []byte{0x01}, result.ImageData)
	assert.Equal(t, "image/png", result.MimeType)
	assert.True(t, result.Succeeded())
}

func TestRun_キーワードなしは英訳をスキップする(t *testing.T) {
	mock := &mockGateway{}
	p := newTestPipeline(t, mock)

	req := domain.GenerationRequest{
		Selections: domain.Selections{ImageType: "realistic photo"},
	}
	_, err := p.Run(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, []string{"generate", "translate:Korean"}, mock.calls)
}

func TestRun_編集パスはアスペクト比を渡さない(t *testing.T) {
	prompts := make([]string, 0, 2)
	mock := &mockGateway{
		editFn: func(_ context.Context, source *domain.SourceImage, editPrompt string) (*gateway.ImageOutput, error) {
			prompts = append(prompts, editPrompt)
			return &gateway.ImageOutput{Data: []byte{0x02}, MimeType: "image/png"}, nil
		},
	}
	p := newTestPipeline(t, mock)

	source := &domain.SourceImage{Data: []byte{0xFF}, MimeType: "image/png"}
	base := domain.GenerationRequest{
		Selections:  domain.Selections{Style: "watercolor painting", AspectRatio: "16:9"},
		SourceImage: source,
	}
	_, err := p.Run(context.Background(), base)
	require.NoError(t, err)

	// アスペクト比だけ変えても編集プロンプトは同一でなければならない。
	other := base
	other.Selections.AspectRatio = "9:16"
	_, err = p.Run(context.Background(), other)
	require.NoError(t, err)

	require.Len(t, prompts, 2)
	assert.Equal(t, prompts[0], prompts[1])
	assert.NotContains(t, mock.calls, "generate")
}

func TestRun_編集パスでアスペクト比のみは空プロンプト扱い(t *testing.T) {
	mock := &mockGateway{}
	p := newTestPipeline(t, mock)

	req := domain.GenerationRequest{
		Selections:  domain.Selections{AspectRatio: "16:9"},
		SourceImage: &domain.SourceImage{Data: []byte{0xFF}, MimeType: "image/png"},
	}
	result, err := p.Run(context.Background(), req)

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.False(t, result.Succeeded())
	assert.Equal(t, prompt.ErrEmptyPrompt.Error(), result.ErrorMessage)
	assert.NotContains(t, mock.calls, "edit")
}

func TestRun_途中失敗はエラー入りの結果として返す(t *testing.T) {
	boom := errors.New("quota exceeded")
	mock := &mockGateway{
		generateFn: func(context.Context, string, string) (*gateway.ImageOutput, error) {
			return nil, boom
		},
	}
	p := newTestPipeline(t, mock)

	req := domain.GenerationRequest{
		Selections: domain.Selections{ImageType: "realistic photo"},
	}
	result, err := p.Run(context.Background(), req)

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Nil(t, result.ImageData)
	assert.Equal(t, "quota exceeded", result.ErrorMessage)
	assert.Equal(t, "Error: quota exceeded", result.PromptEnglish)
	assert.Equal(t, "오류가 발생했습니다.", result.PromptKorean)
	assert.False(t, result.Succeeded())

	// 失敗後も実行状態は解放されていること。
	running, _ := p.Progress()
	assert.False(t, running)
}

func TestRun_多重実行は即時拒否する(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	var enteredOnce sync.Once
	mock := &mockGateway{
		generateFn: func(context.Context, string, string) (*gateway.ImageOutput, error) {
			enteredOnce.Do(func() { close(entered) })
			<-release
			return &gateway.ImageOutput{Data: []byte{0x01}, MimeType: "image/png"}, nil
		},
	}
	p := newTestPipeline(t, mock)

	req := domain.GenerationRequest{
		Selections: domain.Selections{ImageType: "realistic photo"},
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, err := p.Run(context.Background(), req)
		assert.NoError(t, err)
	}()

	select {
	case <-entered:
	case <-time.After(2 * time.Second):
		t.Fatal("1本目の実行が開始しなかった")
	}

	_, err := p.Run(context.Background(), req)
	assert.ErrorIs(t, err, ErrBusy)

	close(release)
	<-done

	// 解放後は再実行できる。
	_, err = p.Run(context.Background(), req)
	assert.NoError(t, err)
}

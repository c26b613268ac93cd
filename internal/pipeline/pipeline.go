package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"ai-image-studio/internal/domain"
	"ai-image-studio/internal/gateway"
	"ai-image-studio/internal/prompt"
)

var (
	// ErrNoInput は画像・キーワード・オプションのいずれも無い状態での実行要求です。
	// リモート呼び出しを一切行わずに即座に返します。
	ErrNoInput = errors.New("옵션을 선택하거나 이미지를 업로드해주세요")
	// ErrBusy は実行中にもう1回 Run が呼ばれたことを示します。
	// 実行状態は直列化されており、割り込みは受け付けません。
	ErrBusy = errors.New("이미지 생성이 이미 진행 중입니다")
)

// failedKoreanPrompt は失敗時に韓国語プロンプト欄へ表示する固定文言です。
const failedKoreanPrompt = "오류가 발생했습니다."

// GenerationPipeline は翻訳 → プロンプト組み立て → 生成/編集 → 逆翻訳を
// 1本の逐次フローとして実行します。同時実行は1件のみです。
type GenerationPipeline struct {
	gw       gateway.ImageGenerator
	progress *ProgressTracker

	// mu は単一実行の保証です。実行中の結果レコードを
	// インターリーブから守るため TryLock で即時拒否します。
	mu sync.Mutex
}

// New は依存関係を検証して GenerationPipeline を初期化します。
func New(gw gateway.ImageGenerator) (*GenerationPipeline, error) {
	if gw == nil {
		return nil, fmt.Errorf("gateway is required")
	}
	return &GenerationPipeline{
		gw:       gw,
		progress: NewProgressTracker(),
	}, nil
}

// Progress は進捗インジケーター用の読み取り専用ビューを返します。
func (p *GenerationPipeline) Progress() (running bool, percent int) {
	return p.progress.Running(), p.progress.Percent()
}

// Run は1回の生成実行を行い、終端の GenerationResult を返します。
// 入力ゼロ（ErrNoInput）と実行中の多重要求（ErrBusy）のみ error で拒否し、
// 実行開始後の失敗はエラー文言を格納した結果として返します。
func (p *GenerationPipeline) Run(ctx context.Context, req domain.GenerationRequest) (*domain.GenerationResult, error) {
	// 粗いゲート: 入力がまったく無い場合はリモート呼び出しなしで拒否する。
	// 画像があれば通し、編集パス固有の検証はプロンプト組み立てに委ねる（二段検証）。
	if req.SourceImage == nil && req.Keywords.IsEmpty() && req.Selections.IsEmpty() {
		return nil, ErrNoInput
	}

	if !p.mu.TryLock() {
		return nil, ErrBusy
	}
	defer p.mu.Unlock()

	p.progress.Start()
	defer p.progress.Stop()

	result := &domain.GenerationResult{}
	if err := p.execute(ctx, req, result); err != nil {
		slog.ErrorContext(ctx, "generation run failed", "error", err, "edit_path", req.SourceImage != nil)
		result.ImageData = nil
		result.MimeType = ""
		result.ErrorMessage = err.Error()
		result.PromptEnglish = "Error: " + err.Error()
		result.PromptKorean = failedKoreanPrompt
	}
	return result, nil
}

// execute は実行本体です。各ステップは厳密に逐次で、リトライはしません。
func (p *GenerationPipeline) execute(ctx context.Context, req domain.GenerationRequest, result *domain.GenerationResult) error {
	// 1. キーワードの英訳（キーワードがある場合のみ、1回だけ）
	translatedKeywords := ""
	if !req.Keywords.IsEmpty() {
		tk, err := p.gw.Translate(ctx, req.Keywords.Join(", "), gateway.LanguageEnglish)
		if err != nil {
			return err
		}
		translatedKeywords = tk
	}

	// 2. 最終プロンプトの組み立て（編集パスはここで空プロンプトを拒否）
	hasSource := req.SourceImage != nil
	finalPrompt, err := prompt.Build(req.Selections, translatedKeywords, hasSource)
	if err != nil {
		return err
	}

	// 3. 画像の取得。編集パスでは出力比が元画像に従うため
	//    Selections.AspectRatio は渡さない。
	var out *gateway.ImageOutput
	if hasSource {
		out, err = p.gw.EditImage(ctx, req.SourceImage, finalPrompt)
	} else {
		out, err = p.gw.GenerateImage(ctx, finalPrompt, req.Selections.AspectRatio)
	}
	if err != nil {
		return err
	}

	// 4. 表示用の逆翻訳
	korean, err := p.gw.Translate(ctx, finalPrompt, gateway.LanguageKorean)
	if err != nil {
		return err
	}

	result.PromptEnglish = finalPrompt
	result.PromptKorean = korean
	result.ImageData = out.Data
	result.MimeType = out.MimeType

	slog.InfoContext(ctx, "generation run succeeded",
		"edit_path", hasSource,
		"prompt_len", len(finalPrompt),
		"image_bytes", len(out.Data),
	)
	return nil
}

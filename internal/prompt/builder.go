package prompt

import (
	"errors"
	"fmt"
	"strings"

	"ai-image-studio/internal/domain"
)

// ErrEmptyPrompt は編集パスで修正内容が1つも無いことを示します。
var ErrEmptyPrompt = errors.New("이미지를 수정하려면 하나 이상의 조건이나 키워드를 선택해야 합니다")

const (
	// editTemplate は編集パスの固定ラッパーです。被写体を保ちつつ
	// 指定要素を取り込むよう指示します。
	editTemplate = "Modify the provided image to incorporate the following styles and elements, while preserving the original subject: %s."

	// fallbackSubject は生成パスで被写体情報がまったく無いときの代替句です。
	// この代替があるため生成パスのプロンプトは決して空になりません。
	fallbackSubject = "an interesting scene"

	// figureStyleToken だけはテンプレートを特別扱いします。
	figureStyleToken  = "figure style"
	figureStyleClause = "in the style of a figure toy photo"
)

// Build は選択内容と翻訳済みキーワードから最終的な英語プロンプトを組み立てます。
// hasSourceImage が真なら編集パス、偽なら生成パスの規則に従います。
// 断片の並び順は生成画像の再現性に直結するため、固定順を崩してはいけません。
func Build(sel domain.Selections, translatedKeywords string, hasSourceImage bool) (string, error) {
	if hasSourceImage {
		return buildEditPrompt(sel, translatedKeywords)
	}
	return buildGeneratePrompt(sel, translatedKeywords), nil
}

// buildEditPrompt は編集パスのプロンプトを組み立てます。
// 断片は type → style → mood → lighting → cameraAngle → キーワードの固定順です。
func buildEditPrompt(sel domain.Selections, translatedKeywords string) (string, error) {
	fragments := joinNonEmpty(
		sel.ImageType,
		sel.Style,
		sel.Mood,
		sel.Lighting,
		sel.CameraAngle,
		translatedKeywords,
	)
	if fragments == "" {
		return "", ErrEmptyPrompt
	}
	return fmt.Sprintf(editTemplate, fragments), nil
}

// buildGeneratePrompt は text-to-image パスのプロンプトを組み立てます。
func buildGeneratePrompt(sel domain.Selections, translatedKeywords string) string {
	descriptive := joinNonEmpty(sel.ImageType, translatedKeywords)
	if descriptive == "" {
		descriptive = fallbackSubject
	}

	parts := []string{
		"A detailed, high-quality image of " + descriptive,
	}
	if clause := styleClause(sel.Style); clause != "" {
		parts = append(parts, clause)
	}
	if sel.Mood != "" {
		parts = append(parts, fmt.Sprintf("with a %s mood", sel.Mood))
	}
	if sel.Lighting != "" {
		parts = append(parts, fmt.Sprintf("using %s", sel.Lighting))
	}
	if sel.CameraAngle != "" {
		parts = append(parts, fmt.Sprintf("from a %s view", sel.CameraAngle))
	}

	return strings.Join(parts, ", ") + "."
}

func styleClause(style string) string {
	switch style {
	case "":
		return ""
	case figureStyleToken:
		return figureStyleClause
	default:
		return fmt.Sprintf("in a %s style", style)
	}
}

// joinNonEmpty は空文字を捨てて ", " で連結します。順序は引数順のままです。
func joinNonEmpty(values ...string) string {
	var clean []string
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			clean = append(clean, s)
		}
	}
	return strings.Join(clean, ", ")
}

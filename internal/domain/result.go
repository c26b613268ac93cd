package domain

// GenerationResult は1回のオーケストレーション実行の終端成果物です。
// 実行完了後は ImageData あり（成功）か ErrorMessage あり（失敗）の
// どちらか一方のみが成立します。
type GenerationResult struct {
	// PromptEnglish は画像生成に実際へ渡した英語の最終プロンプトです。
	PromptEnglish string
	// PromptKorean は表示用に逆翻訳した韓国語プロンプトです。
	// 失敗時はエラー文言で置き換えられます。
	PromptKorean string

	ImageData []byte
	MimeType  string

	ErrorMessage string
}

// Succeeded は画像取得まで完了したかを返します。
func (r *GenerationResult) Succeeded() bool {
	return r != nil && len(r.ImageData) > 0 && r.ErrorMessage == ""
}

package domain

// Selections は画面の6つのカテゴリ選択を保持します。
// 各フィールドは空文字（未選択）か、カタログ上のトークンのいずれかです。
type Selections struct {
	ImageType   string `json:"type"`
	Style       string `json:"style"`
	Mood        string `json:"mood"`
	Lighting    string `json:"lighting"`
	CameraAngle string `json:"camera_angle"`
	// AspectRatio は生成パスでのみ意味を持ちます。
	// 元画像がある編集パスでは出力比は元画像に従い、この値は無視されます。
	AspectRatio string `json:"aspect_ratio"`
}

// IsEmpty は全フィールドが未選択かどうかを返します。
func (s Selections) IsEmpty() bool {
	return s.ImageType == "" &&
		s.Style == "" &&
		s.Mood == "" &&
		s.Lighting == "" &&
		s.CameraAngle == "" &&
		s.AspectRatio == ""
}

// SourceImage は編集パスの入力となる元画像です。
type SourceImage struct {
	Data     []byte
	MimeType string
	// Ratio は naturalHeight / naturalWidth。プレビュー描画専用です。
	Ratio float64
}

// GenerationRequest は1回の生成実行に渡される入力一式です。
type GenerationRequest struct {
	Selections Selections
	Keywords   KeywordList
	// SourceImage が nil なら text-to-image、非 nil なら画像編集パスです。
	SourceImage *SourceImage
}

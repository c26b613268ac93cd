package catalog

// Option は選択肢の内部トークン（プロンプトに埋め込む英語句）と
// 画面表示用ラベル（韓国語）のペアです。
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Field は Selections の各フィールドを識別するキーです。
type Field string

const (
	FieldImageType   Field = "type"
	FieldStyle       Field = "style"
	FieldMood        Field = "mood"
	FieldLighting    Field = "lighting"
	FieldCameraAngle Field = "cameraAngle"
	FieldAspectRatio Field = "aspectRatio"
)

// DefaultAspectRatio は生成パスでアスペクト比が未指定のときに使う値です。
const DefaultAspectRatio = "1:1"

var imageTypeOptions = []Option{
	{Value: "realistic photo", Label: "사실적 사진"},
	{Value: "illustration", Label: "일러스트"},
	{Value: "sticker", Label: "스티커"},
	{Value: "logo", Label: "로고"},
	{Value: "text", Label: "텍스트"},
	{Value: "product photo", Label: "제품 사진"},
	{Value: "minimal design", Label: "미니멀 디자인"},
	{Value: "cartoon", Label: "만화"},
	{Value: "storyboard", Label: "스토리보드"},
}

var styleOptions = []Option{
	{Value: "figure style", Label: "피규어"},
	{Value: "digital art", Label: "디지털 아트"},
	{Value: "oil painting", Label: "유화"},
	{Value: "watercolor painting", Label: "수채화"},
	{Value: "cinematic photo", Label: "시네마틱 사진"},
	{Value: "pixel art", Label: "픽셀 아트"},
	{Value: "anime", Label: "애니메이션"},
	{Value: "monochrome comic book", Label: "흑백 만화"},
}

var moodOptions = []Option{
	{Value: "bright", Label: "밝은"},
	{Value: "dark", Label: "어두운"},
	{Value: "mysterious", Label: "신비로운"},
	{Value: "romantic", Label: "로맨틱"},
	{Value: "dramatic", Label: "드라마틱"},
	{Value: "peaceful", Label: "평화로운"},
	{Value: "dynamic", Label: "역동적인"},
	{Value: "gloomy", Label: "우울한"},
	{Value: "surreal", Label: "초현실적인"},
	{Value: "dreamy", Label: "몽환적인"},
	{Value: "futuristic", Label: "미래적인"},
	{Value: "cyberpunk", Label: "사이버펑크"},
	{Value: "fantasy", Label: "판타지"},
	{Value: "whimsical", Label: "환상적인"},
}

var lightingOptions = []Option{
	{Value: "dramatic lighting", Label: "드라마틱 조명"},
	{Value: "cinematic lighting", Label: "시네마틱 조명"},
	{Value: "soft studio light", Label: "소프트 스튜디오 조명"},
	{Value: "glowing", Label: "빛나는"},
}

var cameraAngleOptions = []Option{
	{Value: "close-up shot", Label: "클로즈업"},
	{Value: "wide-angle shot", Label: "와이드 앵글"},
	{Value: "overhead view", Label: "항공 뷰"},
	{Value: "low angle", Label: "로우 앵글"},
	{Value: "dutch angle", Label: "더치 앵글"},
}

var aspectRatioOptions = []Option{
	{Value: "1:1", Label: "1:1 (정사각형)"},
	{Value: "16:9", Label: "16:9 (와이드)"},
	{Value: "9:16", Label: "9:16 (세로)"},
	{Value: "4:3", Label: "4:3 (전통)"},
	{Value: "3:4", Label: "3:4 (전통 세로)"},
}

// aspectRatioPadding はアスペクト比トークンをプレビュー枠の
// padding-top パーセントに変換します。描画専用でプロンプトには関与しません。
var aspectRatioPadding = map[string]float64{
	"1:1":  100,
	"16:9": 56.25,
	"9:16": 177.77,
	"4:3":  75,
	"3:4":  133.33,
}

var fields = map[Field][]Option{
	FieldImageType:   imageTypeOptions,
	FieldStyle:       styleOptions,
	FieldMood:        moodOptions,
	FieldLighting:    lightingOptions,
	FieldCameraAngle: cameraAngleOptions,
	FieldAspectRatio: aspectRatioOptions,
}

// Options は指定フィールドの選択肢を定義順に返します。
func Options(f Field) []Option {
	src, ok := fields[f]
	if !ok {
		return nil
	}
	out := make([]Option, len(src))
	copy(out, src)
	return out
}

// Fields は全フィールドのキー一覧を返します。
func Fields() []Field {
	return []Field{
		FieldImageType,
		FieldStyle,
		FieldMood,
		FieldLighting,
		FieldCameraAngle,
		FieldAspectRatio,
	}
}

// IsValid は token が指定フィールドの選択肢かどうかを判定します。
// 空文字は「未選択」を意味する有効値として扱います。
func IsValid(f Field, token string) bool {
	if token == "" {
		return true
	}
	for _, opt := range fields[f] {
		if opt.Value == token {
			return true
		}
	}
	return false
}

// PaddingPercent はアスペクト比トークンに対応する padding-top 値を返します。
// 未知のトークンは正方形にフォールバックします。
func PaddingPercent(aspectRatio string) float64 {
	if p, ok := aspectRatioPadding[aspectRatio]; ok {
		return p
	}
	return aspectRatioPadding[DefaultAspectRatio]
}

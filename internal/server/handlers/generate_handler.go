package handlers

import (
	"encoding/base64"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"ai-image-studio/internal/catalog"
	"ai-image-studio/internal/domain"
	"ai-image-studio/internal/pipeline"
)

// generateResponse は生成APIの応答です。失敗時は Error と両プロンプト欄のみ埋まります。
type generateResponse struct {
	ImageDataURL   string  `json:"image_data_url,omitempty"`
	MimeType       string  `json:"mime_type,omitempty"`
	PromptEnglish  string  `json:"prompt_en"`
	PromptKorean   string  `json:"prompt_ko"`
	PaddingPercent float64 `json:"padding_percent"`
	Error          string  `json:"error,omitempty"`
}

// HandleGenerate は画像生成フォームの送信を処理します。
func (h *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.cfg.MaxUploadBytes)
	if err := r.ParseMultipartForm(h.cfg.MaxUploadBytes); err != nil {
		slog.WarnContext(r.Context(), "フォームの解析に失敗しました", "error", err)
		writeJSON(w, http.StatusBadRequest, apiError{Error: "리퀘스트 형식이 올바르지 않습니다"})
		return
	}

	sel, err := parseSelections(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, apiError{Error: err.Error()})
		return
	}

	// キーワードは multipart の繰り返しフィールドで受け取る。
	// カンマを含むキーワードを分割しないため、結合方式は採らない。
	req := domain.GenerationRequest{
		Selections: sel,
		Keywords:   domain.NewKeywordList(r.PostForm["keywords"]...),
	}

	source, err := h.parseSourceImage(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, apiError{Error: err.Error()})
		return
	}
	req.SourceImage = source

	result, err := h.generator.Run(r.Context(), req)
	switch {
	case errors.Is(err, pipeline.ErrBusy):
		writeJSON(w, http.StatusConflict, apiError{Error: err.Error()})
		return
	case errors.Is(err, pipeline.ErrNoInput):
		writeJSON(w, http.StatusBadRequest, apiError{Error: err.Error()})
		return
	case err != nil:
		slog.ErrorContext(r.Context(), "生成の実行に失敗しました", "error", err)
		writeJSON(w, http.StatusInternalServerError, apiError{Error: "이미지 생성 중 오류가 발생했습니다"})
		return
	}

	resp := generateResponse{
		PromptEnglish:  result.PromptEnglish,
		PromptKorean:   result.PromptKorean,
		PaddingPercent: previewPadding(req),
		Error:          result.ErrorMessage,
	}
	if result.Succeeded() {
		resp.ImageDataURL = "data:" + result.MimeType + ";base64," +
			base64.StdEncoding.EncodeToString(result.ImageData)
		resp.MimeType = result.MimeType
	}
	writeJSON(w, http.StatusOK, resp)
}

// parseSelections はフォーム値をカタログと照合しながら取り込みます。
// カタログに無いトークンは選択肢の改ざんとして拒否します。
func parseSelections(r *http.Request) (domain.Selections, error) {
	sel := domain.Selections{
		ImageType:   r.FormValue("type"),
		Style:       r.FormValue("style"),
		Mood:        r.FormValue("mood"),
		Lighting:    r.FormValue("lighting"),
		CameraAngle: r.FormValue("camera_angle"),
		AspectRatio: r.FormValue("aspect_ratio"),
	}

	checks := []struct {
		field catalog.Field
		value string
	}{
		{catalog.FieldImageType, sel.ImageType},
		{catalog.FieldStyle, sel.Style},
		{catalog.FieldMood, sel.Mood},
		{catalog.FieldLighting, sel.Lighting},
		{catalog.FieldCameraAngle, sel.CameraAngle},
		{catalog.FieldAspectRatio, sel.AspectRatio},
	}
	for _, c := range checks {
		if !catalog.IsValid(c.field, c.value) {
			return domain.Selections{}, errors.New("알 수 없는 옵션 값입니다: " + c.value)
		}
	}
	return sel, nil
}

// parseSourceImage はアップロードファイルまたは URL から元画像を取り込みます。
// どちらも無ければ nil を返し、生成パスとして扱われます。
func (h *Handler) parseSourceImage(r *http.Request) (*domain.SourceImage, error) {
	file, _, err := r.FormFile("image")
	if err == nil {
		defer file.Close()
		data, readErr := io.ReadAll(file)
		if readErr != nil {
			return nil, errors.New("업로드된 이미지를 읽을 수 없습니다")
		}
		return h.imageSource.FromBytes(data)
	}
	if !errors.Is(err, http.ErrMissingFile) {
		return nil, errors.New("업로드된 이미지를 읽을 수 없습니다")
	}

	if rawURL := strings.TrimSpace(r.FormValue("image_url")); rawURL != "" {
		return h.imageSource.FromURL(r.Context(), rawURL)
	}
	return nil, nil
}

// previewPadding はプレビュー枠の縦横比 (padding-bottom %) を決めます。
// 編集パスでは元画像の実寸比を優先し、生成パスでは選択された比率に従います。
func previewPadding(req domain.GenerationRequest) float64 {
	if req.SourceImage != nil && req.SourceImage.Ratio > 0 {
		return req.SourceImage.Ratio * 100
	}
	return catalog.PaddingPercent(req.Selections.AspectRatio)
}

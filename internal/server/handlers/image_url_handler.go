package handlers

import (
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
)

type imageURLRequest struct {
	URL string `json:"url"`
}

type imageURLResponse struct {
	ImageDataURL string  `json:"image_data_url"`
	MimeType     string  `json:"mime_type"`
	Ratio        float64 `json:"ratio"`
}

// HandleImageURL は URL から元画像を取り込み、プレビュー用のデータURLを返します。
// 取り込み失敗（CORS制限・非画像レスポンス等）は 400 で理由を返します。
func (h *Handler) HandleImageURL(w http.ResponseWriter, r *http.Request) {
	var req imageURLRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, apiError{Error: "리퀘스트 형식이 올바르지 않습니다"})
		return
	}

	rawURL := strings.TrimSpace(req.URL)
	if rawURL == "" {
		writeJSON(w, http.StatusBadRequest, apiError{Error: "이미지 URL을 입력해주세요"})
		return
	}

	source, err := h.imageSource.FromURL(r.Context(), rawURL)
	if err != nil {
		slog.WarnContext(r.Context(), "URLからの画像取得に失敗しました", "url", rawURL, "error", err)
		writeJSON(w, http.StatusBadRequest, apiError{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, imageURLResponse{
		ImageDataURL: "data:" + source.MimeType + ";base64," +
			base64.StdEncoding.EncodeToString(source.Data),
		MimeType: source.MimeType,
		Ratio:    source.Ratio,
	})
}

package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
)

type analyzeResponse struct {
	Prompt string `json:"prompt"`
}

// HandleAnalyze はアップロードされた画像から text-to-image 用の
// 英語プロンプトを逆生成して返します。
func (h *Handler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.cfg.MaxUploadBytes)
	if err := r.ParseMultipartForm(h.cfg.MaxUploadBytes); err != nil {
		writeJSON(w, http.StatusBadRequest, apiError{Error: "리퀘스트 형식이 올바르지 않습니다"})
		return
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			writeJSON(w, http.StatusBadRequest, apiError{Error: "분석할 이미지를 업로드해주세요"})
			return
		}
		writeJSON(w, http.StatusBadRequest, apiError{Error: "업로드된 이미지를 읽을 수 없습니다"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, apiError{Error: "업로드된 이미지를 읽을 수 없습니다"})
		return
	}

	source, err := h.imageSource.FromBytes(data)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, apiError{Error: err.Error()})
		return
	}

	promptText, err := h.describer.DescribeImage(r.Context(), source)
	if err != nil {
		slog.ErrorContext(r.Context(), "画像解析に失敗しました", "error", err)
		writeJSON(w, http.StatusBadGateway, apiError{Error: "이미지 분석 중 오류가 발생했습니다"})
		return
	}

	writeJSON(w, http.StatusOK, analyzeResponse{Prompt: promptText})
}

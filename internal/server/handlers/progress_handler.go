package handlers

import "net/http"

type progressResponse struct {
	Running bool `json:"running"`
	Percent int  `json:"percent"`
}

// HandleProgress は実行中フラグと表示用の進捗値を返します。
func (h *Handler) HandleProgress(w http.ResponseWriter, r *http.Request) {
	running, percent := h.generator.Progress()
	writeJSON(w, http.StatusOK, progressResponse{Running: running, Percent: percent})
}

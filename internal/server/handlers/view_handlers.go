package handlers

import (
	"net/http"

	"ai-image-studio/internal/catalog"
)

type indexData struct {
	ImageTypes   []catalog.Option
	Styles       []catalog.Option
	Moods        []catalog.Option
	Lightings    []catalog.Option
	CameraAngles []catalog.Option
	AspectRatios []catalog.Option
}

func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	data := indexData{
		ImageTypes:   catalog.Options(catalog.FieldImageType),
		Styles:       catalog.Options(catalog.FieldStyle),
		Moods:        catalog.Options(catalog.FieldMood),
		Lightings:    catalog.Options(catalog.FieldLighting),
		CameraAngles: catalog.Options(catalog.FieldCameraAngle),
		AspectRatios: catalog.Options(catalog.FieldAspectRatio),
	}
	h.render(w, http.StatusOK, "index.html", "AI 이미지 생성", data)
}

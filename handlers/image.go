package handlers

import (
	"encoding/base64"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Image handles GET /image/:id, serving the stored photo back as binary.
func (h *Handler) Image(c *gin.Context) {
	measure, err := h.store.FindByID(c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	if measure == nil {
		respondError(c, http.StatusNotFound, CodeMeasureNotFound, "A imagem da medição não foi encontrada ou expirou")
		return
	}

	// The payload was base64-checked on upload, so a decode failure here
	// means the row was tampered with outside the API.
	imageBytes, err := base64.StdEncoding.DecodeString(measure.ImageBase64)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.Data(http.StatusOK, "image/png", imageBytes)
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/Kaduh15/api-consumption-measurement/gemini"
	"github.com/Kaduh15/api-consumption-measurement/models"
	"github.com/Kaduh15/api-consumption-measurement/schemas"
	"github.com/Kaduh15/api-consumption-measurement/utils"
	"github.com/gin-gonic/gin"
)

// Upload handles POST /upload: validate the body, reject a second reading in
// the same billing month, have Gemini read the meter, persist the measure.
func (h *Handler) Upload(c *gin.Context) {
	var input schemas.UploadInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, schemas.CodeInvalidData, schemas.FallbackMessage)
		return
	}

	data, ferr := input.Validate()
	if ferr != nil {
		respondError(c, http.StatusBadRequest, ferr.Code, ferr.Message)
		return
	}

	start, end := utils.MonthWindow(data.MeasureDatetime)

	existing, err := h.store.FindFirstInPeriod(data.CustomerCode, data.MeasureType, start, end)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if existing != nil {
		respondError(c, http.StatusConflict, CodeDoubleReport, "Leitura do mês já realizada")
		return
	}

	value, err := h.ai.Analyze(c.Request.Context(), data.Image, data.MeasureType)
	if errors.Is(err, gemini.ErrUnreadable) {
		respondError(c, http.StatusBadRequest, schemas.CodeInvalidData, "Não foi possível analisar a imagem.")
		return
	}
	if err != nil {
		_ = c.Error(err)
		return
	}

	measure := &models.Measure{
		CustomerCode:    data.CustomerCode,
		MeasureType:     data.MeasureType,
		MeasureDatetime: data.MeasureDatetime,
		MeasureValue:    value,
		ImageBase64:     data.Image,
	}
	if err := h.store.Create(measure); err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"image_url":     h.cfg.ImageURL(measure.ID),
		"measure_value": measure.MeasureValue,
		"measure_uuid":  measure.ID,
	})
}

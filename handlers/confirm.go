package handlers

import (
	"net/http"

	"github.com/Kaduh15/api-consumption-measurement/schemas"
	"github.com/gin-gonic/gin"
)

// Confirm handles PATCH /confirm: a one-time human correction of the value
// Gemini extracted. Confirmation is terminal; a second attempt conflicts.
func (h *Handler) Confirm(c *gin.Context) {
	var input schemas.ConfirmInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, schemas.CodeInvalidData, schemas.FallbackMessage)
		return
	}

	data, ferr := input.Validate()
	if ferr != nil {
		respondError(c, http.StatusBadRequest, ferr.Code, ferr.Message)
		return
	}

	measure, err := h.store.FindByID(data.MeasureUUID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if measure == nil {
		respondError(c, http.StatusNotFound, CodeMeasureNotFound, "Leitura do mês não encontrada")
		return
	}
	if measure.HasConfirmed {
		respondError(c, http.StatusConflict, CodeConfirmationDuplicate, "Leitura do mês já realizada")
		return
	}

	if err := h.store.Confirm(data.MeasureUUID, data.ConfirmedValue); err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

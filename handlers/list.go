package handlers

import (
	"net/http"
	"time"

	"github.com/Kaduh15/api-consumption-measurement/models"
	"github.com/Kaduh15/api-consumption-measurement/schemas"
	"github.com/Kaduh15/api-consumption-measurement/utils"
	"github.com/gin-gonic/gin"
)

type measureItem struct {
	MeasureUUID     string    `json:"measure_uuid"`
	MeasureDatetime time.Time `json:"measure_datetime"`
	MeasureValue    float64   `json:"measure_value"`
	MeasureType     string    `json:"measure_type"`
	HasConfirmed    bool      `json:"has_confirmed"`
	ImageURL        string    `json:"image_url"`
}

// List handles GET /:customer_code/list with optional measure_type and
// measure_datetime filters. A datetime narrows the result to its UTC
// calendar month.
func (h *Handler) List(c *gin.Context) {
	data, ferr := h.listFilters(c)
	if ferr != nil {
		respondError(c, http.StatusBadRequest, ferr.Code, ferr.Message)
		return
	}

	measures, err := h.findMeasures(data)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if len(measures) == 0 {
		respondError(c, http.StatusNotFound, CodeMeasuresNotFound, "Nenhuma leitura encontrada")
		return
	}

	items := make([]measureItem, 0, len(measures))
	for _, m := range measures {
		items = append(items, measureItem{
			MeasureUUID:     m.ID,
			MeasureDatetime: m.MeasureDatetime,
			MeasureValue:    m.MeasureValue,
			MeasureType:     m.MeasureType,
			HasConfirmed:    m.HasConfirmed,
			ImageURL:        h.cfg.ImageURL(m.ID),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"customer_code": data.CustomerCode,
		"measures":      items,
	})
}

func (h *Handler) listFilters(c *gin.Context) (*schemas.ListData, *schemas.FieldError) {
	input := schemas.ListInput{
		CustomerCode:    c.Param("customer_code"),
		MeasureType:     c.Query("measure_type"),
		MeasureDatetime: c.Query("measure_datetime"),
	}
	return input.Validate()
}

func (h *Handler) findMeasures(data *schemas.ListData) ([]models.Measure, error) {
	var start, end *time.Time
	if data.MeasureDatetime != nil {
		s, e := utils.MonthWindow(*data.MeasureDatetime)
		start, end = &s, &e
	}
	return h.store.List(data.CustomerCode, data.MeasureType, start, end)
}

package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// Export handles GET /:customer_code/export, streaming the customer's
// measures as an .xlsx report. Same filters as the listing endpoint.
func (h *Handler) Export(c *gin.Context) {
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

	f := excelize.NewFile()
	sheetName := "Leituras"
	f.SetSheetName("Sheet1", sheetName)

	headers := []string{"No", "Data", "Tipo", "Valor", "Confirmada", "UUID"}
	for i, hd := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, hd)
	}

	styleHeader, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4F46E5"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	f.SetCellStyle(sheetName, "A1", "F1", styleHeader)

	row := 2
	for i, m := range measures {
		confirmed := "NAO"
		if m.HasConfirmed {
			confirmed = "SIM"
		}

		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), i+1)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), m.MeasureDatetime.UTC().Format("02-01-2006 15:04"))
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), m.MeasureType)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), m.MeasureValue)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), confirmed)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), m.ID)

		row++
	}

	f.SetColWidth(sheetName, "A", "A", 5)
	f.SetColWidth(sheetName, "B", "C", 18)
	f.SetColWidth(sheetName, "D", "E", 12)
	f.SetColWidth(sheetName, "F", "F", 40)

	fileName := fmt.Sprintf("leituras_%s_%s.xlsx", data.CustomerCode, time.Now().Format("20060102"))

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", fileName))
	c.Header("Content-Transfer-Encoding", "binary")

	if err := f.Write(c.Writer); err != nil {
		h.log.Error("failed to write excel report", zap.Error(err))
	}
}

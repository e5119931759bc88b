package schemas

import (
	"strings"
	"time"

	"github.com/Kaduh15/api-consumption-measurement/models"
)

// ListInput carries the GET /:customer_code/list path and query values.
type ListInput struct {
	CustomerCode    string
	MeasureType     string
	MeasureDatetime string
}

// ListData is the validated listing filter. MeasureType is empty or
// normalized upper case; MeasureDatetime is nil when no month scoping was
// requested.
type ListData struct {
	CustomerCode    string
	MeasureType     string
	MeasureDatetime *time.Time
}

// Validate normalizes the filters. measure_type is case-insensitive here,
// unlike on upload, and a bad value gets its own INVALID_TYPE code.
func (in ListInput) Validate() (*ListData, *FieldError) {
	if in.CustomerCode == "" {
		return nil, invalidData("customer_code", "Insira um código de cliente válido")
	}

	data := &ListData{CustomerCode: in.CustomerCode}

	if in.MeasureType != "" {
		normalized := strings.ToUpper(in.MeasureType)
		if normalized != models.MeasureTypeWater && normalized != models.MeasureTypeGas {
			return nil, &FieldError{
				Field:   "measure_type",
				Code:    CodeInvalidType,
				Message: "Tipo de medição não permitida",
			}
		}
		data.MeasureType = normalized
	}

	if in.MeasureDatetime != "" {
		datetime, err := parseDatetime(in.MeasureDatetime)
		if err != nil {
			return nil, invalidData("measure_datetime", "Insira uma data válida")
		}
		data.MeasureDatetime = &datetime
	}

	return data, nil
}

package schemas

import (
	"encoding/base64"
	"strings"
	"time"

	"github.com/Kaduh15/api-consumption-measurement/models"
)

// UploadInput is the raw POST /upload body.
type UploadInput struct {
	Image           string `json:"image"`
	CustomerCode    string `json:"customer_code"`
	MeasureDatetime string `json:"measure_datetime"`
	MeasureType     string `json:"measure_type"`
}

// UploadData is the validated, typed submission.
type UploadData struct {
	Image           string
	CustomerCode    string
	MeasureDatetime time.Time
	MeasureType     string
}

// Validate checks the fields in declaration order and reports the first
// failure. The image comes out with any data-URL prefix stripped.
func (in UploadInput) Validate() (*UploadData, *FieldError) {
	image := stripDataURLPrefix(in.Image)
	if image == "" {
		return nil, invalidData("image", "Insira uma imagem em base64 válida")
	}
	if _, err := base64.StdEncoding.DecodeString(image); err != nil {
		return nil, invalidData("image", "Insira uma imagem em base64 válida")
	}

	if in.CustomerCode == "" {
		return nil, invalidData("customer_code", "Insira um código de cliente válido")
	}

	datetime, err := parseDatetime(in.MeasureDatetime)
	if err != nil {
		return nil, invalidData("measure_datetime", "Insira uma data válida")
	}

	if in.MeasureType != models.MeasureTypeWater && in.MeasureType != models.MeasureTypeGas {
		return nil, invalidData("measure_type", "Tipo de medição deve ser WATER ou GAS")
	}

	return &UploadData{
		Image:           image,
		CustomerCode:    in.CustomerCode,
		MeasureDatetime: datetime,
		MeasureType:     in.MeasureType,
	}, nil
}

// stripDataURLPrefix removes a leading data:image/...;base64, marker so only
// the payload itself is stored and decoded.
func stripDataURLPrefix(image string) string {
	if !strings.HasPrefix(image, "data:image/") {
		return image
	}
	if idx := strings.Index(image, ";base64,"); idx >= 0 {
		return image[idx+len(";base64,"):]
	}
	return image
}

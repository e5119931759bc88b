package schemas

import "github.com/google/uuid"

// ConfirmInput is the raw PATCH /confirm body. ConfirmedValue stays untyped
// so both JSON numbers and numeric strings are accepted.
type ConfirmInput struct {
	MeasureUUID    string `json:"measure_uuid"`
	ConfirmedValue any    `json:"confirmed_value"`
}

// ConfirmData is the validated confirmation request.
type ConfirmData struct {
	MeasureUUID    string
	ConfirmedValue float64
}

func (in ConfirmInput) Validate() (*ConfirmData, *FieldError) {
	if _, err := uuid.Parse(in.MeasureUUID); err != nil {
		return nil, invalidData("measure_uuid", "UUID Invalido")
	}

	value, ok := coerceNumber(in.ConfirmedValue)
	if !ok {
		return nil, invalidData("confirmed_value", "Insira um valor válido")
	}

	return &ConfirmData{
		MeasureUUID:    in.MeasureUUID,
		ConfirmedValue: value,
	}, nil
}

package schemas

import (
	"encoding/base64"
	"testing"
	"time"
)

var validImage = base64.StdEncoding.EncodeToString([]byte("fake image bytes"))

func validUploadInput() UploadInput {
	return UploadInput{
		Image:           validImage,
		CustomerCode:    "CUST-01",
		MeasureDatetime: "2024-08-27T10:00:00Z",
		MeasureType:     "WATER",
	}
}

func TestUploadValidate_OK(t *testing.T) {
	data, ferr := validUploadInput().Validate()
	if ferr != nil {
		t.Fatalf("unexpected error: %v", ferr)
	}
	if data.Image != validImage {
		t.Errorf("image changed: %q", data.Image)
	}
	if data.CustomerCode != "CUST-01" || data.MeasureType != "WATER" {
		t.Errorf("unexpected data: %+v", data)
	}
	want := time.Date(2024, 8, 27, 10, 0, 0, 0, time.UTC)
	if !data.MeasureDatetime.Equal(want) {
		t.Errorf("datetime = %v, want %v", data.MeasureDatetime, want)
	}
}

func TestUploadValidate_StripsDataURLPrefix(t *testing.T) {
	in := validUploadInput()
	in.Image = "data:image/png;base64," + validImage

	data, ferr := in.Validate()
	if ferr != nil {
		t.Fatalf("unexpected error: %v", ferr)
	}
	if data.Image != validImage {
		t.Errorf("prefix not stripped: %q", data.Image)
	}
}

func TestUploadValidate_DateOnly(t *testing.T) {
	in := validUploadInput()
	in.MeasureDatetime = "2024-08-27"

	if _, ferr := in.Validate(); ferr != nil {
		t.Fatalf("date-only datetime rejected: %v", ferr)
	}
}

func TestUploadValidate_FirstFieldError(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*UploadInput)
		wantField string
		wantMsg   string
	}{
		{
			name:      "missing image",
			mutate:    func(in *UploadInput) { in.Image = "" },
			wantField: "image",
			wantMsg:   "Insira uma imagem em base64 válida",
		},
		{
			name:      "invalid base64",
			mutate:    func(in *UploadInput) { in.Image = "$$$not-base64$$$" },
			wantField: "image",
			wantMsg:   "Insira uma imagem em base64 válida",
		},
		{
			name:      "missing customer code",
			mutate:    func(in *UploadInput) { in.CustomerCode = "" },
			wantField: "customer_code",
			wantMsg:   "Insira um código de cliente válido",
		},
		{
			name:      "bad datetime",
			mutate:    func(in *UploadInput) { in.MeasureDatetime = "not a date" },
			wantField: "measure_datetime",
			wantMsg:   "Insira uma data válida",
		},
		{
			name:      "lower case type is rejected on upload",
			mutate:    func(in *UploadInput) { in.MeasureType = "water" },
			wantField: "measure_type",
			wantMsg:   "Tipo de medição deve ser WATER ou GAS",
		},
		{
			name: "image error wins over later errors",
			mutate: func(in *UploadInput) {
				in.Image = ""
				in.MeasureType = "OTHER"
			},
			wantField: "image",
			wantMsg:   "Insira uma imagem em base64 válida",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validUploadInput()
			tt.mutate(&in)

			data, ferr := in.Validate()
			if ferr == nil {
				t.Fatalf("expected error, got %+v", data)
			}
			if ferr.Field != tt.wantField {
				t.Errorf("field = %q, want %q", ferr.Field, tt.wantField)
			}
			if ferr.Message != tt.wantMsg {
				t.Errorf("message = %q, want %q", ferr.Message, tt.wantMsg)
			}
			if ferr.Code != CodeInvalidData {
				t.Errorf("code = %q, want %q", ferr.Code, CodeInvalidData)
			}
		})
	}
}

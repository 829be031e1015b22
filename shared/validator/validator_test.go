package validator_test

import (
	"mahalo/shared/failure"
	"mahalo/shared/validator"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type bookingPayload struct {
	Name   string `json:"name"   validate:"required,max=100"`
	Email  string `json:"email"  validate:"required,email"`
	Date   string `json:"date"   validate:"required,date"`
	Time   string `json:"time"   validate:"required,clock"`
	Guests int    `json:"guests" validate:"required,gte=1"`
}

func TestValidateDecodesAndValidates(t *testing.T) {
	body := `{"name":"Jane","email":"jane@example.com","date":"2030-05-01","time":"19:30","guests":2}`

	payload := bookingPayload{}
	err := validator.Validate(strings.NewReader(body), &payload)

	assert.NoError(t, err)
	assert.Equal(t, "Jane", payload.Name)
	assert.Equal(t, 2, payload.Guests)
}

func TestValidateFieldMessages(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{
			name:    "missing time",
			body:    `{"name":"Jane","email":"jane@example.com","date":"2030-05-01","guests":2}`,
			wantMsg: "Time is required",
		},
		{
			name:    "invalid guest count",
			body:    `{"name":"Jane","email":"jane@example.com","date":"2030-05-01","time":"19:30","guests":0}`,
			wantMsg: "Guests is required",
		},
		{
			name:    "malformed date",
			body:    `{"name":"Jane","email":"jane@example.com","date":"01/05/2030","time":"19:30","guests":2}`,
			wantMsg: "Date must be a valid date in YYYY-MM-DD format",
		},
		{
			name:    "malformed clock",
			body:    `{"name":"Jane","email":"jane@example.com","date":"2030-05-01","time":"7pm","guests":2}`,
			wantMsg: "Time must be a valid time in HH:MM format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := bookingPayload{}
			err := validator.Validate(strings.NewReader(tt.body), &payload)

			assert.Error(t, err)
			assert.Equal(t, 400, failure.GetCode(err))
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

func TestValidateRejectsMalformedJSON(t *testing.T) {
	payload := bookingPayload{}
	err := validator.Validate(strings.NewReader(`{`), &payload)

	assert.Error(t, err)
	assert.Equal(t, 400, failure.GetCode(err))
}

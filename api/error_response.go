package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"reflect"

	"github.com/go-playground/validator/v10"
)

type ErrorField struct {
	FieldName    string `json:"field_name"`
	ErrorMessage string `json:"error_message"`
}

type ErrorResponse struct {
	Error       string       `json:"error"`
	Fields      []ErrorField `json:"fields,omitempty"`
	Suggestions []string     `json:"suggestions,omitempty"`
}

func NewErrorResponse(err error, fields ...ErrorField) ErrorResponse {
	return ErrorResponse{Error: err.Error(), Fields: fields}
}

// bindingErrorResponse describes a failed ShouldBind call. Errors that are not
// validation errors, such as "level=abc", are reported against fallbackField.
func bindingErrorResponse(err error, fallbackField string) ErrorResponse {
	fields := ExtractErrorFields(err)
	if len(fields) == 0 {
		fields = []ErrorField{{fallbackField, err.Error()}}
	}
	return NewErrorResponse(ErrInvalidParams, fields...)
}

// ExtractErrorFields converts validator errors to per-field messages keyed by JSON name.
func ExtractErrorFields(err error) []ErrorField {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	fields := make([]ErrorField, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, ErrorField{
			FieldName:    fe.Field(),
			ErrorMessage: tagMessage(fe),
		})
	}
	return fields
}

func tagMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "min":
		if isNumber(fe.Kind()) {
			return "must be greater than or equal to the allowed minimum"
		}
		return "value is too short"
	case "max":
		if isNumber(fe.Kind()) {
			return "must be less than or equal to the allowed maximum"
		}
		return "value is too long"
	case "gte":
		return "must be greater than or equal to the allowed minimum"
	case "lte":
		return "must be less than or equal to the allowed maximum"
	case "oneof":
		return "must be one of the allowed values"
	case challengeRatingTag:
		return "invalid challenge rating, expected a number or 1/8, 1/4, 1/2"
	case rarityTag:
		return "unknown rarity"
	default:
		return "invalid input"
	}
}

func isNumber(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func extractErrorFromBuffer(buf *bytes.Buffer) (*ErrorResponse, error) {
	var resp ErrorResponse
	if err := json.NewDecoder(buf).Decode(&resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

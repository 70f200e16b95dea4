// Package validators contains custom go-playground validator functions.
package validators

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/go-playground/validator/v10"
)

// MaxExtraDataLength is the longest JSON encoding accepted for statement extra data.
const MaxExtraDataLength = 500

// NotBlankValidation rejects strings that are empty or consist only of whitespace.
func NotBlankValidation(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// ExtraDataValidation accepts a map whose JSON encoding fits into MaxExtraDataLength characters.
func ExtraDataValidation(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.IsNil() {
		return true
	}

	encoded, err := EncodeExtraData(field.Interface())
	if err != nil {
		return false
	}
	return len([]rune(string(encoded))) <= MaxExtraDataLength
}

// EncodeExtraData returns the compact JSON encoding of v without HTML escaping,
// so <, > and & count as one character each.
func EncodeExtraData(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Register adds the custom validations of this package to validate.
func Register(validate *validator.Validate) error {
	if err := validate.RegisterValidation("notblank", NotBlankValidation); err != nil {
		return err
	}
	return validate.RegisterValidation("extradata", ExtraDataValidation)
}

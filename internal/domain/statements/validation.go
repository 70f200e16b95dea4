package statements

import (
	"errors"
	"fmt"

	"github.com/MGTheTrain/dialog-memory/internal/pkg/validators"
	"github.com/go-playground/validator/v10"
)

func validateStruct(s interface{}) error {
	validate := validator.New()

	if err := validators.Register(validate); err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}

	err := validate.Struct(s)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("%w: %v", ErrInvalid, messages)
		}
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return nil
}

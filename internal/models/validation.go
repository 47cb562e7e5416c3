package models

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// SchemaValidator gates every derived record before it is queued for a batch
// write. A failure means the single record is dropped, never the batch.
type SchemaValidator struct {
	validate *validator.Validate
}

// NewSchemaValidator creates a validator for model records.
func NewSchemaValidator() *SchemaValidator {
	return &SchemaValidator{validate: validator.New()}
}

// Validate checks a record against its struct tags and returns the first
// violated constraint.
func (sv *SchemaValidator) Validate(record any) error {
	err := sv.validate.Struct(record)
	if err == nil {
		return nil
	}
	if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Errorf("field %s failed %q validation", fe.Field(), fe.Tag())
	}
	return err
}

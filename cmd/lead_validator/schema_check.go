package main

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/jonathan/lead-validator/internal/schemas"
)

// checkSchema validates generated JSON against a schema file. Schema files that
// cannot be found or loaded only produce a warning.
func checkSchema(relativePath string, data []byte) error {
	schemaPath := schemas.ResolveSchemaPath(relativePath)
	if schemaPath == "" {
		logger.Debug("schema not found, skipping validation", zap.String("schema", relativePath))
		return nil
	}

	err := schemas.ValidateBytes(schemaPath, data)
	if err == nil {
		return nil
	}

	var validationErr *schemas.ValidationError
	if errors.As(err, &validationErr) {
		return fmt.Errorf("generated JSON does not validate against schema: %w", err)
	}
	logger.Warn("could not validate output against schema", zap.String("schema", schemaPath), zap.Error(err))
	return nil
}

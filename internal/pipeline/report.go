package pipeline

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/jonathan/lead-validator/internal/schemas"
	"github.com/jonathan/lead-validator/internal/types"
)

// WriteReport writes the run report as indented JSON after checking it against
// the run report schema. A missing or unloadable schema only logs a warning.
func WriteReport(path string, report *types.RunReport, log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return &ReportError{Path: path, Message: "failed to marshal report", Cause: err}
	}

	if schemaPath := schemas.ResolveSchemaPath(schemas.RunReportSchema); schemaPath == "" {
		log.Warn("run report schema not found, skipping validation", zap.String("schema", schemas.RunReportSchema))
	} else if err := schemas.ValidateBytes(schemaPath, data); err != nil {
		var loadErr *schemas.SchemaLoadError
		if !errors.As(err, &loadErr) {
			return &ReportError{Path: path, Message: "report does not match schema", Cause: err}
		}
		log.Warn("run report schema could not be loaded", zap.Error(err))
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return &ReportError{Path: path, Message: "failed to create report directory", Cause: err}
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return &ReportError{Path: path, Message: "failed to write report", Cause: err}
	}
	return nil
}

package caseparsers

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Black-And-White-Club/dxwager/app/shared/apperrors"
)

// Factory creates the appropriate parser based on file extension.
type Factory struct{}

// NewFactory creates a new parser factory.
func NewFactory() *Factory {
	return &Factory{}
}

// GetParser returns a parser for the given file name.
func (f *Factory) GetParser(fileName string) (Parser, error) {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".json":
		return NewJSONParser(), nil
	case ".csv":
		return NewCSVParser(), nil
	case ".xlsx":
		return NewXLSXParser(), nil
	}
	return nil, &apperrors.ValidationError{
		Field:   "file",
		Message: fmt.Sprintf("unsupported file type %q (must be .json, .csv or .xlsx)", fileName),
	}
}

package caseparsers

import (
	"bytes"
	"encoding/csv"
	"fmt"

	caseservice "github.com/Black-And-White-Club/dxwager/app/modules/cases/application"
	"github.com/Black-And-White-Club/dxwager/app/shared/apperrors"
)

// CSVParser implements the Parser interface for comma-separated exports.
type CSVParser struct{}

// NewCSVParser creates a new CSV parser instance.
func NewCSVParser() *CSVParser {
	return &CSVParser{}
}

func (p *CSVParser) Parse(fileData []byte) ([]caseservice.ImportedCase, error) {
	reader := csv.NewReader(bytes.NewReader(fileData))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, &apperrors.ValidationError{Field: "file", Message: fmt.Sprintf("failed to parse CSV: %v", err)}
	}
	return rowsToCases(rows)
}

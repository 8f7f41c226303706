package caseparsers

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	caseservice "github.com/Black-And-White-Club/dxwager/app/modules/cases/application"
	"github.com/Black-And-White-Club/dxwager/app/shared/apperrors"
)

// XLSXParser reads the first sheet of a workbook.
type XLSXParser struct{}

func NewXLSXParser() *XLSXParser {
	return &XLSXParser{}
}

func (p *XLSXParser) Parse(fileData []byte) ([]caseservice.ImportedCase, error) {
	f, err := excelize.OpenReader(bytes.NewReader(fileData))
	if err != nil {
		return nil, &apperrors.ValidationError{Field: "file", Message: fmt.Sprintf("failed to parse XLSX: %v", err)}
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &apperrors.ValidationError{Field: "file", Message: "XLSX file contains no sheets"}
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, &apperrors.ValidationError{Field: "file", Message: fmt.Sprintf("failed to read sheet: %v", err)}
	}
	return rowsToCases(rows)
}

package caseparsers

import (
	caseservice "github.com/Black-And-White-Club/dxwager/app/modules/cases/application"
)

// Parser turns an uploaded file into cases ready for import.
type Parser interface {
	// Parse reads the raw file bytes. Malformed input is reported as an
	// *apperrors.ValidationError naming the offending row or field.
	Parse(fileData []byte) ([]caseservice.ImportedCase, error)
}

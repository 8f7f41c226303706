package caseparsers

import (
	"bytes"
	"encoding/json"
	"fmt"

	caseservice "github.com/Black-And-White-Club/dxwager/app/modules/cases/application"
	"github.com/Black-And-White-Club/dxwager/app/shared/apperrors"
)

// JSONParser reads either a bare array of cases or an object with a "cases" array.
type JSONParser struct{}

func NewJSONParser() *JSONParser {
	return &JSONParser{}
}

func (p *JSONParser) Parse(fileData []byte) ([]caseservice.ImportedCase, error) {
	trimmed := bytes.TrimSpace(fileData)
	if len(trimmed) == 0 {
		return nil, &apperrors.ValidationError{Field: "file", Message: "is empty"}
	}

	var cases []caseservice.ImportedCase
	if trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &cases); err != nil {
			return nil, malformed(err)
		}
		return cases, nil
	}

	var envelope struct {
		Cases []caseservice.ImportedCase `json:"cases"`
	}
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, malformed(err)
	}
	return envelope.Cases, nil
}

func malformed(err error) error {
	return &apperrors.ValidationError{Field: "file", Message: fmt.Sprintf("malformed JSON: %v", err)}
}

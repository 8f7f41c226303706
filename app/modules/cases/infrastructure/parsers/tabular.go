package caseparsers

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	caseservice "github.com/Black-And-White-Club/dxwager/app/modules/cases/application"
	casedomain "github.com/Black-And-White-Club/dxwager/app/modules/cases/domain"
	"github.com/Black-And-White-Club/dxwager/app/shared/apperrors"
)

// Spreadsheet imports carry one prediction or comment per row. Rows sharing a
// reference and creation time belong to the same case, in order of first appearance.
type columns struct {
	reference, createdAt, deadline, group int
	diagnosis, confidence, outcome        int
	comment, commentAt                    int
}

var cellLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	time.DateOnly,
}

func normalizeHeader(col string) string {
	col = strings.ToLower(strings.TrimSpace(col))
	return strings.NewReplacer(" ", "", "_", "", "-", "").Replace(col)
}

// findColumn returns the index of the first header matching any name, or -1.
func findColumn(header []string, names ...string) int {
	for i, col := range header {
		norm := normalizeHeader(col)
		for _, name := range names {
			if norm == name {
				return i
			}
		}
	}
	return -1
}

func mapColumns(header []string) (columns, error) {
	c := columns{
		reference:  findColumn(header, "reference", "ref", "case", "mrn"),
		createdAt:  findColumn(header, "createdat", "created", "date"),
		deadline:   findColumn(header, "deadline", "due"),
		group:      findColumn(header, "groupid", "group"),
		diagnosis:  findColumn(header, "diagnosis", "dx"),
		confidence: findColumn(header, "confidence", "probability"),
		outcome:    findColumn(header, "outcome", "result"),
		comment:    findColumn(header, "comment", "note"),
		commentAt:  findColumn(header, "commentat", "commentedat"),
	}
	switch {
	case c.reference < 0:
		return c, &apperrors.ValidationError{Field: "header", Message: "missing required 'reference' column"}
	case c.createdAt < 0:
		return c, &apperrors.ValidationError{Field: "header", Message: "missing required 'created_at' column"}
	case c.diagnosis < 0 || c.confidence < 0:
		return c, &apperrors.ValidationError{Field: "header", Message: "missing required 'diagnosis' and 'confidence' columns"}
	}
	return c, nil
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func parseCellTime(s string) (time.Time, error) {
	for _, layout := range cellLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised time %q", s)
}

func rowError(n int, format string, args ...any) error {
	return &apperrors.ValidationError{Field: fmt.Sprintf("row %d", n), Message: fmt.Sprintf(format, args...)}
}

// rowsToCases groups tabular rows into cases. rows[0] is the header; row numbers
// in errors are 1-based to match what a spreadsheet shows.
func rowsToCases(rows [][]string) ([]caseservice.ImportedCase, error) {
	if len(rows) < 2 {
		return nil, &apperrors.ValidationError{Field: "file", Message: "must contain a header and at least one data row"}
	}
	cols, err := mapColumns(rows[0])
	if err != nil {
		return nil, err
	}

	var cases []caseservice.ImportedCase
	index := make(map[string]int)

	for i := 1; i < len(rows); i++ {
		row, n := rows[i], i+1

		ref := cell(row, cols.reference)
		if ref == "" {
			continue
		}
		rawCreated := cell(row, cols.createdAt)
		createdAt, err := parseCellTime(rawCreated)
		if err != nil {
			return nil, rowError(n, "created_at: %v", err)
		}

		key := ref + "\x00" + createdAt.Format(time.RFC3339Nano)
		pos, seen := index[key]
		if !seen {
			ic := caseservice.ImportedCase{Reference: ref, CreatedAt: createdAt}
			if raw := cell(row, cols.deadline); raw != "" {
				if ic.Deadline, err = parseCellTime(raw); err != nil {
					return nil, rowError(n, "deadline: %v", err)
				}
			}
			if raw := cell(row, cols.group); raw != "" {
				g, err := uuid.Parse(raw)
				if err != nil {
					return nil, rowError(n, "group_id: %v", err)
				}
				ic.GroupID = &g
			}
			cases = append(cases, ic)
			pos = len(cases) - 1
			index[key] = pos
		}
		ic := &cases[pos]

		if name := cell(row, cols.diagnosis); name != "" {
			p := caseservice.ImportedPrediction{DiagnosisName: name}
			raw := strings.TrimSuffix(cell(row, cols.confidence), "%")
			if p.Confidence, err = strconv.Atoi(strings.TrimSpace(raw)); err != nil {
				return nil, rowError(n, "confidence %q is not a whole number", raw)
			}
			if raw := cell(row, cols.outcome); raw != "" {
				o, err := casedomain.ParseOutcome(raw)
				if err != nil {
					return nil, rowError(n, "outcome: %v", err)
				}
				p.Outcome = &o
			}
			ic.Predictions = append(ic.Predictions, p)
		}

		if text := cell(row, cols.comment); text != "" {
			at := createdAt
			if raw := cell(row, cols.commentAt); raw != "" {
				if at, err = parseCellTime(raw); err != nil {
					return nil, rowError(n, "comment_at: %v", err)
				}
			}
			ic.Comments = append(ic.Comments, caseservice.ImportedComment{Text: text, Timestamp: at})
		}
	}

	if len(cases) == 0 {
		return nil, &apperrors.ValidationError{Field: "file", Message: "no cases found"}
	}
	return cases, nil
}

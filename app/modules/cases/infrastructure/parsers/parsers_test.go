package caseparsers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	casedomain "github.com/Black-And-White-Club/dxwager/app/modules/cases/domain"
	"github.com/Black-And-White-Club/dxwager/app/shared/apperrors"
)

func TestFactory_GetParser(t *testing.T) {
	f := NewFactory()

	tests := []struct {
		file    string
		want    Parser
		wantErr bool
	}{
		{file: "cases.json", want: &JSONParser{}},
		{file: "EXPORT.CSV", want: &CSVParser{}},
		{file: "ward/2024.xlsx", want: &XLSXParser{}},
		{file: "cases.xls", wantErr: true},
		{file: "notes.txt", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			got, err := f.GetParser(tt.file)
			if tt.wantErr {
				assert.True(t, apperrors.IsValidation(err))
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.want, got)
		})
	}
}

func TestJSONParser(t *testing.T) {
	bare := `[{"reference":"MRN-1","created_at":"2024-05-02T14:00:00Z",
		"predictions":[{"diagnosis":"Gout","confidence":80,"outcome":"right"}],
		"comments":[{"text":"tophi","timestamp":"2024-05-03T09:00:00Z"}]}]`
	wrapped := `{"cases":[{"reference":"MRN-2","created_at":"2024-05-02T14:00:00Z",
		"predictions":[{"diagnosis":"Pseudogout","confidence":20}]}]}`

	got, err := NewJSONParser().Parse([]byte(bare))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "MRN-1", got[0].Reference)
	require.Len(t, got[0].Predictions, 1)
	require.NotNil(t, got[0].Predictions[0].Outcome)
	assert.Equal(t, casedomain.OutcomeRight, *got[0].Predictions[0].Outcome)
	require.Len(t, got[0].Comments, 1)
	assert.Equal(t, "tophi", got[0].Comments[0].Text)

	got, err = NewJSONParser().Parse([]byte(wrapped))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Nil(t, got[0].Predictions[0].Outcome)

	_, err = NewJSONParser().Parse([]byte(`[{"reference":`))
	assert.True(t, apperrors.IsValidation(err))

	_, err = NewJSONParser().Parse([]byte("   "))
	assert.True(t, apperrors.IsValidation(err))
}

func TestCSVParser_GroupsRowsIntoCases(t *testing.T) {
	data := "Reference,Created At,Deadline,Diagnosis,Confidence,Outcome,Comment\n" +
		"MRN-1,2024-05-02 14:00,2024-05-09,Sarcoidosis,70%,RIGHT,\n" +
		"MRN-1,2024-05-02 14:00,,Lymphoma,20,wrong,nodes shrinking\n" +
		",,,,,,\n" +
		"MRN-2,2024-06-01,,TB,5,,\n"

	got, err := NewCSVParser().Parse([]byte(data))
	require.NoError(t, err)
	require.Len(t, got, 2)

	first := got[0]
	assert.Equal(t, "MRN-1", first.Reference)
	assert.Equal(t, time.Date(2024, 5, 2, 14, 0, 0, 0, time.UTC), first.CreatedAt)
	assert.Equal(t, time.Date(2024, 5, 9, 0, 0, 0, 0, time.UTC), first.Deadline)
	require.Len(t, first.Predictions, 2)
	assert.Equal(t, 70, first.Predictions[0].Confidence)
	assert.Equal(t, casedomain.OutcomeWrong, *first.Predictions[1].Outcome)
	require.Len(t, first.Comments, 1)
	assert.Equal(t, "nodes shrinking", first.Comments[0].Text)
	assert.Equal(t, first.CreatedAt, first.Comments[0].Timestamp)

	assert.Equal(t, "MRN-2", got[1].Reference)
	assert.True(t, got[1].Deadline.IsZero())
	assert.Nil(t, got[1].Predictions[0].Outcome)
}

func TestCSVParser_Errors(t *testing.T) {
	tests := []struct {
		name      string
		data      string
		wantField string
	}{
		{name: "header only", data: "reference,created_at,diagnosis,confidence\n", wantField: "file"},
		{name: "missing reference column", data: "created_at,diagnosis,confidence\n2024-01-01,A,1\n", wantField: "header"},
		{name: "bad confidence", data: "reference,created_at,diagnosis,confidence\nR,2024-01-01,A,high\n", wantField: "row 2"},
		{name: "bad date", data: "reference,created_at,diagnosis,confidence\nR,yesterday,A,1\n", wantField: "row 2"},
		{name: "bad outcome", data: "reference,created_at,diagnosis,confidence,outcome\nR,2024-01-01,A,1,maybe\n", wantField: "row 2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCSVParser().Parse([]byte(tt.data))
			var ve *apperrors.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.wantField, ve.Field)
		})
	}
}

func buildWorkbook(t *testing.T, rows [][]any) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cellRef, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cellRef, &row))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func TestXLSXParser(t *testing.T) {
	data := buildWorkbook(t, [][]any{
		{"reference", "created_at", "diagnosis", "confidence", "outcome", "comment", "comment_at"},
		{"MRN-7", "2024-02-01T08:00:00Z", "Whipple disease", "35", "INDETERMINATE", "PAS stain pending", "2024-02-02 10:30"},
		{"MRN-7", "2024-02-01T08:00:00Z", "Celiac", "50", "", "", ""},
	})

	got, err := NewXLSXParser().Parse(data)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Len(t, got[0].Predictions, 2)
	assert.Equal(t, "Whipple disease", got[0].Predictions[0].DiagnosisName)
	assert.Equal(t, casedomain.OutcomeIndeterminate, *got[0].Predictions[0].Outcome)
	assert.Equal(t, 50, got[0].Predictions[1].Confidence)
	require.Len(t, got[0].Comments, 1)
	assert.Equal(t, time.Date(2024, 2, 2, 10, 30, 0, 0, time.UTC), got[0].Comments[0].Timestamp)
}

func TestXLSXParser_NotAWorkbook(t *testing.T) {
	_, err := NewXLSXParser().Parse([]byte("definitely not a zip"))
	assert.True(t, apperrors.IsValidation(err))
}

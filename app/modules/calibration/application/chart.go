package calibrationservice

import (
	"bytes"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ChartPalette holds the colours of the calibration chart.
type ChartPalette struct {
	Background   drawing.Color
	TextColor    drawing.Color
	PrimaryLine  drawing.Color
	AdjustedLine drawing.Color
}

// DefaultPalette is used unless a module overrides it.
var DefaultPalette = ChartPalette{
	Background:   drawing.ColorWhite,
	TextColor:    drawing.ColorFromHex("1f2933"),
	PrimaryLine:  drawing.ColorFromHex("2f6f5e"),
	AdjustedLine: drawing.ColorFromHex("c08a2e"),
}

const noDataMessage = "No judged predictions yet"

// GenerateTrendChart produces a PNG of the running plain and adjusted Brier
// averages against judgement time. Lower is better.
func GenerateTrendChart(rows []ScoreRow, palette ChartPalette) ([]byte, error) {
	if len(rows) == 0 {
		return renderNoDataPlaceholder(palette)
	}

	xValues := make([]time.Time, len(rows))
	average := make([]float64, len(rows))
	adjusted := make([]float64, len(rows))
	maxY := 0.0
	for i, row := range rows {
		xValues[i] = row.Judged
		average[i] = row.AverageBrierScore
		adjusted[i] = row.AdjustedBrierScore
		if row.AdjustedBrierScore > maxY {
			maxY = row.AdjustedBrierScore
		}
	}

	graph := chart.Chart{
		Width:  800,
		Height: 400,
		Background: chart.Style{
			FillColor: palette.Background,
			Padding:   chart.Box{Top: 20, Left: 20, Right: 20, Bottom: 20},
		},
		Canvas: chart.Style{
			FillColor: palette.Background,
		},
		XAxis: chart.XAxis{
			Name:           "Judged",
			ValueFormatter: chart.TimeValueFormatterWithFormat("2006-01-02"),
			Style:          chart.Style{FontColor: palette.TextColor},
		},
		YAxis: chart.YAxis{
			Name:  "Brier score",
			Style: chart.Style{FontColor: palette.TextColor},
			Range: &chart.ContinuousRange{Min: 0, Max: maxY * 1.1},
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    "Average",
				XValues: xValues,
				YValues: average,
				Style: chart.Style{
					StrokeColor: palette.PrimaryLine,
					StrokeWidth: 2,
					DotWidth:    3,
					DotColor:    palette.PrimaryLine,
				},
			},
			chart.TimeSeries{
				Name:    "Adjusted",
				XValues: xValues,
				YValues: adjusted,
				Style: chart.Style{
					StrokeColor:     palette.AdjustedLine,
					StrokeWidth:     2,
					StrokeDashArray: []float64{5, 3},
				},
			},
		},
	}

	// A zero-width time range cannot be drawn; imports stamp a whole case with one time.
	first, last := xValues[0], xValues[len(xValues)-1]
	if !last.After(first) {
		day := float64(24 * time.Hour)
		at := chart.TimeToFloat64(first)
		graph.XAxis.Range = &chart.ContinuousRange{Min: at - day, Max: at + day}
	}
	graph.Elements = []chart.Renderable{chart.LegendThin(&graph)}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

func renderNoDataPlaceholder(palette ChartPalette) ([]byte, error) {
	const (
		width  = 400
		height = 200
	)

	r, err := chart.PNG(width, height)
	if err != nil {
		return nil, err
	}
	font, err := chart.GetDefaultFont()
	if err != nil {
		return nil, err
	}

	r.SetFillColor(palette.Background)
	r.MoveTo(0, 0)
	r.LineTo(width, 0)
	r.LineTo(width, height)
	r.LineTo(0, height)
	r.Close()
	r.Fill()

	r.SetFont(font)
	r.SetFontColor(palette.TextColor)
	r.SetFontSize(12.0)
	tb := r.MeasureText(noDataMessage)
	r.Text(noDataMessage, (width-tb.Width())/2, (height+tb.Height())/2)

	buffer := bytes.NewBuffer([]byte{})
	if err := r.Save(buffer); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

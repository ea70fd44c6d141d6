package plot

import (
	"fmt"
	"os"
	"time"

	"github.com/wcharczuk/go-chart/v2"

	"GoldTrack/internal/calculator"
	"GoldTrack/internal/model"
)

const maWindow = 20

// Renderer draws the close-price chart with its MA20 overlay and the
// annotated extrema. Construct it with an explicit theme; there is no
// implicit global styling.
type Renderer struct {
	Theme  Theme
	Width  int
	Height int
}

// NewRenderer creates a renderer for the named theme (default theme when
// the name is unknown).
func NewRenderer(themeName string) *Renderer {
	return &Renderer{
		Theme:  ThemeByName(themeName),
		Width:  1000,
		Height: 500,
	}
}

// Render writes the annotated chart for the series to destination as PNG,
// overwriting any existing file.
func (r *Renderer) Render(series *model.PriceSeries, destination, title string) error {
	if series == nil || len(series.Bars) == 0 {
		return fmt.Errorf("render chart: empty price series")
	}

	bars := series.Bars
	dates := make([]time.Time, len(bars))
	closes := make([]float64, len(bars))
	for i, b := range bars {
		dates[i] = b.Date
		closes[i] = b.Close
	}
	ma, err := calculator.RollingMean(closes, maWindow)
	if err != nil {
		return fmt.Errorf("render chart: %w", err)
	}

	hiDate, hiVal, loDate, loVal := extremaPoints(bars)

	t := r.Theme
	graph := chart.Chart{
		Title:  title,
		Width:  r.Width,
		Height: r.Height,
		Background: chart.Style{
			FillColor: t.Background,
			FontColor: t.Text,
		},
		Canvas: chart.Style{
			FillColor: t.Canvas,
		},
		XAxis: chart.XAxis{
			Name:           "Date",
			NameStyle:      chart.Style{FontColor: t.Text},
			ValueFormatter: chart.TimeDateValueFormatter,
			Style: chart.Style{
				FontColor:           t.Text,
				TextRotationDegrees: 45,
			},
			GridMajorStyle: chart.Style{
				StrokeColor: t.Grid,
				StrokeWidth: 1.0,
			},
		},
		YAxis: chart.YAxis{
			Name:      "Price (USD)",
			NameStyle: chart.Style{FontColor: t.Text},
			Style:     chart.Style{FontColor: t.Text},
			GridMajorStyle: chart.Style{
				StrokeColor: t.Grid,
				StrokeWidth: 1.0,
			},
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    "Close",
				XValues: dates,
				YValues: closes,
				Style: chart.Style{
					StrokeColor: t.CloseLine,
					StrokeWidth: 2.0,
				},
			},
			chart.TimeSeries{
				Name:    "MA20",
				XValues: dates,
				YValues: ma,
				Style: chart.Style{
					StrokeColor: t.MALine,
					StrokeWidth: 1.5,
				},
			},
			chart.TimeSeries{
				XValues: []time.Time{hiDate},
				YValues: []float64{hiVal},
				Style: chart.Style{
					StrokeWidth: chart.Disabled,
					DotWidth:    6,
					DotColor:    t.HighMarker,
				},
			},
			chart.TimeSeries{
				XValues: []time.Time{loDate},
				YValues: []float64{loVal},
				Style: chart.Style{
					StrokeWidth: chart.Disabled,
					DotWidth:    6,
					DotColor:    t.LowMarker,
				},
			},
			chart.AnnotationSeries{
				Annotations: []chart.Value2{
					{
						XValue: chart.TimeToFloat64(hiDate),
						YValue: hiVal,
						Label:  fmt.Sprintf("High %.2f", hiVal),
					},
					{
						XValue: chart.TimeToFloat64(loDate),
						YValue: loVal,
						Label:  fmt.Sprintf("Low %.2f", loVal),
					},
				},
				Style: chart.Style{
					FontColor:   t.Text,
					StrokeColor: t.Grid,
				},
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	f, err := os.Create(destination)
	if err != nil {
		return fmt.Errorf("render chart to %s: %w", destination, err)
	}
	defer f.Close()

	if err := graph.Render(chart.PNG, f); err != nil {
		return fmt.Errorf("render chart to %s: %w", destination, err)
	}
	return nil
}

// extremaPoints finds the highest High and lowest Low with their dates,
// earliest date winning ties. These are the marker coordinates; they match
// the summary's high/low, not the close-to-close best/worst days.
func extremaPoints(bars []model.Bar) (hiDate time.Time, hiVal float64, loDate time.Time, loVal float64) {
	hiVal = bars[0].High
	hiDate = bars[0].Date
	loVal = bars[0].Low
	loDate = bars[0].Date
	for _, b := range bars[1:] {
		if b.High > hiVal {
			hiVal = b.High
			hiDate = b.Date
		}
		if b.Low < loVal {
			loVal = b.Low
			loDate = b.Date
		}
	}
	return hiDate, hiVal, loDate, loVal
}

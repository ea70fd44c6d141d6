package plot

import (
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Theme is an explicit, enumerated visual style for rendered charts.
type Theme struct {
	Name       string
	Background drawing.Color
	Canvas     drawing.Color
	Text       drawing.Color
	Grid       drawing.Color
	CloseLine  drawing.Color
	MALine     drawing.Color
	HighMarker drawing.Color
	LowMarker  drawing.Color
}

var themes = map[string]Theme{
	"dark": {
		Name:       "dark",
		Background: drawing.ColorFromHex("1e1e2e"),
		Canvas:     drawing.ColorFromHex("27273a"),
		Text:       drawing.ColorFromHex("d9dce3"),
		Grid:       drawing.ColorFromHex("45475a"),
		CloseLine:  drawing.ColorFromHex("4c9be8"),
		MALine:     drawing.ColorFromHex("f5a97f"),
		HighMarker: drawing.ColorFromHex("40a02b"),
		LowMarker:  drawing.ColorFromHex("d20f39"),
	},
	"default": {
		Name:       "default",
		Background: drawing.ColorWhite,
		Canvas:     drawing.ColorWhite,
		Text:       chart.DefaultTextColor,
		Grid:       drawing.ColorFromHex("efefef"),
		CloseLine:  drawing.ColorFromHex("1f77b4"),
		MALine:     drawing.ColorFromHex("ff7f0e"),
		HighMarker: drawing.ColorFromHex("2ca02c"),
		LowMarker:  drawing.ColorFromHex("d62728"),
	},
}

// ThemeByName returns the named theme, falling back to the default theme
// when the name is unknown.
func ThemeByName(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return themes["default"]
}

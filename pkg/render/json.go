package render

import (
	"encoding/json"

	"github.com/mhofer/treelay/pkg/layout"
)

// JSONOption configures [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	unit        float64
	levelHeight float64
}

// WithJSONGeometry records the pixel geometry used by the SVG view in the
// JSON output, so consumers can reproduce the exact drawing.
func WithJSONGeometry(unit, levelHeight float64) JSONOption {
	return func(r *jsonRenderer) { r.unit = unit; r.levelHeight = levelHeight }
}

type jsonOutput struct {
	Width       int              `json:"width"`  // logical units
	Height      int              `json:"height"` // levels
	Unit        float64          `json:"unit,omitempty"`
	LevelHeight float64          `json:"level_height,omitempty"`
	Placements  layout.Embedding `json:"placements"`
}

// RenderJSON exports an embedding and its logical dimensions as indented
// JSON, for consumption by external drawing tools or tests.
func RenderJSON(e layout.Embedding, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}
	out := jsonOutput{
		Width:       e.Width(),
		Height:      e.Height(),
		Unit:        r.unit,
		LevelHeight: r.levelHeight,
		Placements:  e,
	}
	return json.MarshalIndent(out, "", "  ")
}

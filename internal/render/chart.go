package render

// ChartSpec is the declarative description handed to the charting engine.
// The engine itself (bar/line/doughnut primitives) is an external
// collaborator; this package only assembles its input.
type ChartSpec struct {
	Type     string       `json:"type"`
	Labels   []string     `json:"labels"`
	Datasets []ChartSet   `json:"datasets"`
	Options  ChartOptions `json:"options"`
	Theme    Theme        `json:"theme"`
}

// ChartSet is one dataset within a chart.
type ChartSet struct {
	Data   []float64 `json:"data"`
	Colors []string  `json:"colors,omitempty"`
	Fill   bool      `json:"fill,omitempty"`
}

// ChartOptions carries the per-chart presentation hints the engine honors.
type ChartOptions struct {
	IndexAxis  string  `json:"index_axis,omitempty"`
	XMax       float64 `json:"x_max,omitempty"`
	Cutout     string  `json:"cutout,omitempty"`
	ShowLegend bool    `json:"show_legend,omitempty"`
}

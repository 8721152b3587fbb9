// Package charts maps the cleaned catalog table to declarative chart
// specifications. Each builder is a pure function over the table; no chart
// depends on another's output, and nothing here renders — the specs are
// Vega-Lite-shaped JSON meant for an external interactive viewer.
package charts

// Shared sizing so the whole set renders consistently.
const (
	chartWidth  = 750
	chartHeight = 350
)

// Brand palette used across the set.
const (
	colorRed  = "#E50914"
	colorDark = "#221F1F"
)

// Spec is one declarative chart: inline data plus visual encoding.
type Spec struct {
	Title     string      `json:"title,omitempty"`
	Width     int         `json:"width"`
	Height    int         `json:"height"`
	Data      Data        `json:"data"`
	Mark      Mark        `json:"mark"`
	Encoding  Encoding    `json:"encoding"`
	Params    []Param     `json:"params,omitempty"`
	Transform []Transform `json:"transform,omitempty"`
}

// Data carries the chart's rows inline.
type Data struct {
	Values []map[string]any `json:"values"`
}

// Mark selects the chart geometry.
type Mark struct {
	Type  string `json:"type"`
	Point bool   `json:"point,omitempty"`
	Color string `json:"color,omitempty"`
}

// Encoding binds data fields to visual channels.
type Encoding struct {
	X       *Channel  `json:"x,omitempty"`
	Y       *Channel  `json:"y,omitempty"`
	Color   *Channel  `json:"color,omitempty"`
	Tooltip []Channel `json:"tooltip,omitempty"`
}

// Channel is a single field-to-channel binding. Value and Condition support
// constant colors and selection-driven highlighting.
type Channel struct {
	Field     string     `json:"field,omitempty"`
	Type      string     `json:"type,omitempty"` // quantitative | nominal | ordinal
	Title     string     `json:"title,omitempty"`
	Aggregate string     `json:"aggregate,omitempty"`
	Sort      any        `json:"sort,omitempty"` // "-x" or an explicit label order
	Stack     string     `json:"stack,omitempty"`
	Bin       *Bin       `json:"bin,omitempty"`
	Scale     *Scale     `json:"scale,omitempty"`
	Axis      *Axis      `json:"axis,omitempty"`
	Condition *Condition `json:"condition,omitempty"`
	Value     string     `json:"value,omitempty"`
}

// Axis tweaks axis presentation.
type Axis struct {
	Title      string `json:"title,omitempty"`
	LabelAngle int    `json:"labelAngle,omitempty"`
}

// Bin configures histogram binning.
type Bin struct {
	Step int `json:"step"`
}

// Scale fixes a color scale: either an explicit domain/range pairing or a
// named scheme.
type Scale struct {
	Domain []string `json:"domain,omitempty"`
	Range  []string `json:"range,omitempty"`
	Scheme string   `json:"scheme,omitempty"`
}

// Condition colors marks by selection membership.
type Condition struct {
	Param string `json:"param"`
	Value string `json:"value"`
}

// Param declares runtime interactivity: a slider binding or a point
// selection. This is the only interactivity in the system and it is resolved
// entirely inside the viewer.
type Param struct {
	Name   string  `json:"name"`
	Value  any     `json:"value,omitempty"`
	Bind   *Bind   `json:"bind,omitempty"`
	Select *Select `json:"select,omitempty"`
}

// Bind is an input-widget binding for a Param.
type Bind struct {
	Input string `json:"input"`
	Min   int    `json:"min,omitempty"`
	Max   int    `json:"max,omitempty"`
	Step  int    `json:"step,omitempty"`
}

// Select is a selection definition for a Param.
type Select struct {
	Type   string   `json:"type"`
	On     string   `json:"on,omitempty"`
	Fields []string `json:"fields,omitempty"`
}

// Transform is a declarative data transform; only filter expressions are
// used here.
type Transform struct {
	Filter string `json:"filter,omitempty"`
}

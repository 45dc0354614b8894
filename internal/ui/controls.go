package ui

import (
	"fmt"
	"strconv"

	"surface-graph/internal/core"
)

// ControlPanel tracks which HUD control is selected and applies step
// adjustments through the sim's parameter setters.
type ControlPanel struct {
	params   core.ParameterProvider
	controls []core.ParameterControl
	ints     core.IntParameterSetter
	floats   core.FloatParameterSetter
	selected int
}

// NewControlPanel inspects sim for the optional parameter interfaces.
func NewControlPanel(sim any) *ControlPanel {
	p := &ControlPanel{}
	if provider, ok := sim.(core.ParameterProvider); ok {
		p.params = provider
	}
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		p.controls = provider.ParameterControls()
	}
	if setter, ok := sim.(core.IntParameterSetter); ok {
		p.ints = setter
	}
	if setter, ok := sim.(core.FloatParameterSetter); ok {
		p.floats = setter
	}
	return p
}

// Controls returns the adjustable controls in display order.
func (p *ControlPanel) Controls() []core.ParameterControl { return p.controls }

// Selected returns the index of the highlighted control.
func (p *ControlPanel) Selected() int { return p.selected }

// Select moves the highlight by delta, wrapping around.
func (p *ControlPanel) Select(delta int) {
	n := len(p.controls)
	if n == 0 {
		return
	}
	p.selected = ((p.selected+delta)%n + n) % n
}

// Adjust moves the selected control one step in direction (-1 or +1). It
// reports whether the sim accepted the new value.
func (p *ControlPanel) Adjust(direction int) bool {
	if len(p.controls) == 0 || direction == 0 || p.params == nil {
		return false
	}
	ctrl := p.controls[p.selected]
	param, ok := p.params.Parameters().Lookup(ctrl.Key)
	if !ok {
		return false
	}
	current, err := strconv.ParseFloat(param.Value, 64)
	if err != nil {
		return false
	}
	step := ctrl.Step
	if step <= 0 {
		step = 1
	}
	target := ctrl.Clamp(current + float64(direction)*step)
	if target == current {
		return false
	}

	switch ctrl.Type {
	case core.ParamTypeInt:
		if p.ints == nil {
			return false
		}
		return p.ints.SetIntParameter(ctrl.Key, int(target))
	case core.ParamTypeFloat:
		if p.floats == nil {
			return false
		}
		return p.floats.SetFloatParameter(ctrl.Key, target)
	}
	return false
}

// Lines renders the current parameter snapshot as "Label: value" rows with
// group headings.
func (p *ControlPanel) Lines() []string {
	if p.params == nil {
		return nil
	}
	var out []string
	for _, g := range p.params.Parameters().Groups {
		out = append(out, g.Name)
		for _, param := range g.Params {
			out = append(out, fmt.Sprintf("  %s: %s", param.Label, formatValue(param)))
		}
	}
	return out
}

func formatValue(param core.Parameter) string {
	if param.Type != core.ParamTypeFloat {
		return param.Value
	}
	v, err := strconv.ParseFloat(param.Value, 64)
	if err != nil {
		return param.Value
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

package ui

import (
	"math"
	"strings"

	"github.com/ebitenui/ebitenui/widget"
)

// OptionButton is a dropdown rendered as a button showing the selected
// option. Clicking steps to the next option. It implements graphics.Dropdown.
type OptionButton struct {
	Button *widget.Button

	options  []string
	value    int
	onChange func(index int)
}

// NewOptionButton creates the adapter. The ebitenui button is attached by
// the panel builder.
func NewOptionButton(onChange func(index int)) *OptionButton {
	return &OptionButton{onChange: onChange}
}

func (o *OptionButton) SetOptions(options []string) {
	o.options = append([]string(nil), options...)
	if o.value >= len(o.options) {
		o.value = 0
	}
	o.Sync()
}

func (o *OptionButton) SetValue(index int) {
	o.SetValueWithoutNotify(index)
	if o.onChange != nil {
		o.onChange(o.value)
	}
}

func (o *OptionButton) SetValueWithoutNotify(index int) {
	o.value = index
	o.Sync()
}

func (o *OptionButton) Value() int {
	return o.value
}

// Step selects the option direction places away, wrapping at both ends,
// and notifies.
func (o *OptionButton) Step(direction int) {
	n := len(o.options)
	if n == 0 {
		return
	}
	o.SetValue(((o.value+direction)%n + n) % n)
}

// Selected returns the text of the selected option.
func (o *OptionButton) Selected() string {
	if o.value < 0 || o.value >= len(o.options) {
		return ""
	}
	return o.options[o.value]
}

// Sync pushes the selection into the ebitenui button.
func (o *OptionButton) Sync() {
	if o.Button == nil {
		return
	}
	if t := o.Button.Text(); t != nil {
		t.Label = o.Selected()
	}
}

// StepSlider is a numeric value in [Min, Max] adjusted in Step increments and
// drawn as a segmented bar. It implements graphics.Slider.
type StepSlider struct {
	Bar *widget.Label

	Min, Max, Step float64
	Segments       int

	value    float64
	onChange func(value float64)
}

func NewStepSlider(min, max, step float64, segments int, onChange func(value float64)) *StepSlider {
	return &StepSlider{
		Min:      min,
		Max:      max,
		Step:     step,
		Segments: segments,
		value:    min,
		onChange: onChange,
	}
}

func (s *StepSlider) SetValue(value float64) {
	s.SetValueWithoutNotify(value)
	if s.onChange != nil {
		s.onChange(s.value)
	}
}

func (s *StepSlider) SetValueWithoutNotify(value float64) {
	s.value = math.Max(s.Min, math.Min(s.Max, value))
	s.Sync()
}

func (s *StepSlider) Value() float64 {
	return s.value
}

// Nudge moves the value by direction steps and notifies.
func (s *StepSlider) Nudge(direction int) {
	s.SetValue(s.value + float64(direction)*s.Step)
}

// BarText renders the value as e.g. "[|||.....]".
func (s *StepSlider) BarText() string {
	filled := 0
	if span := s.Max - s.Min; span > 0 {
		filled = int(math.Round((s.value - s.Min) / span * float64(s.Segments)))
	}
	return "[" + strings.Repeat("|", filled) + strings.Repeat(".", s.Segments-filled) + "]"
}

// Sync pushes the value into the bar label.
func (s *StepSlider) Sync() {
	if s.Bar != nil {
		s.Bar.Label = s.BarText()
	}
}

// TextLabel implements graphics.Label over an ebitenui label.
type TextLabel struct {
	Label *widget.Label
	text  string
}

func (l *TextLabel) SetText(text string) {
	l.text = text
	l.Sync()
}

func (l *TextLabel) Text() string {
	return l.text
}

func (l *TextLabel) Sync() {
	if l.Label != nil {
		l.Label.Label = l.text
	}
}

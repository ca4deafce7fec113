package ui

import (
	"testing"

	"github.com/automoto/gfxpanel/graphics"
)

var (
	_ graphics.Dropdown = (*OptionButton)(nil)
	_ graphics.Slider   = (*StepSlider)(nil)
	_ graphics.Label    = (*TextLabel)(nil)
)

func TestOptionButton_NotifyOnlyOnSetValue(t *testing.T) {
	var got []int
	o := NewOptionButton(func(i int) { got = append(got, i) })
	o.SetOptions([]string{"Low", "Medium", "High"})

	o.SetValueWithoutNotify(2)
	if len(got) != 0 {
		t.Errorf("silent setter notified %v", got)
	}
	if o.Selected() != "High" {
		t.Errorf("Selected = %q, want High", o.Selected())
	}

	o.SetValue(1)
	if len(got) != 1 || got[0] != 1 {
		t.Errorf("notifications = %v, want [1]", got)
	}
}

func TestOptionButton_StepWraps(t *testing.T) {
	var last int
	o := NewOptionButton(func(i int) { last = i })
	o.SetOptions([]string{"a", "b", "c"})

	tests := []struct {
		from, dir, want int
	}{
		{0, +1, 1},
		{2, +1, 0},
		{0, -1, 2},
		{1, -4, 0},
	}
	for _, tt := range tests {
		o.SetValueWithoutNotify(tt.from)
		o.Step(tt.dir)
		if o.Value() != tt.want || last != tt.want {
			t.Errorf("Step(%d) from %d = (%d, notified %d), want %d", tt.dir, tt.from, o.Value(), last, tt.want)
		}
	}
}

func TestOptionButton_StepEmpty(t *testing.T) {
	called := false
	o := NewOptionButton(func(int) { called = true })
	o.Step(1)
	if called {
		t.Error("Step on empty options notified")
	}
	if o.Selected() != "" {
		t.Errorf("Selected = %q, want empty", o.Selected())
	}
}

func TestStepSlider(t *testing.T) {
	var got []float64
	s := NewStepSlider(0, 8, 1, 8, func(v float64) { got = append(got, v) })

	s.SetValueWithoutNotify(3)
	if s.Value() != 3 || len(got) != 0 {
		t.Errorf("silent set: value %v notified %v", s.Value(), got)
	}
	if s.BarText() != "[|||.....]" {
		t.Errorf("BarText = %q", s.BarText())
	}

	s.Nudge(+1)
	if s.Value() != 4 || len(got) != 1 || got[0] != 4 {
		t.Errorf("Nudge(+1): value %v notified %v", s.Value(), got)
	}

	s.SetValue(42)
	if s.Value() != 8 {
		t.Errorf("value = %v, want clamped 8", s.Value())
	}
	s.SetValue(-3)
	if s.Value() != 0 {
		t.Errorf("value = %v, want clamped 0", s.Value())
	}
	if s.BarText() != "[........]" {
		t.Errorf("BarText = %q", s.BarText())
	}
}

func TestTextLabel(t *testing.T) {
	l := &TextLabel{}
	l.SetText("Pixel Light Count [3]")
	if l.Text() != "Pixel Light Count [3]" {
		t.Errorf("Text = %q", l.Text())
	}
}

// Widget events from the adapters drive a controller without loops: the
// controller's silent writes never re-enter the handlers.
func TestAdaptersWithController(t *testing.T) {
	p := &memPlatform{
		names:   []string{"Low", "High"},
		lights:  []int{1, 4},
		modes:   []graphics.DisplayMode{{Width: 800, Height: 600, RefreshRate: 60}},
		current: graphics.DisplayMode{Width: 800, Height: 600, RefreshRate: 60},
	}
	var ctl *graphics.Controller
	calls := 0
	quality := NewOptionButton(func(i int) { calls++; _ = ctl.OnQualityLevelChanged(i) })
	resolution := NewOptionButton(func(i int) { calls++; _ = ctl.OnResolutionChanged(i) })
	slider := NewStepSlider(0, 8, 1, 8, func(v float64) { calls++; _ = ctl.OnPixelLightCountChanged(v) })
	label := &TextLabel{}

	ctl = graphics.NewController(p, graphics.Widgets{
		Quality:         quality,
		Resolution:      resolution,
		PixelLightCount: slider,
		PixelLightLabel: label,
	})
	if err := ctl.Initialize(); err != nil {
		t.Fatal(err)
	}
	if calls != 0 {
		t.Fatalf("Initialize triggered %d handler calls", calls)
	}

	quality.Step(+1)
	if p.quality != 1 || slider.Value() != 4 || label.Text() != "Pixel Light Count [4]" {
		t.Errorf("after quality step: quality %d slider %v label %q", p.quality, slider.Value(), label.Text())
	}
	slider.Nudge(-1)
	if p.light != 3 {
		t.Errorf("light = %d, want 3", p.light)
	}
	if calls != 2 {
		t.Errorf("handler calls = %d, want 2", calls)
	}
}

type memPlatform struct {
	names   []string
	lights  []int
	quality int
	light   int
	modes   []graphics.DisplayMode
	current graphics.DisplayMode
}

func (p *memPlatform) QualityLevel() int { return p.quality }

func (p *memPlatform) SetQualityLevel(level int) {
	p.quality = level
	p.light = p.lights[level]
}

func (p *memPlatform) QualityNames() []string { return p.names }

func (p *memPlatform) PixelLightCount() int { return p.light }

func (p *memPlatform) SetPixelLightCount(count int) { p.light = count }

func (p *memPlatform) DisplayModes() []graphics.DisplayMode { return p.modes }

func (p *memPlatform) CurrentDisplayMode() graphics.DisplayMode { return p.current }

func (p *memPlatform) RequestDisplayMode(mode graphics.DisplayMode, _ bool) { p.current = mode }

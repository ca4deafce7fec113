package graphics

type fakePlatform struct {
	names       []string
	presetLight []int
	quality     int
	lights      int
	modes       []DisplayMode
	current     DisplayMode

	requested  []DisplayMode
	fullscreen []bool
}

func newFakePlatform() *fakePlatform {
	return &fakePlatform{
		names:       []string{"Low", "Medium", "High"},
		presetLight: []int{4, 3, 2},
		quality:     0,
		lights:      4,
		modes: []DisplayMode{
			{Width: 800, Height: 600, RefreshRate: 60},
			{Width: 1920, Height: 1080, RefreshRate: 60},
		},
		current: DisplayMode{Width: 1920, Height: 1080, RefreshRate: 60},
	}
}

func (p *fakePlatform) QualityLevel() int { return p.quality }

func (p *fakePlatform) SetQualityLevel(level int) {
	p.quality = level
	p.lights = p.presetLight[level]
}

func (p *fakePlatform) QualityNames() []string { return p.names }

func (p *fakePlatform) PixelLightCount() int { return p.lights }

func (p *fakePlatform) SetPixelLightCount(count int) { p.lights = count }

func (p *fakePlatform) DisplayModes() []DisplayMode { return p.modes }

func (p *fakePlatform) CurrentDisplayMode() DisplayMode { return p.current }

func (p *fakePlatform) RequestDisplayMode(mode DisplayMode, fullscreen bool) {
	p.current = mode
	p.requested = append(p.requested, mode)
	p.fullscreen = append(p.fullscreen, fullscreen)
}

type fakeDropdown struct {
	options  []string
	value    int
	notified int
	onChange func(int)
}

func (d *fakeDropdown) SetOptions(options []string) {
	d.options = append([]string(nil), options...)
}

func (d *fakeDropdown) SetValue(index int) {
	d.value = index
	d.notified++
	if d.onChange != nil {
		d.onChange(index)
	}
}

func (d *fakeDropdown) SetValueWithoutNotify(index int) { d.value = index }

func (d *fakeDropdown) Value() int { return d.value }

type fakeSlider struct {
	value    float64
	notified int
}

func (s *fakeSlider) SetValue(value float64) {
	s.value = value
	s.notified++
}

func (s *fakeSlider) SetValueWithoutNotify(value float64) { s.value = value }

func (s *fakeSlider) Value() float64 { return s.value }

type fakeLabel struct {
	text string
}

func (l *fakeLabel) SetText(text string) { l.text = text }

type panel struct {
	platform   *fakePlatform
	quality    *fakeDropdown
	resolution *fakeDropdown
	slider     *fakeSlider
	label      *fakeLabel
	ctl        *Controller
}

func newPanel(p *fakePlatform, opts ...Option) *panel {
	pn := &panel{
		platform:   p,
		quality:    &fakeDropdown{},
		resolution: &fakeDropdown{},
		slider:     &fakeSlider{},
		label:      &fakeLabel{},
	}
	pn.ctl = NewController(p, Widgets{
		Quality:         pn.quality,
		Resolution:      pn.resolution,
		PixelLightCount: pn.slider,
		PixelLightLabel: pn.label,
	}, opts...)
	return pn
}

func (pn *panel) notifications() int {
	return pn.quality.notified + pn.resolution.notified + pn.slider.notified
}

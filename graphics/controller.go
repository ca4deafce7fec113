// Package graphics binds a graphics settings panel (quality preset,
// resolution, pixel light count) to a host Platform.
//
// The Controller applies every change immediately. The values captured by
// Initialize are kept as a Snapshot which Reset restores.
package graphics

import (
	"errors"
	"fmt"
	"math"

	"github.com/rs/zerolog"
)

// DefaultLabelFormat formats the pixel light count label.
const DefaultLabelFormat = "Pixel Light Count [%d]"

var (
	ErrUnboundWidget      = errors.New("graphics: widget not bound")
	ErrNotInitialized     = errors.New("graphics: controller not initialized")
	ErrResolutionNotFound = errors.New("graphics: resolution option out of range")
)

// Widgets groups the UI elements the Controller reflects state into.
type Widgets struct {
	Quality         Dropdown
	Resolution      Dropdown
	PixelLightCount Slider
	PixelLightLabel Label
}

// Snapshot holds the settings captured when the panel was initialized.
type Snapshot struct {
	QualityLevel    int
	Resolution      Resolution
	ResolutionIndex int
	Mode            DisplayMode
	PixelLightCount int
}

// Option configures a Controller.
type Option func(*Controller)

// WithCommitter sets the collaborator Apply hands the settings to.
func WithCommitter(c Committer) Option {
	return func(ctl *Controller) { ctl.committer = c }
}

// WithLogger sets the controller's logger.
func WithLogger(l zerolog.Logger) Option {
	return func(ctl *Controller) { ctl.log = l }
}

// WithLabelFormat overrides DefaultLabelFormat. The format receives one int.
func WithLabelFormat(format string) Option {
	return func(ctl *Controller) { ctl.labelFormat = format }
}

// Controller synchronizes quality, resolution and pixel light count between
// the Widgets and the Platform. It is not safe for concurrent use; every
// method is expected to run on the UI thread.
type Controller struct {
	platform    Platform
	widgets     Widgets
	committer   Committer
	log         zerolog.Logger
	labelFormat string

	modes       []DisplayMode
	custom      *DisplayMode
	snapshot    Snapshot
	initialized bool
}

// NewController creates a Controller. Call Initialize before routing any
// widget events to it.
func NewController(p Platform, w Widgets, opts ...Option) *Controller {
	c := &Controller{
		platform:    p,
		widgets:     w,
		log:         zerolog.Nop(),
		labelFormat: DefaultLabelFormat,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) checkBindings() error {
	switch {
	case c.platform == nil:
		return fmt.Errorf("%w: platform", ErrUnboundWidget)
	case c.widgets.Quality == nil:
		return fmt.Errorf("%w: quality dropdown", ErrUnboundWidget)
	case c.widgets.Resolution == nil:
		return fmt.Errorf("%w: resolution dropdown", ErrUnboundWidget)
	case c.widgets.PixelLightCount == nil:
		return fmt.Errorf("%w: pixel light slider", ErrUnboundWidget)
	case c.widgets.PixelLightLabel == nil:
		return fmt.Errorf("%w: pixel light label", ErrUnboundWidget)
	}
	return nil
}

// Initialize reads the platform's current settings, populates the widgets
// without triggering notifications and captures the Snapshot used by Reset.
// Calling it again starts a new snapshot session.
func (c *Controller) Initialize() error {
	if err := c.checkBindings(); err != nil {
		return err
	}

	quality := c.platform.QualityLevel()
	c.widgets.Quality.SetOptions(c.platform.QualityNames())
	c.widgets.Quality.SetValueWithoutNotify(quality)

	c.modes = append([]DisplayMode(nil), c.platform.DisplayModes()...)
	c.custom = nil
	options := make([]string, 0, len(c.modes)+1)
	for _, m := range c.modes {
		options = append(options, m.String())
	}

	current := c.platform.CurrentDisplayMode()
	var res Resolution
	if idx := findMode(c.modes, current); idx >= 0 {
		res = Enumerated(idx)
	} else {
		// not enumerated by the platform, offer it as the last option
		options = append(options, current.String())
		c.custom = &current
		res = Custom(current)
	}
	resIndex := res.OptionIndex(c.modes)
	c.widgets.Resolution.SetOptions(options)
	c.widgets.Resolution.SetValueWithoutNotify(resIndex)

	lights := c.platform.PixelLightCount()
	c.widgets.PixelLightCount.SetValueWithoutNotify(float64(lights))
	c.refreshLabel()

	c.snapshot = Snapshot{
		QualityLevel:    quality,
		Resolution:      res,
		ResolutionIndex: resIndex,
		Mode:            current,
		PixelLightCount: lights,
	}
	c.initialized = true

	c.log.Debug().
		Int("quality", quality).
		Stringer("resolution", res).
		Stringer("mode", current).
		Int("pixelLights", lights).
		Msg("Captured graphics defaults")
	return nil
}

// OnQualityLevelChanged switches the platform's quality preset and reflects
// the preset's pixel light count back into the slider and label.
func (c *Controller) OnQualityLevelChanged(index int) error {
	if !c.initialized {
		return ErrNotInitialized
	}
	c.platform.SetQualityLevel(index)

	lights := c.platform.PixelLightCount()
	c.widgets.PixelLightCount.SetValueWithoutNotify(float64(lights))
	c.refreshLabel()

	c.log.Debug().Int("quality", index).Int("pixelLights", lights).Msg("Quality level changed")
	return nil
}

// OnResolutionChanged applies the display mode behind dropdown option index
// in fullscreen. The option after the last enumerated mode is the custom
// mode captured by Initialize.
func (c *Controller) OnResolutionChanged(index int) error {
	if !c.initialized {
		return ErrNotInitialized
	}
	res, err := c.resolutionAt(index)
	if err != nil {
		return err
	}
	c.applyResolution(res)
	return nil
}

func (c *Controller) resolutionAt(index int) (Resolution, error) {
	switch {
	case index >= 0 && index < len(c.modes):
		return Enumerated(index), nil
	case index >= len(c.modes) && c.custom != nil:
		return Custom(*c.custom), nil
	}
	return Resolution{}, fmt.Errorf("%w: %d of %d", ErrResolutionNotFound, index, len(c.modes))
}

func (c *Controller) applyResolution(res Resolution) {
	mode := res.Mode(c.modes)
	c.platform.RequestDisplayMode(mode, true)
	c.log.Debug().Stringer("resolution", res).Stringer("mode", mode).Msg("Display mode requested")
}

// OnPixelLightCountChanged rounds value to the nearest integer and stores it
// as the platform's pixel light count.
func (c *Controller) OnPixelLightCountChanged(value float64) error {
	if !c.initialized {
		return ErrNotInitialized
	}
	c.platform.SetPixelLightCount(int(math.Round(value)))
	c.refreshLabel()
	return nil
}

// Apply hands the current settings to the configured Committer. Settings are
// already live on the platform, so without a Committer Apply does nothing.
func (c *Controller) Apply() error {
	if c.committer == nil {
		return nil
	}
	if !c.initialized {
		return ErrNotInitialized
	}
	s := c.Current()
	if err := c.committer.Commit(s); err != nil {
		return fmt.Errorf("commit graphics settings: %w", err)
	}
	c.log.Info().Int("quality", s.QualityLevel).Stringer("mode", s.Mode).Msg("Graphics settings committed")
	return nil
}

// Reset restores the settings captured by Initialize. Quality goes first
// since the preset redefines the pixel light count; the captured light count
// is written last so it wins over the preset's.
func (c *Controller) Reset() error {
	if !c.initialized {
		return ErrNotInitialized
	}
	s := c.snapshot

	c.platform.SetQualityLevel(s.QualityLevel)
	presetLights := c.platform.PixelLightCount()
	c.widgets.Quality.SetValueWithoutNotify(s.QualityLevel)

	c.applyResolution(s.Resolution)
	c.widgets.Resolution.SetValueWithoutNotify(s.ResolutionIndex)

	c.platform.SetPixelLightCount(s.PixelLightCount)
	c.widgets.PixelLightCount.SetValueWithoutNotify(float64(s.PixelLightCount))
	c.refreshLabel()

	c.log.Info().
		Int("quality", s.QualityLevel).
		Stringer("mode", s.Mode).
		Int("pixelLights", s.PixelLightCount).
		Int("presetPixelLights", presetLights).
		Msg("Graphics settings reset")
	return nil
}

// Snapshot returns the captured defaults. ok is false before Initialize.
func (c *Controller) Snapshot() (Snapshot, bool) {
	return c.snapshot, c.initialized
}

// Current reads the live settings from the platform.
func (c *Controller) Current() Settings {
	return Settings{
		QualityLevel:    c.platform.QualityLevel(),
		Mode:            c.platform.CurrentDisplayMode(),
		PixelLightCount: c.platform.PixelLightCount(),
	}
}

// LightLabel formats count the way the pixel light label shows it.
func (c *Controller) LightLabel(count int) string {
	return fmt.Sprintf(c.labelFormat, count)
}

func (c *Controller) refreshLabel() {
	c.widgets.PixelLightLabel.SetText(c.LightLabel(c.platform.PixelLightCount()))
}

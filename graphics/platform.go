package graphics

// Platform is the host's process-wide graphics settings surface.
// Calls are assumed to succeed.
type Platform interface {
	QualityLevel() int
	// SetQualityLevel switches preset. Presets may redefine the pixel light
	// count as a side effect.
	SetQualityLevel(level int)
	QualityNames() []string

	PixelLightCount() int
	SetPixelLightCount(count int)

	DisplayModes() []DisplayMode
	CurrentDisplayMode() DisplayMode
	RequestDisplayMode(mode DisplayMode, fullscreen bool)
}

// Dropdown is a selectable list of options with index-based change
// notification.
type Dropdown interface {
	SetOptions(options []string)
	// SetValue selects index and fires the change handler.
	SetValue(index int)
	// SetValueWithoutNotify selects index silently.
	SetValueWithoutNotify(index int)
	Value() int
}

// Slider holds a numeric value with change notification.
type Slider interface {
	SetValue(value float64)
	SetValueWithoutNotify(value float64)
	Value() float64
}

// Label is a settable text element.
type Label interface {
	SetText(text string)
}

// Settings is the live state of the three controlled settings.
type Settings struct {
	QualityLevel    int
	Mode            DisplayMode
	PixelLightCount int
}

// Committer receives the settings when the user presses Apply.
type Committer interface {
	Commit(s Settings) error
}

// CommitterFunc adapts a function to Committer.
type CommitterFunc func(s Settings) error

func (f CommitterFunc) Commit(s Settings) error {
	return f(s)
}

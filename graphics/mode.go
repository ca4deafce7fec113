package graphics

import "fmt"

// DisplayMode is a concrete width/height/refresh-rate combination supported
// by the output device.
type DisplayMode struct {
	Width       int `yaml:"width"`
	Height      int `yaml:"height"`
	RefreshRate int `yaml:"refreshRate"`
}

// String returns the dropdown label for the mode, e.g. "1920x1080 @60".
func (m DisplayMode) String() string {
	return fmt.Sprintf("%dx%d @%d", m.Width, m.Height, m.RefreshRate)
}

// Resolution is either an index into the platform's enumerated display modes
// or a custom mode the enumeration did not contain.
type Resolution struct {
	index  int
	custom *DisplayMode
}

// Enumerated returns a Resolution pointing at the i-th enumerated mode.
func Enumerated(i int) Resolution {
	return Resolution{index: i}
}

// Custom returns a Resolution carrying a literal display mode.
func Custom(m DisplayMode) Resolution {
	return Resolution{index: -1, custom: &m}
}

// IsCustom reports whether r holds a literal mode.
func (r Resolution) IsCustom() bool {
	return r.custom != nil
}

// Index returns the enumerated index. ok is false for custom resolutions.
func (r Resolution) Index() (int, bool) {
	if r.custom != nil {
		return 0, false
	}
	return r.index, true
}

// Mode resolves r against the enumerated modes.
func (r Resolution) Mode(modes []DisplayMode) DisplayMode {
	if r.custom != nil {
		return *r.custom
	}
	return modes[r.index]
}

// OptionIndex is the dropdown position of r. Custom modes are listed after
// every enumerated mode.
func (r Resolution) OptionIndex(modes []DisplayMode) int {
	if r.custom != nil {
		return len(modes)
	}
	return r.index
}

func (r Resolution) String() string {
	if r.custom != nil {
		return "custom(" + r.custom.String() + ")"
	}
	return fmt.Sprintf("enumerated(%d)", r.index)
}

// findMode returns the index of the first mode equal to target, or -1.
func findMode(modes []DisplayMode, target DisplayMode) int {
	for i, m := range modes {
		if m == target {
			return i
		}
	}
	return -1
}

package enum

// Toggle returns the opposite color mode (light↔dark). Anything that is not light,
// including the zero value, toggles to light.
func (c ColorMode) Toggle() ColorMode {
	if c == ColorModeLight {
		return ColorModeDark
	}
	return ColorModeLight
}

// TextColor returns the value of the --color-text CSS property for the mode.
func (c ColorMode) TextColor() string {
	if c == ColorModeDark {
		return "blue"
	}
	return "red"
}

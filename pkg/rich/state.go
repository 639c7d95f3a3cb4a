package rich

// State is a three-valued decoration flag. The zero value is Inherit, which
// leaves the decision to whatever style it is merged over.
type State uint8

const (
	// Inherit expresses no opinion about the decoration
	Inherit State = iota
	// On explicitly enables the decoration
	On
	// Off explicitly disables the decoration, even when an ancestor enabled it
	Off
)

// StateOf converts a boolean into an explicit On or Off state
func StateOf(enabled bool) State {
	if enabled {
		return On
	}
	return Off
}

// Or returns s unless it is Inherit, in which case base is returned
func (s State) Or(base State) State {
	if s != Inherit {
		return s
	}
	return base
}

// Enabled reports whether the decoration should be drawn.
// Inherit at the end of a merge chain means nothing enabled it.
func (s State) Enabled() bool {
	return s == On
}

// Bool returns the explicit value of the state. ok is false for Inherit.
func (s State) Bool() (value, ok bool) {
	switch s {
	case On:
		return true, true
	case Off:
		return false, true
	default:
		return false, false
	}
}

// String returns the string representation of the state
func (s State) String() string {
	switch s {
	case Inherit:
		return "inherit"
	case On:
		return "on"
	case Off:
		return "off"
	default:
		return "unknown"
	}
}

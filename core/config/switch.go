package config

import "strings"

// Switch is a boolean setting read from a loose token set. Recognized tokens
// (case-insensitive) are 1/true/yes/on and 0/false/no/off. Anything else,
// including an unset variable, leaves the switch undecided so the caller's
// default applies.
type Switch struct {
	value bool
	set   bool
}

// On returns a decided switch with the given value.
func On(v bool) Switch {
	return Switch{value: v, set: true}
}

// UnmarshalText implements encoding.TextUnmarshaler. It never fails.
func (s *Switch) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "1", "true", "yes", "on":
		*s = On(true)
	case "0", "false", "no", "off":
		*s = On(false)
	default:
		*s = Switch{}
	}
	return nil
}

// Or returns the decided value, or def when the switch is undecided.
func (s Switch) Or(def bool) bool {
	if !s.set {
		return def
	}
	return s.value
}

// IsSet reports whether a recognized token was seen.
func (s Switch) IsSet() bool {
	return s.set
}

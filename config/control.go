package config

import "strings"

// ControlType says who drives a car slot. ControlNone marks a free slot.
type ControlType int

const (
	ControlNone ControlType = iota
	ControlPlayer
	ControlScripted
	ControlPace
)

var controlNames = map[ControlType]string{
	ControlNone:     "none",
	ControlPlayer:   "player",
	ControlScripted: "scripted",
	ControlPace:     "pace",
}

func (c ControlType) String() string {
	if name, ok := controlNames[c]; ok {
		return name
	}
	return "unknown"
}

// ParseControlType maps a level property value to a ControlType.
// Unknown names yield ControlNone and false.
func ParseControlType(name string) (ControlType, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for c, n := range controlNames {
		if n == name {
			return c, c != ControlNone
		}
	}
	return ControlNone, false
}

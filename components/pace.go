package components

import (
	"github.com/automoto/tickblend/shared/fixmath"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// PaceData drives a pace car back and forth along a line.
type PaceData struct {
	Tween    *gween.Tween
	Origin   fixmath.Vector
	Heading  int32 // outbound heading
	Range    float32
	Duration float32 // ticks per leg
	Inbound  bool
	Offset   float32 // distance from Origin at the end of the last tick
}

var Pace = donburi.NewComponentType[PaceData]()

package components

import (
	"github.com/automoto/tickblend/config"
	"github.com/automoto/tickblend/shared/fixmath"
	"github.com/yohamta/donburi"
)

// CarData is the authoritative state of one car.
type CarData struct {
	Slot    int
	Control config.ControlType

	Position fixmath.Vector
	Heading  int32 // 4096 per turn, 0 faces +Z
	Roll     int32
	Speed    int32 // world units per tick, negative when reversing

	// Pose is RotY(Heading)·RotZ(Roll) with Position as translation.
	Pose fixmath.Matrix

	Bumps int // wall contacts since spawn
}

var Car = donburi.NewComponentType[CarData]()

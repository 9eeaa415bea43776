package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData is the view centre in level pixels.
type CameraData struct {
	Position math.Vec2
	Zoom     float64
	Follow   int // slot followed, -1 for none
}

var Camera = donburi.NewComponentType[CameraData]()

package components

import "github.com/yohamta/donburi"

// InputData is the latest input a front end set for a player car.
// It persists across ticks until replaced.
type InputData struct {
	Throttle float64
	Steer    float64
}

var PlayerInput = donburi.NewComponentType[InputData]()

package components

import "github.com/yohamta/donburi"

// DriveData is the command a car follows for the current tick.
type DriveData struct {
	Throttle float64 // -1 reverse .. 1 full ahead
	Steer    float64 // 1 turns anticlockwise on screen, -1 clockwise
}

var Drive = donburi.NewComponentType[DriveData]()

// PhysicsData holds per-car tuning copied from config at spawn.
type PhysicsData struct {
	MaxSpeed     int32
	ReverseSpeed int32
	Acceleration int32
	Drag         float64
	TurnRate     int32
	MaxRoll      int32
	Bounce       float64
}

var Physics = donburi.NewComponentType[PhysicsData]()

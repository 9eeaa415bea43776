package components

import "github.com/yohamta/donburi"

// ScriptData names the Lua driver of a scripted car.
type ScriptData struct {
	Driver string
}

var Script = donburi.NewComponentType[ScriptData]()

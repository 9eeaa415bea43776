package archetypes

import (
	"github.com/automoto/tickblend/components"
	"github.com/automoto/tickblend/tags"
	"github.com/yohamta/donburi"
)

var (
	Car = newArchetype(
		tags.Car,
		components.Car,
		components.Object,
		components.Drive,
		components.Physics,
	)
	PlayerCar = newArchetype(
		tags.Player,
		components.PlayerInput,
	)
	ScriptedCar = newArchetype(
		tags.Scripted,
		components.Script,
	)
	PaceCar = newArchetype(
		tags.Pace,
		components.Pace,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	Camera = newArchetype(
		components.Camera,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

// Components returns the archetype's component list, for composing with
// another archetype in a single Spawn.
func (a *archetype) Components() []donburi.IComponentType {
	return a.components
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return w.Entry(w.Create(all...))
}

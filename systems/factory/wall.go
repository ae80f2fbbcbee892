package factory

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/haymaker/archetypes"
	"github.com/automoto/haymaker/components"
	"github.com/automoto/haymaker/tags"
)

func CreateWall(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = wall

	components.Object.SetValue(wall, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return wall
}

// CreateArenaBounds builds the floor and the two side walls enclosing the
// arena. The ceiling is left open; jumps never reach it.
func CreateArenaBounds(ecs *ecs.ECS, width, height float64) {
	const thickness = 16.0
	CreateWall(ecs, 0, height-thickness, width, thickness)
	CreateWall(ecs, 0, 0, thickness, height-thickness)
	CreateWall(ecs, width-thickness, 0, thickness, height-thickness)
}

package component

import "github.com/go-gl/mathgl/mgl32"

// TransformComponent holds an entity's center position in world units
type TransformComponent struct {
	Position mgl32.Vec2
}

// light.go
package renderer

import (
	"github.com/go-gl/mathgl/mgl32"
)

type LightType int

const (
	STATIC_LIGHT LightType = iota
	DYNAMIC_LIGHT
)

type Light struct {
	Position  mgl32.Vec3
	Direction mgl32.Vec3
	Color     mgl32.Vec3
	Intensity float32
	Type      LightType // "static", "dynamic"
	Mode      string    // "directional", "point", "spot"
	Enabled   bool

	CastShadows      bool
	ShadowResolution int32 // shadow map size in texels, per side
}

func CreateDirectionalLight(direction, color mgl32.Vec3, intensity float32) *Light {
	return &Light{
		Direction:        direction,
		Color:            color,
		Intensity:        intensity,
		Type:             STATIC_LIGHT,
		Mode:             "directional",
		Enabled:          true,
		CastShadows:      true,
		ShadowResolution: 2048,
	}
}

func CreatePointLight(position, color mgl32.Vec3, intensity float32) *Light {
	return &Light{
		Position:         position,
		Color:            color,
		Intensity:        intensity,
		Type:             DYNAMIC_LIGHT,
		Mode:             "point",
		Enabled:          true,
		CastShadows:      false,
		ShadowResolution: 1024,
	}
}

// material.go
package renderer

// ShadingMode selects the lighting model a material is shaded with.
type ShadingMode int

const (
	ShadingLit   ShadingMode = iota // full lighting path
	ShadingUnlit                    // flat color, no lighting
)

// CullMode selects which faces the rasterizer discards.
type CullMode int

const (
	CullNone CullMode = iota
	CullBack
)

// DefaultMaterial provides a basic material to fall back on
var DefaultMaterial = &Material{
	Name:          "default",
	DiffuseColor:  [3]float32{1.0, 1.0, 1.0},
	SpecularColor: [3]float32{1.0, 1.0, 1.0},
	Shininess:     32.0,
	Metallic:      0.0,
	Roughness:     0.5,
	Alpha:         1.0,
	Shading:       ShadingLit,
	UseFog:        true,
	UseSkybox:     true,
	Cull:          CullBack,
}

type Material struct {
	// HOT DATA - Accessed every render call for shading calculations
	DiffuseColor  [3]float32 // Base color for lighting
	SpecularColor [3]float32 // Specular highlight color
	Shininess     float32    // Specular exponent
	Metallic      float32    // 0.0 = dielectric, 1.0 = metallic
	Roughness     float32    // 0.0 = mirror, 1.0 = completely rough
	Alpha         float32    // Transparency (0.0 = transparent, 1.0 = opaque)
	Shading       ShadingMode
	UseFog        bool // Fog contribution
	UseSkybox     bool // Skybox/IBL contribution
	Cull          CullMode

	// COLD DATA - Identification only
	Name string // Material name for debugging
}

// NewWireframeMaterial returns the cheap material the quick-render mode swaps
// in: unlit, no fog or skybox contribution, back faces culled.
func NewWireframeMaterial() *Material {
	return &Material{
		Name:          "quickrender-wireframe",
		DiffuseColor:  [3]float32{1.0, 1.0, 1.0},
		SpecularColor: [3]float32{0.0, 0.0, 0.0},
		Shininess:     0.0,
		Alpha:         1.0,
		Shading:       ShadingUnlit,
		UseFog:        false,
		UseSkybox:     false,
		Cull:          CullBack,
	}
}

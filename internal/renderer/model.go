// model.go
package renderer

import (
	"github.com/go-gl/mathgl/mgl32"
)

// RenderStyle selects how a model's mesh is rasterized.
type RenderStyle int

const (
	RenderStyleSolid RenderStyle = iota
	RenderStyleWireframe
)

type Model struct {
	// HOT DATA - Accessed every frame in render loop
	ModelMatrix mgl32.Mat4  // Transformation matrix - used every frame
	Position    mgl32.Vec3  // Position in world space
	Scale       mgl32.Vec3  // Scale factors
	Rotation    mgl32.Quat  // Rotation quaternion
	Material    *Material   // Material properties pointer
	RenderStyle RenderStyle // Solid or wireframe rasterization
	IsDirty     bool        // Needs recalculation flag

	// COLD DATA - Initialization only or rarely accessed
	Id   int    // Model identifier
	Name string // Model name
}

func NewModel(name string) *Model {
	m := &Model{
		Name:     name,
		Scale:    mgl32.Vec3{1, 1, 1},
		Rotation: mgl32.QuatIdent(),
		Material: DefaultMaterial,
	}
	m.updateModelMatrix()
	return m
}

func (m *Model) X() float32 {
	return m.Position[0]
}

func (m *Model) Y() float32 {
	return m.Position[1]
}

func (m *Model) Z() float32 {
	return m.Position[2]
}

// SetPosition sets the position of the model
func (m *Model) SetPosition(x, y, z float32) {
	m.Position = mgl32.Vec3{x, y, z}
	m.updateModelMatrix()
	m.IsDirty = true
}

func (m *Model) SetScale(x, y, z float32) {
	m.Scale = mgl32.Vec3{x, y, z}
	m.updateModelMatrix()
	m.IsDirty = true
}

func (m *Model) Rotate(angleX, angleY, angleZ float32) {
	if m.Rotation == (mgl32.Quat{}) {
		m.Rotation = mgl32.QuatIdent()
	}
	rotationX := mgl32.QuatRotate(mgl32.DegToRad(angleX), mgl32.Vec3{1, 0, 0})
	rotationY := mgl32.QuatRotate(mgl32.DegToRad(angleY), mgl32.Vec3{0, 1, 0})
	rotationZ := mgl32.QuatRotate(mgl32.DegToRad(angleZ), mgl32.Vec3{0, 0, 1})
	m.Rotation = m.Rotation.Mul(rotationX).Mul(rotationY).Mul(rotationZ)
	m.updateModelMatrix()
	m.IsDirty = true
}

func (m *Model) updateModelMatrix() {
	translation := mgl32.Translate3D(m.Position.X(), m.Position.Y(), m.Position.Z())
	rotation := m.Rotation.Mat4()
	scale := mgl32.Scale3D(m.Scale.X(), m.Scale.Y(), m.Scale.Z())
	m.ModelMatrix = translation.Mul4(rotation).Mul4(scale)
}

// camera.go
package renderer

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// PostEffects are the screen-space effects toggled per camera.
type PostEffects struct {
	Bloom bool
	FXAA  bool
	SSAO  bool
}

type Camera struct {
	// HOT DATA - Accessed every frame for view/projection calculations
	Position   mgl32.Vec3 // Camera position in world space
	Front      mgl32.Vec3 // Forward direction vector
	Up         mgl32.Vec3 // Up direction vector
	Right      mgl32.Vec3 // Right direction vector
	Projection mgl32.Mat4 // Projection matrix

	// COLD DATA - Configuration, accessed less frequently
	WorldUp     mgl32.Vec3 // World up vector (usually (0,1,0))
	Fov         float32    // Field of view
	Near        float32    // Near clipping plane
	Far         float32    // Far clipping plane
	AspectRatio float32    // Screen aspect ratio

	PostEffects PostEffects

	// Identification
	Name     string // Camera name for scene lookup
	IsActive bool   // Whether this is the active camera
}

func NewDefaultCamera(width, height int32) *Camera {
	camera := Camera{
		Position:    mgl32.Vec3{0, 10, 30},
		Front:       mgl32.Vec3{0, 0, -1},
		Up:          mgl32.Vec3{0, 1, 0},
		Right:       mgl32.Vec3{1, 0, 0},
		WorldUp:     mgl32.Vec3{0, 1, 0},
		Fov:         45.0,
		Near:        0.1,
		Far:         10000.0,
		AspectRatio: float32(width) / float32(height),
		PostEffects: PostEffects{Bloom: true, FXAA: true, SSAO: true},
	}
	camera.UpdateProjection()
	return &camera
}

func (c *Camera) UpdateProjection() {
	c.Projection = mgl32.Perspective(mgl32.DegToRad(c.Fov), c.AspectRatio, c.Near, c.Far)
}

func (c *Camera) SetFov(fov float32) {
	c.Fov = fov
	c.UpdateProjection()
}

func (c *Camera) SetAspectRatio(aspectRatio float32) {
	c.AspectRatio = aspectRatio
	c.UpdateProjection()
}

func (c *Camera) GetViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front), c.Up)
}

func (c *Camera) GetViewProjection() mgl32.Mat4 {
	return c.Projection.Mul4(c.GetViewMatrix())
}

// SetOrientation recomputes the camera basis vectors from yaw and pitch in degrees.
func (c *Camera) SetOrientation(yaw, pitch float32) {
	yawRad := mgl32.DegToRad(yaw)
	pitchRad := mgl32.DegToRad(pitch)

	front := mgl32.Vec3{
		float32(math.Cos(float64(yawRad)) * math.Cos(float64(pitchRad))),
		float32(math.Sin(float64(pitchRad))),
		float32(math.Sin(float64(yawRad)) * math.Cos(float64(pitchRad))),
	}

	c.Front = front.Normalize()
	c.Right = c.WorldUp.Cross(c.Front).Normalize()
	c.Up = c.Front.Cross(c.Right).Normalize()
}

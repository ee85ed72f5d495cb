package renderer

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestNewDefaultCamera(t *testing.T) {
	cam := NewDefaultCamera(800, 600)

	if cam == nil {
		t.Fatal("NewDefaultCamera returned nil")
	}

	if cam.Position == (mgl32.Vec3{0, 0, 0}) {
		t.Error("Camera position should not be at origin")
	}

	if cam.AspectRatio <= 0 {
		t.Error("Camera aspect ratio should be positive")
	}

	if !cam.PostEffects.Bloom || !cam.PostEffects.FXAA || !cam.PostEffects.SSAO {
		t.Error("Post effects should be enabled by default")
	}
}

func TestCameraGetViewMatrix(t *testing.T) {
	cam := NewDefaultCamera(800, 600)
	cam.Position = mgl32.Vec3{0, 0, 5}
	cam.Front = mgl32.Vec3{0, 0, -1}
	cam.Up = mgl32.Vec3{0, 1, 0}

	view := cam.GetViewMatrix()

	if view.At(3, 3) != 1.0 {
		t.Error("View matrix should be valid (w component = 1)")
	}
}

func TestCameraGetProjectionMatrix(t *testing.T) {
	cam := NewDefaultCamera(800, 600)

	if cam.Projection.At(3, 3) != 0.0 {
		t.Error("Perspective projection should have w=0 at (3,3)")
	}
}

func TestCameraSetOrientation(t *testing.T) {
	cam := NewDefaultCamera(800, 600)

	cam.SetOrientation(-90, 0)

	if math.Abs(float64(cam.Front.X())) > 1e-6 ||
		math.Abs(float64(cam.Front.Y())) > 1e-6 ||
		math.Abs(float64(cam.Front.Z()+1)) > 1e-6 {
		t.Errorf("Expected front (0,0,-1) for yaw -90 pitch 0, got %v", cam.Front)
	}

	if math.Abs(float64(cam.Up.Y()-1)) > 1e-6 {
		t.Errorf("Expected up (0,1,0) for pitch 0, got %v", cam.Up)
	}
}

func TestCameraSetOrientationPitch(t *testing.T) {
	cam := NewDefaultCamera(800, 600)

	cam.SetOrientation(-90, 90)

	if math.Abs(float64(cam.Front.Y()-1)) > 1e-6 {
		t.Errorf("Expected front pointing straight up for pitch 90, got %v", cam.Front)
	}
}

func TestCameraBasisOrthogonal(t *testing.T) {
	cam := NewDefaultCamera(800, 600)
	cam.SetOrientation(37, -22)

	if math.Abs(float64(cam.Front.Dot(cam.Right))) > 1e-5 {
		t.Error("Front and Right should be orthogonal")
	}
	if math.Abs(float64(cam.Front.Dot(cam.Up))) > 1e-5 {
		t.Error("Front and Up should be orthogonal")
	}
}

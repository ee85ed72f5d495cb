package scripts

import (
	"math"

	"vttl3d/internal/behaviour"
	"vttl3d/internal/input"
	"vttl3d/internal/logger"
	"vttl3d/internal/renderer"
)

// TouchInputScript turns touch gestures into orbit camera changes: one finger
// orbits, two fingers pinch-zoom and pan.
type TouchInputScript struct {
	behaviour.BaseComponent

	OrbitCamera *renderer.OrbitCamera
	Input       *input.Manager

	lastTouchX, lastTouchY       float32
	lastPinchDistance            float32
	lastPinchMidX, lastPinchMidY float32
}

func init() {
	behaviour.RegisterScript("TouchInputScript", func() behaviour.Component {
		return &TouchInputScript{}
	})
}

// Start registers the script with the input manager. Without an orbit camera
// the script stays disabled and no handlers are registered.
func (t *TouchInputScript) Start() {
	if t.OrbitCamera == nil || t.Input == nil {
		logger.Log.Warn("TouchInputScript disabled: no orbit camera or input manager")
		t.SetEnabled(false)
		return
	}
	t.Input.AddTouchHandler(t)
}

func pinchDistance(a, b input.TouchPoint) float32 {
	dx := float64(b.X - a.X)
	dy := float64(b.Y - a.Y)
	return float32(math.Sqrt(dx*dx + dy*dy))
}

func midPoint(a, b input.TouchPoint) (x, y float32) {
	return (a.X + b.X) * 0.5, (a.Y + b.Y) * 0.5
}

// primeReferences records fresh reference points for the touches that remain
// after a start, end or cancel. A move for a given touch count is always
// preceded by one of these, so references are never stale when consumed.
func (t *TouchInputScript) primeReferences(e input.TouchEvent) {
	switch len(e.Touches) {
	case 1:
		t.lastTouchX = e.Touches[0].X
		t.lastTouchY = e.Touches[0].Y
	case 2:
		t.lastPinchDistance = pinchDistance(e.Touches[0], e.Touches[1])
		t.lastPinchMidX, t.lastPinchMidY = midPoint(e.Touches[0], e.Touches[1])
	}
}

func (t *TouchInputScript) OnTouchStart(e input.TouchEvent) {
	t.primeReferences(e)
}

func (t *TouchInputScript) OnTouchEnd(e input.TouchEvent) {
	t.primeReferences(e)
}

func (t *TouchInputScript) OnTouchCancel(e input.TouchEvent) {
	t.primeReferences(e)
}

// OnTouchMove classifies the gesture purely by the current touch count.
func (t *TouchInputScript) OnTouchMove(e input.TouchEvent) {
	t.OrbitCamera.StartMove()

	switch len(e.Touches) {
	case 1:
		touch := e.Touches[0]
		dx := touch.X - t.lastTouchX
		dy := touch.Y - t.lastTouchY

		// Dominant axis only: horizontal drags orbit, vertical drags pitch.
		if abs(dx) > abs(dy) {
			t.OrbitCamera.ApplyYawPitchDelta(dx, 0)
		} else {
			t.OrbitCamera.ApplyYawPitchDelta(0, dy)
		}

		t.lastTouchX = touch.X
		t.lastTouchY = touch.Y

	case 2:
		currentDistance := pinchDistance(e.Touches[0], e.Touches[1])
		midX, midY := midPoint(e.Touches[0], e.Touches[1])

		t.OrbitCamera.ApplyDistanceDelta(currentDistance - t.lastPinchDistance)
		t.OrbitCamera.ApplyPan(midX-t.lastPinchMidX, midY-t.lastPinchMidY)

		t.lastPinchDistance = currentDistance
		t.lastPinchMidX, t.lastPinchMidY = midX, midY
	}
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

package scripts

import (
	"vttl3d/internal/behaviour"
	"vttl3d/internal/input"
	"vttl3d/internal/logger"
	"vttl3d/internal/renderer"
)

// MouseInputScript turns mouse events into orbit camera changes: left-drag
// orbits, right-drag pans, wheel zooms.
type MouseInputScript struct {
	behaviour.BaseComponent

	OrbitCamera *renderer.OrbitCamera
	Input       *input.Manager

	lookButtonDown bool
	panButtonDown  bool
	lastX, lastY   float32
}

func init() {
	behaviour.RegisterScript("MouseInputScript", func() behaviour.Component {
		return &MouseInputScript{}
	})
}

// Start registers the script with the input manager. Without an orbit camera
// the script stays disabled and no handlers are registered, so the per-event
// paths never need a nil check.
func (m *MouseInputScript) Start() {
	if m.OrbitCamera == nil || m.Input == nil {
		logger.Log.Warn("MouseInputScript disabled: no orbit camera or input manager")
		m.SetEnabled(false)
		return
	}
	m.Input.AddMouseHandler(m)
}

func (m *MouseInputScript) OnMouseDown(e input.MouseEvent) {
	switch e.Button {
	case input.MouseButtonLeft:
		m.lookButtonDown = true
	case input.MouseButtonRight:
		m.panButtonDown = true
	}
}

func (m *MouseInputScript) OnMouseUp(e input.MouseEvent) {
	switch e.Button {
	case input.MouseButtonLeft:
		m.lookButtonDown = false
	case input.MouseButtonRight:
		m.panButtonDown = false
	}
}

// OnMouseLeave treats the pointer leaving the window as a full gesture
// cancel: both buttons are considered released.
func (m *MouseInputScript) OnMouseLeave() {
	m.lookButtonDown = false
	m.panButtonDown = false
}

// OnMouseMove applies the event's own deltas; the stored last position is a
// reference only. Orbiting wins when both buttons are held.
func (m *MouseInputScript) OnMouseMove(e input.MouseEvent) {
	if m.lookButtonDown {
		m.OrbitCamera.StartMove()
		m.OrbitCamera.ApplyYawPitchDelta(e.DX, e.DY)
	} else if m.panButtonDown {
		m.OrbitCamera.StartMove()
		m.OrbitCamera.ApplyPan(e.DX, e.DY)
	}

	m.lastX = e.X
	m.lastY = e.Y
}

// OnMouseWheel always zooms and consumes the event so the host suppresses
// its default scroll behavior.
func (m *MouseInputScript) OnMouseWheel(e input.WheelEvent) bool {
	m.OrbitCamera.StartMove()
	m.OrbitCamera.ApplyDistanceDelta(e.Delta)
	return true
}

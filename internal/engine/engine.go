// Package engine owns the host window and the frame loop. It translates GLFW
// callbacks into the engine-neutral events in internal/input and steps the
// scene once per frame. Rendering itself is delegated to the host renderer
// and is not part of this loop.
package engine

import (
	"runtime"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"

	"vttl3d/internal/behaviour"
	"vttl3d/internal/config"
	"vttl3d/internal/input"
	"vttl3d/internal/logger"
	"vttl3d/internal/renderer"
)

type Engine struct {
	Width  int32
	Height int32
	Title  string

	Input       *input.Manager
	Scene       *behaviour.ComponentManager
	OrbitCamera *renderer.OrbitCamera

	window       *glfw.Window
	lastX, lastY float64
	firstMouse   bool
}

func New(cfg *config.Config) *Engine {
	logger.Init(cfg.Logging.Level, cfg.Logging.LogFile)
	logger.Log.Info("VTTL 3D client initializing...")

	cam := renderer.NewDefaultCamera(int32(cfg.Graphics.Width), int32(cfg.Graphics.Height))
	cam.IsActive = true
	cam.Name = "MainCamera"

	rig := renderer.NewOrbitCamera(cam)
	rig.OrbitSensitivity = cfg.Camera.OrbitSensitivity
	rig.DistanceSensitivity = cfg.Camera.DistanceSensitivity
	rig.PanSensitivity = cfg.Camera.PanSensitivity
	rig.PitchAngleMin = cfg.Camera.PitchAngleMin
	rig.PitchAngleMax = cfg.Camera.PitchAngleMax
	rig.DistanceMin = cfg.Camera.DistanceMin
	rig.DistanceMax = cfg.Camera.DistanceMax
	rig.ReferenceDistance = cfg.Camera.ReferenceDistance

	return &Engine{
		Width:       int32(cfg.Graphics.Width),
		Height:      int32(cfg.Graphics.Height),
		Title:       cfg.Graphics.Title,
		Input:       input.NewManager(),
		Scene:       behaviour.GlobalComponentManager,
		OrbitCamera: rig,
		firstMouse:  true,
	}
}

// Run opens the window and drives the frame loop until it is closed.
func (e *Engine) Run() error {
	runtime.LockOSThread()

	if err := glfw.Init(); err != nil {
		logger.Log.Error("Could not initialize glfw", zap.Error(err))
		return err
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Decorated, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	// The host renderer owns the graphics context; this loop only needs the
	// window for input delivery.
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)

	window, err := glfw.CreateWindow(int(e.Width), int(e.Height), e.Title, nil, nil)
	if err != nil {
		logger.Log.Error("Could not create glfw window", zap.Error(err))
		return err
	}
	e.window = window
	e.installCallbacks()

	last := time.Now()
	for !window.ShouldClose() {
		now := time.Now()
		dt := float32(now.Sub(last).Seconds())
		last = now

		glfw.PollEvents()
		e.Step(dt)
	}
	return nil
}

// Step advances the scene by dt seconds: behaviours first, then the camera
// rig so it sees this frame's orbit state.
func (e *Engine) Step(dt float32) {
	e.Scene.UpdateAll(dt)
	if e.OrbitCamera != nil {
		e.OrbitCamera.Update(dt)
	}
}

func (e *Engine) installCallbacks() {
	e.window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		if e.firstMouse {
			e.lastX, e.lastY = xpos, ypos
			e.firstMouse = false
		}
		ev := input.MouseEvent{
			X:  float32(xpos),
			Y:  float32(ypos),
			DX: float32(xpos - e.lastX),
			DY: float32(ypos - e.lastY),
		}
		e.lastX, e.lastY = xpos, ypos
		e.Input.DispatchMouseMove(ev)
	})

	e.window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		ev := input.MouseEvent{
			X:      float32(e.lastX),
			Y:      float32(e.lastY),
			Button: mapMouseButton(button),
		}
		switch action {
		case glfw.Press:
			e.Input.DispatchMouseDown(ev)
		case glfw.Release:
			e.Input.DispatchMouseUp(ev)
		}
	})

	e.window.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
		e.Input.DispatchMouseWheel(input.WheelEvent{Delta: float32(yoff)})
	})

	e.window.SetCursorEnterCallback(func(w *glfw.Window, entered bool) {
		if !entered {
			e.Input.DispatchMouseLeave()
		}
	})

	e.window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action != glfw.Press {
			return
		}
		if k := mapKey(key); k != input.KeyNone {
			e.Input.DispatchKeyDown(input.KeyEvent{Key: k})
		}
	})
}

func mapMouseButton(button glfw.MouseButton) input.MouseButton {
	switch button {
	case glfw.MouseButtonRight:
		return input.MouseButtonRight
	case glfw.MouseButtonMiddle:
		return input.MouseButtonMiddle
	default:
		return input.MouseButtonLeft
	}
}

// mapKey lowers printable GLFW keys onto rune-based key codes. Non-printable
// keys are dropped; the scripts only bind letters and digits.
func mapKey(key glfw.Key) input.Key {
	switch {
	case key >= glfw.KeyA && key <= glfw.KeyZ:
		return input.Key(rune(key-glfw.KeyA) + 'a')
	case key >= glfw.Key0 && key <= glfw.Key9:
		return input.Key(rune(key-glfw.Key0) + '0')
	default:
		return input.KeyNone
	}
}

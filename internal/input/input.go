// Package input defines engine-neutral pointer, touch and keyboard events
// and a dispatch manager the host window layer feeds into.
package input

// MouseButton identifies a pointer button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonMiddle
	MouseButtonRight
)

// Key is a keyboard key code. Printable keys use their lowercase rune value.
type Key int

const (
	KeyNone Key = 0
)

// KeyFromString maps a single-character binding (as found in config files)
// to a Key. Unknown or empty bindings map to KeyNone.
func KeyFromString(s string) Key {
	if s == "" {
		return KeyNone
	}
	r := rune(s[0])
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	return Key(r)
}

// MouseEvent carries pointer position and the delta since the previous event.
type MouseEvent struct {
	X, Y   float32
	DX, DY float32
	Button MouseButton
}

// WheelEvent carries a normalized scroll delta (one "notch" is ±1).
type WheelEvent struct {
	Delta float32
}

// TouchPoint is one active finger.
type TouchPoint struct {
	ID   int
	X, Y float32
}

// TouchEvent carries the full set of active touches after the change.
type TouchEvent struct {
	Touches []TouchPoint
}

// KeyEvent is a key-down notification.
type KeyEvent struct {
	Key Key
}

// MouseHandler receives pointer events. OnMouseWheel reports whether the
// event was consumed so the host can suppress its default scroll behavior.
type MouseHandler interface {
	OnMouseDown(e MouseEvent)
	OnMouseUp(e MouseEvent)
	OnMouseMove(e MouseEvent)
	OnMouseWheel(e WheelEvent) bool
	OnMouseLeave()
}

// TouchHandler receives touch events.
type TouchHandler interface {
	OnTouchStart(e TouchEvent)
	OnTouchEnd(e TouchEvent)
	OnTouchCancel(e TouchEvent)
	OnTouchMove(e TouchEvent)
}

// KeyHandler receives key-down events.
type KeyHandler interface {
	OnKeyDown(e KeyEvent)
}

// Manager fans input events out to registered handlers. All dispatch happens
// on the host's event thread; handlers run to completion before the next
// frame update.
type Manager struct {
	mouseHandlers []MouseHandler
	touchHandlers []TouchHandler
	keyHandlers   []KeyHandler
}

// NewManager creates an empty input manager.
func NewManager() *Manager {
	return &Manager{}
}

// AddMouseHandler subscribes a handler to the pointer event stream.
func (m *Manager) AddMouseHandler(h MouseHandler) {
	m.mouseHandlers = append(m.mouseHandlers, h)
}

// AddTouchHandler subscribes a handler to the touch event stream.
func (m *Manager) AddTouchHandler(h TouchHandler) {
	m.touchHandlers = append(m.touchHandlers, h)
}

// AddKeyHandler subscribes a handler to the keyboard event stream.
func (m *Manager) AddKeyHandler(h KeyHandler) {
	m.keyHandlers = append(m.keyHandlers, h)
}

func (m *Manager) DispatchMouseDown(e MouseEvent) {
	for _, h := range m.mouseHandlers {
		h.OnMouseDown(e)
	}
}

func (m *Manager) DispatchMouseUp(e MouseEvent) {
	for _, h := range m.mouseHandlers {
		h.OnMouseUp(e)
	}
}

func (m *Manager) DispatchMouseMove(e MouseEvent) {
	for _, h := range m.mouseHandlers {
		h.OnMouseMove(e)
	}
}

// DispatchMouseWheel returns true if any handler consumed the event.
func (m *Manager) DispatchMouseWheel(e WheelEvent) bool {
	consumed := false
	for _, h := range m.mouseHandlers {
		if h.OnMouseWheel(e) {
			consumed = true
		}
	}
	return consumed
}

func (m *Manager) DispatchMouseLeave() {
	for _, h := range m.mouseHandlers {
		h.OnMouseLeave()
	}
}

func (m *Manager) DispatchTouchStart(e TouchEvent) {
	for _, h := range m.touchHandlers {
		h.OnTouchStart(e)
	}
}

func (m *Manager) DispatchTouchEnd(e TouchEvent) {
	for _, h := range m.touchHandlers {
		h.OnTouchEnd(e)
	}
}

func (m *Manager) DispatchTouchCancel(e TouchEvent) {
	for _, h := range m.touchHandlers {
		h.OnTouchCancel(e)
	}
}

func (m *Manager) DispatchTouchMove(e TouchEvent) {
	for _, h := range m.touchHandlers {
		h.OnTouchMove(e)
	}
}

func (m *Manager) DispatchKeyDown(e KeyEvent) {
	for _, h := range m.keyHandlers {
		h.OnKeyDown(e)
	}
}

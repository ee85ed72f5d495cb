package scripts

import (
	"testing"

	"vttl3d/internal/input"
)

func singleTouch(x, y float32) input.TouchEvent {
	return input.TouchEvent{Touches: []input.TouchPoint{{ID: 0, X: x, Y: y}}}
}

func doubleTouch(x1, y1, x2, y2 float32) input.TouchEvent {
	return input.TouchEvent{Touches: []input.TouchPoint{
		{ID: 0, X: x1, Y: y1},
		{ID: 1, X: x2, Y: y2},
	}}
}

func TestTouchHorizontalDragAffectsOnlyYaw(t *testing.T) {
	rig := testOrbitCamera()
	ts := &TouchInputScript{OrbitCamera: rig}

	ts.OnTouchStart(singleTouch(100, 100))
	ts.OnTouchMove(singleTouch(130, 105))

	// dx=30 dominates dy=5: yaw moves by -30*sensitivity, pitch untouched.
	if !nearf(rig.Yaw, -9) {
		t.Errorf("Expected yaw -9, got %f", rig.Yaw)
	}
	if rig.Pitch != 0 {
		t.Errorf("Expected pitch unchanged, got %f", rig.Pitch)
	}
}

func TestTouchVerticalDragAffectsOnlyPitch(t *testing.T) {
	rig := testOrbitCamera()
	ts := &TouchInputScript{OrbitCamera: rig}

	ts.OnTouchStart(singleTouch(100, 100))
	ts.OnTouchMove(singleTouch(105, 130))

	if rig.Yaw != 0 {
		t.Errorf("Expected yaw unchanged, got %f", rig.Yaw)
	}
	if !nearf(rig.Pitch, -9) {
		t.Errorf("Expected pitch -9, got %f", rig.Pitch)
	}
}

func TestTouchEqualDeltasFavorPitch(t *testing.T) {
	rig := testOrbitCamera()
	ts := &TouchInputScript{OrbitCamera: rig}

	ts.OnTouchStart(singleTouch(100, 100))
	ts.OnTouchMove(singleTouch(110, 110))

	if rig.Yaw != 0 {
		t.Error("Equal deltas should be treated as pitch, not yaw")
	}
	if rig.Pitch == 0 {
		t.Error("Equal deltas should change pitch")
	}
}

func TestTouchMoveUpdatesReference(t *testing.T) {
	rig := testOrbitCamera()
	ts := &TouchInputScript{OrbitCamera: rig}

	ts.OnTouchStart(singleTouch(100, 100))
	ts.OnTouchMove(singleTouch(130, 100))
	yawAfterFirst := rig.Yaw
	ts.OnTouchMove(singleTouch(130, 100))

	if rig.Yaw != yawAfterFirst {
		t.Error("A move to the same point should produce no further change")
	}
}

func TestTouchPinchZoom(t *testing.T) {
	rig := testOrbitCamera()
	rig.Distance = 10
	ts := &TouchInputScript{OrbitCamera: rig}

	ts.OnTouchStart(doubleTouch(0, 0, 100, 0))
	ts.OnTouchMove(doubleTouch(0, 0, 150, 0))

	// Pinch distance 100 -> 150 (delta +50): one zoom-in step of
	// 50 * 0.15 * (10 * 0.1) = 7.5.
	if !nearf(rig.Distance, 2.5) {
		t.Errorf("Expected distance 2.5, got %f", rig.Distance)
	}
}

func TestTouchPinchPan(t *testing.T) {
	rig := testOrbitCamera()
	ts := &TouchInputScript{OrbitCamera: rig}

	ts.OnTouchStart(doubleTouch(0, 0, 100, 0))
	// Same pinch distance, midpoint shifted by (20, 10).
	ts.OnTouchMove(doubleTouch(20, 10, 120, 10))

	if rig.Pivot.Len() == 0 {
		t.Error("Midpoint shift should pan the pivot")
	}
	startDistance := rig.Distance
	if !nearf(startDistance, 10) {
		t.Errorf("Unchanged pinch distance should not zoom, distance %f", rig.Distance)
	}
}

func TestTouchEndReprimesSingleReference(t *testing.T) {
	rig := testOrbitCamera()
	ts := &TouchInputScript{OrbitCamera: rig}

	ts.OnTouchStart(doubleTouch(0, 0, 100, 0))
	// One finger lifts; the remaining one becomes the new reference.
	ts.OnTouchEnd(singleTouch(200, 200))
	ts.OnTouchMove(singleTouch(230, 200))

	if !nearf(rig.Yaw, -9) {
		t.Errorf("Expected yaw -9 from the re-primed reference, got %f", rig.Yaw)
	}
}

func TestTouchStartReprimesPinchReference(t *testing.T) {
	rig := testOrbitCamera()
	rig.Distance = 10
	ts := &TouchInputScript{OrbitCamera: rig}

	ts.OnTouchStart(singleTouch(0, 0))
	// Second finger lands; pinch reference recomputed before any move.
	ts.OnTouchStart(doubleTouch(0, 0, 100, 0))
	ts.OnTouchMove(doubleTouch(0, 0, 100, 0))

	if !nearf(rig.Distance, 10) {
		t.Errorf("Expected no zoom with unchanged pinch, got %f", rig.Distance)
	}
}

func TestTouchMoveCancelsFocusAnimation(t *testing.T) {
	rig := testOrbitCamera()
	ts := &TouchInputScript{OrbitCamera: rig}
	rig.FocusOn(rig.Pivot, 50, 90, 0, 10.0)

	ts.OnTouchStart(singleTouch(100, 100))
	ts.OnTouchMove(singleTouch(101, 100))

	if rig.Animating() {
		t.Error("A touch move should cancel the focus animation")
	}
}

func TestTouchScriptDisabledWithoutCamera(t *testing.T) {
	ts := &TouchInputScript{Input: input.NewManager()}
	ts.SetEnabled(true)

	ts.Start()

	if ts.GetEnabled() {
		t.Error("Script should disable itself without an orbit camera")
	}
}

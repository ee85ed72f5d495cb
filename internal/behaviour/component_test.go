package behaviour

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

// MockComponent records lifecycle calls for tests.
type MockComponent struct {
	BaseComponent
	awakeCalled  bool
	startCalled  bool
	updateCalled bool
	fixedCalled  bool
	lastDt       float32
}

func (m *MockComponent) Awake() { m.awakeCalled = true }
func (m *MockComponent) Start() { m.startCalled = true }
func (m *MockComponent) Update(dt float32) {
	m.updateCalled = true
	m.lastDt = dt
}
func (m *MockComponent) FixedUpdate() { m.fixedCalled = true }

func TestNewGameObject(t *testing.T) {
	obj := NewGameObject("TestObject")

	if obj == nil {
		t.Fatal("NewGameObject returned nil")
	}

	if obj.Name != "TestObject" {
		t.Errorf("Expected name 'TestObject', got '%s'", obj.Name)
	}

	if !obj.Active {
		t.Error("New GameObject should be active by default")
	}

	if obj.Transform == nil {
		t.Fatal("Transform should not be nil")
	}

	if obj.Transform.Position != (mgl32.Vec3{0, 0, 0}) {
		t.Errorf("Expected position (0,0,0), got %v", obj.Transform.Position)
	}

	if obj.Transform.Scale != (mgl32.Vec3{1, 1, 1}) {
		t.Errorf("Expected scale (1,1,1), got %v", obj.Transform.Scale)
	}
}

func TestTransformTranslate(t *testing.T) {
	transform := &Transform{
		Position: mgl32.Vec3{1, 2, 3},
		Scale:    mgl32.Vec3{1, 1, 1},
	}

	transform.Translate(mgl32.Vec3{10, 20, 30})

	if transform.Position != (mgl32.Vec3{11, 22, 33}) {
		t.Errorf("Expected position (11,22,33), got %v", transform.Position)
	}
}

func TestAddComponentCallsAwake(t *testing.T) {
	obj := NewGameObject("Test")
	comp := &MockComponent{}

	obj.AddComponent(comp)

	if !comp.awakeCalled {
		t.Error("Awake() should be called when component is added")
	}

	if comp.GetGameObject() != obj {
		t.Error("Component should reference its GameObject")
	}

	if !comp.GetEnabled() {
		t.Error("Component should be enabled after AddComponent")
	}
}

func TestRemoveComponent(t *testing.T) {
	obj := NewGameObject("Test")
	comp := &MockComponent{}
	obj.AddComponent(comp)

	obj.RemoveComponent(comp)

	if len(obj.Components) != 0 {
		t.Errorf("Expected 0 components after removal, got %d", len(obj.Components))
	}
}

func TestHasTag(t *testing.T) {
	obj := NewGameObject("Test")
	obj.Tag = "keep_quality"

	if !obj.HasTag("keep_quality") {
		t.Error("HasTag should match the object's tag")
	}

	if obj.HasTag("other") {
		t.Error("HasTag should not match a different tag")
	}

	obj.Tag = ""
	if obj.HasTag("") {
		t.Error("Empty tag should never match")
	}
}

func TestUpdatePassesDeltaTime(t *testing.T) {
	obj := NewGameObject("Test")
	comp := &MockComponent{}
	obj.AddComponent(comp)

	obj.internalUpdate(0.016)

	if !comp.updateCalled {
		t.Fatal("Update() was not called")
	}
	if comp.lastDt != 0.016 {
		t.Errorf("Expected dt 0.016, got %f", comp.lastDt)
	}
}

func TestDisabledComponentNotUpdated(t *testing.T) {
	obj := NewGameObject("Test")
	comp := &MockComponent{}
	obj.AddComponent(comp)
	comp.SetEnabled(false)

	obj.internalUpdate(0.016)

	if comp.updateCalled {
		t.Error("Update() should not be called on a disabled component")
	}
}

package behaviour

import (
	"vttl3d/internal/renderer"
)

// ComponentType defines the category of a component
type ComponentType string

const (
	ComponentTypeMesh   ComponentType = "Mesh"
	ComponentTypeScript ComponentType = "Script"
	ComponentTypeLight  ComponentType = "Light"
	ComponentTypeCamera ComponentType = "Camera"
	ComponentTypeCustom ComponentType = "Custom"
)

// TypedComponent extends Component with type information
type TypedComponent interface {
	Component
	GetComponentType() ComponentType
	GetTypeName() string
}

// MeshComponent attaches a renderable model to a GameObject
type MeshComponent struct {
	BaseComponent
	Model *renderer.Model
}

func NewMeshComponent(model *renderer.Model) *MeshComponent {
	return &MeshComponent{Model: model}
}

func (m *MeshComponent) GetComponentType() ComponentType {
	return ComponentTypeMesh
}

func (m *MeshComponent) GetTypeName() string {
	return "MeshComponent"
}

// LightComponent attaches a light to a GameObject
type LightComponent struct {
	BaseComponent
	Light *renderer.Light
}

func NewLightComponent(light *renderer.Light) *LightComponent {
	return &LightComponent{Light: light}
}

func (l *LightComponent) GetComponentType() ComponentType {
	return ComponentTypeLight
}

func (l *LightComponent) GetTypeName() string {
	return "LightComponent"
}

// CameraComponent attaches a view camera to a GameObject
type CameraComponent struct {
	BaseComponent
	Camera *renderer.Camera
}

func NewCameraComponent(camera *renderer.Camera) *CameraComponent {
	return &CameraComponent{Camera: camera}
}

func (c *CameraComponent) GetComponentType() ComponentType {
	return ComponentTypeCamera
}

func (c *CameraComponent) GetTypeName() string {
	return "CameraComponent"
}

// ScriptComponent is a wrapper for user scripts to identify them as scripts
type ScriptComponent struct {
	BaseComponent
	ScriptName string
	Script     Component // The actual script implementation
}

func NewScriptComponent(scriptName string, script Component) *ScriptComponent {
	return &ScriptComponent{
		ScriptName: scriptName,
		Script:     script,
	}
}

func (s *ScriptComponent) GetComponentType() ComponentType {
	return ComponentTypeScript
}

func (s *ScriptComponent) GetTypeName() string {
	return s.ScriptName
}

func (s *ScriptComponent) Awake() {
	if s.Script != nil {
		s.Script.SetGameObject(s.GetGameObject())
		s.Script.Awake()
	}
}

func (s *ScriptComponent) Start() {
	if s.Script != nil {
		s.Script.Start()
	}
}

func (s *ScriptComponent) Update(dt float32) {
	if s.Script != nil && s.GetEnabled() {
		s.Script.Update(dt)
	}
}

func (s *ScriptComponent) FixedUpdate() {
	if s.Script != nil && s.GetEnabled() {
		s.Script.FixedUpdate()
	}
}

func (s *ScriptComponent) OnDestroy() {
	if s.Script != nil {
		s.Script.OnDestroy()
	}
}

// GetComponentCategory returns the component's category, or Custom for
// untyped components.
func GetComponentCategory(comp Component) ComponentType {
	if typed, ok := comp.(TypedComponent); ok {
		return typed.GetComponentType()
	}
	return ComponentTypeCustom
}

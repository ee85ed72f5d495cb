package scripts

import (
	"go.uber.org/zap"

	"vttl3d/internal/behaviour"
	"vttl3d/internal/input"
	"vttl3d/internal/logger"
	"vttl3d/internal/renderer"
)

// QuickRenderScript toggles the scene between full quality and a cheap
// rendering mode for performance testing. Degrading is immediate; restoring
// replays the recorded originals as four timed steps spread across a fixed
// duration.
type QuickRenderScript struct {
	behaviour.BaseComponent

	Scene *behaviour.ComponentManager
	Input *input.Manager

	LowQualityKey  input.Key
	HighQualityKey input.Key
	ExemptTag      string  // entities tagged with this are left at full quality
	RestoreDur     float32 // seconds for the whole restoration playback
	LowShadowRes   int32   // forced shadow map size while degraded

	wireframe *renderer.Material

	// Original state recorded during degrade, drained during restore.
	origMaterials   map[*renderer.Model]*renderer.Material
	origStyles      map[*renderer.Model]renderer.RenderStyle
	origShadowRes   map[*renderer.Light]int32
	origPostEffects map[*renderer.Camera]renderer.PostEffects

	restoring      bool
	restoreSteps   []restoreStep
	stepIndex      int
	restoreElapsed float32
}

// restoreStep is one reversal action in the timed playback.
type restoreStep struct {
	name string
	run  func()
}

func init() {
	behaviour.RegisterScript("QuickRenderScript", func() behaviour.Component {
		return &QuickRenderScript{}
	})
}

func (q *QuickRenderScript) Awake() {
	q.origMaterials = make(map[*renderer.Model]*renderer.Material)
	q.origStyles = make(map[*renderer.Model]renderer.RenderStyle)
	q.origShadowRes = make(map[*renderer.Light]int32)
	q.origPostEffects = make(map[*renderer.Camera]renderer.PostEffects)
	q.wireframe = renderer.NewWireframeMaterial()

	if q.LowQualityKey == input.KeyNone {
		q.LowQualityKey = input.KeyFromString("l")
	}
	if q.HighQualityKey == input.KeyNone {
		q.HighQualityKey = input.KeyFromString("h")
	}
	if q.RestoreDur <= 0 {
		q.RestoreDur = 1.0
	}
	if q.LowShadowRes <= 0 {
		q.LowShadowRes = 256
	}
}

func (q *QuickRenderScript) Start() {
	if q.Scene == nil {
		q.Scene = behaviour.GlobalComponentManager
	}
	if q.Input != nil {
		q.Input.AddKeyHandler(q)
	}
}

func (q *QuickRenderScript) OnKeyDown(e input.KeyEvent) {
	switch e.Key {
	case q.LowQualityKey:
		q.Degrade()
	case q.HighQualityKey:
		q.StartRestore()
	}
}

// Degrade drops the scene to cheap rendering immediately. The four actions
// are fault-isolated: a panic in one is logged and the rest still run.
func (q *QuickRenderScript) Degrade() {
	logger.Log.Info("quickrender: degrading scene quality")
	q.runProtected("disable-post-effects", q.degradePostEffects)
	q.runProtected("lower-shadow-resolution", q.degradeShadows)
	q.runProtected("force-wireframe", q.degradeRenderStates)
	q.runProtected("swap-materials", q.degradeMaterials)
}

func (q *QuickRenderScript) degradePostEffects() {
	for _, comp := range q.Scene.FindComponents(behaviour.ComponentTypeCamera) {
		cam := comp.(*behaviour.CameraComponent).Camera
		if cam == nil {
			continue
		}
		if _, seen := q.origPostEffects[cam]; !seen {
			q.origPostEffects[cam] = cam.PostEffects
		}
		cam.PostEffects = renderer.PostEffects{}
	}
}

func (q *QuickRenderScript) degradeShadows() {
	for _, comp := range q.Scene.FindComponents(behaviour.ComponentTypeLight) {
		light := comp.(*behaviour.LightComponent).Light
		if light == nil || !light.Enabled || !light.CastShadows {
			continue
		}
		if _, seen := q.origShadowRes[light]; !seen {
			q.origShadowRes[light] = light.ShadowResolution
		}
		light.ShadowResolution = q.LowShadowRes
	}
}

func (q *QuickRenderScript) degradeRenderStates() {
	for _, mesh := range q.exemptFiltered() {
		if _, seen := q.origStyles[mesh.Model]; !seen {
			q.origStyles[mesh.Model] = mesh.Model.RenderStyle
		}
		mesh.Model.RenderStyle = renderer.RenderStyleWireframe
	}
}

func (q *QuickRenderScript) degradeMaterials() {
	for _, mesh := range q.exemptFiltered() {
		if _, seen := q.origMaterials[mesh.Model]; !seen {
			q.origMaterials[mesh.Model] = mesh.Model.Material
		}
		mesh.Model.Material = q.wireframe
	}
}

// exemptFiltered returns the mesh components subject to degradation: every
// mesh in the scene except those on entities carrying the exempt tag.
func (q *QuickRenderScript) exemptFiltered() []*behaviour.MeshComponent {
	var result []*behaviour.MeshComponent
	for _, comp := range q.Scene.FindComponents(behaviour.ComponentTypeMesh) {
		mesh := comp.(*behaviour.MeshComponent)
		if mesh.Model == nil {
			continue
		}
		if obj := mesh.GetGameObject(); obj != nil && obj.HasTag(q.ExemptTag) {
			continue
		}
		result = append(result, mesh)
	}
	return result
}

// StartRestore begins the timed playback of the recorded originals. A start
// request while a restoration is already running is ignored.
func (q *QuickRenderScript) StartRestore() {
	if q.restoring {
		return
	}
	logger.Log.Info("quickrender: restoring scene quality")
	q.restoreSteps = []restoreStep{
		{name: "materials", run: q.restoreMaterials},
		{name: "render-states", run: q.restoreRenderStates},
		{name: "shadow-resolution", run: q.restoreShadows},
		{name: "post-effects", run: q.restorePostEffects},
	}
	q.stepIndex = 0
	q.restoreElapsed = 0
	q.restoring = true
}

// Restoring reports whether a restoration playback is in progress.
func (q *QuickRenderScript) Restoring() bool {
	return q.restoring
}

// Update advances the restoration playback. A step fires once elapsed time
// crosses its proportional share of the total duration; a step that panics
// is logged and the index still moves past it.
func (q *QuickRenderScript) Update(dt float32) {
	if !q.restoring {
		return
	}

	q.restoreElapsed += dt
	progress := q.restoreElapsed / q.RestoreDur
	targetStep := int(progress * float32(len(q.restoreSteps)))

	for q.stepIndex < targetStep && q.stepIndex < len(q.restoreSteps) {
		step := q.restoreSteps[q.stepIndex]
		q.runProtected("restore-"+step.name, step.run)
		q.stepIndex++
	}

	if progress >= 1 {
		q.restoring = false
		q.restoreSteps = nil
	}
}

// Each restore step drains its bookkeeping map so the next degrade starts
// from empty records.

func (q *QuickRenderScript) restoreMaterials() {
	for model, material := range q.origMaterials {
		model.Material = material
		delete(q.origMaterials, model)
	}
}

func (q *QuickRenderScript) restoreRenderStates() {
	for model, style := range q.origStyles {
		model.RenderStyle = style
		delete(q.origStyles, model)
	}
}

func (q *QuickRenderScript) restoreShadows() {
	for light, resolution := range q.origShadowRes {
		light.ShadowResolution = resolution
		delete(q.origShadowRes, light)
	}
}

func (q *QuickRenderScript) restorePostEffects() {
	for cam, effects := range q.origPostEffects {
		cam.PostEffects = effects
		delete(q.origPostEffects, cam)
	}
}

// runProtected executes fn, converting a panic into a log entry so one
// failed action never blocks the others.
func (q *QuickRenderScript) runProtected(name string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Log.Error("quickrender action failed",
				zap.String("action", name),
				zap.Any("reason", r))
		}
	}()
	fn()
}

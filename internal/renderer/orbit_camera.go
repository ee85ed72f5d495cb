// orbit_camera.go
package renderer

import (
	"github.com/go-gl/mathgl/mgl32"
)

// OrbitCamera is the rig driving a Camera around a pivot point. Input drivers
// mutate yaw, pitch, distance and pivot through the Apply* operations only;
// the rig recomputes the camera transform once per frame in Update. All of it
// runs on the host's single logical thread, so no locking is involved.
type OrbitCamera struct {
	Yaw      float32    // degrees, horizontal angle around the pivot
	Pitch    float32    // degrees, kept within [PitchAngleMin, PitchAngleMax]
	Distance float32    // camera-to-pivot distance, stays positive
	Pivot    mgl32.Vec3 // world-space orbit center

	PitchAngleMin float32
	PitchAngleMax float32
	DistanceMin   float32
	DistanceMax   float32

	OrbitSensitivity    float32
	DistanceSensitivity float32
	PanSensitivity      float32
	ReferenceDistance   float32 // pan speed is proportional to Distance/ReferenceDistance

	Camera *Camera // the view camera whose transform this rig drives

	anim *focusAnim
}

// NewOrbitCamera creates a rig with the given tuning, driving cam.
func NewOrbitCamera(cam *Camera) *OrbitCamera {
	o := &OrbitCamera{
		Yaw:                 -90,
		Pitch:               -30,
		Distance:            20,
		PitchAngleMin:       -90,
		PitchAngleMax:       90,
		DistanceMin:         1,
		DistanceMax:         500,
		OrbitSensitivity:    0.3,
		DistanceSensitivity: 0.15,
		PanSensitivity:      0.025,
		ReferenceDistance:   10,
		Camera:              cam,
	}
	o.Update(0)
	return o
}

// ClampPitch maps a pitch angle in degrees to the configured valid range.
// Plain min/max, no wraparound.
func (o *OrbitCamera) ClampPitch(pitch float32) float32 {
	return mgl32.Clamp(pitch, o.PitchAngleMin, o.PitchAngleMax)
}

// StartMove signals that an interactive change is beginning. Any in-flight
// focus animation is cancelled so it does not fight the user's input.
func (o *OrbitCamera) StartMove() {
	o.anim = nil
}

// ApplyYawPitchDelta rotates the rig by the given screen-space deltas scaled
// by the orbit sensitivity. Pitch is clamped.
func (o *OrbitCamera) ApplyYawPitchDelta(dYaw, dPitch float32) {
	o.Yaw -= dYaw * o.OrbitSensitivity
	o.Pitch = o.ClampPitch(o.Pitch - dPitch*o.OrbitSensitivity)
}

// ApplyDistanceDelta zooms by d scaled by the distance sensitivity and the
// current distance, so zooming feels the same at any zoom level. Range
// clamping happens in Update, not here.
func (o *OrbitCamera) ApplyDistanceDelta(d float32) {
	o.Distance -= d * o.DistanceSensitivity * (o.Distance * 0.1)
}

// ApplyPan converts a screen-space delta into a world-space pivot offset
// along the camera's right and up basis vectors. Pan speed scales with the
// current distance so the scene tracks the pointer at any zoom level.
func (o *OrbitCamera) ApplyPan(dxScreen, dyScreen float32) {
	s := (o.Distance / o.ReferenceDistance) * o.PanSensitivity
	offset := o.Camera.Right.Mul(-dxScreen * s).Add(o.Camera.Up.Mul(dyScreen * s))
	o.Pivot = o.Pivot.Add(offset)
}

// FocusOn flies the rig to frame target at the given distance and angles over
// durationSec seconds. A zero or negative duration snaps immediately.
// Interactive input (StartMove) cancels the flight.
func (o *OrbitCamera) FocusOn(target mgl32.Vec3, distance, yaw, pitch, durationSec float32) {
	pitch = o.ClampPitch(pitch)
	if durationSec <= 0 {
		o.Pivot = target
		o.Distance = distance
		o.Yaw = yaw
		o.Pitch = pitch
		o.anim = nil
		return
	}
	o.anim = &focusAnim{
		fromPivot:    o.Pivot,
		fromDistance: o.Distance,
		fromYaw:      o.Yaw,
		fromPitch:    o.Pitch,
		toPivot:      target,
		toDistance:   distance,
		toYaw:        yaw,
		toPitch:      pitch,
		duration:     durationSec,
	}
}

// Animating reports whether a focus flight is in progress.
func (o *OrbitCamera) Animating() bool {
	return o.anim != nil
}

// Update advances any focus animation, enforces the pitch and distance
// ranges, and recomputes the camera transform from the orbit state. Called
// once per frame by the host loop; the drivers never call it.
func (o *OrbitCamera) Update(dt float32) {
	if o.anim != nil {
		o.anim.advance(o, dt)
	}

	o.Pitch = o.ClampPitch(o.Pitch)
	o.Distance = mgl32.Clamp(o.Distance, o.DistanceMin, o.DistanceMax)

	o.Camera.SetOrientation(o.Yaw, o.Pitch)
	o.Camera.Position = o.Pivot.Sub(o.Camera.Front.Mul(o.Distance))
}

// focusAnim is an eased flight toward a framing target.
type focusAnim struct {
	fromPivot, toPivot       mgl32.Vec3
	fromDistance, toDistance float32
	fromYaw, toYaw           float32
	fromPitch, toPitch       float32
	elapsed                  float32
	duration                 float32
}

func (a *focusAnim) advance(o *OrbitCamera, dt float32) {
	a.elapsed += dt
	t := a.elapsed / a.duration
	if t >= 1 {
		o.Pivot = a.toPivot
		o.Distance = a.toDistance
		o.Yaw = a.toYaw
		o.Pitch = a.toPitch
		o.anim = nil
		return
	}
	// smoothstep ease in/out
	t = t * t * (3 - 2*t)
	o.Pivot = lerpVec3(a.fromPivot, a.toPivot, t)
	o.Distance = lerp(a.fromDistance, a.toDistance, t)
	o.Yaw = lerp(a.fromYaw, a.toYaw, t)
	o.Pitch = lerp(a.fromPitch, a.toPitch, t)
}

func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

func lerpVec3(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

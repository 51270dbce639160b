package globe

// Inputs is the host boundary, re-read on every tick
type Inputs interface {
	Entities() []Entity
	Spinning() bool
	SpeedMultiplier() float64
}

// StaticInputs is a fixed Inputs value for tests and offline rendering
type StaticInputs struct {
	List       []Entity
	Spin       bool
	Multiplier float64
}

func (s *StaticInputs) Entities() []Entity       { return s.List }
func (s *StaticInputs) Spinning() bool           { return s.Spin }
func (s *StaticInputs) SpeedMultiplier() float64 { return s.Multiplier }

// Visualizer owns one globe's camera, distribution and frame
// Created on activation and dropped on teardown, instances share nothing
type Visualizer struct {
	params Params
	inputs Inputs

	dist  *Distribution
	cam   CameraState
	ctrl  Controller
	frame Frame
	ticks uint64
}

// NewVisualizer creates a visualizer reading from inputs
func NewVisualizer(inputs Inputs, params Params) *Visualizer {
	v := &Visualizer{
		params: params.normalized(),
		inputs: inputs,
		cam:    NewCameraState(),
	}
	v.dist = NewDistribution(v.params.Radius)
	v.ctrl = newController(&v.cam, &v.params, v.spinning)
	return v
}

// SetInputs swaps the host boundary, the next tick reads from it
func (v *Visualizer) SetInputs(inputs Inputs) {
	v.inputs = inputs
}

func (v *Visualizer) spinning() bool {
	return v.inputs != nil && v.inputs.Spinning()
}

// Tick advances the camera and projects every point for a width×height surface
// The returned frame is reused by the next Tick
func (v *Visualizer) Tick(width, height int) *Frame {
	v.ticks++

	var entities []Entity
	mult := 1.0
	spin := false
	if v.inputs != nil {
		entities = v.inputs.Entities()
		spin = v.inputs.Spinning()
		mult = v.inputs.SpeedMultiplier()
	}
	mode := ModeFor(spin)

	v.dist.Sync(entities)
	v.cam.Advance(&v.params, mode, mult)

	f := &v.frame
	f.reset()
	f.Tick = v.ticks
	f.Width = width
	f.Height = height
	f.OriginX = float64(width) / 2
	f.OriginY = float64(height) / 2
	f.Mode = mode
	f.Scale = v.cam.Scale
	f.BaseRadius = v.params.Radius
	f.Generation = v.dist.Generation()
	f.LabelRevision = v.dist.LabelRevision()

	points := v.dist.Points()
	if len(points) == 0 {
		f.Placeholder = true
		return f
	}

	pr := NewProjector(&v.params, &v.cam, mode)
	for i := range points {
		f.Points = append(f.Points, pr.Project(&points[i]))
	}
	f.sortOrder()
	f.buildConnectors(&v.params, v.cam.Scale, mode)
	f.buildGlow(&v.params, v.cam.Radius(&v.params))
	return f
}

// Controller returns the gesture handlers bound to this visualizer's camera
func (v *Visualizer) Controller() *Controller {
	return &v.ctrl
}

// Camera returns a copy of the camera state
func (v *Visualizer) Camera() CameraState {
	return v.cam
}

// Distribution exposes the memoized point set
func (v *Visualizer) Distribution() *Distribution {
	return v.dist
}

// Params returns the effective parameters
func (v *Visualizer) Params() Params {
	return v.params
}

// Ticks returns the number of ticks run
func (v *Visualizer) Ticks() uint64 {
	return v.ticks
}

// ResetView returns zoom and angles to rest, rejected while spinning
func (v *Visualizer) ResetView() bool {
	if v.spinning() {
		return false
	}
	v.cam = NewCameraState()
	return true
}

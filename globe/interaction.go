package globe

import (
	"github.com/lixenwraith/lucky-globe/vmath"
)

// Controller turns pointer, touch and wheel gestures into camera changes
// Every handler is rejected while the host reports spinning; the bool result reports acceptance
type Controller struct {
	cam      *CameraState
	params   *Params
	spinning func() bool
}

func newController(cam *CameraState, params *Params, spinning func() bool) Controller {
	return Controller{cam: cam, params: params, spinning: spinning}
}

func (c *Controller) locked() bool {
	return c.spinning != nil && c.spinning()
}

// Start anchors a drag at (x, y) and cancels residual momentum
func (c *Controller) Start(x, y float64) bool {
	if c.locked() {
		return false
	}
	c.cam.Dragging = true
	c.cam.LastPointer = Pointer{X: x, Y: y}
	c.cam.Velocity.Stop()
	return true
}

// Move rotates by the pointer delta and records it as the velocity sample
func (c *Controller) Move(x, y float64) bool {
	if c.locked() || !c.cam.Dragging {
		return false
	}
	k := c.params.DragSensitivity
	dx := (x - c.cam.LastPointer.X) * k
	dy := (y - c.cam.LastPointer.Y) * k

	c.cam.AngleX += dx
	c.cam.AngleY += dy
	c.cam.Velocity.SetImpulse(dx, dy)
	c.cam.LastPointer = Pointer{X: x, Y: y}
	return true
}

// End releases the drag, velocity is left for the idle rule to consume
func (c *Controller) End() bool {
	if c.locked() {
		return false
	}
	c.cam.Dragging = false
	return true
}

// Wheel zooms by the wheel delta, positive deltaY zooms out
func (c *Controller) Wheel(deltaY float64) bool {
	if c.locked() || !vmath.Finite(deltaY) {
		return false
	}
	c.setScale(c.cam.Scale - deltaY*c.params.WheelSensitivity)
	return true
}

// Pinch zooms by the ratio of two-finger distances between consecutive touch samples
func (c *Controller) Pinch(prevDist, dist float64) bool {
	if c.locked() || prevDist <= 0 || dist <= 0 || !vmath.Finite(dist/prevDist) {
		return false
	}
	c.setScale(c.cam.Scale * dist / prevDist)
	return true
}

func (c *Controller) setScale(s float64) {
	c.cam.Scale = vmath.Clamp(s, c.params.MinScale, c.params.MaxScale)
}

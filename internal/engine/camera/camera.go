// Package camera provides the free-flight camera for the demo viewer.
package camera

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"
)

var worldUp = mgl32.Vec3{0, 1, 0}

// MoveInput is the per-frame movement state read from the keyboard.
type MoveInput struct {
	Forward, Back bool
	Left, Right   bool
	Up, Down      bool
	TurnLeft      bool
	TurnRight     bool
}

// FlyCamera moves freely over the terrain: WASD strafes on the
// horizontal plane, Q/E yaws, Space/Shift changes altitude.
type FlyCamera struct {
	Position mgl32.Vec3
	Yaw      float32 // radians around +Y, 0 looks down -Z
	Pitch    float32 // radians, positive looks up

	MoveSpeed float32 // world units per second
	TurnSpeed float32 // radians per second
}

// NewFlyCamera creates a camera at pos with default speeds.
func NewFlyCamera(pos mgl32.Vec3) *FlyCamera {
	return &FlyCamera{
		Position:  pos,
		Pitch:     -0.3,
		MoveSpeed: 10,
		TurnSpeed: 6,
	}
}

// Forward returns the view direction.
func (c *FlyCamera) Forward() mgl32.Vec3 {
	cosPitch := float32(gomath.Cos(float64(c.Pitch)))
	return mgl32.Vec3{
		-float32(gomath.Sin(float64(c.Yaw))) * cosPitch,
		float32(gomath.Sin(float64(c.Pitch))),
		-float32(gomath.Cos(float64(c.Yaw))) * cosPitch,
	}
}

// flatForward is the view direction projected onto the ground plane, so
// moving forward never changes altitude.
func (c *FlyCamera) flatForward() mgl32.Vec3 {
	f := c.Forward()
	flat := worldUp.Cross(f.Cross(worldUp))
	if l := flat.Len(); l > 0 {
		return flat.Mul(1 / l)
	}
	return mgl32.Vec3{}
}

// Move advances the camera by one frame of input.
func (c *FlyCamera) Move(in MoveInput, dt float32) {
	speed := c.MoveSpeed * dt
	forward := c.flatForward()
	right := forward.Cross(worldUp)

	var velocity mgl32.Vec3
	if in.Forward {
		velocity = velocity.Add(forward.Mul(speed))
	}
	if in.Back {
		velocity = velocity.Sub(forward.Mul(speed))
	}
	if in.Left {
		velocity = velocity.Sub(right.Mul(speed))
	}
	if in.Right {
		velocity = velocity.Add(right.Mul(speed))
	}
	if in.Up {
		velocity = velocity.Add(worldUp.Mul(speed))
	}
	if in.Down {
		velocity = velocity.Sub(worldUp.Mul(speed))
	}
	c.Position = c.Position.Add(velocity)

	turn := c.TurnSpeed * dt
	if in.TurnLeft {
		c.Yaw += turn
	}
	if in.TurnRight {
		c.Yaw -= turn
	}
}

// ViewMatrix returns the view matrix for this camera.
func (c *FlyCamera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Forward()), worldUp)
}

// ProjectionMatrix returns a perspective projection for the given
// viewport aspect ratio.
func (c *FlyCamera) ProjectionMatrix(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(60), aspect, 0.1, 1000)
}

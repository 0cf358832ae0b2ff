package main

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"smartroad/internal/intersection"
)

// Input tracks prior key state so held keys only trigger a spawn once, on
// the press edge, matching the teacher's JustPressed convention.
type Input struct {
	prevKeys map[glfw.Key]bool
}

func NewInput() *Input {
	return &Input{prevKeys: make(map[glfw.Key]bool)}
}

func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

// spawnKeys maps the arrow/WASD keys a player can hold to the approach
// direction they spawn a vehicle from, per original_source/src/main.rs's
// key bindings.
var spawnKeys = map[glfw.Key]intersection.Direction{
	glfw.KeyDown:  intersection.South,
	glfw.KeyS:     intersection.South,
	glfw.KeyUp:    intersection.North,
	glfw.KeyW:     intersection.North,
	glfw.KeyLeft:  intersection.West,
	glfw.KeyA:     intersection.West,
	glfw.KeyRight: intersection.East,
	glfw.KeyD:     intersection.East,
}

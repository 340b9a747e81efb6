package gui

import rl "github.com/gen2brain/raylib-go/raylib"

// movementKeys maps held keys to a tile step, arrows and WASD alike.
var movementKeys = []struct {
	keys   []int32
	dx, dy int
}{
	{keys: []int32{rl.KeyUp, rl.KeyW}, dy: -1},
	{keys: []int32{rl.KeyDown, rl.KeyS}, dy: 1},
	{keys: []int32{rl.KeyLeft, rl.KeyA}, dx: -1},
	{keys: []int32{rl.KeyRight, rl.KeyD}, dx: 1},
}

// movementInput returns the step requested this frame. Keys repeat while held
// once the repeat delay has passed.
func movementInput(held float32) (dx, dy int, pressed bool) {
	for _, m := range movementKeys {
		for _, k := range m.keys {
			if ShiftPressed() && k == rl.KeyS {
				continue
			}
			if rl.IsKeyPressed(k) || (rl.IsKeyDown(k) && held >= moveRepeatDelay) {
				return m.dx, m.dy, true
			}
		}
	}
	return 0, 0, false
}

func anyMovementKeyDown() bool {
	for _, m := range movementKeys {
		for _, k := range m.keys {
			if rl.IsKeyDown(k) {
				return true
			}
		}
	}
	return false
}

func ShiftPressedKey(key int32) bool {
	if ShiftPressed() && rl.IsKeyPressed(key) {
		return true
	}
	// Accept either key order: Shift then key, or key then Shift.
	return rl.IsKeyDown(key) && (rl.IsKeyPressed(rl.KeyLeftShift) || rl.IsKeyPressed(rl.KeyRightShift))
}

func ShiftPressed() bool {
	return rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift)
}

package ui

// Zone is a screen rectangle that reacts to the mouse. Views return the
// zones they drew; the Program hit-tests them on the next frame.
type Zone struct {
	X, Y, W, H int
	hovered    bool
	Click      func(msg Msg) Cmd
	Enter      func(msg Msg) Cmd
	Leave      func(msg Msg) Cmd
}

func (z *Zone) Add(x, y int) *Zone {
	z.X += x
	z.Y += y
	return z
}

func (z *Zone) Hovered() bool {
	return z.hovered
}

func (z Zone) InBounds(x, y int) bool {
	return x >= z.X && x < z.X+z.W && y >= z.Y && y < z.Y+z.H
}

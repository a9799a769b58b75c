package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type MouseAction int

const (
	MousePress MouseAction = iota
	MouseRelease
	MouseMotion
	MouseEnter
	MouseLeave
)

type Msg interface{}

// Tick is sent once per frame after all input. DeltaTime is in seconds.
type Tick struct {
	DeltaTime float32
}

type MouseEvent struct {
	X, Y   int
	Action MouseAction
	Button ebiten.MouseButton
	Zone   *Zone
}

type KeyEvent struct {
	Key     ebiten.Key
	Pressed bool
}

type QuitMsg struct{}

type BatchMsg []Cmd

type Cmd func() Msg

func Quit() Msg {
	return QuitMsg{}
}

// Batch runs several commands one after the other.
func Batch(cmds ...Cmd) Cmd {
	var valid []Cmd
	for _, c := range cmds {
		if c != nil {
			valid = append(valid, c)
		}
	}
	switch len(valid) {
	case 0:
		return nil
	case 1:
		return valid[0]
	}
	return func() Msg {
		return BatchMsg(valid)
	}
}

// Based on bubbletea model
type Model interface {
	Init() Cmd
	Update(msg Msg) (Model, Cmd)
	// View draws the model and returns the zones that react to the mouse.
	View(screen *ebiten.Image) []*Zone
}

// Program runs a Model as an ebiten.Game.
type Program struct {
	M                      Model
	Width, Height          int
	TPS                    int
	ShowDebug              bool
	LastMouseX, LastMouseY int
	zones                  []*Zone
	initialized            bool
	quit                   bool
}

func (p *Program) Update() error {
	if !p.initialized {
		p.initialized = true
		p.runUpdate(p.M.Init())
	}
	mx, my := ebiten.CursorPosition()
	if mx != p.LastMouseX || my != p.LastMouseY {
		// Topmost zone wins the hover.
		top := -1
		for i := len(p.zones) - 1; i >= 0; i-- {
			if p.zones[i].InBounds(mx, my) {
				top = i
				break
			}
		}
		for i, z := range p.zones {
			hovered := z.hovered
			z.hovered = i == top
			switch {
			case z.hovered && !hovered && z.Enter != nil:
				p.runCmd(z.Enter(MouseEvent{X: mx, Y: my, Action: MouseEnter, Zone: z}))
			case !z.hovered && hovered && z.Leave != nil:
				p.runCmd(z.Leave(MouseEvent{X: mx, Y: my, Action: MouseLeave, Zone: z}))
			}
		}
		p.runUpdate(MouseEvent{X: mx, Y: my, Action: MouseMotion})
		p.LastMouseX = mx
		p.LastMouseY = my
	}
	for i := range ebiten.MouseButtonMax {
		button := ebiten.MouseButton(i)
		if inpututil.IsMouseButtonJustPressed(button) {
			if z := p.zoneAt(mx, my); z != nil && z.Click != nil && button == ebiten.MouseButtonLeft {
				p.runCmd(z.Click(MouseEvent{X: mx, Y: my, Action: MousePress, Button: button, Zone: z}))
			}
			p.runUpdate(MouseEvent{X: mx, Y: my, Action: MousePress, Button: button})
		}
		if inpututil.IsMouseButtonJustReleased(button) {
			p.runUpdate(MouseEvent{X: mx, Y: my, Action: MouseRelease, Button: button})
		}
	}
	for i := range ebiten.KeyMax {
		if inpututil.IsKeyJustPressed(ebiten.Key(i)) {
			p.runUpdate(KeyEvent{Key: ebiten.Key(i), Pressed: true})
		}
		if inpututil.IsKeyJustReleased(ebiten.Key(i)) {
			p.runUpdate(KeyEvent{Key: ebiten.Key(i)})
		}
	}
	p.runUpdate(Tick{DeltaTime: 1 / float32(p.tps())})
	if p.quit {
		return ebiten.Termination
	}
	return nil
}

func (p *Program) tps() int {
	if p.TPS > 0 {
		return p.TPS
	}
	return ebiten.DefaultTPS
}

func (p *Program) zoneAt(x, y int) *Zone {
	for i := len(p.zones) - 1; i >= 0; i-- {
		if p.zones[i].InBounds(x, y) {
			return p.zones[i]
		}
	}
	return nil
}

func (p *Program) runUpdate(msg Msg) {
	var cmd Cmd
	for msg != nil {
		switch m := msg.(type) {
		case QuitMsg:
			p.quit = true
			return
		case BatchMsg:
			for _, c := range m {
				p.runCmd(c)
			}
			return
		}
		p.M, cmd = p.M.Update(msg)
		if cmd == nil {
			return
		}
		msg = cmd()
	}
}

func (p *Program) runCmd(cmd Cmd) {
	if cmd != nil {
		p.runUpdate(cmd())
	}
}

func (p *Program) Draw(screen *ebiten.Image) {
	p.zones = p.M.View(screen)
	if p.ShowDebug {
		msg := fmt.Sprintf("TPS: %0.2f\nFPS: %0.2f", ebiten.ActualTPS(), ebiten.ActualFPS())
		ebitenutil.DebugPrint(screen, msg)
	}
}

func (p *Program) Layout(outsideW, outsideH int) (int, int) {
	return p.Width, p.Height
}

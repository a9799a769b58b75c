package screens

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/SvenDH/go-freecell/config"
	"github.com/SvenDH/go-freecell/ui"
)

// Menu is the title screen.
type Menu struct {
	palette *ui.Palette

	title       *ui.Label
	start, exit *ui.Label
	startZone   *ui.Zone
	exitZone    *ui.Zone
}

func NewMenu(cfg *config.Config, palette *ui.Palette) *Menu {
	cx := float64(cfg.Screen.Width) / 2
	h := float64(cfg.Screen.Height)
	m := &Menu{
		palette: palette,
		title:   (&ui.Label{Text: cfg.Title, Y: 0.25 * h, Scale: 6, Color: palette.Text}).Centered(cx),
		start:   (&ui.Label{Text: cfg.Text.Start, Y: 0.55 * h, Scale: 2, Color: palette.Text}).Centered(cx),
		exit:    (&ui.Label{Text: cfg.Text.Exit, Y: 0.62 * h, Scale: 2, Color: palette.Text}).Centered(cx),
	}
	m.startZone = m.start.Zone()
	m.startZone.Click = func(msg ui.Msg) ui.Cmd { return start }
	m.exitZone = m.exit.Zone()
	m.exitZone.Click = func(msg ui.Msg) ui.Cmd { return ui.Quit }
	return m
}

func start() ui.Msg {
	return StartMsg{}
}

func (m *Menu) Init() ui.Cmd {
	return nil
}

func (m *Menu) Update(msg ui.Msg) (ui.Model, ui.Cmd) {
	if key, ok := msg.(ui.KeyEvent); ok && key.Pressed {
		switch key.Key {
		case ebiten.KeyEnter, ebiten.KeyNumpadEnter:
			return m, start
		case ebiten.KeyEscape:
			return m, ui.Quit
		}
	}
	return m, nil
}

func (m *Menu) View(screen *ebiten.Image) []*ui.Zone {
	screen.Fill(m.palette.Background)
	m.title.Draw(screen)
	for _, item := range []struct {
		label *ui.Label
		zone  *ui.Zone
	}{{m.start, m.startZone}, {m.exit, m.exitZone}} {
		item.label.Color = m.palette.Text
		if item.zone.Hovered() {
			item.label.Color = m.palette.Highlight
		}
		item.label.Draw(screen)
	}
	return []*ui.Zone{m.startZone, m.exitZone}
}

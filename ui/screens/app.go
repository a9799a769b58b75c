package screens

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/SvenDH/go-freecell/ui"
)

// App switches between the menu and the table.
type App struct {
	Menu  *Menu
	Table *Table
	// Seed is dealt by the first StartMsg without a seed of its own.
	Seed int64

	current ui.Model
}

// NewApp opens on the menu, or straight on the table when skipMenu is set.
func NewApp(menu *Menu, table *Table, seed int64, skipMenu bool) *App {
	a := &App{Menu: menu, Table: table, Seed: seed, current: menu}
	if skipMenu {
		a.start(StartMsg{})
	}
	return a
}

func (a *App) Init() ui.Cmd {
	return ui.Batch(a.Menu.Init(), a.Table.Init())
}

func (a *App) start(m StartMsg) {
	seed := m.Seed
	if seed == 0 {
		seed = a.Seed
		a.Seed = 0
	}
	if seed == 0 {
		seed = newSeed()
	}
	a.Table.Start(seed)
	a.current = a.Table
}

func (a *App) Update(msg ui.Msg) (ui.Model, ui.Cmd) {
	switch m := msg.(type) {
	case StartMsg:
		a.start(m)
		return a, nil
	case ShowMenuMsg:
		a.current = a.Menu
		return a, nil
	}
	var cmd ui.Cmd
	a.current, cmd = a.current.Update(msg)
	return a, cmd
}

func (a *App) View(screen *ebiten.Image) []*ui.Zone {
	return a.current.View(screen)
}

// Close records the game in progress, if any, as abandoned.
func (a *App) Close() {
	a.Table.Abandon()
}

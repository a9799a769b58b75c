package screens

import (
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/oklog/ulid/v2"

	"github.com/SvenDH/go-freecell/config"
	"github.com/SvenDH/go-freecell/game"
	"github.com/SvenDH/go-freecell/store"
	"github.com/SvenDH/go-freecell/ui"
)

// Recorder keeps the history of played games. *store.Repository is one.
type Recorder interface {
	AddGame(seed int64) (*store.Game, error)
	FinishGame(id ulid.ULID, moves int, won bool) error
}

type ShowMenuMsg struct{}

// StartMsg starts a game. A zero Seed picks a fresh one.
type StartMsg struct {
	Seed int64
}

// Table is the playing screen. It feeds pointer input to the game, plays
// the sounds the game asks for and draws what it returns.
type Table struct {
	cfg      *config.Config
	palette  *ui.Palette
	sounds   *ui.Sounds
	recorder Recorder

	game   *game.Game
	record *store.Game

	menu, newGame, restart *ui.Label
	status, won            *ui.Label
	zones                  []*ui.Zone
}

func NewTable(cfg *config.Config, palette *ui.Palette, sounds *ui.Sounds, recorder Recorder) *Table {
	x := float64(cfg.Screen.Width - 260)
	h := float64(cfg.Screen.Height)
	t := &Table{
		cfg:      cfg,
		palette:  palette,
		sounds:   sounds,
		recorder: recorder,
		menu:     &ui.Label{Text: cfg.Text.Menu, X: x, Y: 0.10 * h, Scale: 1.5, Color: palette.Text},
		newGame:  &ui.Label{Text: cfg.Text.NewGame, X: x, Y: 0.20 * h, Scale: 1.5, Color: palette.Text},
		restart:  &ui.Label{Text: cfg.Text.Restart, X: x, Y: 0.25 * h, Scale: 1.5, Color: palette.Text},
		status:   &ui.Label{X: x, Y: 0.35 * h, Scale: 1.5, Color: palette.Text},
		won:      &ui.Label{Text: cfg.Text.Won, Y: 0.45 * h, Scale: 4, Color: palette.Highlight},
	}
	t.won.Centered(float64(cfg.Screen.Width) / 2)

	menuZone := t.menu.Zone()
	menuZone.Click = func(msg ui.Msg) ui.Cmd { return showMenu }
	newZone := t.newGame.Zone()
	newZone.Click = func(msg ui.Msg) ui.Cmd {
		t.Start(newSeed())
		return nil
	}
	restartZone := t.restart.Zone()
	restartZone.Click = func(msg ui.Msg) ui.Cmd {
		t.Restart()
		return nil
	}
	t.zones = []*ui.Zone{menuZone, newZone, restartZone}
	return t
}

func showMenu() ui.Msg {
	return ShowMenuMsg{}
}

func newSeed() int64 {
	return time.Now().UnixNano()
}

// Start deals seed, closing the record of the game in progress.
func (t *Table) Start(seed int64) {
	t.Abandon()
	if t.game == nil {
		t.game = game.New(t.cfg, seed)
	} else {
		t.game.NewDeal(seed)
	}
	log.Printf("dealing seed %d", seed)
	t.startRecord()
}

// Restart deals the current seed again.
func (t *Table) Restart() {
	if t.game == nil {
		return
	}
	t.Abandon()
	t.game.Restart()
	log.Printf("restarting seed %d", t.game.Seed)
	t.startRecord()
}

// Abandon records the game in progress as lost.
func (t *Table) Abandon() {
	t.finishRecord(false)
}

func (t *Table) startRecord() {
	if t.recorder == nil {
		return
	}
	record, err := t.recorder.AddGame(t.game.Seed)
	if err != nil {
		log.Printf("error recording game: %v", err)
		return
	}
	t.record = record
}

func (t *Table) finishRecord(won bool) {
	if t.recorder == nil || t.record == nil {
		return
	}
	if err := t.recorder.FinishGame(t.record.Id, t.game.Moves(), won); err != nil {
		log.Printf("error recording game: %v", err)
	}
	t.record = nil
}

func (t *Table) Init() ui.Cmd {
	return nil
}

func (t *Table) Update(msg ui.Msg) (ui.Model, ui.Cmd) {
	if t.game == nil {
		return t, nil
	}
	switch m := msg.(type) {
	case ui.MouseEvent:
		p := game.Pointer{X: float32(m.X), Y: float32(m.Y), Button: int(m.Button)}
		switch m.Action {
		case ui.MousePress:
			p.Action = game.PointerDown
		case ui.MouseRelease:
			p.Action = game.PointerUp
		case ui.MouseMotion:
			p.Action = game.PointerMove
		default:
			return t, nil
		}
		t.game.HandlePointer(p)
	case ui.KeyEvent:
		if !m.Pressed {
			return t, nil
		}
		switch m.Key {
		case ebiten.KeyN:
			t.Start(newSeed())
		case ebiten.KeyR:
			t.Restart()
		case ebiten.KeyBackspace:
			return t, showMenu
		}
	case ui.Tick:
		t.game.Update(m.DeltaTime)
		t.handleEvents(t.game.Events())
	}
	return t, nil
}

func (t *Table) handleEvents(events []game.Event) {
	for _, e := range events {
		switch e.Type {
		case game.EventDealt:
			t.play(func(s *ui.Sounds) *ui.Sound { return s.Deal })
		case game.EventPickUp:
			t.play(func(s *ui.Sounds) *ui.Sound { return s.PickUp })
		case game.EventLanded:
			t.play(func(s *ui.Sounds) *ui.Sound { return s.Drop })
		case game.EventWon:
			log.Printf("seed %d won in %d moves", t.game.Seed, t.game.Moves())
			t.finishRecord(true)
			t.play(func(s *ui.Sounds) *ui.Sound { return s.Won })
		}
	}
}

func (t *Table) play(pick func(*ui.Sounds) *ui.Sound) {
	if t.sounds != nil {
		pick(t.sounds).Play()
	}
}

func (t *Table) View(screen *ebiten.Image) []*ui.Zone {
	screen.Fill(t.palette.Background)
	for _, l := range []*ui.Label{t.menu, t.newGame, t.restart} {
		l.Draw(screen)
	}
	if t.game == nil {
		return t.zones
	}

	t.status.Text = fmt.Sprintf("Seed %d\nMoves %d", t.game.Seed, t.game.Moves())
	t.status.Draw(screen)

	_, cardHeight := t.game.Layout.CardSize()
	for _, r := range t.game.Renderables() {
		switch r.Kind {
		case game.RenderCell:
			drawCell(screen, r, t.palette, cardHeight)
		case game.RenderShadow:
			drawShadow(screen, r, t.palette)
		case game.RenderCard:
			drawCard(screen, r, t.palette)
		}
	}
	if t.game.Won() {
		t.won.Draw(screen)
	}
	return t.zones
}

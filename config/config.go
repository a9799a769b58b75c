package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Config is built once at startup and handed to every component that needs it.
// Nothing mutates it afterwards.
type Config struct {
	Title   string  `toml:"title"`
	Screen  Screen  `toml:"screen"`
	Deck    Deck    `toml:"deck"`
	Layout  Layout  `toml:"layout"`
	Timing  Timing  `toml:"timing"`
	Colors  Colors  `toml:"colors"`
	Text    Text    `toml:"text"`
	Storage Storage `toml:"storage"`
}

type Screen struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
	TPS    int `toml:"tps"`
}

type Deck struct {
	Suits  []string          `toml:"suits"`
	Ranks  []string          `toml:"ranks"`
	Colors map[string]string `toml:"colors"`
}

// Layout holds the table geometry in screen pixels.
type Layout struct {
	CardWidth             int     `toml:"card_width"`
	CardHeight            int     `toml:"card_height"`
	CardMarginX           int     `toml:"card_margin_x"`
	CardOffsetX           int     `toml:"card_offset_x"`
	CardOffsetY           int     `toml:"card_offset_y"`
	RowRatio              float64 `toml:"row_ratio"`
	CellMarginX           int     `toml:"cell_margin_x"`
	CellOffsetY           int     `toml:"cell_offset_y"`
	FreeCellOffsetX       int     `toml:"free_cell_offset_x"`
	FoundationCellOffsetX int     `toml:"foundation_cell_offset_x"`
	DealerX               int     `toml:"dealer_x"`
	DealerY               int     `toml:"dealer_y"`
	ShadowOffset          int     `toml:"shadow_offset"`
	MovingShadowOffset    int     `toml:"moving_shadow_offset"`
	DragLayer             int     `toml:"drag_layer"`
}

// Timing values are in seconds, except SnapThreshold which is in pixels.
type Timing struct {
	CardMovingTime float64 `toml:"card_moving_time"`
	DealDelay      float64 `toml:"deal_delay"`
	DealStep       float64 `toml:"deal_step"`
	Stagger        float64 `toml:"stagger"`
	SnapThreshold  float64 `toml:"snap_threshold"`
}

// Colors are hex strings, "#rrggbb" or "#rrggbbaa".
type Colors struct {
	Background string `toml:"background"`
	Text       string `toml:"text"`
	Cell       string `toml:"cell"`
	Highlight  string `toml:"highlight"`
	CardFace   string `toml:"card_face"`
	CardBorder string `toml:"card_border"`
	DragBorder string `toml:"drag_border"`
	Red        string `toml:"red"`
	Black      string `toml:"black"`
	Shadow     string `toml:"shadow"`
}

type Text struct {
	Menu    string `toml:"menu"`
	NewGame string `toml:"new_game"`
	Restart string `toml:"restart"`
	Start   string `toml:"start"`
	Exit    string `toml:"exit"`
	Won     string `toml:"won"`
}

type Storage struct {
	Path string `toml:"path"`
}

func Default() *Config {
	return &Config{
		Title: "FreeCell",
		Screen: Screen{
			Width:  1360,
			Height: 900,
			TPS:    60,
		},
		Deck: Deck{
			Suits: []string{"Clubs", "Diamonds", "Hearts", "Spades"},
			Ranks: []string{"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"},
			Colors: map[string]string{
				"Clubs":    "black",
				"Diamonds": "red",
				"Hearts":   "red",
				"Spades":   "black",
			},
		},
		Layout: Layout{
			CardWidth:             90,
			CardHeight:            126,
			CardMarginX:           20,
			CardOffsetX:           40,
			CardOffsetY:           200,
			RowRatio:              0.235,
			CellMarginX:           10,
			CellOffsetY:           30,
			FreeCellOffsetX:       40,
			FoundationCellOffsetX: 520,
			DealerX:               1100,
			DealerY:               700,
			ShadowOffset:          3,
			MovingShadowOffset:    12,
			DragLayer:             100,
		},
		Timing: Timing{
			CardMovingTime: 0.6,
			DealDelay:      0.25,
			DealStep:       0.025,
			Stagger:        0.04,
			SnapThreshold:  2,
		},
		Colors: Colors{
			Background: "#1e5631",
			Text:       "#f0ead6",
			Cell:       "#2e7d4f",
			Highlight:  "#e6c84f",
			CardFace:   "#fbfaf5",
			CardBorder: "#404040",
			DragBorder: "#e6c84f",
			Red:        "#c0392b",
			Black:      "#1b1b1b",
			Shadow:     "#00000060",
		},
		Text: Text{
			Menu:    "BACKSPACE - Menu",
			NewGame: "N - New game",
			Restart: "R - Restart game",
			Start:   "ENTER - Start",
			Exit:    "ESC - Exit",
			Won:     "You won!",
		},
		Storage: Storage{
			Path: filepath.Join(GetXDGDataHome(), "freecell", "history.db"),
		},
	}
}

// GetXDGDataHome returns XDG_DATA_HOME or default path
func GetXDGDataHome() string {
	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return xdgData
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".local", "share")
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "freecell", "config.toml")
}

// Load reads the config file at path. An empty path means the XDG location,
// where a default file is written on first use. Keys missing from the file
// keep their default values.
func Load(path string) (*Config, error) {
	if path == "" {
		path = GetConfigFilePath()
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return createDefaultConfig(path)
		}
	}

	config := Default()
	if _, err := toml.DecodeFile(path, config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func createDefaultConfig(path string) (*Config, error) {
	config := Default()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("error creating config directory: %w", err)
	}
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("error creating config file: %w", err)
	}
	if err := writeConfig(file, config); err != nil {
		return nil, err
	}
	return config, nil
}

// writeConfig encodes config into w and closes it. A failed close is
// reported since buffered data may not have reached the disk.
func writeConfig(w io.WriteCloser, config *Config) error {
	if err := config.Encode(w); err != nil {
		w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}
	return nil
}

// Encode writes the config as TOML.
func (c *Config) Encode(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(c); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}
	return nil
}

// Validate checks the values the rule engine and the layout depend on.
func (c *Config) Validate() error {
	if len(c.Deck.Suits) != 4 {
		return fmt.Errorf("%w: deck needs 4 suits, got %d", ErrInvalidConfig, len(c.Deck.Suits))
	}
	if len(c.Deck.Ranks) != 13 {
		return fmt.Errorf("%w: deck needs 13 ranks, got %d", ErrInvalidConfig, len(c.Deck.Ranks))
	}
	seen := make(map[string]bool, len(c.Deck.Suits))
	for _, suit := range c.Deck.Suits {
		if seen[suit] {
			return fmt.Errorf("%w: duplicate suit %q", ErrInvalidConfig, suit)
		}
		seen[suit] = true
		switch strings.ToLower(c.Deck.Colors[suit]) {
		case "red", "black":
		default:
			return fmt.Errorf("%w: suit %q has no red/black color", ErrInvalidConfig, suit)
		}
	}
	seen = make(map[string]bool, len(c.Deck.Ranks))
	for _, rank := range c.Deck.Ranks {
		if seen[rank] {
			return fmt.Errorf("%w: duplicate rank %q", ErrInvalidConfig, rank)
		}
		seen[rank] = true
	}
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("%w: screen size must be positive", ErrInvalidConfig)
	}
	if c.Layout.CardWidth <= 0 || c.Layout.CardHeight <= 0 {
		return fmt.Errorf("%w: card size must be positive", ErrInvalidConfig)
	}
	if c.Layout.RowRatio <= 0 {
		return fmt.Errorf("%w: row_ratio must be positive", ErrInvalidConfig)
	}
	if c.Timing.CardMovingTime <= 0 {
		return fmt.Errorf("%w: card_moving_time must be positive", ErrInvalidConfig)
	}
	if c.Timing.DealStep <= 0 || c.Timing.DealDelay < 0 || c.Timing.Stagger < 0 {
		return fmt.Errorf("%w: deal_step must be positive, deal_delay and stagger not negative", ErrInvalidConfig)
	}
	if c.Timing.SnapThreshold < 0 {
		return fmt.Errorf("%w: snap_threshold must not be negative", ErrInvalidConfig)
	}
	return nil
}

// SuitColor returns "red" or "black" for a configured suit name.
func (c *Config) SuitColor(suit string) string {
	return strings.ToLower(c.Deck.Colors[suit])
}

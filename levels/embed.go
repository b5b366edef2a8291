package levels

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

//go:embed *.json
var LevelsFS embed.FS

// ErrLevelNotFound is returned when neither disk nor the embedded set has the level.
var ErrLevelNotFound = errors.New("level not found")

// order is the play order of the bundled levels.
var order = []string{"level_1.json", "level_2.json", "level_3.json"}

// File is the entity record set of one level.
type File struct {
	Players      []PlayerData      `json:"players"`
	Platforms    []PlatformData    `json:"platforms"`
	Collectibles []CollectibleData `json:"collectibles"`
	Enemies      []EnemyData       `json:"enemies"`
	Traps        []TrapData        `json:"traps"`
}

// SheetData names a sprite sheet and its column count.
type SheetData struct {
	Path    string `json:"path"`
	Columns int    `json:"columns"`
}

type PlayerData struct {
	Animations map[string]SheetData `json:"animations"`
	PosX       int                  `json:"pos_x"`
	PosY       int                  `json:"pos_y"`
}

type PlatformData struct {
	PosX     int  `json:"pos_x"`
	PosY     int  `json:"pos_y"`
	Width    int  `json:"width"`
	Height   int  `json:"height"`
	Type     int  `json:"type"`
	Collided bool `json:"collided"`
}

type CollectibleData struct {
	PosX  int     `json:"pos_x"`
	PosY  int     `json:"pos_y"`
	Path  string  `json:"path"`
	Type  string  `json:"type"`
	Scale float64 `json:"scale"`
}

type EnemyData struct {
	Animations map[string]SheetData `json:"animations"`
	PosX       int                  `json:"pos_x"`
	PosY       int                  `json:"pos_y"`
	RightLimit int                  `json:"right_limit"`
	LeftLimit  int                  `json:"left_limit"`
}

type TrapData struct {
	Animations SheetData `json:"animations"`
	PosX       int       `json:"pos_x"`
	PosY       int       `json:"pos_y"`
	Scale      float64   `json:"scale"`
}

// Names returns the bundled levels in play order.
func Names() []string {
	return append([]string(nil), order...)
}

// Next returns the level after name, or "" after the last one.
func Next(name string) string {
	clean := cleanLevelName(name)
	for i, n := range order {
		if n == clean && i+1 < len(order) {
			return order[i+1]
		}
	}
	return ""
}

// Load reads a level, preferring ./levels on disk over the embedded copy.
func Load(name string) (*File, error) {
	clean := cleanLevelName(name)
	data, err := os.ReadFile(filepath.Join("levels", clean))
	if err != nil {
		data, err = fs.ReadFile(LevelsFS, clean)
	}
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read level %s: %w", clean, ErrLevelNotFound)
		}
		return nil, fmt.Errorf("read level %s: %w", clean, err)
	}
	return Parse(data)
}

// Parse decodes level JSON. Absent arrays decode as empty.
func Parse(data []byte) (*File, error) {
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("unmarshal level: %w", err)
	}
	return &f, nil
}

// LoadOrEmpty loads a level and absorbs any failure as an empty level.
func LoadOrEmpty(name string) *File {
	f, err := Load(name)
	if err != nil {
		log.Warn("level unavailable, using empty level", "level", name, "err", err)
		return &File{}
	}
	return f
}

func cleanLevelName(name string) string {
	s := filepath.ToSlash(name)
	if after, ok := strings.CutPrefix(s, "levels/"); ok {
		s = after
	}
	if !strings.HasSuffix(s, ".json") {
		s += ".json"
	}
	return s
}

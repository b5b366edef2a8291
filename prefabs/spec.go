package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// SizeSpec is the frame size used for placeholder art when a sheet is missing.
type SizeSpec struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type PointSpec struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

type AudioSpec struct {
	Name   string  `yaml:"name"`
	File   string  `yaml:"file"`
	Volume float64 `yaml:"volume"`
}

type PlayerSpec struct {
	Name           string      `yaml:"name"`
	Gravity        int         `yaml:"gravity"`
	WalkingSpeed   int         `yaml:"walking_speed"`
	JumpingPower   int         `yaml:"jumping_power"`
	JumpHeight     int         `yaml:"jump_height"`
	FrameRate      int         `yaml:"frame_rate"`
	MoveRate       int         `yaml:"move_rate"`
	Radius         int         `yaml:"radius"`
	Lives          int         `yaml:"lives"`
	HitCooldown    int         `yaml:"hit_cooldown"`
	DeathFallSpeed int         `yaml:"death_fall_speed"`
	RespawnPenalty int         `yaml:"respawn_penalty"`
	MinY           int         `yaml:"min_y"`
	Spawn          PointSpec   `yaml:"spawn"`
	Scale          float64     `yaml:"scale"`
	Placeholder    SizeSpec    `yaml:"placeholder"`
	Audio          []AudioSpec `yaml:"audio"`
}

// DefaultPlayerSpec returns the stock player tuning.
func DefaultPlayerSpec() PlayerSpec {
	return PlayerSpec{
		Name:           "player",
		Gravity:        8,
		WalkingSpeed:   5,
		JumpingPower:   25,
		JumpHeight:     136,
		FrameRate:      35,
		MoveRate:       10,
		Radius:         31,
		Lives:          3,
		HitCooldown:    60,
		DeathFallSpeed: 2,
		RespawnPenalty: 50,
		MinY:           -80,
		Spawn:          PointSpec{X: 10, Y: 561},
		Scale:          2,
		Placeholder:    SizeSpec{Width: 64, Height: 64},
	}
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	spec.fill(DefaultPlayerSpec())
	return &spec, nil
}

func (s *PlayerSpec) fill(d PlayerSpec) {
	fillInt(&s.Gravity, d.Gravity)
	fillInt(&s.WalkingSpeed, d.WalkingSpeed)
	fillInt(&s.JumpingPower, d.JumpingPower)
	fillInt(&s.JumpHeight, d.JumpHeight)
	fillInt(&s.FrameRate, d.FrameRate)
	fillInt(&s.MoveRate, d.MoveRate)
	fillInt(&s.Radius, d.Radius)
	fillInt(&s.Lives, d.Lives)
	fillInt(&s.HitCooldown, d.HitCooldown)
	fillInt(&s.DeathFallSpeed, d.DeathFallSpeed)
	fillInt(&s.RespawnPenalty, d.RespawnPenalty)
	fillInt(&s.MinY, d.MinY)
	if s.Spawn == (PointSpec{}) {
		s.Spawn = d.Spawn
	}
	fillFloat(&s.Scale, d.Scale)
	fillSize(&s.Placeholder, d.Placeholder)
}

type EnemySpec struct {
	Name         string      `yaml:"name"`
	Gravity      int         `yaml:"gravity"`
	MoveRate     int         `yaml:"move_rate"`
	FrameRate    int         `yaml:"frame_rate"`
	AttackRange  int         `yaml:"attack_range"`
	AttackHeight int         `yaml:"attack_height"`
	WaitTicks    int         `yaml:"wait_ticks"`
	DeathDelayMS int         `yaml:"death_delay_ms"`
	GroundOffset int         `yaml:"ground_offset"`
	RespawnMinX  int         `yaml:"respawn_min_x"`
	RespawnEdge  int         `yaml:"respawn_edge"`
	Scale        float64     `yaml:"scale"`
	Placeholder  SizeSpec    `yaml:"placeholder"`
	Audio        []AudioSpec `yaml:"audio"`
}

// DefaultEnemySpec returns the stock enemy tuning.
func DefaultEnemySpec() EnemySpec {
	return EnemySpec{
		Name:         "enemy",
		Gravity:      3,
		MoveRate:     10,
		FrameRate:    30,
		AttackRange:  200,
		AttackHeight: 180,
		WaitTicks:    120,
		DeathDelayMS: 5000,
		GroundOffset: 69,
		RespawnMinX:  100,
		RespawnEdge:  50,
		Scale:        2,
		Placeholder:  SizeSpec{Width: 64, Height: 64},
	}
}

func LoadEnemySpec() (*EnemySpec, error) {
	spec, err := LoadSpec[EnemySpec]("enemy.yaml")
	if err != nil {
		return nil, err
	}
	spec.fill(DefaultEnemySpec())
	return &spec, nil
}

func (s *EnemySpec) fill(d EnemySpec) {
	fillInt(&s.Gravity, d.Gravity)
	fillInt(&s.MoveRate, d.MoveRate)
	fillInt(&s.FrameRate, d.FrameRate)
	fillInt(&s.AttackRange, d.AttackRange)
	fillInt(&s.AttackHeight, d.AttackHeight)
	fillInt(&s.WaitTicks, d.WaitTicks)
	fillInt(&s.DeathDelayMS, d.DeathDelayMS)
	fillInt(&s.GroundOffset, d.GroundOffset)
	fillInt(&s.RespawnMinX, d.RespawnMinX)
	fillInt(&s.RespawnEdge, d.RespawnEdge)
	fillFloat(&s.Scale, d.Scale)
	fillSize(&s.Placeholder, d.Placeholder)
}

type CollectibleSpec struct {
	Name             string      `yaml:"name"`
	FrameRate        int         `yaml:"frame_rate"`
	IdleColumns      int         `yaml:"idle_columns"`
	CollectedSheet   string      `yaml:"collected_sheet"`
	CollectedColumns int         `yaml:"collected_columns"`
	CollectedScale   float64     `yaml:"collected_scale"`
	RemoveAfter      int         `yaml:"remove_after"`
	NormalScore      int         `yaml:"normal_score"`
	SpecialScore     int         `yaml:"special_score"`
	Placeholder      SizeSpec    `yaml:"placeholder"`
	Audio            []AudioSpec `yaml:"audio"`
}

// DefaultCollectibleSpec returns the stock collectible tuning.
func DefaultCollectibleSpec() CollectibleSpec {
	return CollectibleSpec{
		Name:             "collectible",
		FrameRate:        30,
		IdleColumns:      17,
		CollectedSheet:   "Varios/Cositas/Items/Fruits/Collected.png",
		CollectedColumns: 6,
		CollectedScale:   2,
		RemoveAfter:      7,
		NormalScore:      100,
		SpecialScore:     150,
		Placeholder:      SizeSpec{Width: 64, Height: 64},
	}
}

func LoadCollectibleSpec() (*CollectibleSpec, error) {
	spec, err := LoadSpec[CollectibleSpec]("collectible.yaml")
	if err != nil {
		return nil, err
	}
	spec.fill(DefaultCollectibleSpec())
	return &spec, nil
}

func (s *CollectibleSpec) fill(d CollectibleSpec) {
	fillInt(&s.FrameRate, d.FrameRate)
	fillInt(&s.IdleColumns, d.IdleColumns)
	if s.CollectedSheet == "" {
		s.CollectedSheet = d.CollectedSheet
	}
	fillInt(&s.CollectedColumns, d.CollectedColumns)
	fillFloat(&s.CollectedScale, d.CollectedScale)
	fillInt(&s.RemoveAfter, d.RemoveAfter)
	fillInt(&s.NormalScore, d.NormalScore)
	fillInt(&s.SpecialScore, d.SpecialScore)
	fillSize(&s.Placeholder, d.Placeholder)
}

type TrapSpec struct {
	Name        string   `yaml:"name"`
	FrameRate   int      `yaml:"frame_rate"`
	Radius      int      `yaml:"radius"`
	LargeRadius int      `yaml:"large_radius"`
	LargeScale  float64  `yaml:"large_scale"`
	Placeholder SizeSpec `yaml:"placeholder"`
}

// DefaultTrapSpec returns the stock trap tuning.
func DefaultTrapSpec() TrapSpec {
	return TrapSpec{
		Name:        "trap",
		FrameRate:   30,
		Radius:      25,
		LargeRadius: 35,
		LargeScale:  2,
		Placeholder: SizeSpec{Width: 38, Height: 38},
	}
}

func LoadTrapSpec() (*TrapSpec, error) {
	spec, err := LoadSpec[TrapSpec]("trap.yaml")
	if err != nil {
		return nil, err
	}
	fillInt(&spec.FrameRate, 30)
	fillInt(&spec.Radius, 25)
	fillInt(&spec.LargeRadius, 35)
	fillFloat(&spec.LargeScale, 2)
	fillSize(&spec.Placeholder, DefaultTrapSpec().Placeholder)
	return &spec, nil
}

type ProjectileSpec struct {
	Name   string      `yaml:"name"`
	Speed  int         `yaml:"speed"`
	Size   SizeSpec    `yaml:"size"`
	Offset PointSpec   `yaml:"offset"`
	Image  string      `yaml:"image"`
	Audio  []AudioSpec `yaml:"audio"`
}

// DefaultProjectileSpec returns the stock projectile tuning.
func DefaultProjectileSpec() ProjectileSpec {
	return ProjectileSpec{
		Name:   "projectile",
		Speed:  5,
		Size:   SizeSpec{Width: 30, Height: 30},
		Offset: PointSpec{X: 20, Y: 40},
		Image:  "Varios/Cositas/Enemies/Trunk/Bullet.png",
	}
}

func LoadProjectileSpec() (*ProjectileSpec, error) {
	spec, err := LoadSpec[ProjectileSpec]("projectile.yaml")
	if err != nil {
		return nil, err
	}
	d := DefaultProjectileSpec()
	fillInt(&spec.Speed, d.Speed)
	fillSize(&spec.Size, d.Size)
	if spec.Offset == (PointSpec{}) {
		spec.Offset = d.Offset
	}
	if spec.Image == "" {
		spec.Image = d.Image
	}
	return &spec, nil
}

type PlatformSpec struct {
	Name    string `yaml:"name"`
	Sheet   string `yaml:"sheet"`
	Columns int    `yaml:"columns"`
	Rows    int    `yaml:"rows"`
}

// DefaultPlatformSpec returns the stock tile sheet layout.
func DefaultPlatformSpec() PlatformSpec {
	return PlatformSpec{Name: "platform", Sheet: "Varios/Bloques/sheet1.png", Columns: 8, Rows: 8}
}

func LoadPlatformSpec() (*PlatformSpec, error) {
	spec, err := LoadSpec[PlatformSpec]("platform.yaml")
	if err != nil {
		return nil, err
	}
	d := DefaultPlatformSpec()
	if spec.Sheet == "" {
		spec.Sheet = d.Sheet
	}
	fillInt(&spec.Columns, d.Columns)
	fillInt(&spec.Rows, d.Rows)
	return &spec, nil
}

// ScreenSpec describes the background and music of one screen.
type ScreenSpec struct {
	Background string    `yaml:"background"`
	Music      AudioSpec `yaml:"music"`
	Loop       bool      `yaml:"loop"`
}

type HUDSpec struct {
	TextColor YAMLColor `yaml:"text_color"`
	Heart     string    `yaml:"heart"`
	HeartLost string    `yaml:"heart_lost"`
	HeartSize SizeSpec  `yaml:"heart_size"`
	HeartsAt  PointSpec `yaml:"hearts_at"`
	HeartGap  int       `yaml:"heart_gap"`
	TimeAt    PointSpec `yaml:"time_at"`
	ScoreAt   PointSpec `yaml:"score_at"`
}

// GameSpec holds per-screen presentation settings.
type GameSpec struct {
	Title   string                `yaml:"title"`
	Screens map[string]ScreenSpec `yaml:"screens"`
	HUD     HUDSpec               `yaml:"hud"`
}

func LoadGameSpec() (*GameSpec, error) {
	spec, err := LoadSpec[GameSpec]("game.yaml")
	if err != nil {
		return nil, err
	}
	if spec.Title == "" {
		spec.Title = "Catch me if you can"
	}
	if spec.Screens == nil {
		spec.Screens = map[string]ScreenSpec{}
	}
	if spec.HUD.TextColor.Color == nil {
		spec.HUD.TextColor.Color = color.NRGBA{B: 0xff, A: 0xff}
	}
	fillSize(&spec.HUD.HeartSize, SizeSpec{Width: 60, Height: 50})
	fillInt(&spec.HUD.HeartGap, 30)
	return &spec, nil
}

// FindAudio returns the entry called name.
func FindAudio(list []AudioSpec, name string) (AudioSpec, bool) {
	for _, a := range list {
		if a.Name == name {
			return a, true
		}
	}
	return AudioSpec{}, false
}

func fillInt(v *int, def int) {
	if *v == 0 {
		*v = def
	}
}

func fillFloat(v *float64, def float64) {
	if *v == 0 {
		*v = def
	}
}

func fillSize(v *SizeSpec, def SizeSpec) {
	if v.Width <= 0 || v.Height <= 0 {
		*v = def
	}
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}

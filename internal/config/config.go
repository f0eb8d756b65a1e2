// internal/config/config.go
package config

import (
	"image/color"

	"go-td-sim/internal/defs"
	"go-td-sim/pkg/gridmap"
)

const (
	GridWidth  = 20
	GridHeight = 15

	CellSize     = 40 // pixels per grid cell in the viewer
	HUDHeight    = 60
	ScreenWidth  = GridWidth * CellSize
	ScreenHeight = GridHeight*CellSize + HUDHeight

	TicksPerSecond = 30

	MaxTowerLevel = 3
)

// Rules — числовые параметры баланса, которые не привязаны к архетипам.
type Rules struct {
	StartingLives int `yaml:"starting_lives"`
	StartingMoney int `yaml:"starting_money"`
	WaveBonus     int `yaml:"wave_bonus"`

	SpawnInterval int `yaml:"spawn_interval"` // ticks between spawns
	WaveInterval  int `yaml:"wave_interval"`  // ticks before the next wave may start

	HealthGrowthPerWave float64 `yaml:"health_growth_per_wave"`
	SpeedGrowthPerWave  float64 `yaml:"speed_growth_per_wave"`
	RewardGrowthPerWave float64 `yaml:"reward_growth_per_wave"`

	BossMinWave int     `yaml:"boss_min_wave"` // bosses are rolled only for waves above this
	BossChance  float64 `yaml:"boss_chance"`
	EscortCount int     `yaml:"escort_count"`

	JitterFraction float64 `yaml:"jitter_fraction"`

	PoisonDamage   float64 `yaml:"poison_damage"`
	PoisonDuration int     `yaml:"poison_duration"`
	SlowFactor     float64 `yaml:"slow_factor"`
	SlowDuration   int     `yaml:"slow_duration"`
	HealAmount     float64 `yaml:"heal_amount"`
	HealCooldown   int     `yaml:"heal_cooldown"`

	SplashRadius   float64 `yaml:"splash_radius"`
	CritChance     float64 `yaml:"crit_chance"`
	CritMultiplier float64 `yaml:"crit_multiplier"`

	SupportBuffFactor float64 `yaml:"support_buff_factor"`
	SupportBuffCap    float64 `yaml:"support_buff_cap"` // 0 = unbounded

	UpgradeDamage    float64 `yaml:"upgrade_damage"`
	UpgradeRange     float64 `yaml:"upgrade_range"`
	UpgradeCooldown  float64 `yaml:"upgrade_cooldown"`
	UpgradeCostScale float64 `yaml:"upgrade_cost_scale"`
}

// PathDef is the serialisable form of a path.
type PathDef struct {
	Name      string          `yaml:"name"`
	Entry     string          `yaml:"entry"`
	Waypoints []gridmap.Point `yaml:"waypoints"`
}

// Config is everything a session needs to start.
type Config struct {
	Grid    gridmap.Grid           `yaml:"grid"`
	Rules   Rules                  `yaml:"rules"`
	Enemies []defs.EnemyDefinition `yaml:"enemies"`
	Towers  []defs.TowerDefinition `yaml:"towers"`
	Waves   []defs.WaveTier        `yaml:"waves"`
	Paths   []PathDef              `yaml:"paths"`
}

// DefaultRules returns the stock balance.
func DefaultRules() Rules {
	return Rules{
		StartingLives: 20,
		StartingMoney: 300,
		WaveBonus:     50,

		SpawnInterval: 30,
		WaveInterval:  150,

		HealthGrowthPerWave: 0.25,
		SpeedGrowthPerWave:  0.03,
		RewardGrowthPerWave: 0.1,

		BossMinWave: 5,
		BossChance:  0.05,
		EscortCount: 2,

		JitterFraction: 0.1,

		PoisonDamage:   1.5,
		PoisonDuration: 60,
		SlowFactor:     0.5,
		SlowDuration:   60,
		HealAmount:     5,
		HealCooldown:   45,

		SplashRadius:   1.5,
		CritChance:     0.3,
		CritMultiplier: 2,

		SupportBuffFactor: 1.001,
		SupportBuffCap:    0,

		UpgradeDamage:    1.5,
		UpgradeRange:     1.2,
		UpgradeCooldown:  0.8,
		UpgradeCostScale: 0.75,
	}
}

// DefaultPaths returns the stock two-entry map.
func DefaultPaths() []PathDef {
	return []PathDef{
		{
			Name:  "river",
			Entry: "west",
			Waypoints: []gridmap.Point{
				{X: 0, Y: 7}, {X: 5, Y: 7}, {X: 5, Y: 2}, {X: 10, Y: 2},
				{X: 10, Y: 12}, {X: 15, Y: 12}, {X: 15, Y: 7}, {X: 19, Y: 7},
			},
		},
		{
			Name:  "ridge",
			Entry: "north",
			Waypoints: []gridmap.Point{
				{X: 13, Y: 0}, {X: 13, Y: 4}, {X: 18, Y: 4}, {X: 18, Y: 7}, {X: 19, Y: 7},
			},
		},
	}
}

// Default returns the full stock configuration.
func Default() *Config {
	return &Config{
		Grid:    gridmap.Grid{Width: GridWidth, Height: GridHeight},
		Rules:   DefaultRules(),
		Enemies: defs.DefaultEnemies(),
		Towers:  defs.DefaultTowers(),
		Waves:   defs.DefaultWaves(),
		Paths:   DefaultPaths(),
	}
}

// Цвета отладочного просмотрщика.
var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	GridLineColor   = color.RGBA{40, 40, 55, 255}
	PathColor       = color.RGBA{70, 100, 120, 220}
	EntryColor      = color.RGBA{0, 255, 0, 255}
	ExitColor       = color.RGBA{255, 0, 0, 255}
	HealthBarColor  = color.RGBA{50, 205, 50, 255}
	HealthBackColor = color.RGBA{150, 70, 70, 255}
	TraceColor      = color.RGBA{255, 255, 0, 160}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	GameOverColor   = color.RGBA{220, 60, 60, 255}

	EnemyColors = map[defs.EnemyKind]color.RGBA{
		defs.EnemyNormal:  {200, 200, 200, 255},
		defs.EnemyFast:    {255, 215, 0, 255},
		defs.EnemyTank:    {139, 69, 19, 255},
		defs.EnemyBoss:    {180, 0, 0, 255},
		defs.EnemyFlying:  {135, 206, 250, 255},
		defs.EnemyStealth: {90, 90, 90, 255},
		defs.EnemyHealer:  {50, 255, 50, 255},
		defs.EnemySwarm:   {255, 140, 0, 255},
	}

	TowerColors = map[defs.TowerKind]color.RGBA{
		defs.TowerArrow:   {255, 50, 50, 255},
		defs.TowerCannon:  {120, 120, 120, 255},
		defs.TowerMagic:   {180, 50, 230, 255},
		defs.TowerLaser:   {255, 0, 128, 255},
		defs.TowerIce:     {50, 100, 255, 255},
		defs.TowerPoison:  {0, 160, 60, 255},
		defs.TowerSniper:  {240, 240, 240, 255},
		defs.TowerSupport: {255, 215, 0, 255},
	}
)

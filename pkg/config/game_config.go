package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// GameConfig 游戏配置（data/config/game.yaml）
type GameConfig struct {
	Window   WindowConfig   `yaml:"window"`   // 窗口
	PlayArea PlayAreaConfig `yaml:"playArea"` // 目标区域在屏幕上的位置
	Spawn    SpawnConfig    `yaml:"spawn"`    // 目标坐标取值范围
	Rules    RulesConfig    `yaml:"rules"`    // 玩法参数
}

// WindowConfig 窗口配置
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// PlayAreaConfig 目标区域（屏幕坐标，像素）
type PlayAreaConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// SpawnConfig 目标左上角坐标的取值范围（相对目标区域，像素）
type SpawnConfig struct {
	Width  float64 `yaml:"width"`  // Left 取值 [0, width)
	Height float64 `yaml:"height"` // Top 取值 [0, height)
}

// RulesConfig 玩法参数
type RulesConfig struct {
	MaxTargets     int  `yaml:"maxTargets"`     // 单局目标数量上限
	RemovalDelayMs int  `yaml:"removalDelayMs"` // 选中后移除延迟（毫秒）
	TickIntervalMs int  `yaml:"tickIntervalMs"` // 计时脉冲周期（毫秒）
	Shuffle        bool `yaml:"shuffle"`        // 是否打乱显示顺序
}

// DefaultGameConfig 返回内置默认配置
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Window: WindowConfig{
			Width:  GameWindowWidth,
			Height: GameWindowHeight,
			Title:  "Point Clear",
		},
		PlayArea: PlayAreaConfig{
			X:      PlayAreaX,
			Y:      PlayAreaY,
			Width:  PlayAreaWidth,
			Height: PlayAreaHeight,
		},
		Spawn: SpawnConfig{
			Width:  300,
			Height: 300,
		},
		Rules: RulesConfig{
			MaxTargets:     1000,
			RemovalDelayMs: 300,
			TickIntervalMs: 100,
			Shuffle:        true,
		},
	}
}

// LoadGameConfig 从 YAML 文件加载游戏配置
//
// 文件中缺省的字段保留默认值。
//
// 参数：
//   - filePath: 配置文件路径
//
// 返回：
//   - *GameConfig: 加载并校验后的配置
//   - error: 读取、解析或校验失败
func LoadGameConfig(filePath string) (*GameConfig, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config file: %w", err)
	}

	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config YAML: %w", err)
	}

	if err := validateGameConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}

	return cfg, nil
}

// validateGameConfig 验证配置的有效性
func validateGameConfig(cfg *GameConfig) error {
	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}

	if cfg.PlayArea.Width <= 0 || cfg.PlayArea.Height <= 0 {
		return fmt.Errorf("playArea size must be positive, got %.0fx%.0f", cfg.PlayArea.Width, cfg.PlayArea.Height)
	}

	if cfg.Spawn.Width < 0 || cfg.Spawn.Height < 0 {
		return fmt.Errorf("spawn size must be >= 0, got %.0fx%.0f", cfg.Spawn.Width, cfg.Spawn.Height)
	}

	if cfg.Rules.MaxTargets < 1 {
		return fmt.Errorf("rules.maxTargets must be >= 1, got %d", cfg.Rules.MaxTargets)
	}
	if cfg.Rules.RemovalDelayMs < 0 {
		return fmt.Errorf("rules.removalDelayMs must be >= 0, got %d", cfg.Rules.RemovalDelayMs)
	}
	if cfg.Rules.TickIntervalMs < 1 {
		return fmt.Errorf("rules.tickIntervalMs must be >= 1, got %d", cfg.Rules.TickIntervalMs)
	}

	return nil
}

// RemovalDelaySeconds 返回移除延迟（秒）
func (c *GameConfig) RemovalDelaySeconds() float64 {
	return float64(c.Rules.RemovalDelayMs) / 1000
}

// TickIntervalSeconds 返回计时脉冲周期（秒）
func (c *GameConfig) TickIntervalSeconds() float64 {
	return float64(c.Rules.TickIntervalMs) / 1000
}

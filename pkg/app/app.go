// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand/v2"

	"github.com/decker502/pointclear/pkg/config"
	"github.com/decker502/pointclear/pkg/game"
	"github.com/decker502/pointclear/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 游戏配置文件路径，为空时使用内置默认配置
	ConfigPath string
	// Count 启动后立即开局的目标数量，<= 0 时进入未开始状态
	Count int
	// Seed 随机种子，0 表示使用非确定性随机源
	Seed uint64
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	gameConfig               *config.GameConfig
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	gameConfig, err := loadGameConfig(cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("游戏配置加载失败: %w", err)
	}

	// 初始化音频上下文与 AudioManager
	audioContext := audio.NewContext(game.ToneSampleRate)
	gameState := game.GetGameState()
	settingsManager := gameState.GetSettingsManager()
	audioManager := game.NewAudioManager(audioContext, settingsManager)
	gameState.SetAudioManager(audioManager)
	log.Printf("[App] AudioManager initialized")

	var rng *rand.Rand
	if cfg.Seed != 0 {
		rng = rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))
		log.Printf("[App] Using fixed seed %d", cfg.Seed)
	}

	// 创建场景管理器
	sceneManager := game.NewSceneManager()
	sceneManager.SetSceneFactory(func(count int) game.Scene {
		return scenes.NewGameScene(gameConfig, settingsManager, audioManager, count, rng)
	})
	sceneManager.LoadGame(cfg.Count)

	if settingsManager.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	return &App{
		sceneManager: sceneManager,
		gameConfig:   gameConfig,
	}, nil
}

// loadGameConfig 加载配置文件，路径为空时返回默认配置
func loadGameConfig(path string) (*config.GameConfig, error) {
	if path == "" {
		return config.DefaultGameConfig(), nil
	}
	gameConfig, err := config.LoadGameConfig(path)
	if err != nil {
		return nil, err
	}
	log.Printf("[Config] Loaded game config from %s", path)
	return gameConfig, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 窗口关闭：保存设置后退出（需要 main 中 SetWindowClosingHandled(true)）
	if ebiten.IsWindowBeingClosed() {
		a.SaveOnExit()
		return ebiten.Termination
	}

	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.gameConfig.Window.Width, a.gameConfig.Window.Height)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

// toggleFullscreen 切换全屏并记录到设置
func (a *App) toggleFullscreen() {
	fullscreen := !ebiten.IsFullscreen()
	ebiten.SetFullscreen(fullscreen)
	if !fullscreen {
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
	}
	game.GetGameState().GetSettingsManager().SetFullscreen(fullscreen)
	log.Printf("[App] Fullscreen: %v", fullscreen)
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.gameConfig.Window.Width, a.gameConfig.Window.Height
}

// GameConfig 返回生效的游戏配置
func (a *App) GameConfig() *config.GameConfig {
	return a.gameConfig
}

// SaveOnExit 窗口关闭时保存当前场景的设置
func (a *App) SaveOnExit() {
	if saveable, ok := a.sceneManager.GetCurrentScene().(game.Saveable); ok {
		if !saveable.SaveOnExit() {
			log.Printf("[App] Warning: scene failed to save on exit")
		}
		return
	}
	if err := game.GetGameState().GetSettingsManager().Save(); err != nil {
		log.Printf("[App] Warning: Failed to save settings: %v", err)
	}
}

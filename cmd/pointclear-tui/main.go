// pointclear-tui 在终端中运行点数消除游戏
//
// 用法：
//
//	go run ./cmd/pointclear-tui -count 10
//
// 按编号从小到大点击徽标。Enter 开始或重开，m 开关音效，q 或 Esc 退出。
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"os/signal"
	"strconv"

	"github.com/decker502/pointclear/internal/tui"
	"github.com/decker502/pointclear/pkg/config"
	"github.com/decker502/pointclear/pkg/game"
	"github.com/gdamore/tcell/v2"
)

var (
	configFlag = flag.String("config", "", "game config file (YAML); built-in defaults when empty")
	countFlag  = flag.Int("count", 0, "start immediately with this many targets")
	seedFlag   = flag.Uint64("seed", 0, "random seed (0 = random)")
	logFlag    = flag.String("log", "", "write logs to this file (terminal output is reserved for the game)")
	muteFlag   = flag.Bool("mute", false, "disable sound")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "pointclear-tui: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	closeLog, err := setupLog(*logFlag)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg := config.DefaultGameConfig()
	if *configFlag != "" {
		if cfg, err = config.LoadGameConfig(*configFlag); err != nil {
			return err
		}
	}

	settingsManager := game.GetGameState().GetSettingsManager()
	settings := settingsManager.GetSettings()

	var sound *tui.Sound
	if !*muteFlag {
		sound, err = tui.NewSound(settings.SoundEnabled, settings.SoundVolume)
		if err != nil {
			// 非致命错误，游戏以静音运行
			log.Printf("[TUI] Audio unavailable: %v", err)
			sound = nil
		}
		defer sound.Close()
	}

	var rng *rand.Rand
	if *seedFlag != 0 {
		rng = rand.New(rand.NewPCG(*seedFlag, *seedFlag))
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse(tcell.MouseButtonEvents)
	screen.HideCursor()

	app := tui.New(screen, cfg, rng, sound)
	app.OnCountUsed = settingsManager.SetLastCount
	app.SetInput(settings.LastCount)
	if *countFlag > 0 {
		app.SetInput(strconv.Itoa(*countFlag))
		app.Submit()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	runErr := app.Run(ctx)

	settingsManager.SetLastCount(app.Input())
	if sound != nil {
		settingsManager.SetSoundEnabled(sound.Enabled())
	}
	if err := settingsManager.Save(); err != nil {
		log.Printf("[TUI] Failed to save settings: %v", err)
	}

	if errors.Is(runErr, context.Canceled) {
		return nil
	}
	return runErr
}

// setupLog 把日志写入文件，路径为空时丢弃日志
//
// 返回：
//   - func(): 关闭日志文件
//   - error: 打开文件失败
func setupLog(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
		return func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(f)
	return func() { f.Close() }, nil
}

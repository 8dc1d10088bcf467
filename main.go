package main

import (
	"errors"
	"flag"
	"log"

	"github.com/decker502/pointclear/pkg/app"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	configFlag  = flag.String("config", "", "游戏配置文件路径（YAML），为空时使用内置默认配置")
	verboseFlag = flag.Bool("verbose", false, "显示详细日志")
	countFlag   = flag.Int("count", 0, "启动后立即以该数量开局")
	seedFlag    = flag.Uint64("seed", 0, "随机种子（0 表示随机）")
)

func main() {
	flag.Parse()

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verboseFlag,
		ConfigPath: *configFlag,
		Count:      *countFlag,
		Seed:       *seedFlag,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	window := gameApp.GameConfig().Window
	ebiten.SetWindowSize(window.Width, window.Height)
	ebiten.SetWindowTitle(window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(gameApp); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

package tui

import (
	"context"
	"log"
	"math/rand/v2"
	"time"

	"github.com/decker502/pointclear/pkg/config"
	"github.com/decker502/pointclear/pkg/game"
	"github.com/gdamore/tcell/v2"
)

const (
	frameInterval   = 16 * time.Millisecond
	messageDuration = 2.5 // 秒
	inputMaxLength  = 4

	// InvalidCountMessage 输入无效时按下 Play 显示的提示
	InvalidCountMessage = "Please enter a valid number"
)

// App 在终端里运行一局游戏
// 所有对会话的访问都发生在调用 Run 的 goroutine 上
type App struct {
	screen tcell.Screen
	driver *game.SessionDriver
	sound  *Sound
	bounds game.Bounds

	input      string
	message    string
	messageTTL float64
	layout     Layout
	mouseDown  bool // 左键按住期间，拖动与重复事件不再触发点击

	// OnCountUsed 每次开局时以输入文本回调，用于记住上次的数量
	OnCountUsed func(text string)
}

// New 在已初始化的屏幕上创建 App
//
// 参数：
//   - screen: 已调用 Init 的终端屏幕
//   - cfg: 游戏配置，提供会话参数与生成区域
//   - rng: 随机源，nil 时使用非确定性随机源
//   - sound: 音效，可为 nil（静音）
func New(screen tcell.Screen, cfg *config.GameConfig, rng *rand.Rand, sound *Sound) *App {
	driver := game.NewSessionDriverFromConfig(cfg, rng)
	a := &App{
		screen: screen,
		driver: driver,
		sound:  sound,
		bounds: game.Bounds{Width: cfg.Spawn.Width, Height: cfg.Spawn.Height},
	}
	driver.Session().OnStatusChange = a.onStatusChange
	a.resize()
	return a
}

// Session 返回驱动中的会话
func (a *App) Session() *game.Session {
	return a.driver.Session()
}

// Input 返回数量输入框的文本
func (a *App) Input() string {
	return a.input
}

// SetInput 替换输入框文本，超出长度的部分被截断
func (a *App) SetInput(text string) {
	if len(text) > inputMaxLength {
		text = text[:inputMaxLength]
	}
	a.input = text
}

// Message 返回当前的临时提示，没有时为空
func (a *App) Message() string {
	return a.message
}

// Run 轮询终端事件并推进对局，直到 ctx 取消或玩家退出
//
// 参数：
//   - ctx: 取消后 Run 返回 ctx.Err()
//
// 返回：
//   - error: 玩家退出或屏幕关闭时为 nil
func (a *App) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go a.pollEvents(events, done)

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	last := time.Now()
	a.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !a.HandleEvent(ev) {
				return nil
			}
		case now := <-ticker.C:
			a.Update(now.Sub(last).Seconds())
			last = now
			a.Draw()
		}
	}
}

// HandleEvent 处理一个输入事件
//
// 返回：
//   - bool: 玩家要求退出时为 false
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev)
	case *tcell.EventMouse:
		pressed := ev.Buttons()&tcell.Button1 != 0
		if pressed && !a.mouseDown {
			x, y := ev.Position()
			a.Click(x, y)
		}
		a.mouseDown = pressed
	case *tcell.EventResize:
		a.resize()
		a.screen.Sync()
	}
	return true
}

// pollEvents 把屏幕事件转发到 events
// 屏幕关闭或 done 关闭后退出，并关闭 events
func (a *App) pollEvents(events chan<- tcell.Event, done <-chan struct{}) {
	defer close(events)
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyEnter:
		a.Submit()
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if n := len(a.input); n > 0 {
			a.input = a.input[:n-1]
		}
	case tcell.KeyRune:
		r := ev.Rune()
		switch {
		case r >= '0' && r <= '9':
			if len(a.input) < inputMaxLength {
				a.input += string(r)
			}
		case r == 'r':
			a.Submit()
		case r == 'q':
			return false
		case r == 'm':
			a.sound.SetEnabled(!a.sound.Enabled())
		}
	}
	return true
}

// Click 点击 (x, y)：命中按钮时执行 Play/Restart，否则选择其下最上层的目标
func (a *App) Click(x, y int) {
	if buttonHit(x, y) {
		a.Submit()
		return
	}
	if !a.layout.Contains(x, y) {
		return
	}
	session := a.driver.Session()
	id, ok := a.layout.TargetAt(session.Targets(), a.bounds, x, y)
	if !ok {
		return
	}
	result := session.Select(id)
	a.sound.PlayForResult(result)
}

// Submit 执行 Play/Restart 命令
// 未开局时输入无效只显示提示；已开局时输入无效会清空输入并重置会话
func (a *App) Submit() {
	session := a.driver.Session()
	count, err := game.ParseCount(a.input)

	if session.Status() == game.StatusNotStarted {
		if err != nil {
			a.showMessage(InvalidCountMessage)
			return
		}
		if err := session.Start(count); err != nil {
			a.showMessage(InvalidCountMessage)
			return
		}
		a.countUsed()
		return
	}

	if err != nil {
		log.Printf("[TUI] Restart with invalid count %q, resetting", a.input)
		a.input = ""
		session.Reset()
		return
	}
	session.Restart(count)
	a.countUsed()
}

// Update 按 deltaTime 秒推进会话与提示倒计时
func (a *App) Update(deltaTime float64) {
	a.driver.Update(deltaTime)
	if a.message != "" {
		a.messageTTL -= deltaTime
		if a.messageTTL <= 0 {
			a.message = ""
		}
	}
}

func (a *App) countUsed() {
	if a.OnCountUsed != nil {
		a.OnCountUsed(a.input)
	}
}

func (a *App) showMessage(text string) {
	a.message = text
	a.messageTTL = messageDuration
}

func (a *App) resize() {
	w, h := a.screen.Size()
	a.layout = NewLayout(w, h)
}

func (a *App) onStatusChange(from, to game.Status) {
	log.Printf("[TUI] Status %s -> %s", from, to)
	switch to {
	case game.StatusInProgress:
		a.sound.Play(game.SoundStart)
	case game.StatusCleared:
		a.sound.Play(game.SoundClear)
	}
}

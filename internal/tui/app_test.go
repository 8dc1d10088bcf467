package tui

import (
	"context"
	"errors"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/decker502/pointclear/pkg/config"
	"github.com/decker502/pointclear/pkg/game"
	"github.com/gdamore/tcell/v2"
)

// newTestApp 创建 80x24 模拟终端上的 App，目标按编号顺序排列
func newTestApp(t *testing.T) (*App, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init simulation screen: %v", err)
	}
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)

	cfg := config.DefaultGameConfig()
	cfg.Rules.Shuffle = false
	return New(screen, cfg, rand.New(rand.NewPCG(3, 4)), nil), screen
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

// click 模拟一次鼠标左键按下再松开
func click(a *App, x, y int) {
	a.HandleEvent(tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone))
	a.HandleEvent(tcell.NewEventMouse(x, y, tcell.ButtonNone, tcell.ModNone))
}

// rowText 读取屏幕某一行的文字
func rowText(s tcell.SimulationScreen, y int) string {
	w, _ := s.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := s.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

func TestAppTypingAndPlay(t *testing.T) {
	a, _ := newTestApp(t)
	var used []string
	a.OnCountUsed = func(text string) { used = append(used, text) }

	for _, r := range "12x345" {
		a.HandleEvent(key(r))
	}
	if a.Input() != "1234" {
		t.Errorf("Expected input 1234 (digits only, max 4), got %q", a.Input())
	}

	a.HandleEvent(tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone))
	a.HandleEvent(tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone))
	if a.Input() != "12" {
		t.Errorf("Expected 12 after two backspaces, got %q", a.Input())
	}

	a.HandleEvent(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	if a.Session().Status() != game.StatusInProgress || a.Session().Count() != 12 {
		t.Errorf("Expected InProgress with 12 targets, got %v with %d", a.Session().Status(), a.Session().Count())
	}
	if len(used) != 1 || used[0] != "12" {
		t.Errorf("Expected OnCountUsed(12), got %v", used)
	}
}

func TestAppPlayInvalid(t *testing.T) {
	a, _ := newTestApp(t)

	a.Submit()
	if a.Session().Status() != game.StatusNotStarted {
		t.Errorf("Expected NotStarted, got %v", a.Session().Status())
	}
	if a.Message() != InvalidCountMessage {
		t.Errorf("Expected message %q, got %q", InvalidCountMessage, a.Message())
	}

	a.Update(messageDuration + 0.1)
	if a.Message() != "" {
		t.Errorf("Message should expire, got %q", a.Message())
	}
}

func TestAppRestartInvalidResets(t *testing.T) {
	a, _ := newTestApp(t)
	a.SetInput("3")
	a.Submit()

	a.SetInput("0")
	a.HandleEvent(key('r'))

	if a.Session().Status() != game.StatusNotStarted {
		t.Errorf("Expected NotStarted, got %v", a.Session().Status())
	}
	if a.Input() != "" {
		t.Errorf("Expected cleared input, got %q", a.Input())
	}
}

func TestAppSetInputTruncates(t *testing.T) {
	a, _ := newTestApp(t)
	a.SetInput("123456")
	if a.Input() != "1234" {
		t.Errorf("Expected 1234, got %q", a.Input())
	}
}

func TestAppQuitKeys(t *testing.T) {
	a, _ := newTestApp(t)

	quits := []*tcell.EventKey{
		key('q'),
		tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl),
	}
	for _, ev := range quits {
		if a.HandleEvent(ev) {
			t.Errorf("Expected quit for key %v", ev.Name())
		}
	}
	if !a.HandleEvent(key('m')) {
		t.Error("m should not quit")
	}
}

func TestAppClickButtonAndTargets(t *testing.T) {
	a, _ := newTestApp(t)
	a.SetInput("1")

	click(a, buttonX+1, inputRow)
	if a.Session().Status() != game.StatusInProgress {
		t.Fatalf("Expected InProgress after clicking Play, got %v", a.Session().Status())
	}

	target := a.Session().Targets()[0]
	x, y := a.layout.CellFor(target, a.bounds)
	click(a, x, y)
	if a.Session().NextExpectedID() != 2 {
		t.Fatalf("Expected next id 2, got %d", a.Session().NextExpectedID())
	}

	a.Update(0.3)
	if a.Session().Status() != game.StatusCleared {
		t.Errorf("Expected Cleared, got %v", a.Session().Status())
	}
}

func TestAppMouseHoldClicksOnce(t *testing.T) {
	a, _ := newTestApp(t)
	a.SetInput("2")
	a.Submit()

	// 2 号最后绘制，位于最上层
	target := a.Session().Targets()[1]
	x, y := a.layout.CellFor(target, a.bounds)

	a.HandleEvent(tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone))
	if a.Session().Status() != game.StatusFailed {
		t.Fatalf("Expected Failed after clicking 2 first, got %v", a.Session().Status())
	}

	// 按住拖动不会再次点击
	gen := a.Session().Generation()
	a.HandleEvent(tcell.NewEventMouse(buttonX+1, inputRow, tcell.Button1, tcell.ModNone))
	if a.Session().Generation() != gen {
		t.Error("Dragging onto the button should not press it")
	}
}

func TestAppDraw(t *testing.T) {
	a, screen := newTestApp(t)

	a.Draw()
	if got := rowText(screen, statusRow); !strings.Contains(got, game.StatusLabel(game.StatusNotStarted)) {
		t.Errorf("Status row %q missing label", got)
	}
	if got := rowText(screen, inputRow); !strings.Contains(got, "[ Play ]") {
		t.Errorf("Input row %q missing Play button", got)
	}

	a.SetInput("1")
	a.Submit()
	a.Draw()

	if got := rowText(screen, inputRow); !strings.Contains(got, "[ Restart ]") {
		t.Errorf("Input row %q missing Restart button", got)
	}
	if got := rowText(screen, timeRow); !strings.Contains(got, "0.0s") || !strings.Contains(got, "Next: 1 / 1") {
		t.Errorf("Time row %q missing elapsed or next", got)
	}

	x, y := a.layout.CellFor(a.Session().Targets()[0], a.bounds)
	if r, _, _, _ := screen.GetContent(x+1, y); r != '1' {
		t.Errorf("Expected badge digit at (%d, %d), got %q", x+1, y, r)
	}
}

func TestAppResize(t *testing.T) {
	a, screen := newTestApp(t)
	screen.SetSize(120, 40)
	a.HandleEvent(tcell.NewEventResize(120, 40))

	if a.layout.AreaW != 118 || a.layout.AreaH != 34 {
		t.Errorf("Expected layout for 120x40, got %+v", a.layout)
	}
}

func TestAppRunCanceled(t *testing.T) {
	a, _ := newTestApp(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := make(chan error, 1)
	go func() { result <- a.Run(ctx) }()

	select {
	case err := <-result:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Expected context.Canceled, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestAppRunQuitKey(t *testing.T) {
	a, screen := newTestApp(t)

	if err := screen.PostEvent(key('q')); err != nil {
		t.Fatalf("PostEvent: %v", err)
	}

	result := make(chan error, 1)
	go func() { result <- a.Run(context.Background()) }()

	select {
	case err := <-result:
		if err != nil {
			t.Errorf("Expected nil on quit, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after q")
	}
}

// Run 返回后没有读者，事件转发必须随 done 退出并关闭 events
func TestPollEventsStopsWhenDone(t *testing.T) {
	a, screen := newTestApp(t)

	events := make(chan tcell.Event)
	done := make(chan struct{})
	close(done)
	if err := screen.PostEvent(key('1')); err != nil {
		t.Fatalf("PostEvent: %v", err)
	}

	finished := make(chan struct{})
	go func() {
		a.pollEvents(events, done)
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatal("pollEvents kept blocking after done was closed")
	}
	if _, ok := <-events; ok {
		t.Error("Expected events to be closed")
	}
}

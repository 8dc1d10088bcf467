package systems

import (
	"math/rand/v2"
	"testing"

	"github.com/decker502/pointclear/pkg/game"
	"github.com/decker502/pointclear/pkg/utils"
)

const (
	testOriginX = 10.0
	testOriginY = 180.0
)

// newOrderedSession 创建按编号顺序显示目标的会话
func newOrderedSession(t *testing.T, count int) (*game.Session, *game.Scheduler) {
	t.Helper()
	cfg := game.DefaultSessionConfig()
	cfg.Layout.Shuffle = false
	scheduler := game.NewScheduler()
	session := game.NewSession(cfg, scheduler, rand.New(rand.NewPCG(11, 12)))
	if err := session.Start(count); err != nil {
		t.Fatalf("Start error: %v", err)
	}
	return session, scheduler
}

// centerOf 返回目标圆心的屏幕坐标
func centerOf(session *game.Session, id int) (float64, float64) {
	for _, tg := range session.Targets() {
		if tg.ID == id {
			r := game.TargetStyle(tg.ID, tg.Selected, session.Count()).Diameter / 2
			return testOriginX + tg.Left + r, testOriginY + tg.Top + r
		}
	}
	return -1, -1
}

func TestTargetAtTopmostWins(t *testing.T) {
	targets := []game.Target{
		{ID: 1, Left: 0, Top: 0},
		{ID: 2, Left: 10, Top: 10},
	}

	// 两个目标重叠处返回后绘制的那个
	id, ok := TargetAt(targets, 2, 0, 0, 30, 30)
	if !ok || id != 2 {
		t.Errorf("Expected topmost target 2, got %d (ok=%v)", id, ok)
	}

	id, ok = TargetAt(targets, 2, 0, 0, 5, 25)
	if !ok || id != 1 {
		t.Errorf("Expected target 1, got %d (ok=%v)", id, ok)
	}

	// 外接正方形的角落不在圆内
	if _, ok := TargetAt(targets, 2, 0, 0, 1, 1); ok {
		t.Error("Corner of the bounding square should miss")
	}
	if _, ok := TargetAt(nil, 0, 0, 0, 1, 1); ok {
		t.Error("Empty target list should miss")
	}
}

func TestTargetInputSystemSelectsOnRelease(t *testing.T) {
	session, _ := newOrderedSession(t, 3)
	system := NewTargetInputSystem(session, nil, testOriginX, testOriginY)

	x, y := centerOf(session, 1)
	if got := system.HandlePointer(utils.PointerFrame{X: x, Y: y, Pressed: true, JustPressed: true}); got != game.SelectIgnored {
		t.Errorf("Press should be ignored, got %v", got)
	}
	if got := system.HandlePointer(utils.PointerFrame{X: x, Y: y, JustReleased: true}); got != game.SelectHit {
		t.Errorf("Expected SelectHit, got %v", got)
	}
	if session.NextExpectedID() != 2 {
		t.Errorf("Expected next id 2, got %d", session.NextExpectedID())
	}
}

func TestTargetInputSystemWrongOrderFails(t *testing.T) {
	session, _ := newOrderedSession(t, 3)
	system := NewTargetInputSystem(session, game.NewAudioManager(nil, nil), testOriginX, testOriginY)

	x, y := centerOf(session, 3)
	// 不打乱顺序时 3 号最后绘制，位于最上层
	if got := system.HandlePointer(utils.PointerFrame{X: x, Y: y, JustReleased: true}); got != game.SelectMiss {
		t.Errorf("Expected SelectMiss, got %v", got)
	}
	if session.Status() != game.StatusFailed {
		t.Errorf("Expected Failed, got %v", session.Status())
	}
}

func TestTargetInputSystemMissesEmptySpace(t *testing.T) {
	session, _ := newOrderedSession(t, 2)
	system := NewTargetInputSystem(session, nil, testOriginX, testOriginY)

	// 坐标范围 300x300，目标不会到达区域右下方
	if got := system.HandlePointer(utils.PointerFrame{X: testOriginX + 700, Y: testOriginY + 450, JustReleased: true}); got != game.SelectIgnored {
		t.Errorf("Expected SelectIgnored, got %v", got)
	}
	if session.Status() != game.StatusInProgress {
		t.Errorf("Expected InProgress, got %v", session.Status())
	}
}

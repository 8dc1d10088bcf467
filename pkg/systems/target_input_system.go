package systems

import (
	"log"

	"github.com/decker502/pointclear/pkg/game"
	"github.com/decker502/pointclear/pkg/utils"
)

// TargetInputSystem 目标点击系统
// 把指针释放转换为对会话的 Select 调用，并播放对应音效
type TargetInputSystem struct {
	session      *game.Session
	audioManager *game.AudioManager

	// 目标区域左上角（屏幕坐标），目标的 Top/Left 相对于此点
	originX, originY float64
}

// NewTargetInputSystem 创建目标点击系统
//
// 参数：
//   - session: 游戏会话
//   - audioManager: 音效管理器（可为 nil，静音）
//   - originX, originY: 目标区域左上角
func NewTargetInputSystem(session *game.Session, audioManager *game.AudioManager, originX, originY float64) *TargetInputSystem {
	return &TargetInputSystem{
		session:      session,
		audioManager: audioManager,
		originX:      originX,
		originY:      originY,
	}
}

// HandlePointer 处理一帧指针输入
// 只在释放瞬间响应，与按钮的点击语义一致
//
// 返回：
//   - game.SelectResult: 未点中任何目标或会话不在进行中时为 SelectIgnored
func (s *TargetInputSystem) HandlePointer(frame utils.PointerFrame) game.SelectResult {
	if !frame.JustReleased {
		return game.SelectIgnored
	}

	id, ok := TargetAt(s.session.Targets(), s.session.Count(), s.originX, s.originY, frame.X, frame.Y)
	if !ok {
		return game.SelectIgnored
	}

	result := s.session.Select(id)
	if result != game.SelectIgnored {
		log.Printf("[TargetInputSystem] Target %d: %s", id, result)
	}
	if s.audioManager != nil {
		s.audioManager.PlayForResult(result)
	}
	return result
}

// TargetAt 返回 (px, py) 处最上层目标的编号
//
// 目标按显示顺序绘制，后绘制的覆盖先绘制的，因此逆序查找。
// 目标的 Top/Left 是外接正方形的左上角（相对 origin）。
func TargetAt(targets []game.Target, count int, originX, originY, px, py float64) (int, bool) {
	for i := len(targets) - 1; i >= 0; i-- {
		t := targets[i]
		radius := game.TargetStyle(t.ID, t.Selected, count).Diameter / 2
		cx := originX + t.Left + radius
		cy := originY + t.Top + radius
		if utils.PointInCircle(px, py, cx, cy, radius) {
			return t.ID, true
		}
	}
	return 0, false
}

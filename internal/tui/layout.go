// Package tui 是点数消除游戏的终端前端
//
// 与桌面版共用 game.SessionDriver，目标以彩色编号徽标画在字符网格上，
// 通过 tcell 接收鼠标点击。
package tui

import (
	"strconv"

	"github.com/decker502/pointclear/pkg/game"
)

// 游戏区域上方的标题行：状态、输入、计时、帮助
const headerRows = 4

// Layout 把生成坐标（像素）映射到终端字符格
type Layout struct {
	AreaX, AreaY int // 游戏区域左上角字符格
	AreaW, AreaH int // 游戏区域尺寸（字符格）
}

// NewLayout 按屏幕尺寸计算游戏区域，宽高至少为 1
func NewLayout(screenW, screenH int) Layout {
	l := Layout{
		AreaX: 1,
		AreaY: headerRows + 1,
		AreaW: screenW - 2,
		AreaH: screenH - headerRows - 2,
	}
	if l.AreaW < 1 {
		l.AreaW = 1
	}
	if l.AreaH < 1 {
		l.AreaH = 1
	}
	return l
}

// Badge 返回目标绘制的文字
func Badge(id int) string {
	return " " + strconv.Itoa(id) + " "
}

// CellFor 返回目标徽标所在的字符格
// Left/Top 从 [0, bounds) 缩放到游戏区域，徽标整体保持在区域内
//
// 参数：
//   - t: 目标
//   - bounds: 生成区域尺寸（像素）
//
// 返回：
//   - x, y: 徽标首字符的屏幕坐标
func (l Layout) CellFor(t game.Target, bounds game.Bounds) (x, y int) {
	span := l.AreaW - len(Badge(t.ID))
	if span < 0 {
		span = 0
	}
	x = l.AreaX + scale(t.Left, bounds.Width, span)
	y = l.AreaY + scale(t.Top, bounds.Height, l.AreaH-1)
	return x, y
}

// TargetAt 返回覆盖 (x, y) 的最上层目标编号
// 显示顺序靠后的目标画在上层
func (l Layout) TargetAt(targets []game.Target, bounds game.Bounds, x, y int) (int, bool) {
	for i := len(targets) - 1; i >= 0; i-- {
		t := targets[i]
		tx, ty := l.CellFor(t, bounds)
		if y == ty && x >= tx && x < tx+len(Badge(t.ID)) {
			return t.ID, true
		}
	}
	return 0, false
}

// Contains 判断 (x, y) 是否在游戏区域内
func (l Layout) Contains(x, y int) bool {
	return x >= l.AreaX && x < l.AreaX+l.AreaW && y >= l.AreaY && y < l.AreaY+l.AreaH
}

func scale(v, limit float64, cells int) int {
	if limit <= 0 || cells <= 0 {
		return 0
	}
	c := int(v / limit * float64(cells+1))
	if c > cells {
		c = cells
	}
	if c < 0 {
		c = 0
	}
	return c
}

// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerFrame 一帧内的指针输入快照
// 统一鼠标与触摸输入，系统只依赖这个快照，便于测试
type PointerFrame struct {
	X, Y         float64 // 指针位置（屏幕坐标）
	Pressed      bool    // 当前是否按下
	JustPressed  bool    // 本帧刚按下
	JustReleased bool    // 本帧刚释放
}

// 最后一次触摸位置（触摸释放时 ebiten 已无法提供坐标）
var lastTouchX, lastTouchY int

// ReadPointer 读取当前帧的指针状态
// 优先检测触摸，其次鼠标左键
func ReadPointer() PointerFrame {
	var frame PointerFrame

	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		lastTouchX, lastTouchY = ebiten.TouchPosition(touchIDs[0])
		frame.X, frame.Y = float64(lastTouchX), float64(lastTouchY)
		frame.Pressed = true
		frame.JustPressed = len(inpututil.AppendJustPressedTouchIDs(nil)) > 0
		return frame
	}

	if len(inpututil.AppendJustReleasedTouchIDs(nil)) > 0 {
		frame.X, frame.Y = float64(lastTouchX), float64(lastTouchY)
		frame.JustReleased = true
		return frame
	}

	mx, my := ebiten.CursorPosition()
	frame.X, frame.Y = float64(mx), float64(my)
	frame.Pressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	frame.JustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	frame.JustReleased = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	return frame
}

// PointInCircle 判断点是否落在圆内（含边界）
func PointInCircle(px, py, cx, cy, radius float64) bool {
	dx := px - cx
	dy := py - cy
	return dx*dx+dy*dy <= radius*radius
}

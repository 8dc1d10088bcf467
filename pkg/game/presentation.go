package game

import (
	"fmt"
	"image/color"
	"math"
)

// 目标外观常量（像素）
const (
	MaxTargetDiameter = 50.0 // 数量不多时使用的固定直径
	MinTargetDiameter = 24.0 // 数量很多时的下限
	shrinkStartCount  = 20   // 超过该数量开始缩小
)

// 目标配色
var (
	SelectedFill   = color.RGBA{R: 220, G: 40, B: 40, A: 255}
	UnselectedFill = color.RGBA{R: 30, G: 150, B: 60, A: 255}
	TargetLabel    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// TargetStyleInfo 目标的显示属性，纯展示用途，不影响玩法
type TargetStyleInfo struct {
	Diameter float64    // 直径（像素）
	Fill     color.RGBA // 填充色
	Label    color.RGBA // 编号文字颜色
	FontSize float64    // 编号字号
}

// TargetStyle 根据编号、选中状态和总数计算显示属性
//
// 直径随总数对数缩小（20 个以内为 50px，下限 24px）；
// 未选中为绿色，编号越大颜色越深；选中为红色。
func TargetStyle(id int, selected bool, count int) TargetStyleInfo {
	diameter := MaxTargetDiameter
	if count > shrinkStartCount {
		diameter = MaxTargetDiameter - 8*math.Log2(float64(count)/shrinkStartCount)
		if diameter < MinTargetDiameter {
			diameter = MinTargetDiameter
		}
	}

	fill := SelectedFill
	if !selected {
		fill = UnselectedFill
		if count > 1 && id >= 1 {
			// 编号越大越深，最多变暗 35%
			ratio := float64(id-1) / float64(count-1)
			if ratio > 1 {
				ratio = 1
			}
			fill = darken(UnselectedFill, 0.35*ratio)
		}
	}

	return TargetStyleInfo{
		Diameter: diameter,
		Fill:     fill,
		Label:    TargetLabel,
		FontSize: math.Round(diameter * 0.36),
	}
}

// darken 按比例降低亮度
func darken(c color.RGBA, amount float64) color.RGBA {
	k := 1 - amount
	return color.RGBA{
		R: uint8(float64(c.R) * k),
		G: uint8(float64(c.G) * k),
		B: uint8(float64(c.B) * k),
		A: c.A,
	}
}

// FormatElapsed 把计时脉冲数格式化为秒（保留一位小数）
func FormatElapsed(ticks int) string {
	return fmt.Sprintf("%.1fs", float64(ticks)/10)
}

// StatusLabel 返回状态横幅文字
func StatusLabel(status Status) string {
	switch status {
	case StatusInProgress:
		return "KEEP GOING"
	case StatusCleared:
		return "ALL CLEARED!"
	case StatusFailed:
		return "GAME OVER"
	default:
		return "LET'S PLAY"
	}
}

// CommandLabel 返回主按钮文字：未开始时为 Play，其余为 Restart
func CommandLabel(status Status) string {
	if status == StatusNotStarted {
		return "Play"
	}
	return "Restart"
}

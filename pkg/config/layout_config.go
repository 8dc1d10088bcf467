package config

// 布局配置常量
// 本文件定义了游戏场景中 UI 元素与目标区域的位置（屏幕坐标，像素）

// 窗口尺寸
const (
	GameWindowWidth  = 800
	GameWindowHeight = 700
)

// 顶部信息区
const (
	// HeaderX, HeaderY 状态横幅（LET'S PLAY / ALL CLEARED! ...）
	HeaderX        = 10.0
	HeaderY        = 10.0
	HeaderFontSize = 24.0

	// LabelX 左侧标签列（Points / Time）
	LabelX        = 10.0
	LabelFontSize = 16.0

	// PointsRowY 数量输入行
	PointsRowY = 52.0
	// TimeRowY 计时行
	TimeRowY = 92.0

	// ValueX 右侧取值列（输入框 / 计时数值）
	ValueX = 90.0

	// InputWidth, InputHeight 数量输入框尺寸
	InputWidth     = 120.0
	InputHeight    = 28.0
	InputMaxLength = 4 // 上限 1000，四位足够

	// CommandButton Play/Restart 按钮
	CommandButtonX      = 10.0
	CommandButtonY      = 126.0
	CommandButtonWidth  = 100.0
	CommandButtonHeight = 30.0

	// MessageX, MessageY 输入错误提示
	MessageX        = 124.0
	MessageY        = 132.0
	MessageDuration = 2.5 // 提示显示时长（秒）
)

// 目标区域（铺满窗口宽度，高 500px）
const (
	PlayAreaX      = 10.0
	PlayAreaY      = 180.0
	PlayAreaWidth  = 780.0
	PlayAreaHeight = 500.0
)

// PointInRect 判断点是否在矩形内（含边界）
func PointInRect(px, py, x, y, width, height float64) bool {
	return px >= x && px <= x+width && py >= y && py <= y+height
}

package components

// ButtonComponent 按钮组件（ECS 架构）
// 包含按钮的所有数据：尺寸、文字、配色、状态、回调
//
// 设计原则：
//   - 纯数据组件，不包含任何方法
//   - 纯色矩形按钮，不依赖图片资源
//   - 文字自动居中显示
type ButtonComponent struct {
	// Text 按钮上显示的文字
	Text string
	// LabelFunc 动态文字（可选，非 nil 时每帧覆盖 Text）
	LabelFunc func() string
	// FontSize 文字大小
	FontSize float64

	// Width 按钮宽度（像素）
	Width float64
	// Height 按钮高度（像素）
	Height float64

	// 配色（RGBA）
	NormalColor  [4]uint8
	HoverColor   [4]uint8
	PressedColor [4]uint8
	TextColor    [4]uint8

	// State 当前交互状态（Normal/Hover/Clicked/Disabled）
	State UIState
	// Enabled 是否启用（禁用时不响应点击）
	Enabled bool

	// OnClick 点击回调函数
	OnClick func()
}

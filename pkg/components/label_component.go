package components

// LabelComponent 静态或动态文字
type LabelComponent struct {
	Text      string        // 静态文字
	TextFunc  func() string // 动态文字（可选，非 nil 时优先）
	FontSize  float64       // 字号
	Color     [4]uint8      // 文字颜色（RGBA）
	Bold      bool          // 是否使用粗体
	IsVisible bool          // 是否可见
}

package entities

import (
	"github.com/decker502/pointclear/pkg/components"
	"github.com/decker502/pointclear/pkg/ecs"
)

// 默认按钮配色
var (
	ButtonNormalColor  = [4]uint8{70, 110, 170, 255}
	ButtonHoverColor   = [4]uint8{90, 135, 200, 255}
	ButtonPressedColor = [4]uint8{50, 85, 140, 255}
	ButtonTextColor    = [4]uint8{255, 255, 255, 255}

	// LabelColor 普通标签文字颜色
	LabelColor = [4]uint8{30, 30, 30, 255}
	// MessageColor 错误提示文字颜色
	MessageColor = [4]uint8{200, 40, 40, 255}
)

// NewButton 创建纯色矩形按钮实体
//
// 参数：
//   - em: 实体管理器
//   - x, y: 按钮左上角（屏幕坐标）
//   - width, height: 按钮尺寸
//   - text: 按钮文字
//   - labelFunc: 动态文字（可选，非 nil 时覆盖 text）
//   - onClick: 点击回调函数
//
// 返回：
//   - 按钮实体ID
func NewButton(
	em *ecs.EntityManager,
	x, y, width, height float64,
	text string,
	labelFunc func() string,
	onClick func(),
) ecs.EntityID {
	entity := em.CreateEntity()

	ecs.AddComponent(em, entity, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, entity, &components.ButtonComponent{
		Text:         text,
		LabelFunc:    labelFunc,
		FontSize:     16,
		Width:        width,
		Height:       height,
		NormalColor:  ButtonNormalColor,
		HoverColor:   ButtonHoverColor,
		PressedColor: ButtonPressedColor,
		TextColor:    ButtonTextColor,
		State:        components.UINormal,
		Enabled:      true,
		OnClick:      onClick,
	})
	// 添加 UI 组件标记（方便过滤）
	ecs.AddComponent(em, entity, &components.UIComponent{State: components.UINormal})

	return entity
}

// NewTextInput 创建数字输入框实体（默认获得焦点）
//
// 参数：
//   - em: 实体管理器
//   - x, y: 输入框左上角
//   - width, height: 输入框尺寸
//   - maxLength: 最大字符数
//   - onSubmit: 回车回调（可选）
func NewTextInput(
	em *ecs.EntityManager,
	x, y, width, height float64,
	maxLength int,
	onSubmit func(text string),
) ecs.EntityID {
	entity := em.CreateEntity()

	ecs.AddComponent(em, entity, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, entity, &components.TextInputComponent{
		Width:         width,
		Height:        height,
		CursorVisible: true,
		MaxLength:     maxLength,
		DigitsOnly:    true,
		IsFocused:     true,
		OnSubmit:      onSubmit,
		PaddingLeft:   6,
	})
	ecs.AddComponent(em, entity, &components.UIComponent{State: components.UINormal})

	return entity
}

// NewLabel 创建文字标签实体
//
// textFunc 非 nil 时每帧取值（如计时显示），否则显示固定的 text。
func NewLabel(
	em *ecs.EntityManager,
	x, y float64,
	text string,
	textFunc func() string,
	fontSize float64,
	color [4]uint8,
	bold bool,
) ecs.EntityID {
	entity := em.CreateEntity()

	ecs.AddComponent(em, entity, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, entity, &components.LabelComponent{
		Text:      text,
		TextFunc:  textFunc,
		FontSize:  fontSize,
		Color:     color,
		Bold:      bold,
		IsVisible: true,
	})
	ecs.AddComponent(em, entity, &components.UIComponent{State: components.UINormal})

	return entity
}

// NewMessage 创建限时提示文字，duration 秒后由 LifetimeSystem 自动删除
func NewMessage(em *ecs.EntityManager, x, y float64, text string, duration float64) ecs.EntityID {
	entity := NewLabel(em, x, y, text, nil, 14, MessageColor, false)
	ecs.AddComponent(em, entity, &components.LifetimeComponent{
		MaxLifetime: duration,
	})
	return entity
}

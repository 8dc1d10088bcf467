package systems

import (
	"image/color"

	"github.com/decker502/pointclear/pkg/components"
	"github.com/decker502/pointclear/pkg/ecs"
	"github.com/decker502/pointclear/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	inputBackgroundColor  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	inputBorderColor      = color.RGBA{R: 90, G: 90, B: 90, A: 255}
	inputFocusBorderColor = color.RGBA{R: 70, G: 110, B: 170, A: 255}
	inputTextColor        = color.RGBA{R: 20, G: 20, B: 20, A: 255}
	placeholderColor      = color.RGBA{R: 150, G: 150, B: 150, A: 255}
	disabledButtonColor   = color.RGBA{R: 160, G: 160, B: 160, A: 255}
)

// inputFontSize 输入框文字大小
const inputFontSize = 16.0

// UIRenderSystem UI 渲染系统
// 负责绘制按钮、输入框和文字标签（均为纯色图形 + 文字）
type UIRenderSystem struct {
	entityManager *ecs.EntityManager
	regular       *utils.FontCache
	bold          *utils.FontCache
}

// NewUIRenderSystem 创建 UI 渲染系统
func NewUIRenderSystem(em *ecs.EntityManager) *UIRenderSystem {
	return &UIRenderSystem{
		entityManager: em,
		regular:       utils.NewFontCache(false),
		bold:          utils.NewFontCache(true),
	}
}

// Draw 按创建顺序绘制所有 UI 实体
func (s *UIRenderSystem) Draw(screen *ebiten.Image) {
	em := s.entityManager

	for _, id := range ecs.GetEntitiesWith2[*components.ButtonComponent, *components.PositionComponent](em) {
		button, _ := ecs.GetComponent[*components.ButtonComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		s.drawButton(screen, button, pos)
	}

	for _, id := range ecs.GetEntitiesWith2[*components.TextInputComponent, *components.PositionComponent](em) {
		input, _ := ecs.GetComponent[*components.TextInputComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		s.drawInput(screen, input, pos)
	}

	for _, id := range ecs.GetEntitiesWith2[*components.LabelComponent, *components.PositionComponent](em) {
		label, _ := ecs.GetComponent[*components.LabelComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		s.drawLabel(screen, label, pos)
	}
}

// drawButton 绘制纯色按钮与居中文字
func (s *UIRenderSystem) drawButton(screen *ebiten.Image, button *components.ButtonComponent, pos *components.PositionComponent) {
	var fill color.Color
	switch button.State {
	case components.UIHovered:
		fill = toRGBA(button.HoverColor)
	case components.UIClicked:
		fill = toRGBA(button.PressedColor)
	case components.UIDisabled:
		fill = disabledButtonColor
	default:
		fill = toRGBA(button.NormalColor)
	}
	vector.DrawFilledRect(screen, float32(pos.X), float32(pos.Y), float32(button.Width), float32(button.Height), fill, false)

	label := button.Text
	if button.LabelFunc != nil {
		label = button.LabelFunc()
	}
	face := s.bold.Face(button.FontSize)
	if face == nil || label == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(pos.X+button.Width/2, pos.Y+button.Height/2)
	op.ColorScale.ScaleWithColor(toRGBA(button.TextColor))
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, label, face, op)
}

// drawInput 绘制输入框背景、边框、文本和光标
func (s *UIRenderSystem) drawInput(screen *ebiten.Image, input *components.TextInputComponent, pos *components.PositionComponent) {
	x, y := float32(pos.X), float32(pos.Y)
	w, h := float32(input.Width), float32(input.Height)

	vector.DrawFilledRect(screen, x, y, w, h, inputBackgroundColor, false)
	border := inputBorderColor
	if input.IsFocused {
		border = inputFocusBorderColor
	}
	vector.StrokeRect(screen, x, y, w, h, 1, border, false)

	face := s.regular.Face(inputFontSize)
	if face == nil {
		return
	}

	textX := pos.X + input.PaddingLeft
	textY := pos.Y + input.Height/2

	if input.Text == "" && input.Placeholder != "" {
		drawLeftText(screen, input.Placeholder, face, textX, textY, placeholderColor)
	} else if input.Text != "" {
		drawLeftText(screen, input.Text, face, textX, textY, inputTextColor)
	}

	// 光标（闪烁的竖线）
	if input.IsFocused && input.CursorVisible {
		runes := []rune(input.Text)
		prefix := string(runes[:clampCursor(input.CursorPosition, len(runes))])
		advance, _ := text.Measure(prefix, face, 0)
		cursorX := float32(textX + advance + 1)
		vector.StrokeLine(screen, cursorX, y+5, cursorX, y+h-5, 1, inputTextColor, false)
	}
}

// drawLabel 绘制文字标签
func (s *UIRenderSystem) drawLabel(screen *ebiten.Image, label *components.LabelComponent, pos *components.PositionComponent) {
	if !label.IsVisible {
		return
	}
	content := label.Text
	if label.TextFunc != nil {
		content = label.TextFunc()
	}
	if content == "" {
		return
	}

	cache := s.regular
	if label.Bold {
		cache = s.bold
	}
	face := cache.Face(label.FontSize)
	if face == nil {
		return
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(pos.X, pos.Y)
	op.ColorScale.ScaleWithColor(toRGBA(label.Color))
	text.Draw(screen, content, face, op)
}

// drawLeftText 绘制左对齐、垂直居中的文字
func drawLeftText(screen *ebiten.Image, content string, face text.Face, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignStart
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, content, face, op)
}

func toRGBA(c [4]uint8) color.RGBA {
	return color.RGBA{R: c[0], G: c[1], B: c[2], A: c[3]}
}

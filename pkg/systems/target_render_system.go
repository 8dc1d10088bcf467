package systems

import (
	"image/color"
	"strconv"

	"github.com/decker502/pointclear/pkg/game"
	"github.com/decker502/pointclear/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	playAreaBorderColor = color.RGBA{R: 120, G: 120, B: 120, A: 255}
	targetOutlineColor  = color.RGBA{R: 20, G: 20, B: 20, A: 255}
)

// TargetRenderSystem 目标渲染系统
// 按显示顺序绘制会话中的所有目标（后绘制的在上层）
type TargetRenderSystem struct {
	session *game.Session
	fonts   *utils.FontCache

	// 目标区域（屏幕坐标）
	areaX, areaY, areaWidth, areaHeight float64
}

// NewTargetRenderSystem 创建目标渲染系统
func NewTargetRenderSystem(session *game.Session, areaX, areaY, areaWidth, areaHeight float64) *TargetRenderSystem {
	return &TargetRenderSystem{
		session:    session,
		fonts:      utils.NewFontCache(true),
		areaX:      areaX,
		areaY:      areaY,
		areaWidth:  areaWidth,
		areaHeight: areaHeight,
	}
}

// Draw 绘制目标区域边框与所有目标
func (s *TargetRenderSystem) Draw(screen *ebiten.Image) {
	vector.StrokeRect(screen,
		float32(s.areaX), float32(s.areaY), float32(s.areaWidth), float32(s.areaHeight),
		1, playAreaBorderColor, false)

	count := s.session.Count()
	for _, t := range s.session.Targets() {
		s.drawTarget(screen, t, count)
	}
}

// drawTarget 绘制单个目标：实心圆、描边与居中的编号
func (s *TargetRenderSystem) drawTarget(screen *ebiten.Image, t game.Target, count int) {
	style := game.TargetStyle(t.ID, t.Selected, count)
	radius := style.Diameter / 2
	cx := s.areaX + t.Left + radius
	cy := s.areaY + t.Top + radius

	vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(radius), style.Fill, true)
	vector.StrokeCircle(screen, float32(cx), float32(cy), float32(radius), 1, targetOutlineColor, true)

	face := s.fonts.Face(style.FontSize)
	if face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(style.Label)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, strconv.Itoa(t.ID), face, op)
}

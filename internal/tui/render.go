package tui

import (
	"fmt"

	"github.com/decker502/pointclear/pkg/game"
	"github.com/gdamore/tcell/v2"
)

// 标题区布局
const (
	statusRow = 0
	inputRow  = 1
	timeRow   = 2
	helpRow   = 3

	inputX     = 9
	buttonX    = 17
	buttonW    = len("[ Restart ]")
	nextX      = 17
	messageX   = 36
	helpText   = "Enter/r: Play/Restart   click the numbers in order   m: sound   q: quit"
	inputLabel = "Points:"
	timeLabel  = "Time:"
)

var (
	defaultStyle  = tcell.StyleDefault
	borderStyle   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	helpStyle     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	inputStyle    = tcell.StyleDefault.Reverse(true)
	buttonStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy).Bold(true)
	messageStyle  = tcell.StyleDefault.Foreground(tcell.ColorRed)
	clearedStyle  = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	failedStyle   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	headingStyle  = tcell.StyleDefault.Bold(true)
	selectedStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorRed).Bold(true)
)

// buttonHit 判断 (x, y) 是否落在 Play/Restart 按钮上
func buttonHit(x, y int) bool {
	return y == inputRow && x >= buttonX && x < buttonX+buttonW
}

// Draw 绘制标题区与游戏区域
func (a *App) Draw() {
	s := a.screen
	s.Clear()

	session := a.driver.Session()
	status := session.Status()

	drawText(s, 1, statusRow, statusStyle(status), game.StatusLabel(status))

	drawText(s, 1, inputRow, defaultStyle, inputLabel)
	drawText(s, inputX, inputRow, inputStyle, fmt.Sprintf("%-*s", inputMaxLength+1, a.input))
	drawText(s, buttonX, inputRow, buttonStyle, fmt.Sprintf("[ %s ]", game.CommandLabel(status)))

	drawText(s, 1, timeRow, defaultStyle, timeLabel)
	drawText(s, inputX, timeRow, defaultStyle, game.FormatElapsed(session.ElapsedTicks()))
	if status == game.StatusInProgress {
		drawText(s, nextX, timeRow, defaultStyle, fmt.Sprintf("Next: %d / %d", session.NextExpectedID(), session.Count()))
	}
	if a.message != "" {
		drawText(s, messageX, timeRow, messageStyle, a.message)
	}

	drawText(s, 1, helpRow, helpStyle, helpText)

	a.drawBorder()
	for _, t := range session.Targets() {
		x, y := a.layout.CellFor(t, a.bounds)
		drawText(s, x, y, targetStyle(t, session.Count()), Badge(t.ID))
	}

	s.Show()
}

func (a *App) drawBorder() {
	l := a.layout
	left, right := l.AreaX-1, l.AreaX+l.AreaW
	top, bottom := l.AreaY-1, l.AreaY+l.AreaH
	for x := left + 1; x < right; x++ {
		a.screen.SetContent(x, top, tcell.RuneHLine, nil, borderStyle)
		a.screen.SetContent(x, bottom, tcell.RuneHLine, nil, borderStyle)
	}
	for y := top + 1; y < bottom; y++ {
		a.screen.SetContent(left, y, tcell.RuneVLine, nil, borderStyle)
		a.screen.SetContent(right, y, tcell.RuneVLine, nil, borderStyle)
	}
	a.screen.SetContent(left, top, tcell.RuneULCorner, nil, borderStyle)
	a.screen.SetContent(right, top, tcell.RuneURCorner, nil, borderStyle)
	a.screen.SetContent(left, bottom, tcell.RuneLLCorner, nil, borderStyle)
	a.screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, borderStyle)
}

func statusStyle(status game.Status) tcell.Style {
	switch status {
	case game.StatusCleared:
		return clearedStyle
	case game.StatusFailed:
		return failedStyle
	default:
		return headingStyle
	}
}

// targetStyle 与桌面版同色：选中为红色，否则为随编号加深的绿色
func targetStyle(t game.Target, count int) tcell.Style {
	if t.Selected {
		return selectedStyle
	}
	fill := game.TargetStyle(t.ID, t.Selected, count).Fill
	return tcell.StyleDefault.
		Foreground(tcell.ColorWhite).
		Background(tcell.NewRGBColor(int32(fill.R), int32(fill.G), int32(fill.B))).
		Bold(true)
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

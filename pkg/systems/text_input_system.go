package systems

import (
	"log"

	"github.com/decker502/pointclear/pkg/components"
	"github.com/decker502/pointclear/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// cursorBlinkInterval 光标闪烁间隔（秒）
const cursorBlinkInterval = 0.5

// TextInputSystem 文本输入系统
// 处理数量输入框的键盘输入、光标闪烁等逻辑
type TextInputSystem struct {
	entityManager *ecs.EntityManager
}

// NewTextInputSystem 创建文本输入系统
func NewTextInputSystem(em *ecs.EntityManager) *TextInputSystem {
	return &TextInputSystem{
		entityManager: em,
	}
}

// Update 更新文本输入系统
func (s *TextInputSystem) Update(deltaTime float64) {
	for _, entityID := range ecs.GetEntitiesWith1[*components.TextInputComponent](s.entityManager) {
		input, ok := ecs.GetComponent[*components.TextInputComponent](s.entityManager, entityID)
		if !ok {
			continue
		}

		// 只处理获得焦点的输入框
		if !input.IsFocused {
			input.CursorVisible = false
			continue
		}

		updateCursorBlink(input, deltaTime)
		s.handleKeyboardInput(input)
	}
}

// updateCursorBlink 更新光标闪烁状态
func updateCursorBlink(input *components.TextInputComponent, deltaTime float64) {
	input.CursorBlinkTimer += deltaTime
	if input.CursorBlinkTimer >= cursorBlinkInterval {
		input.CursorBlinkTimer = 0
		input.CursorVisible = !input.CursorVisible
	}
}

// isRepeatFrame 按住按键时的重复判定：第1帧立即响应，30帧后每3帧响应一次
func isRepeatFrame(duration int) bool {
	return duration == 1 || (duration >= 30 && duration%3 == 0)
}

// handleKeyboardInput 处理键盘输入
func (s *TextInputSystem) handleKeyboardInput(input *components.TextInputComponent) {
	if runes := ebiten.AppendInputChars(nil); len(runes) > 0 {
		InsertText(input, string(runes))
		showCursor(input)
	}

	if isRepeatFrame(inpututil.KeyPressDuration(ebiten.KeyBackspace)) {
		DeleteCharBefore(input)
		showCursor(input)
	}

	if isRepeatFrame(inpututil.KeyPressDuration(ebiten.KeyDelete)) {
		DeleteCharAfter(input)
		showCursor(input)
	}

	if isRepeatFrame(inpututil.KeyPressDuration(ebiten.KeyArrowLeft)) {
		if input.CursorPosition > 0 {
			input.CursorPosition--
		}
		showCursor(input)
	}

	if isRepeatFrame(inpututil.KeyPressDuration(ebiten.KeyArrowRight)) {
		if input.CursorPosition < len([]rune(input.Text)) {
			input.CursorPosition++
		}
		showCursor(input)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyHome) {
		input.CursorPosition = 0
		showCursor(input)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEnd) {
		input.CursorPosition = len([]rune(input.Text))
		showCursor(input)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
		if input.OnSubmit != nil {
			input.OnSubmit(input.Text)
		}
	}
}

// showCursor 输入时光标应该可见
func showCursor(input *components.TextInputComponent) {
	input.CursorBlinkTimer = 0
	input.CursorVisible = true
}

// InsertText 在光标位置插入文本
// DigitsOnly 时过滤掉非数字字符；超过 MaxLength 的输入整体丢弃
func InsertText(input *components.TextInputComponent, text string) {
	filtered := make([]rune, 0, len(text))
	for _, r := range text {
		if input.DigitsOnly && (r < '0' || r > '9') {
			continue
		}
		filtered = append(filtered, r)
	}
	if len(filtered) == 0 {
		return
	}

	runes := []rune(input.Text)
	if input.MaxLength > 0 && len(runes)+len(filtered) > input.MaxLength {
		log.Printf("[TextInputSystem] Max length reached (%d chars)", input.MaxLength)
		return
	}

	pos := clampCursor(input.CursorPosition, len(runes))
	result := make([]rune, 0, len(runes)+len(filtered))
	result = append(result, runes[:pos]...)
	result = append(result, filtered...)
	result = append(result, runes[pos:]...)

	input.Text = string(result)
	input.CursorPosition = pos + len(filtered)
}

// DeleteCharBefore 删除光标前的字符（退格）
func DeleteCharBefore(input *components.TextInputComponent) {
	runes := []rune(input.Text)
	pos := clampCursor(input.CursorPosition, len(runes))
	if pos == 0 {
		return
	}
	input.Text = string(append(runes[:pos-1:pos-1], runes[pos:]...))
	input.CursorPosition = pos - 1
}

// DeleteCharAfter 删除光标后的字符（Delete 键）
func DeleteCharAfter(input *components.TextInputComponent) {
	runes := []rune(input.Text)
	pos := clampCursor(input.CursorPosition, len(runes))
	if pos >= len(runes) {
		return
	}
	input.Text = string(append(runes[:pos:pos], runes[pos+1:]...))
	input.CursorPosition = pos
}

// SetText 替换输入框内容，光标移到结尾
func SetText(input *components.TextInputComponent, text string) {
	input.Text = text
	input.CursorPosition = len([]rune(text))
}

func clampCursor(pos, length int) int {
	if pos < 0 {
		return 0
	}
	if pos > length {
		return length
	}
	return pos
}

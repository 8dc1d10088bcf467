package systems

import (
	"testing"

	"github.com/decker502/pointclear/pkg/components"
)

func TestInsertText(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		cursor     int
		insert     string
		digitsOnly bool
		maxLength  int
		wantText   string
		wantCursor int
	}{
		{"追加", "12", 2, "3", true, 4, "123", 3},
		{"中间插入", "13", 1, "2", true, 4, "123", 2},
		{"过滤非数字", "", 0, "a1b2", true, 4, "12", 2},
		{"全部被过滤", "5", 1, "x", true, 4, "5", 1},
		{"超长整体丢弃", "123", 3, "45", true, 4, "123", 3},
		{"不限制字符", "", 0, "ab", false, 0, "ab", 2},
		{"越界光标被夹紧", "12", 9, "3", true, 4, "123", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := &components.TextInputComponent{
				Text:           tt.text,
				CursorPosition: tt.cursor,
				DigitsOnly:     tt.digitsOnly,
				MaxLength:      tt.maxLength,
			}
			InsertText(input, tt.insert)
			if input.Text != tt.wantText {
				t.Errorf("Text: got %q, want %q", input.Text, tt.wantText)
			}
			if input.CursorPosition != tt.wantCursor {
				t.Errorf("Cursor: got %d, want %d", input.CursorPosition, tt.wantCursor)
			}
		})
	}
}

func TestDeleteChars(t *testing.T) {
	input := &components.TextInputComponent{Text: "123", CursorPosition: 2}

	DeleteCharBefore(input)
	if input.Text != "13" || input.CursorPosition != 1 {
		t.Errorf("Backspace: got %q cursor %d", input.Text, input.CursorPosition)
	}

	DeleteCharAfter(input)
	if input.Text != "1" || input.CursorPosition != 1 {
		t.Errorf("Delete: got %q cursor %d", input.Text, input.CursorPosition)
	}

	// 结尾处 Delete 无效
	DeleteCharAfter(input)
	if input.Text != "1" {
		t.Errorf("Delete at end should do nothing, got %q", input.Text)
	}

	input.CursorPosition = 0
	DeleteCharBefore(input)
	if input.Text != "1" || input.CursorPosition != 0 {
		t.Errorf("Backspace at start should do nothing, got %q cursor %d", input.Text, input.CursorPosition)
	}
}

func TestSetText(t *testing.T) {
	input := &components.TextInputComponent{Text: "9", CursorPosition: 0}
	SetText(input, "250")
	if input.Text != "250" || input.CursorPosition != 3 {
		t.Errorf("SetText: got %q cursor %d", input.Text, input.CursorPosition)
	}
}

func TestCursorBlink(t *testing.T) {
	input := &components.TextInputComponent{CursorVisible: true}

	updateCursorBlink(input, 0.3)
	if !input.CursorVisible {
		t.Error("Cursor should stay visible before the blink interval")
	}
	updateCursorBlink(input, 0.3)
	if input.CursorVisible {
		t.Error("Cursor should toggle after the blink interval")
	}
	if input.CursorBlinkTimer != 0 {
		t.Errorf("Blink timer should reset, got %v", input.CursorBlinkTimer)
	}
}

func TestIsRepeatFrame(t *testing.T) {
	tests := []struct {
		duration int
		want     bool
	}{
		{0, false},
		{1, true},
		{2, false},
		{29, false},
		{30, true},
		{31, false},
		{33, true},
	}
	for _, tt := range tests {
		if got := isRepeatFrame(tt.duration); got != tt.want {
			t.Errorf("isRepeatFrame(%d) = %v, want %v", tt.duration, got, tt.want)
		}
	}
}

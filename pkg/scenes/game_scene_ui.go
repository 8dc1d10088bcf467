package scenes

import (
	"fmt"
	"log"
	"strconv"

	"github.com/decker502/pointclear/pkg/components"
	"github.com/decker502/pointclear/pkg/config"
	"github.com/decker502/pointclear/pkg/ecs"
	"github.com/decker502/pointclear/pkg/entities"
	"github.com/decker502/pointclear/pkg/game"
	"github.com/decker502/pointclear/pkg/systems"
)

// InvalidCountMessage 数量输入无效时的提示
const InvalidCountMessage = "Please enter a valid number"

// initUI 创建标题、输入框、计时、按钮等 UI 实体
func (s *GameScene) initUI() {
	em := s.entityManager
	session := s.session

	s.headerEntity = entities.NewLabel(em, config.HeaderX, config.HeaderY, "",
		func() string { return game.StatusLabel(session.Status()) },
		config.HeaderFontSize, headerColor(session.Status()), true)

	entities.NewLabel(em, config.LabelX, config.PointsRowY+6, "Points:", nil,
		config.LabelFontSize, entities.LabelColor, false)
	s.inputEntity = entities.NewTextInput(em, config.ValueX, config.PointsRowY,
		config.InputWidth, config.InputHeight, config.InputMaxLength,
		func(string) { s.submitCommand() })

	entities.NewLabel(em, config.LabelX, config.TimeRowY, "Time:", nil,
		config.LabelFontSize, entities.LabelColor, false)
	entities.NewLabel(em, config.ValueX, config.TimeRowY, "",
		func() string { return game.FormatElapsed(session.ElapsedTicks()) },
		config.LabelFontSize, entities.LabelColor, false)

	entities.NewLabel(em, config.ValueX+config.InputWidth+20, config.TimeRowY, "",
		func() string {
			if session.Status() != game.StatusInProgress {
				return ""
			}
			return fmt.Sprintf("Next: %d / %d", session.NextExpectedID(), session.Count())
		},
		config.LabelFontSize, entities.LabelColor, false)

	entities.NewButton(em, config.CommandButtonX, config.CommandButtonY,
		config.CommandButtonWidth, config.CommandButtonHeight,
		"", func() string { return game.CommandLabel(session.Status()) },
		s.submitCommand)
}

// submitCommand Play/Restart 按钮（或输入框回车）
//
// 未开始时为 Play：数量无效则提示并保持未开始；
// 其余状态为 Restart：数量有效则重新开局，否则清空输入框并重置为未开始。
func (s *GameScene) submitCommand() {
	text := s.inputText()
	count, err := game.ParseCount(text)

	if s.session.Status() == game.StatusNotStarted {
		if err != nil {
			log.Printf("[GameScene] Play rejected: %v", err)
			s.showMessage(InvalidCountMessage)
			return
		}
		s.startWith(count)
		return
	}

	if err != nil {
		log.Printf("[GameScene] Restart with invalid count %q, resetting", text)
		s.setInputText("")
		s.session.Reset()
		return
	}
	s.session.Restart(count)
	s.rememberCount()
}

// startWith 开局并记录数量
func (s *GameScene) startWith(count int) {
	if err := s.session.Start(count); err != nil {
		s.showMessage(InvalidCountMessage)
		return
	}
	s.rememberCount()
}

// rememberCount 记录并保存本次使用的数量文本
func (s *GameScene) rememberCount() {
	if s.settingsManager == nil {
		return
	}
	s.settingsManager.SetLastCount(s.inputText())
	if err := s.settingsManager.Save(); err != nil {
		log.Printf("[GameScene] Warning: Failed to save settings: %v", err)
	}
}

// showMessage 显示限时提示，同一时间只保留一条
func (s *GameScene) showMessage(text string) {
	if s.messageEntity != 0 {
		s.entityManager.DestroyEntity(s.messageEntity)
	}
	s.messageEntity = entities.NewMessage(s.entityManager,
		config.MessageX, config.MessageY, text, config.MessageDuration)
}

// message 返回当前显示的提示文字，没有时返回空字符串
func (s *GameScene) message() string {
	if s.messageEntity == 0 {
		return ""
	}
	label, ok := ecs.GetComponent[*components.LabelComponent](s.entityManager, s.messageEntity)
	if !ok {
		return ""
	}
	return label.Text
}

func (s *GameScene) inputComponent() *components.TextInputComponent {
	input, _ := ecs.GetComponent[*components.TextInputComponent](s.entityManager, s.inputEntity)
	return input
}

func (s *GameScene) inputText() string {
	if input := s.inputComponent(); input != nil {
		return input.Text
	}
	return ""
}

func (s *GameScene) setInputText(text string) {
	if input := s.inputComponent(); input != nil {
		systems.SetText(input, text)
	}
}

func formatCount(count int) string {
	return strconv.Itoa(count)
}

package scenes

import (
	"image/color"
	"log"
	"math/rand/v2"

	"github.com/decker502/pointclear/pkg/components"
	"github.com/decker502/pointclear/pkg/config"
	"github.com/decker502/pointclear/pkg/ecs"
	"github.com/decker502/pointclear/pkg/game"
	"github.com/decker502/pointclear/pkg/systems"
	"github.com/decker502/pointclear/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// backgroundColor 场景背景色
var backgroundColor = color.RGBA{R: 245, G: 245, B: 240, A: 255}

// GameScene 唯一的游戏场景
//
// 组成：
//   - UI（标题、数量输入框、计时、Play/Restart 按钮、错误提示）以 ECS 实体表示
//   - 目标不进入 ECS，直接从 Session 的快照渲染和命中检测
//   - SessionDriver 在本场景的 Update 中推进，所有会话修改都在游戏循环 goroutine 上
type GameScene struct {
	entityManager *ecs.EntityManager
	driver        *game.SessionDriver
	session       *game.Session

	settingsManager *game.SettingsManager
	audioManager    *game.AudioManager

	// 系统
	buttonSystem       *systems.ButtonSystem
	textInputSystem    *systems.TextInputSystem
	lifetimeSystem     *systems.LifetimeSystem
	targetInputSystem  *systems.TargetInputSystem
	targetRenderSystem *systems.TargetRenderSystem
	uiRenderSystem     *systems.UIRenderSystem

	// UI 实体
	headerEntity  ecs.EntityID
	inputEntity   ecs.EntityID
	messageEntity ecs.EntityID // 当前错误提示，0 表示无
}

// NewGameScene 创建游戏场景
//
// 参数：
//   - cfg: 游戏配置
//   - settingsManager: 设置管理器（可为 nil，不记录上次数量）
//   - audioManager: 音效管理器（可为 nil，静音）
//   - count: 开局数量，> 0 时立即开始，否则进入未开始状态
//   - rng: 随机源，nil 时使用非确定性随机源
func NewGameScene(
	cfg *config.GameConfig,
	settingsManager *game.SettingsManager,
	audioManager *game.AudioManager,
	count int,
	rng *rand.Rand,
) *GameScene {
	driver := game.NewSessionDriverFromConfig(cfg, rng)
	session := driver.Session()
	em := ecs.NewEntityManager()

	s := &GameScene{
		entityManager:   em,
		driver:          driver,
		session:         session,
		settingsManager: settingsManager,
		audioManager:    audioManager,
		buttonSystem:    systems.NewButtonSystem(em),
		textInputSystem: systems.NewTextInputSystem(em),
		lifetimeSystem:  systems.NewLifetimeSystem(em),
		targetInputSystem: systems.NewTargetInputSystem(
			session, audioManager, cfg.PlayArea.X, cfg.PlayArea.Y),
		targetRenderSystem: systems.NewTargetRenderSystem(
			session, cfg.PlayArea.X, cfg.PlayArea.Y, cfg.PlayArea.Width, cfg.PlayArea.Height),
		uiRenderSystem: systems.NewUIRenderSystem(em),
	}

	session.OnStatusChange = s.onStatusChange
	s.initUI()

	if count > 0 {
		s.setInputText(formatCount(count))
		s.submitCommand()
	} else if settingsManager != nil {
		s.setInputText(settingsManager.GetSettings().LastCount)
	}

	return s
}

// Update 更新场景
func (s *GameScene) Update(deltaTime float64) {
	s.textInputSystem.Update(deltaTime)

	// M 键切换音效
	if inpututil.IsKeyJustPressed(ebiten.KeyM) && s.settingsManager != nil {
		enabled := !s.settingsManager.GetSettings().SoundEnabled
		s.settingsManager.SetSoundEnabled(enabled)
		log.Printf("[GameScene] Sound enabled: %v", enabled)
	}

	s.step(utils.ReadPointer(), deltaTime)
}

// step 处理一帧指针输入并推进会话与 UI
// 按钮优先消费点击，避免点击穿透到目标
func (s *GameScene) step(frame utils.PointerFrame, deltaTime float64) {
	if !s.buttonSystem.HandlePointer(frame) {
		s.targetInputSystem.HandlePointer(frame)
	}

	s.driver.Update(deltaTime)

	s.lifetimeSystem.Update(deltaTime)
	s.entityManager.RemoveMarkedEntities()

	s.updateHeaderColor()
}

// Draw 绘制场景
func (s *GameScene) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	s.uiRenderSystem.Draw(screen)
	s.targetRenderSystem.Draw(screen)
}

// Session 返回场景持有的会话
func (s *GameScene) Session() *game.Session {
	return s.session
}

// SaveOnExit 退出时记录输入框中的数量并保存设置
func (s *GameScene) SaveOnExit() bool {
	if s.settingsManager == nil {
		return true
	}
	s.settingsManager.SetLastCount(s.inputText())
	if err := s.settingsManager.Save(); err != nil {
		log.Printf("[GameScene] Warning: Failed to save settings: %v", err)
		return false
	}
	return true
}

// onStatusChange 会话状态变化时播放音效
func (s *GameScene) onStatusChange(from, to game.Status) {
	log.Printf("[GameScene] Status %s -> %s", from, to)
	if s.audioManager == nil {
		return
	}
	switch to {
	case game.StatusInProgress:
		s.audioManager.PlaySound(game.SoundStart)
	case game.StatusCleared:
		s.audioManager.PlaySound(game.SoundClear)
	}
}

// updateHeaderColor 标题颜色跟随状态
func (s *GameScene) updateHeaderColor() {
	label, ok := ecs.GetComponent[*components.LabelComponent](s.entityManager, s.headerEntity)
	if !ok {
		return
	}
	label.Color = headerColor(s.session.Status())
}

// headerColor 返回状态对应的标题颜色
func headerColor(status game.Status) [4]uint8 {
	switch status {
	case game.StatusCleared:
		return [4]uint8{30, 140, 60, 255}
	case game.StatusFailed:
		return [4]uint8{200, 40, 40, 255}
	default:
		return [4]uint8{30, 30, 30, 255}
	}
}

package systems

import (
	"github.com/decker502/pointclear/pkg/components"
	"github.com/decker502/pointclear/pkg/config"
	"github.com/decker502/pointclear/pkg/ecs"
	"github.com/decker502/pointclear/pkg/utils"
)

// ButtonSystem 按钮交互系统
// 负责处理按钮的悬停、按下、释放点击等交互逻辑
//
// 职责：
//   - 检测指针悬停（更新按钮状态为 UIHovered）
//   - 检测释放点击（触发 OnClick 回调）
//   - 根据 Enabled 状态决定是否响应交互
type ButtonSystem struct {
	entityManager *ecs.EntityManager
}

// NewButtonSystem 创建按钮交互系统
func NewButtonSystem(em *ecs.EntityManager) *ButtonSystem {
	return &ButtonSystem{
		entityManager: em,
	}
}

// Update 读取当前帧的指针输入并更新按钮
func (s *ButtonSystem) Update(deltaTime float64) {
	s.HandlePointer(utils.ReadPointer())
}

// HandlePointer 按给定的指针快照更新按钮状态
//
// 返回：
//   - bool: 本帧是否有按钮消费了点击（调用方据此避免点击穿透）
func (s *ButtonSystem) HandlePointer(frame utils.PointerFrame) bool {
	consumed := false

	entities := ecs.GetEntitiesWith2[*components.ButtonComponent, *components.PositionComponent](s.entityManager)
	for _, entityID := range entities {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)

		// 禁用状态不响应交互
		if !button.Enabled {
			button.State = components.UIDisabled
			continue
		}

		if !config.PointInRect(frame.X, frame.Y, pos.X, pos.Y, button.Width, button.Height) {
			button.State = components.UINormal
			continue
		}

		switch {
		case frame.Pressed:
			button.State = components.UIClicked
		case frame.JustReleased:
			// 释放瞬间触发回调
			if button.OnClick != nil {
				button.OnClick()
			}
			button.State = components.UIHovered
			consumed = true
		default:
			button.State = components.UIHovered
		}
	}

	return consumed
}

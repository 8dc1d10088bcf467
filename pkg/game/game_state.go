package game

import (
	"log"

	"github.com/quasilyte/gdata/v2"
)

// GdataAppName gdata 存储使用的应用名
const GdataAppName = "pointclear"

// GameState 存储全局应用状态
// 这是一个单例，持有跨场景共享的服务（存储、设置、音效）。
// 对局本身的状态由 Session 独占，不放在这里。
type GameState struct {
	gdataManager    *gdata.Manager   // 跨平台存储，初始化失败时为 nil
	settingsManager *SettingsManager // 玩家设置
	audioManager    *AudioManager    // 音效，未初始化音频时为 nil
}

// 全局单例实例（这是架构规范允许的唯一全局变量）
var globalGameState *GameState

// GetGameState 返回全局 GameState 单例
// 使用延迟初始化模式，确保整个应用生命周期只有一个实例
func GetGameState() *GameState {
	if globalGameState == nil {
		globalGameState = newGameState()
	}
	return globalGameState
}

// newGameState 初始化存储与设置；存储不可用时降级为内存设置
func newGameState() *GameState {
	gs := &GameState{}

	manager, err := gdata.Open(gdata.Config{
		AppName: GdataAppName,
	})
	if err != nil {
		log.Printf("[GameState] Warning: gdata unavailable: %v (settings will not persist)", err)
		manager = nil
	}
	gs.gdataManager = manager

	// NewSettingsManager 不会因加载失败返回错误，失败时使用默认设置
	settingsManager, _ := NewSettingsManager(manager)
	gs.settingsManager = settingsManager

	return gs
}

// GetSettingsManager 返回设置管理器
func (gs *GameState) GetSettingsManager() *SettingsManager {
	if gs.settingsManager == nil {
		gs.settingsManager, _ = NewSettingsManager(gs.gdataManager)
	}
	return gs.settingsManager
}

// SetAudioManager 设置音效管理器
func (gs *GameState) SetAudioManager(am *AudioManager) {
	gs.audioManager = am
}

// GetAudioManager 返回音效管理器；未设置时返回静音实例
func (gs *GameState) GetAudioManager() *AudioManager {
	if gs.audioManager == nil {
		gs.audioManager = NewAudioManager(nil, gs.GetSettingsManager())
	}
	return gs.audioManager
}

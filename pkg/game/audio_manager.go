package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioManager 音效管理器
// 职责：
//   - 统一管理游戏中所有音效的播放
//   - 实现音量控制（从 SettingsManager 读取设置）
//   - 音效由 SynthesizePCM 合成，首次播放时创建播放器并缓存
//
// audioContext 为 nil 时进入静音模式，所有播放请求直接返回 false。
type AudioManager struct {
	audioContext    *audio.Context           // ebiten 音频上下文，可为 nil
	settingsManager *SettingsManager         // 设置管理器（读取音量设置，可为 nil）
	soundPlayers    map[string]*audio.Player // 音效播放器缓存（音效ID -> 播放器）
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - ctx: ebiten 音频上下文（可为 nil，静音模式）
//   - sm: SettingsManager 实例（用于读取音量设置，可为 nil）
func NewAudioManager(ctx *audio.Context, sm *SettingsManager) *AudioManager {
	return &AudioManager{
		audioContext:    ctx,
		settingsManager: sm,
		soundPlayers:    make(map[string]*audio.Player),
	}
}

// PlaySound 播放音效
//
// 参数：
//   - soundID: 音效ID（如 SoundHit, SoundMiss）
//
// 返回：
//   - bool: 是否成功播放
func (am *AudioManager) PlaySound(soundID string) bool {
	if !am.soundEnabled() {
		return false
	}

	player := am.getSoundPlayer(soundID)
	if player == nil {
		return false
	}

	player.SetVolume(am.getSoundVolume())

	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound %s: %v", soundID, err)
	}
	player.Play()
	return true
}

// PlayForResult 根据点击结果播放对应音效
func (am *AudioManager) PlayForResult(result SelectResult) {
	switch result {
	case SelectHit:
		am.PlaySound(SoundHit)
	case SelectMiss:
		am.PlaySound(SoundMiss)
	}
}

// soundEnabled 检查音效是否可用
func (am *AudioManager) soundEnabled() bool {
	if am.audioContext == nil {
		return false
	}
	if am.settingsManager != nil && !am.settingsManager.GetSettings().SoundEnabled {
		return false
	}
	return true
}

// getSoundPlayer 获取或合成音效播放器
func (am *AudioManager) getSoundPlayer(soundID string) *audio.Player {
	if player, ok := am.soundPlayers[soundID]; ok {
		return player
	}

	notes, ok := SoundPattern(soundID)
	if !ok {
		log.Printf("[AudioManager] Warning: Unknown sound %s", soundID)
		return nil
	}

	pcm := SynthesizePCM(notes, am.audioContext.SampleRate())
	player := am.audioContext.NewPlayerFromBytes(pcm)
	am.soundPlayers[soundID] = player
	log.Printf("[AudioManager] Synthesized sound %s (%d bytes)", soundID, len(pcm))
	return player
}

// getSoundVolume 获取音效音量
func (am *AudioManager) getSoundVolume() float64 {
	if am.settingsManager == nil {
		return DefaultSettings().SoundVolume
	}
	return am.settingsManager.GetSettings().SoundVolume
}

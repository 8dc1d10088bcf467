package game

import "testing"

// resetGlobalGameState 清空单例，保证测试隔离
func resetGlobalGameState() {
	globalGameState = nil
}

func TestGetGameStateSingleton(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	resetGlobalGameState()
	t.Cleanup(resetGlobalGameState)

	gs1 := GetGameState()
	gs2 := GetGameState()
	if gs1 != gs2 {
		t.Error("GetGameState should return the same instance")
	}
	if gs1.GetSettingsManager() == nil {
		t.Error("SettingsManager should always be available")
	}
}

func TestGameStateAudioFallback(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	resetGlobalGameState()
	t.Cleanup(resetGlobalGameState)

	gs := GetGameState()
	am := gs.GetAudioManager()
	if am == nil {
		t.Fatal("GetAudioManager should return a silent manager when none is set")
	}
	if am.PlaySound(SoundHit) {
		t.Error("Silent audio manager should not play")
	}

	custom := NewAudioManager(nil, nil)
	gs.SetAudioManager(custom)
	if gs.GetAudioManager() != custom {
		t.Error("SetAudioManager should replace the audio manager")
	}
}

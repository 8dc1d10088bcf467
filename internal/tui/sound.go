package tui

import (
	"fmt"
	"log"
	"math"
	"sync"
	"time"

	"github.com/decker502/pointclear/pkg/game"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const soundSampleRate = beep.SampleRate(game.ToneSampleRate)

// Sound 通过系统扬声器播放游戏音效
// nil *Sound 为静音
type Sound struct {
	mu      sync.Mutex
	enabled bool
	volume  float64
}

// NewSound 初始化扬声器
//
// 参数：
//   - enabled: 初始是否开启音效
//   - volume: 音量 [0, 1]
//
// 返回：
//   - error: 没有可用音频设备时返回错误，调用方按静音运行
func NewSound(enabled bool, volume float64) (*Sound, error) {
	if err := speaker.Init(soundSampleRate, soundSampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("speaker init: %w", err)
	}
	return &Sound{enabled: enabled, volume: volume}, nil
}

// SetEnabled 开关音效
func (s *Sound) SetEnabled(enabled bool) {
	if s == nil {
		return
	}
	s.mu.Lock()
	s.enabled = enabled
	s.mu.Unlock()
}

// Enabled 返回音效是否开启
func (s *Sound) Enabled() bool {
	if s == nil {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.enabled
}

// Play 把指定音效排入扬声器混音
func (s *Sound) Play(soundID string) {
	if s == nil {
		return
	}
	s.mu.Lock()
	enabled, volume := s.enabled, s.volume
	s.mu.Unlock()
	if !enabled || volume <= 0 {
		return
	}

	notes, ok := game.SoundPattern(soundID)
	if !ok {
		return
	}
	streamer, err := toneStreamer(notes)
	if err != nil {
		log.Printf("[Sound] %s: %v", soundID, err)
		return
	}
	speaker.Play(&effects.Volume{Streamer: streamer, Base: 2, Volume: math.Log2(volume)})
}

// PlayForResult 按选择结果播放命中或失误音效
func (s *Sound) PlayForResult(result game.SelectResult) {
	switch result {
	case game.SelectHit:
		s.Play(game.SoundHit)
	case game.SelectMiss:
		s.Play(game.SoundMiss)
	}
}

// Close 关闭扬声器
func (s *Sound) Close() {
	if s == nil {
		return
	}
	speaker.Close()
}

// toneStreamer 把每个音符的正弦波依次串接
func toneStreamer(notes []game.ToneNote) (beep.Streamer, error) {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		sine, err := generators.SineTone(soundSampleRate, n.Frequency)
		if err != nil {
			return nil, err
		}
		d := time.Duration(n.Duration * float64(time.Second))
		parts = append(parts, beep.Take(soundSampleRate.N(d), sine))
	}
	return beep.Seq(parts...), nil
}

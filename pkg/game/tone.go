package game

import (
	"encoding/binary"
	"math"
)

// ToneSampleRate 合成音效使用的采样率
const ToneSampleRate = 48000

// ToneNote 一个音符：频率（Hz）与时长（秒）
type ToneNote struct {
	Frequency float64
	Duration  float64
}

// 预设音效 ID
const (
	SoundHit   = "SOUND_HIT"   // 点中
	SoundMiss  = "SOUND_MISS"  // 点错
	SoundClear = "SOUND_CLEAR" // 全部清除
	SoundStart = "SOUND_START" // 开局
)

// soundPatterns 各音效的音符序列
// 项目不附带音频资源，所有音效都在启动时合成
var soundPatterns = map[string][]ToneNote{
	SoundHit:   {{Frequency: 880, Duration: 0.05}},
	SoundMiss:  {{Frequency: 220, Duration: 0.12}, {Frequency: 165, Duration: 0.2}},
	SoundClear: {{Frequency: 523, Duration: 0.08}, {Frequency: 659, Duration: 0.08}, {Frequency: 784, Duration: 0.16}},
	SoundStart: {{Frequency: 440, Duration: 0.06}, {Frequency: 660, Duration: 0.06}},
}

// SoundPattern 返回音效对应的音符序列
func SoundPattern(soundID string) ([]ToneNote, bool) {
	notes, ok := soundPatterns[soundID]
	return notes, ok
}

// SynthesizePCM 把音符序列合成为 16-bit 小端立体声 PCM
//
// 每个音符首尾各有 5ms 的线性淡入淡出，避免爆音。
//
// 参数：
//   - notes: 音符序列
//   - sampleRate: 采样率
//
// 返回：
//   - []byte: 可直接交给 audio.Context.NewPlayerFromBytes 的 PCM 数据
func SynthesizePCM(notes []ToneNote, sampleRate int) []byte {
	const amplitude = 0.4
	const fade = 0.005

	total := 0
	for _, n := range notes {
		total += int(n.Duration * float64(sampleRate))
	}

	buf := make([]byte, 0, total*4)
	frame := make([]byte, 4)
	for _, n := range notes {
		samples := int(n.Duration * float64(sampleRate))
		fadeSamples := int(fade * float64(sampleRate))
		for i := 0; i < samples; i++ {
			gain := 1.0
			if fadeSamples > 0 {
				if i < fadeSamples {
					gain = float64(i) / float64(fadeSamples)
				} else if samples-i < fadeSamples {
					gain = float64(samples-i) / float64(fadeSamples)
				}
			}
			v := amplitude * gain * math.Sin(2*math.Pi*n.Frequency*float64(i)/float64(sampleRate))
			s := int16(v * math.MaxInt16)
			binary.LittleEndian.PutUint16(frame[0:2], uint16(s))
			binary.LittleEndian.PutUint16(frame[2:4], uint16(s))
			buf = append(buf, frame...)
		}
	}
	return buf
}

package game

// DefaultTickInterval 计时脉冲周期（秒），每个脉冲计 0.1 秒
const DefaultTickInterval = 0.1

// TickSource 固定周期的计时脉冲源
//
// 每帧累加 deltaTime，满一个周期产出一次脉冲。
// 只在 running 为 true 时累加；running 为 false 时清空累积量，
// 因此脉冲恰好在计时器启动时开始、在计时器停止时停止。不做漂移校正。
type TickSource struct {
	Interval    float64 // 脉冲周期（秒）
	accumulated float64 // 当前周期内已累积的时间（秒）
}

// NewTickSource 创建脉冲源；interval <= 0 时使用 DefaultTickInterval
func NewTickSource(interval float64) *TickSource {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	return &TickSource{Interval: interval}
}

// Advance 推进时间，返回本次应产出的脉冲数
func (t *TickSource) Advance(deltaTime float64, running bool) int {
	if !running {
		t.accumulated = 0
		return 0
	}
	if deltaTime <= 0 {
		return 0
	}

	t.accumulated += deltaTime
	ticks := 0
	for t.accumulated >= t.Interval {
		t.accumulated -= t.Interval
		ticks++
	}
	return ticks
}

// Reset 清空累积量
func (t *TickSource) Reset() {
	t.accumulated = 0
}

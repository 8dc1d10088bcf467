package game

import (
	"math/rand/v2"

	"github.com/decker502/pointclear/pkg/config"
)

// SessionDriver 把会话、延迟调度器和计时脉冲源绑在一起
//
// 前端在自己的游戏循环里每帧调用一次 Update(deltaTime)，
// 所有状态转换（点击、移除回调、计时脉冲）都在这一个 goroutine 上完成。
type SessionDriver struct {
	session   *Session
	scheduler *Scheduler
	ticker    *TickSource

	lastGeneration uint64 // 上一帧的会话代号，变化时清空脉冲累积量
}

// NewSessionDriver 创建驱动器
//
// 参数：
//   - config: 会话参数
//   - tickInterval: 计时脉冲周期（秒），<= 0 时使用默认值
//   - rng: 随机源，nil 时使用非确定性随机源
func NewSessionDriver(config SessionConfig, tickInterval float64, rng *rand.Rand) *SessionDriver {
	scheduler := NewScheduler()
	return &SessionDriver{
		session:   NewSession(config, scheduler, rng),
		scheduler: scheduler,
		ticker:    NewTickSource(tickInterval),
	}
}

// Update 推进一帧
//
// 先执行到期的移除回调（可能触发 Cleared 并停止计时），再按计时器状态产出脉冲。
func (d *SessionDriver) Update(deltaTime float64) {
	d.scheduler.Advance(deltaTime)

	if gen := d.session.Generation(); gen != d.lastGeneration {
		d.lastGeneration = gen
		d.ticker.Reset()
	}

	ticks := d.ticker.Advance(deltaTime, d.session.TimerRunning())
	for i := 0; i < ticks; i++ {
		d.session.Tick()
	}
}

// Session 返回被驱动的会话
func (d *SessionDriver) Session() *Session {
	return d.session
}

// Scheduler 返回延迟调度器
func (d *SessionDriver) Scheduler() *Scheduler {
	return d.scheduler
}

// SessionConfigFromGameConfig 把配置文件中的数值换算为会话参数
func SessionConfigFromGameConfig(cfg *config.GameConfig) SessionConfig {
	return SessionConfig{
		Bounds: Bounds{
			Width:  cfg.Spawn.Width,
			Height: cfg.Spawn.Height,
		},
		Layout: LayoutOptions{
			MaxTargets: cfg.Rules.MaxTargets,
			Shuffle:    cfg.Rules.Shuffle,
		},
		RemovalDelay: cfg.RemovalDelaySeconds(),
	}
}

// NewSessionDriverFromConfig 按配置文件创建驱动器
func NewSessionDriverFromConfig(cfg *config.GameConfig, rng *rand.Rand) *SessionDriver {
	return NewSessionDriver(SessionConfigFromGameConfig(cfg), cfg.TickIntervalSeconds(), rng)
}

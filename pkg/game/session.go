package game

import (
	"fmt"
	"log"
	"math/rand/v2"
)

// Status 会话状态
type Status int

const (
	// StatusNotStarted 尚未开始（或已重置）
	StatusNotStarted Status = iota
	// StatusInProgress 进行中，计时器运行
	StatusInProgress
	// StatusCleared 按顺序清空了所有目标
	StatusCleared
	// StatusFailed 点错了顺序
	StatusFailed
)

// String 返回状态名称（用于日志）
func (s Status) String() string {
	switch s {
	case StatusNotStarted:
		return "NotStarted"
	case StatusInProgress:
		return "InProgress"
	case StatusCleared:
		return "Cleared"
	case StatusFailed:
		return "Failed"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// IsTerminal 是否为终止状态（只能通过 Restart 离开）
func (s Status) IsTerminal() bool {
	return s == StatusCleared || s == StatusFailed
}

// Target 一个可点击的编号目标
type Target struct {
	ID       int     // 编号，单局内唯一，取值 1..N
	Selected bool    // 是否已被正确点击（等待移除）
	Top      float64 // 纵向偏移（像素），创建后不变
	Left     float64 // 横向偏移（像素），创建后不变
}

// SelectResult 一次点击的处理结果
type SelectResult int

const (
	// SelectIgnored 点击被忽略（会话未进行，或目标已选中/已移除）
	SelectIgnored SelectResult = iota
	// SelectHit 点中了期望的下一个编号
	SelectHit
	// SelectMiss 点错顺序，会话失败
	SelectMiss
)

// String 返回结果名称（用于日志）
func (r SelectResult) String() string {
	switch r {
	case SelectHit:
		return "Hit"
	case SelectMiss:
		return "Miss"
	default:
		return "Ignored"
	}
}

// DefaultRemovalDelay 选中后到移除的延迟（秒）
const DefaultRemovalDelay = 0.3

// SessionConfig 会话参数
type SessionConfig struct {
	Bounds       Bounds        // 目标坐标范围
	Layout       LayoutOptions // 数量上限与显示顺序
	RemovalDelay float64       // 选中后移除的延迟（秒）
}

// DefaultSessionConfig 返回默认参数：300x300 坐标范围、300ms 移除延迟
func DefaultSessionConfig() SessionConfig {
	return SessionConfig{
		Bounds:       Bounds{Width: 300, Height: 300},
		Layout:       DefaultLayoutOptions(),
		RemovalDelay: DefaultRemovalDelay,
	}
}

// Session 游戏会话状态机
//
// 会话独占目标集合，所有修改都经由 Start / Select / Tick / Restart / Reset。
// 会话不是并发安全的：所有方法以及延迟回调都必须在同一个 goroutine 上执行
// （由 SessionDriver 保证）。
//
// 状态转换：
//   - NotStarted -> InProgress: Start
//   - InProgress -> InProgress: 按顺序点击
//   - InProgress -> Cleared: 最后一个目标被移除
//   - InProgress -> Failed: 点错顺序
//   - 任意状态 -> InProgress / NotStarted: Restart
type Session struct {
	config   SessionConfig
	deferrer Deferrer
	rng      *rand.Rand

	targets        []Target
	count          int
	nextExpectedID int
	elapsedTicks   int
	timerRunning   bool
	status         Status

	// generation 每次 Start/Reset 递增，用于让过期的移除回调失效
	generation uint64

	// OnStatusChange 状态变化回调（可选，用于音效与日志）
	OnStatusChange func(from, to Status)
}

// NewSession 创建会话
//
// 参数：
//   - config: 会话参数
//   - deferrer: 延迟回调调度器（移除目标使用），不能为 nil
//   - rng: 随机源，nil 时使用非确定性随机源
func NewSession(config SessionConfig, deferrer Deferrer, rng *rand.Rand) *Session {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if config.RemovalDelay < 0 {
		config.RemovalDelay = 0
	}
	return &Session{
		config:         config,
		deferrer:       deferrer,
		rng:            rng,
		nextExpectedID: 1,
		status:         StatusNotStarted,
	}
}

// Start 开始新的一局
//
// 正在进行的会话会被完全丢弃，尚未触发的移除回调随之失效。
//
// 返回：
//   - error: count <= 0 时返回包装了 ErrInvalidCount 的错误，且不修改任何状态
func (s *Session) Start(count int) error {
	targets, err := GenerateTargets(count, s.config.Bounds, s.config.Layout, s.rng)
	if err != nil {
		return err
	}

	s.generation++
	s.targets = targets
	s.count = len(targets)
	s.nextExpectedID = 1
	s.elapsedTicks = 0
	s.timerRunning = true
	s.setStatus(StatusInProgress)

	log.Printf("[Session] Started generation %d with %d targets", s.generation, s.count)
	return nil
}

// Select 处理一次对编号 id 的点击
//
// 规则：
//   - 会话不在进行中：忽略
//   - 目标已选中（移除延迟内）或已移除：忽略，不会判负
//   - id 等于期望编号：立即标记选中，期望编号 +1，延迟移除
//   - 其他编号：立即判负，目标不做任何修改
func (s *Session) Select(id int) SelectResult {
	if s.status != StatusInProgress {
		return SelectIgnored
	}

	// 已消耗的编号（选中待移除或已移除）对输入无响应
	if id < s.nextExpectedID && id >= 1 {
		return SelectIgnored
	}

	if id != s.nextExpectedID {
		s.timerRunning = false
		s.setStatus(StatusFailed)
		log.Printf("[Session] Wrong target %d (expected %d), game over", id, s.nextExpectedID)
		return SelectMiss
	}

	idx := s.indexOf(id)
	if idx < 0 {
		// 期望编号必然存在于集合中，除非会话数据被破坏
		log.Printf("[Session] Warning: expected target %d not found", id)
		return SelectIgnored
	}

	s.targets[idx].Selected = true
	// 命中即推进期望编号，不等延迟移除完成：
	// 移除窗口内连续点击下一个编号按新的期望值判定，
	// 再次点击已命中的目标落在期望值之下，被忽略而不算失误
	s.nextExpectedID++

	gen := s.generation
	s.deferrer.After(s.config.RemovalDelay, func() {
		s.removeTarget(gen, id)
	})
	return SelectHit
}

// removeTarget 延迟移除回调
func (s *Session) removeTarget(gen uint64, id int) {
	if gen != s.generation {
		// 会话已重新开始，旧回调作废
		return
	}

	if idx := s.indexOf(id); idx >= 0 {
		s.targets = append(s.targets[:idx], s.targets[idx+1:]...)
	}

	if len(s.targets) == 0 && s.nextExpectedID > s.count && s.status == StatusInProgress {
		s.timerRunning = false
		s.setStatus(StatusCleared)
		log.Printf("[Session] All %d targets cleared in %s", s.count, FormatElapsed(s.elapsedTicks))
	}
}

// Tick 计时器脉冲，仅在计时器运行时累加
func (s *Session) Tick() {
	if !s.timerRunning {
		return
	}
	s.elapsedTicks++
}

// Restart 重新开始
//
// count > 0 时等同于 Start(count)；否则重置为未开始状态。
func (s *Session) Restart(count int) {
	if count > 0 {
		if err := s.Start(count); err == nil {
			return
		}
	}
	s.Reset()
}

// Reset 重置为未开始状态：无目标、计时归零、计时器停止
func (s *Session) Reset() {
	s.generation++
	s.targets = nil
	s.count = 0
	s.nextExpectedID = 1
	s.elapsedTicks = 0
	s.timerRunning = false
	s.setStatus(StatusNotStarted)
}

// Status 返回当前状态
func (s *Session) Status() Status {
	return s.status
}

// Targets 返回当前目标集合的副本（按显示顺序）
func (s *Session) Targets() []Target {
	out := make([]Target, len(s.targets))
	copy(out, s.targets)
	return out
}

// NextExpectedID 返回下一个允许点击的编号
func (s *Session) NextExpectedID() int {
	return s.nextExpectedID
}

// ElapsedTicks 返回已经过的计时脉冲数
func (s *Session) ElapsedTicks() int {
	return s.elapsedTicks
}

// TimerRunning 计时器是否运行
func (s *Session) TimerRunning() bool {
	return s.timerRunning
}

// Count 返回本局目标总数（截断后）
func (s *Session) Count() int {
	return s.count
}

// Remaining 返回仍在场上的目标数量（含移除延迟内的目标）
func (s *Session) Remaining() int {
	return len(s.targets)
}

// Generation 返回当前会话代号
func (s *Session) Generation() uint64 {
	return s.generation
}

// indexOf 返回编号对应的下标，不存在时返回 -1
func (s *Session) indexOf(id int) int {
	for i := range s.targets {
		if s.targets[i].ID == id {
			return i
		}
	}
	return -1
}

// setStatus 切换状态并通知观察者
func (s *Session) setStatus(to Status) {
	from := s.status
	s.status = to
	if s.OnStatusChange != nil {
		s.OnStatusChange(from, to)
	}
}

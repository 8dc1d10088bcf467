package game

import "sort"

// Deferrer 延迟回调的调度接口
// 会话只依赖这个接口，测试和前端都可以注入自己的实现
type Deferrer interface {
	// After 在 delay 秒之后调用 fn（一次性，不可取消）
	After(delay float64, fn func())
}

// scheduledTask 一个待执行的延迟回调
type scheduledTask struct {
	dueTime float64 // 到期时刻（调度器虚拟时间，秒）
	seq     uint64  // 调度顺序，用于同一时刻的稳定排序
	fn      func()
}

// Scheduler 基于 deltaTime 推进的单线程延迟回调调度器
//
// 与 LifetimeSystem 的思路一致：不使用真实定时器，由游戏循环每帧
// 调用 Advance(deltaTime) 推进虚拟时间，到期的回调在调用方的 goroutine
// 中按到期顺序依次执行。因此回调之间、回调与输入事件之间不会交错。
type Scheduler struct {
	now     float64
	nextSeq uint64
	pending []scheduledTask
}

// NewScheduler 创建调度器
func NewScheduler() *Scheduler {
	return &Scheduler{
		pending: make([]scheduledTask, 0, 8),
	}
}

// After 在 delay 秒之后执行 fn；delay < 0 视为 0
func (s *Scheduler) After(delay float64, fn func()) {
	if fn == nil {
		return
	}
	if delay < 0 {
		delay = 0
	}
	s.pending = append(s.pending, scheduledTask{
		dueTime: s.now + delay,
		seq:     s.nextSeq,
		fn:      fn,
	})
	s.nextSeq++
}

// Advance 推进虚拟时间并执行所有到期回调
//
// 回调中新调度的任务如果同样已到期，会在本次 Advance 中一并执行。
func (s *Scheduler) Advance(deltaTime float64) {
	if deltaTime > 0 {
		s.now += deltaTime
	}

	for {
		idx := s.nextDue()
		if idx < 0 {
			return
		}
		task := s.pending[idx]
		s.pending = append(s.pending[:idx], s.pending[idx+1:]...)
		task.fn()
	}
}

// nextDue 返回最早到期任务的下标，没有到期任务时返回 -1
func (s *Scheduler) nextDue() int {
	if len(s.pending) == 0 {
		return -1
	}
	sort.SliceStable(s.pending, func(i, j int) bool {
		if s.pending[i].dueTime != s.pending[j].dueTime {
			return s.pending[i].dueTime < s.pending[j].dueTime
		}
		return s.pending[i].seq < s.pending[j].seq
	})
	if s.pending[0].dueTime > s.now {
		return -1
	}
	return 0
}

// Pending 返回尚未执行的回调数量
func (s *Scheduler) Pending() int {
	return len(s.pending)
}

// Now 返回调度器的虚拟时间（秒）
func (s *Scheduler) Now() float64 {
	return s.now
}

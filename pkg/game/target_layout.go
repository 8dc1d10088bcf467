package game

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
)

// ErrInvalidCount 目标数量输入无效（非整数或不大于 0）
//
// 这是核心逻辑中唯一的错误类型，调用方应提示玩家重新输入，
// 且不得修改任何会话状态。
var ErrInvalidCount = errors.New("please enter a valid number")

// DefaultMaxTargets 单局目标数量上限，超出部分截断
const DefaultMaxTargets = 1000

// Bounds 目标坐标的取值范围（像素）
// Top 取值 [0, Height)，Left 取值 [0, Width)
type Bounds struct {
	Width  float64
	Height float64
}

// LayoutOptions 布局生成参数
type LayoutOptions struct {
	// MaxTargets 数量上限，<= 0 时使用 DefaultMaxTargets
	MaxTargets int
	// Shuffle 是否打乱显示顺序（显示顺序与编号无关）
	Shuffle bool
}

// DefaultLayoutOptions 返回默认布局参数
func DefaultLayoutOptions() LayoutOptions {
	return LayoutOptions{
		MaxTargets: DefaultMaxTargets,
		Shuffle:    true,
	}
}

// ParseCount 解析玩家输入的目标数量
//
// 参数：
//   - text: 输入框中的原始文本（允许首尾空白）
//
// 返回：
//   - int: 解析出的正整数
//   - error: 非十进制整数或不大于 0 时返回包装了 ErrInvalidCount 的错误
func ParseCount(text string) (int, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0, fmt.Errorf("empty count: %w", ErrInvalidCount)
	}

	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, fmt.Errorf("parse count %q: %w", trimmed, ErrInvalidCount)
	}
	if n <= 0 {
		return 0, fmt.Errorf("count %d is not positive: %w", n, ErrInvalidCount)
	}
	return n, nil
}

// ClampCount 将数量限制在上限以内
func ClampCount(count, maxTargets int) int {
	if maxTargets <= 0 {
		maxTargets = DefaultMaxTargets
	}
	if count > maxTargets {
		return maxTargets
	}
	return count
}

// GenerateTargets 生成一局的全部目标
//
// 编号为 1..count（超出上限时截断），每个编号恰好出现一次。
// 坐标在 bounds 内独立均匀分布，不做碰撞规避，允许重叠。
//
// 参数：
//   - count: 目标数量，必须 > 0
//   - bounds: 坐标取值范围
//   - opts: 数量上限与是否打乱
//   - rng: 随机源，不能为 nil
//
// 返回：
//   - []Target: 按显示顺序排列的目标
//   - error: count <= 0 时返回包装了 ErrInvalidCount 的错误
func GenerateTargets(count int, bounds Bounds, opts LayoutOptions, rng *rand.Rand) ([]Target, error) {
	if count <= 0 {
		return nil, fmt.Errorf("generate %d targets: %w", count, ErrInvalidCount)
	}
	count = ClampCount(count, opts.MaxTargets)

	targets := make([]Target, count)
	for i := range targets {
		targets[i] = Target{
			ID:   i + 1,
			Top:  uniform(rng, bounds.Height),
			Left: uniform(rng, bounds.Width),
		}
	}

	if opts.Shuffle {
		rng.Shuffle(len(targets), func(i, j int) {
			targets[i], targets[j] = targets[j], targets[i]
		})
	}

	return targets, nil
}

// uniform 返回 [0, limit) 内的均匀随机数；limit <= 0 时固定为 0
func uniform(rng *rand.Rand, limit float64) float64 {
	if limit <= 0 {
		return 0
	}
	return rng.Float64() * limit
}

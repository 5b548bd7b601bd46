package calculator

import (
	"dispersion/deque"
)

// SteadyRound 返回序列从第几轮（从1开始）起保持稳定：
// 此后每个长度为 window 的滑动窗口内极差都不超过 tolerance。
// 序列不足一个窗口或最终未稳定时返回 -1。
func SteadyRound(values []float64, window int, tolerance float64) int {
	if window < 1 {
		window = 1
	}
	d := deque.NewArrDeque(window)
	steady := -1
	for i, v := range values {
		if d.IsFull() {
			d.RemoveFirst()
		}
		d.AddLast(v)
		if !d.IsFull() {
			continue
		}

		if span(d) <= tolerance {
			if steady == -1 {
				steady = i - window + 2
			}
		} else {
			steady = -1
		}
	}
	return steady
}

// 窗口内最大值与最小值之差
func span(d deque.Deque) float64 {
	lo, hi := d.First(), d.First()
	d.Traverse(func(i int, val float64) {
		if val < lo {
			lo = val
		}
		if val > hi {
			hi = val
		}
	})
	return hi - lo
}

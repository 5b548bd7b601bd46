package calculator

import "errors"

var (
	ErrInvalidContainers = errors.New("container count must be at least 1")
	ErrInvalidRounds     = errors.New("rounds must be at least 1")
	ErrInvalidVolume     = errors.New("water and tool volume must be positive and finite")
	ErrInvalidParams     = errors.New("concentration must be finite")
	ErrTooManyRecords    = errors.New("too many records")
)

// 单次运行的上限：容器数，以及所有容器数合计输出的记录条数
const (
	MaxContainers = 1000000
	MaxRecords    = 10000000
)

// 稳定轮次判定：连续 steadyWindow 轮的浓度极差不超过 steadyTolerance
const (
	steadyWindow    = 10
	steadyTolerance = 1e-3
)

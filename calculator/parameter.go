package calculator

import (
	"fmt"
	"math"

	"dispersion/model"
)

// 校验模拟参数，混合体积作为除数不能为0
func validateParameters(n, rounds int, p model.Params) error {
	if n < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidContainers, n)
	}
	if n > MaxContainers {
		return fmt.Errorf("%w: got %d containers, max %d", ErrTooManyRecords, n, MaxContainers)
	}
	if rounds < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidRounds, rounds)
	}
	if rounds > MaxRecords {
		return fmt.Errorf("%w: got %d rounds, max %d", ErrTooManyRecords, rounds, MaxRecords)
	}
	if !positive(p.WaterVolume) || !positive(p.ToolVolume) {
		return fmt.Errorf("%w: vw=%g vb=%g", ErrInvalidVolume, p.WaterVolume, p.ToolVolume)
	}
	if !finite(p.WaterConcentration) || !finite(p.ToolConcentration) {
		return fmt.Errorf("%w: cg0=%g cb0=%g", ErrInvalidParams, p.WaterConcentration, p.ToolConcentration)
	}
	return nil
}

// 校验整次运行，记录总数 len(containers) * rounds 不超过 MaxRecords
func validateRun(containers []int, rounds int, p model.Params) error {
	if len(containers) == 0 {
		return fmt.Errorf("%w: empty container list", ErrInvalidContainers)
	}
	for _, n := range containers {
		if err := validateParameters(n, rounds, p); err != nil {
			return err
		}
	}
	if rounds > MaxRecords/len(containers) {
		return fmt.Errorf("%w: %d x %d, max %d", ErrTooManyRecords, len(containers), rounds, MaxRecords)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func positive(v float64) bool {
	return finite(v) && v > 0
}

package calculator

import (
	"dispersion/model"
)

// Update 对所有容器做一次混合，cg 原地更新。
// 工具依次经过每个容器，上一个容器混合后的浓度作为下一个容器的来液浓度。
// 调用方保证 len(cg) >= 1。
func Update(vw float64, cg []float64, vb float64, cb float64) {
	vg := vw / float64(len(cg)) // 每个容器中的水量
	vmix := vg + vb
	for g := range cg {
		cg[g] = vg/vmix*cg[g] + vb/vmix*cb
		cb = cg[g]
	}
}

// Simulate 用 n 个容器迭代 rounds 轮，返回每轮结束后最后一个容器的浓度。
// 每一轮工具浓度都从 ToolConcentration 重新开始，容器浓度在轮次之间保留。
func Simulate(n, rounds int, p model.Params) ([]float64, error) {
	if err := validateParameters(n, rounds, p); err != nil {
		return nil, err
	}

	cg := make([]float64, n)
	for g := range cg {
		cg[g] = p.WaterConcentration
	}

	result := make([]float64, 0, rounds)
	for i := 0; i < rounds; i++ {
		Update(p.WaterVolume, cg, p.ToolVolume, p.ToolConcentration)
		result = append(result, cg[n-1])
	}
	return result, nil
}

package calculator

import (
	log "github.com/sirupsen/logrus"

	"dispersion/model"
)

// Run 按 containers 的顺序依次模拟，拼接成 (容器数, 轮次, 浓度) 记录。
// 任一参数不合法或记录总数超过 MaxRecords 时不返回部分结果。
func Run(containers []int, rounds int, p model.Params) ([]model.Record, error) {
	if err := validateRun(containers, rounds, p); err != nil {
		return nil, err
	}

	records := make([]model.Record, 0, len(containers)*rounds)
	for _, n := range containers {
		values, err := Simulate(n, rounds, p)
		if err != nil {
			return nil, err
		}
		for i, v := range values {
			records = append(records, model.Record{
				Containers:    n,
				Iteration:     i + 1,
				Concentration: v,
			})
		}

		log.WithFields(log.Fields{
			"containers":  n,
			"rounds":      rounds,
			"last":        values[len(values)-1],
			"steadyRound": SteadyRound(values, steadyWindow, steadyTolerance),
		}).Info("模拟完成")
	}
	return records, nil
}

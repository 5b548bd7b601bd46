package model

// 默认模拟参数
// 1. 水的总体积 vw，平均分配到每个容器
// 2. 水的初始浓度 cg0
// 3. 工具每次携带的液体体积 vb
// 4. 工具液体混合前的浓度 cb0

const (
	WaterVolume        = 100.0
	WaterConcentration = 0.0
	ToolVolume         = 0.5
	ToolConcentration  = 1.0

	Rounds = 1000
)

// 默认容器数量列表
var Containers = []int{1, 2, 3, 10, 100}

package model

// 模拟参数，一次运行内保持不变
type Params struct {
	WaterVolume        float64 `json:"water_volume"`        // vw
	WaterConcentration float64 `json:"water_concentration"` // cg0
	ToolVolume         float64 `json:"tool_volume"`         // vb
	ToolConcentration  float64 `json:"tool_concentration"`  // cb0
}

func DefaultParams() Params {
	return Params{
		WaterVolume:        WaterVolume,
		WaterConcentration: WaterConcentration,
		ToolVolume:         ToolVolume,
		ToolConcentration:  ToolConcentration,
	}
}

// 每一轮迭代后最后一个容器的浓度
type Record struct {
	Containers    int     `json:"containers"`
	Iteration     int     `json:"iteration"`
	Concentration float64 `json:"concentration"`
}

// 前端设置的运行环境，零值字段表示沿用服务端配置
type Env struct {
	Containers []int   `json:"containers"`
	Rounds     int     `json:"rounds"`
	Params     *Params `json:"params"`
}

// 前后端通信消息结构
type Msg struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

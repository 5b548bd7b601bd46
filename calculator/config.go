package calculator

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"

	"dispersion/model"
)

const DefaultConfigPath = "conf/config.ini"

type Config struct {
	Params     model.Params
	Rounds     int
	Containers []int

	// 输出文件，OutputDir 为空时写入用户主目录
	OutputDir string
	FileName  string

	Addr string

	LogLevel string
}

// LoadConfig 读取 ini 配置，文件不存在时使用默认配置
func LoadConfig(path string) (Config, error) {
	file, err := ini.Load(path)
	if err != nil {
		log.WithError(err).WithField("path", path).Warn("配置文件读取错误，使用默认配置")
		file = ini.Empty()
	}

	cfg, err := loadCfg(file)
	if err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

func loadCfg(file *ini.File) (Config, error) {
	sim := file.Section("simulation")
	cfg := Config{
		Params: model.Params{
			WaterVolume:        sim.Key("WaterVolume").MustFloat64(model.WaterVolume),
			WaterConcentration: sim.Key("WaterConcentration").MustFloat64(model.WaterConcentration),
			ToolVolume:         sim.Key("ToolVolume").MustFloat64(model.ToolVolume),
			ToolConcentration:  sim.Key("ToolConcentration").MustFloat64(model.ToolConcentration),
		},
		Rounds:     sim.Key("Rounds").MustInt(model.Rounds),
		Containers: append([]int(nil), model.Containers...),
		OutputDir:  file.Section("output").Key("Dir").String(),
		FileName:   file.Section("output").Key("FileName").MustString("concentrations.csv"),
		Addr:       file.Section("server").Key("Addr").MustString(":9000"),
		LogLevel:   file.Section("log").Key("Level").MustString("info"),
	}

	if sim.HasKey("Containers") {
		containers, err := sim.Key("Containers").StrictInts(",")
		if err != nil {
			return Config{}, fmt.Errorf("parse simulation.Containers: %w", err)
		}
		cfg.Containers = containers
	}
	return cfg, nil
}

// Validate 检查所有容器数、轮数、体积和记录总数
func (c Config) Validate() error {
	return validateRun(c.Containers, c.Rounds, c.Params)
}

// WithEnv 用前端传入的环境覆盖配置，零值字段保持不变
func (c Config) WithEnv(env model.Env) Config {
	if len(env.Containers) > 0 {
		c.Containers = append([]int(nil), env.Containers...)
	}
	if env.Rounds != 0 {
		c.Rounds = env.Rounds
	}
	if env.Params != nil {
		c.Params = *env.Params
	}
	return c
}

package main

import "time"

const (
	storageMongo  = "mongo"
	storageMemory = "memory"
)

type appConfig struct {
	Env          string        `env:"APP_ENV" envDefault:"development"`
	Name         string        `env:"APP_NAME" envDefault:"mongodemo"`
	LogLevel     string        `env:"LOG_LEVEL"`
	ScenarioFile string        `env:"DEMO_SCENARIO_FILE"`
	Reset        bool          `env:"DEMO_RESET" envDefault:"false"`
	Storage      string        `env:"DEMO_STORAGE" envDefault:"mongo"`
	Timeout      time.Duration `env:"DEMO_TIMEOUT" envDefault:"0s"`
}

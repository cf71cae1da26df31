package config

import (
	"sync"
	"time"
)

type AppConfig struct {
	Name                 string
	Env                  string
	Port                 string
	RateLimitMax         int
	RateLimitWindow      time.Duration
	GenerateRateLimitMax int
}

var (
	appConfig *AppConfig
	appOnce   sync.Once
)

func LoadAppConfig() *AppConfig {
	appOnce.Do(func() {
		s := source()
		appConfig = &AppConfig{
			Name:                 s.GetString("app_name"),
			Env:                  s.GetString("app_env"),
			Port:                 s.GetString("app_port"),
			RateLimitMax:         s.GetInt("app_rate_limit_max"),
			RateLimitWindow:      s.GetDuration("app_rate_limit_window"),
			GenerateRateLimitMax: s.GetInt("app_generate_rate_limit_max"),
		}
	})
	return appConfig
}

func (c *AppConfig) IsProduction() bool {
	return c.Env == "production"
}

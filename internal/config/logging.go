package config

import "sync"

type LogConfig struct {
	Level  string
	Format string
}

var (
	logConfig *LogConfig
	logOnce   sync.Once
)

func LoadLogConfig() *LogConfig {
	logOnce.Do(func() {
		s := source()
		logConfig = &LogConfig{
			Level:  s.GetString("log_level"),
			Format: s.GetString("log_format"),
		}
	})
	return logConfig
}

package config

import (
	"errors"
	"sync"
	"time"

	"github.com/spf13/viper"
)

var (
	v     *viper.Viper
	vOnce sync.Once
)

// source returns the shared viper instance. Keys are flat and match the
// environment variable names, lower-cased (APP_ENV -> app_env).
func source() *viper.Viper {
	vOnce.Do(func() {
		v = viper.New()
		v.SetConfigName("prepmimo")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AutomaticEnv()
		setDefaults(v)

		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				panic("config: cannot read prepmimo.yaml: " + err.Error())
			}
		}
	})
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app_name", "PrepMimo")
	v.SetDefault("app_env", "development")
	v.SetDefault("app_port", ":8080")
	v.SetDefault("app_rate_limit_max", 50)
	v.SetDefault("app_rate_limit_window", time.Minute)
	v.SetDefault("app_generate_rate_limit_max", 10)

	v.SetDefault("db_driver", "postgres")
	v.SetDefault("db_host", "localhost")
	v.SetDefault("db_port", "5432")
	v.SetDefault("db_sslmode", "disable")

	v.SetDefault("llm_provider", "gemini")
	v.SetDefault("llm_timeout", 60*time.Second)
	v.SetDefault("llm_temperature", 0.2)

	v.SetDefault("feedback_max_transcript_chars", 100000)

	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")
}

// reset drops every cached config so the next Load call re-reads the environment.
func reset() {
	vOnce = sync.Once{}
	appOnce = sync.Once{}
	dbOnce = sync.Once{}
	llmOnce = sync.Once{}
	feedbackOnce = sync.Once{}
	logOnce = sync.Once{}
}

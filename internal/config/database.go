package config

import (
	"fmt"
	"sync"
)

type DBConfig struct {
	Driver   string
	DSN      string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

var (
	dbConfig *DBConfig
	dbOnce   sync.Once
)

func LoadDBConfig() *DBConfig {
	dbOnce.Do(func() {
		s := source()
		dbConfig = &DBConfig{
			Driver:   s.GetString("db_driver"),
			DSN:      s.GetString("db_dsn"),
			Host:     s.GetString("db_host"),
			Port:     s.GetString("db_port"),
			User:     s.GetString("db_user"),
			Password: s.GetString("db_password"),
			Name:     s.GetString("db_name"),
			SSLMode:  s.GetString("db_sslmode"),
		}
	})
	return dbConfig
}

// ConnectionString returns DB_DSN when set, otherwise a postgres DSN built from the parts.
func (c *DBConfig) ConnectionString() string {
	if c.DSN != "" {
		return c.DSN
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		c.Host,
		c.User,
		c.Password,
		c.Name,
		c.Port,
		c.SSLMode,
	)
}

package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
)

type Config struct {
	Port     string
	LogLevel string

	// DatabaseURL is a go-sql-driver/mysql DSN, e.g.
	// user:pass@tcp(host:3306)/microloans?parseTime=true
	DatabaseURL string

	// RedisAddr empty disables the idempotency middleware entirely.
	RedisAddr string
	RedisDB   int

	IdempTTLSecs int
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func Load() *Config {
	c := &Config{
		Port:     getenv("PORT", "8080"),
		LogLevel: getenv("LOG_LEVEL", "info"),
		DatabaseURL: getenv("DATABASE_URL",
			"microloans:microloans@tcp(mysql:3306)/microloans?parseTime=true&charset=utf8mb4,utf8"),
		RedisAddr:    os.Getenv("REDIS_ADDR"),
		IdempTTLSecs: 300,
	}
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.RedisDB = n
		}
	}
	if v := os.Getenv("IDEMPOTENCY_TTL_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.IdempTTLSecs = n
		}
	}
	return c
}

func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return errors.New("missing DATABASE_URL")
	}
	if c.Port == "" {
		return errors.New("missing PORT")
	}
	if _, err := net.LookupPort("tcp", c.Port); err != nil {
		return fmt.Errorf("invalid PORT %q: %w", c.Port, err)
	}
	return nil
}

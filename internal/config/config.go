package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
)

const (
	StoreMemory = "memory"
	StoreMySQL  = "mysql"

	SessionsMemory = "memory"
	SessionsRedis  = "redis"
)

type Config struct {
	AppPort string

	// Store selects the patient/scheme backend: memory (default) or mysql.
	Store string

	MySQLHost string
	MySQLPort string
	MySQLDB   string
	MySQLUser string
	MySQLPass string

	// Sessions selects the session backend: memory (default) or redis.
	Sessions  string
	RedisAddr string
	RedisDB   int

	// Idempotency middleware needs redis; it is wired only when enabled.
	IdempotencyOn bool
	IdempTTLSecs  int

	SessionTTLSecs int
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getenvInt(k string, d int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return d
}

func Load() *Config {
	c := &Config{
		AppPort: getenv("APP_PORT", "8080"),
		Store:   getenv("STORE", StoreMemory),

		MySQLHost: getenv("MYSQL_HOST", "mysql"),
		MySQLPort: getenv("MYSQL_PORT", "3306"),
		MySQLDB:   getenv("MYSQL_DB", "swasthya"),
		MySQLUser: getenv("MYSQL_USER", "swasthya"),
		MySQLPass: getenv("MYSQL_PASS", "swasthya"),

		Sessions:  getenv("SESSIONS", SessionsMemory),
		RedisAddr: getenv("REDIS_ADDR", "redis:6379"),
		RedisDB:   getenvInt("REDIS_DB", 0),

		IdempTTLSecs:   getenvInt("IDEMPOTENCY_TTL_SECONDS", 300),
		SessionTTLSecs: getenvInt("SESSION_TTL_SECONDS", 8*3600),
	}
	if v := os.Getenv("IDEMPOTENCY_ENABLED"); v == "1" || v == "true" {
		c.IdempotencyOn = true
	}
	return c
}

func (c *Config) Validate() error {
	if c.AppPort == "" {
		return errors.New("missing APP_PORT")
	}
	switch c.Store {
	case StoreMemory:
	case StoreMySQL:
		if c.MySQLHost == "" || c.MySQLPort == "" || c.MySQLDB == "" || c.MySQLUser == "" {
			return errors.New("missing MySQL config (MYSQL_HOST/PORT/DB/USER)")
		}
		if _, err := net.LookupPort("tcp", c.MySQLPort); err != nil {
			return fmt.Errorf("invalid MYSQL_PORT %q: %w", c.MySQLPort, err)
		}
	default:
		return fmt.Errorf("unknown STORE %q", c.Store)
	}
	switch c.Sessions {
	case SessionsMemory, SessionsRedis:
	default:
		return fmt.Errorf("unknown SESSIONS %q", c.Sessions)
	}
	if (c.Sessions == SessionsRedis || c.IdempotencyOn) && c.RedisAddr == "" {
		return errors.New("missing REDIS_ADDR")
	}
	return nil
}

func (c *Config) mysqlAddr() string { return net.JoinHostPort(c.MySQLHost, c.MySQLPort) }

func (c *Config) MySQLDSN() string {
	// multiStatements=true is handy for migrations; parseTime needed for DATETIME
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?multiStatements=true&parseTime=true&charset=utf8mb4,utf8",
		c.MySQLUser, c.MySQLPass, c.mysqlAddr(), c.MySQLDB)
}

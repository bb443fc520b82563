package config

import "time"

type Config struct {
	Service  *ServiceConfig
	Redis    *RedisConfig
	Presence *PresenceConfig
	Logger   *LoggerConfig
	Tracer   *TracerConfig
}

type ServiceConfig struct {
	Name string
	Env  string
	Addr string
}

// RedisConfig configures the optional presence backend. An empty URL
// means presence stays in process memory.
type RedisConfig struct {
	URL          string
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	PoolSize     int
	MinIdleConns int
	PingTimeout  time.Duration
}

// PresenceConfig controls how long a vendor stays "live" after its last
// location update.
type PresenceConfig struct {
	Window time.Duration
}

type LoggerConfig struct {
	Level  string
	Format string
}

// TracerConfig points at the OTLP collector. An empty address disables
// trace export.
type TracerConfig struct {
	Address string
}

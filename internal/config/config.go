package config

import "time"

type Config struct {
	Global  GlobalConfig  `toml:"global"`
	Log     LogConfig     `toml:"log"`
	Sentry  SentryConfig  `toml:"sentry"`
	Servers ServersConfig `toml:"servers"`
	Stores  StoresConfig  `toml:"stores"`
	Relay   RelayConfig   `toml:"relay"`
}

type GlobalConfig struct {
	Env string `toml:"env" validate:"required,oneof=dev stage prod"`
}

func (c GlobalConfig) IsProduction() bool {
	return c.Env == "prod"
}

type LogConfig struct {
	Level string `toml:"level" validate:"required,oneof=debug info warn error"`
}

type SentryConfig struct {
	Dsn string `toml:"dsn" validate:"omitempty,url"`
}

type ServersConfig struct {
	Debug DebugServerConfig `toml:"debug"`
	Chat  ChatServerConfig  `toml:"chat"`
	Hub   HubServerConfig   `toml:"hub"`
}

type DebugServerConfig struct {
	Addr string `toml:"addr" validate:"required,hostname_port"`
}

type ChatServerConfig struct {
	Addr          string   `toml:"addr" validate:"required,hostname_port"`
	AllowOrigins  []string `toml:"allow_origins" validate:"min=1"`
	MaxBodyLength int      `toml:"max_body_length" validate:"min=1,max=10000"`
}

type HubServerConfig struct {
	Addr          string   `toml:"addr" validate:"required,hostname_port"`
	AllowOrigins  []string `toml:"allow_origins" validate:"min=1"`
	SecWsProtocol string   `toml:"sec_ws_protocol"`
}

type StoresConfig struct {
	Driver    string          `toml:"driver" validate:"required,oneof=psql sqlite"`
	PSQL      PSQLConfig      `toml:"psql"`
	SQLite    SQLiteConfig    `toml:"sqlite"`
	Readiness ReadinessConfig `toml:"readiness"`

	// Credentials never come from the config file.
	Credentials StoreCredentials `toml:"-"`
}

type PSQLConfig struct {
	Addr     string `toml:"addr" validate:"omitempty,hostname_port"`
	Database string `toml:"database"`
	Debug    bool   `toml:"debug"`
}

type SQLiteConfig struct {
	DSN string `toml:"dsn"`
}

type ReadinessConfig struct {
	Attempts int           `toml:"attempts" validate:"min=1,max=100"`
	Interval time.Duration `toml:"interval" validate:"min=10ms,max=1m"`
}

// StoreCredentials are read from the process environment (and .env file, if any).
type StoreCredentials struct {
	User     string `envconfig:"POSTGRES_USER" default:"root" validate:"required"`
	Password string `envconfig:"POSTGRES_PASSWORD" default:"example" validate:"required"`
}

type RelayConfig struct {
	Workers     int             `toml:"workers" validate:"min=1,max=32"`
	QueueSize   int             `toml:"queue_size" validate:"min=1,max=100000"`
	SendTimeout time.Duration   `toml:"send_timeout" validate:"min=100ms,max=1m"`
	Websocket   WebsocketConfig `toml:"websocket"`
	Kafka       KafkaConfig     `toml:"kafka"`
}

type WebsocketConfig struct {
	URL string `toml:"url" validate:"required,url"`
}

type KafkaConfig struct {
	Brokers    []string `toml:"brokers" validate:"dive,hostname_port"`
	Topic      string   `toml:"topic" validate:"required_with=Brokers"`
	EncryptKey string   `toml:"encrypt_key" validate:"omitempty,hexadecimal"`
}

func (c KafkaConfig) Enabled() bool {
	return len(c.Brokers) > 0
}

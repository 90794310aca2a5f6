package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// DefaultGasLimit is the fixed gas limit attached to every recordDayComplete call.
const DefaultGasLimit uint64 = 300000

// submissionRPCCalls is how many node calls one submission makes while the locks are held:
// nonce, gas price, chain id, broadcast.
const submissionRPCCalls = 4

// lockTTLMargin covers the ledger write and Redis round trips after the broadcast.
const lockTTLMargin = time.Minute

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Chain    ChainConfig    `mapstructure:"chain"`
	Verify   VerifyConfig   `mapstructure:"verify"`
	GitHub   GitHubConfig   `mapstructure:"github"`
	Strava   StravaConfig   `mapstructure:"strava"`
	Grader   GraderConfig   `mapstructure:"grader"`
	Lock     LockConfig     `mapstructure:"lock"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	AES      AESConfig      `mapstructure:"aes"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// ChainConfig describes the ledger node and the agent key.
// The chain id is never configured; it is queried from the node on every submission.
type ChainConfig struct {
	RPCURL          string        `mapstructure:"rpc_url"`
	AgentPrivateKey string        `mapstructure:"agent_private_key"` // hex, with or without 0x
	ContractAddress string        `mapstructure:"contract_address"`
	GasLimit        uint64        `mapstructure:"gas_limit"`
	RPCTimeout      time.Duration `mapstructure:"rpc_timeout"`
}

type VerifyConfig struct {
	Timezone string `mapstructure:"timezone"` // civil day boundary for every source
}

type GitHubConfig struct {
	APIURL string `mapstructure:"api_url"`
}

type StravaConfig struct {
	APIURL string `mapstructure:"api_url"`
}

// GraderConfig points at an OpenAI-compatible chat completions endpoint.
type GraderConfig struct {
	APIURL      string        `mapstructure:"api_url"`
	APIKey      string        `mapstructure:"api_key"`
	Model       string        `mapstructure:"model"`
	Temperature float64       `mapstructure:"temperature"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

// LockConfig tunes the Redis locks that serialize the signer and each check-in key.
// Locks are never extended, so TTL must outlive the longest hold; see MinLockTTL.
type LockConfig struct {
	TTL  time.Duration `mapstructure:"ttl"`
	Wait time.Duration `mapstructure:"wait"`
}

type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
	Issuer string        `mapstructure:"issuer"`
}

type AESConfig struct {
	Key string `mapstructure:"key"` // 32-byte hex-encoded key for AES-256
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: HABIT_.
// Nested keys use underscore: HABIT_CHAIN_RPC_URL, HABIT_DATABASE_HOST, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8900)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "habit_agent")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 2)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("chain.rpc_url", "")
	v.SetDefault("chain.agent_private_key", "")
	v.SetDefault("chain.contract_address", "")
	v.SetDefault("chain.gas_limit", DefaultGasLimit)
	v.SetDefault("chain.rpc_timeout", "60s")
	v.SetDefault("verify.timezone", "Asia/Shanghai")
	v.SetDefault("github.api_url", "https://api.github.com")
	v.SetDefault("strava.api_url", "https://www.strava.com/api/v3")
	v.SetDefault("grader.api_url", "https://dashscope.aliyuncs.com/compatible-mode/v1")
	v.SetDefault("grader.api_key", "")
	v.SetDefault("grader.model", "deepseek-v3")
	v.SetDefault("grader.temperature", 0.7)
	v.SetDefault("grader.timeout", "30s")
	v.SetDefault("lock.ttl", "8m")
	v.SetDefault("lock.wait", "2m")
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiry", "24h")
	v.SetDefault("jwt.issuer", "habit-agent")
	v.SetDefault("aes.key", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: HABIT_CHAIN_RPC_URL -> chain.rpc_url
	v.SetEnvPrefix("HABIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required, env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// Validate reports settings the server cannot start without.
func (c *Config) Validate() error {
	var errs []error
	if c.Chain.RPCURL == "" {
		errs = append(errs, errors.New("chain.rpc_url is required"))
	}
	if c.Chain.AgentPrivateKey == "" {
		errs = append(errs, errors.New("chain.agent_private_key is required"))
	}
	if c.Chain.ContractAddress == "" {
		errs = append(errs, errors.New("chain.contract_address is required"))
	}
	if c.Chain.GasLimit == 0 {
		errs = append(errs, errors.New("chain.gas_limit must be positive"))
	}
	if floor := c.MinLockTTL(); c.Lock.TTL < floor {
		errs = append(errs, fmt.Errorf("lock.ttl %s must be at least %s (lock.wait + %d x chain.rpc_timeout + %s)",
			c.Lock.TTL, floor, submissionRPCCalls, lockTTLMargin))
	}
	if _, err := time.LoadLocation(c.Verify.Timezone); err != nil {
		errs = append(errs, fmt.Errorf("verify.timezone: %w", err))
	}
	return errors.Join(errs...)
}

// MinLockTTL is the longest a check-in lock can be held: waiting for the signer lock,
// then every node call of the submission running to its timeout, then the ledger write.
// A shorter TTL lets a second instance take the key while the first is still submitting.
func (c *Config) MinLockTTL() time.Duration {
	return c.Lock.Wait + submissionRPCCalls*c.Chain.RPCTimeout + lockTTLMargin
}

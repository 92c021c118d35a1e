package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/klimatr26/booking-hub/internal/domain"
	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

type Config struct {
	Server       ServerConfig       `yaml:"server"       validate:"required"`
	Logger       LoggerConfig       `yaml:"logger"       validate:"required"`
	Gin          GinConfig          `yaml:"gin"          validate:"required"`
	Storage      StorageConfig      `yaml:"storage"      validate:"required"`
	Postgres     PostgresConfig     `yaml:"postgres"     validate:"required"`
	Scheduler    SchedulerConfig    `yaml:"scheduler"    validate:"required"`
	Telegram     TelegramConfig     `yaml:"telegram"`
	Orchestrator OrchestratorConfig `yaml:"orchestrator" validate:"required"`
	Payments     PaymentsConfig     `yaml:"payments"     validate:"required"`
	Providers    ProvidersConfig    `yaml:"providers"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"          env:"SERVER_ADDR"          env-default:":8080" validate:"required"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"SERVER_READ_TIMEOUT"  env-default:"10s"   validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"30s"   validate:"gt=0"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"  env:"SERVER_IDLE_TIMEOUT"  env-default:"60s"   validate:"gt=0"`
}

// LogLevel maps the configured level onto wbf's logger.Level.
func (c LoggerConfig) LogLevel() logger.Level {
	switch c.Level {
	case "debug":
		return logger.DebugLevel
	case "warn":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}

func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog"  validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"  validate:"required,oneof=debug info warn error"`
}

type GinConfig struct {
	Mode string `yaml:"mode" env:"GIN_MODE" env-default:"debug" validate:"required,oneof=debug release test"`
}

const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
)

type StorageConfig struct {
	Driver string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"memory" validate:"required,oneof=memory postgres"`
}

type PostgresConfig struct {
	Host            string        `yaml:"host"              env:"DB_HOST"              env-default:"localhost"    validate:"required"`
	Port            int           `yaml:"port"              env:"DB_PORT"              env-default:"5432"         validate:"required,min=1,max=65535"`
	User            string        `yaml:"user"              env:"DB_USER"              env-default:"postgres"     validate:"required"`
	Password        string        `yaml:"password"          env:"DB_PASSWORD"          env-default:"postgres"     validate:"required"`
	Database        string        `yaml:"database"          env:"DB_NAME"              env-default:"booking_hub"  validate:"required"`
	SSLMode         string        `yaml:"sslmode"           env:"DB_SSLMODE"           env-default:"disable"      validate:"required,oneof=disable require verify-ca verify-full"`
	MaxOpenConns    int           `yaml:"max_open_conns"    env:"DB_MAX_OPEN_CONNS"    env-default:"10"           validate:"min=1"`
	MaxIdleConns    int           `yaml:"max_idle_conns"    env:"DB_MAX_IDLE_CONNS"    env-default:"5"            validate:"min=1"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME" env-default:"5m"           validate:"gt=0"`
}

func (p *PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

type SchedulerConfig struct {
	Interval time.Duration `yaml:"interval" env:"SCHEDULER_INTERVAL" env-default:"30s" validate:"required,gt=0"`
}

type TelegramConfig struct {
	BotToken string `yaml:"bot_token" env:"TELEGRAM_BOT_TOKEN" env-default:""`
}

type OrchestratorConfig struct {
	MaxParallel        int           `yaml:"max_parallel"         env:"ORCH_MAX_PARALLEL"         env-default:"8"     validate:"min=1"`
	DefaultHoldMinutes int           `yaml:"default_hold_minutes" env:"ORCH_DEFAULT_HOLD_MINUTES" env-default:"30"    validate:"min=1"`
	RetryAttempts      int           `yaml:"retry_attempts"       env:"ORCH_RETRY_ATTEMPTS"       env-default:"3"     validate:"min=1,max=10"`
	RetryBaseDelay     time.Duration `yaml:"retry_base_delay"     env:"ORCH_RETRY_BASE_DELAY"     env-default:"200ms" validate:"gt=0"`
}

type PaymentsConfig struct {
	// single-payment authorization limit of the sandbox processor, in the reservation currency
	Limit    string `yaml:"limit"    env:"PAYMENTS_LIMIT"    env-default:"5000" validate:"required,numeric"`
	Currency string `yaml:"currency" env:"PAYMENTS_CURRENCY" env-default:"USD"  validate:"required,len=3"`
}

// ProvidersConfig lists the provider gateways as comma separated entries of the form
// name:type:sandbox or name:type:http:endpoint. A leading "!" registers the provider disabled
// and a trailing "@<duration>" overrides Timeout for that provider.
type ProvidersConfig struct {
	List    string        `yaml:"list"    env:"PROVIDERS"         env-default:"hotels-sandbox:hotel:sandbox,cars-sandbox:car:sandbox,flights-sandbox:flight:sandbox,tables-sandbox:restaurant:sandbox,packages-sandbox:package:sandbox"`
	Timeout time.Duration `yaml:"timeout" env:"PROVIDERS_TIMEOUT" env-default:"5s" validate:"gt=0"`
	Cities  string        `yaml:"cities"  env:"SANDBOX_CITIES"    env-default:"Quito,Guayaquil,Cuenca"`
	Size    int           `yaml:"size"    env:"SANDBOX_SIZE"      env-default:"6"  validate:"min=1"`
}

const (
	KindSandbox = "sandbox"
	KindHTTP    = "http"
)

type ProviderEntry struct {
	Name     string
	Type     domain.ServiceType
	Kind     string
	Endpoint string
	Enabled  bool
	// zero means ProvidersConfig.Timeout
	Timeout  time.Duration
}

// Entries parses List. Duplicate names are rejected.
func (p ProvidersConfig) Entries() ([]ProviderEntry, error) {
	var entries []ProviderEntry
	seen := make(map[string]struct{})

	for _, raw := range strings.Split(p.List, ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}

		enabled := true
		if strings.HasPrefix(raw, "!") {
			enabled = false
			raw = raw[1:]
		}

		var timeout time.Duration
		if at := strings.LastIndex(raw, "@"); at >= 0 {
			d, err := time.ParseDuration(raw[at+1:])
			if err != nil || d <= 0 {
				return nil, fmt.Errorf("provider %q: invalid timeout %q", raw, raw[at+1:])
			}
			timeout = d
			raw = raw[:at]
		}

		parts := strings.SplitN(raw, ":", 4)
		if len(parts) < 3 {
			return nil, fmt.Errorf("provider %q: want name:type:kind", raw)
		}

		entry := ProviderEntry{
			Name:    parts[0],
			Type:    domain.ServiceType(parts[1]),
			Kind:    parts[2],
			Enabled: enabled,
			Timeout: timeout,
		}
		if entry.Name == "" {
			return nil, fmt.Errorf("provider %q: empty name", raw)
		}
		if !entry.Type.Valid() {
			return nil, fmt.Errorf("provider %q: unknown service type %q", entry.Name, parts[1])
		}

		switch entry.Kind {
		case KindSandbox:
		case KindHTTP:
			if len(parts) < 4 || parts[3] == "" {
				return nil, fmt.Errorf("provider %q: http provider needs an endpoint", entry.Name)
			}
			entry.Endpoint = parts[3]
		default:
			return nil, fmt.Errorf("provider %q: unknown kind %q", entry.Name, entry.Kind)
		}

		if _, dup := seen[entry.Name]; dup {
			return nil, fmt.Errorf("provider %q: duplicate name", entry.Name)
		}
		seen[entry.Name] = struct{}{}
		entries = append(entries, entry)
	}

	return entries, nil
}

// TimeoutFor returns the entry's own timeout, falling back to the shared one.
func (p ProvidersConfig) TimeoutFor(entry ProviderEntry) time.Duration {
	if entry.Timeout > 0 {
		return entry.Timeout
	}
	return p.Timeout
}

func (p ProvidersConfig) CityList() []string {
	var cities []string
	for _, c := range strings.Split(p.Cities, ",") {
		if c = strings.TrimSpace(c); c != "" {
			cities = append(cities, c)
		}
	}
	return cities
}

// Load reads an optional .env file and then the environment.
func Load() (*Config, error) {
	// a missing .env is fine, the environment alone is enough
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if _, err := cfg.Providers.Entries(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

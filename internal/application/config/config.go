package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strings"
	"time"

	"login_checker/internal/domain/adaptors"

	"github.com/joho/godotenv"
)

const (
	DefaultLoginPageMarker = "login.php"
	DefaultRequestTimeout  = 30 * time.Second
	DefaultSinkCell        = "A1"

	SinkLog = "log"
	SinkCSV = "csv"
	SinkSQL = "sql"
)

type AppConfig struct {
	LogLevel    string
	DebugMode   bool
	RunOnce     bool
	MetricsHost string
	Login       LoginConfig
	Sink        SinkConfig
}

type LoginConfig struct {
	TargetURL      string
	PageMarker     string
	RequestTimeout time.Duration
	// Username and Password are injected from the environment and are only
	// required when RunOnce is set.
	Username string
	Password string
}

type SinkConfig struct {
	Type      string
	CSVPath   string
	Cell      string
	SQLDriver string
	SQLDSN    string
}

func NewAppConfig() (*AppConfig, error) {
	return NewAppConfigFrom(`config.env`)
}

// NewAppConfigFrom loads path into the environment when it exists and then
// builds the config from the environment.
func NewAppConfigFrom(path string) (*AppConfig, error) {
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	cfg := AppConfig{}
	cfg.LogLevel = os.Getenv("APP_LOG_LEVEL")
	cfg.DebugMode = os.Getenv("APP_ENABLE_DEBUG") == "true"
	cfg.RunOnce = os.Getenv("APP_RUN_ONCE") == "true"
	cfg.MetricsHost = os.Getenv("HTTP_APP_METRICS_HOST")

	cfg.Login.TargetURL = os.Getenv("LOGIN_TARGET_URL")
	cfg.Login.PageMarker = getEnvOrDefault("LOGIN_PAGE_MARKER", DefaultLoginPageMarker)
	cfg.Login.Username = os.Getenv("LOGIN_USERNAME")
	cfg.Login.Password = os.Getenv("LOGIN_PASSWORD")

	var errMsg []string
	cfg.Login.RequestTimeout = DefaultRequestTimeout
	if raw := os.Getenv("LOGIN_REQUEST_TIMEOUT"); raw != "" {
		dur, err := time.ParseDuration(raw)
		if err != nil {
			errMsg = append(errMsg, fmt.Sprintf(`LOGIN_REQUEST_TIMEOUT: invalid duration format: %v`, err))
		} else {
			cfg.Login.RequestTimeout = dur
		}
	}

	cfg.Sink.Type = getEnvOrDefault("RESULT_SINK", SinkLog)
	cfg.Sink.CSVPath = os.Getenv("RESULT_SINK_CSV_PATH")
	cfg.Sink.Cell = getEnvOrDefault("RESULT_SINK_CELL", DefaultSinkCell)
	cfg.Sink.SQLDriver = os.Getenv("RESULT_SINK_SQL_DRIVER")
	cfg.Sink.SQLDSN = os.Getenv("RESULT_SINK_SQL_DSN")

	errMsg = append(errMsg, validate(&cfg)...)
	if len(errMsg) != 0 {
		return nil, fmt.Errorf(`validation failed: %s`, strings.Join(errMsg, "\n"))
	}

	return &cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func validate(cfg *AppConfig) []string {
	var errMsg []string
	if cfg.LogLevel == "" {
		errMsg = append(errMsg, `log level is empty`)
	} else if !adaptors.LogLevel(strings.ToLower(cfg.LogLevel)).Valid() {
		errMsg = append(errMsg, fmt.Sprintf(`log level %q is unknown`, cfg.LogLevel))
	}

	if cfg.MetricsHost == "" && !cfg.RunOnce {
		errMsg = append(errMsg, `metrics host is empty`)
	}

	if cfg.Login.TargetURL == "" {
		errMsg = append(errMsg, `login target url is empty`)
	} else if u, err := url.Parse(cfg.Login.TargetURL); err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		errMsg = append(errMsg, `login target url is invalid`)
	}

	if cfg.Login.RequestTimeout < 0 {
		errMsg = append(errMsg, `login request timeout is negative`)
	}

	// credentials are only taken from the environment for the one-shot run;
	// the http api receives them per request
	if cfg.RunOnce && cfg.Login.Username == "" {
		errMsg = append(errMsg, `login username is empty`)
	}

	switch cfg.Sink.Type {
	case SinkLog:
	case SinkCSV:
		if cfg.Sink.CSVPath == "" {
			errMsg = append(errMsg, `csv sink path is empty`)
		}
	case SinkSQL:
		if cfg.Sink.SQLDriver == "" {
			errMsg = append(errMsg, `sql sink driver is empty`)
		}
		if cfg.Sink.SQLDSN == "" {
			errMsg = append(errMsg, `sql sink dsn is empty`)
		}
	default:
		errMsg = append(errMsg, fmt.Sprintf(`result sink %q is unknown`, cfg.Sink.Type))
	}

	return errMsg
}

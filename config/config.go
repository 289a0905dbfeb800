package config

import (
	"fmt"
	"log"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment variables or .env file.
//
// It is composed of smaller structs that represent different concerns of the system:
// the HTTP server, market rules and data, the persistence backend and CSV export.
//
// Example YAML/ENV equivalent:
//
//	SERVER_PORT=8080
//	INITIAL_CASH=1000000
//	PERSISTENCE_BACKEND=memory
//	GITHUB_REPO=user/brvm-portfolio
//	POSTGRES_HOST=localhost
type Config struct {
	Server      ServerConfig      // HTTP server configuration
	Market      MarketConfig      // Market rules and instrument data
	Persistence PersistenceConfig // State persistence backend
	Export      ExportConfig      // CSV export settings
}

// ServerConfig holds HTTP server settings such as the port to listen on.
type ServerConfig struct {
	Port string // The TCP port the HTTP server will listen on (e.g., "8080")
}

// MarketConfig defines the regulated market parameters and instrument data source.
//
// Fields:
//   - DataFile: optional CSV file with the instrument catalog; empty uses the built-in BRVM catalog.
//   - Timezone: IANA location the trading window is evaluated in (Abidjan trades on UTC).
//   - InitialCash: opening cash balance of the investor account, in FCFA.
//   - TradingOpen / TradingClose: session bounds as "HH:MM".
//   - TradingDays: Monday through Friday; not configurable.
//   - SettlementLagDays: calendar days between execution and settlement (J+3).
//   - StaticBandPercent: half-width of the static price band around the reference price.
//   - CommissionRate: proportional brokerage fee on gross amount.
//   - MinCommission: commission floor in FCFA.
//   - MaxOrderVolumeFraction: buy-side liquidity cap as a fraction of average daily volume.
//   - MinLotSize: order quantities must be positive multiples of this.
type MarketConfig struct {
	DataFile               string
	Timezone               string
	InitialCash            float64
	TradingOpen            string
	TradingClose           string
	SettlementLagDays      int
	StaticBandPercent      float64
	CommissionRate         float64
	MinCommission          float64
	MaxOrderVolumeFraction float64
	MinLotSize             int64
}

// PersistenceConfig selects and parameterizes the state store backend.
//
// Backend is one of "memory", "github" or "postgres".
type PersistenceConfig struct {
	Backend  string
	GitHub   GitHubConfig
	Postgres PostgresConfig
}

// GitHubConfig defines the contents-API target used by the github backend.
//
// Fields:
//   - Token: personal access token with contents read/write scope.
//   - Repo: "owner/name" of the repository holding the state file.
//   - Branch: branch the state file lives on.
//   - Path: path of the JSON state file inside the repository.
//   - APIURL: API base URL, override for GitHub Enterprise or tests.
type GitHubConfig struct {
	Token  string
	Repo   string
	Branch string
	Path   string
	APIURL string
}

// PostgresConfig defines connection details for PostgreSQL.
//
// Fields:
//   - Host: hostname of the database server.
//   - Port: port number of the database server (default 5432).
//   - User: username for authentication.
//   - Password: password for authentication.
//   - DBName: target database name.
//   - SSLMode: SSL mode (e.g., "disable", "require").
//   - URL: computed DSN used by database/sql to connect.
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	URL      string
}

// ExportConfig holds settings for the CSV export mode.
type ExportConfig struct {
	Dir     string // target directory for exported CSV files
	Workers int    // bounded concurrency for report writers
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and used throughout the application.
// All services should import this package and read from AppConfig instead of
// reloading environment variables directly.
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Behavior:
//   - Sets defaults for all fields; the BRVM rule book values are the defaults.
//   - Reads environment variables automatically with viper.AutomaticEnv().
//   - Constructs the PostgreSQL connection string (DSN).
//   - Calls validateConfig() to ensure required fields are present and sane.
//
// Fatal exit:
//   - If required variables are missing or out of range, validateConfig()
//     terminates the app with a descriptive log message.
func LoadConfig() {
	// Default values
	viper.SetDefault("SERVER_PORT", "8080")

	viper.SetDefault("MARKET_DATA_FILE", "")
	viper.SetDefault("MARKET_TIMEZONE", "UTC")
	viper.SetDefault("INITIAL_CASH", 1_000_000)
	viper.SetDefault("TRADING_OPEN", "08:00")
	viper.SetDefault("TRADING_CLOSE", "15:30")
	viper.SetDefault("SETTLEMENT_LAG_DAYS", 3)
	viper.SetDefault("STATIC_BAND_PERCENT", 0.075)
	viper.SetDefault("COMMISSION_RATE", 0.006)
	viper.SetDefault("MIN_COMMISSION", 5000)
	viper.SetDefault("MAX_ORDER_VOLUME_FRACTION", 0.10)
	viper.SetDefault("MIN_LOT_SIZE", 1)

	viper.SetDefault("PERSISTENCE_BACKEND", "memory")
	viper.SetDefault("GITHUB_TOKEN", "")
	viper.SetDefault("GITHUB_REPO", "")
	viper.SetDefault("GITHUB_BRANCH", "main")
	viper.SetDefault("GITHUB_STATE_PATH", "portfolio_data.json")
	viper.SetDefault("GITHUB_API_URL", "https://api.github.com")

	viper.SetDefault("POSTGRES_HOST", "localhost")
	viper.SetDefault("POSTGRES_PORT", 5432)
	viper.SetDefault("POSTGRES_USER", "postgres")
	viper.SetDefault("POSTGRES_PASSWORD", "postgres")
	viper.SetDefault("POSTGRES_DB", "brvmsim")
	viper.SetDefault("POSTGRES_SSLMODE", "disable")

	viper.SetDefault("EXPORT_DIR", "export")
	viper.SetDefault("EXPORT_WORKERS", 3)

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	// Read environment variables automatically
	viper.AutomaticEnv()

	// Populate global config instance
	AppConfig = Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
		},
		Market: MarketConfig{
			DataFile:               viper.GetString("MARKET_DATA_FILE"),
			Timezone:               viper.GetString("MARKET_TIMEZONE"),
			InitialCash:            viper.GetFloat64("INITIAL_CASH"),
			TradingOpen:            viper.GetString("TRADING_OPEN"),
			TradingClose:           viper.GetString("TRADING_CLOSE"),
			SettlementLagDays:      viper.GetInt("SETTLEMENT_LAG_DAYS"),
			StaticBandPercent:      viper.GetFloat64("STATIC_BAND_PERCENT"),
			CommissionRate:         viper.GetFloat64("COMMISSION_RATE"),
			MinCommission:          viper.GetFloat64("MIN_COMMISSION"),
			MaxOrderVolumeFraction: viper.GetFloat64("MAX_ORDER_VOLUME_FRACTION"),
			MinLotSize:             viper.GetInt64("MIN_LOT_SIZE"),
		},
		Persistence: PersistenceConfig{
			Backend: viper.GetString("PERSISTENCE_BACKEND"),
			GitHub: GitHubConfig{
				Token:  viper.GetString("GITHUB_TOKEN"),
				Repo:   viper.GetString("GITHUB_REPO"),
				Branch: viper.GetString("GITHUB_BRANCH"),
				Path:   viper.GetString("GITHUB_STATE_PATH"),
				APIURL: viper.GetString("GITHUB_API_URL"),
			},
			Postgres: PostgresConfig{
				Host:     viper.GetString("POSTGRES_HOST"),
				Port:     viper.GetInt("POSTGRES_PORT"),
				User:     viper.GetString("POSTGRES_USER"),
				Password: viper.GetString("POSTGRES_PASSWORD"),
				DBName:   viper.GetString("POSTGRES_DB"),
				SSLMode:  viper.GetString("POSTGRES_SSLMODE"),
			},
		},
		Export: ExportConfig{
			Dir:     viper.GetString("EXPORT_DIR"),
			Workers: viper.GetInt("EXPORT_WORKERS"),
		},
	}

	// Construct Postgres DSN (used by database/sql)
	AppConfig.Persistence.Postgres.URL = fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		AppConfig.Persistence.Postgres.User,
		AppConfig.Persistence.Postgres.Password,
		AppConfig.Persistence.Postgres.Host,
		AppConfig.Persistence.Postgres.Port,
		AppConfig.Persistence.Postgres.DBName,
		AppConfig.Persistence.Postgres.SSLMode,
	)

	// Validate critical fields
	validateConfig()
}

// validateConfig ensures required variables are present and within range,
// terminating the application if they are not.
//
// This avoids unexpected runtime failures due to incomplete configuration.
//
// Behavior:
//   - Checks each critical field of AppConfig.
//   - Collects offending ones in a slice.
//   - If any are bad, logs them and terminates the app with log.Fatalf().
func validateConfig() {
	var missing []string

	if AppConfig.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if AppConfig.Market.InitialCash < 0 {
		missing = append(missing, "INITIAL_CASH (negative)")
	}
	if b := AppConfig.Market.StaticBandPercent; b <= 0 || b >= 1 {
		missing = append(missing, "STATIC_BAND_PERCENT (must be in (0,1))")
	}
	if AppConfig.Market.CommissionRate < 0 {
		missing = append(missing, "COMMISSION_RATE (negative)")
	}
	if AppConfig.Market.MinCommission < 0 {
		missing = append(missing, "MIN_COMMISSION (negative)")
	}
	if f := AppConfig.Market.MaxOrderVolumeFraction; f <= 0 || f > 1 {
		missing = append(missing, "MAX_ORDER_VOLUME_FRACTION (must be in (0,1])")
	}
	if AppConfig.Market.MinLotSize < 1 {
		missing = append(missing, "MIN_LOT_SIZE (must be >= 1)")
	}
	if AppConfig.Market.SettlementLagDays < 0 {
		missing = append(missing, "SETTLEMENT_LAG_DAYS (negative)")
	}

	switch AppConfig.Persistence.Backend {
	case "memory":
	case "github":
		if AppConfig.Persistence.GitHub.Token == "" {
			missing = append(missing, "GITHUB_TOKEN")
		}
		if AppConfig.Persistence.GitHub.Repo == "" {
			missing = append(missing, "GITHUB_REPO")
		}
	case "postgres":
		if AppConfig.Persistence.Postgres.Host == "" {
			missing = append(missing, "POSTGRES_HOST")
		}
		if AppConfig.Persistence.Postgres.Port == 0 {
			missing = append(missing, "POSTGRES_PORT")
		}
		if AppConfig.Persistence.Postgres.User == "" {
			missing = append(missing, "POSTGRES_USER")
		}
		if AppConfig.Persistence.Postgres.Password == "" {
			missing = append(missing, "POSTGRES_PASSWORD")
		}
		if AppConfig.Persistence.Postgres.DBName == "" {
			missing = append(missing, "POSTGRES_DB")
		}
	default:
		missing = append(missing, "PERSISTENCE_BACKEND (must be memory|github|postgres)")
	}

	if len(missing) > 0 {
		log.Fatalf("❌ Missing or invalid environment variables: %v\n", missing)
	}
}

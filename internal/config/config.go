package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration (env + Viper).
type Config struct {
	Env                 string
	Port                string
	OrgCSVPath          string // local path of the organizations CSV (default data/organizations.csv)
	OrgCSVURL           string // optional HTTP source; takes precedence over OrgCSVPath when set
	DatabaseURL         string // Supabase/Postgres pooler DSN; empty means local sqlite fallback
	SQLitePath          string
	RedisURL            string // optional; health traffic stats are skipped when empty
	FrontendURLEndsWith string
	DevPassword         string
	HealthAdminKey      string
	AdminSyncKey        string // required header value for POST admin-sync
}

// Load loads config from env and optional .env file.
func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	port := viper.GetString("PORT")
	if port == "" {
		port = "8080"
	}
	env := viper.GetString("APP_ENV")
	if env == "" {
		env = "development"
	}

	csvPath := viper.GetString("ORG_CSV_PATH")
	if csvPath == "" {
		csvPath = "data/organizations.csv"
	}
	sqlitePath := viper.GetString("SQLITE_PATH")
	if sqlitePath == "" {
		sqlitePath = "orgboard.db"
	}

	return &Config{
		Env:                 env,
		Port:                port,
		OrgCSVPath:          csvPath,
		OrgCSVURL:           viper.GetString("ORG_CSV_URL"),
		DatabaseURL:         viper.GetString("DATABASE_URL"),
		SQLitePath:          sqlitePath,
		RedisURL:            viper.GetString("REDIS_URL"),
		FrontendURLEndsWith: viper.GetString("FRONTEND_URL_ENDS_WITH"),
		DevPassword:         viper.GetString("DEV_PASSWORD"),
		HealthAdminKey:      viper.GetString("HEALTH_ADMIN_KEY"),
		AdminSyncKey:        viper.GetString("ADMIN_SYNC_KEY"),
	}, nil
}

package config

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Drivers soportados para las bases destino (Stock y Store).
const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)

// Config agrupa la configuración del job (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App   AppConfig
	DNS   SourceDBConfig
	Stock DBConfig
	Store DBConfig
	Sync  SyncConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// SourceDBConfig configuración del SQL Server de origen (DNS).
type SourceDBConfig struct {
	Server                 string
	Port                   int
	User                   string
	Password               string
	Database               string // opcional: las vistas suelen venir calificadas (MAZKO.dbo.vista)
	Encrypt                bool
	TrustServerCertificate bool
	AccessoriesView        string
	MaintenancesView       string
}

// DSN devuelve el connection string sqlserver:// con URL encoding para caracteres especiales.
func (c SourceDBConfig) DSN() string {
	q := url.Values{}
	if c.Database != "" {
		q.Set("database", c.Database)
	}
	if c.Encrypt {
		q.Set("encrypt", "true")
	} else {
		q.Set("encrypt", "disable")
	}
	q.Set("TrustServerCertificate", strconv.FormatBool(c.TrustServerCertificate))

	u := &url.URL{
		Scheme:   "sqlserver",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Server, c.Port),
		RawQuery: q.Encode(),
	}
	return u.String()
}

// DBConfig configuración de una base destino (MySQL o PostgreSQL).
type DBConfig struct {
	Driver   string // mysql | postgres
	Server   string
	Port     int // 0 = puerto por defecto del driver
	User     string
	Password string
	Name     string
	Table    string // tabla destino, puede ir calificada con el esquema
}

// Addr devuelve host:port aplicando el puerto por defecto del driver.
func (c DBConfig) Addr() string {
	port := c.Port
	if port == 0 {
		port = 3306
		if c.Driver == DriverPostgres {
			port = 5432
		}
	}
	return fmt.Sprintf("%s:%d", c.Server, port)
}

// PostgresDSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) PostgresDSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     c.Addr(),
		Path:     "/" + c.Name,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

// SyncConfig opciones del proceso de sincronización.
type SyncConfig struct {
	// LegacyExitCode fuerza exit code 0 aunque la corrida falle (comportamiento histórico).
	LegacyExitCode bool
}

var identifierRe = regexp.MustCompile(`^[A-Za-z0-9_.]+$`)

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: DB_DNS_SERVER, DB_STOCK_USER, DB_STORE_TABLE, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "dns-sync"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		DNS: SourceDBConfig{
			Server:                 getString(v, "DB_DNS_SERVER", "localhost"),
			Port:                   getInt(v, "DB_DNS_PORT", 1433),
			User:                   getString(v, "DB_DNS_USER", ""),
			Password:               getString(v, "DB_DNS_PASSWORD", ""),
			Database:               getString(v, "DB_DNS_NAME", ""),
			Encrypt:                getBool(v, "DB_DNS_ENCRYPT", false),
			TrustServerCertificate: getBool(v, "DB_DNS_TRUST_SERVER_CERTIFICATE", true),
			AccessoriesView:        getString(v, "DB_DNS_ACCESSORIES_VIEW", "MAZKO.dbo.v_accesorios_stock"),
			MaintenancesView:       getString(v, "DB_DNS_MAINTENANCES_VIEW", "MAZKO.dbo.v_tall_crmv_planes_mantenimiento"),
		},
		Stock: loadDB(v, "DB_STOCK", "load_mazko.wp_wc_product_meta_lookup"),
		Store: loadDB(v, "DB_STORE", "store_mazko.mantenimiento"),
		Sync: SyncConfig{
			LegacyExitCode: getBool(v, "SYNC_LEGACY_EXIT_CODE", false),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadDB(v *viper.Viper, prefix, table string) DBConfig {
	return DBConfig{
		Driver:   strings.ToLower(getString(v, prefix+"_DRIVER", DriverMySQL)),
		Server:   getString(v, prefix+"_SERVER", "localhost"),
		Port:     getInt(v, prefix+"_PORT", 0),
		User:     getString(v, prefix+"_USER", ""),
		Password: getString(v, prefix+"_PASSWORD", ""),
		Name:     getString(v, prefix+"_NAME", ""),
		Table:    getString(v, prefix+"_TABLE", table),
	}
}

// Validate revisa drivers y nombres de vistas/tablas, que se interpolan en el SQL.
func (c *Config) Validate() error {
	for name, drv := range map[string]string{"DB_STOCK_DRIVER": c.Stock.Driver, "DB_STORE_DRIVER": c.Store.Driver} {
		if drv != DriverMySQL && drv != DriverPostgres {
			return fmt.Errorf("config: %s inválido %q (soportados: mysql, postgres)", name, drv)
		}
	}
	idents := map[string]string{
		"DB_DNS_ACCESSORIES_VIEW":  c.DNS.AccessoriesView,
		"DB_DNS_MAINTENANCES_VIEW": c.DNS.MaintenancesView,
		"DB_STOCK_TABLE":           c.Stock.Table,
		"DB_STORE_TABLE":           c.Store.Table,
	}
	for name, ident := range idents {
		if !identifierRe.MatchString(ident) {
			return fmt.Errorf("config: %s inválido %q", name, ident)
		}
	}
	return nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		return v.GetBool(key)
	}
	return def
}

package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App       AppConfig
	HTTP      HTTPConfig
	Directory DirectoryConfig
	Session   SessionConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig configuración del servidor HTTP del gateway.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// DirectoryConfig configuración del servicio remoto de directorio (REST).
type DirectoryConfig struct {
	BaseURL        string // ej. http://localhost:9000/api
	TimeoutSeconds int    // timeout del transporte; no hay override por operación
}

// Timeout devuelve el timeout del cliente HTTP saliente.
func (c DirectoryConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// SessionConfig configuración del token de sesión del gateway (cookie firmada).
type SessionConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
	CookieName string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, DIRECTORY_BASE_URL, etc.
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
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "directorio-admin"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 3000),
		},
		Directory: DirectoryConfig{
			BaseURL:        getString(v, "DIRECTORY_BASE_URL", "http://localhost:9000/api"),
			TimeoutSeconds: getInt(v, "DIRECTORY_TIMEOUT_SECONDS", 15),
		},
		Session: SessionConfig{
			Secret:     getString(v, "SESSION_SECRET", ""),
			Expiration: getInt(v, "SESSION_EXPIRATION_MINUTES", 480),
			Issuer:     getString(v, "SESSION_ISSUER", "directorio-admin"),
			CookieName: getString(v, "SESSION_COOKIE_NAME", "directorio_session"),
		},
	}

	return cfg, nil
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
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

// Package config загрузка и валидация конфигурации сервиса из config.toml
package config

import (
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/TPD2004/kenton-car-wash/internal/domain"
)

// Config корневая конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Admin    AdminConfig    `toml:"admin"`
	Schedule ScheduleConfig `toml:"schedule"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN возвращает строку подключения к PostgreSQL
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// AdminConfig настройки доступа к админ-панели.
// SecretHash - bcrypt-хеш общего секрета, сам секрет в конфигурации
// не хранится. Ключи сессионных cookie задаются hex-строками.
type AdminConfig struct {
	SecretHash        string `toml:"secret_hash"`
	SessionHashKey    string `toml:"session_hash_key"`
	SessionBlockKey   string `toml:"session_block_key"`
	SessionTTLMinutes int    `toml:"session_ttl_minutes"`
}

// SessionKeys декодирует hex-ключи сессионных cookie
func (a AdminConfig) SessionKeys() (hashKey, blockKey []byte, err error) {
	hashKey, err = hex.DecodeString(a.SessionHashKey)
	if err != nil {
		return nil, nil, fmt.Errorf("config: invalid session_hash_key: %w", err)
	}
	blockKey, err = hex.DecodeString(a.SessionBlockKey)
	if err != nil {
		return nil, nil, fmt.Errorf("config: invalid session_block_key: %w", err)
	}
	return hashKey, blockKey, nil
}

// SessionTTL возвращает время жизни админ-сессии
func (a AdminConfig) SessionTTL() time.Duration {
	if a.SessionTTLMinutes <= 0 {
		return 12 * time.Hour
	}
	return time.Duration(a.SessionTTLMinutes) * time.Minute
}

// ScheduleConfig недельное расписание работы и часовой пояс бизнеса
type ScheduleConfig struct {
	// Timezone пояс, в котором вычисляется день недели для расписания.
	// День недели клиента и машины роли не играют.
	Timezone string `toml:"timezone"`

	Hours map[string]DayHoursConfig `toml:"hours"`
}

// DayHoursConfig расписание одного дня недели
type DayHoursConfig struct {
	Closed bool `toml:"closed"`
	Start  int  `toml:"start"`
	End    int  `toml:"end"`
}

// weekdayNames имена дней недели в порядке time.Weekday (0=Sunday)
var weekdayNames = [7]string{
	"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday",
}

// Location загружает часовой пояс расписания
func (s ScheduleConfig) Location() (*time.Location, error) {
	tz := s.Timezone
	if tz == "" {
		tz = domain.DefaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("config: invalid schedule timezone %q: %w", tz, err)
	}
	return loc, nil
}

// Weekly собирает domain.WeeklySchedule из конфигурации.
// Требует ровно 7 записей - по одной на каждый день недели.
func (s ScheduleConfig) Weekly() (domain.WeeklySchedule, error) {
	var schedule domain.WeeklySchedule

	if len(s.Hours) == 0 {
		// Расписание не задано - используем дефолтное
		return domain.DefaultWeeklySchedule(), nil
	}

	for day, name := range weekdayNames {
		dayCfg, ok := s.Hours[name]
		if !ok {
			return schedule, fmt.Errorf("config: schedule is missing weekday %q", name)
		}
		if dayCfg.Closed {
			continue
		}
		schedule[day] = &domain.OpeningHours{
			StartHour: dayCfg.Start,
			EndHour:   dayCfg.End,
		}
	}

	for name := range s.Hours {
		if !isKnownWeekday(name) {
			return schedule, fmt.Errorf("config: unknown weekday %q in schedule", name)
		}
	}

	if err := schedule.Validate(); err != nil {
		return schedule, fmt.Errorf("config: %w", err)
	}

	return schedule, nil
}

func isKnownWeekday(name string) bool {
	for _, known := range weekdayNames {
		if strings.EqualFold(name, known) {
			return true
		}
	}
	return false
}

// Load читает и валидирует конфигурацию из toml-файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("config: server.http_port must be positive")
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("config: database.host and database.dbname are required")
	}
	if c.Admin.SecretHash == "" {
		return fmt.Errorf("config: admin.secret_hash is required")
	}
	if c.Admin.SessionHashKey == "" {
		return fmt.Errorf("config: admin.session_hash_key is required")
	}
	if c.Metrics.Enabled && c.Metrics.Path == "" {
		return fmt.Errorf("config: metrics.path is required when metrics are enabled")
	}

	// Расписание и часовой пояс проверяем при загрузке, а не на каждом
	// запросе: некорректная конфигурация должна валить старт сервиса
	if _, err := c.Schedule.Location(); err != nil {
		return err
	}
	if _, err := c.Schedule.Weekly(); err != nil {
		return err
	}

	return nil
}

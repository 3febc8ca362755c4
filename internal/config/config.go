package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/abhisek/skillstars/internal/store"
)

// EnvPrefix prefixes every environment variable, e.g. SKILLSTARS_TIME_UNIT.
const EnvPrefix = "SKILLSTARS"

// Config holds runtime settings for the app and CLI.
type Config struct {
	DBPath        string
	RedisURL      string
	LogFile       string
	LogLevel      string
	TimeUnit      time.Duration
	Seed          uint64
	Sound         bool
	SpeechCommand string
}

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"db":        "db",
	"redis-url": "redis_url",
	"log-file":  "log_file",
	"log-level": "log_level",
	"time-unit": "time_unit",
	"seed":      "seed",
	"speech":    "speech_command",
}

// RegisterFlags adds the persistent flags Load understands.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("db", "", "Path to SQLite database file (overrides SKILLSTARS_DB)")
	fs.String("redis-url", "", "Store progress in Redis instead of SQLite")
	fs.String("log-file", "", "Write logs to this file")
	fs.String("log-level", "info", "Log level (debug, info, warn, error)")
	fs.Duration("time-unit", time.Second, "Length of one timer unit")
	fs.Uint64("seed", 0, "Quiz random seed (0 picks one at random)")
	fs.String("speech", "", "Text-to-speech command, e.g. \"espeak -s 140\"")
	fs.Bool("mute", false, "Start with sound off")
}

// Load reads configuration from an optional .env file, SKILLSTARS_*
// environment variables and the given flags. Flags that were set win.
func Load(fs *pflag.FlagSet) (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	v.SetDefault("db", "")
	v.SetDefault("redis_url", "")
	v.SetDefault("log_file", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("time_unit", "1s")
	v.SetDefault("seed", 0)
	v.SetDefault("sound", true)
	v.SetDefault("speech_command", "")

	if fs != nil {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil && f.Changed {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
		if f := fs.Lookup("mute"); f != nil && f.Changed {
			muted, err := fs.GetBool("mute")
			if err != nil {
				return Config{}, fmt.Errorf("read mute flag: %w", err)
			}
			v.Set("sound", !muted)
		}
	}

	unit, err := time.ParseDuration(v.GetString("time_unit"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid time unit: %w", err)
	}
	if unit <= 0 {
		return Config{}, fmt.Errorf("invalid time unit: %s must be positive", unit)
	}

	level := strings.ToLower(v.GetString("log_level"))
	switch level {
	case "debug", "info", "warn", "error", "disabled":
	default:
		return Config{}, fmt.Errorf("invalid log level %q", level)
	}

	dbPath := v.GetString("db")
	if dbPath == "" {
		dbPath, err = store.DefaultDBPath()
		if err != nil {
			return Config{}, fmt.Errorf("resolve DB path: %w", err)
		}
	} else if err := store.EnsureDir(dbPath); err != nil {
		return Config{}, fmt.Errorf("resolve DB path: %w", err)
	}

	cfg := Config{
		DBPath:        dbPath,
		RedisURL:      v.GetString("redis_url"),
		LogFile:       v.GetString("log_file"),
		LogLevel:      level,
		TimeUnit:      unit,
		Seed:          v.GetUint64("seed"),
		Sound:         v.GetBool("sound"),
		SpeechCommand: v.GetString("speech_command"),
	}

	return cfg, nil
}

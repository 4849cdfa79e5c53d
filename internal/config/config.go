package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel  string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	LogFile   string `yaml:"log-file" env:"LOG_FILE" env-default:"tictactoe.log"`
	SessionID string `yaml:"session-id" env:"SESSION_ID"`
	Audio     Audio  `yaml:"audio"`
	Redis     Redis  `yaml:"redis"`
}

// Audio flags default to false, so a file can only switch sounds off.
type Audio struct {
	// Mute replaces the terminal bell with the silent player.
	Mute bool `yaml:"mute" env:"AUDIO_MUTE"`
	// QuietMenu skips the background cue while the menu is shown.
	QuietMenu bool `yaml:"quiet-menu" env:"AUDIO_QUIET_MENU"`
}

type Redis struct {
	Enabled bool   `yaml:"enabled" env:"REDIS_ENABLED" env-default:"false"`
	Host    string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port    string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	// SnapshotTTL expires abandoned games; zero keeps them.
	SnapshotTTL time.Duration `yaml:"snapshot-ttl" env:"REDIS_SNAPSHOT_TTL"`
}

// MustLoad - load all configurations from the yml file, or from the
// environment alone when the file does not exist.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	case errors.Is(err, fs.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("read config from env: %w", err)
		}
	default:
		return nil, fmt.Errorf("stat config file: %w", err)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

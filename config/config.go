package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const keyEnv = "ENV"
const envLocal = "local"

type Config struct {
	config *viper.Viper
}

func Load(env string) (*Config, error) {

	if len(env) == 0 {
		if env = os.Getenv(keyEnv); len(env) == 0 {
			env = envLocal
		}
	}

	configPath, err := getConfigPath(env)

	viperConfig := viper.New()
	setDefaults(viperConfig)
	if err == nil {
		viperConfig.SetConfigFile(configPath)
		if err := viperConfig.ReadInConfig(); err != nil {
			slog.Warn(fmt.Sprintf("error reading config file, %s", err))
		}
	}
	viperConfig.AutomaticEnv()

	cfg := &Config{
		config: viperConfig,
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("window.width", 1200)
	v.SetDefault("window.height", 800)
	v.SetDefault("window.title", "gametools sandbox")
	v.SetDefault("app.version", "0.0.0")
	v.SetDefault("app.build", "dev")
	v.SetDefault("sandbox.spawninterval_seconds", 1.5)
	v.SetDefault("sandbox.lifetime_seconds", 4.0)
	v.SetDefault("countdown.seconds", 10.0)
	v.SetDefault("log.level", "debug")
}

func (c *Config) GetWindowWidth() int {
	windowWidth := c.config.GetInt("WINDOW_WIDTH")
	if windowWidth == 0 {
		windowWidth = c.config.GetInt("window.width")
	}

	return windowWidth
}

func (c *Config) GetWindowHeight() int {
	windowHeight := c.config.GetInt("WINDOW_HEIGHT")
	if windowHeight == 0 {
		windowHeight = c.config.GetInt("window.height")
	}

	return windowHeight
}

func (c *Config) GetWindowTitle() string {
	windowTitle := c.config.GetString("WINDOW_TITLE")
	if len(windowTitle) == 0 {
		windowTitle = c.config.GetString("window.title")
	}

	return windowTitle
}

func (c *Config) GetAppVersion() string {
	version := c.config.GetString("APP_VERSION")
	if len(version) == 0 {
		version = c.config.GetString("app.version")
	}

	return version
}

func (c *Config) GetAppBuild() string {
	build := c.config.GetString("APP_BUILD")
	if len(build) == 0 {
		build = c.config.GetString("app.build")
	}

	return build
}

func (c *Config) GetSpawnIntervalSeconds() float64 {
	interval := c.config.GetFloat64("SPAWN_INTERVAL_SECONDS")
	if interval == 0 {
		interval = c.config.GetFloat64("sandbox.spawninterval_seconds")
	}

	return interval
}

func (c *Config) GetLifetimeSeconds() float64 {
	lifetime := c.config.GetFloat64("LIFETIME_SECONDS")
	if lifetime == 0 {
		lifetime = c.config.GetFloat64("sandbox.lifetime_seconds")
	}

	return lifetime
}

func (c *Config) GetCountdownSeconds() float64 {
	seconds := c.config.GetFloat64("COUNTDOWN_SECONDS")
	if seconds == 0 {
		seconds = c.config.GetFloat64("countdown.seconds")
	}

	return seconds
}

func (c *Config) GetGizmosEnabled() bool {
	if c.config.IsSet("GIZMOS_ENABLED") {
		return c.config.GetBool("GIZMOS_ENABLED")
	}

	return c.config.GetBool("debug.gizmos")
}

func (c *Config) GetAudioEnabled() bool {
	if c.config.IsSet("AUDIO_ENABLED") {
		return c.config.GetBool("AUDIO_ENABLED")
	}

	return c.config.GetBool("audio.enabled")
}

func (c *Config) GetLogLevel() string {
	level := c.config.GetString("LOG_LEVEL")
	if len(level) == 0 {
		level = c.config.GetString("log.level")
	}

	return level
}

func getProjectRoot() (string, error) {
	currentDir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %w", err)
	}

	for {
		configDir := filepath.Join(currentDir, "config")
		if info, err := os.Stat(configDir); err == nil && info.IsDir() {
			return currentDir, nil
		}

		parent := filepath.Dir(currentDir)

		if parent == currentDir {
			break
		}

		currentDir = parent
	}

	return "", fmt.Errorf("could not find project root (directory containing 'config' folder)")
}

func getConfigPath(env string) (string, error) {
	configFile := fmt.Sprintf("config.%s.yaml", env)

	projectRoot, err := getProjectRoot()
	if err != nil {
		slog.Warn("failed to find project root with config directory, will use environment variables instead", "err", err.Error())
		return "", fmt.Errorf("failed to find project root: %w", err)
	}
	configPath := filepath.Join(projectRoot, "config", configFile)
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		slog.Warn("failed to find config file within config directory, will use environment variables instead", "err", err.Error())
		return "", fmt.Errorf("config file does not exist: %s", configPath)
	}

	return configPath, nil
}

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"sync"
)

// Config represents the carousel configuration
type Config struct {
	// UI preferences
	Theme         string `json:"theme"`
	AllowScroll   bool   `json:"allow_scroll"`
	HideScrollBar bool   `json:"hide_scroll_bar"`
	Gap           int    `json:"gap"`

	// Last focused item, restored on the next start
	FocusedIndex int `json:"focused_index"`

	// Milliseconds of scroll quiet before the centered item is reported
	SettleDelayMS int `json:"settle_delay_ms"`

	// Logging
	Debug     bool   `json:"debug"`
	LogLevel  string `json:"log_level"`
	LogFormat string `json:"log_format"`
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Theme:         "loco",
		AllowScroll:   true,
		HideScrollBar: false,
		Gap:           1,
		SettleDelayMS: 500,
		Debug:         false,
		LogLevel:      "info",
		LogFormat:     "text",
	}
}

// Manager handles configuration loading and saving
type Manager struct {
	mu          sync.Mutex
	projectPath string
	configPath  string
	config      *Config
}

// NewManager creates a new configuration manager
func NewManager(projectPath string) *Manager {
	dir := filepath.Join(projectPath, ".carousel")
	return &Manager{
		projectPath: projectPath,
		configPath:  filepath.Join(dir, "config.json"),
		config:      DefaultConfig(),
	}
}

// Dir returns the .carousel directory
func (m *Manager) Dir() string {
	return filepath.Dir(m.configPath)
}

// LogPath returns where the debug log is written
func (m *Manager) LogPath() string {
	return filepath.Join(m.Dir(), "debug.log")
}

// Load reads the configuration from disk, creating defaults if needed
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := os.MkdirAll(m.Dir(), 0o755); err != nil {
		return fmt.Errorf("failed to create .carousel directory: %w", err)
	}

	if err := m.ensureGitignore(); err != nil {
		return fmt.Errorf("failed to create .gitignore: %w", err)
	}

	if _, err := os.Stat(m.configPath); os.IsNotExist(err) {
		return m.save()
	}

	data, err := os.ReadFile(m.configPath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	// Start from defaults so keys missing on disk keep their default
	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return fmt.Errorf("failed to parse config JSON: %w", err)
	}

	m.expandEnvVars(config)

	m.config = config
	return nil
}

// Save writes the current configuration to disk
func (m *Manager) Save() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.save()
}

func (m *Manager) save() error {
	data, err := json.MarshalIndent(m.config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(m.configPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Get returns the current configuration
func (m *Manager) Get() *Config {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.config
}

// Set updates a configuration value and saves
// Set is safe to call from timer goroutines.
func (m *Manager) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch key {
	case "theme":
		m.config.Theme = value
	case "allow_scroll":
		m.config.AllowScroll = value == "true"
	case "hide_scroll_bar":
		m.config.HideScrollBar = value == "true"
	case "debug":
		m.config.Debug = value == "true"
	case "log_level":
		m.config.LogLevel = value
	case "log_format":
		m.config.LogFormat = value
	case "gap", "settle_delay_ms", "focused_index":
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return fmt.Errorf("invalid value for %s: %q", key, value)
		}
		switch key {
		case "gap":
			m.config.Gap = n
		case "settle_delay_ms":
			m.config.SettleDelayMS = n
		default:
			m.config.FocusedIndex = n
		}
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}

	return m.save()
}

// ensureGitignore creates a .gitignore in .carousel/ so logs stay out of git
func (m *Manager) ensureGitignore() error {
	gitignorePath := filepath.Join(m.Dir(), ".gitignore")

	if _, err := os.Stat(gitignorePath); !os.IsNotExist(err) {
		return nil // Already exists
	}

	gitignoreContent := `# Carousel data directory .gitignore
#
# Config is committed, logs are not

*.log
*.tmp

!config.json
!.gitignore
`

	return os.WriteFile(gitignorePath, []byte(gitignoreContent), 0o644)
}

// expandEnvVars expands environment variables in string config values
func (m *Manager) expandEnvVars(config *Config) {
	config.Theme = m.expandString(config.Theme)
	config.LogLevel = m.expandString(config.LogLevel)
	config.LogFormat = m.expandString(config.LogFormat)
}

var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}|\$([A-Za-z_][A-Za-z0-9_]*)`)

// expandString expands environment variables in a string
// Supports $VAR and ${VAR} syntax
func (m *Manager) expandString(s string) string {
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		var varName string
		if strings.HasPrefix(match, "${") {
			varName = match[2 : len(match)-1]
		} else {
			varName = match[1:]
		}

		if value := os.Getenv(varName); value != "" {
			return value
		}

		// Return original if env var not found
		return match
	})
}

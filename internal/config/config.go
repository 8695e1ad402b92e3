package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"fileList/internal/logger"

	"github.com/BurntSushi/toml"
)

const DefaultPath = "configs/config.toml"

type Config struct {
	Workbook WorkbookConfig `toml:"workbook"`
	SVN      SVNConfig      `toml:"svn"`
	Macro    MacroConfig    `toml:"macro"`
}

type WorkbookConfig struct {
	Path  string `toml:"path"`
	Sheet string `toml:"sheet"`
}

type SVNConfig struct {
	Binary         string   `toml:"binary"`
	Extensions     []string `toml:"extensions"`
	TimeoutSeconds int      `toml:"timeout_seconds"`
}

// Timeout is the per-invocation limit for a single svn process.
func (c SVNConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

type MacroConfig struct {
	ModuleName    string  `toml:"module_name"`
	Procedure     string  `toml:"procedure"`
	ButtonName    string  `toml:"button_name"`
	ButtonCaption string  `toml:"button_caption"`
	ButtonLeft    float64 `toml:"button_left"`
	ButtonTop     float64 `toml:"button_top"`
	ButtonWidth   float64 `toml:"button_width"`
	ButtonHeight  float64 `toml:"button_height"`
}

// Default returns the configuration written when no config file exists.
func Default() *Config {
	return &Config{
		Workbook: WorkbookConfig{
			Path:  "data/FileList.xlsm",
			Sheet: "FileList",
		},
		SVN: SVNConfig{
			Binary:         "svn",
			Extensions:     []string{"c", "h"},
			TimeoutSeconds: 120,
		},
		Macro: MacroConfig{
			ModuleName:    "FileListCompare",
			Procedure:     "CompareVersions",
			ButtonName:    "FileListCompareButton",
			ButtonCaption: "Compare",
			ButtonLeft:    400,
			ButtonTop:     120,
			ButtonWidth:   100,
			ButtonHeight:  50,
		},
	}
}

// LoadConfig loads configuration from the specified config file path
func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configDir := filepath.Dir(configPath)
		if err := os.MkdirAll(configDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create config directory: %w", err)
		}

		defaultConfig := Default()
		err = SaveConfig(configPath, defaultConfig)
		if err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}

		logger.Info("Created default config file", "path", configPath)
		return defaultConfig, nil
	}

	var config Config
	_, err := toml.DecodeFile(configPath, &config)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
	}

	config.applyDefaults()

	logger.Info("Loaded configuration", "path", configPath)
	return &config, nil
}

func (c *Config) applyDefaults() {
	d := Default()

	if c.Workbook.Path == "" {
		c.Workbook.Path = d.Workbook.Path
	}
	if c.Workbook.Sheet == "" {
		c.Workbook.Sheet = d.Workbook.Sheet
	}
	if c.SVN.Binary == "" {
		c.SVN.Binary = d.SVN.Binary
	}
	if len(c.SVN.Extensions) == 0 {
		c.SVN.Extensions = d.SVN.Extensions
	}
	if c.SVN.TimeoutSeconds == 0 {
		c.SVN.TimeoutSeconds = d.SVN.TimeoutSeconds
	}

	m := &c.Macro
	if m.ModuleName == "" {
		m.ModuleName = d.Macro.ModuleName
	}
	if m.Procedure == "" {
		m.Procedure = d.Macro.Procedure
	}
	if m.ButtonName == "" {
		m.ButtonName = d.Macro.ButtonName
	}
	if m.ButtonCaption == "" {
		m.ButtonCaption = d.Macro.ButtonCaption
	}
	if m.ButtonWidth == 0 {
		m.ButtonWidth = d.Macro.ButtonWidth
	}
	if m.ButtonHeight == 0 {
		m.ButtonHeight = d.Macro.ButtonHeight
	}
	// A zero left/top is a legal position, so only fill them in when the
	// whole geometry is missing.
	if m.ButtonLeft == 0 && m.ButtonTop == 0 {
		m.ButtonLeft = d.Macro.ButtonLeft
		m.ButtonTop = d.Macro.ButtonTop
	}
}

// SaveConfig saves configuration to the specified config file path
func SaveConfig(configPath string, config *Config) error {
	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	err = encoder.Encode(config)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	logger.Info("Saved configuration", "path", configPath)
	return nil
}

// internal/config/config.go
//
// This package resolves the directory layout copygen works with. Everything
// is decided once at startup: the root directory, the base-instructions
// directory, the modules directory and the output location. An optional
// copygen.yaml inside the root can override the defaults.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// ConfigFileName is the optional override file looked up inside the root.
	ConfigFileName = "copygen.yaml"

	// RootEnvVar overrides the root directory when set.
	RootEnvVar = "COPYGEN_ROOT"

	defaultOutputName    = "copilot-instructions.md"
	defaultBackupSuffix  = ".bak"
	defaultExtension     = ".md"
	defaultUniversalName = "universal.md"
	defaultCoreName      = "py_core.md"
	defaultBaseDirName   = "base"
	defaultModsDirName   = "modules"
)

// FileConfig models the optional copygen.yaml override file.
type FileConfig struct {
	BaseDir       string `yaml:"base_dir,omitempty"`
	ModulesDir    string `yaml:"modules_dir,omitempty"`
	OutputDir     string `yaml:"output_dir,omitempty"`
	OutputName    string `yaml:"output_name,omitempty"`
	BackupSuffix  string `yaml:"backup_suffix,omitempty"`
	Extension     string `yaml:"extension,omitempty"`
	UniversalName string `yaml:"universal,omitempty"`
	CoreName      string `yaml:"core,omitempty"`
}

// Options carries explicit overrides, typically from CLI flags. Empty fields
// fall back to the config file and then to the built-in defaults.
type Options struct {
	Root       string
	BaseDir    string
	ModulesDir string
	OutputDir  string
}

// Config holds the fully resolved runtime configuration.
type Config struct {
	// Root anchors every relative path. Defaults to the directory the
	// copygen executable is installed in.
	Root string

	// BaseDir holds the two always-included instruction documents.
	BaseDir string

	// ModulesDir holds the optional module documents.
	ModulesDir string

	// OutputDir is where the assembled file (and its backup) are written.
	OutputDir string

	OutputName    string
	BackupSuffix  string
	Extension     string
	UniversalName string
	CoreName      string
}

// New resolves the configuration from options, environment and the optional
// copygen.yaml inside the root directory.
func New(opts Options) (*Config, error) {
	root, err := resolveRoot(opts.Root)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Root:          root,
		OutputName:    defaultOutputName,
		BackupSuffix:  defaultBackupSuffix,
		Extension:     defaultExtension,
		UniversalName: defaultUniversalName,
		CoreName:      defaultCoreName,
	}

	fileCfg, err := loadFileConfig(filepath.Join(root, ConfigFileName))
	if err != nil {
		return nil, err
	}
	cfg.apply(fileCfg)

	// Flags win over the config file.
	if opts.BaseDir != "" {
		cfg.BaseDir = opts.BaseDir
	}
	if opts.ModulesDir != "" {
		cfg.ModulesDir = opts.ModulesDir
	}
	if opts.OutputDir != "" {
		cfg.OutputDir = opts.OutputDir
	}

	cfg.normalize()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// UniversalPath returns the location of the universal base document.
func (c *Config) UniversalPath() string {
	return filepath.Join(c.BaseDir, c.UniversalName)
}

// CorePath returns the location of the core base document.
func (c *Config) CorePath() string {
	return filepath.Join(c.BaseDir, c.CoreName)
}

// ModulePath returns the location of a module document by name.
func (c *Config) ModulePath(name string) string {
	return filepath.Join(c.ModulesDir, name+c.Extension)
}

// OutputPath returns the location the assembled file is written to.
func (c *Config) OutputPath() string {
	return filepath.Join(c.OutputDir, c.OutputName)
}

// BackupPath returns the sibling path the previous output is copied to.
func (c *Config) BackupPath() string {
	return c.OutputPath() + c.BackupSuffix
}

func resolveRoot(explicit string) (string, error) {
	if explicit != "" {
		return filepath.Abs(explicit)
	}
	if env := strings.TrimSpace(os.Getenv(RootEnvVar)); env != "" {
		return filepath.Abs(env)
	}
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("config: locate executable: %w", err)
	}
	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return "", fmt.Errorf("config: resolve executable path: %w", err)
	}
	return filepath.Dir(exe), nil
}

func loadFileConfig(path string) (FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	var parsed FileConfig
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return FileConfig{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return parsed, nil
}

func (c *Config) apply(fc FileConfig) {
	if v := strings.TrimSpace(fc.BaseDir); v != "" {
		c.BaseDir = v
	}
	if v := strings.TrimSpace(fc.ModulesDir); v != "" {
		c.ModulesDir = v
	}
	if v := strings.TrimSpace(fc.OutputDir); v != "" {
		c.OutputDir = v
	}
	if v := strings.TrimSpace(fc.OutputName); v != "" {
		c.OutputName = v
	}
	if v := strings.TrimSpace(fc.BackupSuffix); v != "" {
		c.BackupSuffix = v
	}
	if v := strings.TrimSpace(fc.Extension); v != "" {
		c.Extension = v
	}
	if v := strings.TrimSpace(fc.UniversalName); v != "" {
		c.UniversalName = v
	}
	if v := strings.TrimSpace(fc.CoreName); v != "" {
		c.CoreName = v
	}
}

func (c *Config) normalize() {
	if c.BaseDir == "" {
		c.BaseDir = filepath.Join(c.Root, defaultBaseDirName)
	}
	if c.ModulesDir == "" {
		c.ModulesDir = filepath.Join(c.Root, defaultModsDirName)
	}
	if c.OutputDir == "" {
		c.OutputDir = c.Root
	}
	c.BaseDir = resolvePath(c.Root, c.BaseDir)
	c.ModulesDir = resolvePath(c.Root, c.ModulesDir)
	c.OutputDir = resolvePath(c.Root, c.OutputDir)
	if !strings.HasPrefix(c.Extension, ".") {
		c.Extension = "." + c.Extension
	}
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.OutputName) == "" {
		return fmt.Errorf("config: output name is required")
	}
	if strings.TrimSpace(c.BackupSuffix) == "" {
		return fmt.Errorf("config: backup suffix is required")
	}
	if c.Extension == "." {
		return fmt.Errorf("config: module extension is required")
	}
	if c.UniversalName == c.CoreName {
		return fmt.Errorf("config: universal and core documents must differ")
	}
	return nil
}

func resolvePath(base, candidate string) string {
	trimmed := strings.TrimSpace(candidate)
	if trimmed == "" {
		return ""
	}
	if filepath.IsAbs(trimmed) {
		return filepath.Clean(trimmed)
	}
	return filepath.Clean(filepath.Join(base, trimmed))
}

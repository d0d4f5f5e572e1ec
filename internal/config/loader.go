package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

const (
	// maxConfigFileSize limits config files to 1MB.
	maxConfigFileSize = 1024 * 1024

	envPrefix = "DOHA_"
)

// DefaultConfigPath returns the default config file location,
// ~/.config/doha/config.yaml.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".config", "doha", "config.yaml"), nil
}

// Load reads configuration from the default path and the environment.
func Load() (*Config, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadWithFile(path)
}

// LoadWithFile reads configuration from the given YAML file, if it exists,
// then overlays DOHA_-prefixed environment variables. Missing files are not
// an error; defaults apply.
func LoadWithFile(path string) (*Config, error) {
	k := koanf.New(".")

	if data, err := readConfigFile(path); err != nil {
		return nil, err
	} else if data != nil {
		if err := k.Load(rawbytes.Provider(data), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}

	// DOHA_LOGGING_LEVEL=debug becomes logging.level. The first underscore
	// separates section from field; remaining underscores stay in the field
	// name.
	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, envPrefix))
		parts := strings.SplitN(s, "_", 2)
		if len(parts) == 2 {
			return parts[0] + "." + parts[1]
		}
		return s
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("loading environment variables: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// readConfigFile validates and reads the config file. Returns nil data when
// the file does not exist.
func readConfigFile(path string) ([]byte, error) {
	if err := validateConfigPath(path); err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("stating config file %s: %w", path, err)
	}

	if err := validateConfigFileProperties(info); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}
	return data, nil
}

// validateConfigPath ensures the config file lives in an allowed directory,
// resolving symlinks to prevent escapes.
func validateConfigPath(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving config path: %w", err)
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		if os.IsNotExist(err) {
			resolved = abs
		} else {
			return fmt.Errorf("resolving symlinks for %s: %w", abs, err)
		}
	}

	allowed, err := allowedConfigDirs()
	if err != nil {
		return err
	}
	for _, dir := range allowed {
		if strings.HasPrefix(resolved, dir+string(filepath.Separator)) {
			return nil
		}
	}
	return fmt.Errorf("config path %s is outside allowed directories", path)
}

func allowedConfigDirs() ([]string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("getting home directory: %w", err)
	}
	return []string{
		filepath.Join(home, ".config", "doha"),
		filepath.Join("/etc", "doha"),
	}, nil
}

// validateConfigFileProperties rejects config files with loose permissions
// or excessive size.
func validateConfigFileProperties(info os.FileInfo) error {
	if info.Size() > maxConfigFileSize {
		return fmt.Errorf("file too large: %d bytes (max %d)", info.Size(), maxConfigFileSize)
	}

	if runtime.GOOS != "windows" {
		perm := info.Mode().Perm()
		if perm != 0600 && perm != 0400 {
			return fmt.Errorf("insecure permissions %04o, want 0600 or 0400", perm)
		}
	}
	return nil
}

// EnsureConfigDir creates the user config directory with restricted
// permissions.
func EnsureConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	dir := filepath.Join(home, ".config", "doha")
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return dir, nil
}

package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/buckets/internal/paths"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	envPrefix      = "BUCKETS"

	// Config keys.
	cfgKeyBoard           = "board"
	cfgKeyDebug           = "debug"
	cfgKeyRemainingBucket = "remaining_bucket"
)

// defaultConfigYAML is the content written to config.yaml on first run.
const defaultConfigYAML = `# Buckets CLI configuration

# Board file to load; relative paths are resolved against this directory.
# Without a board the built-in sample board is used.
# board: board.yaml

# Log engine debug output to stderr.
debug: false

# Bucket index that receives items the board does not place
# (overrides the board's own remaining_bucket; -1 for the last bucket).
# remaining_bucket: -1
`

// loadConfig reads config.yaml from the resolved config directory using Viper.
// On first run the directory is created and seeded with defaultConfigYAML.
// Settings may be overridden by BUCKETS_* environment variables.
func loadConfig(configDir string) (*viper.Viper, error) {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return nil, fmt.Errorf("create config dir: %w", err)
	}
	seed := func(w io.Writer) error {
		_, err := io.WriteString(w, defaultConfigYAML)
		return err
	}
	if err := createIfMissing(filepath.Join(configDir, paths.ConfigFileName), seed); err != nil {
		return nil, fmt.Errorf("seed config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyDebug, false)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}

// createIfMissing creates path and fills it through write. An existing file
// is left untouched; a failed write removes the partial file.
func createIfMissing(path string, write func(io.Writer) error) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if errors.Is(err, fs.ErrExist) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}

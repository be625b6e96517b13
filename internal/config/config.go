// Package config resolves the plugin's credentials, team list, and display
// settings from the SwiftBar environment, a creds file, and an optional INI
// config file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/ini.v1"

	"github.com/rorynscott/duo-oncall/internal/victorops"
)

const (
	credsFileName  = ".victorops"
	configFileName = ".config.ini"

	// DefaultDisplayField is the user-directory field shown for each user.
	DefaultDisplayField = "displayName"
	// DefaultTitle is the menu-bar title line.
	DefaultTitle = "DuoOnCall"
	// DefaultDaysForward is the schedule horizon requested from the API.
	DefaultDaysForward = 30
)

// GetString retrieves an environment variable or returns a fallback when unset.
func GetString(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Paths locates the plugin's cache and install directories. Both come from
// SwiftBar environment variables when the host provides them.
type Paths struct {
	CacheDir  string
	PluginDir string
}

// ResolvePaths derives the cache and plugin directories. The cache falls back
// to the SwiftBar per-plugin cache location under the home directory; the
// plugin directory falls back to the running executable's directory.
func ResolvePaths() (Paths, error) {
	cache := os.Getenv("SWIFTBAR_PLUGIN_CACHE_PATH")
	if cache == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Paths{}, fmt.Errorf("resolve home dir: %w", err)
		}
		cache = filepath.Join(home, "Library", "Caches", "com.ameba.SwiftBar", "Plugins", "duo-oncall")
	}
	plugin := os.Getenv("SWIFTBAR_PLUGIN_PATH")
	if plugin == "" {
		exe, err := os.Executable()
		if err != nil {
			return Paths{}, fmt.Errorf("resolve executable path: %w", err)
		}
		plugin = exe
	}
	return Paths{CacheDir: cache, PluginDir: filepath.Dir(plugin)}, nil
}

// Config aggregates everything one run needs.
type Config struct {
	Teams        []string
	DisplayField string
	Title        string
	DaysForward  int
	BaseURL      string
	Creds        Creds
}

// Options carries command-line overrides into Load.
type Options struct {
	ConfigPath  string
	CredsPath   string
	Teams       []string
	DaysForward int
}

// Load resolves paths, reads the creds file and the optional INI config, and
// applies command-line overrides. Teams passed in Options are appended after
// config-file teams.
func Load(opts Options) (*Config, error) {
	paths, err := ResolvePaths()
	if err != nil {
		return nil, err
	}
	// A .env next to the plugin may override the SwiftBar path variables,
	// so paths are resolved again after loading it.
	if godotenv.Load(filepath.Join(paths.PluginDir, ".env")) == nil {
		if paths, err = ResolvePaths(); err != nil {
			return nil, err
		}
	}

	credsPath := opts.CredsPath
	if credsPath == "" {
		credsPath = filepath.Join(paths.CacheDir, credsFileName)
	}
	creds, err := LoadCreds(credsPath)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		DisplayField: DefaultDisplayField,
		Title:        DefaultTitle,
		DaysForward:  DefaultDaysForward,
		BaseURL:      GetString("VICTOROPS_API_URL", victorops.DefaultBaseURL),
		Creds:        creds,
	}

	cfgPath := opts.ConfigPath
	if cfgPath == "" {
		cfgPath = filepath.Join(paths.PluginDir, configFileName)
	}
	file, err := ini.Load(cfgPath)
	if err != nil {
		// The config file at the default location is optional; an explicit
		// -config path is not.
		if opts.ConfigPath != "" || !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load config %s: %w", cfgPath, err)
		}
		file = nil
	}
	if file != nil {
		applyINI(cfg, file)
	}

	cfg.Teams = append(cfg.Teams, opts.Teams...)
	if opts.DaysForward > 0 {
		cfg.DaysForward = opts.DaysForward
	}
	if len(cfg.Teams) == 0 {
		return nil, errors.New("no teams configured: add a [teams] section or pass -team")
	}
	return cfg, nil
}

func applyINI(cfg *Config, file *ini.File) {
	if teams, err := file.GetSection("teams"); err == nil {
		for _, key := range teams.Keys() {
			cfg.Teams = append(cfg.Teams, key.String())
		}
	}
	// A missing [display_conf] section keeps the defaults.
	if display, err := file.GetSection("display_conf"); err == nil {
		cfg.DisplayField = display.Key("user_display").MustString(DefaultDisplayField)
		cfg.Title = display.Key("title").MustString(DefaultTitle)
		cfg.DaysForward = display.Key("days_forward").MustInt(DefaultDaysForward)
	}
}

package config

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/atomicstack/tabdeck/internal/app"
	"github.com/atomicstack/tabdeck/internal/tabs"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// ErrInvalid marks configuration errors, which exit with status 2.
var ErrInvalid = errors.New("invalid configuration")

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envConfig        = "TABDECK_CONFIG"
	envWidth         = "TABDECK_WIDTH"
	envHeight        = "TABDECK_HEIGHT"
	envShowFooter    = "TABDECK_FOOTER"
	envTrace         = "TABDECK_TRACE"
	envLogFile       = "TABDECK_LOG_FILE"
	envIDs           = "TABDECK_IDS"
	envTitleWidth    = "TABDECK_TITLE_WIDTH"
	envSelectDropped = "TABDECK_SELECT_DROPPED"
)

// Loader owns the flags registered by Bind and resolves them against the
// environment and the optional config file.
type Loader struct {
	fs  *pflag.FlagSet
	env map[string]string

	configPath    *string
	width         *int
	height        *int
	footer        *bool
	trace         *bool
	logFile       *string
	ids           *string
	titleWidth    *int
	selectDropped *bool
}

// Bind registers the command-line flags on fs. Flag defaults come from the
// environment so that help output shows the effective values.
func Bind(fs *pflag.FlagSet, environ []string) *Loader {
	env := parseEnv(environ)
	return &Loader{
		fs:            fs,
		env:           env,
		configPath:    fs.String("config", envOrDefault(env, envConfig, ""), "path to a YAML, TOML or JSON config file"),
		width:         fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)"),
		height:        fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)"),
		footer:        fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer hint row"),
		trace:         fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging"),
		logFile:       fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file"),
		ids:           fs.String("ids", envOrDefault(env, envIDs, "counter"), "tab identifier allocator: counter or uuid"),
		titleWidth:    fs.Int("title-width", envOrInt(env, envTitleWidth, 18), "maximum tab title width in cells"),
		selectDropped: fs.Bool("select-dropped", envOrBool(env, envSelectDropped, false), "select a tab after dropping it into another container"),
	}
}

// LoadArgs parses args and environ in one step. Tests and callers without a
// command framework use it.
func LoadArgs(args []string, environ []string) (Config, error) {
	fs := pflag.NewFlagSet("tabdeck", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	loader := Bind(fs, environ)
	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return loader.Load(args)
}

// Load resolves the parsed flags. A value set on the command line wins, then
// the environment, then the config file, then the flag default. args is only
// recorded for tracing.
func (l *Loader) Load(args []string) (Config, error) {
	file, err := readFile(*l.configPath)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	width := l.intValue(file, "width", envWidth, *l.width)
	height := l.intValue(file, "height", envHeight, *l.height)
	titleWidth := l.intValue(file, "title-width", envTitleWidth, *l.titleWidth)
	footer := l.boolValue(file, "footer", envShowFooter, *l.footer)
	trace := l.boolValue(file, "trace", envTrace, *l.trace)
	selectDropped := l.boolValue(file, "select-dropped", envSelectDropped, *l.selectDropped)
	logFile := l.stringValue(file, "log-file", envLogFile, *l.logFile)
	ids := l.stringValue(file, "ids", envIDs, *l.ids)

	layout, err := readLayout(file)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	cfg := Config{
		App: app.Config{
			Width:         width,
			Height:        height,
			ShowFooter:    footer,
			TitleWidth:    titleWidth,
			SelectDropped: selectDropped,
			IDs:           ids,
			Layout:        layout,
		},
		Logging: Logging{
			FilePath: logFile,
			Trace:    trace,
		},
		Flags: map[string]string{
			"config":        *l.configPath,
			"width":         strconv.Itoa(width),
			"height":        strconv.Itoa(height),
			"footer":        strconv.FormatBool(footer),
			"trace":         strconv.FormatBool(trace),
			"logFile":       logFile,
			"ids":           ids,
			"titleWidth":    strconv.Itoa(titleWidth),
			"selectDropped": strconv.FormatBool(selectDropped),
		},
		Args: append([]string(nil), args...),
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// fromFile reports whether key should be taken from the config file.
func (l *Loader) fromFile(file *viper.Viper, key, envKey string) bool {
	if file == nil || !file.IsSet(key) || l.fs.Changed(key) {
		return false
	}
	v, ok := l.env[envKey]
	return !ok || strings.TrimSpace(v) == ""
}

func (l *Loader) intValue(file *viper.Viper, key, envKey string, current int) int {
	if l.fromFile(file, key, envKey) {
		return file.GetInt(key)
	}
	return current
}

func (l *Loader) boolValue(file *viper.Viper, key, envKey string, current bool) bool {
	if l.fromFile(file, key, envKey) {
		return file.GetBool(key)
	}
	return current
}

func (l *Loader) stringValue(file *viper.Viper, key, envKey string, current string) string {
	if l.fromFile(file, key, envKey) {
		return file.GetString(key)
	}
	return current
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// Validate checks ranges and names that the flag parser cannot.
func Validate(cfg Config) error {
	if cfg.App.Width < 0 {
		return fmt.Errorf("%w: width must be >= 0 (got %d)", ErrInvalid, cfg.App.Width)
	}
	if cfg.App.Height < 0 {
		return fmt.Errorf("%w: height must be >= 0 (got %d)", ErrInvalid, cfg.App.Height)
	}
	if cfg.App.TitleWidth < 1 {
		return fmt.Errorf("%w: title-width must be >= 1 (got %d)", ErrInvalid, cfg.App.TitleWidth)
	}
	if _, err := tabs.NewAllocator(cfg.App.IDs); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if len(cfg.App.Layout) == 0 {
		return fmt.Errorf("%w: layout has no containers", ErrInvalid)
	}
	seen := make(map[string]bool, len(cfg.App.Layout))
	for _, c := range cfg.App.Layout {
		if seen[c.Name] {
			return fmt.Errorf("%w: duplicate container name %q", ErrInvalid, c.Name)
		}
		seen[c.Name] = true
	}
	return nil
}

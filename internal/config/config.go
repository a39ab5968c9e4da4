package config

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/atomicstack/tty-pick/internal/app"
)

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
	envHeader           = "TTY_PICK_HEADER"
	envPlaceholder      = "TTY_PICK_PLACEHOLDER"
	envQuery            = "TTY_PICK_QUERY"
	envPrompt           = "TTY_PICK_PROMPT"
	envLimit            = "TTY_PICK_LIMIT"
	envMulti            = "TTY_PICK_MULTI"
	envIndicator        = "TTY_PICK_INDICATOR"
	envSelectedMarker   = "TTY_PICK_SELECTED_MARKER"
	envUnselectedMarker = "TTY_PICK_UNSELECTED_MARKER"
	envMatch            = "TTY_PICK_MATCH"
	envHeight           = "TTY_PICK_HEIGHT"
	envFrontend         = "TTY_PICK_FRONTEND"
	envDelimiter        = "TTY_PICK_DELIMITER"
	envTheme            = "TTY_PICK_THEME"
	envNoColor          = "NO_COLOR"
	envTrace            = "TTY_PICK_TRACE"
	envLogFile          = "TTY_PICK_LOG_FILE"
)

// Values holds the flag destinations registered on a FlagSet. Call Config
// after the FlagSet has been parsed.
type Values struct {
	header           string
	placeholder      string
	query            string
	prompt           string
	limit            int
	multi            bool
	indicator        string
	selectedMarker   string
	unselectedMarker string
	match            string
	height           int
	frontend         string
	delimiter        string
	themePath        string
	noColor          bool
	trace            bool
	logFile          string
}

// Register declares every flag on fs. Environment variables supply the
// defaults, so an explicit flag always wins.
func Register(fs *pflag.FlagSet, environ []string) *Values {
	env := parseEnv(environ)
	v := &Values{}
	fs.StringVar(&v.header, "header", envOrDefault(env, envHeader, ""), "text shown above the prompt")
	fs.StringVar(&v.placeholder, "placeholder", envOrDefault(env, envPlaceholder, ""), "text shown while the query is empty")
	fs.StringVarP(&v.query, "query", "q", envOrDefault(env, envQuery, ""), "initial query")
	fs.StringVar(&v.prompt, "prompt", envOrDefault(env, envPrompt, ""), "prompt drawn before the query")
	fs.IntVarP(&v.limit, "limit", "l", envOrInt(env, envLimit, 0), "maximum number of marked items (implies --multi)")
	fs.BoolVarP(&v.multi, "multi", "m", envOrBool(env, envMulti, false), "allow marking several items with + and -")
	fs.StringVar(&v.indicator, "indicator", envOrDefault(env, envIndicator, ""), "glyph drawn in front of the cursor row")
	fs.StringVar(&v.selectedMarker, "selected-marker", envOrDefault(env, envSelectedMarker, ""), "prefix for marked rows")
	fs.StringVar(&v.unselectedMarker, "unselected-marker", envOrDefault(env, envUnselectedMarker, ""), "prefix for unmarked rows")
	fs.StringVar(&v.match, "match", envOrDefault(env, envMatch, "regex"), "query matching: regex or fuzzy")
	fs.IntVar(&v.height, "height", envOrInt(env, envHeight, 0), "maximum rows shown at once (0 shows all)")
	fs.StringVar(&v.frontend, "frontend", envOrDefault(env, envFrontend, app.FrontendRaw), "input loop: raw or tea")
	fs.StringVarP(&v.delimiter, "delimiter", "d", envOrDefault(env, envDelimiter, ""), "split input lines on this string and align the columns")
	fs.StringVar(&v.themePath, "theme", envOrDefault(env, envTheme, ""), "path to a YAML theme file")
	_, noColor := env[envNoColor]
	fs.BoolVar(&v.noColor, "no-color", noColor, "draw without colours")
	fs.BoolVar(&v.trace, "trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	fs.StringVar(&v.logFile, "log-file", envOrDefault(env, envLogFile, ""), "path to the log file")
	return v
}

// Config assembles the parsed values. args are the positional arguments.
func (v *Values) Config(args []string) (Config, error) {
	if v.limit < 0 {
		return Config{}, fmt.Errorf("limit must be >= 0 (got %d)", v.limit)
	}
	if v.height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", v.height)
	}
	cfg := Config{
		App: app.Config{
			Header:           v.header,
			Placeholder:      v.placeholder,
			Query:            v.query,
			Prompt:           v.prompt,
			Limit:            v.limit,
			Multi:            v.multi,
			Indicator:        v.indicator,
			SelectedMarker:   v.selectedMarker,
			UnselectedMarker: v.unselectedMarker,
			Match:            v.match,
			Height:           v.height,
			Frontend:         v.frontend,
			Delimiter:        v.delimiter,
			ThemePath:        v.themePath,
			NoColor:          v.noColor,
		},
		Logging: Logging{
			FilePath: v.logFile,
			Trace:    v.trace,
		},
		Flags: map[string]string{
			"header":   v.header,
			"query":    v.query,
			"limit":    strconv.Itoa(v.limit),
			"multi":    strconv.FormatBool(v.multi),
			"match":    v.match,
			"height":   strconv.Itoa(v.height),
			"frontend": v.frontend,
			"theme":    v.themePath,
			"trace":    strconv.FormatBool(v.trace),
			"logFile":  v.logFile,
		},
		Args: append([]string(nil), args...),
	}
	return cfg, nil
}

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	fs := pflag.NewFlagSet("tty-pick", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	values := Register(fs, environ)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return values.Config(fs.Args())
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

// Validate checks the options a session would be built from, so bad input is
// reported before the terminal is touched.
func Validate(cfg Config) error {
	switch cfg.App.Frontend {
	case app.FrontendRaw, app.FrontendTea:
	default:
		return fmt.Errorf("unknown frontend %q (want %s or %s)", cfg.App.Frontend, app.FrontendRaw, app.FrontendTea)
	}
	return cfg.App.Options().Validate()
}

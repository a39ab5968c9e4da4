package config

import (
	"testing"

	"github.com/atomicstack/tty-pick/internal/app"
	"github.com/atomicstack/tty-pick/internal/selector"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if cfg.App.Frontend != app.FrontendRaw || cfg.App.Match != "regex" {
		t.Fatalf("unexpected defaults %+v", cfg.App)
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
}

func TestLoadArgsFlags(t *testing.T) {
	cfg, err := LoadArgs([]string{
		"--header", "Pick one", "-q", "an", "-l", "2", "--match", "fuzzy",
		"--selected-marker", "* ", "--trace", "--log-file", "/tmp/pick.log", "extra",
	}, nil)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if cfg.App.Header != "Pick one" || cfg.App.Query != "an" || cfg.App.Limit != 2 {
		t.Fatalf("unexpected app config %+v", cfg.App)
	}
	if cfg.App.SelectedMarker != "* " || cfg.App.Match != "fuzzy" {
		t.Fatalf("unexpected app config %+v", cfg.App)
	}
	if !cfg.Logging.Trace || cfg.Logging.FilePath != "/tmp/pick.log" {
		t.Fatalf("unexpected logging config %+v", cfg.Logging)
	}
	if len(cfg.Args) != 1 || cfg.Args[0] != "extra" {
		t.Fatalf("expected positional args kept, got %v", cfg.Args)
	}
	if cfg.Flags["limit"] != "2" {
		t.Fatalf("expected limit recorded in flags map, got %q", cfg.Flags["limit"])
	}
}

func TestEnvironmentFallbacks(t *testing.T) {
	env := []string{
		"TTY_PICK_HEADER=from env",
		"TTY_PICK_MULTI=true",
		"TTY_PICK_HEIGHT=7",
		"TTY_PICK_LIMIT=notanumber",
		"NO_COLOR=",
		"MALFORMED",
	}
	cfg, err := LoadArgs([]string{"--header", "from flag"}, env)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if cfg.App.Header != "from flag" {
		t.Fatalf("expected flag to override env, got %q", cfg.App.Header)
	}
	if !cfg.App.Multi || cfg.App.Height != 7 || cfg.App.Limit != 0 {
		t.Fatalf("unexpected env-derived config %+v", cfg.App)
	}
	if !cfg.App.NoColor {
		t.Fatalf("expected NO_COLOR presence to disable colours")
	}
}

func TestNegativeValuesRejected(t *testing.T) {
	if _, err := LoadArgs([]string{"--limit", "-1"}, nil); err == nil {
		t.Fatalf("expected negative limit error")
	}
	if _, err := LoadArgs([]string{"--height=-3"}, nil); err == nil {
		t.Fatalf("expected negative height error")
	}
}

func TestUnknownFlag(t *testing.T) {
	if _, err := LoadArgs([]string{"--bogus"}, nil); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestValidate(t *testing.T) {
	cfg, _ := LoadArgs([]string{"--frontend", "gui"}, nil)
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected unknown frontend error")
	}
	cfg, _ = LoadArgs([]string{"--match", "glob"}, nil)
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected unknown match error")
	}
	cfg, _ = LoadArgs([]string{"--frontend", "tea", "--match", string(selector.MatchFuzzy)}, nil)
	if err := Validate(cfg); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
}

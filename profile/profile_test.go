package profile

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/jonwraymond/callops/bind"
	"github.com/jonwraymond/callops/intercept"
	"github.com/jonwraymond/callops/sink"
)

const sampleProfile = `
defaults:
  log_args: true
  args_sep: ", "
interceptors:
  fetch:
    log_retval: true
    prefix: "api."
  parse:
    enabled: 2
    log_args: false
`

func TestParse(t *testing.T) {
	p, err := Parse([]byte(sampleProfile))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if got := p.Names(); !reflect.DeepEqual(got, []string{"fetch", "parse"}) {
		t.Errorf("Names() = %v, want [fetch parse]", got)
	}
	if !p.Has("fetch") || p.Has("walk") {
		t.Errorf("Has() = %v, %v, want true, false", p.Has("fetch"), p.Has("walk"))
	}

	want := map[string]any{
		"log_args":   true,
		"args_sep":   ", ",
		"log_retval": true,
		"prefix":     "api.",
	}
	if got := p.Settings("fetch"); !reflect.DeepEqual(got, want) {
		t.Errorf("Settings(fetch) = %v, want %v", got, want)
	}

	parse := p.Settings("parse")
	if got := parse["enabled"]; got != 2 {
		t.Errorf("parse enabled = %v (%T), want int 2", got, got)
	}
	if got := parse["log_args"]; got != false {
		t.Errorf("parse log_args = %v, want override false", got)
	}

	// Unconfigured names get the defaults alone.
	wantDefaults := map[string]any{"log_args": true, "args_sep": ", "}
	if got := p.Settings("walk"); !reflect.DeepEqual(got, wantDefaults) {
		t.Errorf("Settings(walk) = %v, want %v", got, wantDefaults)
	}
}

func TestParse_Empty(t *testing.T) {
	p, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse(empty) error = %v", err)
	}
	if got := p.Settings("anything"); len(got) != 0 {
		t.Errorf("Settings() on empty profile = %v, want empty", got)
	}
	if got := p.Names(); len(got) != 0 {
		t.Errorf("Names() on empty profile = %v, want empty", got)
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{name: "unknown top-level field", in: "defaultz:\n  a: 1\n"},
		{name: "malformed yaml", in: "defaults: ["},
		{name: "wrong shape", in: "interceptors: 3\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.in)); !errors.Is(err, ErrInvalidProfile) {
				t.Errorf("Parse() error = %v, want ErrInvalidProfile", err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "callops.yaml")
	if err := os.WriteFile(path, []byte(sampleProfile), 0o600); err != nil {
		t.Fatal(err)
	}

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got := p.Settings("fetch")["prefix"]; got != "api." {
		t.Errorf("loaded prefix = %v, want api.", got)
	}
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Load(missing) error = %v, want ErrNotExist", err)
	}
}

func TestProfile_SeedsInterceptor(t *testing.T) {
	p, err := Parse([]byte(sampleProfile))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	fetch, err := intercept.New(
		bind.NewSignature("fetch", bind.Required("url")),
		func(context.Context, bind.Arguments) (any, error) { return 200, nil },
		intercept.WithSink(sink.Discard()),
		intercept.WithSettings(p.Settings("fetch")),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if got := fetch.Name(); got != "api.fetch" {
		t.Errorf("Name() = %q, want %q", got, "api.fetch")
	}
	if v, err := fetch.Settings().Get("log_retval"); err != nil || v != true {
		t.Errorf("Get(log_retval) = %v, %v, want true", v, err)
	}
}

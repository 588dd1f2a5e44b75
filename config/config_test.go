package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/multierr"
)

func TestDefault_Valid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate(): %v", err)
	}
	n, ok := cfg.Network(0)
	if !ok || n.ChainID != 1281 {
		t.Fatalf("default network = %+v, %v", n, ok)
	}
	if _, ok := cfg.Network(4); !ok {
		t.Fatalf("missing chain 4")
	}
	if _, ok := cfg.Network(1); ok {
		t.Fatalf("unexpected chain 1")
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pns.json")
	body := `{
  "tld": "dot",
  "default_chain_id": 7,
  "networks": [
    {"chain_id": 7, "registry": "0x1111111111111111111111111111111111111111",
     "resolver": "0x2222222222222222222222222222222222222222",
     "registrar": "0x3333333333333333333333333333333333333333"}
  ]
}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.CoinTypes["DOT"] != 354 {
		t.Fatalf("coin types should default, got %v", cfg.CoinTypes)
	}
	n, ok := cfg.Network(0)
	if !ok || n.Resolver != "0x2222222222222222222222222222222222222222" {
		t.Fatalf("Network(0) = %+v, %v", n, ok)
	}

	if _, err := LoadFile(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
	if _, err := LoadFile(filepath.Join(dir, "missing.json")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	cfg := Config{
		TLD:            "a.b",
		DefaultChainID: 99,
		Networks: []Network{
			{ChainID: 1, Registry: "0x1111111111111111111111111111111111111111", Resolver: "nothex", Registrar: "0x12"},
			{ChainID: 1, Registry: "0x1111111111111111111111111111111111111111", Resolver: "0x1111111111111111111111111111111111111111", Registrar: "0x1111111111111111111111111111111111111111"},
		},
	}
	err := cfg.Validate()
	if err == nil {
		t.Fatalf("expected errors")
	}
	errs := multierr.Errors(err)
	if len(errs) != 5 {
		t.Fatalf("expected 5 problems, got %d: %v", len(errs), err)
	}
	for _, want := range []string{"single label", "duplicate chain_id 1", "resolver", "registrar", "default_chain_id 99"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("missing %q in %v", want, err)
		}
	}
}

func TestValidate_Mirrors(t *testing.T) {
	cfg := Default()
	cfg.Mirrors = []string{"/a", "", "/a"}
	err := cfg.Validate()
	if got := len(multierr.Errors(err)); got != 2 {
		t.Fatalf("expected 2 problems, got %d: %v", got, err)
	}
	for _, want := range []string{"mirrors[1] is empty", `duplicate mirror "/a"`} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("missing %q in %v", want, err)
		}
	}

	cfg.Mirrors = []string{"/a", "/b"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestParse_Errors(t *testing.T) {
	if _, err := Parse([]byte("{")); err == nil {
		t.Fatalf("expected JSON error")
	}
	if _, err := Parse([]byte(`{"tld":"dot","networks":[]}`)); err == nil {
		t.Fatalf("expected missing networks error")
	}
}

package namehash_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/hzy1919/pns-sdk/namehash"
)

type vectors struct {
	Format string `json:"format"`
	Hash   string `json:"hash"`
	Names  []struct {
		Name string `json:"name"`
		Node string `json:"node"`
	} `json:"names"`
	Labels []struct {
		Label     string `json:"label"`
		LabelHash string `json:"labelhash"`
	} `json:"labels"`
}

func loadVectors(t *testing.T) vectors {
	t.Helper()
	b, err := os.ReadFile(filepath.Join("..", "testdata", "conformance", "namehash.json"))
	if err != nil {
		t.Fatalf("read vectors: %v", err)
	}
	var v vectors
	if err := json.Unmarshal(b, &v); err != nil {
		t.Fatalf("decode vectors: %v", err)
	}
	if v.Hash != "keccak-256" {
		t.Fatalf("unexpected vector hash %q", v.Hash)
	}
	return v
}

func TestConformanceVectors_Namehash(t *testing.T) {
	v := loadVectors(t)
	if len(v.Names) == 0 {
		t.Fatalf("no name vectors")
	}
	for _, tc := range v.Names {
		if got := namehash.Compute(tc.Name).Hex(); got != tc.Node {
			t.Errorf("Compute(%q) = %s, want %s", tc.Name, got, tc.Node)
		}
	}
}

func TestConformanceVectors_LabelHash(t *testing.T) {
	v := loadVectors(t)
	for _, tc := range v.Labels {
		lh, ok := namehash.LabelHashOf(tc.Label)
		if !ok {
			t.Fatalf("LabelHashOf(%q) ok = false", tc.Label)
		}
		if lh.Hex() != tc.LabelHash {
			t.Errorf("LabelHashOf(%q) = %s, want %s", tc.Label, lh.Hex(), tc.LabelHash)
		}
	}
}

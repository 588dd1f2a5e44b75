package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hzy1919/pns-sdk/namehash"
)

type multiStringFlag []string

func (m *multiStringFlag) String() string {
	return strings.Join(*m, ",")
}

func (m *multiStringFlag) Set(v string) error {
	*m = append(*m, v)
	return nil
}

type nameVector struct {
	Name string `json:"name"`
	Node string `json:"node"`
}

type labelVector struct {
	Label     string `json:"label"`
	LabelHash string `json:"labelhash"`
}

type vectorFile struct {
	Format string        `json:"format"`
	Hash   string        `json:"hash"`
	Names  []nameVector  `json:"names"`
	Labels []labelVector `json:"labels"`
}

var defaultNames = []string{
	"", "eth", "foo.eth", "dot", "alice.dot", "sub.alice.dot", "a.b.c.dot",
	"Alice.dot", "ok.com.cn", namehash.RootLabel, "a..dot", "xn--bcher-kva.dot",
}

var defaultLabels = []string{"", "eth", "dot", "alice", "sub", "Alice", "xn--bcher-kva"}

func main() {
	var (
		names  multiStringFlag
		labels multiStringFlag
		out    = flag.String("out", "", "output file (e.g. testdata/conformance/namehash.json)")
	)
	flag.Var(&names, "name", "name to include (repeatable; replaces the default set)")
	flag.Var(&labels, "label", "label to include (repeatable; replaces the default set)")
	flag.Parse()

	if *out == "" {
		fmt.Fprintln(os.Stderr, "usage: pns_vector_gen -out <file> [-name <n> ...] [-label <l> ...]")
		os.Exit(2)
	}
	if len(names) == 0 {
		names = defaultNames
	}
	if len(labels) == 0 {
		labels = defaultLabels
	}

	v := vectorFile{Format: "pns-namehash-1", Hash: "keccak-256"}
	for _, n := range names {
		v.Names = append(v.Names, nameVector{Name: n, Node: namehash.Compute(n).Hex()})
	}
	for _, l := range labels {
		lh, ok := namehash.LabelHashOf(l)
		if !ok {
			fatalf("label %q has no labelhash", l)
		}
		v.Labels = append(v.Labels, labelVector{Label: l, LabelHash: lh.Hex()})
	}

	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fatalf("encode vectors: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(*out), 0o755); err != nil {
		fatalf("mkdir out: %v", err)
	}
	if err := os.WriteFile(*out, append(b, '\n'), 0o644); err != nil {
		fatalf("write vectors: %v", err)
	}
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

package main

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hzy1919/pns-sdk/client"
	"github.com/hzy1919/pns-sdk/compliance"
	"github.com/hzy1919/pns-sdk/config"
	"github.com/hzy1919/pns-sdk/contenturi"
	"github.com/hzy1919/pns-sdk/domain"
	"github.com/hzy1919/pns-sdk/label"
	"github.com/hzy1919/pns-sdk/model"
	"github.com/hzy1919/pns-sdk/namehash"
	"github.com/hzy1919/pns-sdk/storage"
	"github.com/hzy1919/pns-sdk/storage/localfs"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, out io.Writer, errOut io.Writer) int {
	if len(args) == 0 {
		printUsage(errOut)
		return 2
	}

	switch args[0] {
	case "namehash":
		return cmdNamehash(args[1:], out, errOut)
	case "labelhash":
		return cmdLabelhash(args[1:], out, errOut)
	case "encode-label":
		return cmdEncodeLabel(args[1:], out, errOut)
	case "decode-label":
		return cmdDecodeLabel(args[1:], out, errOut)
	case "valid":
		return cmdValid(args[1:], out, errOut)
	case "registrable":
		return cmdRegistrable(args[1:], out, errOut)
	case "content":
		return cmdContent(args[1:], out, errOut)
	case "config":
		return cmdConfig(args[1:], out, errOut)
	case "record":
		return cmdRecord(args[1:], out, errOut)
	case "help", "-h", "--help":
		printUsage(out)
		return 0
	default:
		fmt.Fprintf(errOut, "unknown command: %s\n\n", args[0])
		printUsage(errOut)
		return 2
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "pns: name service hashing, label and validation tool")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  pns namehash <name>")
	fmt.Fprintln(w, "  pns labelhash <label>")
	fmt.Fprintln(w, "  pns encode-label <label>")
	fmt.Fprintln(w, "  pns decode-label [--legacy] <[hash]>")
	fmt.Fprintln(w, "  pns valid [--wildcard] [--no-subdomains] <name>")
	fmt.Fprintln(w, "  pns registrable <name>")
	fmt.Fprintln(w, "  pns content parse <uri>")
	fmt.Fprintln(w, "  pns content decode [--legacy] <uri>")
	fmt.Fprintln(w, "  pns content encode [--protocol ipfs] <0xhex>")
	fmt.Fprintln(w, "  pns content hash <uri>")
	fmt.Fprintln(w, "  pns content cid <file>")
	fmt.Fprintln(w, "  pns config check <file>")
	fmt.Fprintln(w, "  pns config default")
	fmt.Fprintln(w, "  pns record --store <dir> set-owner <name> <address>")
	fmt.Fprintln(w, "  pns record --store <dir> set-resolver <name> [address]")
	fmt.Fprintln(w, "  pns record --store <dir> set-text <name> <key> <value>")
	fmt.Fprintln(w, "  pns record --store <dir> set-addr <name> <symbol> <0xhex>")
	fmt.Fprintln(w, "  pns record --store <dir> set-content <name> <uri>")
	fmt.Fprintln(w, "  pns record --store <dir> set-subname-owner <name> <label> <address>")
	fmt.Fprintln(w, "  pns record --store <dir> details <name>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Notes:")
	fmt.Fprintln(w, "  - hashes print as 0x-prefixed lowercase hex")
	fmt.Fprintln(w, "  - the label [root] has no labelhash")
	fmt.Fprintln(w, "  - --legacy accepts inputs older clients produced (non-hex labels, bare content text)")
	fmt.Fprintln(w, "  - record operates on an offline local mirror, not on chain")
}

// oneArg parses a flag set that takes exactly one positional argument.
func oneArg(fs *flag.FlagSet, args []string, usage string, errOut io.Writer) (string, bool) {
	fs.SetOutput(errOut)
	if err := fs.Parse(args); err != nil {
		return "", false
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(errOut, "usage: "+usage)
		return "", false
	}
	return fs.Arg(0), true
}

func modeFor(legacy bool) compliance.Mode {
	if legacy {
		return compliance.Legacy
	}
	return compliance.Strict
}

func cmdNamehash(args []string, out io.Writer, errOut io.Writer) int {
	name, ok := oneArg(flag.NewFlagSet("namehash", flag.ContinueOnError), args, "pns namehash <name>", errOut)
	if !ok {
		return 2
	}
	_, _ = fmt.Fprintln(out, namehash.Compute(name).Hex())
	return 0
}

func cmdLabelhash(args []string, out io.Writer, errOut io.Writer) int {
	l, ok := oneArg(flag.NewFlagSet("labelhash", flag.ContinueOnError), args, "pns labelhash <label>", errOut)
	if !ok {
		return 2
	}
	lh, ok, err := label.Hash(l)
	if err != nil {
		fmt.Fprintf(errOut, "invalid label: %v\n", err)
		return 1
	}
	if !ok {
		fmt.Fprintln(errOut, "the root label has no labelhash")
		return 1
	}
	_, _ = fmt.Fprintln(out, lh.Hex())
	return 0
}

func cmdEncodeLabel(args []string, out io.Writer, errOut io.Writer) int {
	l, ok := oneArg(flag.NewFlagSet("encode-label", flag.ContinueOnError), args, "pns encode-label <label>", errOut)
	if !ok {
		return 2
	}
	lh, ok, err := label.Hash(l)
	if err != nil {
		fmt.Fprintf(errOut, "invalid label: %v\n", err)
		return 1
	}
	if !ok {
		fmt.Fprintln(errOut, "the root label has no labelhash")
		return 1
	}
	_, _ = fmt.Fprintln(out, label.Encode(lh))
	return 0
}

func cmdDecodeLabel(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("decode-label", flag.ContinueOnError)
	legacy := fs.Bool("legacy", false, "Check brackets and length only")
	token, ok := oneArg(fs, args, "pns decode-label [--legacy] <[hash]>", errOut)
	if !ok {
		return 2
	}
	inner, err := label.DecodeWithOptions(token, label.Options{Mode: modeFor(*legacy)})
	if err != nil {
		if id := label.RuleID(err); id != "" {
			fmt.Fprintf(errOut, "invalid (%s): %v\n", id, err)
		} else {
			fmt.Fprintf(errOut, "invalid: %v\n", err)
		}
		return 1
	}
	_, _ = fmt.Fprintln(out, inner)
	return 0
}

func cmdValid(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("valid", flag.ContinueOnError)
	var opts domain.Options
	fs.BoolVar(&opts.Wildcard, "wildcard", false, "Accept a leading * label")
	fs.BoolVar(&opts.NoSubdomains, "no-subdomains", false, "Reject names with more than one label below the suffix")
	name, ok := oneArg(fs, args, "pns valid [--wildcard] [--no-subdomains] <name>", errOut)
	if !ok {
		return 2
	}
	if err := domain.Check(name, opts); err != nil {
		fmt.Fprintf(errOut, "invalid: %v\n", err)
		return 1
	}
	_, _ = fmt.Fprintln(out, "OK")
	return 0
}

func cmdRegistrable(args []string, out io.Writer, errOut io.Writer) int {
	name, ok := oneArg(flag.NewFlagSet("registrable", flag.ContinueOnError), args, "pns registrable <name>", errOut)
	if !ok {
		return 2
	}
	if err := domain.CheckRegistrableName(name); err != nil {
		fmt.Fprintf(errOut, "not registrable: %v\n", err)
		return 1
	}
	_, _ = fmt.Fprintln(out, domain.SuffixTLD(name))
	return 0
}

func cmdContent(args []string, out io.Writer, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "usage: pns content <subcommand> ...")
		fmt.Fprintln(errOut, "subcommands: parse, decode, encode, hash, cid")
		return 2
	}
	switch args[0] {
	case "parse":
		text, ok := oneArg(flag.NewFlagSet("content parse", flag.ContinueOnError), args[1:], "pns content parse <uri>", errOut)
		if !ok {
			return 2
		}
		u, found := contenturi.Parse(text)
		if !found {
			fmt.Fprintln(errOut, contenturi.ErrNoProtocol)
			return 1
		}
		_, _ = fmt.Fprintf(out, "%s\t%s\n", u.Protocol, u.Payload)
		return 0
	case "decode":
		fs := flag.NewFlagSet("content decode", flag.ContinueOnError)
		legacy := fs.Bool("legacy", false, "Treat text without a protocol as an empty ipfs pointer")
		text, ok := oneArg(fs, args[1:], "pns content decode [--legacy] <uri>", errOut)
		if !ok {
			return 2
		}
		b, _, err := contenturi.DecodeWithOptions(text, contenturi.Options{Mode: modeFor(*legacy)})
		if err != nil {
			fmt.Fprintf(errOut, "decode: %v\n", err)
			return 1
		}
		_, _ = fmt.Fprintln(out, "0x"+hex.EncodeToString(b))
		return 0
	case "encode":
		fs := flag.NewFlagSet("content encode", flag.ContinueOnError)
		proto := fs.String("protocol", string(contenturi.IPFS), "URI scheme")
		raw, ok := oneArg(fs, args[1:], "pns content encode [--protocol ipfs] <0xhex>", errOut)
		if !ok {
			return 2
		}
		p := contenturi.Protocol(*proto)
		if !p.Valid() {
			fmt.Fprintf(errOut, "unknown protocol: %s\n", *proto)
			return 2
		}
		b, err := hex.DecodeString(strings.TrimPrefix(raw, "0x"))
		if err != nil {
			fmt.Fprintf(errOut, "invalid hex: %v\n", err)
			return 1
		}
		_, _ = fmt.Fprintln(out, contenturi.Encode(p, b))
		return 0
	case "hash":
		text, ok := oneArg(flag.NewFlagSet("content hash", flag.ContinueOnError), args[1:], "pns content hash <uri>", errOut)
		if !ok {
			return 2
		}
		u, found := contenturi.Parse(text)
		if !found {
			fmt.Fprintln(errOut, contenturi.ErrNoProtocol)
			return 1
		}
		b, err := contenturi.Contenthash(u)
		if err != nil {
			fmt.Fprintf(errOut, "contenthash: %v\n", err)
			return 1
		}
		_, _ = fmt.Fprintln(out, "0x"+hex.EncodeToString(b))
		return 0
	case "cid":
		path, ok := oneArg(flag.NewFlagSet("content cid", flag.ContinueOnError), args[1:], "pns content cid <file>", errOut)
		if !ok {
			return 2
		}
		b, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(errOut, "read %s: %v\n", filepath.Base(path), err)
			return 1
		}
		u, err := contenturi.FromBytes(b)
		if err != nil {
			fmt.Fprintf(errOut, "cid: %v\n", err)
			return 1
		}
		_, _ = fmt.Fprintln(out, u)
		return 0
	default:
		fmt.Fprintf(errOut, "unknown content subcommand: %s\n", args[0])
		return 2
	}
}

func cmdConfig(args []string, out io.Writer, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "usage: pns config <subcommand> ...")
		fmt.Fprintln(errOut, "subcommands: check, default")
		return 2
	}
	switch args[0] {
	case "check":
		path, ok := oneArg(flag.NewFlagSet("config check", flag.ContinueOnError), args[1:], "pns config check <file>", errOut)
		if !ok {
			return 2
		}
		cfg, err := config.LoadFile(path)
		if err != nil {
			fmt.Fprintf(errOut, "invalid config: %v\n", err)
			return 1
		}
		_, _ = fmt.Fprintf(out, "OK (%d networks, default chain %d)\n", len(cfg.Networks), cfg.DefaultChainID)
		return 0
	case "default":
		b, err := json.MarshalIndent(config.Default(), "", "  ")
		if err != nil {
			fmt.Fprintf(errOut, "encode: %v\n", err)
			return 1
		}
		_, _ = fmt.Fprintln(out, string(b))
		return 0
	default:
		fmt.Fprintf(errOut, "unknown config subcommand: %s\n", args[0])
		return 2
	}
}

// dirList is a repeatable string flag.
type dirList []string

func (d *dirList) String() string { return strings.Join(*d, ",") }

func (d *dirList) Set(v string) error {
	if v == "" {
		return errors.New("empty directory")
	}
	*d = append(*d, v)
	return nil
}

// openMirror builds the record store for the record command. Every writable
// directory receives each write; fallback directories are only read, and a
// record found there is copied into the writable set on its next update.
func openMirror(writable, fallback []string) (storage.Store, error) {
	backends := make([]storage.NamedStore, 0, len(writable))
	seen := make(map[string]bool, len(writable))
	for _, dir := range writable {
		if seen[dir] {
			continue
		}
		seen[dir] = true
		s, err := localfs.New(dir)
		if err != nil {
			return nil, fmt.Errorf("open store %s: %w", dir, err)
		}
		backends = append(backends, storage.NamedStore{Name: dir, Store: s})
	}
	var primary storage.Store = storage.ReplicatingStore{Backends: backends}
	if len(backends) == 1 {
		primary = backends[0].Store
	}
	if len(fallback) == 0 {
		return primary, nil
	}
	stores := []storage.Store{primary}
	for _, dir := range fallback {
		s, err := localfs.New(dir)
		if err != nil {
			return nil, fmt.Errorf("open fallback %s: %w", dir, err)
		}
		stores = append(stores, s)
	}
	return storage.MultiStore{Stores: stores}, nil
}

func cmdRecord(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("record", flag.ContinueOnError)
	fs.SetOutput(errOut)
	var dirs, fallbacks dirList
	fs.Var(&dirs, "store", "Local mirror directory (repeatable; every directory receives each write)")
	fs.Var(&fallbacks, "fallback", "Read-only mirror directory consulted after --store (repeatable)")
	cfgPath := fs.String("config", "", "Config file supplying coin types, the default resolver and extra mirrors")
	chainID := fs.Uint64("chain", 0, "Chain id selecting the network in --config (0 = default_chain_id)")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	rest := fs.Args()
	if len(rest) < 2 {
		fmt.Fprintln(errOut, "usage: pns record --store <dir> [--config <file>] <set-owner|set-resolver|set-text|set-addr|set-content|set-subname-owner|details> <name> ...")
		return 2
	}

	var opts []client.Option
	if *cfgPath != "" {
		cfg, err := config.LoadFile(*cfgPath)
		if err != nil {
			fmt.Fprintf(errOut, "config: %v\n", err)
			return 1
		}
		network, ok := cfg.Network(*chainID)
		if !ok {
			fmt.Fprintf(errOut, "config: no network for chain %d\n", *chainID)
			return 1
		}
		opts = append(opts, client.WithCoinTypes(cfg.CoinTypes), client.WithDefaultResolver(network.Resolver))
		dirs = append(dirs, cfg.Mirrors...)
	} else if *chainID != 0 {
		fmt.Fprintln(errOut, "record: --chain requires --config")
		return 2
	}
	if len(dirs) == 0 {
		fmt.Fprintln(errOut, "record: at least one --store directory is required")
		return 2
	}

	store, err := openMirror(dirs, fallbacks)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}
	reg := storage.NewRegistry(store)
	c := client.New(reg, reg, opts...)
	ctx := context.Background()

	sub, name, params := rest[0], rest[1], rest[2:]
	arity := map[string][2]int{
		"set-owner":         {1, 1},
		"set-resolver":      {0, 1},
		"set-text":          {2, 2},
		"set-addr":          {2, 2},
		"set-content":       {1, 1},
		"set-subname-owner": {2, 2},
		"details":           {0, 0},
	}
	n, known := arity[sub]
	if !known {
		fmt.Fprintf(errOut, "unknown record subcommand: %s\n", sub)
		return 2
	}
	if len(params) < n[0] || len(params) > n[1] {
		fmt.Fprintf(errOut, "record %s: expected %d to %d arguments after the name, got %d\n", sub, n[0], n[1], len(params))
		return 2
	}

	switch sub {
	case "set-owner":
		err = c.SetOwner(ctx, name, model.Address(params[0]))
	case "set-resolver":
		var res model.Address
		if len(params) == 1 {
			res = model.Address(params[0])
		}
		err = c.SetResolver(ctx, name, res)
	case "set-subname-owner":
		_, err = c.SetSubnameOwner(ctx, name, params[0], model.Address(params[1]))
	case "set-text":
		err = c.SetText(ctx, name, params[0], params[1])
	case "set-addr":
		err = c.SetAddr(ctx, name, params[0], params[1])
	case "set-content":
		err = c.SetContent(ctx, name, params[0])
	case "details":
		d, derr := c.DomainDetails(ctx, name)
		if derr != nil {
			fmt.Fprintf(errOut, "details: %v\n", derr)
			return 1
		}
		b, jerr := json.MarshalIndent(d, "", "  ")
		if jerr != nil {
			fmt.Fprintf(errOut, "encode: %v\n", jerr)
			return 1
		}
		_, _ = fmt.Fprintln(out, string(b))
		return 0
	}
	if err != nil {
		if errors.Is(err, contenturi.ErrNoProtocol) {
			fmt.Fprintf(errOut, "record %s: content must start with a protocol such as ipfs://\n", sub)
		} else {
			fmt.Fprintf(errOut, "record %s: %v\n", sub, err)
		}
		return 1
	}
	_, _ = fmt.Fprintln(out, "OK")
	return 0
}

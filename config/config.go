// Package config describes the deployments a client can talk to.
//
// Contract addresses and coin types are plain data handed to the network
// layer; nothing in the hashing or validation core reads them.
package config

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"go.uber.org/multierr"

	"github.com/hzy1919/pns-sdk/model"
)

// Config is loaded from JSON.
//
// Example:
//
//	{
//	  "tld": "dot",
//	  "default_chain_id": 1281,
//	  "networks": [
//	    {"chain_id": 1281, "name": "moonbeam-dev",
//	     "registry": "0x3ed6...", "resolver": "0x962c...", "registrar": "0x5CC3..."}
//	  ],
//	  "coin_types": {"BTC": 0, "ETH": 60, "DOT": 354, "KSM": 434},
//	  "mirrors": ["/var/lib/pns/a", "/var/lib/pns/b"]
//	}
//
// coin_types is optional and defaults to model.DefaultCoinTypes. mirrors lists
// extra local record directories that receive every write.
type Config struct {
	TLD            string                    `json:"tld"`
	DefaultChainID uint64                    `json:"default_chain_id,omitempty"`
	Networks       []Network                 `json:"networks"`
	CoinTypes      map[string]model.CoinType `json:"coin_types,omitempty"`
	Mirrors        []string                  `json:"mirrors,omitempty"`
}

// Network holds the contract addresses of one deployment.
type Network struct {
	ChainID   uint64        `json:"chain_id"`
	Name      string        `json:"name,omitempty"`
	Registry  model.Address `json:"registry"`
	Resolver  model.Address `json:"resolver"`
	Registrar model.Address `json:"registrar"`
}

// Default returns the deployments the SDK shipped with.
func Default() Config {
	return Config{
		TLD:            "dot",
		DefaultChainID: 1281,
		Networks: []Network{
			{
				ChainID:   1281,
				Name:      "moonbeam-dev",
				Registry:  "0x3ed62137c5DB927cb137c26455969116BF0c23Cb",
				Resolver:  "0x962c0940d72E7Db6c9a5F81f1cA87D8DB2B82A23",
				Registrar: "0x5CC307268a1393AB9A764A20DACE848AB8275c46",
			},
			{
				ChainID:   4,
				Name:      "rinkeby",
				Registry:  "0x54CF46151d90b0a7880E4cBA8528dFBBeB718546",
				Resolver:  "0xFD1d96e2F2a039F7b41Bf09a9793E558D474e537",
				Registrar: "0x3a2c8F8e6c7095B59EA18A34f009887B6B9bfCbb",
			},
		},
		CoinTypes: model.DefaultCoinTypes(),
	}
}

func LoadFile(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, errors.New("config: empty config path")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	return Parse(b)
}

// Parse decodes and validates a JSON config.
func Parse(b []byte) (Config, error) {
	var cfg Config
	if err := json.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if cfg.CoinTypes == nil {
		cfg.CoinTypes = model.DefaultCoinTypes()
	}
	return cfg, cfg.Validate()
}

// Validate reports every problem found, not only the first.
func (c Config) Validate() error {
	var errs error
	if c.TLD == "" {
		errs = multierr.Append(errs, errors.New("config: tld is required"))
	} else if strings.Contains(c.TLD, ".") {
		errs = multierr.Append(errs, fmt.Errorf("config: tld %q must be a single label", c.TLD))
	}
	if len(c.Networks) == 0 {
		errs = multierr.Append(errs, errors.New("config: at least one network is required"))
	}
	seen := make(map[uint64]struct{}, len(c.Networks))
	for _, n := range c.Networks {
		if _, ok := seen[n.ChainID]; ok {
			errs = multierr.Append(errs, fmt.Errorf("config: duplicate chain_id %d", n.ChainID))
		}
		seen[n.ChainID] = struct{}{}
		for _, f := range []struct {
			field string
			addr  model.Address
		}{{"registry", n.Registry}, {"resolver", n.Resolver}, {"registrar", n.Registrar}} {
			if err := checkAddress(f.addr); err != nil {
				errs = multierr.Append(errs, fmt.Errorf("config: chain %d %s: %w", n.ChainID, f.field, err))
			}
		}
	}
	dirs := make(map[string]struct{}, len(c.Mirrors))
	for i, m := range c.Mirrors {
		if m == "" {
			errs = multierr.Append(errs, fmt.Errorf("config: mirrors[%d] is empty", i))
			continue
		}
		if _, ok := dirs[m]; ok {
			errs = multierr.Append(errs, fmt.Errorf("config: duplicate mirror %q", m))
		}
		dirs[m] = struct{}{}
	}
	if c.DefaultChainID != 0 && len(c.Networks) > 0 {
		if _, ok := seen[c.DefaultChainID]; !ok {
			errs = multierr.Append(errs, fmt.Errorf("config: default_chain_id %d has no network", c.DefaultChainID))
		}
	}
	return errs
}

func checkAddress(a model.Address) error {
	s := string(a)
	if !strings.HasPrefix(s, "0x") {
		return fmt.Errorf("address %q must be 0x-prefixed", s)
	}
	b, err := hex.DecodeString(s[2:])
	if err != nil {
		return fmt.Errorf("address %q is not hex", s)
	}
	if len(b) != 20 {
		return fmt.Errorf("address %q must be 20 bytes, got %d", s, len(b))
	}
	return nil
}

// Network returns the deployment for chainID. A zero chainID selects
// DefaultChainID.
func (c Config) Network(chainID uint64) (Network, bool) {
	if chainID == 0 {
		chainID = c.DefaultChainID
	}
	for _, n := range c.Networks {
		if n.ChainID == chainID {
			return n, true
		}
	}
	return Network{}, false
}

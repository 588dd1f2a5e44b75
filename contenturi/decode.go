package contenturi

import (
	"encoding/hex"
	"fmt"

	"github.com/ipfs/go-cid"
	"github.com/mr-tron/base58"
	"github.com/multiformats/go-multihash"
	"github.com/multiformats/go-varint"

	"github.com/hzy1919/pns-sdk/compliance"
)

// Options controls decoding strictness. The zero value is compliance.Strict.
type Options struct {
	Mode compliance.Mode
}

// Decode parses text and base58-decodes its payload.
//
// Text with no recognized protocol yields ErrNoProtocol.
func Decode(text string) ([]byte, error) {
	b, _, err := DecodeWithOptions(text, Options{})
	return b, err
}

// DecodeWithOptions is Decode with an explicit compliance mode. It also
// returns the URI the payload was taken from.
//
// In Legacy mode unrecognized text is treated as protocol "ipfs://" with an
// empty payload and decodes to zero bytes without error.
func DecodeWithOptions(text string, opts Options) ([]byte, URI, error) {
	u, ok := Parse(text)
	if !ok {
		if opts.Mode != compliance.Legacy {
			return nil, URI{}, ErrNoProtocol
		}
		u = URI{Protocol: legacyFallback}
	}
	b, err := decodePayload(u.Payload)
	if err != nil {
		return nil, u, err
	}
	return b, u, nil
}

// DecodeHex returns the decoded payload as "0x" followed by lowercase hex.
func DecodeHex(text string) (string, error) {
	b, err := Decode(text)
	if err != nil {
		return "", err
	}
	return "0x" + hex.EncodeToString(b), nil
}

func decodePayload(payload string) ([]byte, error) {
	if payload == "" {
		return []byte{}, nil
	}
	b, err := base58.Decode(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	return b, nil
}

// Encode renders raw bytes as a scheme-prefixed base58 pointer.
func Encode(p Protocol, raw []byte) string {
	return URI{Protocol: p, Payload: base58.Encode(raw)}.String()
}

// CID decodes an ipfs or ipns payload as a content identifier.
func (u URI) CID() (cid.Cid, error) {
	if u.Protocol != IPFS && u.Protocol != IPNS {
		return cid.Undef, fmt.Errorf("%w: %s has no CID payload", ErrUnsupported, u.Protocol)
	}
	c, err := cid.Decode(u.Payload)
	if err != nil {
		return cid.Undef, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	return c, nil
}

// Multihash returns the decoded multihash of an ipfs or ipns payload.
func (u URI) Multihash() (*multihash.DecodedMultihash, error) {
	c, err := u.CID()
	if err != nil {
		return nil, err
	}
	dm, err := multihash.Decode(c.Hash())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	return dm, nil
}

// Multicodec namespaces used by binary contenthash records (EIP-1577).
const (
	codecIPFSNS uint64 = 0xe3
	codecIPNSNS uint64 = 0xe5
)

// Contenthash encodes u as a binary contenthash record: the namespace codec
// as an unsigned varint followed by the CIDv1 bytes.
func Contenthash(u URI) ([]byte, error) {
	var ns uint64
	var v0Codec uint64
	switch u.Protocol {
	case IPFS:
		ns, v0Codec = codecIPFSNS, cid.DagProtobuf
	case IPNS:
		ns, v0Codec = codecIPNSNS, cid.Libp2pKey
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, u.Protocol)
	}
	c, err := u.CID()
	if err != nil {
		return nil, err
	}
	if c.Version() == 0 {
		c = cid.NewCidV1(v0Codec, c.Hash())
	}
	out := varint.ToUvarint(ns)
	return append(out, c.Bytes()...), nil
}

// ParseContenthash is the inverse of Contenthash. A dag-pb sha2-256 ipfs CID
// is rendered in its familiar v0 form.
func ParseContenthash(b []byte) (URI, error) {
	ns, n, err := varint.FromUvarint(b)
	if err != nil {
		return URI{}, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	var p Protocol
	switch ns {
	case codecIPFSNS:
		p = IPFS
	case codecIPNSNS:
		p = IPNS
	default:
		return URI{}, fmt.Errorf("%w: namespace codec 0x%x", ErrUnsupported, ns)
	}
	c, err := cid.Cast(b[n:])
	if err != nil {
		return URI{}, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	if p == IPFS && c.Type() == cid.DagProtobuf && c.Prefix().MhType == multihash.SHA2_256 {
		c = cid.NewCidV0(c.Hash())
	}
	return URI{Protocol: p, Payload: c.String()}, nil
}

package contenturi

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/multiformats/go-multihash"

	"github.com/hzy1919/pns-sdk/compliance"
)

const exampleCIDv0 = "QmRAQB6YaCyidP37UdDnjFY5vQuiBrcqdyoW1CuDgwxkD4"

func TestParse(t *testing.T) {
	cases := []struct {
		in      string
		ok      bool
		proto   Protocol
		payload string
	}{
		{"ipfs://QmAbc", true, IPFS, "QmAbc"},
		{"/ipns/QmXyz", true, IPNS, "QmXyz"},
		{"not-a-uri", false, "", ""},
		{"sia://abc", true, Sia, "abc"},
		{"bzz://d1de9994", true, Bzz, "d1de9994"},
		{"onion://zqktlwi4fecvo6ri", true, Onion, "zqktlwi4fecvo6ri"},
		{"onion3://p53lf57qovyuvwsc", true, Onion3, "p53lf57qovyuvwsc"},
		{"/ipfs/QmAbc/index.html", true, IPFS, "QmAbc/index.html"},
		{"https://gateway.example/ipfs/QmAbc", true, IPFS, "QmAbc"},
		// The scheme form must be anchored at the start.
		{"xipfs://QmAbc", false, "", ""},
		{"http://QmAbc", false, "", ""},
		{"ipfs://", true, IPFS, ""},
		{"", false, "", ""},
	}
	for _, tc := range cases {
		got, ok := Parse(tc.in)
		if ok != tc.ok {
			t.Fatalf("Parse(%q) ok = %v, want %v", tc.in, ok, tc.ok)
		}
		if got.Protocol != tc.proto || got.Payload != tc.payload {
			t.Fatalf("Parse(%q) = %+v, want %s/%s", tc.in, got, tc.proto, tc.payload)
		}
	}
}

func TestParse_SchemeBeatsPath(t *testing.T) {
	got, ok := Parse("ipns:///ipfs/QmAbc")
	if !ok || got.Protocol != IPNS || got.Payload != "/ipfs/QmAbc" {
		t.Fatalf("first matching form must win, got %+v", got)
	}
	// Path forms: /ipfs/ is tried before /ipns/ even when /ipns/ comes first in the text.
	got, ok = Parse("/ipns/a/ipfs/b")
	if !ok || got.Protocol != IPFS || got.Payload != "b" {
		t.Fatalf("got %+v", got)
	}
}

func TestProtocolValid(t *testing.T) {
	for _, p := range Protocols() {
		if !p.Valid() {
			t.Fatalf("%s should be valid", p)
		}
	}
	if Protocol("http").Valid() || legacyFallback.Valid() {
		t.Fatalf("unexpected valid protocol")
	}
}

func TestDecode(t *testing.T) {
	got, err := Decode("ipfs://" + exampleCIDv0)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	want, _ := hex.DecodeString("122029f2d17be6139079dc48696d1f582a8530eb9805b561eda517e22a892c7e3f1f")
	if !bytes.Equal(got, want) {
		t.Fatalf("Decode = %x, want %x", got, want)
	}

	h, err := DecodeHex("/ipfs/3yZe7d")
	if err != nil || h != "0x74657374" {
		t.Fatalf("DecodeHex = %q, %v", h, err)
	}
}

func TestDecode_NoProtocol(t *testing.T) {
	if _, err := Decode("not-a-uri"); !IsNoProtocol(err) {
		t.Fatalf("Decode(not-a-uri) err = %v, want ErrNoProtocol", err)
	}
}

func TestDecode_LegacyFallback(t *testing.T) {
	b, u, err := DecodeWithOptions("not-a-uri", Options{Mode: compliance.Legacy})
	if err != nil {
		t.Fatalf("legacy decode: %v", err)
	}
	if len(b) != 0 || u.Protocol != "ipfs://" || u.Payload != "" {
		t.Fatalf("legacy fallback = %x %+v", b, u)
	}
}

func TestDecode_InvalidBase58(t *testing.T) {
	_, err := Decode("ipfs://0OIl")
	if !errors.Is(err, ErrInvalidPayload) {
		t.Fatalf("err = %v, want ErrInvalidPayload", err)
	}
}

func TestEncode_RoundTrip(t *testing.T) {
	raw := []byte{0x00, 0x01, 0x02, 0x03}
	s := Encode(IPFS, raw)
	if s != "ipfs://1Ldp" {
		t.Fatalf("Encode = %q", s)
	}
	got, err := Decode(s)
	if err != nil || !bytes.Equal(got, raw) {
		t.Fatalf("Decode(Encode) = %x, %v", got, err)
	}
}

func TestURI_CIDAndMultihash(t *testing.T) {
	u := URI{Protocol: IPFS, Payload: exampleCIDv0}
	c, err := u.CID()
	if err != nil {
		t.Fatalf("CID: %v", err)
	}
	if c.Version() != 0 || c.String() != exampleCIDv0 {
		t.Fatalf("unexpected CID %s", c)
	}
	dm, err := u.Multihash()
	if err != nil {
		t.Fatalf("Multihash: %v", err)
	}
	if dm.Code != multihash.SHA2_256 || dm.Length != 32 {
		t.Fatalf("unexpected multihash %+v", dm)
	}

	if _, err := (URI{Protocol: Sia, Payload: "abc"}).CID(); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("Sia CID err = %v", err)
	}
	if _, err := (URI{Protocol: IPFS, Payload: "QmAbc"}).CID(); !errors.Is(err, ErrInvalidPayload) {
		t.Fatalf("short CID err = %v", err)
	}
}

func TestContenthash_EIP1577Vector(t *testing.T) {
	u := URI{Protocol: IPFS, Payload: exampleCIDv0}
	b, err := Contenthash(u)
	if err != nil {
		t.Fatalf("Contenthash: %v", err)
	}
	want := "e3010170122029f2d17be6139079dc48696d1f582a8530eb9805b561eda517e22a892c7e3f1f"
	if hex.EncodeToString(b) != want {
		t.Fatalf("Contenthash = %x, want %s", b, want)
	}

	back, err := ParseContenthash(b)
	if err != nil {
		t.Fatalf("ParseContenthash: %v", err)
	}
	if back != u {
		t.Fatalf("ParseContenthash = %+v, want %+v", back, u)
	}
}

func TestContenthash_Unsupported(t *testing.T) {
	if _, err := Contenthash(URI{Protocol: Bzz, Payload: "abc"}); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("err = %v", err)
	}
	if _, err := ParseContenthash([]byte{0xe4, 0x01, 0x00}); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("err = %v", err)
	}
	if _, err := ParseContenthash(nil); !errors.Is(err, ErrInvalidPayload) {
		t.Fatalf("err = %v", err)
	}
}

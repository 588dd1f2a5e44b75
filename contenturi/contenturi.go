// Package contenturi parses and decodes the content pointers stored in a
// name's content record, such as "ipfs://Qm..." or "/ipns/k51...".
package contenturi

import (
	"regexp"
)

// Protocol is the scheme tag of a content pointer.
type Protocol string

const (
	IPFS   Protocol = "ipfs"
	Sia    Protocol = "sia"
	IPNS   Protocol = "ipns"
	Bzz    Protocol = "bzz"
	Onion  Protocol = "onion"
	Onion3 Protocol = "onion3"
)

// legacyFallback is the protocol earlier releases reported when nothing matched.
const legacyFallback Protocol = "ipfs://"

// Protocols returns the recognized protocols in matching order.
func Protocols() []Protocol {
	return []Protocol{IPFS, Sia, IPNS, Bzz, Onion, Onion3}
}

func (p Protocol) Valid() bool {
	for _, q := range Protocols() {
		if p == q {
			return true
		}
	}
	return false
}

// URI is a parsed content pointer.
type URI struct {
	Protocol Protocol
	Payload  string
}

// String renders the scheme-prefixed form.
func (u URI) String() string {
	return string(u.Protocol) + "://" + u.Payload
}

// Accepted forms, tried in order. The path forms are not anchored and match
// anywhere in the text, e.g. inside a gateway URL.
var forms = []*regexp.Regexp{
	regexp.MustCompile(`^(ipfs|sia|ipns|bzz|onion|onion3)://(.*)`),
	regexp.MustCompile(`/(ipfs)/(.*)`),
	regexp.MustCompile(`/(ipns)/(.*)`),
}

// Parse matches text against the accepted forms; the first match wins.
// ok is false when no form matches, which is not an error.
func Parse(text string) (u URI, ok bool) {
	for _, re := range forms {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		return URI{Protocol: Protocol(m[1]), Payload: m[2]}, true
	}
	return URI{}, false
}

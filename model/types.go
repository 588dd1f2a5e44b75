package model

import "strings"

// Address is a 0x-prefixed hex account or contract address.
type Address string

const (
	// EmptyAddress is what registry reads return for unset owners and records.
	EmptyAddress Address = "0x0000000000000000000000000000000000000000"
	// EmptyNode is the hex form of the namespace root.
	EmptyNode = "0x0000000000000000000000000000000000000000000000000000000000000000"
)

// IsEmpty reports whether a is unset, either "" or the zero address.
func (a Address) IsEmpty() bool {
	return a == "" || strings.EqualFold(string(a), string(EmptyAddress))
}

// CoinType is a SLIP-44 coin type used to key address records.
type CoinType uint64

// DefaultCoinTypes maps the ticker symbols the SDK understands to coin types.
func DefaultCoinTypes() map[string]CoinType {
	return map[string]CoinType{
		"BTC": 0,
		"ETH": 60,
		"DOT": 354,
		"KSM": 434,
	}
}

// AddrSymbols is the order address records are listed in DomainDetails.
var AddrSymbols = []string{"BTC", "ETH", "DOT", "KSM"}

// TextRecordKeys are the text records read for DomainDetails.
var TextRecordKeys = []string{
	"email",
	"url",
	"avatar",
	"description",
	"notice",
	"keywords",
	"com.twitter",
	"com.github",
}

type KeyValue struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Content is a rendered content record.
type Content struct {
	Value       string `json:"value"`
	ContentType string `json:"contentType"`
}

const (
	ContentTypeHash  = "contenthash"
	ContentTypeError = "error"
)

// DomainDetails is the aggregated view of a single name.
type DomainDetails struct {
	Name        string     `json:"name"`
	Label       string     `json:"label"`
	LabelHash   string     `json:"labelhash"`
	Node        string     `json:"node"`
	Owner       Address    `json:"owner"`
	TTL         uint64     `json:"ttl"`
	Resolver    Address    `json:"nameResolver"`
	Content     string     `json:"content"`
	ContentType string     `json:"contentType,omitempty"`
	Addrs       []KeyValue `json:"addrs"`
	TextRecords []KeyValue `json:"textRecords"`
}

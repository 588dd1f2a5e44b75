package domain

import "sort"

// slds are composite suffixes treated as a single top-level unit when
// splitting a candidate into labels.
var slds = map[string]bool{
	"ac.cn":  true,
	"com.cn": true,
	"edu.cn": true,
	"gov.cn": true,
	"mil.cn": true,
	"net.cn": true,
	"org.cn": true,
}

// IsSLD reports whether suffix is a known composite suffix such as "com.cn".
func IsSLD(suffix string) bool { return slds[suffix] }

// SLDs returns the known composite suffixes, sorted.
func SLDs() []string {
	out := make([]string, 0, len(slds))
	for s := range slds {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// Package domain decides whether a candidate name is a syntactically valid,
// registrable domain.
package domain

import (
	"regexp"
	"strings"
)

const (
	// MaxNameLength bounds the normalized candidate.
	MaxNameLength = 253
	// MaxLabelLength is one more than the longest accepted label.
	MaxLabelLength = 64
)

// Options mirrors the validator's option object. The zero value allows
// subdomains and no wildcard.
type Options struct {
	// Wildcard accepts a literal "*" as the first of several labels.
	Wildcard bool
	// NoSubdomains rejects candidates with more than one label below the suffix.
	NoSubdomains bool
}

var (
	validChars      = regexp.MustCompile(`^[a-z0-9\-._*]+$`)
	sldPattern      = regexp.MustCompile(`(.*)\.([a-z0-9]+\.[a-z0-9]+)`)
	innerLabelChars = regexp.MustCompile(`^[a-zA-Z0-9\-_]+$`)
	lastLabelChars  = regexp.MustCompile(`^[a-zA-Z0-9\-]+$`)
)

// IsWellFormed reports whether candidate is a well-formed domain name.
func IsWellFormed(candidate string, opts Options) bool {
	return Check(candidate, opts) == nil
}

// Check validates candidate and returns a *Error describing the first failed
// rule, or nil.
func Check(name string, opts Options) error {
	c := &candidate{raw: name, value: normalize(name), opts: opts}
	return validateRules(c, nameRules)
}

func normalize(s string) string {
	s = strings.ToLower(s)
	return strings.TrimSuffix(s, ".")
}

var nameRules = []rule{
	{ID: "PNS-DOM-001", Apply: func(c *candidate) error {
		if len(c.value) > MaxNameLength {
			return nameError("PNS-DOM-001", ReasonTooLong, c.raw)
		}
		return nil
	}},
	{ID: "PNS-DOM-002", Apply: func(c *candidate) error {
		if !validChars.MatchString(c.value) {
			return nameError("PNS-DOM-002", ReasonInvalidChars, c.raw)
		}
		return nil
	}},
	{ID: "PNS-DOM-003", Apply: splitLabels},
	{ID: "PNS-DOM-004", Apply: func(c *candidate) error {
		if c.opts.NoSubdomains && len(c.labels) > 1 {
			return nameError("PNS-DOM-004", ReasonSubdomain, c.raw)
		}
		return nil
	}},
	{ID: "PNS-DOM-005", Apply: func(c *candidate) error {
		for i, l := range c.labels {
			if err := checkLabel(c, i, l); err != nil {
				return err
			}
		}
		return nil
	}},
}

// splitLabels strips the suffix from the candidate. A known composite suffix
// ("com.cn") is removed as a unit; otherwise the last segment is the suffix
// and at least one label must remain.
func splitLabels(c *candidate) error {
	if m := sldPattern.FindStringSubmatch(c.value); m != nil && IsSLD(m[2]) {
		c.labels = strings.Split(m[1], ".")
		return nil
	}
	labels := strings.Split(c.value, ".")
	if len(labels) <= 1 {
		return nameError("PNS-DOM-003", ReasonNoTLD, c.raw)
	}
	c.labels = labels[:len(labels)-1]
	return nil
}

func checkLabel(c *candidate, i int, l string) error {
	if c.opts.Wildcard && i == 0 && l == "*" && len(c.labels) > 1 {
		return nil
	}
	// Every "--" must belong to an "xn--" punycode marker.
	if strings.Count(l, "--") != strings.Count(l, "xn--") {
		return labelError("PNS-DOM-011", ReasonPunycode, c.raw, l, i)
	}
	chars := innerLabelChars
	if i == len(c.labels)-1 {
		chars = lastLabelChars
	}
	if !chars.MatchString(l) {
		return labelError("PNS-DOM-012", ReasonLabelChars, c.raw, l, i)
	}
	if len(l) >= MaxLabelLength {
		return labelError("PNS-DOM-013", ReasonLabelLength, c.raw, l, i)
	}
	if strings.HasPrefix(l, "-") || strings.HasSuffix(l, "-") {
		return labelError("PNS-DOM-014", ReasonHyphen, c.raw, l, i)
	}
	return nil
}

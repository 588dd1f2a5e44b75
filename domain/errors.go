package domain

import (
	"errors"
	"fmt"
)

// Reason is a stable code naming why a candidate was rejected.
//
// The boolean API (IsWellFormed) does not report these; Check exposes them
// for diagnostics.
type Reason string

const (
	ReasonTooLong      Reason = "TooLong"
	ReasonInvalidChars Reason = "InvalidChars"
	ReasonNoTLD        Reason = "NoTLD"
	ReasonSubdomain    Reason = "Subdomain"
	ReasonPunycode     Reason = "Punycode"
	ReasonLabelChars   Reason = "LabelChars"
	ReasonLabelLength  Reason = "LabelLength"
	ReasonHyphen       Reason = "Hyphen"
	ReasonLength       Reason = "Length"
)

// Error describes a rejected candidate. Label and Index are set for
// per-label failures; Index is -1 otherwise.
type Error struct {
	Reason Reason
	RuleID string
	Name   string
	Label  string
	Index  int
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Index >= 0 {
		return fmt.Sprintf("domain: %q: label %d (%q): %s", e.Name, e.Index, e.Label, e.Reason)
	}
	return fmt.Sprintf("domain: %q: %s", e.Name, e.Reason)
}

func nameError(ruleID string, reason Reason, name string) error {
	return &Error{Reason: reason, RuleID: ruleID, Name: name, Index: -1}
}

func labelError(ruleID string, reason Reason, name, label string, index int) error {
	return &Error{Reason: reason, RuleID: ruleID, Name: name, Label: label, Index: index}
}

// ReasonOf returns the Reason carried by err, or "" if err is not a *Error.
func ReasonOf(err error) Reason {
	var e *Error
	if !errors.As(err, &e) {
		return ""
	}
	return e.Reason
}

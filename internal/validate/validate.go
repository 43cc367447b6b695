package validate

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/citizenhub/backend/internal/db/models"
)

// Result is the outcome of validating one input. A nil *Result (or
// OK) means the input passed; otherwise Field and Reason say what was
// wrong, before anything touches the store.
type Result struct {
	Field  string
	Reason string
}

func (r *Result) OK() bool {
	return r == nil
}

func (r *Result) Error() string {
	return fmt.Sprintf("%s: %s", r.Field, r.Reason)
}

func fail(field, reason string) *Result {
	return &Result{Field: field, Reason: reason}
}

// Email checks addr is a plausible single mailbox address.
func Email(addr string) *Result {
	if strings.TrimSpace(addr) == "" {
		return fail("email", "required")
	}
	parsed, err := mail.ParseAddress(addr)
	if err != nil || parsed.Address != addr {
		return fail("email", "not a valid address")
	}
	return nil
}

// Language checks lang is a supported language code. Empty is allowed;
// the caller substitutes the default.
func Language(lang models.Language) *Result {
	if lang == "" {
		return nil
	}
	if !models.ValidLanguage(lang) {
		return fail("preferred_language", "must be one of: en, hi")
	}
	return nil
}

// DocType checks t names a supported document type.
func DocType(t models.DocType) *Result {
	if !models.ValidDocType(t) {
		return fail("doc_type", "must be one of: aadhaar, pan, dl, voter, passport")
	}
	return nil
}

// Amount checks a payment amount is non-negative.
func Amount(amount float64) *Result {
	if amount < 0 {
		return fail("amount", "must be non-negative")
	}
	return nil
}

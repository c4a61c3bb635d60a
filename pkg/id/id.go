package id

import "github.com/google/uuid"

// New returns a fresh random UUID in the canonical 36-char form.
func New() string { return uuid.NewString() }

// Valid reports whether s is well-formed canonical UUID syntax. It accepts
// only the dashed 36-char form, so values like raw hex or urn prefixes are
// rejected before any store lookup happens.
func Valid(s string) bool {
	if len(s) != 36 {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

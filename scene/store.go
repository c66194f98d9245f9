// Package scene keeps generated curves as named objects.
//
// Names follow the usual DCC convention: asking to create an object whose
// name is taken yields the name with the smallest free numeric suffix
// (winding_circle, winding_circle1, winding_circle2, ...). Upsert replaces
// the object under the exact name instead.
package scene

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"windingcircle/curve"
)

// ErrNotFound is returned by Get for names the store does not hold
var ErrNotFound = errors.New("object not found")

// ErrBadName is returned for names that cannot be stored
var ErrBadName = errors.New("bad object name")

// Store holds named curve objects
type Store interface {
	// Upsert stores seq under name, replacing any object already there
	Upsert(name string, seq curve.Sequence) (replaced bool, err error)
	// Create stores seq under name or, if taken, the first free suffixed name
	Create(name string, seq curve.Sequence) (string, error)
	Get(name string) (curve.Sequence, error)
	Delete(name string) (bool, error)
	// Names lists the stored objects in sorted order
	Names() []string
}

var validName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// CheckName rejects names that are not identifiers
func CheckName(name string) error {
	if !validName.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrBadName, name)
	}
	return nil
}

var trailingDigits = regexp.MustCompile(`[0-9]+$`)

// FreeName returns name if taken reports false for it, otherwise the base
// name (without trailing digits) with the smallest free suffix
func FreeName(name string, taken func(string) bool) string {
	if !taken(name) {
		return name
	}
	base := trailingDigits.ReplaceAllString(name, "")
	for i := 1; ; i++ {
		candidate := base + strconv.Itoa(i)
		if !taken(candidate) {
			return candidate
		}
	}
}

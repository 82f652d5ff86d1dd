package names

import (
	"errors"
	"fmt"
	"strings"
)

// Label is the part of a DNS name contained within dots.
type Label string

// Validate returns nil if the name is valid.
func (n Label) Validate() error {
	if n == "" {
		return errors.New("label must not be empty")
	}

	if strings.Contains(string(n), ".") {
		return fmt.Errorf("label '%s' is invalid, contains unexpected dots", string(n))
	}

	return nil
}

// String returns a representation of the name as used by DNS systems.
// It panics if the name is not valid.
func (n Label) String() string {
	if err := n.Validate(); err != nil {
		panic(err)
	}

	return string(n)
}

package names

import (
	"errors"
	"fmt"
	"strings"
)

// FQDN is a fully-qualified internet domain name.
type FQDN string

// ParseFQDN parses n as a fully-qualified domain name.
func ParseFQDN(n string) (FQDN, error) {
	v := FQDN(n)
	return v, v.Validate()
}

// MustParseFQDN parses n as a fully-qualified domain name.
// It panics if n is invalid.
func MustParseFQDN(n string) FQDN {
	v, err := ParseFQDN(n)
	if err != nil {
		panic(err)
	}
	return v
}

// IsRelative returns false.
func (n FQDN) IsRelative() bool {
	return false
}

// Qualify returns n unchanged.
func (n FQDN) Qualify(FQDN) FQDN {
	return n
}

// Labels returns the DNS labels that form this name.
// It panics if the name is not valid.
func (n FQDN) Labels() []Label {
	s := n.String()
	var labels []Label

	for {
		i := strings.Index(s, ".")
		if i == -1 {
			return labels
		}

		labels = append(labels, Label(s[:i]))
		s = s[i+1:]
	}
}

// Validate returns nil if the name is valid.
func (n FQDN) Validate() error {
	if n == "" {
		return errors.New("fully-qualified name must not be empty")
	}

	if n[0] == '.' {
		return fmt.Errorf("fully-qualified name '%s' is invalid, unexpected leading dot", string(n))
	}

	if n[len(n)-1] != '.' {
		return fmt.Errorf("fully-qualified name '%s' is invalid, missing trailing dot", string(n))
	}

	return nil
}

// String returns a representation of the name as used by DNS systems.
// It panics if the name is not valid.
func (n FQDN) String() string {
	if err := n.Validate(); err != nil {
		panic(err)
	}

	return string(n)
}

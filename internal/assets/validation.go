package assets

import (
	"fmt"
	"regexp"
)

// Style names double as file names below {base}/styles, so only short
// identifiers are accepted.
var styleNamePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]{0,63}$`)

// ValidateStyleName accepts names made of letters, digits, hyphens and
// underscores, starting with a letter or digit.
func ValidateStyleName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidStyleName)
	}
	if !styleNamePattern.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidStyleName, name)
	}
	return nil
}

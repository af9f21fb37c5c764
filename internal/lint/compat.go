package lint

import (
	"errors"
	"fmt"
)

// ErrDuplicateRule is returned when two enabled rules share a name.
var ErrDuplicateRule = errors.New("duplicate rule")

// ErrIncompatibleRules is returned when two enabled rules declare each
// other incompatible.
var ErrIncompatibleRules = errors.New("incompatible rules")

// CheckCompatibility verifies that an enabled rule set is consistent: no
// duplicate names, and no pair where one rule lists the other in its
// IncompatibleWith metadata. The declaration is directional in metadata
// but symmetric in effect.
func CheckCompatibility(rules []Rule) error {
	names := make(map[string]struct{}, len(rules))
	for _, rule := range rules {
		if rule == nil {
			continue
		}
		name := rule.Info().Name
		if _, dup := names[name]; dup {
			return fmt.Errorf("%w: %q enabled twice", ErrDuplicateRule, name)
		}
		names[name] = struct{}{}
	}

	for _, rule := range rules {
		if rule == nil {
			continue
		}
		info := rule.Info()
		for _, other := range info.IncompatibleWith {
			if _, enabled := names[other]; enabled {
				return fmt.Errorf("%w: %q cannot be enabled together with %q", ErrIncompatibleRules, info.Name, other)
			}
		}
	}

	return nil
}

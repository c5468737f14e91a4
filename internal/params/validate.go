package params

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// OneOf returns a validator that accepts only the listed string values.
func OneOf(allowed ...string) func(cty.Value) error {
	return func(val cty.Value) error {
		var s string
		if err := gocty.FromCtyValue(val, &s); err != nil {
			return err
		}
		for _, a := range allowed {
			if s == a {
				return nil
			}
		}
		return fmt.Errorf("must be one of: %s", strings.Join(allowed, ", "))
	}
}

// NonNegative returns a validator that rejects negative numbers.
func NonNegative() func(cty.Value) error {
	return func(val cty.Value) error {
		var f float64
		if err := gocty.FromCtyValue(val, &f); err != nil {
			return err
		}
		if f < 0 {
			return errors.New("must not be negative")
		}
		return nil
	}
}

package params

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// InvalidOptionError reports a user-supplied option value that failed
// validation against its declaration. It is terminal for the run; there is
// no fallback value.
type InvalidOptionError struct {
	Section string
	Option  string
	Reason  string
}

// Error implements the error interface for InvalidOptionError.
func (e *InvalidOptionError) Error() string {
	return fmt.Sprintf("invalid option '%s' in section '%s': %s", e.Option, e.Section, e.Reason)
}

// Parse decodes one model's options body against the section's declarations.
// A nil body yields the declared defaults. Unknown attributes, values that
// don't convert to the declared type, and values rejected by a validator all
// surface as InvalidOptionError.
//
// Option values must be literals; expressions are evaluated with no
// variables in scope.
func (s *Section) Parse(body hcl.Body) (*Values, error) {
	vals := &Values{section: s.name, vals: make(map[string]cty.Value, len(s.opts))}

	// Start from the declared defaults.
	for name, opt := range s.opts {
		vals.vals[name] = opt.Default
	}

	if body != nil {
		attrs, diags := body.JustAttributes()
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to read options for '%s': %w", s.name, diags)
		}

		for name, attr := range attrs {
			opt, declared := s.opts[name]
			if !declared {
				return nil, &InvalidOptionError{
					Section: s.name,
					Option:  name,
					Reason:  fmt.Sprintf("not declared by model '%s'", s.name),
				}
			}

			val, valDiags := attr.Expr.Value(nil)
			if valDiags.HasErrors() {
				return nil, &InvalidOptionError{
					Section: s.name,
					Option:  name,
					Reason:  valDiags.Error(),
				}
			}

			converted, err := convert.Convert(val, opt.Type)
			if err != nil {
				return nil, &InvalidOptionError{
					Section: s.name,
					Option:  name,
					Reason:  fmt.Sprintf("expected %s: %v", opt.Type.FriendlyName(), err),
				}
			}
			vals.vals[name] = converted
		}
	}

	// Validators run on the final values, so a bad default is caught too.
	for _, name := range s.order {
		opt := s.opts[name]
		if opt.Validate == nil {
			continue
		}
		if err := opt.Validate(vals.vals[name]); err != nil {
			return nil, &InvalidOptionError{Section: s.name, Option: name, Reason: err.Error()}
		}
	}

	return vals, nil
}

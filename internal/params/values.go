package params

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// Values is the parsed, validated option set for one active model. It is
// immutable after Parse; each model instance gets its own Values, so
// configuring one instance never affects another.
type Values struct {
	section string
	vals    map[string]cty.Value
}

// get returns the raw value for name. Reading an option that was never
// declared is a programmer error: the model is asking for something it
// didn't put into the schema.
func (v *Values) get(name string) cty.Value {
	val, ok := v.vals[name]
	if !ok {
		panic(fmt.Sprintf("params: option '%s' was not declared in section '%s'", name, v.section))
	}
	return val
}

// Number returns the float64 value of a number option.
func (v *Values) Number(name string) float64 {
	var out float64
	if err := gocty.FromCtyValue(v.get(name), &out); err != nil {
		panic(fmt.Sprintf("params: option '%s' in section '%s' is not a number: %v", name, v.section, err))
	}
	return out
}

// String returns the value of a string option.
func (v *Values) String(name string) string {
	var out string
	if err := gocty.FromCtyValue(v.get(name), &out); err != nil {
		panic(fmt.Sprintf("params: option '%s' in section '%s' is not a string: %v", name, v.section, err))
	}
	return out
}

// Bool returns the value of a bool option.
func (v *Values) Bool(name string) bool {
	var out bool
	if err := gocty.FromCtyValue(v.get(name), &out); err != nil {
		panic(fmt.Sprintf("params: option '%s' in section '%s' is not a bool: %v", name, v.section, err))
	}
	return out
}

// NumberList returns the values of a list(number) option.
func (v *Values) NumberList(name string) []float64 {
	val := v.get(name)
	out := make([]float64, 0, val.LengthInt())
	for it := val.ElementIterator(); it.Next(); {
		_, elem := it.Element()
		var f float64
		if err := gocty.FromCtyValue(elem, &f); err != nil {
			panic(fmt.Sprintf("params: option '%s' in section '%s' is not a number list: %v", name, v.section, err))
		}
		out = append(out, f)
	}
	return out
}

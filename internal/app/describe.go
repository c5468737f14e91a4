package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/zclconf/go-cty/cty"

	"github.com/aguspesce/aspect/internal/geometry"
	"github.com/aguspesce/aspect/internal/params"
)

// Describe writes the generated parameter documentation for every interface
// kind: each registered model with its description and declared options. The
// order follows registration order, so the output is reproducible across
// runs of the same binary.
func (a *App) Describe(w io.Writer) error {
	for _, dim := range geometry.SupportedDims {
		reg := a.registries.For(dim)

		schema := params.NewSchema()
		reg.DeclareAll(schema)

		fmt.Fprintf(w, "# %s\n\n", reg.Kind())
		for _, sec := range schema.Sections() {
			fmt.Fprintf(w, "model %q\n", sec.Name())
			if desc := sec.Description(); desc != "" {
				fmt.Fprintf(w, "  %s\n", desc)
			}
			opts := sec.Options()
			if len(opts) == 0 {
				fmt.Fprintf(w, "  (no options)\n")
			}
			for _, opt := range opts {
				fmt.Fprintf(w, "  option %q (%s, default %s)\n",
					opt.Name, opt.Type.FriendlyName(), formatValue(opt.Default))
				if opt.Description != "" {
					fmt.Fprintf(w, "    %s\n", opt.Description)
				}
			}
			fmt.Fprintln(w)
		}
	}
	return nil
}

// formatValue renders a default value for documentation output.
func formatValue(val cty.Value) string {
	switch {
	case val.Type() == cty.String:
		return fmt.Sprintf("%q", val.AsString())
	case val.Type() == cty.Number:
		return val.AsBigFloat().Text('g', -1)
	case val.Type() == cty.Bool:
		if val.True() {
			return "true"
		}
		return "false"
	case val.Type().IsListType() || val.Type().IsTupleType():
		var parts []string
		for it := val.ElementIterator(); it.Next(); {
			_, elem := it.Element()
			parts = append(parts, formatValue(elem))
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return val.GoString()
	}
}

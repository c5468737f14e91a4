package app

import (
	"github.com/aguspesce/aspect/internal/boundary/fluidpressure"
	"github.com/aguspesce/aspect/modules/constantgradient"
	"github.com/aguspesce/aspect/modules/constantzero"
	"github.com/aguspesce/aspect/modules/densitygradient"
)

// coreModules is the definitive list of all boundary models that are
// compiled into the binary.
var coreModules = []fluidpressure.Module{
	&constantgradient.Module{},
	&constantzero.Module{},
	&densitygradient.Module{},
}

// Package all aggregates every native module this repo ships into one
// flat map, so an embedder can register all of them at once.
package all

import (
	"github.com/quietloop/serpent/modules/bcryptmod"
	"github.com/quietloop/serpent/modules/colormod"
	"github.com/quietloop/serpent/modules/mathmod"
	"github.com/quietloop/serpent/modules/osmod"
	"github.com/quietloop/serpent/modules/queries"
	"github.com/quietloop/serpent/modules/strmod"
	"github.com/quietloop/serpent/modules/timemod"
	"github.com/quietloop/serpent/modules/uuidmod"
	"github.com/quietloop/serpent/object"
)

// Modules returns one serpent.NativeModule-shaped dict per package, keyed
// by the name script code imports it under.
func Modules() map[string]map[string]object.Value {
	return map[string]map[string]object.Value{
		"math":    mathmod.New(),
		"os":      osmod.New(),
		"time":    timemod.New(),
		"strings": strmod.New(),
		"uuid":    uuidmod.New(),
		"bcrypt":  bcryptmod.New(),
		"queries": queries.New(),
		"color":   colormod.New(),
	}
}

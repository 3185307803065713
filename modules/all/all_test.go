package all

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModulesIncludesEveryPackage(t *testing.T) {
	mods := Modules()
	for _, name := range []string{"math", "os", "time", "strings", "uuid", "bcrypt", "queries", "color"} {
		assert.Contains(t, mods, name)
		assert.NotEmpty(t, mods[name])
	}
}

// Package scene provides ready-to-render demo scenes: each builder
// assembles a world and a matching camera.
package scene

import (
	"fmt"
	"sort"

	"github.com/thommay/ray-trace-challenge/pkg/renderer"
	"github.com/thommay/ray-trace-challenge/pkg/world"
)

// Builder assembles a world and a camera sized for the given canvas
type Builder func(width, height int) (*world.World, *renderer.Camera, error)

var builders = map[string]Builder{
	"figure":  NewFigureScene,
	"glass":   NewGlassScene,
	"hexagon": NewHexagonScene,
}

// Lookup returns the builder registered under the given name
func Lookup(name string) (Builder, error) {
	b, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q (available: %v)", name, Names())
	}
	return b, nil
}

// Names lists the registered scene names, sorted
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

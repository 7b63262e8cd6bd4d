package plane

import (
	"fmt"
	"sort"
)

// Full frames the whole set at a 4:3 aspect ratio.
var Full = Window{XMin: -2.5, XMax: 1.0, YMin: -1.3125, YMax: 1.3125}

// Zoomed windows onto well-known features of the boundary.
var (
	SeahorseValley       = Window{XMin: -0.8, XMax: -0.7, YMin: 0.05, YMax: 0.15}
	ElephantValley       = Window{XMin: 0.25, XMax: 0.35, YMin: -0.05, YMax: 0.05}
	SpiralMinibrot       = Window{XMin: -0.7435, XMax: -0.7420, YMin: 0.1310, YMax: 0.1325}
	TripleSpiral         = Window{XMin: -0.7480, XMax: -0.7450, YMin: 0.0950, YMax: 0.0980}
	ValleyOfTheDragon    = Window{XMin: -0.7400, XMax: -0.7350, YMin: 0.1800, YMax: 0.1850}
	MinibrotInMiniSpiral = Window{XMin: -1.7390, XMax: -1.7375, YMin: -0.0235, YMax: -0.0220}
)

// Landmarks are the regions selectable by name.
var Landmarks = map[string]Window{
	"full":          Full,
	"seahorse":      SeahorseValley,
	"elephant":      ElephantValley,
	"spiral":        SpiralMinibrot,
	"triple-spiral": TripleSpiral,
	"dragon":        ValleyOfTheDragon,
	"mini-spiral":   MinibrotInMiniSpiral,
}

// LandmarkNames returns the names accepted by Lookup in sorted order.
func LandmarkNames() []string {
	names := make([]string, 0, len(Landmarks))
	for name := range Landmarks {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Lookup returns the landmark called name, or ErrInvalidWindow.
func Lookup(name string) (Window, error) {
	w, ok := Landmarks[name]
	if !ok {
		return Window{}, fmt.Errorf("%w: unknown region %q, want one of %v", ErrInvalidWindow, name, LandmarkNames())
	}

	return w, nil
}

package config

import (
	"fmt"

	"boardline/wood"
)

var kindNames = map[string]wood.Kind{
	"offset_nail": wood.OffsetNail,
	"flush_nail":  wood.FlushNail,
	"staple":      wood.Staple,
	"screw":       wood.Screw,
}

func parseKind(name string) (wood.Kind, error) {
	kind, ok := kindNames[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownFastenerKind, name)
	}
	return kind, nil
}

var surfaceNames = map[string]wood.Surface{
	"top":    wood.Top,
	"right":  wood.Right,
	"bottom": wood.Bottom,
	"left":   wood.Left,
}

func parseSurface(name string) (wood.Surface, error) {
	surface, ok := surfaceNames[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownSurface, name)
	}
	return surface, nil
}

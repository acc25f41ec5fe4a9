package config

import "errors"

var (
	ErrUnknownFastenerKind  = errors.New("config: unknown fastener kind")
	ErrUnknownSurface       = errors.New("config: unknown surface")
	ErrUnknownConveyorKind  = errors.New("config: unknown conveyor kind")
	ErrUnknownPickerKind    = errors.New("config: unknown picker kind")
	ErrMissingDiscriminator = errors.New(`config: missing "type" discriminator`)
	ErrNegativeDensity      = errors.New("config: fastener density must be non-negative")
)

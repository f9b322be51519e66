package core

import (
	"fmt"
	"math/rand"
)

// RGB is a 24-bit color triple.
type RGB struct {
	R, G, B uint8
}

// Predefined colors for game elements.
var (
	White  = RGB{255, 255, 255}
	Black  = RGB{0, 0, 0}
	Red    = RGB{255, 0, 0}
	Yellow = RGB{255, 255, 0}
)

// RandomColor returns a uniformly random color drawn from rng.
func RandomColor(rng *rand.Rand) RGB {
	return RGB{
		R: uint8(rng.Intn(256)), //#nosec G115 -- Intn(256) fits in uint8
		G: uint8(rng.Intn(256)), //#nosec G115 -- Intn(256) fits in uint8
		B: uint8(rng.Intn(256)), //#nosec G115 -- Intn(256) fits in uint8
	}
}

// Hex returns the color as "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// RGBA implements color.Color so an RGB can be handed to image libraries directly.
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

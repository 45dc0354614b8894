// Package surface holds the fixed set of parametric surface functions the
// graph can display. Each function maps a domain point (u, v) in [-1, 1]²
// and a time t to a position in graph space.
package surface

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"surface-graph/internal/core"
)

// ErrInvalidFunction reports a FunctionName outside the declared set.
var ErrInvalidFunction = errors.New("surface: invalid function name")

// FunctionName selects one of the library functions.
type FunctionName uint8

const (
	Wave FunctionName = iota
	MultiWave
	Ripple
)

// Function is a pure surface mapping.
type Function func(u, v, t float64) core.Vec3

var functions = [...]Function{
	Wave:      wave,
	MultiWave: multiWave,
	Ripple:    ripple,
}

var names = [...]string{
	Wave:      "wave",
	MultiWave: "multiwave",
	Ripple:    "ripple",
}

// FunctionCount is the number of functions in the library.
const FunctionCount = len(functions)

// Resolve returns the function registered for name.
func Resolve(name FunctionName) (Function, error) {
	if !name.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFunction, name)
	}
	return functions[name], nil
}

// Valid reports whether name is a member of the library.
func (name FunctionName) Valid() bool { return int(name) < FunctionCount }

func (name FunctionName) String() string {
	if !name.Valid() {
		return fmt.Sprintf("FunctionName(%d)", uint8(name))
	}
	return names[name]
}

// FunctionNames lists every library member in declaration order.
func FunctionNames() []FunctionName {
	out := make([]FunctionName, FunctionCount)
	for i := range out {
		out[i] = FunctionName(i)
	}
	return out
}

// ParseFunctionName resolves a case-insensitive name such as "Ripple" or
// "multi-wave".
func ParseFunctionName(s string) (FunctionName, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer("-", "", "_", "", " ", "").Replace(key)
	for i, n := range names {
		if n == key {
			return FunctionName(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidFunction, s)
}

// NextFunction returns the function after name, wrapping to the first.
func NextFunction(name FunctionName) FunctionName {
	if !name.Valid() {
		return Wave
	}
	return FunctionName((int(name) + 1) % FunctionCount)
}

// RandomFunctionOtherThan picks a library member different from name.
func RandomFunctionOtherThan(name FunctionName, rng *core.RNG) FunctionName {
	choice := FunctionName(1 + rng.IntN(FunctionCount-1))
	if choice == name {
		return 0
	}
	return choice
}

// Morph blends from into to. Progress is clamped to [0, 1] and eased with a
// smoothstep curve.
func Morph(from, to Function, progress float64) Function {
	w := smoothStep(progress)
	return func(u, v, t float64) core.Vec3 {
		return core.Lerp(from(u, v, t), to(u, v, t), w)
	}
}

func smoothStep(x float64) float64 {
	x = math.Max(0, math.Min(1, x))
	return x * x * (3 - 2*x)
}

func wave(u, v, t float64) core.Vec3 {
	return core.Vec3{
		X: u,
		Y: math.Sin(math.Pi * (u + v + t)),
		Z: v,
	}
}

func multiWave(u, v, t float64) core.Vec3 {
	y := math.Sin(math.Pi * (u + 0.5*t))
	y += 0.5 * math.Sin(2*math.Pi*(v+t))
	y += math.Sin(math.Pi * (u + v + 0.25*t))
	y *= 1 / 2.5
	return core.Vec3{X: u, Y: y, Z: v}
}

func ripple(u, v, t float64) core.Vec3 {
	d := math.Sqrt(u*u + v*v)
	y := math.Sin(math.Pi * (4*d - t))
	y /= 1 + 10*d
	return core.Vec3{X: u, Y: y, Z: v}
}

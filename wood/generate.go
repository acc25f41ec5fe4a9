package wood

import "math"

// generateBoard emits new fasteners across [start, end) per the configured
// densities and appends them to field. For each kind with density d, it
// emits floor((end-start)*d) fasteners, plus one more with probability equal
// to the fractional remainder of that product. Each fastener's position is
// drawn uniformly from [start, end), its surface uniformly over Surfaces().
func generateBoard(rng randSource, start, end float64, densities Densities, field Field) Field {
	length := end - start
	if length <= 0 {
		return field
	}

	surfaces := Surfaces()
	for _, kind := range Kinds() {
		density := densities[kind]
		if density <= 0 {
			continue
		}

		expected := length * density
		whole, frac := math.Modf(expected)
		n := int(whole)
		if rng.Float64() < frac {
			n++
		}

		for i := 0; i < n; i++ {
			field = append(field, Fastener{
				Position: start + rng.Float64()*length,
				Surface:  surfaces[rng.Intn(len(surfaces))],
				Kind:     kind,
			})
		}
	}

	return field
}

// randSource is the minimal interface Wood requires of its RNG, satisfied by
// *rand.Rand. Narrowed to ease testing with a deterministic stub.
type randSource interface {
	Float64() float64
	Intn(n int) int
}

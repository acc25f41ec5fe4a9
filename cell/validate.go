package cell

import "fmt"

// Validate enforces the construction-time constraints spec.md §3/§7 place on
// cell parameters.
func (p Params) Validate() error {
	if p.StartPos < 0 {
		return ErrNegativeStart
	}
	if p.WorkingWidth <= 0 {
		return ErrNonPositiveWidth
	}
	for kind, prob := range p.PickProbabilities {
		if prob <= 0 || prob > 1 {
			return fmt.Errorf("%w: %s=%v", ErrNonPositiveProbability, kind, prob)
		}
	}
	return nil
}

package config

import "boardline/wood"

// PickerKind discriminates the four picker tags spec.md §6 names.
type PickerKind string

const (
	PickerRake             PickerKind = "rake"
	PickerRollingRake      PickerKind = "rolling_rake"
	PickerBigBird          PickerKind = "big_bird"
	PickerScrewManipulator PickerKind = "screw_manipulator"
)

// autoPlaceSentinel marks a start_pos/working_width left to sequential
// auto-placement, per spec.md §6.
const autoPlaceSentinel = -1.0

// PickerSpec is one resolved entry from the config's "pickers" list: its
// start_pos/working_width sentinels have already been replaced with
// concrete auto-placed positions. One concrete Cell is instantiated per
// wood.Surface from each PickerSpec (spec.md §6: "four per spec").
type PickerSpec struct {
	Kind              PickerKind
	StartPos          float64
	WorkingWidth      float64
	PickProbabilities map[wood.Kind]float64

	// PickSeconds is consulted only by big_bird/screw_manipulator.
	PickSeconds float64
	// RakeCycleSeconds is consulted only by rake/rolling_rake.
	RakeCycleSeconds float64
}

type pickerDocument struct {
	Type              string             `yaml:"type"`
	StartPos          float64            `yaml:"start_pos"`
	WorkingWidth      float64            `yaml:"working_width"`
	PickProbabilities map[string]float64 `yaml:"pick_probabilities"`
	PickSeconds       float64            `yaml:"pick_seconds"`
	RakeCycleSeconds  float64            `yaml:"rake_cycle_seconds"`
}

func decodePickers(payloads []interface{}, defaultCellDistance, defaultCellWidth float64) ([]PickerSpec, error) {
	specs := make([]PickerSpec, 0, len(payloads))
	cursor := 0.0

	for _, payload := range payloads {
		doc := pickerDocument{StartPos: autoPlaceSentinel, WorkingWidth: autoPlaceSentinel}
		if err := remarshal(payload, &doc); err != nil {
			return nil, err
		}

		var kind PickerKind
		switch doc.Type {
		case string(PickerRake):
			kind = PickerRake
		case string(PickerRollingRake):
			kind = PickerRollingRake
		case string(PickerBigBird):
			kind = PickerBigBird
		case string(PickerScrewManipulator):
			kind = PickerScrewManipulator
		default:
			return nil, ErrUnknownPickerKind
		}

		probabilities := make(map[wood.Kind]float64, len(doc.PickProbabilities))
		for name, prob := range doc.PickProbabilities {
			fastenerKind, err := parseKind(name)
			if err != nil {
				return nil, err
			}
			probabilities[fastenerKind] = prob
		}

		startPos := doc.StartPos
		if startPos == autoPlaceSentinel {
			startPos = cursor
		}
		workingWidth := doc.WorkingWidth
		if workingWidth == autoPlaceSentinel {
			workingWidth = defaultCellWidth
		}
		cursor = startPos + workingWidth + defaultCellDistance

		specs = append(specs, PickerSpec{
			Kind:              kind,
			StartPos:          startPos,
			WorkingWidth:      workingWidth,
			PickProbabilities: probabilities,
			PickSeconds:       doc.PickSeconds,
			RakeCycleSeconds:  doc.RakeCycleSeconds,
		})
	}

	return specs, nil
}

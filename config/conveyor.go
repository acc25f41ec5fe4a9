package config

import "boardline/conveyor"

type conveyorDiscriminator struct {
	Type string `yaml:"type"`
}

type conveyorDocument struct {
	Type                  string  `yaml:"type"`
	MoveSpeed             float64 `yaml:"move_speed"`
	MoveIncrement         float64 `yaml:"move_increment"`
	OptimizationIncrement float64 `yaml:"optimization_increment"`
}

func decodeConveyor(payload interface{}) (conveyor.Params, error) {
	var tag conveyorDiscriminator
	if err := remarshal(payload, &tag); err != nil {
		return conveyor.Params{}, err
	}
	if tag.Type == "" {
		return conveyor.Params{}, ErrMissingDiscriminator
	}

	var doc conveyorDocument
	if err := remarshal(payload, &doc); err != nil {
		return conveyor.Params{}, err
	}

	var kind conveyor.Kind
	switch doc.Type {
	case "dumb":
		kind = conveyor.KindDumb
	case "greedy_distance":
		kind = conveyor.KindGreedyDistance
	case "greedy_busyness":
		kind = conveyor.KindGreedyBusyness
	default:
		return conveyor.Params{}, ErrUnknownConveyorKind
	}

	params := conveyor.Params{
		Kind:                  kind,
		MoveSpeed:             doc.MoveSpeed,
		MoveIncrement:         doc.MoveIncrement,
		OptimizationIncrement: doc.OptimizationIncrement,
	}
	if err := params.Validate(); err != nil {
		return conveyor.Params{}, err
	}
	return params, nil
}

package config

import (
	"math/rand"

	"boardline/cell"
	"boardline/conveyor"
	"boardline/engine"
	"boardline/stats"
	"boardline/wood"
)

// Line is a fully wired simulation: every object config.Build instantiated
// from a Document, ready for an engine.Runtime to drive.
type Line struct {
	Runtime   *engine.Runtime
	Wood      *wood.Wood
	Cells     []cell.Cell
	Conveyor  *conveyor.Conveyor
	Robots    *stats.Registry
	WoodStats *stats.WoodStats
}

// rngSeed is the literal value spec.md §6.3 mandates for reproducible
// draws.
const rngSeed = 1337

// Build instantiates the Wood, one Cell per (PickerSpec, Surface) pair, the
// Conveyor, and the Stats registry described by doc, and registers them all
// with a fresh engine.Runtime.
func Build(doc *Document) (*Line, error) {
	rng := rand.New(rand.NewSource(rngSeed))

	w, err := wood.New(doc.Wood, rng)
	if err != nil {
		return nil, err
	}

	runtime := engine.NewRuntime()
	robots := stats.NewRegistry(runtime)
	woodStats := stats.NewWoodStats(w, runtime)

	cells := make([]cell.Cell, 0, len(doc.Pickers)*len(wood.Surfaces()))
	for _, spec := range doc.Pickers {
		for _, surface := range wood.Surfaces() {
			params := cell.Params{
				StartPos:          spec.StartPos,
				WorkingWidth:      spec.WorkingWidth,
				PickableSurface:   surface,
				PickProbabilities: spec.PickProbabilities,
			}
			if err := params.Validate(); err != nil {
				return nil, err
			}

			robot, err := robots.Create(stats.RobotKey{
				StartPos: params.StartPos,
				EndPos:   params.EndPos(),
				Surface:  surface,
			}, cellTypeName(spec.Kind))
			if err != nil {
				return nil, err
			}

			c, err := newCell(spec, params, w, robot)
			if err != nil {
				return nil, err
			}
			cells = append(cells, c)
		}
	}

	conv, err := conveyor.New(doc.Conveyor, w, cells, woodStats)
	if err != nil {
		return nil, err
	}

	actors := make([]engine.Actor, 0, len(cells)+1)
	for _, c := range cells {
		actors = append(actors, c)
	}
	actors = append(actors, conv)
	if err := runtime.Register(actors...); err != nil {
		return nil, err
	}

	return &Line{
		Runtime:   runtime,
		Wood:      w,
		Cells:     cells,
		Conveyor:  conv,
		Robots:    robots,
		WoodStats: woodStats,
	}, nil
}

// cellTypeName maps a picker tag to the display name its cell.Cell reports
// via TypeName(), so the stats registry's bucket label matches what the
// cell itself will later report.
func cellTypeName(kind PickerKind) string {
	switch kind {
	case PickerRake:
		return "Rake"
	case PickerRollingRake:
		return "RollingRake"
	case PickerBigBird:
		return "BigBird"
	case PickerScrewManipulator:
		return "ScrewManipulator"
	default:
		return string(kind)
	}
}

func newCell(spec PickerSpec, params cell.Params, w *wood.Wood, robot *stats.RobotStats) (cell.Cell, error) {
	switch spec.Kind {
	case PickerRake:
		return cell.NewRake(params, w, robot, spec.RakeCycleSeconds), nil
	case PickerRollingRake:
		return cell.NewRollingRake(params, w, robot, spec.RakeCycleSeconds), nil
	case PickerBigBird:
		return cell.NewBigBird(params, w, robot, spec.PickSeconds), nil
	case PickerScrewManipulator:
		return cell.NewScrewManipulator(params, w, robot, spec.PickSeconds), nil
	default:
		return nil, ErrUnknownPickerKind
	}
}

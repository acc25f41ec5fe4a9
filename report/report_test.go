package report

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"boardline/config"
)

const sampleYAML = `
wood:
  fastener_densities:
    offset_nail: 0.1
    flush_nail: 0.1
    staple: 1.0
    screw: 0.2

conveyor:
  type: dumb
  move_speed: 1.0
  move_increment: 0.5

default_cell_distance: 1.0
default_cell_width: 2.0

pickers:
  - type: big_bird
    pick_seconds: 2.0
    pick_probabilities:
      staple: 1.0
  - type: rake
    start_pos: 20
    working_width: 3
    rake_cycle_seconds: 4.0
    pick_probabilities:
      offset_nail: 1.0
      flush_nail: 1.0
`

func buildSampleLine(t *testing.T) *config.Line {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "line.yaml")
	if err := os.WriteFile(path, []byte(sampleYAML), 0o644); err != nil {
		t.Fatal(err)
	}

	doc, err := config.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	line, err := config.Build(doc)
	if err != nil {
		t.Fatal(err)
	}
	return line
}

func TestBuildReportsOneRowPerCell(t *testing.T) {
	Convey("Given a freshly built line with two pickers across four surfaces", t, func() {
		line := buildSampleLine(t)

		Convey("Build reports one RobotRow per cell", func() {
			r := Build(line)
			So(len(r.Robots), ShouldEqual, len(line.Cells))
		})

		Convey("cell_id is assigned by sorted-unique end_pos, not declaration order", func() {
			r := Build(line)
			ids := make(map[int]bool)
			for _, row := range r.Robots {
				ids[row.CellID] = true
			}
			// Two pickers at distinct start positions share end_pos within a
			// picker (one per surface), so cell_id has as many distinct
			// values as there are distinct end positions, not cell count.
			So(len(ids), ShouldBeLessThanOrEqualTo, len(line.Cells))
			So(len(ids), ShouldBeGreaterThan, 0)
		})

		Convey("the summary has no picks or translation before any Step", func() {
			r := Build(line)
			So(r.Summary.TotalFasteners, ShouldEqual, uint64(0))
			So(r.Summary.ProcessedFeet, ShouldEqual, 0.0)
			So(r.Summary.BoardFeetPer8h2x12, ShouldEqual, r.Summary.ThroughputFeetPer8h*2.0)
		})

		Convey("missed fasteners are empty on a fresh board", func() {
			r := Build(line)
			total := 0
			for _, n := range r.MissedFasteners {
				total += n
			}
			So(total, ShouldEqual, 0)
		})
	})
}

func TestCellIDsByEndPosIsSortedUnique(t *testing.T) {
	Convey("Given a built line", t, func() {
		line := buildSampleLine(t)

		Convey("cellIDsByEndPos assigns ascending ids to ascending end_pos", func() {
			ids := cellIDsByEndPos(line)
			prevID, prevPos := -1, -1e18
			positions := make([]float64, 0, len(ids))
			for pos := range ids {
				positions = append(positions, pos)
			}
			for _, pos := range positions {
				id := ids[pos]
				if pos > prevPos {
					So(id, ShouldBeGreaterThanOrEqualTo, prevID)
				}
				prevPos = pos
				prevID = id
			}
		})
	})
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"boardline/wood"
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

func writeSample(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "line.yaml")
	if err := os.WriteFile(path, []byte(sampleYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadResolvesTaggedUnionsAndAutoPlacement(t *testing.T) {
	Convey("Given a config document with a dumb conveyor and two pickers", t, func() {
		path := writeSample(t)
		doc, err := Load(path)
		So(err, ShouldBeNil)

		Convey("the wood densities decode by name", func() {
			So(doc.Wood.FastenerDensities[wood.Staple], ShouldEqual, 1.0)
			So(doc.Wood.FastenerDensities[wood.Screw], ShouldEqual, 0.2)
		})

		Convey("the conveyor tagged union resolves to Dumb", func() {
			So(string(doc.Conveyor.Kind), ShouldEqual, "dumb")
			So(doc.Conveyor.MoveIncrement, ShouldEqual, 0.5)
		})

		Convey("the first picker auto-places at the sequential cursor", func() {
			So(doc.Pickers[0].StartPos, ShouldEqual, 0.0)
			So(doc.Pickers[0].WorkingWidth, ShouldEqual, 2.0)
		})

		Convey("the second picker keeps its explicit placement", func() {
			So(doc.Pickers[1].StartPos, ShouldEqual, 20.0)
			So(doc.Pickers[1].WorkingWidth, ShouldEqual, 3.0)
		})
	})
}

func TestBuildInstantiatesFourCellsPerPicker(t *testing.T) {
	Convey("Given a loaded document with two picker specs", t, func() {
		path := writeSample(t)
		doc, err := Load(path)
		So(err, ShouldBeNil)

		line, err := Build(doc)
		So(err, ShouldBeNil)

		Convey("one cell is instantiated per (picker, surface) pair", func() {
			So(len(line.Cells), ShouldEqual, len(doc.Pickers)*4)
		})

		Convey("every cell's stats bucket is reachable from the registry", func() {
			So(len(line.Robots.All()), ShouldEqual, len(line.Cells))
		})
	})
}

func TestLoadRejectsUnknownConveyorKind(t *testing.T) {
	Convey("Given a conveyor block with an unrecognized type tag", t, func() {
		dir := t.TempDir()
		path := filepath.Join(dir, "bad.yaml")
		bad := `
wood:
  fastener_densities:
    offset_nail: 0
    flush_nail: 0
    staple: 0
    screw: 0
conveyor:
  type: teleporter
  move_speed: 1.0
`
		if err := os.WriteFile(path, []byte(bad), 0o644); err != nil {
			t.Fatal(err)
		}

		Convey("Load surfaces ErrUnknownConveyorKind", func() {
			_, err := Load(path)
			So(err, ShouldEqual, ErrUnknownConveyorKind)
		})
	})
}

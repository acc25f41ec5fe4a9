// Package report builds the accessors spec.md §6 requires (per-robot rows,
// a line-wide summary, missed fasteners) and two ways of presenting them: a
// static HTML file and a live websocket view, grounded on the teacher's
// server/root_view/fastview stack.
package report

import (
	"sort"

	"boardline/config"
	"boardline/stats"
	"boardline/wood"
)

// secondsPer8Hours is the "8h" shift length spec.md's throughput_feet_per_8h
// and board_feet_per_8h_2x12 figures are projected against.
const secondsPer8Hours = 28800

// boardFeetPerLinearFoot is the board-foot yield of one linear foot of
// nominal 2x12 stock: board_feet = thickness_in * width_in * length_ft / 12.
const boardFeetPerLinearFoot = 2.0 * 12.0 / 12.0

// RobotRow is one cell's row in the per-robot report table, per spec.md §6.
type RobotRow struct {
	CellID           int
	Surface          string
	TypeName         string
	WorkTimeRatio    float64
	WaitTimeRatio    float64
	NPickedFasteners int
}

// Summary is the line-wide report, per spec.md §6.
type Summary struct {
	TotalTime           float64
	TotalFasteners      uint64
	ProcessedFeet       float64
	ThroughputFeetPer8h float64
	BoardFeetPer8h2x12  float64
}

// Report is the full report payload: a Summary, one RobotRow per cell, and
// the missed-fastener histogram.
type Report struct {
	Summary         Summary
	Robots          []RobotRow
	MissedFasteners map[string]int
}

// Build computes a Report snapshot from a wired Line at its current state.
// Safe to call repeatedly as the simulation advances.
func Build(line *config.Line) Report {
	return Report{
		Summary:         buildSummary(line),
		Robots:          buildRobotRows(line),
		MissedFasteners: buildMissedFasteners(line),
	}
}

func buildSummary(line *config.Line) Summary {
	totalTime := line.Runtime.Now()
	throughputFeet := line.WoodStats.ThroughputFeet()
	throughputPer8h := throughputFeet * secondsPer8Hours

	return Summary{
		TotalTime:           totalTime,
		TotalFasteners:      line.Wood.TotalPicked(),
		ProcessedFeet:       line.Wood.TotalTranslated() * stats.MetersToFeet,
		ThroughputFeetPer8h: throughputPer8h,
		BoardFeetPer8h2x12:  throughputPer8h * boardFeetPerLinearFoot,
	}
}

func buildRobotRows(line *config.Line) []RobotRow {
	cellIDs := cellIDsByEndPos(line)

	rows := make([]RobotRow, 0, len(line.Cells))
	for _, c := range line.Cells {
		params := c.Params()
		robot := c.Stats()
		rows = append(rows, RobotRow{
			CellID:           cellIDs[params.EndPos()],
			Surface:          params.PickableSurface.String(),
			TypeName:         c.TypeName(),
			WorkTimeRatio:    robot.WorkTimer.UtilizationRatio(),
			WaitTimeRatio:    robot.WaitingForWoodTimer.UtilizationRatio(),
			NPickedFasteners: robot.Picked(),
		})
	}
	return rows
}

// cellIDsByEndPos computes the index of each distinct end_pos in the
// sorted-unique list of every cell's end_pos, per spec.md §6.
func cellIDsByEndPos(line *config.Line) map[float64]int {
	seen := make(map[float64]struct{}, len(line.Cells))
	for _, c := range line.Cells {
		seen[c.Params().EndPos()] = struct{}{}
	}

	unique := make([]float64, 0, len(seen))
	for pos := range seen {
		unique = append(unique, pos)
	}
	sort.Float64s(unique)

	ids := make(map[float64]int, len(unique))
	for i, pos := range unique {
		ids[pos] = i
	}
	return ids
}

func buildMissedFasteners(line *config.Line) map[string]int {
	missed := line.Wood.MissedFasteners(lastCellEndPos(line))
	out := make(map[string]int, len(missed))
	for kind, count := range missed {
		out[kind.String()] = count
	}
	return out
}

// lastCellEndPos returns the furthest end_pos among every cell: a fastener
// past this point has cleared every station that could have caught it.
func lastCellEndPos(line *config.Line) float64 {
	furthest := -wood.BufferLen
	for _, c := range line.Cells {
		if end := c.Params().EndPos(); end > furthest {
			furthest = end
		}
	}
	return furthest
}

package stats

import "boardline/wood"

// RobotKey uniquely identifies a cell's stats bucket, per spec.md §4.6:
// (start_pos, end_pos, surface).
type RobotKey struct {
	StartPos float64
	EndPos   float64
	Surface  wood.Surface
}

// RobotStats bundles a cell's two timers (actively picking, and waiting out
// a scheduled move) plus its cumulative pick count.
type RobotStats struct {
	Key      RobotKey
	TypeName string

	WorkTimer          *WorkTimer
	WaitingForWoodTimer *WorkTimer

	picked int
}

// NewRobotStats constructs a stats bucket for one cell. typeName is the
// cell's subtype name ("Rake", "RollingRake", "BigBird", "ScrewManipulator"),
// used verbatim in report rows.
func NewRobotStats(key RobotKey, typeName string, clock Clock) *RobotStats {
	return &RobotStats{
		Key:                 key,
		TypeName:            typeName,
		WorkTimer:           NewWorkTimer(clock),
		WaitingForWoodTimer: NewWorkTimer(clock),
	}
}

// RecordPicks adds n to the cumulative pick counter.
func (rs *RobotStats) RecordPicks(n int) {
	rs.picked += n
}

// Picked returns the cumulative number of fasteners this cell has picked.
func (rs *RobotStats) Picked() int {
	return rs.picked
}

// Registry tracks every cell's RobotStats, rejecting duplicate keys the way
// the source's StatsTracker.create_robot_stats_tracker does.
type Registry struct {
	clock Clock
	byKey map[RobotKey]*RobotStats
	order []*RobotStats
}

// NewRegistry returns an empty stats registry anchored to clock.
func NewRegistry(clock Clock) *Registry {
	return &Registry{
		clock: clock,
		byKey: make(map[RobotKey]*RobotStats),
	}
}

// Create registers a new RobotStats for key, returning an error if the key
// is already registered (stats-bucket uniqueness is keyed by
// (start,end,surface), per spec.md §4.6; the report's cell_id is a separate
// index over end_pos alone).
func (r *Registry) Create(key RobotKey, typeName string) (*RobotStats, error) {
	if _, exists := r.byKey[key]; exists {
		return nil, errDuplicateRobotKey(key)
	}
	rs := NewRobotStats(key, typeName, r.clock)
	r.byKey[key] = rs
	r.order = append(r.order, rs)
	return rs, nil
}

// All returns every registered RobotStats in registration order.
func (r *Registry) All() []*RobotStats {
	return r.order
}

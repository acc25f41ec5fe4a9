package stats

// MetersToFeet converts meters to feet (3.280839895 ft/m, per spec.md §4.6).
const MetersToFeet = 3.280839895

// WoodSource is the minimal view of wood.Wood a WoodStats needs: its
// cumulative translated distance. Narrowed to an interface to avoid a
// stats->wood->stats import cycle from creeping in later.
type WoodSource interface {
	TotalTranslated() float64
}

// WoodStats extends WorkTimer with the board's throughput queries. The
// embedded WorkTimer is the one the conveyor starts and stops around each
// move; WoodStats layers the throughput math on top.
type WoodStats struct {
	*WorkTimer
	wood  WoodSource
	clock Clock
}

// NewWoodStats returns a throughput tracker over wood, anchored to clock.
func NewWoodStats(wood WoodSource, clock Clock) *WoodStats {
	return &WoodStats{
		WorkTimer: NewWorkTimer(clock),
		wood:      wood,
		clock:     clock,
	}
}

// ThroughputMeters returns total_translated / runtime.t, or 0 when t == 0.
func (ws *WoodStats) ThroughputMeters() float64 {
	t := ws.clock.Now()
	if t == 0 {
		return 0
	}
	return ws.wood.TotalTranslated() / t
}

// ThroughputFeet converts ThroughputMeters to feet/second.
func (ws *WoodStats) ThroughputFeet() float64 {
	return ws.ThroughputMeters() * MetersToFeet
}

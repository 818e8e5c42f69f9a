package tracking

// AdvanceThreshold is the per-tick probability of a forward transition.
const AdvanceThreshold = 0.20

// RandomSource yields uniform values in [0,1). *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

// Transition records one status change produced by a tick.
type Transition struct {
	OrderID string
	From    Status
	To      Status
}

type step struct {
	next     Status
	progress int
}

var forward = map[Status]step{
	StatusNewOrder:   {next: StatusProcessing, progress: 25},
	StatusProcessing: {next: StatusShipped, progress: 75},
	StatusShipped:    {next: StatusDelivered, progress: 100},
}

// Advance applies one tick to orders and returns the next collection along
// with the transitions it made. The input slice is not modified.
//
// One value is drawn from rnd for every order that is not Delivered, in slice
// order, so a fixed sequence of draws always yields the same result.
// Delayed orders consume a draw but never move.
func Advance(orders []LiveOrder, rnd RandomSource) ([]LiveOrder, []Transition) {
	next := make([]LiveOrder, len(orders))
	var changes []Transition

	for i, o := range orders {
		next[i] = o.Clone()
		if o.Status.Terminal() {
			continue
		}
		if rnd.Float64() >= AdvanceThreshold {
			continue
		}
		s, ok := forward[o.Status]
		if !ok {
			continue
		}

		updated := next[i]
		updated.Status = s.next
		// progress never moves backwards, even for hand-edited snapshots
		if s.progress > updated.Progress {
			updated.Progress = s.progress
		}
		if s.next == StatusDelivered {
			updated.Alert = nil
		}
		next[i] = updated
		changes = append(changes, Transition{OrderID: o.ID, From: o.Status, To: s.next})
	}

	return next, changes
}

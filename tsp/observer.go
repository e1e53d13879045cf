package tsp

// Observer receives events from the local-search engine and the multi-start
// driver. Calls happen on the goroutine running the restart; with
// Options.Parallel > 1 an Observer must be safe for concurrent use.
//
// The tour passed to OnMove is the engine's working tour. It is valid only for
// the duration of the call and must not be modified or retained.
type Observer interface {
	// OnMove fires after every applied move. delta < 0 is the cost change;
	// cost is the tour cost after the move.
	OnMove(restart int, tour Tour, delta, cost int64)

	// OnRestart fires when a restart finishes.
	OnRestart(restart int, res SearchResult)
}

// NopObserver ignores every event.
type NopObserver struct{}

// OnMove does nothing.
func (NopObserver) OnMove(int, Tour, int64, int64) {}

// OnRestart does nothing.
func (NopObserver) OnRestart(int, SearchResult) {}

// ObserverFuncs adapts plain functions to Observer; nil fields are skipped.
type ObserverFuncs struct {
	Move    func(restart int, tour Tour, delta, cost int64)
	Restart func(restart int, res SearchResult)
}

// OnMove calls f.Move when set.
func (f ObserverFuncs) OnMove(restart int, tour Tour, delta, cost int64) {
	if f.Move != nil {
		f.Move(restart, tour, delta, cost)
	}
}

// OnRestart calls f.Restart when set.
func (f ObserverFuncs) OnRestart(restart int, res SearchResult) {
	if f.Restart != nil {
		f.Restart(restart, res)
	}
}

func observerOrNop(o Observer) Observer {
	if o == nil {
		return NopObserver{}
	}

	return o
}

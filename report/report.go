// Package report renders the outcome of a run: the MST weight, the
// multi-start statistics and optionally the winning tour.
//
// WriteText prints the console summary, one "Label: value" line per figure.
// WriteJSON emits the same content as a single JSON object.
package report

import (
	"fmt"
	"io"
	"strconv"

	gojson "github.com/goccy/go-json"

	"github.com/katalvlaran/twoopt/geom"
	"github.com/katalvlaran/twoopt/tsp"
)

// Report is the printable outcome of a run.
type Report struct {
	Points       int     `json:"points"`
	MSTWeight    int64   `json:"mst_weight"`
	Policy       string  `json:"policy"`
	Start        string  `json:"start"`
	Restarts     int     `json:"restarts"`
	Seed         int64   `json:"seed"`
	AverageSteps float64 `json:"average_steps"`
	AverageCost  float64 `json:"average_cost"`
	StdDevCost   float64 `json:"stddev_cost"`
	MinimumCost  int64   `json:"minimum_cost"`
	// Tour lists the input ids of the best tour; empty unless requested.
	Tour []int64 `json:"tour,omitempty"`
}

// Option adjusts a Report built by New.
type Option func(*Report)

// WithTour includes the best tour, mapped to the input ids of ps.
func WithTour(ps geom.PointSet, tour tsp.Tour) Option {
	return func(r *Report) { r.Tour = tour.IDs(ps) }
}

// WithRun records the configuration that produced the statistics.
func WithRun(opts tsp.Options, seed int64) Option {
	return func(r *Report) {
		r.Policy = opts.Policy.String()
		r.Start = opts.Start.String()
		r.Seed = seed
	}
}

// New assembles a Report from the MST weight and the multi-start statistics.
func New(points int, mstWeight int64, st tsp.RunStatistics, opts ...Option) Report {
	r := Report{
		Points:       points,
		MSTWeight:    mstWeight,
		Restarts:     st.Restarts,
		AverageSteps: st.MeanSteps,
		AverageCost:  st.MeanCost,
		StdDevCost:   st.StdDevCost,
		MinimumCost:  st.MinCost,
	}
	for _, fn := range opts {
		fn(&r)
	}

	return r
}

// WriteText prints the console summary. Averages use the shortest exact
// decimal form, so integral means print without a fraction.
func (r Report) WriteText(w io.Writer) error {
	lines := []struct {
		label, value string
	}{
		{"MST", strconv.FormatInt(r.MSTWeight, 10)},
		{"Average Steps", formatFloat(r.AverageSteps)},
		{"Average Cost", formatFloat(r.AverageCost)},
		{"Minimum Cost", strconv.FormatInt(r.MinimumCost, 10)},
	}
	for _, l := range lines {
		if _, err := fmt.Fprintf(w, "%s: %s\n", l.label, l.value); err != nil {
			return err
		}
	}
	if len(r.Tour) == 0 {
		return nil
	}

	buf := make([]byte, 0, 8*len(r.Tour)+8)
	buf = append(buf, "Tour:"...)
	for _, id := range r.Tour {
		buf = append(buf, ' ')
		buf = strconv.AppendInt(buf, id, 10)
	}
	buf = append(buf, '\n')
	_, err := w.Write(buf)

	return err
}

// WriteJSON encodes r as one JSON object followed by a newline.
func (r Report) WriteJSON(w io.Writer) error {
	return gojson.NewEncoder(w).Encode(r)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

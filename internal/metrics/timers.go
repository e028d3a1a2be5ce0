// Package metrics provides simple wall-clock timers for conversion
// steps, reported through the debug log.
package metrics

import "time"

type Timers struct {
	Timers map[string]*Timer `json:"Timers,omitempty"`
	last   string
}

func NewTimers() Timers {
	ts := Timers{Timers: make(map[string]*Timer)}
	return ts
}

// set a timer, updating if existing.
func (ts *Timers) set(k string) {
	if _, ok := ts.Timers[k]; !ok {
		ts.Timers[k] = &Timer{start: time.Now()}
	} else {
		stop := time.Now()
		ts.Timers[k].Total = stop.Sub(ts.Timers[k].start).Seconds()
	}
}

// Set check last timer, stop and add a new one (lap).
func (ts *Timers) Set(k string) {
	if ts.last != "" {
		ts.set(ts.last)
	}
	ts.set(k)
	ts.last = k
}

// Add starts a timer on first call for a key and stops it on the
// second call.
func (ts *Timers) Add(k string) {
	ts.set(k)
}

// Total returns the elapsed seconds recorded for a key, zero when the
// timer was never stopped.
func (ts *Timers) Total(k string) float64 {
	if t, ok := ts.Timers[k]; ok {
		return t.Total
	}
	return 0
}

type Timer struct {
	start time.Time

	// Total time in seconds
	Total float64 `json:"seconds"`
}

// Copyright 2026 The xelis-hash-go Authors
// This file is part of xelis-hash-go.
//
// xelis-hash-go is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// xelis-hash-go is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with xelis-hash-go. If not, see <http://www.gnu.org/licenses/>.

package xelishash

import (
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// InstrumentedHasher wraps a Hasher with Prometheus counters and a duration
// histogram, grounded on the teacher's metrics stack
// (github.com/prometheus/client_golang appears in ethereum-go-ethereum's
// go.mod, pulled in indirectly through its metrics/exporter tooling).
// Nothing in the hot path - stage1Fill, stage2Accumulate, stage3Finalize -
// imports this package; instrumentation only ever wraps the outer call.
type InstrumentedHasher struct {
	hasher *Hasher

	calls    prometheus.Counter
	failures prometheus.Counter
	duration prometheus.Histogram
}

// NewInstrumentedHasher registers its metrics on reg and returns a ready
// InstrumentedHasher. Passing a nil registry is valid: the metrics are
// still created and updated, just never exposed to a scrape endpoint.
func NewInstrumentedHasher(reg prometheus.Registerer) *InstrumentedHasher {
	ih := &InstrumentedHasher{
		hasher: NewHasher(),
		calls: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "xelishash",
			Name:      "calls_total",
			Help:      "Total number of Hash invocations.",
		}),
		failures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "xelishash",
			Name:      "failures_total",
			Help:      "Total number of Hash invocations that returned ErrInvalidArguments.",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "xelishash",
			Name:      "hash_duration_seconds",
			Help:      "Wall-clock duration of a single Hash invocation.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 2, 20),
		}),
	}

	if reg != nil {
		reg.MustRegister(ih.calls, ih.failures, ih.duration)
	}
	slog.Info("xelishash: instrumented hasher constructed", "registered", reg != nil)
	return ih
}

// Hash computes the digest of input, recording a call count, failure count,
// and duration observation around the underlying Hasher.
func (ih *InstrumentedHasher) Hash(input []byte) ([DigestSize]byte, error) {
	start := time.Now()
	digest, err := ih.hasher.Hash(input)
	ih.duration.Observe(time.Since(start).Seconds())
	ih.calls.Inc()
	if err != nil {
		ih.failures.Inc()
	}
	return digest, err
}

// Copyright (c) 2017 Intel Corporation
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sweep

import (
	"fmt"
	"math"
)

// MinPoints is the smallest number of samples a planned sweep may have.
const MinPoints = 2

// InvalidSweepError is returned when a sweep request is malformed.
type InvalidSweepError struct {
	Center float64
	Span   float64
	Points int
	Reason string
}

func (e *InvalidSweepError) Error() string {
	return fmt.Sprintf("invalid sweep (center %E, span %E, points %d): %s", e.Center, e.Span, e.Points, e.Reason)
}

// Plan is an ordered, ascending sequence of frequency samples.
// Plan is immutable: accessors return copies.
type Plan struct {
	center  float64
	span    float64
	samples []float64
}

// New plans `points` evenly spaced samples over [center-span, center+span], both ends included.
func New(center, span float64, points int) (Plan, error) {
	invalid := func(reason string) (Plan, error) {
		return Plan{}, &InvalidSweepError{Center: center, Span: span, Points: points, Reason: reason}
	}

	switch {
	case math.IsNaN(center) || math.IsInf(center, 0):
		return invalid("center must be finite")
	case math.IsNaN(span) || math.IsInf(span, 0) || span <= 0:
		return invalid("span must be positive and finite")
	case points < MinPoints:
		return invalid(fmt.Sprintf("at least %d points are required", MinPoints))
	}

	start, end := center-span, center+span
	if math.IsInf(start, 0) || math.IsInf(end, 0) {
		return invalid("sweep bounds overflow")
	}
	step := (end - start) / float64(points-1)

	samples := make([]float64, points)
	for i := range samples {
		samples[i] = start + float64(i)*step
	}
	// Pin the last sample so rounding never moves the upper endpoint.
	samples[points-1] = end

	for i := 1; i < points; i++ {
		if !(samples[i] > samples[i-1]) {
			return invalid("step is below frequency resolution")
		}
	}

	return Plan{center: center, span: span, samples: samples}, nil
}

// FromSamples builds a plan from explicit samples without validation.
// It is meant for custom or degenerate axes, e.g. a single frequency.
func FromSamples(samples []float64) Plan {
	plan := Plan{samples: append([]float64{}, samples...)}
	if len(samples) > 0 {
		first, last := samples[0], samples[len(samples)-1]
		plan.center = (first + last) / 2
		plan.span = (last - first) / 2
	}
	return plan
}

// Samples returns a copy of the sample sequence.
func (p Plan) Samples() []float64 {
	return append([]float64{}, p.samples...)
}

// Len returns number of samples.
func (p Plan) Len() int {
	return len(p.samples)
}

// Head returns a copy of at most n first samples.
func (p Plan) Head(n int) []float64 {
	if n > len(p.samples) {
		n = len(p.samples)
	}
	if n < 0 {
		n = 0
	}
	return append([]float64{}, p.samples[:n]...)
}

// Start returns the first sample or 0 for an empty plan.
func (p Plan) Start() float64 {
	if len(p.samples) == 0 {
		return 0
	}
	return p.samples[0]
}

// End returns the last sample or 0 for an empty plan.
func (p Plan) End() float64 {
	if len(p.samples) == 0 {
		return 0
	}
	return p.samples[len(p.samples)-1]
}

// Center returns the originating center frequency.
func (p Plan) Center() float64 {
	return p.center
}

// Span returns the originating half-width of the sweep.
func (p Plan) Span() float64 {
	return p.span
}

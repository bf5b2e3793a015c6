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

// Package schedule describes what the measurement engine has to play for a one-tone
// resonator sweep: readout pulses per qubit and the swept readout frequency axis.
package schedule

import (
	"fmt"

	"github.com/Maleang/Quela-Qblox/pkg/calibration"
	"github.com/Maleang/Quela-Qblox/pkg/sweep"
)

// Mode selects between a dry-run render of the schedule and a real acquisition.
type Mode int

const (
	// Live mode acquires the full sweep on hardware.
	Live Mode = iota
	// Preview mode only renders a truncated schedule.
	Preview
)

// PreviewPoints is the number of leading sweep samples kept in Preview mode.
const PreviewPoints = 2

func (m Mode) String() string {
	switch m {
	case Live:
		return "live"
	case Preview:
		return "preview"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Pulse holds readout parameters of a single qubit.
type Pulse struct {
	Amplitude        float64 `json:"amplitude"`
	Duration         float64 `json:"duration"`
	IntegrationTime  float64 `json:"integration_time"`
	AcquisitionDelay float64 `json:"acquisition_delay"`
	ResetDuration    float64 `json:"reset_duration,omitempty"`
}

// Bounds are the endpoints of the full sweep plan.
type Bounds struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// Spec is an engine-neutral description of a one-tone spectroscopy schedule.
type Spec struct {
	Qubit       string           `json:"qubit"`
	Pulses      map[string]Pulse `json:"pulses"`
	Frequencies []float64        `json:"frequencies"`
	Batched     bool             `json:"batched"`
	Mode        Mode             `json:"-"`
	Bounds      Bounds           `json:"bounds"`
}

// Build turns calibration of a qubit and a sweep plan into a schedule.
// In Live mode the whole plan is swept in batched mode. In Preview mode only
// first PreviewPoints samples are kept.
func Build(qubit string, record calibration.Record, plan sweep.Plan, mode Mode) (Spec, error) {
	if err := record.Validate(qubit); err != nil {
		return Spec{}, err
	}
	if plan.Len() == 0 {
		return Spec{}, &sweep.InvalidSweepError{
			Center: plan.Center(),
			Span:   plan.Span(),
			Reason: "sweep plan has no samples",
		}
	}

	pulse := Pulse{
		Amplitude:        *record.PulseAmplitude,
		Duration:         *record.PulseDuration,
		IntegrationTime:  *record.IntegrationTime,
		AcquisitionDelay: *record.AcquisitionDelay,
	}
	if record.ResetDuration != nil {
		pulse.ResetDuration = *record.ResetDuration
	}

	spec := Spec{
		Qubit:  qubit,
		Pulses: map[string]Pulse{qubit: pulse},
		Mode:   mode,
		Bounds: Bounds{Start: plan.Start(), End: plan.End()},
	}

	switch mode {
	case Live:
		spec.Frequencies = plan.Samples()
		spec.Batched = true
	case Preview:
		spec.Frequencies = plan.Head(PreviewPoints)
	default:
		return Spec{}, fmt.Errorf("unsupported schedule mode %v", mode)
	}

	return spec, nil
}

// Summary returns human readable bounds of the sweep.
func (s Spec) Summary() []string {
	return []string{
		fmt.Sprintf("start %E", s.Bounds.Start),
		fmt.Sprintf("end %E", s.Bounds.End),
	}
}

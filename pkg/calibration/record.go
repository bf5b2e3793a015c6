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

package calibration

import "fmt"

// Names of record fields used in errors and serialized snapshots.
const (
	FieldPulseAmplitude   = "pulse_amplitude"
	FieldPulseDuration    = "pulse_duration"
	FieldIntegrationTime  = "integration_time"
	FieldAcquisitionDelay = "acquisition_delay"
	FieldReadoutFrequency = "readout_frequency"
	FieldResetDuration    = "reset_duration"
)

// Record holds readout calibration of a single qubit. Nil fields are unset.
// Amplitude is in arbitrary units of the output range, times are in seconds
// and frequencies in Hz.
type Record struct {
	PulseAmplitude   *float64 `yaml:"pulse_amplitude,omitempty"`
	PulseDuration    *float64 `yaml:"pulse_duration,omitempty"`
	IntegrationTime  *float64 `yaml:"integration_time,omitempty"`
	AcquisitionDelay *float64 `yaml:"acquisition_delay,omitempty"`
	ReadoutFrequency *float64 `yaml:"readout_frequency,omitempty"`
	ResetDuration    *float64 `yaml:"reset_duration,omitempty"`
}

// Float returns a pointer to a copy of v. Handy when filling records.
func Float(v float64) *float64 {
	return &v
}

// DefaultRecord returns measurement defaults used for a qubit on a freshly created device.
// Readout frequency stays unset until the first successful cavity search.
func DefaultRecord() Record {
	return Record{
		PulseAmplitude:   Float(0.1),
		PulseDuration:    Float(2e-6),
		IntegrationTime:  Float(2e-6),
		AcquisitionDelay: Float(0),
		ResetDuration:    Float(150e-6),
	}
}

// Copy returns a deep copy of the record.
func (r Record) Copy() Record {
	clone := func(v *float64) *float64 {
		if v == nil {
			return nil
		}
		return Float(*v)
	}
	return Record{
		PulseAmplitude:   clone(r.PulseAmplitude),
		PulseDuration:    clone(r.PulseDuration),
		IntegrationTime:  clone(r.IntegrationTime),
		AcquisitionDelay: clone(r.AcquisitionDelay),
		ReadoutFrequency: clone(r.ReadoutFrequency),
		ResetDuration:    clone(r.ResetDuration),
	}
}

// Equal reports whether both records hold the same values.
func (r Record) Equal(other Record) bool {
	same := func(a, b *float64) bool {
		if a == nil || b == nil {
			return a == nil && b == nil
		}
		return *a == *b
	}
	return same(r.PulseAmplitude, other.PulseAmplitude) &&
		same(r.PulseDuration, other.PulseDuration) &&
		same(r.IntegrationTime, other.IntegrationTime) &&
		same(r.AcquisitionDelay, other.AcquisitionDelay) &&
		same(r.ReadoutFrequency, other.ReadoutFrequency) &&
		same(r.ResetDuration, other.ResetDuration)
}

// Validate checks that all fields needed to schedule a readout are set.
// It returns MissingCalibrationFieldError naming the first unset one.
func (r Record) Validate(qubit string) error {
	required := []struct {
		name  string
		value *float64
	}{
		{FieldPulseAmplitude, r.PulseAmplitude},
		{FieldPulseDuration, r.PulseDuration},
		{FieldIntegrationTime, r.IntegrationTime},
		{FieldAcquisitionDelay, r.AcquisitionDelay},
	}
	for _, field := range required {
		if field.value == nil {
			return &MissingCalibrationFieldError{Qubit: qubit, Field: field.name}
		}
	}
	return nil
}

// UnknownQubitError is returned when the qubit is not registered.
type UnknownQubitError struct {
	Qubit string
}

func (e *UnknownQubitError) Error() string {
	return fmt.Sprintf("unknown qubit %q", e.Qubit)
}

// MissingCalibrationFieldError is returned when a required record field is unset.
type MissingCalibrationFieldError struct {
	Qubit string
	Field string
}

func (e *MissingCalibrationFieldError) Error() string {
	return fmt.Sprintf("qubit %q: calibration field %q is not set", e.Qubit, e.Field)
}

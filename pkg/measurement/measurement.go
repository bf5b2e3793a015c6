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

// Package measurement drives a one-tone spectroscopy schedule through an external
// measurement control loop, or only renders it when previewing.
package measurement

import (
	"fmt"

	"github.com/Maleang/Quela-Qblox/pkg/dataset"
	"github.com/Maleang/Quela-Qblox/pkg/schedule"
)

// ExperimentName is the name given to every one-tone spectroscopy job.
const ExperimentName = "One-tone"

// Device is the instrument context forwarded with every job.
type Device struct {
	OutputAttenuation      int  `json:"ro_out_att"`
	NCODelayCompensationOn bool `json:"nco_prop_delay_comp_en"`
	NCODelayCompensation   int  `json:"nco_prop_delay_comp"`
	Sequencers             int  `json:"sequencers"`
}

// DefaultDevice returns instrument settings used for readout resonator search.
func DefaultDevice() Device {
	return Device{
		OutputAttenuation:      0,
		NCODelayCompensationOn: true,
		NCODelayCompensation:   50,
		Sequencers:             6,
	}
}

// Job is a single acquisition request for the control loop.
type Job struct {
	Name        string        `json:"name"`
	Schedule    schedule.Spec `json:"schedule"`
	Repetitions int           `json:"repetitions"`
	Device      Device        `json:"device"`
}

// ControlLoop runs a job on hardware and returns acquired dataset.
// Run blocks until acquisition is finished.
type ControlLoop interface {
	Run(job Job) (*dataset.Dataset, error)
}

// Previewer renders a schedule without acquiring anything.
type Previewer interface {
	Preview(spec schedule.Spec) error
}

// ExecutionError is returned when the control loop, or the previewer, could not
// complete a request.
type ExecutionError struct {
	Qubit string
	Mode  schedule.Mode
	Err   error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("%s execution for qubit %q failed: %v", e.Mode, e.Qubit, e.Err)
}

// Cause returns underlying error.
func (e *ExecutionError) Cause() error {
	return e.Err
}

// Unwrap returns underlying error.
func (e *ExecutionError) Unwrap() error {
	return e.Err
}

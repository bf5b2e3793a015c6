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

package measurement

import (
	"fmt"
	"io"
	"io/ioutil"
	"time"

	"github.com/Maleang/Quela-Qblox/pkg/dataset"
	"github.com/Maleang/Quela-Qblox/pkg/schedule"
	"github.com/Maleang/Quela-Qblox/pkg/visualization"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Executor runs schedules in Live or Preview mode.
type Executor struct {
	loop      ControlLoop
	previewer Previewer
	device    Device
	report    io.Writer
	now       func() time.Time
}

// NewExecutor returns Executor using given collaborators.
// Sweep bounds report is written to report; nil discards it.
func NewExecutor(loop ControlLoop, previewer Previewer, device Device, report io.Writer) *Executor {
	if report == nil {
		report = ioutil.Discard
	}
	return &Executor{
		loop:      loop,
		previewer: previewer,
		device:    device,
		report:    report,
		now:       time.Now,
	}
}

// Execute runs spec in given mode.
// In Live mode it blocks until the control loop returns acquired dataset.
// In Preview mode only the previewer is called and returned dataset is nil.
func (e *Executor) Execute(spec schedule.Spec, mode schedule.Mode, repetitions int) (*dataset.Dataset, error) {
	fail := func(err error) (*dataset.Dataset, error) {
		return nil, &ExecutionError{Qubit: spec.Qubit, Mode: mode, Err: err}
	}

	if repetitions < 1 {
		return fail(errors.Errorf("repetitions must be positive, got %d", repetitions))
	}

	e.writeReport(spec)

	switch mode {
	case schedule.Preview:
		if e.previewer == nil {
			return fail(errors.New("no previewer configured"))
		}
		if err := e.previewer.Preview(spec); err != nil {
			return fail(err)
		}
		logrus.Debugf("Previewed schedule of %q with %d sample(s)", spec.Qubit, len(spec.Frequencies))
		return nil, nil

	case schedule.Live:
		if e.loop == nil {
			return fail(errors.New("no control loop configured"))
		}
		job := Job{
			Name:        ExperimentName,
			Schedule:    spec,
			Repetitions: repetitions,
			Device:      e.device,
		}
		logrus.Debugf("Running %q on %q: %d frequencies, %d repetitions", job.Name, spec.Qubit, len(spec.Frequencies), repetitions)

		ds, err := e.loop.Run(job)
		if err != nil {
			return fail(err)
		}
		if ds == nil {
			return fail(errors.New("control loop returned no dataset"))
		}
		if err := e.complete(ds, spec, repetitions); err != nil {
			return fail(err)
		}
		return ds, nil

	default:
		return fail(errors.Errorf("unsupported mode %v", mode))
	}
}

// complete fills in dataset fields the control loop left empty.
func (e *Executor) complete(ds *dataset.Dataset, spec schedule.Spec, repetitions int) error {
	now := e.now()
	if ds.TUID == "" {
		tuid, err := dataset.NewTUID(now)
		if err != nil {
			return err
		}
		ds.TUID = tuid
	}
	if ds.Qubit == "" {
		ds.Qubit = spec.Qubit
	}
	if ds.ExperimentType == "" {
		ds.ExperimentType = dataset.CavitySpectroscopy
	}
	if ds.Name == "" {
		ds.Name = ExperimentName
	}
	if ds.Repetitions == 0 {
		ds.Repetitions = repetitions
	}
	if ds.CreatedAt.IsZero() {
		ds.CreatedAt = now
	}
	return nil
}

func (e *Executor) writeReport(spec schedule.Spec) {
	title := fmt.Sprintf("One_tone_kwargs: Meas.qubit=%s", spec.Qubit)
	if err := visualization.DrawTable(e.report, visualization.BoundsTable(title, spec.Summary())); err != nil {
		logrus.Warnf("Cannot write sweep bounds of %q: %v", spec.Qubit, err)
	}
}

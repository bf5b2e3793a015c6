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

// Package instrument connects measurement jobs to an external measurement engine.
//
// The engine is a program invoked through an executor:
//
//	<engine> run --job <file>      acquires the job and prints dataset JSON on stdout
//	<engine> preview --job <file>  renders the schedule without acquiring
//
// Connection to instruments is owned by the engine.
package instrument

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/Maleang/Quela-Qblox/pkg/dataset"
	"github.com/Maleang/Quela-Qblox/pkg/executor"
	"github.com/Maleang/Quela-Qblox/pkg/measurement"
	"github.com/Maleang/Quela-Qblox/pkg/schedule"
	"github.com/Maleang/Quela-Qblox/pkg/utils/fs"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Engine implements measurement.ControlLoop and measurement.Previewer.
type Engine struct {
	executor executor.Executor
	command  string
	workDir  string
	device   measurement.Device
}

// NewEngine returns Engine running given command. Job files are written into workDir.
// Device is attached to preview requests, run requests carry their own.
func NewEngine(exec executor.Executor, command, workDir string, device measurement.Device) *Engine {
	return &Engine{
		executor: exec,
		command:  command,
		workDir:  workDir,
		device:   device,
	}
}

// Run acquires the job and decodes resulting dataset.
func (e *Engine) Run(job measurement.Job) (*dataset.Dataset, error) {
	stdout, err := e.invoke("run", job)
	if err != nil {
		return nil, err
	}

	ds := &dataset.Dataset{}
	if err := json.Unmarshal(stdout, ds); err != nil {
		return nil, errors.Wrapf(err, "cannot decode dataset returned for %q", job.Schedule.Qubit)
	}
	if len(ds.Frequencies) == 0 {
		ds.Frequencies = job.Schedule.Frequencies
	}
	return ds, nil
}

// Preview renders the schedule.
func (e *Engine) Preview(spec schedule.Spec) error {
	job := measurement.Job{
		Name:        measurement.ExperimentName,
		Schedule:    spec,
		Repetitions: 1,
		Device:      e.device,
	}
	stdout, err := e.invoke("preview", job)
	if err != nil {
		return err
	}
	if len(stdout) > 0 {
		logrus.Debugf("Preview of %q: %s", spec.Qubit, stdout)
	}
	return nil
}

func (e *Engine) invoke(action string, job measurement.Job) ([]byte, error) {
	data, err := json.MarshalIndent(job, "", "  ")
	if err != nil {
		return nil, errors.Wrapf(err, "cannot serialize %s job for %q", action, job.Schedule.Qubit)
	}
	path := filepath.Join(e.workDir, fmt.Sprintf("%s-%s.job.json", job.Schedule.Qubit, action))
	if err := fs.WriteFileAtomic(path, data, 0644); err != nil {
		return nil, err
	}

	command := executor.ShellCommand(e.command, action, "--job", path)
	stdout, err := executor.RunAndWait(e.executor, command)
	if err != nil {
		return nil, errors.Wrapf(err, "engine %s of %q failed", action, job.Schedule.Qubit)
	}
	return stdout, nil
}

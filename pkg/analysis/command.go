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

package analysis

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/Maleang/Quela-Qblox/pkg/dataset"
	"github.com/Maleang/Quela-Qblox/pkg/executor"
	"github.com/Maleang/Quela-Qblox/pkg/utils/fs"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Command is an Analyzer running external fitting program.
// The program is called as "<analyzer> --dataset <file>" with dataset serialized as JSON
// and has to print fitted quantities on stdout, e.g.
// {"fr": {"nominal_value": 5.72e9, "std_dev": 1.2e4}}.
type Command struct {
	executor executor.Executor
	command  string
	workDir  string
}

// NewCommand returns Command analyzer which writes dataset files into workDir.
func NewCommand(exec executor.Executor, command, workDir string) *Command {
	return &Command{executor: exec, command: command, workDir: workDir}
}

// Analyze runs the fitting program. Non-zero exit of the program or missing "fr"
// in its output results in empty result.
func (c *Command) Analyze(ds *dataset.Dataset) (Result, error) {
	data, err := json.Marshal(ds)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot serialize dataset %s", ds.TUID)
	}
	path := filepath.Join(c.workDir, fmt.Sprintf("%s-%s.json", ds.TUID, ds.Qubit))
	if err := fs.WriteFileAtomic(path, data, 0644); err != nil {
		return nil, err
	}

	stdout, err := executor.RunAndWait(c.executor, executor.ShellCommand(c.command, "--dataset", path))
	if err != nil {
		if exitErr, ok := errors.Cause(err).(*executor.ExitError); ok {
			logrus.Warnf("Analysis of %s exited with code %d", ds.TUID, exitErr.ExitCode)
			return Result{}, nil
		}
		return nil, err
	}

	result, err := parseResult(stdout)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot parse analysis output of %s", ds.TUID)
	}
	if _, ok := result.Frequency(); !ok {
		logrus.Debugf("Analysis of %s has no usable %q", ds.TUID, ResonatorFrequency)
		return Result{}, nil
	}
	return result, nil
}

// parseResult keeps only entries shaped like fitted quantities.
func parseResult(output []byte) (Result, error) {
	raw := map[string]json.RawMessage{}
	if err := json.Unmarshal(output, &raw); err != nil {
		return nil, err
	}

	result := Result{}
	for name, value := range raw {
		quantity := Quantity{}
		if err := json.Unmarshal(value, &quantity); err != nil {
			logrus.Debugf("Skipping analysis output %q: %v", name, err)
			continue
		}
		result[name] = quantity
	}
	return result, nil
}

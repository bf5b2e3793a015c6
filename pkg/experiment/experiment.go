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

// Package experiment contains plumbing shared by experiment binaries:
// configuration handling, working directory and log file setup.
package experiment

import (
	"os"
	"path/filepath"

	"github.com/Maleang/Quela-Qblox/pkg/conf"
	"github.com/pkg/errors"
)

// Exit codes, see sysexits.h.
const (
	// ExUsage means the command was used incorrectly.
	ExUsage = 64
	// ExSoftware means an internal software error has been detected.
	ExSoftware = 70
)

var experimentDirFlag = conf.NewStringFlag("experiment_dir", "Base directory for experiment logs and task output", os.TempDir())

// CreateExperimentDir creates <experiment_dir>/<appName>/<uuid>, changes working directory to it
// and opens log file of the experiment inside. Relative experiment_dir is resolved against
// the current working directory, so returned path is always absolute.
func CreateExperimentDir(uuid, appName string) (experimentDirectory string, logFile *os.File, err error) {
	base, err := filepath.Abs(experimentDirFlag.Value())
	if err != nil {
		return "", nil, errors.Wrapf(err, "cannot resolve experiment directory %q", experimentDirFlag.Value())
	}
	experimentDirectory = filepath.Join(base, appName, uuid)
	if err := os.MkdirAll(experimentDirectory, 0755); err != nil {
		return "", nil, errors.Wrapf(err, "cannot create experiment directory %q", experimentDirectory)
	}

	if err := os.Chdir(experimentDirectory); err != nil {
		return "", nil, errors.Wrapf(err, "cannot change working directory to %q", experimentDirectory)
	}

	logPath := filepath.Join(experimentDirectory, appName+".log")
	logFile, err = os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return "", nil, errors.Wrapf(err, "cannot create log file %q", logPath)
	}

	return experimentDirectory, logFile, nil
}

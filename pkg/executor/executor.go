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

package executor

import (
	"fmt"
	"io/ioutil"
	"strings"

	"github.com/alessio/shellescape"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Executor is responsible for creating execution environment for given command.
// It returns TaskHandle when command started gracefully.
// Command is executed asynchronously.
type Executor interface {
	// Execute executes command on underlying platform.
	Execute(command string) (TaskHandle, error)
	// Name returns user-friendly name of executor.
	Name() string
}

// ShellCommand appends shell-quoted arguments to command.
// Command itself is taken verbatim, so it may carry its own arguments.
func ShellCommand(command string, args ...string) string {
	parts := []string{command}
	for _, arg := range args {
		parts = append(parts, shellescape.Quote(arg))
	}
	return strings.Join(parts, " ")
}

// ExitError is returned by RunAndWait when command terminated with non-zero exit code.
type ExitError struct {
	Command  string
	ExitCode int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("command %q exited with code %d", e.Command, e.ExitCode)
}

// RunAndWait executes command, blocks until it terminates and returns its standard output.
// Output files of successful commands are removed. Output of failed commands is kept
// on disk and its tail is logged.
func RunAndWait(executor Executor, command string) ([]byte, error) {
	handle, err := executor.Execute(command)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot execute %q using %s executor", command, executor.Name())
	}
	defer handle.Clean()

	handle.Wait(0)

	exitCode, err := handle.ExitCode()
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read exit code of %q", command)
	}
	if exitCode != 0 {
		LogUnsucessfulExecution(command, executor.Name(), handle)
		return nil, &ExitError{Command: command, ExitCode: exitCode}
	}

	stdoutFile, err := handle.StdoutFile()
	if err != nil {
		return nil, errors.Wrapf(err, "cannot open stdout of %q", command)
	}
	stdout, err := ioutil.ReadAll(stdoutFile)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read stdout of %q", command)
	}

	LogSuccessfulExecution(command, executor.Name(), handle)
	if err := handle.EraseOutput(); err != nil {
		logrus.Warnf("Cannot remove output of %q: %v", command, err)
	}
	return stdout, nil
}

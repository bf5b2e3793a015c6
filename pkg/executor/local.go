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
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Local provisioning is responsible for providing the execution environment
// on local machine via exec.Command.
// It runs command as current user.
type Local struct {
	outputDir string
}

// NewLocal returns a Local instance which keeps task output in the working directory.
func NewLocal() Local {
	return Local{}
}

// NewLocalIn returns a Local instance which keeps task output under given directory.
func NewLocalIn(outputDir string) Local {
	return Local{outputDir: outputDir}
}

// Name returns user-friendly name of executor.
func (l Local) Name() string {
	return "Local"
}

// Execute runs the command given as input.
// Returned TaskHandle is able to stop & monitor the provisioned process.
func (l Local) Execute(command string) (TaskHandle, error) {
	logrus.Debug("Starting ", command, " locally")

	cmd := exec.Command("sh", "-c", command)
	// Separate process group lets Stop signal the command together with its children.
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

	stdoutFile, stderrFile, err := createExecutorOutputFiles(command, "local", l.outputDir)
	if err != nil {
		return nil, err
	}
	cmd.Stdout = stdoutFile
	cmd.Stderr = stderrFile

	if err := cmd.Start(); err != nil {
		stdoutFile.Close()
		stderrFile.Close()
		os.RemoveAll(filepath.Dir(stdoutFile.Name()))
		return nil, errors.Wrapf(err, "cannot start %q", command)
	}

	logrus.Debugf("Started %q with pid %d", command, cmd.Process.Pid)

	handle := &localTaskHandle{
		command:        command,
		pid:            cmd.Process.Pid,
		stdoutFile:     stdoutFile,
		stderrFile:     stderrFile,
		waitEndChannel: make(chan struct{}),
	}

	// Wait for local task in goroutine.
	go func() {
		// Wait() error is irrelevant here, process state is examined below.
		cmd.Wait()

		status := cmd.ProcessState.Sys().(syscall.WaitStatus)
		exitCode := status.ExitStatus()
		if status.Signaled() {
			// Same convention as shells use: 128 + signal number.
			exitCode = 128 + int(status.Signal())
		}

		handle.mutex.Lock()
		handle.exitCode = &exitCode
		handle.mutex.Unlock()

		logrus.Debugf("Ended %q with output in %q with status code %d", command, stdoutFile.Name(), exitCode)
		close(handle.waitEndChannel)
	}()

	register(handle)
	return handle, nil
}

// localTaskHandle implements TaskHandle interface.
type localTaskHandle struct {
	command        string
	pid            int
	stdoutFile     *os.File
	stderrFile     *os.File
	waitEndChannel chan struct{}

	mutex    sync.Mutex
	exitCode *int
}

func (t *localTaskHandle) isTerminated() bool {
	select {
	case <-t.waitEndChannel:
		return true
	default:
		return false
	}
}

// Stop terminates the local task.
func (t *localTaskHandle) Stop() error {
	if t.isTerminated() {
		return nil
	}

	// Negative pid signals the whole process group.
	logrus.Debug("Sending SIGTERM to process group ", t.pid)
	if err := syscall.Kill(-t.pid, syscall.SIGTERM); err != nil {
		return errors.Wrapf(err, "cannot terminate %q", t.command)
	}

	<-t.waitEndChannel
	return nil
}

// Status returns a state of the task.
func (t *localTaskHandle) Status() TaskState {
	if t.isTerminated() {
		return TERMINATED
	}
	return RUNNING
}

// ExitCode returns exit code of terminated task.
func (t *localTaskHandle) ExitCode() (int, error) {
	if !t.isTerminated() {
		return -1, errors.Errorf("task %q is not terminated", t.command)
	}

	t.mutex.Lock()
	defer t.mutex.Unlock()
	return *t.exitCode, nil
}

// StdoutFile returns a file handle positioned at the beginning of task's stdout.
func (t *localTaskHandle) StdoutFile() (*os.File, error) {
	return openOutputFile(t.stdoutFile)
}

// StderrFile returns a file handle positioned at the beginning of task's stderr.
func (t *localTaskHandle) StderrFile() (*os.File, error) {
	return openOutputFile(t.stderrFile)
}

// Wait blocks until process is terminated or timeout appeared.
func (t *localTaskHandle) Wait(timeout time.Duration) bool {
	if timeout == 0 {
		<-t.waitEndChannel
		return true
	}

	select {
	case <-t.waitEndChannel:
		return true
	case <-time.After(timeout):
		return false
	}
}

// Clean closes stdout & stderr files of the task.
func (t *localTaskHandle) Clean() error {
	closeIgnoringClosed := func(file *os.File) error {
		if err := file.Close(); err != nil && !errors.Is(err, os.ErrClosed) {
			return err
		}
		return nil
	}
	if err := closeIgnoringClosed(t.stdoutFile); err != nil {
		return err
	}
	return closeIgnoringClosed(t.stderrFile)
}

// EraseOutput removes directory with task's stdout & stderr files.
func (t *localTaskHandle) EraseOutput() error {
	return os.RemoveAll(filepath.Dir(t.stdoutFile.Name()))
}

// Address returns address where task is located.
func (t *localTaskHandle) Address() string {
	return "127.0.0.1"
}

func openOutputFile(file *os.File) (*os.File, error) {
	if _, err := os.Stat(file.Name()); err != nil {
		return nil, err
	}
	return os.Open(file.Name())
}

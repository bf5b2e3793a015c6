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
	"os/signal"
	"sync"
	"syscall"

	"github.com/sirupsen/logrus"
)

type taskHandleStopper struct {
	sync.Mutex
	taskHandles []TaskHandle
}

var (
	stopperMutex            sync.Mutex
	globalTaskHandleStopper *taskHandleStopper
)

// RegisterInterruptHandle waits for interrupt signal and stops unconditionally all task handles
// started after this call. Returned function stops them on demand.
func RegisterInterruptHandle() func() {
	stopper := &taskHandleStopper{}

	stopperMutex.Lock()
	globalTaskHandleStopper = stopper
	stopperMutex.Unlock()

	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		logrus.Debugf("clean: stopping all task handles on signal %q", <-c)
		stopper.stopAllTaskHandles()
		os.Exit(1)
	}()
	logrus.Debug("clean: interrupt handle initialized")
	return stopper.stopAllTaskHandles
}

func register(t TaskHandle) {
	stopperMutex.Lock()
	stopper := globalTaskHandleStopper
	stopperMutex.Unlock()

	if stopper != nil {
		stopper.register(t)
	}
}

func (ths *taskHandleStopper) stopAllTaskHandles() {
	ths.Lock()
	defer ths.Unlock()
	// Stop in reverse order.
	for i := len(ths.taskHandles) - 1; i >= 0; i-- {
		taskHandle := ths.taskHandles[i]
		logrus.Debugf("clean: task handle %v Stop() returned %v", taskHandle, taskHandle.Stop())
	}
	ths.taskHandles = nil
}

func (ths *taskHandleStopper) register(t TaskHandle) {
	ths.Lock()
	defer ths.Unlock()
	ths.taskHandles = append(ths.taskHandles, t)
}

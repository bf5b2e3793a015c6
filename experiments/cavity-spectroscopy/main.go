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

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Maleang/Quela-Qblox/pkg/analysis"
	"github.com/Maleang/Quela-Qblox/pkg/conf"
	"github.com/Maleang/Quela-Qblox/pkg/dataset"
	"github.com/Maleang/Quela-Qblox/pkg/executor"
	"github.com/Maleang/Quela-Qblox/pkg/experiment"
	"github.com/Maleang/Quela-Qblox/pkg/experiment/cavity"
	"github.com/Maleang/Quela-Qblox/pkg/experiment/logger"
	"github.com/Maleang/Quela-Qblox/pkg/instrument"
	"github.com/Maleang/Quela-Qblox/pkg/measurement"
	"github.com/Maleang/Quela-Qblox/pkg/metadata"
	"github.com/Maleang/Quela-Qblox/pkg/schedule"
	"github.com/Maleang/Quela-Qblox/pkg/utils/errutil"
	"github.com/Maleang/Quela-Qblox/pkg/visualization"
	"github.com/nu7hatch/gouuid"
	"github.com/sirupsen/logrus"
)

const appName = "cavity-spectroscopy"

func absolute(path string) string {
	abs, err := filepath.Abs(path)
	errutil.CheckWithContext(err, "cannot resolve path")
	return abs
}

func main() {
	experimentStart := time.Now()

	// Setup conf.
	conf.SetAppName(appName)
	conf.SetHelp(`Cavity spectroscopy sweeps readout frequency around guessed resonator frequency of every qubit,
fits the resonator and stores fitted frequency in qubit calibration.`)
	experiment.Configure()

	guesses, err := parseGuesses(guessFlag.Value())
	errutil.CheckWithContext(err, "invalid frequency guesses")

	// Paths are resolved before logger changes working directory into the experiment directory.
	deviceFile := absolute(deviceFileFlag.Value())
	storePath := absolute(storePathFlag.Value())
	dataDir := absolute(dataDirFlag.Value())

	if path := showDatasetFlag.Value(); path != "" {
		errutil.CheckWithContext(printDataset(os.Stdout, absolute(path)), "cannot show dataset")
		return
	}
	if limit := historyFlag.Value(); limit > 0 {
		backend, closer, err := openBackend(storeBackendFlag.Value(), deviceFile, storePath)
		errutil.CheckWithContext(err, "cannot open calibration store")
		err = printHistory(os.Stdout, backend, limit, qubitsFlag.Value())
		closer.Close()
		errutil.CheckWithContext(err, "cannot show calibration history")
		return
	}

	uid, err := uuid.NewV4()
	errutil.CheckWithContext(err, "cannot generate experiment ID")
	experimentDirectory := logger.Initialize(appName, uid.String())

	stopAll := executor.RegisterInterruptHandle()
	defer stopAll()

	sink, err := metadata.NewDefault(uid.String())
	errutil.CheckWithContext(err, "cannot connect to metadata database")
	if sink != nil {
		if err := metadata.RecordRuntimeEnv(sink, experimentStart); err != nil {
			logrus.Errorf("Cannot record runtime environment: %v", err)
		}
	}

	backend, closer, err := openBackend(storeBackendFlag.Value(), deviceFile, storePath)
	errutil.CheckWithContext(err, "cannot open calibration store")
	defer closer.Close()

	qubits := qubitsFlag.Value()
	store, err := prepareStore(backend, qubits, resetReadoutFlag.Value())
	errutil.Check(err)

	device := measurement.Device{
		OutputAttenuation:      outputAttenuationFlag.Value(),
		NCODelayCompensationOn: ncoDelayCompEnabledFlag.Value(),
		NCODelayCompensation:   ncoDelayCompFlag.Value(),
		Sequencers:             sequencersFlag.Value(),
	}
	logrus.Debugf("Instrument settings: %+v", device)

	local := executor.NewLocalIn(filepath.Join(experimentDirectory, "tasks"))
	engine := instrument.NewEngine(local, engineCmdFlag.Value(), experimentDirectory, device)

	config := cavity.DefaultConfig()
	config.Points = pointsFlag.Value()
	config.Repetitions = repetitionsFlag.Value()
	if !runFlag.Value() {
		config.Mode = schedule.Preview
	}
	logrus.Infof("Running cavity spectroscopy of %v in %s mode", qubits, config.Mode)

	runner := cavity.NewRunner(
		config,
		store,
		measurement.NewExecutor(engine, engine, device, os.Stdout),
		analysis.NewCommand(local, analyzerCmdFlag.Value(), experimentDirectory),
	).WithSaver(dataset.NewSaver(dataDir)).WithOutput(os.Stdout)
	if sink != nil {
		runner.WithMetadata(sink)
	}

	outcome, err := runner.Run(qubits, guesses, spanFlag.Value())
	errutil.CheckWithContext(err, "cavity spectroscopy failed")

	if !outcome.Succeeded() {
		visualization.PrintList(os.Stdout, visualization.NewList(outcome.Failed, "Failed: "))
	}
	fmt.Println("CavitySpectro done!")
}

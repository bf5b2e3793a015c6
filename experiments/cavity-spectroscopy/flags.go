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
	"github.com/Maleang/Quela-Qblox/pkg/conf"
	"github.com/Maleang/Quela-Qblox/pkg/experiment/cavity"
)

var (
	qubitsFlag = conf.NewSliceFlag("qubits", "Qubits to calibrate, in order (--qubits=q0,q1)", "q0", "q1", "q2", "q3", "q4")
	guessFlag  = conf.NewSliceFlag("ro_guess", "Guessed readout resonator frequency in Hz per qubit, e.g. --ro_guess=q0=5.721e9",
		"q0=5.721e9", "q1=6.01276e9", "q2=5.83476e9", "q3=6.1015e9", "q4=5.9059e9")
	spanFlag        = conf.NewFloatFlag("ro_span", "Half-width of the readout frequency sweep in Hz", cavity.DefaultSpan)
	pointsFlag      = conf.NewIntFlag("points", "Number of sweep points", cavity.DefaultPoints)
	repetitionsFlag = conf.NewIntFlag("repetitions", "Number of averages per sweep point", cavity.DefaultRepetitions)
	runFlag         = conf.NewBoolFlag("run", "Acquire on hardware. When false the schedule is only previewed", true)

	deviceFileFlag   = conf.NewStringFlag("device_file", "YAML device file with calibration (yaml store backend)", "quantum_device.yaml")
	storeBackendFlag = conf.NewStringFlag("store_backend", "Calibration store backend: yaml or sqlite", "yaml")
	storePathFlag    = conf.NewStringFlag("store_path", "SQLite database with calibration history (sqlite store backend)", "calibration.db")
	resetReadoutFlag = conf.NewBoolFlag("reset_readout", "Unset readout frequencies of loaded calibration before the batch", true)
	dataDirFlag      = conf.NewStringFlag("data_dir", "Directory for raw datasets", "data")

	engineCmdFlag   = conf.NewStringFlag("engine_cmd", "Measurement engine command", "qblox-engine")
	analyzerCmdFlag = conf.NewStringFlag("analyzer_cmd", "Resonator fit command", "resonator-analysis")

	outputAttenuationFlag   = conf.NewIntFlag("ro_out_att", "Readout output attenuation in dB", 0)
	ncoDelayCompFlag        = conf.NewIntFlag("nco_delay_comp", "NCO propagation delay compensation in ns", 50)
	ncoDelayCompEnabledFlag = conf.NewBoolFlag("nco_delay_comp_en", "Enable NCO propagation delay compensation", true)
	sequencersFlag          = conf.NewIntFlag("sequencers", "Number of sequencers per readout module", 6)
)

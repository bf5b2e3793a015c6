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

package experiment

import (
	"fmt"
	"os"

	"github.com/Maleang/Quela-Qblox/pkg/conf"
	"github.com/Maleang/Quela-Qblox/pkg/metadata"
	"github.com/Maleang/Quela-Qblox/pkg/utils/errutil"
	"github.com/sirupsen/logrus"
)

var (
	// dumpConfigFlag name includes dash to exclude it from dumping.
	dumpConfigFlag = conf.NewBoolFlag("config-dump", "Dump configuration as environment script.", false)

	// dumpConfigExperimentIDFlag name includes dash to exclude it from dumping.
	dumpConfigExperimentIDFlag = conf.NewStringFlag("config-dump-experiment-id", "Dump configuration recorded in metadata of given experiment ID.", "")
)

// Configure handles configuration parsing and generation based on config-* flags.
// Note: exits if configuration generation was requested.
// This function resides in experiment package because it depends on metadata access.
func Configure() {
	err := conf.ParseFlags()
	if err != nil {
		logrus.Errorf("Cannot parse flags: %q", err.Error())
		os.Exit(ExUsage)
	}
	logrus.SetLevel(conf.LogLevel())

	if dumpConfigFlag.Value() {
		previousExperimentID := dumpConfigExperimentIDFlag.Value()
		if previousExperimentID != "" {
			fmt.Println(dumpRecordedConfig(previousExperimentID))
		} else {
			fmt.Println(conf.DumpConfig())
		}
		os.Exit(0)
	}
}

func dumpRecordedConfig(experimentID string) string {
	sink, err := metadata.NewDefault(experimentID)
	errutil.CheckWithContext(err, "cannot connect to metadata database")
	if sink == nil {
		logrus.Errorf("Dumping configuration of %q requires metadata_db to be set", experimentID)
		os.Exit(ExUsage)
	}

	flags, err := sink.GetByKind(metadata.TypeFlags)
	errutil.CheckWithContext(err, "cannot retrieve recorded flags")
	return conf.DumpConfigMap(flags)
}

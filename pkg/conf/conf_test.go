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

package conf

import (
	"os"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/sirupsen/logrus"
)

const testAppName = "testAppName"

var customFlag = NewStringFlag("custom_arg", "help", "default")

func clearEnv() {
	// Clear all environment variables in context of that test.
	logLevelFlag.clear()
	customFlag.clear()
}

func TestConf(t *testing.T) {
	Convey("While using Conf pkg", t, func() {
		clearEnv()
		defer clearEnv()

		SetAppName(testAppName)
		SetHelp("help message")

		Convey("Name and help should match to specified one", func() {
			So(AppName(), ShouldEqual, testAppName)
			So(app.Help, ShouldEqual, "help message")
		})

		Convey("Log level can be fetched from env", func() {
			So(ParseEnv(), ShouldBeNil)
			So(LogLevel(), ShouldEqual, logrus.ErrorLevel)

			os.Setenv(logLevelFlag.envName(), "debug")

			So(ParseEnv(), ShouldBeNil)
			So(LogLevel(), ShouldEqual, logrus.DebugLevel)
		})

		Convey("Dumped configuration contains exported variables with current values", func() {
			os.Setenv(customFlag.envName(), "dumped")
			So(ParseEnv(), ShouldBeNil)

			dump := DumpConfig()
			So(dump, ShouldStartWith, "# Export are values.\nset -o allexport\n")
			So(dump, ShouldContainSubstring, "QCAL_CUSTOM_ARG=dumped\n")
			So(dump, ShouldContainSubstring, "# Default: default\n")
			So(dump, ShouldEndWith, "set +o allexport")
		})

		Convey("Dumped configuration can be overridden with given map", func() {
			So(ParseEnv(), ShouldBeNil)
			dump := DumpConfigMap(map[string]string{"custom_arg": "fromMap"})
			So(dump, ShouldContainSubstring, "QCAL_CUSTOM_ARG=fromMap\n")
		})

		Convey("Flags map contains registered flags", func() {
			So(ParseEnv(), ShouldBeNil)
			flags := GetFlags()
			So(flags["custom_arg"], ShouldEqual, "default")
			So(flags["metadata_db"], ShouldEqual, "none")
			So(flags["log"], ShouldEqual, "error")
		})
	})
}

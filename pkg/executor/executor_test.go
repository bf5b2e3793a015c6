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
	"io/ioutil"
	"os"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestRunAndWait(t *testing.T) {
	Convey("While running commands to completion", t, func() {
		outputDir, err := ioutil.TempDir("", "run")
		So(err, ShouldBeNil)
		defer os.RemoveAll(outputDir)

		local := NewLocalIn(outputDir)

		Convey("Stdout of successful command is returned and output is erased", func() {
			stdout, err := RunAndWait(local, "echo '{\"fr\": 1}'")
			So(err, ShouldBeNil)
			So(string(stdout), ShouldEqual, "{\"fr\": 1}\n")

			entries, err := ioutil.ReadDir(outputDir)
			So(err, ShouldBeNil)
			So(entries, ShouldBeEmpty)
		})

		Convey("Quoted arguments reach the command intact", func() {
			argument := "/tmp/work dir/q0;$(id)-run.job.json"
			stdout, err := RunAndWait(local, ShellCommand("printf %s", argument))
			So(err, ShouldBeNil)
			So(string(stdout), ShouldEqual, argument)
		})

		Convey("Failing command results in ExitError and output is kept", func() {
			_, err := RunAndWait(local, "echo broken >&2; exit 3")
			So(err, ShouldHaveSameTypeAs, &ExitError{})
			So(err.(*ExitError).ExitCode, ShouldEqual, 3)

			entries, err := ioutil.ReadDir(outputDir)
			So(err, ShouldBeNil)
			So(entries, ShouldHaveLength, 1)
		})
	})
}

func TestShellCommand(t *testing.T) {
	Convey("Plain arguments are passed as they are", t, func() {
		So(ShellCommand("qblox-engine", "run", "--job", "/tmp/q0-run.job.json"), ShouldEqual, "qblox-engine run --job /tmp/q0-run.job.json")
	})

	Convey("Arguments with spaces are quoted", t, func() {
		So(ShellCommand("resonator-analysis", "--dataset", "/tmp/my data/q0.json"), ShouldEqual, "resonator-analysis --dataset '/tmp/my data/q0.json'")
	})
}

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
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Maleang/Quela-Qblox/pkg/calibration"
	"github.com/Maleang/Quela-Qblox/pkg/dataset"
	"github.com/Maleang/Quela-Qblox/pkg/visualization"
	. "github.com/smartystreets/goconvey/convey"
)

func TestPrintHistory(t *testing.T) {
	Convey("While printing calibration history", t, func() {
		dir, err := ioutil.TempDir("", "cavity-history")
		So(err, ShouldBeNil)
		defer os.RemoveAll(dir)

		output := &bytes.Buffer{}

		Convey("SQLite history lists persisted snapshots", func() {
			history, err := calibration.NewSQLiteHistory(filepath.Join(dir, "calibration.db"))
			So(err, ShouldBeNil)
			defer history.Close()

			store := calibration.NewStore(history)
			store.Register("q0", calibration.DefaultRecord())
			store.Register("q1", calibration.DefaultRecord())
			So(store.Persist("Fresh device"), ShouldBeNil)
			So(store.Commit("q0", 5.72e9), ShouldBeNil)
			So(store.Persist("After cavity search"), ShouldBeNil)

			So(printHistory(output, history, 10, []string{"q0", "q1"}), ShouldBeNil)
			So(output.String(), ShouldContainSubstring, "2 snapshot(s)")
			So(output.String(), ShouldContainSubstring, "After cavity search")
			So(output.String(), ShouldContainSubstring, "Fresh device")
			So(output.String(), ShouldContainSubstring, "5.720000E+09")
		})

		Convey("YAML device file keeps no history", func() {
			err := printHistory(output, calibration.NewYAMLFile(filepath.Join(dir, "qd.yaml")), 10, []string{"q0"})
			So(err, ShouldNotBeNil)
		})
	})
}

func TestHistoryTable(t *testing.T) {
	Convey("Unset and unknown qubits are shown as dash", t, func() {
		snapshot := calibration.Snapshot{
			Note:    "After cavity search",
			SavedAt: time.Date(2024, 1, 18, 15, 30, 12, 0, time.UTC),
			Qubits:  []string{"q0", "q1"},
			Records: map[string]calibration.Record{
				"q0": {ReadoutFrequency: calibration.Float(5.72e9)},
				"q1": calibration.DefaultRecord(),
			},
		}

		table := historyTable([]calibration.Snapshot{snapshot}, []string{"q0", "q1", "q2"})
		So(table.Rows(), ShouldEqual, 1)

		output := &bytes.Buffer{}
		So(visualization.DrawTable(output, table), ShouldBeNil)
		So(output.String(), ShouldContainSubstring, "2024-01-18T15:30:12Z")
		So(output.String(), ShouldContainSubstring, "5.720000E+09")
		So(output.String(), ShouldContainSubstring, "-")
	})
}

func TestPrintDataset(t *testing.T) {
	Convey("Saved dataset is summarized", t, func() {
		dir, err := ioutil.TempDir("", "cavity-dataset")
		So(err, ShouldBeNil)
		defer os.RemoveAll(dir)

		ds := &dataset.Dataset{
			TUID:           "20240118-153012-042-1f3a9c",
			Qubit:          "q0",
			ExperimentType: dataset.CavitySpectroscopy,
			Name:           "One-tone",
			Frequencies:    []float64{5.706e9, 5.721e9, 5.736e9},
			Magnitude:      []float64{1, 0.1, 1},
			Repetitions:    300,
			CreatedAt:      time.Date(2024, 1, 18, 15, 30, 12, 0, time.UTC),
		}
		path, _, err := dataset.NewSaver(dir).Save(ds)
		So(err, ShouldBeNil)

		output := &bytes.Buffer{}
		So(printDataset(output, path), ShouldBeNil)
		So(output.String(), ShouldContainSubstring, "20240118-153012-042-1f3a9c")
		So(output.String(), ShouldContainSubstring, "One-tone (CS)")
		So(output.String(), ShouldContainSubstring, "5.706000E+09")
		So(output.String(), ShouldContainSubstring, "magnitude contrast")

		Convey("Missing dataset is an error", func() {
			So(printDataset(output, filepath.Join(dir, "missing.cbor.zst")), ShouldNotBeNil)
		})
	})
}

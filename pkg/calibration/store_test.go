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

package calibration_test

import (
	"errors"
	"math"
	"testing"

	"github.com/Maleang/Quela-Qblox/pkg/calibration"
	"github.com/Maleang/Quela-Qblox/pkg/calibration/mocks"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/stretchr/testify/mock"
)

func TestStore(t *testing.T) {
	Convey("While using calibration store", t, func() {
		backend := new(mocks.Backend)
		store := calibration.NewStore(backend)
		store.Register("q0", calibration.DefaultRecord())

		Convey("Registered qubit can be read", func() {
			record, err := store.Read("q0")
			So(err, ShouldBeNil)
			So(*record.PulseAmplitude, ShouldEqual, 0.1)
			So(*record.PulseDuration, ShouldEqual, 2e-6)
			So(*record.IntegrationTime, ShouldEqual, 2e-6)
			So(*record.AcquisitionDelay, ShouldEqual, 0)
			So(record.ReadoutFrequency, ShouldBeNil)
			So(store.Qubits(), ShouldResemble, []string{"q0"})
		})

		Convey("Reading unknown qubit fails with UnknownQubitError", func() {
			_, err := store.Read("q9")
			So(err, ShouldHaveSameTypeAs, &calibration.UnknownQubitError{})
			So(store.Commit("q9", 5e9), ShouldHaveSameTypeAs, &calibration.UnknownQubitError{})
			So(store.ResetReadout("q9"), ShouldHaveSameTypeAs, &calibration.UnknownQubitError{})
		})

		Convey("Read returns a copy", func() {
			record, err := store.Read("q0")
			So(err, ShouldBeNil)
			*record.PulseAmplitude = 0.5

			again, err := store.Read("q0")
			So(err, ShouldBeNil)
			So(*again.PulseAmplitude, ShouldEqual, 0.1)
		})

		Convey("Commit overwrites only readout frequency", func() {
			before, err := store.Read("q0")
			So(err, ShouldBeNil)

			So(store.Commit("q0", 5.72e9), ShouldBeNil)

			after, err := store.Read("q0")
			So(err, ShouldBeNil)
			So(*after.ReadoutFrequency, ShouldEqual, 5.72e9)
			after.ReadoutFrequency = nil
			So(after.Equal(before), ShouldBeTrue)
		})

		Convey("Commit is idempotent", func() {
			So(store.Commit("q0", 5.72e9), ShouldBeNil)
			once, err := store.Read("q0")
			So(err, ShouldBeNil)

			So(store.Commit("q0", 5.72e9), ShouldBeNil)
			twice, err := store.Read("q0")
			So(err, ShouldBeNil)

			So(twice.Equal(once), ShouldBeTrue)
		})

		Convey("Commit of non finite frequency is rejected and leaves record unchanged", func() {
			So(store.Commit("q0", 5.72e9), ShouldBeNil)
			So(store.Commit("q0", math.NaN()), ShouldNotBeNil)

			record, err := store.Read("q0")
			So(err, ShouldBeNil)
			So(*record.ReadoutFrequency, ShouldEqual, 5.72e9)
		})

		Convey("ResetReadout unsets readout frequency", func() {
			So(store.Commit("q0", 5.72e9), ShouldBeNil)
			So(store.ResetReadout("q0"), ShouldBeNil)

			record, err := store.Read("q0")
			So(err, ShouldBeNil)
			So(record.ReadoutFrequency, ShouldBeNil)
			So(record.PulseAmplitude, ShouldNotBeNil)
		})

		Convey("Persist hands full snapshot with note to backend", func() {
			So(store.Commit("q0", 5.72e9), ShouldBeNil)
			backend.On("Persist", mock.MatchedBy(func(snapshot calibration.Snapshot) bool {
				record := snapshot.Records["q0"]
				return snapshot.Note == "After cavity search" &&
					len(snapshot.Qubits) == 1 &&
					record.ReadoutFrequency != nil && *record.ReadoutFrequency == 5.72e9
			})).Return(nil).Once()

			So(store.Persist("After cavity search"), ShouldBeNil)
			So(backend.AssertExpectations(t), ShouldBeTrue)
		})

		Convey("Persist error is returned", func() {
			backend.On("Persist", mock.Anything).Return(errors.New("disk full")).Once()
			err := store.Persist("note")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "disk full")
		})
	})
}

func TestLoad(t *testing.T) {
	Convey("While loading store from backend", t, func() {
		backend := new(mocks.Backend)

		Convey("Qubits keep snapshot order", func() {
			backend.On("Load").Return(calibration.Snapshot{
				Note:   "previous",
				Qubits: []string{"q2", "q0"},
				Records: map[string]calibration.Record{
					"q0": calibration.DefaultRecord(),
					"q2": {ReadoutFrequency: calibration.Float(5.8e9)},
				},
			}, nil).Once()

			store, err := calibration.Load(backend)
			So(err, ShouldBeNil)
			So(store.Qubits(), ShouldResemble, []string{"q2", "q0"})

			record, err := store.Read("q2")
			So(err, ShouldBeNil)
			So(*record.ReadoutFrequency, ShouldEqual, 5.8e9)
		})

		Convey("Missing snapshot is reported with ErrNoSnapshot", func() {
			backend.On("Load").Return(calibration.Snapshot{}, calibration.ErrNoSnapshot).Once()
			_, err := calibration.Load(backend)
			So(err, ShouldEqual, calibration.ErrNoSnapshot)
		})

		Convey("Inconsistent snapshot is rejected", func() {
			backend.On("Load").Return(calibration.Snapshot{Qubits: []string{"q0"}}, nil).Once()
			_, err := calibration.Load(backend)
			So(err, ShouldNotBeNil)
		})
	})
}

func TestRecordValidate(t *testing.T) {
	Convey("Record validation names first missing field", t, func() {
		So(calibration.DefaultRecord().Validate("q0"), ShouldBeNil)

		record := calibration.DefaultRecord()
		record.IntegrationTime = nil
		err := record.Validate("q0")
		So(err, ShouldHaveSameTypeAs, &calibration.MissingCalibrationFieldError{})
		So(err.(*calibration.MissingCalibrationFieldError).Field, ShouldEqual, calibration.FieldIntegrationTime)

		Convey("Readout frequency is not required", func() {
			record := calibration.DefaultRecord()
			record.ReadoutFrequency = nil
			So(record.Validate("q0"), ShouldBeNil)
		})
	})
}

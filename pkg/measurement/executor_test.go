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

package measurement_test

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/Maleang/Quela-Qblox/pkg/calibration"
	"github.com/Maleang/Quela-Qblox/pkg/dataset"
	"github.com/Maleang/Quela-Qblox/pkg/measurement"
	"github.com/Maleang/Quela-Qblox/pkg/measurement/mocks"
	"github.com/Maleang/Quela-Qblox/pkg/schedule"
	"github.com/Maleang/Quela-Qblox/pkg/sweep"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/stretchr/testify/mock"
)

func TestExecutor(t *testing.T) {
	Convey("While executing one-tone schedules", t, func() {
		loop := new(mocks.ControlLoop)
		previewer := new(mocks.Previewer)
		report := &bytes.Buffer{}
		executor := measurement.NewExecutor(loop, previewer, measurement.DefaultDevice(), report)

		plan, err := sweep.New(5.721e9, 15e6, 200)
		So(err, ShouldBeNil)

		build := func(mode schedule.Mode) schedule.Spec {
			spec, err := schedule.Build("q0", calibration.DefaultRecord(), plan, mode)
			So(err, ShouldBeNil)
			return spec
		}

		Convey("Preview never contacts control loop", func() {
			spec := build(schedule.Preview)
			previewer.On("Preview", spec).Return(nil).Once()

			ds, err := executor.Execute(spec, schedule.Preview, 300)
			So(err, ShouldBeNil)
			So(ds, ShouldBeNil)
			So(previewer.AssertExpectations(t), ShouldBeTrue)
			So(loop.AssertNotCalled(t, "Run", mock.Anything), ShouldBeTrue)

			Convey("But still reports sweep bounds", func() {
				So(report.String(), ShouldContainSubstring, "One_tone_kwargs: Meas.qubit=q0")
				So(report.String(), ShouldContainSubstring, "5.706000E+09")
				So(report.String(), ShouldContainSubstring, "5.736000E+09")
			})
		})

		Convey("Failing preview results in ExecutionError", func() {
			spec := build(schedule.Preview)
			previewer.On("Preview", spec).Return(errors.New("render failed")).Once()

			_, err := executor.Execute(spec, schedule.Preview, 300)
			So(err, ShouldHaveSameTypeAs, &measurement.ExecutionError{})
		})

		Convey("Live execution sends full job to control loop", func() {
			spec := build(schedule.Live)
			acquired := &dataset.Dataset{
				Frequencies: spec.Frequencies,
				Magnitude:   make([]float64, len(spec.Frequencies)),
			}
			loop.On("Run", mock.MatchedBy(func(job measurement.Job) bool {
				return job.Name == "One-tone" &&
					job.Repetitions == 300 &&
					len(job.Schedule.Frequencies) == 200 &&
					job.Schedule.Batched &&
					job.Device == measurement.DefaultDevice()
			})).Return(acquired, nil).Once()

			ds, err := executor.Execute(spec, schedule.Live, 300)
			So(err, ShouldBeNil)
			So(loop.AssertExpectations(t), ShouldBeTrue)
			So(previewer.AssertNotCalled(t, "Preview", mock.Anything), ShouldBeTrue)

			Convey("And dataset is tagged", func() {
				So(ds.TUID, ShouldNotBeEmpty)
				So(ds.Qubit, ShouldEqual, "q0")
				So(ds.ExperimentType, ShouldEqual, dataset.CavitySpectroscopy)
				So(ds.Name, ShouldEqual, measurement.ExperimentName)
				So(ds.Repetitions, ShouldEqual, 300)
				So(ds.CreatedAt.IsZero(), ShouldBeFalse)
			})
		})

		Convey("TUID set by control loop is kept", func() {
			spec := build(schedule.Live)
			loop.On("Run", mock.Anything).Return(&dataset.Dataset{TUID: "engine-tuid", CreatedAt: time.Now()}, nil).Once()

			ds, err := executor.Execute(spec, schedule.Live, 1)
			So(err, ShouldBeNil)
			So(ds.TUID, ShouldEqual, "engine-tuid")
		})

		Convey("Consecutive live runs get distinct TUIDs", func() {
			spec := build(schedule.Live)
			loop.On("Run", mock.Anything).Return(func(measurement.Job) *dataset.Dataset {
				return &dataset.Dataset{}
			}, nil).Twice()

			first, err := executor.Execute(spec, schedule.Live, 300)
			So(err, ShouldBeNil)
			second, err := executor.Execute(spec, schedule.Live, 300)
			So(err, ShouldBeNil)
			So(first.TUID, ShouldNotEqual, second.TUID)
		})

		Convey("Control loop failure results in ExecutionError", func() {
			spec := build(schedule.Live)
			loop.On("Run", mock.Anything).Return(nil, errors.New("instrument timeout")).Once()

			ds, err := executor.Execute(spec, schedule.Live, 300)
			So(ds, ShouldBeNil)
			So(err, ShouldHaveSameTypeAs, &measurement.ExecutionError{})
			So(err.Error(), ShouldContainSubstring, "instrument timeout")
		})

		Convey("Missing dataset results in ExecutionError", func() {
			spec := build(schedule.Live)
			loop.On("Run", mock.Anything).Return(nil, nil).Once()

			_, err := executor.Execute(spec, schedule.Live, 300)
			So(err, ShouldHaveSameTypeAs, &measurement.ExecutionError{})
		})

		Convey("Non positive repetitions are rejected before contacting hardware", func() {
			spec := build(schedule.Live)

			_, err := executor.Execute(spec, schedule.Live, 0)
			So(err, ShouldHaveSameTypeAs, &measurement.ExecutionError{})
			So(loop.AssertNotCalled(t, "Run", mock.Anything), ShouldBeTrue)
			So(report.Len(), ShouldEqual, 0)
		})
	})
}

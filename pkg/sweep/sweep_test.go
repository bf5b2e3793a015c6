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

package sweep

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	. "github.com/smartystreets/goconvey/convey"
)

func TestPlan(t *testing.T) {
	Convey("While planning a sweep", t, func() {
		Convey("Samples cover the closed interval in ascending order", func() {
			for _, points := range []int{2, 3, 7, 200, 201} {
				plan, err := New(5.721e9, 15e6, points)
				So(err, ShouldBeNil)

				samples := plan.Samples()
				So(samples, ShouldHaveLength, points)
				So(samples[0], ShouldEqual, 5.721e9-15e6)
				So(samples[points-1], ShouldEqual, 5.721e9+15e6)
				for i := 1; i < len(samples); i++ {
					So(samples[i], ShouldBeGreaterThan, samples[i-1])
				}
				So(plan.Start(), ShouldEqual, samples[0])
				So(plan.End(), ShouldEqual, samples[points-1])
				So(plan.Center(), ShouldEqual, 5.721e9)
				So(plan.Span(), ShouldEqual, 15e6)
			}
		})

		Convey("Samples are evenly spaced", func() {
			plan, err := New(10, 2, 5)
			So(err, ShouldBeNil)
			So(plan.Samples(), ShouldResemble, []float64{8, 9, 10, 11, 12})
		})

		Convey("Repeated planning is bit identical", func() {
			first, err := New(6.01276e9, 15e6, 200)
			So(err, ShouldBeNil)
			second, err := New(6.01276e9, 15e6, 200)
			So(err, ShouldBeNil)

			a, b := first.Samples(), second.Samples()
			So(len(a), ShouldEqual, len(b))
			for i := range a {
				So(math.Float64bits(a[i]), ShouldEqual, math.Float64bits(b[i]))
			}
		})

		Convey("Too few points are rejected", func() {
			_, err := New(5e9, 15e6, 1)
			So(err, ShouldNotBeNil)
			_, ok := errors.Cause(err).(*InvalidSweepError)
			So(ok, ShouldBeTrue)
		})

		Convey("Non positive span is rejected", func() {
			for _, span := range []float64{0, -1, math.NaN(), math.Inf(1)} {
				_, err := New(5e9, span, 10)
				So(err, ShouldHaveSameTypeAs, &InvalidSweepError{})
			}
		})

		Convey("Non finite center is rejected", func() {
			_, err := New(math.NaN(), 1, 10)
			So(err, ShouldHaveSameTypeAs, &InvalidSweepError{})
		})

		Convey("Span below frequency resolution is rejected", func() {
			_, err := New(5.721e9, 1e-6, 200)
			So(err, ShouldHaveSameTypeAs, &InvalidSweepError{})
			So(err.Error(), ShouldContainSubstring, "resolution")
		})

		Convey("Overflowing bounds are rejected", func() {
			_, err := New(1.7e308, 1e308, 3)
			So(err, ShouldHaveSameTypeAs, &InvalidSweepError{})
			So(err.Error(), ShouldContainSubstring, "overflow")
		})

		Convey("Plan is not affected by modifying returned samples", func() {
			plan, err := New(10, 2, 5)
			So(err, ShouldBeNil)
			samples := plan.Samples()
			samples[0] = 0
			So(plan.Start(), ShouldEqual, 8)
		})

		Convey("Head truncates to available samples", func() {
			plan, err := New(10, 2, 5)
			So(err, ShouldBeNil)
			So(plan.Head(2), ShouldResemble, []float64{8, 9})
			So(plan.Head(10), ShouldHaveLength, 5)
			So(FromSamples([]float64{7}).Head(2), ShouldResemble, []float64{7})
			So(FromSamples(nil).Head(2), ShouldBeEmpty)
		})
	})
}

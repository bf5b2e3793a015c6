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

package metadata

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestEntry(t *testing.T) {
	Convey("While preparing metadata entry", t, func() {
		now := time.Now()

		Convey("Recorded values are copied", func() {
			values := map[string]string{"qubit": "q0", "fr": "5720000000"}
			record, err := newEntry("exp-1", "cavity-spectroscopy", values, now)
			So(err, ShouldBeNil)

			values["fr"] = "0"
			So(record.values["fr"], ShouldEqual, "5720000000")
			So(record.kind, ShouldEqual, "cavity-spectroscopy")
			So(record.time, ShouldEqual, now)
		})

		Convey("Empty record is rejected", func() {
			_, err := newEntry("exp-1", "cavity-spectroscopy-batch", map[string]string{}, now)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "cavity-spectroscopy-batch")
		})

		Convey("Empty key is rejected", func() {
			_, err := newEntry("exp-1", "cavity-spectroscopy", map[string]string{"": "q0"}, now)
			So(err, ShouldNotBeNil)
		})
	})
}

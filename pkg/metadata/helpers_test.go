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

package metadata_test

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/Maleang/Quela-Qblox/pkg/conf"
	"github.com/Maleang/Quela-Qblox/pkg/metadata"
	"github.com/Maleang/Quela-Qblox/pkg/metadata/mocks"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/stretchr/testify/mock"
)

func TestRecordRuntimeEnv(t *testing.T) {
	Convey("While recording runtime environment", t, func() {
		os.Setenv(conf.EnvironmentPrefix+"_TEST_RECORD", "42")
		defer os.Unsetenv(conf.EnvironmentPrefix + "_TEST_RECORD")

		sink := new(mocks.Metadata)

		Convey("Flags, environment, host and platform are recorded", func() {
			sink.On("RecordMap", mock.Anything, metadata.TypeFlags).Return(nil).Once()
			sink.On("RecordMap", mock.MatchedBy(func(m map[string]string) bool {
				return m[conf.EnvironmentPrefix+"_TEST_RECORD"] == "42"
			}), metadata.TypeEnviron).Return(nil).Once()
			sink.On("RecordMap", mock.MatchedBy(func(m map[string]string) bool {
				return m["host"] != "" && m["time"] != ""
			}), metadata.TypeEmpty).Return(nil).Once()
			sink.On("RecordMap", mock.MatchedBy(func(m map[string]string) bool {
				_, hasKernel := m[metadata.KernelVersionKey]
				return hasKernel && m[metadata.GoVersionKey] != ""
			}), metadata.TypePlatform).Return(nil).Once()

			So(metadata.RecordRuntimeEnv(sink, time.Now()), ShouldBeNil)
			So(sink.AssertExpectations(t), ShouldBeTrue)
		})

		Convey("First failure stops recording", func() {
			sink.On("RecordMap", mock.Anything, metadata.TypeFlags).Return(errors.New("unavailable")).Once()

			So(metadata.RecordRuntimeEnv(sink, time.Now()), ShouldNotBeNil)
			sink.AssertNumberOfCalls(t, "RecordMap", 1)
		})
	})
}

func TestNewDefault(t *testing.T) {
	Convey("Metadata is disabled by default", t, func() {
		sink, err := metadata.NewDefault("experiment")
		So(err, ShouldBeNil)
		So(sink, ShouldBeNil)
	})
}

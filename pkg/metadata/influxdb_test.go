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
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/Maleang/Quela-Qblox/pkg/conf"
	"github.com/influxdata/influxdb/client/v2"
	"github.com/influxdata/influxdb/models"
	. "github.com/smartystreets/goconvey/convey"
)

func TestInfluxDB(t *testing.T) {
	Convey("While using metadata package", t, func() {
		influxDefConf := DefaultInfluxDBConfig()
		Convey("InfluxDB default config shall have default settings", func() {
			So(influxDefConf.dbName, ShouldEqual, conf.InfluxDBMetaName.Value())
			So(influxDefConf.httpConfig.Addr, ShouldEqual, fmt.Sprintf("http://%s:%d", conf.InfluxDBAddress.Value(), conf.InfluxDBPort.Value()))
			So(influxDefConf.httpConfig.Username, ShouldEqual, conf.InfluxDBUsername.Value())
			So(influxDefConf.httpConfig.Password, ShouldEqual, conf.InfluxDBPassword.Value())
			So(influxDefConf.createDatabase, ShouldEqual, conf.InfluxDBCreateDatabase.Value())
		})
	})
}

func TestInfluxDBRecords(t *testing.T) {
	Convey("Batch outcome of cavity spectroscopy is written as one point", t, func() {
		now := time.Date(2024, 1, 18, 15, 30, 12, 0, time.UTC)
		record, err := newEntry("exp-1", "cavity-spectroscopy-batch", map[string]string{"qubits": "q0,q1", "failed": "q1"}, now)
		So(err, ShouldBeNil)

		point, err := record.point()
		So(err, ShouldBeNil)
		So(point.Name(), ShouldEqual, "metadata")
		So(point.Time().Equal(now), ShouldBeTrue)
		So(point.Tags(), ShouldResemble, map[string]string{"kind": "cavity-spectroscopy-batch", "experiment_id": "exp-1"})

		fields, err := point.Fields()
		So(err, ShouldBeNil)
		So(fields, ShouldResemble, map[string]interface{}{"qubits": "q0,q1", "failed": "q1"})
	})

	Convey("Query of latest record quotes experiment id and kind", t, func() {
		So(lastOfKindQuery("exp'1", "cavity-spectroscopy"), ShouldEqual,
			`SELECT last(*) FROM metadata WHERE experiment_id='exp\'1' AND kind='cavity-spectroscopy' GROUP BY experiment_id,kind`)
	})

	Convey("Latest cavity spectroscopy record is read back from query results", t, func() {
		results := []client.Result{{
			Series: []models.Row{{
				Name:    "metadata",
				Columns: []string{"time", "last_digest", "last_fr", "last_qubit"},
				Values:  [][]interface{}{{"2024-01-18T15:30:12Z", nil, json.Number("5720000000"), "q0"}},
			}},
		}}

		So(valuesFromResults(results), ShouldResemble, map[string]string{"fr": "5720000000", "qubit": "q0"})
		So(valuesFromResults(nil), ShouldBeEmpty)
	})
}

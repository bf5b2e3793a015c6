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

	"github.com/Maleang/Quela-Qblox/pkg/conf"
	"github.com/gocql/gocql"
	. "github.com/smartystreets/goconvey/convey"
)

func TestCassandraDB(t *testing.T) {
	Convey("While using metadata package", t, func() {
		cassandraDefConf := DefaultCassandraConfig()
		Convey("Cassandra default config shall have default settings", func() {
			So(cassandraDefConf.Address, ShouldEqual, conf.CassandraAddress.Value())
			So(cassandraDefConf.Username, ShouldEqual, conf.CassandraUsername.Value())
			So(cassandraDefConf.Password, ShouldEqual, conf.CassandraPassword.Value())
			So(cassandraDefConf.Port, ShouldEqual, conf.CassandraPort.Value())
			So(cassandraDefConf.KeyspaceName, ShouldEqual, "qcal")
		})

		Convey("Cluster config uses configured endpoint", func() {
			cluster := getClusterConfig(&Cassandra{config: cassandraDefConf})
			So(cluster.Hosts, ShouldResemble, []string{cassandraDefConf.Address})
			So(cluster.Port, ShouldEqual, 9042)
			So(cluster.DisableInitialHostLookup, ShouldBeFalse)
		})

		Convey("Cavity spectroscopy record is bound to insert query", func() {
			now := time.Date(2024, 1, 18, 15, 30, 12, 0, time.UTC)
			values := map[string]string{"qubit": "q0", "tuid": "20240118-153012-042-1f3a9c", "fr": "5720000000"}
			record, err := newEntry("exp-1", "cavity-spectroscopy", values, now)
			So(err, ShouldBeNil)

			args := record.insertArgs()
			So(args, ShouldHaveLength, 5)
			So(args[0], ShouldEqual, "exp-1")
			So(args[1], ShouldEqual, "cavity-spectroscopy")
			So(args[2], ShouldEqual, now)
			So(args[3].(gocql.UUID).Time().Equal(now), ShouldBeTrue)
			So(args[4], ShouldResemble, values)
		})

		Convey("SSL options are taken from config", func() {
			cassandraDefConf.SslCAPath = "/etc/ssl/ca.pem"
			cassandraDefConf.SslHostValidation = true
			options := sslOptions(cassandraDefConf)
			So(options.CaPath, ShouldEqual, "/etc/ssl/ca.pem")
			So(options.EnableHostVerification, ShouldBeTrue)
		})
	})
}

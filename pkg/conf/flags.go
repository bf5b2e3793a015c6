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

var (
	// DefaultMetadataDB selects the metadata backend: none, cassandra or influxdb.
	DefaultMetadataDB = NewStringFlag("metadata_db", "Database used to store run metadata: none, cassandra or influxdb", "none")

	// CassandraAddress represents cassandra address flag.
	CassandraAddress = NewStringFlag("cassandra_addr", "Address of Cassandra DB endpoint", "127.0.0.1")
	// CassandraPort represents cassandra port flag.
	CassandraPort = NewIntFlag("cassandra_port", "Port of Cassandra DB endpoint", 9042)
	// CassandraUsername is the user name used when connecting to Cassandra.
	CassandraUsername = NewStringFlag("cassandra_username", "The user name which will be presented when connecting to the cluster", "")
	// CassandraPassword is the password used when connecting to Cassandra.
	CassandraPassword = NewStringFlag("cassandra_password", "The password which will be presented when connecting to the cluster", "")
	// CassandraConnectionTimeout is the initial connection timeout in seconds.
	CassandraConnectionTimeout = NewIntFlag("cassandra_connection_timeout", "Initial connection timeout in seconds", 0)
	// CassandraTimeout is the query timeout in seconds.
	CassandraTimeout = NewIntFlag("cassandra_timeout", "Query timeout in seconds", 0)
	// CassandraCreateKeyspace decides whether the keyspace is created on connect.
	CassandraCreateKeyspace = NewBoolFlag("cassandra_create_keyspace", "Create keyspace when connecting", true)
	// CassandraKeyspaceName is the keyspace holding the metadata table.
	CassandraKeyspaceName = NewStringFlag("cassandra_keyspace_name", "Keyspace used to store metadata", "qcal")
	// CassandraIgnorePeerAddr forces the driver to use the configured address only.
	CassandraIgnorePeerAddr = NewBoolFlag("cassandra_ignore_peer_addr", "Use configured address instead of peer addresses discovered", false)
	// CassandraInitialHostLookup enables initial host lookup.
	CassandraInitialHostLookup = NewBoolFlag("cassandra_initial_host_lookup", "Lookup Cassandra cluster hosts before connecting", true)
	// CassandraSslEnabled enables SSL.
	CassandraSslEnabled = NewBoolFlag("cassandra_ssl", "Enable SSL connection to Cassandra", false)
	// CassandraSslHostValidation enables host validation.
	CassandraSslHostValidation = NewBoolFlag("cassandra_ssl_host_validation", "Enable host validation", false)
	// CassandraSslCAPath is the path to the CA certificate.
	CassandraSslCAPath = NewStringFlag("cassandra_ssl_ca_path", "Path to CA certificate", "")
	// CassandraSslCertPath is the path to the client certificate.
	CassandraSslCertPath = NewStringFlag("cassandra_ssl_cert_path", "Path to client certificate", "")
	// CassandraSslKeyPath is the path to the client key.
	CassandraSslKeyPath = NewStringFlag("cassandra_ssl_key_path", "Path to client key", "")

	// InfluxDBAddress represents InfluxDB address flag.
	InfluxDBAddress = NewStringFlag("influxdb_addr", "Address of InfluxDB endpoint", "127.0.0.1")
	// InfluxDBPort represents InfluxDB port flag.
	InfluxDBPort = NewIntFlag("influxdb_port", "Port of InfluxDB endpoint", 8086)
	// InfluxDBUsername is the user name used when connecting to InfluxDB.
	InfluxDBUsername = NewStringFlag("influxdb_user", "InfluxDB user name", "")
	// InfluxDBPassword is the password used when connecting to InfluxDB.
	InfluxDBPassword = NewStringFlag("influxdb_password", "InfluxDB password", "")
	// InfluxDBMetaName is the database holding metadata.
	InfluxDBMetaName = NewStringFlag("influxdb_metadata_db_name", "Name of the InfluxDB database for metadata", "qcal_metadata")
	// InfluxDBCreateDatabase decides whether the database is created on connect.
	InfluxDBCreateDatabase = NewBoolFlag("influxdb_create_database", "Create InfluxDB metadata database when connecting", true)
	// InfluxDBInsecureSkipVerify disables certificate verification.
	InfluxDBInsecureSkipVerify = NewBoolFlag("influxdb_insecure_skip_verify", "Skip TLS certificate verification", false)
)

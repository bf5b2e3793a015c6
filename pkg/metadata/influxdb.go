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
	"fmt"
	"strings"
	"time"

	"github.com/influxdata/influxdb/client/v2"
	"github.com/Maleang/Quela-Qblox/pkg/conf"
	"github.com/pkg/errors"
)

const (
	influxMetadata = "metadata"
)

// InfluxDBConfig holds configuration for InfluxDB
type InfluxDBConfig struct {
	httpConfig     client.HTTPConfig
	dbName         string
	createDatabase bool
}

// InfluxDB is a helper struct which keeps the InfluxDB session alive,
// holds the active configuration and the experiment id to tag the metadata with.
type InfluxDB struct {
	experimentID string
	session      client.Client
	config       InfluxDBConfig
}

// DefaultInfluxDBConfig applies the InfluxDB settings from the command line flags and
// environment variables.
func DefaultInfluxDBConfig() InfluxDBConfig {
	return InfluxDBConfig{
		dbName:         conf.InfluxDBMetaName.Value(),
		createDatabase: conf.InfluxDBCreateDatabase.Value(),
		httpConfig: client.HTTPConfig{
			Addr:               fmt.Sprintf("http://%s:%d", conf.InfluxDBAddress.Value(), conf.InfluxDBPort.Value()),
			Password:           conf.InfluxDBPassword.Value(),
			Username:           conf.InfluxDBUsername.Value(),
			InsecureSkipVerify: conf.InfluxDBInsecureSkipVerify.Value(),
		},
	}
}

// NewInfluxDB returns the Metadata helper from an experiment id and configuration.
func NewInfluxDB(experimentID string, config InfluxDBConfig) (Metadata, error) {
	var err error

	metadata := &InfluxDB{
		experimentID: experimentID,
		config:       config,
	}

	metadata.session, err = client.NewHTTPClient(metadata.config.httpConfig)

	if err != nil {
		return nil, errors.Wrapf(err, "cannot create influx client for experiment %s", experimentID)
	}

	if config.createDatabase {
		response, err := metadata.session.Query(client.Query{
			Command:  fmt.Sprintf("CREATE DATABASE %s", config.dbName),
			Database: ""})
		if err != nil {
			return nil, errors.Wrapf(err, "cannot create influx database for experiment %s", experimentID)
		}
		if response.Error() != nil {
			return nil, errors.Wrapf(response.Error(), "response contains error for experiment %s", experimentID)
		}

	}

	return metadata, nil
}

// point converts entry into a single InfluxDB point. Kind and experiment id are tags,
// recorded values are string fields.
func (e entry) point() (*client.Point, error) {
	tags := map[string]string{"kind": e.kind, "experiment_id": e.experimentID}
	fields := make(map[string]interface{}, len(e.values))
	for key, value := range e.values {
		fields[key] = value
	}
	point, err := client.NewPoint(influxMetadata, tags, fields, e.time)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot create new point, kind %q", e.kind)
	}
	return point, nil
}

// influxDBStoreMap writes metadata as one point. No aggregation is being done.
func influxDBStoreMap(m *InfluxDB, metadata map[string]string, kind string) error {
	record, err := newEntry(m.experimentID, kind, metadata, time.Now())
	if err != nil {
		return err
	}
	point, err := record.point()
	if err != nil {
		return err
	}

	batchPoints, err := client.NewBatchPoints(client.BatchPointsConfig{Database: m.config.dbName})
	if err != nil {
		return errors.Wrapf(err, "creation of batch points for InfluxDB failed for metadata kind %q", kind)
	}
	batchPoints.AddPoint(point)

	if err := m.session.Write(batchPoints); err != nil {
		return errors.Wrapf(err, "cannot publish metadata of kind %q", kind)
	}
	return nil
}

// quoteInflux returns InfluxQL string literal of value.
func quoteInflux(value string) string {
	return "'" + strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(value) + "'"
}

// lastOfKindQuery selects the latest value of every field recorded with kind.
// Tags are grouped away, so returned columns hold recorded keys only.
func lastOfKindQuery(experimentID, kind string) string {
	return fmt.Sprintf("SELECT last(*) FROM %s WHERE experiment_id=%s AND kind=%s GROUP BY experiment_id,kind",
		influxMetadata, quoteInflux(experimentID), quoteInflux(kind))
}

// valuesFromResults flattens query results into recorded keys and values.
// Timestamp column and empty cells of sparse results are skipped.
func valuesFromResults(results []client.Result) map[string]string {
	metadata := map[string]string{}
	for _, result := range results {
		for _, row := range result.Series {
			for _, value := range row.Values {
				for idx, cell := range value {
					if cell == nil || idx == 0 || idx >= len(row.Columns) {
						continue
					}
					metadata[strings.TrimPrefix(row.Columns[idx], "last_")] = fmt.Sprint(cell)
				}
			}
		}
	}
	return metadata
}

// Record stores a key and value and associates with the experiment id.
func (m *InfluxDB) Record(key, value, kind string) error {
	metadata := map[string]string{}
	metadata[key] = value
	return influxDBStoreMap(m, metadata, kind)
}

// RecordMap stores a key and value map and associates with the experiment id.
func (m *InfluxDB) RecordMap(metadata map[string]string, kind string) error {
	return influxDBStoreMap(m, metadata, kind)
}

// GetByKind retrieves the most recent metadata of given kind.
// Returns error if no such kind was recorded.
func (m *InfluxDB) GetByKind(kind string) (map[string]string, error) {
	response, err := m.session.Query(client.Query{
		Command:  lastOfKindQuery(m.experimentID, kind),
		Database: m.config.dbName,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to query influxdb for experiment %s", m.experimentID)
	}
	if response.Error() != nil {
		return nil, errors.Wrapf(response.Error(), "response from influxdb contained error for experiment %s", m.experimentID)
	}

	metadata := valuesFromResults(response.Results)
	if len(metadata) == 0 {
		return nil, errors.Errorf("cannot retrieve metadata for experiment ID %q and %q kind", m.experimentID, kind)
	}
	return metadata, nil
}

// Clear deletes all metadata entries associated with the current experiment id.
func (m *InfluxDB) Clear() error {
	cmd := fmt.Sprintf("DROP SERIES FROM %s WHERE experiment_id=%s", influxMetadata, quoteInflux(m.experimentID))

	query := client.Query{
		Command:  cmd,
		Database: m.config.dbName,
	}

	response, err := m.session.Query(query)

	if err != nil {
		return errors.Wrapf(err, "failed to query influxdb for experiment %s", m.experimentID)
	}

	if response.Error() != nil {
		return errors.Wrapf(response.Error(), "response from influxdb contained error for experiment %s", m.experimentID)
	}
	return nil
}

// Close closes InfluxDB client.
func (m *InfluxDB) Close() {
	m.session.Close()
}

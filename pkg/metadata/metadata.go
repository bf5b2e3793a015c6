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
	"time"

	"github.com/Maleang/Quela-Qblox/pkg/conf"
	"github.com/pkg/errors"
)

// Predefined types of metadata.
// This selector allows to group metadata by their common characteristics.
// TypeFlags holds parameters of the run, TypeEnviron the environment variables,
// TypePlatform recorded host characteristics. Note that kind is just a string and
// each experiment can define its own kinds.
const (
	TypeEmpty    = ""
	TypeFlags    = "flags"
	TypeEnviron  = "environ"
	TypePlatform = "platform"
)

// Metadata interface defines methods which must be supported by DB backend
type Metadata interface {
	// Record stores a key and value and associates with the experiment id.
	Record(key string, value string, kind string) error
	// RecordMap stores a key and value map and associates with the experiment id.
	RecordMap(metadata map[string]string, kind string) error
	// GetByKind retrieves the most recent metadata of given kind.
	// Returns error if no such kind was recorded.
	GetByKind(kind string) (map[string]string, error)
	// Clear deletes all metadata entries associated with the current experiment id.
	Clear() error
}

// NewDefault initialize metadata object which is configured via flags and env. variables.
// It returns nil Metadata when metadata recording is disabled.
func NewDefault(experimentID string) (Metadata, error) {
	switch conf.DefaultMetadataDB.Value() {
	case "none", "":
		return nil, nil
	case "cassandra":
		return NewCassandra(experimentID, DefaultCassandraConfig())
	case "influxdb":
		return NewInfluxDB(experimentID, DefaultInfluxDBConfig())
	}

	return nil, errors.Errorf("unsupported database for metadata: %s", conf.DefaultMetadataDB.Value())
}

// entry is a single metadata record ready to be written by a backend.
type entry struct {
	experimentID string
	kind         string
	values       map[string]string
	time         time.Time
}

// newEntry copies values, so the caller may reuse its map after recording.
// Empty records and empty keys are rejected since neither backend can query them back.
func newEntry(experimentID, kind string, values map[string]string, now time.Time) (entry, error) {
	if len(values) == 0 {
		return entry{}, errors.Errorf("metadata of kind %q is empty", kind)
	}
	copied := make(map[string]string, len(values))
	for key, value := range values {
		if key == "" {
			return entry{}, errors.Errorf("metadata of kind %q contains empty key", kind)
		}
		copied[key] = value
	}
	return entry{experimentID: experimentID, kind: kind, values: copied, time: now}, nil
}


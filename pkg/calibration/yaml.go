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

package calibration

import (
	"io/ioutil"
	"os"

	"github.com/Maleang/Quela-Qblox/pkg/utils/fs"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// YAMLFile keeps the latest snapshot in a single YAML device file.
// Every Persist overwrites the file.
type YAMLFile struct {
	path string
}

// NewYAMLFile returns backend writing to path.
func NewYAMLFile(path string) *YAMLFile {
	return &YAMLFile{path: path}
}

// Path returns location of the device file.
func (y *YAMLFile) Path() string {
	return y.path
}

// Load reads the device file.
func (y *YAMLFile) Load() (Snapshot, error) {
	data, err := ioutil.ReadFile(y.path)
	if os.IsNotExist(err) {
		return Snapshot{}, ErrNoSnapshot
	}
	if err != nil {
		return Snapshot{}, errors.Wrapf(err, "cannot read calibration file %q", y.path)
	}
	return decodeSnapshot(data)
}

// Persist overwrites the device file atomically.
func (y *YAMLFile) Persist(snapshot Snapshot) error {
	data, err := encodeSnapshot(snapshot)
	if err != nil {
		return err
	}
	return fs.WriteFileAtomic(y.path, data, 0644)
}

func encodeSnapshot(snapshot Snapshot) ([]byte, error) {
	data, err := yaml.Marshal(snapshot)
	return data, errors.Wrap(err, "cannot encode calibration snapshot")
}

func decodeSnapshot(data []byte) (Snapshot, error) {
	snapshot := Snapshot{}
	if err := yaml.Unmarshal(data, &snapshot); err != nil {
		return Snapshot{}, errors.Wrap(err, "cannot decode calibration snapshot")
	}
	if snapshot.Records == nil {
		snapshot.Records = map[string]Record{}
	}
	return snapshot, nil
}

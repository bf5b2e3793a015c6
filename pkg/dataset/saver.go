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

package dataset

import (
	"encoding/hex"
	"fmt"
	"io/ioutil"
	"path/filepath"

	"github.com/Maleang/Quela-Qblox/pkg/utils/fs"
	"github.com/fxamacker/cbor/v2"
	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
	"github.com/zeebo/blake3"
)

// Extension of persisted datasets.
const Extension = ".cbor.zst"

var (
	encMode     cbor.EncMode
	decMode     cbor.DecMode
	zstdEncoder *zstd.Encoder
	zstdDecoder *zstd.Decoder
)

func init() {
	var err error

	encOptions := cbor.CoreDetEncOptions()
	encOptions.Time = cbor.TimeRFC3339Nano
	encMode, err = encOptions.EncMode()
	if err != nil {
		panic("dataset: cbor encoder mode: " + err.Error())
	}
	decMode, err = cbor.DecOptions{}.DecMode()
	if err != nil {
		panic("dataset: cbor decoder mode: " + err.Error())
	}

	zstdEncoder, err = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		panic("dataset: zstd encoder: " + err.Error())
	}
	zstdDecoder, err = zstd.NewReader(nil)
	if err != nil {
		panic("dataset: zstd decoder: " + err.Error())
	}
}

// Encode serializes dataset into compressed deterministic CBOR.
func Encode(d *Dataset) ([]byte, error) {
	raw, err := encMode.Marshal(d)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot encode dataset %s", d.TUID)
	}
	return zstdEncoder.EncodeAll(raw, nil), nil
}

// Decode is the inverse of Encode.
func Decode(data []byte) (*Dataset, error) {
	raw, err := zstdDecoder.DecodeAll(data, nil)
	if err != nil {
		return nil, errors.Wrap(err, "cannot decompress dataset")
	}
	d := &Dataset{}
	if err := decMode.Unmarshal(raw, d); err != nil {
		return nil, errors.Wrap(err, "cannot decode dataset")
	}
	return d, nil
}

// Digest returns hex encoded blake3 hash of data.
func Digest(data []byte) string {
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Saver persists datasets under a data directory, one subdirectory per day.
type Saver struct {
	dataDir string
}

// NewSaver returns Saver writing under dataDir.
func NewSaver(dataDir string) *Saver {
	return &Saver{dataDir: dataDir}
}

// Path returns location of given dataset: <data_dir>/<YYYYMMDD>/<tuid>-<qubit>-<exp_type>.cbor.zst.
func (s *Saver) Path(d *Dataset) string {
	day := d.CreatedAt.Format("20060102")
	name := fmt.Sprintf("%s-%s-%s%s", d.TUID, d.Qubit, d.ExperimentType, Extension)
	return filepath.Join(s.dataDir, day, name)
}

// Save writes dataset and returns its path and digest of written bytes.
func (s *Saver) Save(d *Dataset) (path string, digest string, err error) {
	if err := d.Validate(); err != nil {
		return "", "", err
	}
	data, err := Encode(d)
	if err != nil {
		return "", "", err
	}

	path = s.Path(d)
	if err := fs.WriteFileAtomic(path, data, 0644); err != nil {
		return "", "", err
	}
	return path, Digest(data), nil
}

// Load reads dataset written by Saver.
func Load(path string) (*Dataset, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read dataset %q", path)
	}
	d, err := Decode(data)
	return d, errors.Wrapf(err, "cannot load dataset %q", path)
}

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

// Package dataset holds raw spectroscopy datasets: the swept settable axis with
// measured gettables, plus helpers to persist them for later analysis.
package dataset

import (
	"encoding/hex"
	"fmt"
	"time"

	"github.com/nu7hatch/gouuid"
	"github.com/pkg/errors"
)

// CavitySpectroscopy is the experiment type tag of one-tone resonator sweeps.
const CavitySpectroscopy = "CS"

// Dataset is a raw record of a single frequency sweep.
type Dataset struct {
	TUID           string            `json:"tuid" cbor:"tuid"`
	Qubit          string            `json:"qubit" cbor:"qubit"`
	ExperimentType string            `json:"exp_type" cbor:"exp_type"`
	Name           string            `json:"name" cbor:"name"`
	Frequencies    []float64         `json:"frequencies" cbor:"frequencies"`
	Magnitude      []float64         `json:"magnitude" cbor:"magnitude"`
	Phase          []float64         `json:"phase,omitempty" cbor:"phase,omitempty"`
	Repetitions    int               `json:"repetitions" cbor:"repetitions"`
	CreatedAt      time.Time         `json:"created_at" cbor:"created_at"`
	Attributes     map[string]string `json:"attributes,omitempty" cbor:"attributes,omitempty"`
}

// Validate checks that every gettable is sampled on the settable axis.
func (d *Dataset) Validate() error {
	if d.TUID == "" {
		return errors.New("dataset has no tuid")
	}
	if len(d.Frequencies) == 0 {
		return errors.Errorf("dataset %s has empty frequency axis", d.TUID)
	}
	if len(d.Magnitude) != len(d.Frequencies) {
		return errors.Errorf("dataset %s: %d magnitude samples for %d frequencies", d.TUID, len(d.Magnitude), len(d.Frequencies))
	}
	if len(d.Phase) != 0 && len(d.Phase) != len(d.Frequencies) {
		return errors.Errorf("dataset %s: %d phase samples for %d frequencies", d.TUID, len(d.Phase), len(d.Frequencies))
	}
	return nil
}

// NewTUID returns time-ordered unique identifier, e.g. "20240118-153012-042-1f3a9c".
func NewTUID(now time.Time) (string, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return "", errors.Wrap(err, "cannot generate tuid")
	}
	return fmt.Sprintf("%s-%03d-%s", now.Format("20060102-150405"), now.Nanosecond()/int(time.Millisecond), hex.EncodeToString(id[:3])), nil
}

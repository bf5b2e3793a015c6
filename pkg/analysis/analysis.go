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

// Package analysis extracts resonator parameters from raw spectroscopy datasets.
package analysis

import (
	"math"

	"github.com/Maleang/Quela-Qblox/pkg/dataset"
)

// ResonatorFrequency is the result key of fitted resonator frequency in Hz.
const ResonatorFrequency = "fr"

// Quantity is a fitted value with its standard deviation.
type Quantity struct {
	Nominal     float64 `json:"nominal_value"`
	Uncertainty float64 `json:"std_dev"`
}

// Result maps quantity names to fitted values. Empty result means the fit failed.
type Result map[string]Quantity

// Empty returns true when there is nothing usable in the result.
func (r Result) Empty() bool {
	return len(r) == 0
}

// Frequency returns fitted resonator frequency if present and finite.
func (r Result) Frequency() (Quantity, bool) {
	fr, ok := r[ResonatorFrequency]
	if !ok || math.IsNaN(fr.Nominal) || math.IsInf(fr.Nominal, 0) {
		return Quantity{}, false
	}
	return fr, true
}

// Analyzer fits a spectroscopy dataset.
type Analyzer interface {
	// Analyze returns fitted quantities, or empty result when no fit could be found.
	Analyze(ds *dataset.Dataset) (Result, error)
}

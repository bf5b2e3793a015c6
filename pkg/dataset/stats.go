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
	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"
)

// MagnitudeSummary describes signal level of a sweep.
// Contrast is the distance between the highest and the lowest magnitude sample.
type MagnitudeSummary struct {
	Mean     float64
	StdDev   float64
	Contrast float64
}

// SummarizeMagnitude computes MagnitudeSummary of dataset magnitude samples.
func (d *Dataset) SummarizeMagnitude() (MagnitudeSummary, error) {
	data := stats.Float64Data(d.Magnitude)
	mean, err := stats.Mean(data)
	if err != nil {
		return MagnitudeSummary{}, errors.Wrapf(err, "dataset %s: cannot compute mean magnitude", d.TUID)
	}
	stdDev, err := stats.StandardDeviation(data)
	if err != nil {
		return MagnitudeSummary{}, errors.Wrapf(err, "dataset %s: cannot compute magnitude deviation", d.TUID)
	}
	lowest, err := stats.Min(data)
	if err != nil {
		return MagnitudeSummary{}, errors.Wrapf(err, "dataset %s: cannot compute minimal magnitude", d.TUID)
	}
	highest, err := stats.Max(data)
	if err != nil {
		return MagnitudeSummary{}, errors.Wrapf(err, "dataset %s: cannot compute maximal magnitude", d.TUID)
	}
	return MagnitudeSummary{Mean: mean, StdDev: stdDev, Contrast: highest - lowest}, nil
}

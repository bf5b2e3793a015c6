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

package main

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// parseGuesses turns "q0=5.721e9" entries into a qubit to frequency map.
func parseGuesses(entries []string) (map[string]float64, error) {
	guesses := map[string]float64{}
	for _, entry := range entries {
		fields := strings.SplitN(entry, "=", 2)
		if len(fields) != 2 || strings.TrimSpace(fields[0]) == "" {
			return nil, errors.Errorf("malformed frequency guess %q, expected <qubit>=<Hz>", entry)
		}
		qubit := strings.TrimSpace(fields[0])

		frequency, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
		if err != nil {
			return nil, errors.Wrapf(err, "malformed frequency of %q", qubit)
		}
		if math.IsNaN(frequency) || math.IsInf(frequency, 0) || frequency <= 0 {
			return nil, errors.Errorf("frequency guess of %q must be positive, got %v", qubit, frequency)
		}
		if _, ok := guesses[qubit]; ok {
			return nil, errors.Errorf("frequency of %q guessed more than once", qubit)
		}
		guesses[qubit] = frequency
	}
	return guesses, nil
}

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

package visualization

import (
	"fmt"
	"strings"
)

// BoundsTable presents sweep summary lines such as "start 5.706000E+09" as parameter/value rows.
func BoundsTable(title string, summary []string) *Table {
	data := [][]string{}
	for _, line := range summary {
		fields := strings.SplitN(line, " ", 2)
		if len(fields) != 2 {
			fields = []string{line, ""}
		}
		data = append(data, fields)
	}
	return NewTable([]string{"parameter", "value"}, data).WithTitle(title)
}

// CalibrationTable summarizes a batch: committed readout frequency or failure reason per qubit.
func CalibrationTable(qubits []string, committed map[string]float64, reasons map[string]string) *Table {
	data := [][]string{}
	for _, qubit := range qubits {
		if frequency, ok := committed[qubit]; ok {
			data = append(data, []string{qubit, fmt.Sprintf("%E", frequency), "ok"})
			continue
		}
		reason, ok := reasons[qubit]
		if !ok {
			reason = "not calibrated"
		}
		data = append(data, []string{qubit, "-", reason})
	}
	return NewTable([]string{"qubit", "readout frequency [Hz]", "status"}, data)
}

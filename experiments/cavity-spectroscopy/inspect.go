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
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/Maleang/Quela-Qblox/pkg/calibration"
	"github.com/Maleang/Quela-Qblox/pkg/conf"
	"github.com/Maleang/Quela-Qblox/pkg/dataset"
	"github.com/Maleang/Quela-Qblox/pkg/visualization"
	"github.com/pkg/errors"
)

var (
	historyFlag     = conf.NewIntFlag("history", "Print given number of most recent calibration snapshots (sqlite store backend) and exit", 0)
	showDatasetFlag = conf.NewStringFlag("show_dataset", "Print summary of a saved raw dataset and exit", "")
)

// historyTable lists readout frequency of qubits in every snapshot, newest first.
func historyTable(snapshots []calibration.Snapshot, qubits []string) *visualization.Table {
	headers := append([]string{"saved at", "note"}, qubits...)
	data := [][]string{}
	for _, snapshot := range snapshots {
		row := []string{snapshot.SavedAt.Format(time.RFC3339), snapshot.Note}
		for _, qubit := range qubits {
			record, ok := snapshot.Records[qubit]
			if !ok || record.ReadoutFrequency == nil {
				row = append(row, "-")
				continue
			}
			row = append(row, fmt.Sprintf("%E", *record.ReadoutFrequency))
		}
		data = append(data, row)
	}
	return visualization.NewTable(headers, data)
}

func printHistory(w io.Writer, backend calibration.Backend, limit int, qubits []string) error {
	history, ok := backend.(*calibration.SQLiteHistory)
	if !ok {
		return errors.New("calibration history is kept by sqlite store backend only")
	}
	snapshots, err := history.History(limit)
	if err != nil {
		return err
	}
	title := fmt.Sprintf("Calibration history: %d snapshot(s)", len(snapshots))
	return visualization.DrawTable(w, historyTable(snapshots, qubits).WithTitle(title))
}

func datasetTable(ds *dataset.Dataset) *visualization.Table {
	data := [][]string{
		{"tuid", ds.TUID},
		{"qubit", ds.Qubit},
		{"experiment", fmt.Sprintf("%s (%s)", ds.Name, ds.ExperimentType)},
		{"repetitions", strconv.Itoa(ds.Repetitions)},
		{"points", strconv.Itoa(len(ds.Frequencies))},
	}
	if len(ds.Frequencies) > 0 {
		data = append(data,
			[]string{"start", fmt.Sprintf("%E", ds.Frequencies[0])},
			[]string{"end", fmt.Sprintf("%E", ds.Frequencies[len(ds.Frequencies)-1])})
	}
	if summary, err := ds.SummarizeMagnitude(); err == nil {
		data = append(data,
			[]string{"magnitude mean", fmt.Sprintf("%E", summary.Mean)},
			[]string{"magnitude contrast", fmt.Sprintf("%E", summary.Contrast)})
	}
	return visualization.NewTable([]string{"parameter", "value"}, data)
}

func printDataset(w io.Writer, path string) error {
	ds, err := dataset.Load(path)
	if err != nil {
		return err
	}
	return visualization.DrawTable(w, datasetTable(ds).WithTitle(path))
}

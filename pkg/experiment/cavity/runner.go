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

package cavity

import (
	"fmt"
	"io"
	"io/ioutil"
	"strings"

	"github.com/Maleang/Quela-Qblox/pkg/analysis"
	"github.com/Maleang/Quela-Qblox/pkg/calibration"
	"github.com/Maleang/Quela-Qblox/pkg/dataset"
	"github.com/Maleang/Quela-Qblox/pkg/metadata"
	"github.com/Maleang/Quela-Qblox/pkg/schedule"
	"github.com/Maleang/Quela-Qblox/pkg/sweep"
	"github.com/Maleang/Quela-Qblox/pkg/utils/errcollection"
	"github.com/Maleang/Quela-Qblox/pkg/visualization"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const (
	// PersistNote is the audit note of calibration persisted after a batch.
	PersistNote = "After cavity search"
	// MetadataKind tags per qubit metadata records.
	MetadataKind = "cavity-spectroscopy"
	// BatchMetadataKind tags the metadata record summarizing a batch.
	BatchMetadataKind = "cavity-spectroscopy-batch"

	// DefaultSpan is half-width of the sweep in Hz.
	DefaultSpan = 15e6
	// DefaultPoints is number of sweep samples.
	DefaultPoints = 200
	// DefaultRepetitions is number of averages per sample.
	DefaultRepetitions = 300
)

// ErrNoFit is recorded for qubits whose dataset could not be fitted.
var ErrNoFit = errors.New("analysis returned no result")

// MeasurementExecutor runs a schedule, see measurement.Executor.
type MeasurementExecutor interface {
	Execute(spec schedule.Spec, mode schedule.Mode, repetitions int) (*dataset.Dataset, error)
}

// DatasetSaver persists raw datasets, see dataset.Saver.
type DatasetSaver interface {
	Save(ds *dataset.Dataset) (path string, digest string, err error)
}

// Config holds parameters shared by all qubits of a batch.
type Config struct {
	Points      int
	Repetitions int
	Mode        schedule.Mode
}

// DefaultConfig returns configuration of a live batch with default sweep resolution.
func DefaultConfig() Config {
	return Config{
		Points:      DefaultPoints,
		Repetitions: DefaultRepetitions,
		Mode:        schedule.Live,
	}
}

// Outcome summarizes a batch.
type Outcome struct {
	// Failed lists failed qubits in processing order.
	Failed []string
	// Reasons maps failed qubits to failure description.
	Reasons map[string]string
	// Committed maps successfully calibrated qubits to committed readout frequency.
	Committed map[string]float64
}

func newOutcome() Outcome {
	return Outcome{
		Failed:    []string{},
		Reasons:   map[string]string{},
		Committed: map[string]float64{},
	}
}

// Succeeded returns true when no qubit failed.
func (o Outcome) Succeeded() bool {
	return len(o.Failed) == 0
}

// Runner runs cavity spectroscopy over a batch of qubits.
type Runner struct {
	config   Config
	store    *calibration.Store
	executor MeasurementExecutor
	analyzer analysis.Analyzer
	saver    DatasetSaver
	metadata metadata.Metadata
	output   io.Writer
}

// NewRunner returns Runner. Analyzer is not used in Preview mode and may be nil then.
func NewRunner(config Config, store *calibration.Store, executor MeasurementExecutor, analyzer analysis.Analyzer) *Runner {
	return &Runner{
		config:   config,
		store:    store,
		executor: executor,
		analyzer: analyzer,
		output:   ioutil.Discard,
	}
}

// WithSaver makes Runner persist raw datasets before analysis.
func (r *Runner) WithSaver(saver DatasetSaver) *Runner {
	r.saver = saver
	return r
}

// WithMetadata makes Runner record results in given metadata database.
func (r *Runner) WithMetadata(m metadata.Metadata) *Runner {
	r.metadata = m
	return r
}

// WithOutput sets where fitted frequencies and batch summary are printed.
func (r *Runner) WithOutput(w io.Writer) *Runner {
	r.output = w
	return r
}

// Run calibrates qubits in given order. Sweep of each qubit is centered at its guess.
// Errors of single qubits are recorded in Outcome. Only failure to persist the
// calibration is returned as error.
func (r *Runner) Run(qubits []string, guesses map[string]float64, span float64) (Outcome, error) {
	outcome := newOutcome()
	errs := errcollection.ErrorCollection{}
	processed := map[string]bool{}
	batch := []string{}

	for _, qubit := range qubits {
		if processed[qubit] {
			logrus.Warnf("Qubit %q listed more than once, skipping repeated entry", qubit)
			continue
		}
		processed[qubit] = true
		batch = append(batch, qubit)

		frequency, err := r.runQubit(qubit, guesses, span)
		if err != nil {
			logrus.Debugf("Cavity spectroscopy of %q failed: %+v", qubit, err)
			outcome.Failed = append(outcome.Failed, qubit)
			outcome.Reasons[qubit] = err.Error()
			errs.Add(errors.Wrap(err, qubit))
			continue
		}
		if frequency != nil {
			outcome.Committed[qubit] = *frequency
		}
	}

	if !outcome.Succeeded() {
		logrus.Warnf("Cavity Spectroscopy error qubit: [%s]", strings.Join(outcome.Failed, ", "))
		logrus.Debugf("Cavity spectroscopy failures: %v", errs.GetErrIfAny())
	}

	if r.config.Mode == schedule.Live {
		r.drawSummary(batch, outcome)
		r.recordBatch(batch, outcome)

		if err := r.store.Persist(PersistNote); err != nil {
			return outcome, errors.Wrap(err, "cannot persist calibration after cavity spectroscopy")
		}
	}

	return outcome, nil
}

// runQubit walks a single qubit through plan, schedule, execute, analyze and commit.
// It returns committed frequency, or nil in Preview mode.
func (r *Runner) runQubit(qubit string, guesses map[string]float64, span float64) (*float64, error) {
	record, err := r.store.Read(qubit)
	if err != nil {
		return nil, err
	}
	guess, ok := guesses[qubit]
	if !ok {
		return nil, &calibration.UnknownQubitError{Qubit: qubit}
	}

	plan, err := sweep.New(guess, span, r.config.Points)
	if err != nil {
		return nil, err
	}

	spec, err := schedule.Build(qubit, record, plan, r.config.Mode)
	if err != nil {
		return nil, err
	}

	ds, err := r.executor.Execute(spec, r.config.Mode, r.config.Repetitions)
	if err != nil {
		return nil, err
	}
	if r.config.Mode == schedule.Preview {
		return nil, nil
	}
	if ds == nil {
		return nil, errors.Errorf("no dataset acquired for %q", qubit)
	}

	path, digest := r.save(ds)

	if r.analyzer == nil {
		return nil, errors.New("no analyzer configured")
	}
	result, err := r.analyzer.Analyze(ds)
	if err != nil {
		return nil, errors.Wrapf(err, "analysis of %s failed", ds.TUID)
	}
	fr, ok := result.Frequency()
	if !ok {
		return nil, ErrNoFit
	}

	if err := r.store.Commit(qubit, fr.Nominal); err != nil {
		return nil, err
	}
	logrus.Infof("Cavity %s @ %s Hz", qubit, decimal.NewFromFloat(fr.Nominal))
	fmt.Fprintf(r.output, "Cavity %s @ %s Hz\n", qubit, decimal.NewFromFloat(fr.Nominal))

	r.recordQubit(qubit, ds, fr, path, digest)
	frequency := fr.Nominal
	return &frequency, nil
}

// save persists raw dataset. Failure is logged only, the dataset is still analyzed.
func (r *Runner) save(ds *dataset.Dataset) (path, digest string) {
	if r.saver == nil {
		return "", ""
	}
	path, digest, err := r.saver.Save(ds)
	if err != nil {
		logrus.Errorf("Cannot save dataset %s of %q: %v", ds.TUID, ds.Qubit, err)
		return "", ""
	}
	logrus.Debugf("Dataset %s of %q saved in %q", ds.TUID, ds.Qubit, path)
	return path, digest
}

func (r *Runner) recordQubit(qubit string, ds *dataset.Dataset, fr analysis.Quantity, path, digest string) {
	if r.metadata == nil {
		return
	}
	record := map[string]string{
		"qubit":      qubit,
		"tuid":       ds.TUID,
		"fr":         decimal.NewFromFloat(fr.Nominal).String(),
		"fr_std_dev": decimal.NewFromFloat(fr.Uncertainty).String(),
		"dataset":    path,
		"digest":     digest,
	}
	if summary, err := ds.SummarizeMagnitude(); err == nil {
		record["magnitude_mean"] = decimal.NewFromFloat(summary.Mean).String()
		record["magnitude_contrast"] = decimal.NewFromFloat(summary.Contrast).String()
	} else {
		logrus.Debugf("No magnitude summary for %q: %v", qubit, err)
	}
	if err := r.metadata.RecordMap(record, MetadataKind); err != nil {
		logrus.Errorf("Cannot record metadata of %q: %v", qubit, err)
	}
}

func (r *Runner) recordBatch(qubits []string, outcome Outcome) {
	if r.metadata == nil {
		return
	}
	record := map[string]string{
		"qubits":    strings.Join(qubits, ","),
		"failed":    strings.Join(outcome.Failed, ","),
		"committed": fmt.Sprintf("%d", len(outcome.Committed)),
		"note":      PersistNote,
	}
	if err := r.metadata.RecordMap(record, BatchMetadataKind); err != nil {
		logrus.Errorf("Cannot record batch metadata: %v", err)
	}
}

func (r *Runner) drawSummary(qubits []string, outcome Outcome) {
	table := visualization.CalibrationTable(qubits, outcome.Committed, outcome.Reasons)
	if err := visualization.DrawTable(r.output, table); err != nil {
		logrus.Warnf("Cannot draw calibration summary: %v", err)
	}
}

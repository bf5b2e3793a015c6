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
	"math"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ErrNoSnapshot is returned by backends which have nothing stored yet.
var ErrNoSnapshot = errors.New("no calibration snapshot stored")

// Snapshot is the full store state handed to a Backend.
type Snapshot struct {
	Note    string            `yaml:"note"`
	SavedAt time.Time         `yaml:"saved_at"`
	Qubits  []string          `yaml:"qubits"`
	Records map[string]Record `yaml:"records"`
}

// Backend durably keeps calibration snapshots.
type Backend interface {
	// Load returns the most recently persisted snapshot or ErrNoSnapshot.
	Load() (Snapshot, error)
	// Persist stores given snapshot.
	Persist(snapshot Snapshot) error
}

// Store owns per-qubit calibration records.
// Store is not safe for concurrent use; a batch runs in a single goroutine.
type Store struct {
	backend Backend
	order   []string
	records map[string]*Record
	now     func() time.Time
}

// NewStore returns an empty store persisting to given backend.
func NewStore(backend Backend) *Store {
	return &Store{
		backend: backend,
		records: map[string]*Record{},
		now:     time.Now,
	}
}

// Load returns a store filled with the latest snapshot kept by backend.
// ErrNoSnapshot is passed through, so callers can fall back to NewStore.
func Load(backend Backend) (*Store, error) {
	snapshot, err := backend.Load()
	if err != nil {
		return nil, err
	}

	store := NewStore(backend)
	for _, qubit := range snapshot.Qubits {
		record, ok := snapshot.Records[qubit]
		if !ok {
			return nil, errors.Errorf("snapshot %q lists qubit %q without a record", snapshot.Note, qubit)
		}
		store.Register(qubit, record)
	}
	logrus.Debugf("Loaded calibration of %d qubit(s) saved at %s (%q)", len(store.order), snapshot.SavedAt, snapshot.Note)
	return store, nil
}

// Register adds qubit with given record or replaces its record.
func (s *Store) Register(qubit string, record Record) {
	if _, ok := s.records[qubit]; !ok {
		s.order = append(s.order, qubit)
	}
	copied := record.Copy()
	s.records[qubit] = &copied
}

// Qubits returns registered qubits in registration order.
func (s *Store) Qubits() []string {
	return append([]string{}, s.order...)
}

// Read returns a copy of the qubit record.
func (s *Store) Read(qubit string) (Record, error) {
	record, ok := s.records[qubit]
	if !ok {
		return Record{}, &UnknownQubitError{Qubit: qubit}
	}
	return record.Copy(), nil
}

// Commit overwrites readout frequency of the qubit. Other fields are left untouched.
func (s *Store) Commit(qubit string, readoutFrequency float64) error {
	record, ok := s.records[qubit]
	if !ok {
		return &UnknownQubitError{Qubit: qubit}
	}
	if math.IsNaN(readoutFrequency) || math.IsInf(readoutFrequency, 0) {
		return errors.Errorf("qubit %q: readout frequency must be finite, got %v", qubit, readoutFrequency)
	}
	record.ReadoutFrequency = Float(readoutFrequency)
	return nil
}

// ResetReadout unsets readout frequency of the qubit.
func (s *Store) ResetReadout(qubit string) error {
	record, ok := s.records[qubit]
	if !ok {
		return &UnknownQubitError{Qubit: qubit}
	}
	record.ReadoutFrequency = nil
	return nil
}

// Snapshot returns a deep copy of the store state annotated with note.
func (s *Store) Snapshot(note string) Snapshot {
	snapshot := Snapshot{
		Note:    note,
		SavedAt: s.now().UTC(),
		Qubits:  s.Qubits(),
		Records: make(map[string]Record, len(s.records)),
	}
	for qubit, record := range s.records {
		snapshot.Records[qubit] = record.Copy()
	}
	return snapshot
}

// Persist writes the whole store state with an audit note.
func (s *Store) Persist(note string) error {
	if s.backend == nil {
		return errors.New("calibration store has no backend")
	}
	if err := s.backend.Persist(s.Snapshot(note)); err != nil {
		return errors.Wrapf(err, "cannot persist calibration %q", note)
	}
	logrus.Infof("Calibration of %d qubit(s) persisted: %q", len(s.order), note)
	return nil
}

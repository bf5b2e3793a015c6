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
	"io"

	"github.com/Maleang/Quela-Qblox/pkg/calibration"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// openBackend returns calibration backend selected by store_backend flag.
func openBackend(backend, deviceFile, storePath string) (calibration.Backend, io.Closer, error) {
	switch backend {
	case "yaml":
		return calibration.NewYAMLFile(deviceFile), nopCloser{}, nil
	case "sqlite":
		history, err := calibration.NewSQLiteHistory(storePath)
		if err != nil {
			return nil, nil, err
		}
		return history, history, nil
	}
	return nil, nil, errors.Errorf("unsupported calibration store backend %q", backend)
}

// prepareStore loads the latest calibration or starts a fresh device.
// Readout frequencies of loaded calibration are unset when resetReadout is true.
// Qubits missing in the calibration get default readout parameters.
func prepareStore(backend calibration.Backend, qubits []string, resetReadout bool) (*calibration.Store, error) {
	store, err := calibration.Load(backend)
	switch {
	case err == calibration.ErrNoSnapshot:
		logrus.Info("No previous calibration found, starting with default readout parameters")
		store = calibration.NewStore(backend)
	case err != nil:
		return nil, errors.Wrap(err, "cannot load calibration")
	case resetReadout:
		for _, qubit := range store.Qubits() {
			if err := store.ResetReadout(qubit); err != nil {
				return nil, err
			}
		}
		logrus.Debug("Readout frequencies of loaded calibration were reset")
	}

	known := map[string]bool{}
	for _, qubit := range store.Qubits() {
		known[qubit] = true
	}
	for _, qubit := range qubits {
		if !known[qubit] {
			store.Register(qubit, calibration.DefaultRecord())
			known[qubit] = true
		}
	}
	return store, nil
}

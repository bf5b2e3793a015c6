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

/*
Package cavity calibrates readout resonator frequencies of a batch of qubits.

For every qubit a frequency sweep around a guessed resonator frequency is planned,
turned into a one-tone schedule and measured. The raw dataset is fitted and the
fitted resonator frequency "fr" is committed into the calibration store. Qubits
are processed one after another because they share one measurement instrument.

A qubit that fails at any step is recorded in the batch Outcome and the batch
moves on. Calibration is persisted once, after the whole batch.
*/
package cavity

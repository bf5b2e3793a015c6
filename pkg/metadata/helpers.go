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

package metadata

import (
	"bufio"
	"io/ioutil"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/Maleang/Quela-Qblox/pkg/conf"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	// CPUModelNameKey defines a key in the platform metrics map
	CPUModelNameKey = "cpu_model"
	// KernelVersionKey defines a key in the platform metrics map
	KernelVersionKey = "kernel_version"
	// GoVersionKey defines a key in the platform metrics map
	GoVersionKey = "go_version"
	// PlatformKey defines a key in the platform metrics map
	PlatformKey = "platform"
)

// RecordRuntimeEnv stores run environment information: flags, environment,
// host, start time and platform details.
func RecordRuntimeEnv(metadata Metadata, experimentStart time.Time) error {
	// Store configuration.
	err := recordFlags(metadata)
	if err != nil {
		return err
	}

	// Store QCAL_ environment configuration.
	err = recordEnv(metadata, conf.EnvironmentPrefix)
	if err != nil {
		return err
	}

	hostname, err := os.Hostname()
	if err != nil {
		return errors.Wrap(err, "cannot retrieve hostname")
	}
	// Store hostname and start time.
	err = metadata.RecordMap(map[string]string{"time": experimentStart.Format(time.RFC822Z), "host": hostname}, TypeEmpty)
	if err != nil {
		return err
	}

	return recordPlatformMetrics(metadata)
}

// recordFlags saves whole flags based configuration in the metadata information.
func recordFlags(metadata Metadata) error {
	flags := conf.GetFlags()
	return metadata.RecordMap(flags, TypeFlags)
}

// recordEnv adds all OS Environment variables that starts with prefix 'prefix'
// in the metadata information
func recordEnv(metadata Metadata, prefix string) error {
	envMetadata := map[string]string{}
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, prefix) {
			fields := strings.SplitN(env, "=", 2)
			envMetadata[fields[0]] = fields[1]
		}
	}
	if len(envMetadata) == 0 {
		return nil
	}
	return metadata.RecordMap(envMetadata, TypeEnviron)
}

// recordPlatformMetrics stores platform specific metadata.
func recordPlatformMetrics(metadata Metadata) error {
	return metadata.RecordMap(GetPlatformMetrics(), TypePlatform)
}

// GetPlatformMetrics returns map of strings with platform metrics.
// If metric could not be retrieved value for the key is empty string.
func GetPlatformMetrics() map[string]string {
	platformMetrics := map[string]string{
		GoVersionKey: runtime.Version(),
		PlatformKey:  runtime.GOOS + "/" + runtime.GOARCH,
	}

	item, err := CPUModelName()
	if err != nil {
		logrus.Warnf("GetPlatformMetrics: Failed to get %s metric. Skipping. Error: %s", CPUModelNameKey, err)
	}
	platformMetrics[CPUModelNameKey] = item

	item, err = KernelVersion()
	if err != nil {
		logrus.Warnf("GetPlatformMetrics: Failed to get %s metric. Skipping. Error: %s", KernelVersionKey, err)
	}
	platformMetrics[KernelVersionKey] = item

	return platformMetrics
}

// CPUModelName reads first "model name" entry of /proc/cpuinfo.
func CPUModelName() (string, error) {
	file, err := os.Open("/proc/cpuinfo")
	if err != nil {
		return "", errors.Wrap(err, "cannot open /proc/cpuinfo")
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "model name") {
			fields := strings.SplitN(line, ":", 2)
			if len(fields) == 2 {
				return strings.TrimSpace(fields[1]), nil
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return "", errors.Wrap(err, "cannot read /proc/cpuinfo")
	}
	return "", errors.New("no model name in /proc/cpuinfo")
}

// KernelVersion returns running kernel release.
func KernelVersion() (string, error) {
	release, err := ioutil.ReadFile("/proc/sys/kernel/osrelease")
	if err != nil {
		return "", errors.Wrap(err, "cannot read kernel release")
	}
	return strings.TrimSpace(string(release)), nil
}

package mocks

import calibration "github.com/Maleang/Quela-Qblox/pkg/calibration"
import mock "github.com/stretchr/testify/mock"

// Backend is a mock of calibration.Backend.
type Backend struct {
	mock.Mock
}

// Load provides a mock function with given fields:
func (_m *Backend) Load() (calibration.Snapshot, error) {
	ret := _m.Called()

	var r0 calibration.Snapshot
	if rf, ok := ret.Get(0).(func() calibration.Snapshot); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(calibration.Snapshot)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func() error); ok {
		r1 = rf()
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Persist provides a mock function with given fields: snapshot
func (_m *Backend) Persist(snapshot calibration.Snapshot) error {
	ret := _m.Called(snapshot)

	var r0 error
	if rf, ok := ret.Get(0).(func(calibration.Snapshot) error); ok {
		r0 = rf(snapshot)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

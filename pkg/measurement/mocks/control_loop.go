package mocks

import dataset "github.com/Maleang/Quela-Qblox/pkg/dataset"
import measurement "github.com/Maleang/Quela-Qblox/pkg/measurement"
import mock "github.com/stretchr/testify/mock"

// ControlLoop is a mock of measurement.ControlLoop.
type ControlLoop struct {
	mock.Mock
}

// Run provides a mock function with given fields: job
func (_m *ControlLoop) Run(job measurement.Job) (*dataset.Dataset, error) {
	ret := _m.Called(job)

	var r0 *dataset.Dataset
	if rf, ok := ret.Get(0).(func(measurement.Job) *dataset.Dataset); ok {
		r0 = rf(job)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*dataset.Dataset)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(measurement.Job) error); ok {
		r1 = rf(job)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

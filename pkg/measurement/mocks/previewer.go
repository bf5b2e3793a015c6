package mocks

import mock "github.com/stretchr/testify/mock"
import schedule "github.com/Maleang/Quela-Qblox/pkg/schedule"

// Previewer is a mock of measurement.Previewer.
type Previewer struct {
	mock.Mock
}

// Preview provides a mock function with given fields: spec
func (_m *Previewer) Preview(spec schedule.Spec) error {
	ret := _m.Called(spec)

	var r0 error
	if rf, ok := ret.Get(0).(func(schedule.Spec) error); ok {
		r0 = rf(spec)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

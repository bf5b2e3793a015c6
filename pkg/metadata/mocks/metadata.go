package mocks

import mock "github.com/stretchr/testify/mock"

// Metadata is a mock of metadata.Metadata.
type Metadata struct {
	mock.Mock
}

// Clear provides a mock function with given fields:
func (_m *Metadata) Clear() error {
	ret := _m.Called()

	var r0 error
	if rf, ok := ret.Get(0).(func() error); ok {
		r0 = rf()
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// GetByKind provides a mock function with given fields: kind
func (_m *Metadata) GetByKind(kind string) (map[string]string, error) {
	ret := _m.Called(kind)

	var r0 map[string]string
	if rf, ok := ret.Get(0).(func(string) map[string]string); ok {
		r0 = rf(kind)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(map[string]string)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(string) error); ok {
		r1 = rf(kind)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Record provides a mock function with given fields: key, value, kind
func (_m *Metadata) Record(key string, value string, kind string) error {
	ret := _m.Called(key, value, kind)

	var r0 error
	if rf, ok := ret.Get(0).(func(string, string, string) error); ok {
		r0 = rf(key, value, kind)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// RecordMap provides a mock function with given fields: metadata, kind
func (_m *Metadata) RecordMap(metadata map[string]string, kind string) error {
	ret := _m.Called(metadata, kind)

	var r0 error
	if rf, ok := ret.Get(0).(func(map[string]string, string) error); ok {
		r0 = rf(metadata, kind)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

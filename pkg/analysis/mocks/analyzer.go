package mocks

import analysis "github.com/Maleang/Quela-Qblox/pkg/analysis"
import dataset "github.com/Maleang/Quela-Qblox/pkg/dataset"
import mock "github.com/stretchr/testify/mock"

// Analyzer is a mock of analysis.Analyzer.
type Analyzer struct {
	mock.Mock
}

// Analyze provides a mock function with given fields: ds
func (_m *Analyzer) Analyze(ds *dataset.Dataset) (analysis.Result, error) {
	ret := _m.Called(ds)

	var r0 analysis.Result
	if rf, ok := ret.Get(0).(func(*dataset.Dataset) analysis.Result); ok {
		r0 = rf(ds)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(analysis.Result)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(*dataset.Dataset) error); ok {
		r1 = rf(ds)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

package mocks

import (
	context "context"

	domain "autobus-caisse/tally-svc/internal/domain"

	mock "github.com/stretchr/testify/mock"
)

// TallyInterface is a mock type for the TallyInterface type
type TallyInterface struct {
	mock.Mock
}

// ForDate provides a mock function with given fields: ctx, date
func (_m *TallyInterface) ForDate(ctx context.Context, date string) (domain.DailyTally, error) {
	ret := _m.Called(ctx, date)
	return ret.Get(0).(domain.DailyTally), ret.Error(1)
}

// Today provides a mock function with given fields: ctx
func (_m *TallyInterface) Today(ctx context.Context) (domain.DailyTally, error) {
	ret := _m.Called(ctx)
	return ret.Get(0).(domain.DailyTally), ret.Error(1)
}

// NewTallyInterface creates a new instance of TallyInterface. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewTallyInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *TallyInterface {
	m := &TallyInterface{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

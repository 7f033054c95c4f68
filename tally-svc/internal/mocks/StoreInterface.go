package mocks

import (
	context "context"

	domain "autobus-caisse/tally-svc/internal/domain"

	mock "github.com/stretchr/testify/mock"
)

// StoreInterface is a mock type for the StoreInterface type
type StoreInterface struct {
	mock.Mock
}

// Apply provides a mock function with given fields: ctx, tx
func (_m *StoreInterface) Apply(ctx context.Context, tx domain.Transaction) (bool, error) {
	ret := _m.Called(ctx, tx)
	return ret.Bool(0), ret.Error(1)
}

// Reverse provides a mock function with given fields: ctx, tx
func (_m *StoreInterface) Reverse(ctx context.Context, tx domain.Transaction) (bool, error) {
	ret := _m.Called(ctx, tx)
	return ret.Bool(0), ret.Error(1)
}

// Tally provides a mock function with given fields: ctx, date
func (_m *StoreInterface) Tally(ctx context.Context, date string) (domain.DailyTally, error) {
	ret := _m.Called(ctx, date)
	return ret.Get(0).(domain.DailyTally), ret.Error(1)
}

// NewStoreInterface creates a new instance of StoreInterface. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewStoreInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *StoreInterface {
	m := &StoreInterface{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

package mocks

import (
	context "context"

	domain "autobus-caisse/register-svc/internal/domain"

	mock "github.com/stretchr/testify/mock"
)

// LedgerPublisher is a mock type for the LedgerPublisher type
type LedgerPublisher struct {
	mock.Mock
}

// PublishLedgerEvent provides a mock function with given fields: ctx, event
func (_m *LedgerPublisher) PublishLedgerEvent(ctx context.Context, event domain.LedgerEvent) error {
	ret := _m.Called(ctx, event)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, domain.LedgerEvent) error); ok {
		r0 = rf(ctx, event)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// NewLedgerPublisher creates a new instance of LedgerPublisher. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewLedgerPublisher(t interface {
	mock.TestingT
	Cleanup(func())
}) *LedgerPublisher {
	m := &LedgerPublisher{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

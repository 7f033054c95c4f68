package mocks

import (
	domain "autobus-caisse/register-svc/internal/domain"

	mock "github.com/stretchr/testify/mock"
)

// ReceiptGenerator is a mock type for the ReceiptGenerator type
type ReceiptGenerator struct {
	mock.Mock
}

// Generate provides a mock function with given fields: tx
func (_m *ReceiptGenerator) Generate(tx domain.Transaction) ([]byte, error) {
	ret := _m.Called(tx)

	var r0 []byte
	var r1 error
	if rf, ok := ret.Get(0).(func(domain.Transaction) ([]byte, error)); ok {
		return rf(tx)
	}
	if rf, ok := ret.Get(0).(func(domain.Transaction) []byte); ok {
		r0 = rf(tx)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]byte)
	}

	if rf, ok := ret.Get(1).(func(domain.Transaction) error); ok {
		r1 = rf(tx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewReceiptGenerator creates a new instance of ReceiptGenerator. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewReceiptGenerator(t interface {
	mock.TestingT
	Cleanup(func())
}) *ReceiptGenerator {
	m := &ReceiptGenerator{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

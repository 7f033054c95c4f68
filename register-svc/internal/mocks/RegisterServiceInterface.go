package mocks

import (
	context "context"

	domain "autobus-caisse/register-svc/internal/domain"
	service "autobus-caisse/register-svc/internal/service"

	mock "github.com/stretchr/testify/mock"
)

// RegisterServiceInterface is a mock type for the RegisterServiceInterface type
type RegisterServiceInterface struct {
	mock.Mock
}

// AddItem provides a mock function with given fields: name
func (_m *RegisterServiceInterface) AddItem(name string) (domain.OrderLine, error) {
	ret := _m.Called(name)
	return ret.Get(0).(domain.OrderLine), ret.Error(1)
}

// AddLine provides a mock function with given fields: line
func (_m *RegisterServiceInterface) AddLine(line domain.OrderLine) {
	_m.Called(line)
}

// AddWine provides a mock function with given fields: name, subcategory, tier
func (_m *RegisterServiceInterface) AddWine(name string, subcategory string, tier domain.Tier) (domain.OrderLine, error) {
	ret := _m.Called(name, subcategory, tier)
	return ret.Get(0).(domain.OrderLine), ret.Error(1)
}

// Cancel provides a mock function with given fields: ctx, id
func (_m *RegisterServiceInterface) Cancel(ctx context.Context, id string) bool {
	ret := _m.Called(ctx, id)
	return ret.Bool(0)
}

// Catalog provides a mock function with given fields: query
func (_m *RegisterServiceInterface) Catalog(query string) domain.Catalog {
	ret := _m.Called(query)
	return ret.Get(0).(domain.Catalog)
}

// ClearOrder provides a mock function with given fields:
func (_m *RegisterServiceInterface) ClearOrder() bool {
	ret := _m.Called()
	return ret.Bool(0)
}

// CurrentOrder provides a mock function with given fields:
func (_m *RegisterServiceInterface) CurrentOrder() domain.OrderSnapshot {
	ret := _m.Called()
	return ret.Get(0).(domain.OrderSnapshot)
}

// Delete provides a mock function with given fields: ctx, id
func (_m *RegisterServiceInterface) Delete(ctx context.Context, id string) bool {
	ret := _m.Called(ctx, id)
	return ret.Bool(0)
}

// Pay provides a mock function with given fields: ctx, method
func (_m *RegisterServiceInterface) Pay(ctx context.Context, method domain.PaymentMethod) (domain.Transaction, bool, error) {
	ret := _m.Called(ctx, method)
	return ret.Get(0).(domain.Transaction), ret.Bool(1), ret.Error(2)
}

// Policy provides a mock function with given fields:
func (_m *RegisterServiceInterface) Policy() service.LedgerPolicy {
	ret := _m.Called()
	return ret.Get(0).(service.LedgerPolicy)
}

// Receipt provides a mock function with given fields: id
func (_m *RegisterServiceInterface) Receipt(id string) ([]byte, error) {
	ret := _m.Called(id)

	var r0 []byte
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]byte)
	}
	return r0, ret.Error(1)
}

// RemoveLastItem provides a mock function with given fields:
func (_m *RegisterServiceInterface) RemoveLastItem() bool {
	ret := _m.Called()
	return ret.Bool(0)
}

// Statistics provides a mock function with given fields:
func (_m *RegisterServiceInterface) Statistics() domain.Statistics {
	ret := _m.Called()
	return ret.Get(0).(domain.Statistics)
}

// Transaction provides a mock function with given fields: id
func (_m *RegisterServiceInterface) Transaction(id string) (domain.Transaction, error) {
	ret := _m.Called(id)
	return ret.Get(0).(domain.Transaction), ret.Error(1)
}

// Transactions provides a mock function with given fields:
func (_m *RegisterServiceInterface) Transactions() []domain.Transaction {
	ret := _m.Called()

	var r0 []domain.Transaction
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Transaction)
	}
	return r0
}

// Void provides a mock function with given fields: ctx, id
func (_m *RegisterServiceInterface) Void(ctx context.Context, id string) bool {
	ret := _m.Called(ctx, id)
	return ret.Bool(0)
}

// NewRegisterServiceInterface creates a new instance of RegisterServiceInterface. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewRegisterServiceInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *RegisterServiceInterface {
	m := &RegisterServiceInterface{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

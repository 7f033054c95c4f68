package tests

import (
	"testing"
	"time"

	"autobus-caisse/register-svc/internal/domain"
	"autobus-caisse/register-svc/internal/service"
	"autobus-caisse/register-svc/internal/storage"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var fixedTime = time.Date(2024, time.June, 21, 18, 30, 0, 0, time.UTC)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func line(name, price string) domain.OrderLine {
	return domain.OrderLine{Name: name, Price: dec(price)}
}

func assertAmount(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.Equal(t, want, got.StringFixed(2))
}

func newRegister(policy service.LedgerPolicy, publisher service.LedgerPublisher) *service.RegisterService {
	return service.NewRegisterService(service.RegisterConfig{
		Catalog:   storage.DefaultCatalog(),
		Policy:    policy,
		IDs:       &service.SequenceGenerator{Prefix: "tx"},
		Clock:     fixedClock{now: fixedTime},
		Publisher: publisher,
	})
}

func tx(id, total string, method domain.PaymentMethod, lines ...domain.OrderLine) domain.Transaction {
	return domain.Transaction{
		ID:            id,
		Items:         lines,
		Total:         dec(total),
		PaymentMethod: method,
		Timestamp:     fixedTime,
	}
}

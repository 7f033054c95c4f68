package service

import (
	"autobus-caisse/register-svc/internal/domain"

	"github.com/shopspring/decimal"
)

// Order accumulates the lines of the current, not yet paid, selection.
type Order struct {
	lines []domain.OrderLine
}

func NewOrder() *Order {
	return &Order{}
}

func (o *Order) Add(line domain.OrderLine) {
	o.lines = append(o.lines, line)
}

// RemoveLast drops the most recently added line. It reports false when the
// order was already empty.
func (o *Order) RemoveLast() bool {
	if len(o.lines) == 0 {
		return false
	}
	o.lines = o.lines[:len(o.lines)-1]
	return true
}

func (o *Order) Clear() bool {
	if len(o.lines) == 0 {
		return false
	}
	o.lines = nil
	return true
}

func (o *Order) Lines() []domain.OrderLine {
	lines := make([]domain.OrderLine, len(o.lines))
	copy(lines, o.lines)
	return lines
}

func (o *Order) Total() decimal.Decimal {
	return SumLines(o.lines)
}

func (o *Order) Len() int {
	return len(o.lines)
}

func (o *Order) IsEmpty() bool {
	return len(o.lines) == 0
}

func SumLines(lines []domain.OrderLine) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.Price)
	}
	return total
}

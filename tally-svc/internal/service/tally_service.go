package service

import (
	"context"
	"fmt"
	"time"

	"autobus-caisse/tally-svc/internal/domain"
)

type TallyService struct {
	Store    StoreInterface
	Location *time.Location
	Now      func() time.Time
}

func NewTallyService(store StoreInterface, loc *time.Location) *TallyService {
	if loc == nil {
		loc = time.UTC
	}
	return &TallyService{Store: store, Location: loc, Now: time.Now}
}

func (s *TallyService) Today(ctx context.Context) (domain.DailyTally, error) {
	return s.Store.Tally(ctx, s.Now().In(s.Location).Format(domain.DateLayout))
}

func (s *TallyService) ForDate(ctx context.Context, date string) (domain.DailyTally, error) {
	if _, err := time.Parse(domain.DateLayout, date); err != nil {
		return domain.DailyTally{}, fmt.Errorf("%w: %q", domain.ErrInvalidDate, date)
	}
	return s.Store.Tally(ctx, date)
}

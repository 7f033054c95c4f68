package storage

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"time"

	"autobus-caisse/tally-svc/internal/domain"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

const (
	fieldRevenue      = "revenue_cents"
	fieldTransactions = "transactions"

	markerReversed = "reversed"
)

// Store mirrors daily register totals into Redis. Amounts are kept as
// integer cents so that increments and reversals stay exact.
type Store struct {
	Client   *redis.Client
	TTL      time.Duration
	Location *time.Location
}

func NewStore(client *redis.Client, ttl time.Duration, loc *time.Location) *Store {
	if loc == nil {
		loc = time.UTC
	}
	return &Store{Client: client, TTL: ttl, Location: loc}
}

func (s *Store) MarkerKey(id string) string {
	return "tally:tx:" + id
}

func (s *Store) DayKey(date string) string {
	return "tally:" + date
}

func (s *Store) QuantityKey(date string) string {
	return "tally:" + date + ":products:qty"
}

func (s *Store) RevenueKey(date string) string {
	return "tally:" + date + ":products:revenue"
}

func (s *Store) DateOf(tx domain.Transaction) string {
	return tx.Timestamp.In(s.Location).Format(domain.DateLayout)
}

func cents(d decimal.Decimal) int64 {
	return d.Shift(2).Round(0).IntPart()
}

func fromCents(c int64) decimal.Decimal {
	return decimal.New(c, -2)
}

func methodField(method string) string {
	return method + "_cents"
}

// Apply adds a transaction to its day. It reports false when the
// transaction was already counted or already reversed.
func (s *Store) Apply(ctx context.Context, tx domain.Transaction) (bool, error) {
	ok, err := s.Client.SetNX(ctx, s.MarkerKey(tx.ID), s.DateOf(tx), s.TTL).Result()
	if err != nil || !ok {
		return false, err
	}
	if err := s.increment(ctx, tx, 1); err != nil {
		s.Client.Del(ctx, s.MarkerKey(tx.ID))
		return false, err
	}
	return true, nil
}

// Reverse takes a counted transaction back out of its day and leaves a
// tombstone on its marker. It reports false when the transaction was never
// counted or has already been reversed. A reversal that arrives first still
// writes the tombstone, so a late record for the same id is not counted.
func (s *Store) Reverse(ctx context.Context, tx domain.Transaction) (bool, error) {
	key := s.MarkerKey(tx.ID)
	prev, err := s.Client.SetArgs(ctx, key, markerReversed, redis.SetArgs{TTL: s.TTL, Get: true}).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil || prev == markerReversed {
		return false, err
	}
	if err := s.increment(ctx, tx, -1); err != nil {
		s.Client.Set(ctx, key, prev, s.TTL)
		return false, err
	}
	return true, nil
}

func (s *Store) increment(ctx context.Context, tx domain.Transaction, sign int64) error {
	date := s.DateOf(tx)
	dayKey, qtyKey, revenueKey := s.DayKey(date), s.QuantityKey(date), s.RevenueKey(date)

	_, err := s.Client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		total := sign * cents(tx.Total)
		pipe.HIncrBy(ctx, dayKey, fieldRevenue, total)
		pipe.HIncrBy(ctx, dayKey, methodField(tx.PaymentMethod), total)
		pipe.HIncrBy(ctx, dayKey, fieldTransactions, sign)
		for _, line := range tx.Items {
			pipe.ZIncrBy(ctx, qtyKey, float64(sign), line.Name)
			pipe.ZIncrBy(ctx, revenueKey, float64(sign*cents(line.Price)), line.Name)
		}
		if sign < 0 {
			pipe.ZRemRangeByScore(ctx, qtyKey, "-inf", "0")
		}
		for _, key := range []string{dayKey, qtyKey, revenueKey} {
			pipe.Expire(ctx, key, s.TTL)
		}
		return nil
	})
	return err
}

// Tally reads one day back. A day without sales yields zero totals.
func (s *Store) Tally(ctx context.Context, date string) (domain.DailyTally, error) {
	tally := domain.DailyTally{
		Date:         date,
		TotalRevenue: decimal.Zero,
		TotalCard:    decimal.Zero,
		TotalCash:    decimal.Zero,
		Products:     []domain.ProductTally{},
	}

	fields, err := s.Client.HGetAll(ctx, s.DayKey(date)).Result()
	if err != nil {
		return tally, err
	}
	tally.TotalRevenue = fromCents(parseInt(fields[fieldRevenue]))
	tally.TotalCard = fromCents(parseInt(fields[methodField("card")]))
	tally.TotalCash = fromCents(parseInt(fields[methodField("cash")]))
	tally.TransactionCount = parseInt(fields[fieldTransactions])

	quantities, err := s.Client.ZRevRangeWithScores(ctx, s.QuantityKey(date), 0, -1).Result()
	if err != nil {
		return tally, err
	}
	for _, member := range quantities {
		name, _ := member.Member.(string)
		revenue, err := s.Client.ZScore(ctx, s.RevenueKey(date), name).Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			return tally, err
		}
		tally.Products = append(tally.Products, domain.ProductTally{
			Name:     name,
			Quantity: int64(member.Score),
			Total:    fromCents(int64(revenue)),
		})
	}
	sortProducts(tally.Products)
	return tally, nil
}

func parseInt(s string) int64 {
	n, _ := strconv.ParseInt(s, 10, 64)
	return n
}

// sortProducts orders by descending revenue, then by name.
func sortProducts(products []domain.ProductTally) {
	sort.SliceStable(products, func(i, j int) bool {
		if !products[i].Total.Equal(products[j].Total) {
			return products[i].Total.GreaterThan(products[j].Total)
		}
		return products[i].Name < products[j].Name
	})
}

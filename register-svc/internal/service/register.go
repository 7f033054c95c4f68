package service

import (
	"context"
	"fmt"
	"sync"

	"autobus-caisse/register-svc/internal/domain"

	"go.uber.org/zap"
)

type RegisterConfig struct {
	Catalog   domain.Catalog
	Policy    LedgerPolicy
	IDs       IDGenerator
	Clock     Clock
	Publisher LedgerPublisher
	Receipts  ReceiptGenerator
	Logger    *zap.Logger
}

// RegisterService owns the state of one register session: the current order
// and the ledger. Every operation runs under a single lock so that each user
// action is applied as one atomic step.
type RegisterService struct {
	mu     sync.Mutex
	order  *Order
	ledger *Ledger

	catalog   domain.Catalog
	policy    LedgerPolicy
	ids       IDGenerator
	clock     Clock
	publisher LedgerPublisher
	receipts  ReceiptGenerator
	logger    *zap.Logger
}

func NewRegisterService(cfg RegisterConfig) *RegisterService {
	s := &RegisterService{
		order:     NewOrder(),
		ledger:    NewLedger(),
		catalog:   cfg.Catalog,
		policy:    cfg.Policy,
		ids:       cfg.IDs,
		clock:     cfg.Clock,
		publisher: cfg.Publisher,
		receipts:  cfg.Receipts,
		logger:    cfg.Logger,
	}
	if s.policy == "" {
		s.policy = PolicySoftCancel
	}
	if s.ids == nil {
		s.ids = UUIDGenerator{}
	}
	if s.clock == nil {
		s.clock = SystemClock{}
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	return s
}

func (s *RegisterService) Catalog(query string) domain.Catalog {
	return FilterCatalog(s.catalog, query)
}

func (s *RegisterService) CurrentOrder() domain.OrderSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.OrderSnapshot{Lines: s.order.Lines(), Total: s.order.Total()}
}

func (s *RegisterService) AddItem(name string) (domain.OrderLine, error) {
	item, ok := s.catalog.FindItem(name)
	if !ok {
		return domain.OrderLine{}, fmt.Errorf("%w: %q", domain.ErrItemNotFound, name)
	}
	line := domain.OrderLine{Name: item.Name, Price: item.Price}
	s.AddLine(line)
	return line, nil
}

func (s *RegisterService) AddWine(name, subcategory string, tier domain.Tier) (domain.OrderLine, error) {
	wine, ok := s.catalog.FindWine(name, subcategory)
	if !ok {
		return domain.OrderLine{}, fmt.Errorf("%w: %q", domain.ErrItemNotFound, name)
	}
	line, err := domain.ResolveSelection(wine, tier)
	if err != nil {
		return domain.OrderLine{}, err
	}
	s.AddLine(line)
	return line, nil
}

func (s *RegisterService) AddLine(line domain.OrderLine) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.order.Add(line)
}

func (s *RegisterService) RemoveLastItem() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.order.RemoveLast()
}

func (s *RegisterService) ClearOrder() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.order.Clear()
}

// Pay turns the current order into a transaction. An empty order is a
// silent no-op reported by recorded == false.
func (s *RegisterService) Pay(ctx context.Context, method domain.PaymentMethod) (domain.Transaction, bool, error) {
	if !method.Valid() {
		return domain.Transaction{}, false, fmt.Errorf("%w: %q", domain.ErrInvalidPaymentMethod, method)
	}

	s.mu.Lock()
	if s.order.IsEmpty() {
		s.mu.Unlock()
		return domain.Transaction{}, false, nil
	}
	lines := s.order.Lines()
	tx := domain.Transaction{
		ID:            s.ids.NewID(),
		Items:         lines,
		Total:         SumLines(lines),
		PaymentMethod: method,
		Timestamp:     s.clock.Now(),
	}
	s.ledger.Record(tx)
	s.order.Clear()
	s.mu.Unlock()

	s.logger.Info("transaction recorded",
		zap.String("id", tx.ID),
		zap.String("total", tx.Total.StringFixed(2)),
		zap.String("method", string(tx.PaymentMethod)),
		zap.Int("lines", len(tx.Items)))
	s.publish(ctx, domain.EventTransactionRecorded, tx)

	return tx.Clone(), true, nil
}

func (s *RegisterService) Transactions() []domain.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.List()
}

func (s *RegisterService) Transaction(id string) (domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tx, ok := s.ledger.Get(id)
	if !ok {
		return domain.Transaction{}, fmt.Errorf("%w: %q", domain.ErrTransactionNotFound, id)
	}
	return tx, nil
}

// Void removes a transaction according to the configured ledger policy.
func (s *RegisterService) Void(ctx context.Context, id string) bool {
	if s.policy == PolicyHardDelete {
		return s.Delete(ctx, id)
	}
	return s.Cancel(ctx, id)
}

func (s *RegisterService) Delete(ctx context.Context, id string) bool {
	s.mu.Lock()
	tx, ok := s.ledger.Get(id)
	if ok {
		s.ledger.Delete(id)
	}
	s.mu.Unlock()

	if !ok {
		return false
	}
	s.logger.Info("transaction deleted", zap.String("id", id))
	s.publish(ctx, domain.EventTransactionDeleted, tx)
	return true
}

func (s *RegisterService) Cancel(ctx context.Context, id string) bool {
	s.mu.Lock()
	changed := s.ledger.Cancel(id)
	tx, _ := s.ledger.Get(id)
	s.mu.Unlock()

	if !changed {
		return false
	}
	s.logger.Info("transaction cancelled", zap.String("id", id))
	s.publish(ctx, domain.EventTransactionCancelled, tx)
	return true
}

func (s *RegisterService) Statistics() domain.Statistics {
	return ComputeStatistics(s.Transactions())
}

func (s *RegisterService) Receipt(id string) ([]byte, error) {
	tx, err := s.Transaction(id)
	if err != nil {
		return nil, err
	}
	if s.receipts == nil {
		return nil, fmt.Errorf("receipts are not configured")
	}
	return s.receipts.Generate(tx)
}

func (s *RegisterService) Policy() LedgerPolicy {
	return s.policy
}

func (s *RegisterService) publish(ctx context.Context, eventType string, tx domain.Transaction) {
	if s.publisher == nil {
		return
	}
	event := domain.LedgerEvent{
		Type:        eventType,
		Transaction: tx,
		Timestamp:   s.clock.Now(),
	}
	if err := s.publisher.PublishLedgerEvent(ctx, event); err != nil {
		s.logger.Warn("failed to publish ledger event",
			zap.String("type", eventType),
			zap.String("id", tx.ID),
			zap.Error(err))
	}
}

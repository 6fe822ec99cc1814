package store

import (
	"log"
	"strings"
	"sync"

	"shoppos/models"
)

const receiptsKey = "inventory_system_receipts"

// ReceiptStore is the append-only log of completed sales. Receipts are never
// modified after Append.
type ReceiptStore struct {
	mu       sync.Mutex
	receipts []models.Receipt
	snaps    Snapshotter
}

func NewReceiptStore(snaps Snapshotter) *ReceiptStore {
	s := &ReceiptStore{snaps: snaps}

	var loaded []models.Receipt
	if err := snaps.Load(receiptsKey, &loaded); err != nil {
		if err != ErrNoSnapshot {
			log.Printf("receipt snapshot unreadable, starting empty: %v", err)
		}
		loaded = nil
	}
	s.receipts = loaded
	return s
}

func (s *ReceiptStore) Append(r models.Receipt) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.receipts = append(s.receipts, r)
	if err := s.snaps.Save(receiptsKey, s.receipts); err != nil {
		log.Printf("failed to persist receipts: %v", err)
	}
}

// List returns the receipts newest first.
func (s *ReceiptStore) List() []models.Receipt {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Receipt, len(s.receipts))
	for i, r := range s.receipts {
		out[len(s.receipts)-1-i] = r
	}
	return out
}

// Search filters by receipt id, customer, date or payment method.
func (s *ReceiptStore) Search(query string) []models.Receipt {
	all := s.List()
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return all
	}

	var out []models.Receipt
	for _, r := range all {
		if strings.Contains(strings.ToLower(r.ID), q) ||
			(r.Customer != "" && strings.Contains(strings.ToLower(r.Customer), q)) ||
			strings.Contains(r.Date, q) ||
			strings.Contains(strings.ToLower(r.PaymentMethod), q) {
			out = append(out, r)
		}
	}
	return out
}

func (s *ReceiptStore) Get(id string) (models.Receipt, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.receipts {
		if r.ID == id {
			return r, true
		}
	}
	return models.Receipt{}, false
}

// FindByViewToken resolves the public print/export token.
func (s *ReceiptStore) FindByViewToken(token string) (models.Receipt, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.receipts {
		if r.ViewToken == token {
			return r, true
		}
	}
	return models.Receipt{}, false
}

package store

import (
	"log"
	"strings"
	"sync"

	"shoppos/models"
)

const purchasesKey = "inventory_system_purchases"

// PurchaseStore keeps the supplier purchase invoices. Purchases are
// standalone records; receiving stock is entered through the inventory forms,
// so adding a purchase never mutates the ledger.
type PurchaseStore struct {
	mu        sync.Mutex
	purchases []models.Purchase
	snaps     Snapshotter
}

func NewPurchaseStore(snaps Snapshotter) *PurchaseStore {
	s := &PurchaseStore{snaps: snaps}

	var loaded []models.Purchase
	if err := snaps.Load(purchasesKey, &loaded); err != nil || len(loaded) == 0 {
		if err != nil && err != ErrNoSnapshot {
			log.Printf("purchase snapshot unreadable, seeding: %v", err)
		}
		loaded = make([]models.Purchase, len(seedPurchases))
		copy(loaded, seedPurchases)
	}
	s.purchases = loaded
	return s
}

func (s *PurchaseStore) Add(p models.Purchase) models.Purchase {
	s.mu.Lock()
	defer s.mu.Unlock()

	max := 0
	for _, existing := range s.purchases {
		if existing.ID > max {
			max = existing.ID
		}
	}
	p.ID = max + 1
	s.purchases = append(s.purchases, p)
	if err := s.snaps.Save(purchasesKey, s.purchases); err != nil {
		log.Printf("failed to persist purchases: %v", err)
	}
	return p
}

// Search filters by supplier or invoice number; empty query returns all,
// newest first.
func (s *PurchaseStore) Search(query string) []models.Purchase {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := strings.ToLower(strings.TrimSpace(query))
	var out []models.Purchase
	for i := len(s.purchases) - 1; i >= 0; i-- {
		p := s.purchases[i]
		if q == "" ||
			strings.Contains(strings.ToLower(p.Supplier), q) ||
			strings.Contains(strings.ToLower(p.InvoiceNumber), q) {
			out = append(out, p)
		}
	}
	return out
}

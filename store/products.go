package store

import (
	"log"
	"sync"
	"time"

	"shoppos/models"
)

const productsKey = "inventory_system_products"

// ProductStore is the authoritative product ledger. It is the single writer
// of product quantities; every mutation runs under one mutex and persists the
// full catalog snapshot afterwards. Persistence is best-effort: a failed
// write is logged and the in-memory state stays authoritative for the rest of
// the session.
type ProductStore struct {
	mu       sync.Mutex
	products []models.Product
	snaps    Snapshotter
}

// NewProductStore loads the stored catalog, falling back to the seed catalog
// when the snapshot is missing, empty or malformed.
func NewProductStore(snaps Snapshotter) *ProductStore {
	s := &ProductStore{snaps: snaps}

	var loaded []models.Product
	if err := snaps.Load(productsKey, &loaded); err != nil || len(loaded) == 0 {
		if err != nil && err != ErrNoSnapshot {
			log.Printf("product snapshot unreadable, seeding catalog: %v", err)
		}
		loaded = make([]models.Product, len(seedProducts))
		copy(loaded, seedProducts)
	}
	s.products = loaded
	return s
}

func (s *ProductStore) persist() {
	if err := s.snaps.Save(productsKey, s.products); err != nil {
		log.Printf("failed to persist product catalog: %v", err)
	}
}

func today() string {
	return time.Now().Format("2006-01-02")
}

// Add assigns the next id and stamps lastRestocked. Field validation is the
// caller's responsibility.
func (s *ProductStore) Add(input models.ProductInput) models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := models.Product{
		ID:            s.nextIDLocked(),
		Name:          input.Name,
		Category:      input.Category,
		Price:         input.Price,
		CostPrice:     input.CostPrice,
		Unit:          input.Unit,
		Quantity:      input.Quantity,
		ReorderLevel:  input.ReorderLevel,
		LastRestocked: today(),
		SKU:           input.SKU,
		Image:         input.Image,
	}
	s.products = append(s.products, p)
	s.persist()
	return p
}

// Update merges the present fields into the product. A quantity or reorder
// level change resets lastRestocked. Missing ids are a silent no-op.
func (s *ProductStore) Update(id int, updates models.ProductUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID != id {
			continue
		}
		p := &s.products[i]
		if updates.Name != nil {
			p.Name = *updates.Name
		}
		if updates.Category != nil {
			p.Category = *updates.Category
		}
		if updates.Unit != nil {
			p.Unit = *updates.Unit
		}
		if updates.Price != nil {
			p.Price = *updates.Price
		}
		if updates.CostPrice != nil {
			p.CostPrice = *updates.CostPrice
		}
		if updates.Quantity != nil {
			p.Quantity = *updates.Quantity
		}
		if updates.ReorderLevel != nil {
			p.ReorderLevel = *updates.ReorderLevel
		}
		if updates.SKU != nil {
			p.SKU = *updates.SKU
		}
		if updates.Image != nil {
			p.Image = *updates.Image
		}
		if updates.Quantity != nil || updates.ReorderLevel != nil {
			p.LastRestocked = today()
		}
		s.persist()
		return
	}
}

// Remove deletes the product; missing ids are a silent no-op. Cart lines that
// still reference the id are dropped at checkout validation, not here.
func (s *ProductStore) Remove(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			s.persist()
			return
		}
	}
}

// Deduct applies a committed sale. All lines are applied under a single lock
// acquisition so no reader observes a partially deducted ledger. Quantities
// clamp at zero and unknown ids are ignored.
func (s *ProductStore) Deduct(lines []models.DeductLine) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, line := range lines {
		for i := range s.products {
			if s.products[i].ID != line.ID {
				continue
			}
			q := s.products[i].Quantity - line.Quantity
			if q < 0 {
				q = 0
			}
			s.products[i].Quantity = q
			break
		}
	}
	s.persist()
}

func (s *ProductStore) nextIDLocked() int {
	max := 0
	for _, p := range s.products {
		if p.ID > max {
			max = p.ID
		}
	}
	return max + 1
}

// NextID reports the id the next Add will assign.
func (s *ProductStore) NextID() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nextIDLocked()
}

// Get returns the product and whether it exists.
func (s *ProductStore) Get(id int) (models.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// List returns a copy of the full catalog.
func (s *ProductStore) List() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Available returns the products sellable at the POS (quantity > 0).
func (s *ProductStore) Available() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Product
	for _, p := range s.products {
		if p.Quantity > 0 {
			out = append(out, p)
		}
	}
	return out
}

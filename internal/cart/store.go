package cart

import (
	"context"
	"slices"
	"sync"

	"github.com/rs/zerolog/log"
)

// Storage is the durable copy of one owner's item list. The store treats
// every storage failure as recoverable: errors are logged and swallowed,
// and the in-memory cart stays authoritative for the rest of the session.
type Storage interface {
	// Load returns the previously saved items, or an empty slice when
	// nothing was saved or the payload is undecodable.
	Load(ctx context.Context, ownerID string) ([]Item, error)
	// Save replaces the stored copy with the full item list.
	Save(ctx context.Context, ownerID string, items []Item) error
	// Clear removes the stored value entirely rather than writing an
	// empty list, so the storage medium is freed.
	Clear(ctx context.Context, ownerID string) error
}

// State is a read-only, internally consistent snapshot of the cart:
// the item list plus the aggregates a fresh recomputation would produce.
//
// @Description Cart snapshot: items plus derived aggregates
type State struct {
	// Items is the ordered line list; merging never reorders a line.
	Items []Item `json:"items"`
	Totals
}

// Store holds the authoritative item list for one owner and is the only
// way collaborators read or mutate it. Mutating actions serialize through
// a mutex, keeping the single-writer discipline even under concurrent
// HTTP callers, and every mutation recomputes the aggregates and persists
// the whole list before the new snapshot is published.
type Store struct {
	mu      sync.Mutex
	ownerID string
	items   []Item
	totals  Totals
	storage Storage
	subs    []func(State)

	maxQuantity int
}

// Option configures a Store.
type Option func(*Store)

// WithMaxQuantity caps a single line's quantity at n. Additions and
// absolute updates beyond the cap are clamped, not rejected. Zero means
// no cap.
func WithMaxQuantity(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.maxQuantity = n
		}
	}
}

// NewStore creates a store for the given owner and hydrates it from
// storage. An unreadable or missing stored copy yields an empty cart,
// never an error.
func NewStore(ctx context.Context, ownerID string, storage Storage, opts ...Option) *Store {
	s := &Store{
		ownerID: ownerID,
		storage: storage,
	}
	for _, opt := range opts {
		opt(s)
	}

	if storage != nil {
		items, err := storage.Load(ctx, ownerID)
		if err != nil {
			log.Warn().Err(err).Str("owner_id", ownerID).Msg("Cart hydration failed, starting empty")
		} else {
			s.items = items
		}
	}
	s.totals = ComputeTotals(s.items)
	return s
}

// OwnerID returns the durable key this store persists under.
func (s *Store) OwnerID() string {
	return s.ownerID
}

// Subscribe registers fn to receive the new snapshot after every mutation.
// Callbacks run outside the store lock and may call back into the store.
func (s *Store) Subscribe(fn func(State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// Snapshot returns a consistent read-only copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// AddItem merges qty units of item into the cart. A line with the same
// identity has its quantity incremented in place; otherwise a new line is
// appended. The item's own Quantity field is ignored in favor of qty.
func (s *Store) AddItem(ctx context.Context, item Item, qty int) (State, error) {
	if qty <= 0 {
		return State{}, ErrInvalidQuantity
	}
	if err := item.validate(); err != nil {
		return State{}, err
	}
	item.DiscountPercent = clampDiscount(item.DiscountPercent)
	item.Variant = item.Variant.Normalize()

	return s.mutate(ctx, func(items []Item) []Item {
		if idx := findLine(items, item.Identity()); idx >= 0 {
			items[idx].Quantity = s.clampQuantity(items[idx].Quantity + qty)
			return items
		}
		item.Quantity = s.clampQuantity(qty)
		return append(items, item)
	}), nil
}

// RemoveItem deletes the entire matching line, all of its quantity
// included. A missing identity is a successful no-op.
func (s *Store) RemoveItem(ctx context.Context, productID int64, variant Variant) State {
	id := Identity{ProductID: productID, Variant: variant}
	return s.mutate(ctx, func(items []Item) []Item {
		if idx := findLine(items, id); idx >= 0 {
			return append(items[:idx], items[idx+1:]...)
		}
		return items
	})
}

// UpdateQuantity sets the matching line's quantity to the given absolute
// value. A target of zero or less removes the line entirely; a missing
// identity with a positive target is a successful no-op.
func (s *Store) UpdateQuantity(ctx context.Context, productID int64, qty int, variant Variant) State {
	if qty <= 0 {
		return s.RemoveItem(ctx, productID, variant)
	}
	id := Identity{ProductID: productID, Variant: variant}
	return s.mutate(ctx, func(items []Item) []Item {
		if idx := findLine(items, id); idx >= 0 {
			items[idx].Quantity = s.clampQuantity(qty)
		}
		return items
	})
}

// Clear resets the cart to empty and erases the persisted copy, freeing
// the storage medium instead of writing an empty list.
func (s *Store) Clear(ctx context.Context) State {
	s.mu.Lock()
	s.items = nil
	s.totals = Totals{}
	snap := s.snapshotLocked()
	if s.storage != nil {
		if err := s.storage.Clear(ctx, s.ownerID); err != nil {
			log.Warn().Err(err).Str("owner_id", s.ownerID).Msg("Failed to erase persisted cart")
		}
	}
	subs := slices.Clone(s.subs)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
	return snap
}

// ItemQuantity is the two-mode quantity read. With a non-nil variant it
// returns the exact matching line's quantity or zero. With a nil variant
// it returns the sum of quantities across every line of the product,
// regardless of variant.
func (s *Store) ItemQuantity(productID int64, variant *Variant) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if variant != nil {
		id := Identity{ProductID: productID, Variant: *variant}
		if idx := findLine(s.items, id); idx >= 0 {
			return s.items[idx].Quantity
		}
		return 0
	}

	total := 0
	for _, it := range s.items {
		if it.ProductID == productID {
			total += it.Quantity
		}
	}
	return total
}

// Contains is the existence form of ItemQuantity, with the same two modes.
func (s *Store) Contains(productID int64, variant *Variant) bool {
	return s.ItemQuantity(productID, variant) > 0
}

// mutate applies fn to a copy of the item list, recomputes the aggregates,
// persists the whole list, then publishes the new snapshot to subscribers
// outside the lock. The copy-replace discipline means observers never see
// a partially applied state.
func (s *Store) mutate(ctx context.Context, fn func([]Item) []Item) State {
	s.mu.Lock()
	s.items = fn(slices.Clone(s.items))
	s.totals = ComputeTotals(s.items)
	snap := s.snapshotLocked()
	if s.storage != nil {
		if err := s.storage.Save(ctx, s.ownerID, s.items); err != nil {
			log.Warn().Err(err).Str("owner_id", s.ownerID).Msg("Failed to persist cart")
		}
	}
	subs := slices.Clone(s.subs)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
	return snap
}

// snapshotLocked builds a State copy. Callers must hold s.mu.
func (s *Store) snapshotLocked() State {
	items := make([]Item, len(s.items))
	copy(items, s.items)
	return State{Items: items, Totals: s.totals}
}

func (s *Store) clampQuantity(qty int) int {
	if s.maxQuantity > 0 && qty > s.maxQuantity {
		return s.maxQuantity
	}
	return qty
}

// findLine returns the index of the line matching id, or -1.
func findLine(items []Item, id Identity) int {
	for i, it := range items {
		if it.Identity().Matches(id) {
			return i
		}
	}
	return -1
}

func clampDiscount(pct int) int {
	switch {
	case pct < 0:
		return 0
	case pct > 100:
		return 100
	default:
		return pct
	}
}

// Package membership isolates the member roster behind a small capability
// interface so the checkout engine never touches roster storage directly.
package membership

import (
	"time"

	"github.com/google/uuid"

	"github.com/openretail/supermart-sim/internal/model"
)

// Directory looks members up by exact name. Matching is deliberately
// case-sensitive to keep the lookup behavior customers already rely on.
type Directory interface {
	Lookup(name string) bool
	Enroll(name string) *model.Member
	// Clear wipes the roster and reports how many members were removed.
	Clear() int
	Count() int
}

// StoreDirectory keeps the roster on the store aggregate itself.
type StoreDirectory struct {
	store *model.Store
}

func NewStoreDirectory(st *model.Store) *StoreDirectory {
	return &StoreDirectory{store: st}
}

func (d *StoreDirectory) Lookup(name string) bool {
	for i := range d.store.Members {
		if d.store.Members[i].Name == name {
			return true
		}
	}
	return false
}

func (d *StoreDirectory) Enroll(name string) *model.Member {
	member := model.Member{
		ID:       uuid.New().String(),
		Name:     name,
		JoinedAt: time.Now(),
	}
	d.store.Members = append(d.store.Members, member)
	return &member
}

func (d *StoreDirectory) Clear() int {
	cleared := len(d.store.Members)
	d.store.Members = nil
	return cleared
}

func (d *StoreDirectory) Count() int {
	return len(d.store.Members)
}

package store

import (
	"sync/atomic"

	"github.com/ougirez/fishstats/internal/domain"
)

// Snapshot is one fully loaded, read-only generation of the three datasets.
type Snapshot struct {
	Landings   []domain.Landing
	Production []domain.Production
	Plants     []domain.Plant
}

type Store interface {
	Landings() []domain.Landing
	Production() []domain.Production
	Plants() []domain.Plant
	Stats() domain.DataStats
	Ready() bool
	Replace(snapshot *Snapshot)
}

type store struct {
	snapshot atomic.Pointer[Snapshot]
	ready    atomic.Bool
}

// NewStore returns an empty store; it reports not ready until Replace is called.
func NewStore() Store {
	s := &store{}
	s.snapshot.Store(&Snapshot{})
	return s
}

// NewWithSnapshot returns a ready store serving snapshot.
func NewWithSnapshot(snapshot *Snapshot) Store {
	s := &store{}
	s.Replace(snapshot)
	return s
}

func (s *store) Replace(snapshot *Snapshot) {
	if snapshot == nil {
		snapshot = &Snapshot{}
	}
	s.snapshot.Store(snapshot)
	s.ready.Store(true)
}

func (s *store) Ready() bool {
	return s.ready.Load()
}

func (s *store) Landings() []domain.Landing {
	return s.snapshot.Load().Landings
}

func (s *store) Production() []domain.Production {
	return s.snapshot.Load().Production
}

func (s *store) Plants() []domain.Plant {
	return s.snapshot.Load().Plants
}

func (s *store) Stats() domain.DataStats {
	snap := s.snapshot.Load()
	return domain.DataStats{
		Landings:   count(len(snap.Landings)),
		Production: count(len(snap.Production)),
		Plants:     count(len(snap.Plants)),
	}
}

func count(n int) domain.DatasetCount {
	return domain.DatasetCount{Count: n, Loaded: n > 0}
}

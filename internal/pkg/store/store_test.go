package store

import (
	"sync"
	"testing"

	"github.com/ougirez/fishstats/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStore_Empty(t *testing.T) {
	s := NewStore()

	assert.False(t, s.Ready())
	assert.Empty(t, s.Landings())
	assert.Empty(t, s.Production())
	assert.Empty(t, s.Plants())
	assert.Equal(t, domain.DataStats{}, s.Stats())
}

func TestStore_Replace(t *testing.T) {
	s := NewStore()
	s.Replace(&Snapshot{
		Landings:   []domain.Landing{{ID: 1}, {ID: 2}},
		Production: []domain.Production{{ID: 3}},
	})

	require.True(t, s.Ready())
	assert.Len(t, s.Landings(), 2)
	assert.Len(t, s.Production(), 1)

	stats := s.Stats()
	assert.Equal(t, domain.DatasetCount{Count: 2, Loaded: true}, stats.Landings)
	assert.Equal(t, domain.DatasetCount{Count: 1, Loaded: true}, stats.Production)
	assert.Equal(t, domain.DatasetCount{Count: 0, Loaded: false}, stats.Plants)
}

func TestNewWithSnapshot_Nil(t *testing.T) {
	s := NewWithSnapshot(nil)
	assert.True(t, s.Ready())
	assert.Empty(t, s.Landings())
}

func TestStore_ConcurrentReaders(t *testing.T) {
	s := NewStore()
	full := &Snapshot{Landings: make([]domain.Landing, 100), Plants: make([]domain.Plant, 10)}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				n := len(s.Landings())
				assert.True(t, n == 0 || n == 100)
			}
		}()
	}
	s.Replace(full)
	wg.Wait()

	assert.Equal(t, 100, s.Stats().Landings.Count)
}

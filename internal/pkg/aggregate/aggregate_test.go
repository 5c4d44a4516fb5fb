package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type catch struct {
	species string
	month   int
	tons    float64
}

func species(c catch) string { return c.species }
func month(c catch) int      { return c.month }
func tons(c catch) float64   { return c.tons }

var sample = []catch{
	{"JUREL", 1, 100},
	{"SARDINA", 2, 300},
	{"MERLUZA", 1, 200},
	{"JUREL", 3, 150},
	{"", 4, 50},
}

func TestGroupSum_FirstSeenOrder(t *testing.T) {
	groups := GroupSum(sample, NonEmpty(species), tons)

	require.Len(t, groups, 3)
	assert.Equal(t, []Group[string]{
		{Key: "JUREL", Value: 250, Count: 2},
		{Key: "SARDINA", Value: 300, Count: 1},
		{Key: "MERLUZA", Value: 200, Count: 1},
	}, groups)
}

func TestGroupSum_Conservation(t *testing.T) {
	byMonth := GroupSum(sample, NonZero(month), tons)
	total := Sum(sample, tons)

	var grouped float64
	for _, g := range byMonth {
		grouped += g.Value
	}
	assert.InDelta(t, total, grouped, 1e-9)
}

func TestSortDesc_Stable(t *testing.T) {
	groups := []Group[string]{
		{Key: "A", Value: 10},
		{Key: "B", Value: 20},
		{Key: "C", Value: 10},
		{Key: "D", Value: 20},
	}
	SortDesc(groups)

	keys := make([]string, 0, len(groups))
	for _, g := range groups {
		keys = append(keys, g.Key)
	}
	assert.Equal(t, []string{"B", "D", "A", "C"}, keys)
}

func TestSortAsc(t *testing.T) {
	groups := GroupSum(sample, NonZero(month), tons)
	SortAsc(groups)

	assert.Equal(t, 1, groups[0].Key)
	assert.Equal(t, 4, groups[len(groups)-1].Key)
}

func TestTop(t *testing.T) {
	items := []int{1, 2, 3}
	assert.Equal(t, []int{1, 2}, Top(items, 2))
	assert.Equal(t, []int{1, 2, 3}, Top(items, 10))
	assert.Empty(t, Top(items, 0))
	assert.Empty(t, Top(items, -1))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 1.24, Round2(1.235))
	assert.Equal(t, -1.24, Round2(-1.235))
	assert.Equal(t, 2.5, Round2(2.5))
	assert.Equal(t, 0.0, Round2(0.004))
	assert.Equal(t, 1234567.89, Round2(1234567.891))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 25.0, Percent(1, 4))
	assert.Equal(t, 33.33, Percent(1, 3))
	assert.Equal(t, 0.0, Percent(5, 0))
}

func TestDistinct(t *testing.T) {
	assert.Equal(t, []string{"JUREL", "SARDINA", "MERLUZA"}, Distinct(sample, NonEmpty(species)))
	assert.Equal(t, 4, CountDistinct(sample, NonZero(month)))
}

func TestFilter(t *testing.T) {
	heavy := Filter(sample, func(c catch) bool { return c.tons >= 150 })
	assert.Len(t, heavy, 3)
	assert.Equal(t, "SARDINA", heavy[0].species)
}

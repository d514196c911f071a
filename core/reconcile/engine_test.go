package reconcile

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompute(t *testing.T) {
	tests := []struct {
		name     string
		existing []int64
		reported []int64
		want     Diff[int64]
	}{
		{
			name: "both empty",
			want: Diff[int64]{},
		},
		{
			name:     "all new",
			reported: []int64{3, 1, 2},
			want:     Diff[int64]{Add: []int64{3, 1, 2}},
		},
		{
			name:     "all gone",
			existing: []int64{1, 2},
			want:     Diff[int64]{Remove: []int64{1, 2}},
		},
		{
			name:     "mixed",
			existing: []int64{1, 2, 3, 4},
			reported: []int64{5, 4, 2, 6},
			want: Diff[int64]{
				Keep:   []int64{2, 4},
				Add:    []int64{5, 6},
				Remove: []int64{1, 3},
			},
		},
		{
			name:     "duplicates collapse",
			existing: []int64{1, 1, 2},
			reported: []int64{2, 3, 3},
			want: Diff[int64]{
				Keep:   []int64{2},
				Add:    []int64{3},
				Remove: []int64{1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(tt.existing, tt.reported)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCompute_Properties(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 7))

	randomSet := func() []int64 {
		n := rng.IntN(30)
		out := make([]int64, 0, n)
		for i := 0; i < n; i++ {
			out = append(out, rng.Int64N(40))
		}
		return out
	}
	toSet := func(keys []int64) map[int64]struct{} {
		s := make(map[int64]struct{}, len(keys))
		for _, k := range keys {
			s[k] = struct{}{}
		}
		return s
	}

	for i := 0; i < 500; i++ {
		existing, reported := randomSet(), randomSet()
		e, r := toSet(existing), toSet(reported)
		d := Compute(existing, reported)

		for _, k := range d.Add {
			_, inE := e[k]
			assert.False(t, inE, "added key %d already existed", k)
		}
		for _, k := range d.Remove {
			_, inE := e[k]
			assert.True(t, inE, "removed key %d did not exist", k)
		}

		keep := map[int64]struct{}{}
		for k := range e {
			if _, ok := r[k]; ok {
				keep[k] = struct{}{}
			}
		}
		assert.Equal(t, keep, toSet(d.Keep))

		post := toSet(existing)
		for _, k := range d.Remove {
			delete(post, k)
		}
		for _, k := range d.Add {
			post[k] = struct{}{}
		}
		assert.Equal(t, r, post)

		assert.Len(t, d.Keep, len(toSet(d.Keep)))
		assert.Len(t, d.Add, len(toSet(d.Add)))
		assert.Len(t, d.Remove, len(toSet(d.Remove)))
	}
}

func TestDiff_Empty(t *testing.T) {
	assert.True(t, Compute([]int64{1, 2}, []int64{2, 1}).Empty())
	assert.False(t, Compute([]int64{1}, []int64{2}).Empty())
}

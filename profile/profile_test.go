package profile_test

import (
	"testing"

	"github.com/CodingThrust/problem-reductions-sub000/profile"
	"github.com/stretchr/testify/assert"
)

func TestNew_EmptyProfile(t *testing.T) {
	sp := profile.New()
	assert.Equal(t, uint64(0), sp.Get("anything"))
	assert.False(t, sp.Has("anything"))
}

func TestSet_NeverMutatesOriginal(t *testing.T) {
	a := profile.New(profile.Pair{Name: "n", Value: 3})
	b := a.Set("n", 5)

	assert.Equal(t, uint64(3), a.Get("n"))
	assert.Equal(t, uint64(5), b.Get("n"))
}

func TestSet_PreservesInsertionPositionOnOverwrite(t *testing.T) {
	sp := profile.New(profile.Pair{Name: "a", Value: 1}, profile.Pair{Name: "b", Value: 2})
	sp = sp.Set("a", 10)

	pairs := sp.Pairs()
	assert.Equal(t, []profile.Pair{{Name: "a", Value: 10}, {Name: "b", Value: 2}}, pairs)
}

func TestHas(t *testing.T) {
	sp := profile.New(profile.Pair{Name: "n", Value: 0})
	assert.True(t, sp.Has("n"))
	assert.False(t, sp.Has("m"))
}

func TestEqual_IgnoresInsertionOrder(t *testing.T) {
	a := profile.New(profile.Pair{Name: "n", Value: 1}, profile.Pair{Name: "m", Value: 2})
	b := profile.New(profile.Pair{Name: "m", Value: 2}, profile.Pair{Name: "n", Value: 1})
	assert.True(t, a.Equal(b))
}

func TestEqual_DifferingValue(t *testing.T) {
	a := profile.New(profile.Pair{Name: "n", Value: 1})
	b := profile.New(profile.Pair{Name: "n", Value: 2})
	assert.False(t, a.Equal(b))
}

func TestEqual_AbsentTreatedAsZero(t *testing.T) {
	a := profile.New(profile.Pair{Name: "n", Value: 0})
	b := profile.New()
	assert.True(t, a.Equal(b))
}

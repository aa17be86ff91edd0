package ddd

import (
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

type Money struct {
	amount   int64
	currency string
}

func (m Money) AtomicValues() []any {
	return []any{m.amount, m.currency}
}

type Pair struct {
	first, second string
}

func (p Pair) AtomicValues() []any {
	return []any{p.first, p.second}
}

// Swapped has the same atomic values as Pair, under another type.
type Swapped Pair

func (p Swapped) AtomicValues() []any {
	return []any{p.first, p.second}
}

type Address struct {
	country  string
	province string
	city     string
	tags     []string
	since    time.Time
	contact  *Email
}

func (a *Address) AtomicValues() []any {
	return []any{a.country, a.province, a.city, a.tags, a.since, a.contact}
}

func TestEqual(t *testing.T) {
	a := Money{amount: 100, currency: "EUR"}
	b := Money{amount: 100, currency: "EUR"}
	c := Money{amount: 100, currency: "USD"}

	assert.True(t, Equal(a, a))
	assert.True(t, Equal(a, b))
	assert.True(t, Equal(b, a))
	assert.False(t, Equal(a, c))
	assert.False(t, Equal(a, nil))
	assert.False(t, Equal(nil, a))
	assert.False(t, Equal(nil, nil))

	var nilAddr *Address
	assert.False(t, Equal(&Address{}, nilAddr))
}

func TestEqual_DifferentTypes(t *testing.T) {
	p := Pair{first: "a", second: "b"}
	s := Swapped{first: "a", second: "b"}
	assert.Equal(t, p.AtomicValues(), s.AtomicValues())
	assert.False(t, Equal(p, s))
	assert.NotEqual(t, Hash(p), Hash(s))
}

func TestEqual_Transitive(t *testing.T) {
	a := Pair{first: "x", second: "y"}
	b := Pair{first: "x", second: "y"}
	c := Pair{first: "x", second: "y"}
	assert.True(t, Equal(a, b))
	assert.True(t, Equal(b, c))
	assert.True(t, Equal(a, c))
}

func TestEqual_NestedValues(t *testing.T) {
	since := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)
	email := MustEmail("a@b.com")
	sameEmail := MustEmail("a@b.com")
	left := &Address{country: "CN", province: "GD", city: "SZ", tags: []string{"home"}, since: since, contact: &email}
	right := &Address{country: "CN", province: "GD", city: "SZ", tags: []string{"home"}, since: since.In(time.FixedZone("UTC+8", 8*60*60)), contact: &sameEmail}

	assert.True(t, Equal(left, right))
	assert.Equal(t, Hash(left), Hash(right))

	right.tags = []string{"work"}
	assert.False(t, Equal(left, right))

	left.contact, right.contact = nil, nil
	right.tags = []string{"home"}
	assert.True(t, Equal(left, right))
	assert.Equal(t, Hash(left), Hash(right))
}

func TestHash(t *testing.T) {
	a := Money{amount: 100, currency: "EUR"}
	b := Money{amount: 100, currency: "EUR"}
	assert.Equal(t, Hash(a), Hash(b))
	assert.NotEqual(t, Hash(a), Hash(Money{amount: 101, currency: "EUR"}))
	assert.Equal(t, uint64(0), Hash(nil))
}

func TestHash_OrderSensitive(t *testing.T) {
	ab := Pair{first: "a", second: "b"}
	ba := Pair{first: "b", second: "a"}
	assert.False(t, Equal(ab, ba))
	assert.NotEqual(t, Hash(ab), Hash(ba))

	// length prefixes keep the split between values significant
	assert.NotEqual(t, Hash(Pair{first: "ab", second: "c"}), Hash(Pair{first: "a", second: "bc"}))
}

func TestAtomicValues_Restartable(t *testing.T) {
	m := Money{amount: 7, currency: "JPY"}
	first := m.AtomicValues()
	second := m.AtomicValues()
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("AtomicValues() mismatch (-first +second):\n%s", diff)
	}
	first[0] = int64(8)
	assert.Equal(t, int64(7), m.AtomicValues()[0])
}

// Composite exposes a single arbitrary atomic value.
type Composite struct {
	value any
}

func (c Composite) AtomicValues() []any {
	return []any{c.value}
}

type Box struct {
	V any
}

type Point struct {
	X float64
}

type tagged struct {
	id   int
	tags []string
}

func TestEqual_CompositeValues(t *testing.T) {
	negZero := math.Copysign(0, -1)
	tests := []struct {
		Name        string
		Left, Right Composite
		Equals      bool
	}{
		{
			Name:   "struct=comparable,field=slice",
			Left:   Composite{Box{V: []int{1}}},
			Right:  Composite{Box{V: []int{1}}},
			Equals: true,
		},
		{
			Name:   "struct=comparable,field=different slice",
			Left:   Composite{Box{V: []int{1}}},
			Right:  Composite{Box{V: []int{2}}},
			Equals: false,
		},
		{
			Name:   "interface=different dynamic types",
			Left:   Composite{Box{V: MustEmail("a@b.com")}},
			Right:  Composite{Box{V: 1}},
			Equals: false,
		},
		{
			Name:   "interface=value object",
			Left:   Composite{Box{V: MustEmail("a@b.com")}},
			Right:  Composite{Box{V: MustEmail("a@b.com")}},
			Equals: true,
		},
		{
			Name:   "struct=signed zero",
			Left:   Composite{Point{X: 0}},
			Right:  Composite{Point{X: negZero}},
			Equals: true,
		},
		{
			Name:   "struct=NaN",
			Left:   Composite{Point{X: math.NaN()}},
			Right:  Composite{Point{X: math.NaN()}},
			Equals: false,
		},
		{
			Name:   "struct=unexported fields",
			Left:   Composite{tagged{id: 1, tags: []string{"a"}}},
			Right:  Composite{tagged{id: 1, tags: []string{"a"}}},
			Equals: true,
		},
		{
			Name:   "array=signed zero",
			Left:   Composite{[2]float64{0, 1}},
			Right:  Composite{[2]float64{negZero, 1}},
			Equals: true,
		},
		{
			Name:   "map=same entries",
			Left:   Composite{map[string]float64{"a": 0, "b": 1}},
			Right:  Composite{map[string]float64{"b": 1, "a": negZero}},
			Equals: true,
		},
		{
			Name:   "map=different entries",
			Left:   Composite{map[string]float64{"a": 0, "b": 1}},
			Right:  Composite{map[string]float64{"a": 0, "c": 1}},
			Equals: false,
		},
		{
			Name:   "pointer=distinct,values=same",
			Left:   Composite{&Point{X: 1}},
			Right:  Composite{&Point{X: 1}},
			Equals: true,
		},
		{
			Name:   "pointer=nil",
			Left:   Composite{(*Point)(nil)},
			Right:  Composite{(*Point)(nil)},
			Equals: true,
		},
		{
			Name:   "pointer=nil,other=set",
			Left:   Composite{(*Point)(nil)},
			Right:  Composite{&Point{}},
			Equals: false,
		},
		{
			Name:   "slice=nil,other=empty",
			Left:   Composite{[]int(nil)},
			Right:  Composite{[]int{}},
			Equals: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				assert.Equal(t, tt.Equals, Equal(tt.Left, tt.Right))
				assert.Equal(t, tt.Equals, Equal(tt.Right, tt.Left))
			})
			if tt.Equals {
				assert.Equal(t, Hash(tt.Left), Hash(tt.Right))
			}
		})
	}
}

func TestSet_SignedZero(t *testing.T) {
	s := NewSet(Composite{Point{X: 0}})
	assert.True(t, s.Contains(Composite{Point{X: math.Copysign(0, -1)}}))
	assert.False(t, s.Add(Composite{Point{X: math.Copysign(0, -1)}}))
}

package tests

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ib-77/keypath/pkg/keypath"
	"github.com/ib-77/keypath/pkg/keypath/async"
	"github.com/ib-77/keypath/pkg/keypath/exec"
	"github.com/ib-77/keypath/pkg/keypath/par"
	"github.com/ib-77/keypath/pkg/keypath/seq"
)

type person struct {
	name string
	age  int
}

var (
	nameAcc = keypath.Field(func(p person) string { return p.name })
	ageAcc  = keypath.Field(func(p person) int { return p.age })
)

func people() []person {
	return []person{
		{name: "Alice", age: 30},
		{name: "Bob", age: 25},
		{name: "Charlie", age: 35},
	}
}

func newPool(t *testing.T, workers int) *par.Pool {
	t.Helper()
	p, err := par.NewPool(workers)
	assert.NoError(t, err)
	t.Cleanup(p.Close)
	return p
}

// TestFilterAgreesAcrossStrategies runs the same filter under the sequential,
// pooled and stream implementations and expects identical output.
func TestFilterAgreesAcrossStrategies(t *testing.T) {
	ctx := context.Background()
	coll := people()
	young := func(age int) bool { return age < 30 }

	sq, err := seq.Filter(coll, ageAcc, young)
	assert.NoError(t, err)
	assert.Equal(t, []person{{name: "Bob", age: 25}}, sq)

	pl, err := par.Filter(ctx, newPool(t, 3), coll, ageAcc, young)
	assert.NoError(t, err)
	assert.Equal(t, sq, pl)

	st, err := async.Collect(async.FilterPath(async.FromSlice(ctx, coll), ageAcc, young))
	assert.NoError(t, err)
	assert.Equal(t, sq, st)
}

func TestMapAgreesAcrossStrategies(t *testing.T) {
	ctx := context.Background()
	coll := people()
	upper := func(n string) string { return strings.ToUpper(n) }

	sq, err := seq.Map(coll, nameAcc, upper)
	assert.NoError(t, err)
	assert.Equal(t, []string{"ALICE", "BOB", "CHARLIE"}, sq)

	pl, err := par.Map(ctx, newPool(t, 2), coll, nameAcc, upper)
	assert.NoError(t, err)
	assert.Equal(t, sq, pl)

	st, err := async.Collect(async.MapPath(async.FromSlice(ctx, coll), nameAcc, upper))
	assert.NoError(t, err)
	assert.Equal(t, sq, st)
}

func TestFoldAgreesAcrossStrategies(t *testing.T) {
	ctx := context.Background()
	coll := people()
	sum := func(acc, age int) int { return acc + age }

	sq, err := seq.Fold(coll, ageAcc, 0, sum)
	assert.NoError(t, err)
	assert.Equal(t, 90, sq)

	pl, err := par.Fold(ctx, newPool(t, 2), coll, ageAcc, 0, sum, sum)
	assert.NoError(t, err)
	assert.Equal(t, 90, pl)

	st, err := async.Fold(async.FromSlice(ctx, coll), ageAcc, 0, sum)
	assert.NoError(t, err)
	assert.Equal(t, 90, st)
}

func TestSortAgreesAndIsStable(t *testing.T) {
	ctx := context.Background()
	coll := []person{
		{name: "Alice", age: 30},
		{name: "Bob", age: 25},
		{name: "Charlie", age: 35},
		{name: "Dan", age: 25},
	}
	byAge := func(a, b int) int { return a - b }

	sq, err := seq.Sort(coll, ageAcc, byAge)
	assert.NoError(t, err)
	// Bob precedes Dan: equal keys keep input order.
	assert.Equal(t, []string{"Bob", "Dan", "Alice", "Charlie"}, names(t, sq))
	// Input untouched.
	assert.Equal(t, "Alice", coll[0].name)

	pl, err := par.Sort(ctx, newPool(t, 2), coll, ageAcc, byAge)
	assert.NoError(t, err)
	assert.Equal(t, sq, pl)

	// Sorting a sorted collection is a no-op.
	again, err := seq.Sort(sq, ageAcc, byAge)
	assert.NoError(t, err)
	assert.Equal(t, sq, again)
}

func TestGroupAgreesAcrossStrategies(t *testing.T) {
	ctx := context.Background()
	coll := people()
	bucket := func(age int) string {
		if age < 30 {
			return "young"
		}
		return "adult"
	}

	sq, err := seq.Group(coll, ageAcc, bucket)
	assert.NoError(t, err)
	assert.Equal(t, []string{"Alice", "Charlie"}, names(t, sq["adult"]))
	assert.Equal(t, []string{"Bob"}, names(t, sq["young"]))

	pl, err := par.Group(ctx, newPool(t, 2), coll, ageAcc, bucket)
	assert.NoError(t, err)
	assert.Equal(t, sq, pl)
}

func TestPartitionAgreesAcrossStrategies(t *testing.T) {
	ctx := context.Background()
	coll := people()
	adult := func(age int) bool { return age >= 30 }

	sqMatch, sqRest, err := seq.Partition(coll, ageAcc, adult)
	assert.NoError(t, err)
	assert.Equal(t, []string{"Alice", "Charlie"}, names(t, sqMatch))
	assert.Equal(t, []string{"Bob"}, names(t, sqRest))

	plMatch, plRest, err := par.Partition(ctx, newPool(t, 3), coll, ageAcc, adult)
	assert.NoError(t, err)
	assert.Equal(t, sqMatch, plMatch)
	assert.Equal(t, sqRest, plRest)
}

func TestZipAgreesAcrossStrategies(t *testing.T) {
	ctx := context.Background()
	left := []person{{name: "A"}, {name: "B"}}
	right := []person{{name: "C"}, {name: "D"}}
	join := func(a, b string) string { return a + "&" + b }

	sq, err := seq.Zip(left, right, nameAcc, nameAcc, join)
	assert.NoError(t, err)
	assert.Equal(t, []string{"A&C", "B&D"}, sq)

	pl, err := par.Zip(ctx, newPool(t, 2), left, right, nameAcc, nameAcc, join)
	assert.NoError(t, err)
	assert.Equal(t, sq, pl)
}

func TestWindowAndRollingBoundaries(t *testing.T) {
	ctx := context.Background()
	coll := people()
	sum := func(ages []int) int {
		total := 0
		for _, a := range ages {
			total += a
		}
		return total
	}

	sq, err := seq.Window(coll, ageAcc, 2, sum)
	assert.NoError(t, err)
	assert.Equal(t, []int{55, 60}, sq)

	pl, err := par.Window(ctx, newPool(t, 2), coll, ageAcc, 2, sum)
	assert.NoError(t, err)
	assert.Equal(t, sq, pl)

	// Oversized window is a collection error for Window but an empty result
	// for Rolling.
	_, err = seq.Window(coll, ageAcc, 4, sum)
	assert.ErrorIs(t, err, keypath.ErrCollection)

	roll, err := seq.Rolling(coll, ageAcc, 4, sum)
	assert.NoError(t, err)
	assert.Empty(t, roll)

	plRoll, err := par.Rolling(ctx, newPool(t, 2), coll, ageAcc, 4, sum)
	assert.NoError(t, err)
	assert.Empty(t, plRoll)

	_, err = seq.Window(coll, ageAcc, 0, sum)
	assert.ErrorIs(t, err, keypath.ErrCollection)
	_, err = seq.Rolling(coll, ageAcc, 0, sum)
	assert.ErrorIs(t, err, keypath.ErrCollection)
}

// TestDispatchedScenario runs one end-to-end scenario through the strategy
// dispatcher under every mode and cross-checks the results.
func TestDispatchedScenario(t *testing.T) {
	ctx := context.Background()
	coll := people()

	for _, st := range []exec.Strategy{exec.Sequential(), exec.Parallel(2), exec.Async()} {
		named, err := exec.Collect(ctx, st, coll, nameAcc)
		assert.NoError(t, err, st.String())
		assert.Equal(t, []string{"Alice", "Bob", "Charlie"}, named, st.String())

		match, found, err := exec.Find(ctx, st, coll, ageAcc, func(a int) bool { return a > 30 })
		assert.NoError(t, err, st.String())
		assert.True(t, found, st.String())
		assert.Equal(t, "Charlie", match.name, st.String())

		n, err := exec.Count(ctx, st, coll, ageAcc, func(a int) bool { return a >= 30 })
		assert.NoError(t, err, st.String())
		assert.Equal(t, 2, n, st.String())

		anyHit, err := exec.Any(ctx, st, coll, nameAcc, func(n string) bool { return n == "Bob" })
		assert.NoError(t, err, st.String())
		assert.True(t, anyHit, st.String())

		all, err := exec.All(ctx, st, coll, ageAcc, func(a int) bool { return a > 20 })
		assert.NoError(t, err, st.String())
		assert.True(t, all, st.String())
	}
}

// TestFailureLeavesNoPartialOutput checks that an absent value aborts the
// whole operation under every strategy, with the vocabulary error preserved
// and no partial slice handed back.
func TestFailureLeavesNoPartialOutput(t *testing.T) {
	ctx := context.Background()
	coll := people()
	flaky := keypath.New(func(p person) (int, bool) {
		if p.name == "Bob" {
			return 0, false
		}
		return p.age, true
	})

	sq, err := seq.Map(coll, flaky, func(a int) int { return a })
	assert.ErrorIs(t, err, keypath.ErrInvalidAccess)
	assert.Nil(t, sq)

	pl, err := par.Map(ctx, newPool(t, 2), coll, flaky, func(a int) int { return a })
	assert.ErrorIs(t, err, keypath.ErrInvalidAccess)
	assert.Nil(t, pl)

	st, err := async.Collect(async.MapPath(async.FromSlice(ctx, coll), flaky, func(a int) int { return a }))
	assert.ErrorIs(t, err, keypath.ErrInvalidAccess)
	assert.Nil(t, st)
}

func TestComposedAccessorAcrossStrategies(t *testing.T) {
	ctx := context.Background()
	type team struct {
		lead person
	}
	teams := []team{
		{lead: person{name: "Alice", age: 30}},
		{lead: person{name: "Bob", age: 25}},
	}
	leadName := keypath.Then(keypath.Field(func(t team) person { return t.lead }), nameAcc)

	for _, st := range []exec.Strategy{exec.Sequential(), exec.Parallel(2), exec.Async()} {
		got, err := exec.Collect(ctx, st, teams, leadName)
		assert.NoError(t, err, st.String())
		assert.Equal(t, []string{"Alice", "Bob"}, got, st.String())
	}
}

func names(t *testing.T, coll []person) []string {
	t.Helper()
	out, err := seq.Collect(coll, nameAcc)
	assert.NoError(t, err)
	return out
}

package people_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"peoplereg/internal/people"
	"peoplereg/internal/people/metrics"
	"peoplereg/internal/people/models"
	"peoplereg/pkg/platform/strings"
	bdd "peoplereg/pkg/testutil"
)

func TestRegistryScenario(t *testing.T) {
	bdd.Given(t, "an empty registry with metrics", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		sys := people.NewSystem(nil, metrics.New(reg))

		bdd.When(t, "a person with a valid address is added", func(t *testing.T) {
			p, err := models.NewPerson(strings.Ptr("Maria"), 30, strings.Ptr("Maria@Email.com"))
			require.NoError(t, err)

			addr := models.TryCreateAddress(strings.Ptr("Av. Paulista"), strings.Ptr("São Paulo"))
			require.True(t, addr.IsOk())
			require.True(t, p.TryAddAddress(addr.MustValue()).IsOk())

			r := sys.TryAddPerson(p)
			require.True(t, r.IsOk())

			bdd.Then(t, "she can be found by email", func(t *testing.T) {
				found := sys.FindPersonByEmail(strings.Ptr("maria@email.com"))
				require.NotNil(t, found)
				assert.Len(t, found.Addresses(), 1)
				assert.Equal(t, "Maria", *sys.FindNameByEmail(strings.Ptr("maria@email.com"), nil))
			})

			bdd.And(t, "the registry state is valid", func(t *testing.T) {
				assert.NoError(t, sys.ValidateSystemState())
			})

			bdd.And(t, "the addition is counted", func(t *testing.T) {
				count, err := testutil.GatherAndCount(reg, "peoplereg_people_added_total")
				require.NoError(t, err)
				assert.Equal(t, 1, count)
			})
		})

		bdd.When(t, "someone with the same name is added", func(t *testing.T) {
			twin, err := models.NewPerson(strings.Ptr("Maria"), 55, nil)
			require.NoError(t, err)

			r := sys.TryAddPerson(twin)

			bdd.Then(t, "it is rejected and the registry is unchanged", func(t *testing.T) {
				assert.False(t, r.IsOk())
				assert.EqualError(t, r.Err(), "A person with this name already exists")
				assert.Equal(t, 1, sys.Len())
			})
		})
	})
}

func TestNewSystemWithoutObservability(t *testing.T) {
	sys := people.NewSystem(nil, nil)
	var p *people.Person
	r := sys.TryAddPerson(p)
	assert.EqualError(t, r.Err(), "Person cannot be null")
	assert.Equal(t, 0, sys.Len())
}

func TestSystemsShareMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	var first, second *people.System
	require.NotPanics(t, func() {
		first = people.NewSystem(nil, m)
		second = people.NewSystem(nil, m)
	})

	for _, name := range []string{"Ana", "Bia"} {
		p, err := models.NewPerson(strings.Ptr(name), 20, nil)
		require.NoError(t, err)
		require.True(t, first.TryAddPerson(p).IsOk())
	}
	p, err := models.NewPerson(strings.Ptr("Ana"), 20, nil)
	require.NoError(t, err)
	require.True(t, second.TryAddPerson(p).IsOk(), "name uniqueness is per system")

	assert.Equal(t, 3.0, testutil.ToFloat64(m.PeopleAdded))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.PeopleStored), "stored gauge sums across systems")
	assert.Equal(t, 2, first.Len())
	assert.Equal(t, 1, second.Len())
}

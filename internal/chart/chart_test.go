package chart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stakeledger/stakeledger/internal/aggregate"
)

type entry struct {
	key    string
	amount int64
}

func groups(entries ...entry) aggregate.Groups {
	return aggregate.GroupSum(entries,
		func(e entry) string { return e.key },
		func(e entry) decimal.Decimal { return decimal.NewFromInt(e.amount) },
	)
}

func TestPie(t *testing.T) {
	g := groups(entry{"Salary", 100}, entry{"Gift", 50}, entry{"Salary", 25})
	s := Pie(g, IncomePalette)
	require.Len(t, s, 2)
	assert.Equal(t, "Salary", s[0].Label)
	assert.True(t, s[0].Value.Equal(decimal.NewFromInt(125)))
	assert.Equal(t, IncomePalette[0], s[0].Color)
	assert.Equal(t, IncomePalette[1], s[1].Color)
	assert.True(t, s.Total().Equal(decimal.NewFromInt(175)))
}

func TestPie_CyclesPalette(t *testing.T) {
	g := groups(entry{"a", 1}, entry{"b", 1}, entry{"c", 1})
	s := Pie(g, []string{"#000", "#fff"})
	assert.Equal(t, "#000", s[2].Color)

	s = Pie(g, nil)
	assert.Empty(t, s[0].Color)
}

func TestShares(t *testing.T) {
	s := Pie(groups(entry{"a", 1}, entry{"b", 3}), nil)
	shares := s.Shares()
	assert.True(t, shares[0].Equal(decimal.NewFromInt(25)), "got %s", shares[0])
	assert.True(t, shares[1].Equal(decimal.NewFromInt(75)), "got %s", shares[1])

	empty := Series{{Label: "a"}}
	assert.True(t, empty.Shares()[0].IsZero())
}

func TestCompare(t *testing.T) {
	income := groups(entry{"Project A", 100}, entry{"Personal", 20})
	expense := groups(entry{"Project A", 30}, entry{"Unlisted", 999})

	c := Compare([]string{"Project A", "Project B", "Personal"}, income, expense)
	require.Len(t, c, 3)
	assert.True(t, c[0].Income.Equal(decimal.NewFromInt(100)))
	assert.True(t, c[0].Expense.Equal(decimal.NewFromInt(30)))
	assert.True(t, c[1].Income.IsZero())
	assert.True(t, c[1].Expense.IsZero())
	assert.True(t, c[2].Income.Equal(decimal.NewFromInt(20)))
	assert.True(t, c.Max().Equal(decimal.NewFromInt(100)), "unlisted keys are ignored")
}

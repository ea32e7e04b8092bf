package aggregate

import (
	"fmt"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stakeledger/stakeledger/internal/paging"
)

type row struct {
	Name     string
	Category string
	Amount   decimal.Decimal
}

var rowSpec = Spec[row]{
	Fields: func(r row) []string { return []string{r.Name, r.Category} },
	Key:    func(r row) string { return r.Category },
	Amount: func(r row) decimal.Decimal { return r.Amount },
}

func rows(n int) []row {
	cats := []string{"Food", "Transport", "Housing"}
	out := make([]row, n)
	for i := range out {
		out[i] = row{
			Name:     fmt.Sprintf("Item %02d", i),
			Category: cats[i%len(cats)],
			Amount:   decimal.NewFromInt(int64(i + 1)),
		}
	}
	return out
}

func sample() []row {
	return []row{
		{Name: "Groceries", Category: "Food", Amount: decimal.RequireFromString("30.50")},
		{Name: "Bus pass", Category: "Transport", Amount: decimal.RequireFromString("20")},
		{Name: "Dinner out", Category: "Food", Amount: decimal.RequireFromString("45.25")},
		{Name: "Rent", Category: "Housing", Amount: decimal.RequireFromString("900")},
	}
}

func TestFilter_EmptyQueryReturnsAll(t *testing.T) {
	in := sample()
	got := Filter(in, "", rowSpec.Fields)
	assert.Equal(t, in, got)
}

func TestFilter_CaseInsensitive(t *testing.T) {
	got := Filter(sample(), "FOOD", rowSpec.Fields)
	require.Len(t, got, 2)
	assert.Equal(t, "Groceries", got[0].Name)
	assert.Equal(t, "Dinner out", got[1].Name)

	got = Filter(sample(), "pass", rowSpec.Fields)
	require.Len(t, got, 1)
	assert.Equal(t, "Bus pass", got[0].Name)
}

func TestFilter_SoundAndComplete(t *testing.T) {
	in := sample()
	for _, q := range []string{"o", "r", "us", "HOUSING", "zzz", "Dinner"} {
		got := Filter(in, q, rowSpec.Fields)
		kept := make(map[string]bool)
		for _, r := range got {
			kept[r.Name] = true
			assert.True(t, matches(rowSpec.Fields(r), strings.ToLower(q)), "%q kept %q", q, r.Name)
		}
		for _, r := range in {
			if !kept[r.Name] {
				assert.False(t, matches(rowSpec.Fields(r), strings.ToLower(q)), "%q dropped %q", q, r.Name)
			}
		}
	}
}

func TestGroupSum_FirstOccurrenceOrder(t *testing.T) {
	g := GroupSum(sample(), rowSpec.Key, rowSpec.Amount)
	assert.Equal(t, []string{"Food", "Transport", "Housing"}, g.Keys())
	assert.True(t, g.Get("Food").Equal(decimal.RequireFromString("75.75")))
	assert.True(t, g.Get("Housing").Equal(decimal.NewFromInt(900)))
	assert.True(t, g.Get("Missing").IsZero())
	assert.False(t, g.Has("Missing"))
}

func TestGroupSum_TotalMatchesRecords(t *testing.T) {
	in := rows(17)
	g := GroupSum(in, rowSpec.Key, rowSpec.Amount)

	want := decimal.Zero
	for _, r := range in {
		want = want.Add(r.Amount)
	}
	assert.True(t, g.Total().Equal(want), "got %s want %s", g.Total(), want)
}

func TestGroupSum_Empty(t *testing.T) {
	g := GroupSum(nil, rowSpec.Key, rowSpec.Amount)
	assert.Equal(t, 0, g.Len())
	assert.Empty(t, g.Items())
	assert.True(t, g.Total().IsZero())
}

func TestPaginate_ReconstructsInput(t *testing.T) {
	in := rows(12)
	for size := 1; size <= 13; size++ {
		total, err := paging.TotalPages(len(in), size)
		require.NoError(t, err)

		var joined []row
		for p := 1; p <= total; p++ {
			page, err := Paginate(in, p, size)
			require.NoError(t, err)
			joined = append(joined, page...)
		}
		assert.Equal(t, in, joined, "page size %d", size)
	}
}

func TestPaginate_Rejects(t *testing.T) {
	in := rows(12)
	_, err := Paginate(in, 1, 0)
	assert.ErrorIs(t, err, paging.ErrInvalidPageSize)

	_, err = Paginate(in, 4, 5)
	assert.ErrorIs(t, err, paging.ErrPageOutOfRange)
}

func TestRun_TwelveRecords(t *testing.T) {
	in := rows(12)
	res, err := Run(in, Query{Page: 1, PageSize: 5, MaxButtons: 5}, rowSpec)
	require.NoError(t, err)
	assert.Equal(t, 3, res.TotalPages)
	assert.Equal(t, in[0:5], res.Page)
	assert.Equal(t, []int{1, 2, 3}, res.Window)

	res, err = Run(in, Query{Page: 3, PageSize: 5}, rowSpec)
	require.NoError(t, err)
	assert.Equal(t, in[10:12], res.Page)
	assert.Nil(t, res.Window)
}

func TestRun_ClampsPage(t *testing.T) {
	in := rows(12)
	res, err := Run(in, Query{Page: 9, PageSize: 5}, rowSpec)
	require.NoError(t, err)
	assert.Equal(t, 3, res.PageIndex)
	assert.Equal(t, in[10:12], res.Page)

	res, err = Run(in, Query{Page: -2, PageSize: 5}, rowSpec)
	require.NoError(t, err)
	assert.Equal(t, 1, res.PageIndex)
}

func TestRun_NoMatch(t *testing.T) {
	res, err := Run(sample(), Query{Text: "xyz", Page: 1, PageSize: 5}, rowSpec)
	require.NoError(t, err)
	assert.Empty(t, res.Filtered)
	assert.Equal(t, 0, res.Grouped.Len())
	assert.Equal(t, 0, res.TotalPages)
	assert.Empty(t, res.Page)
	assert.Equal(t, 1, res.PageIndex)
}

func TestRun_GroupsFilteredOnly(t *testing.T) {
	res, err := Run(sample(), Query{Text: "food", Page: 1, PageSize: 5}, rowSpec)
	require.NoError(t, err)
	assert.Equal(t, []string{"Food"}, res.Grouped.Keys())
	assert.True(t, res.Grouped.Total().Equal(decimal.RequireFromString("75.75")))
}

func TestRun_InvalidPageSize(t *testing.T) {
	_, err := Run(sample(), Query{Page: 1, PageSize: 0}, rowSpec)
	assert.ErrorIs(t, err, paging.ErrInvalidPageSize)
}

func TestRun_PageDoesNotAliasFiltered(t *testing.T) {
	res, err := Run(rows(12), Query{Page: 1, PageSize: 5}, rowSpec)
	require.NoError(t, err)
	require.Len(t, res.Page, 5)

	res.Page = append(res.Page, row{Name: "extra"})
	assert.Equal(t, "Item 05", res.Filtered[5].Name)
}

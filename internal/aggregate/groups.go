package aggregate

import "github.com/shopspring/decimal"

// Group is one key and its summed amount.
type Group struct {
	Key string
	Sum decimal.Decimal
}

// Groups is an insertion-ordered key -> sum mapping.
type Groups struct {
	items []Group
	index map[string]int
}

func (g *Groups) add(key string, amount decimal.Decimal) {
	if g.index == nil {
		g.index = make(map[string]int)
	}
	i, ok := g.index[key]
	if !ok {
		i = len(g.items)
		g.index[key] = i
		g.items = append(g.items, Group{Key: key, Sum: decimal.Zero})
	}
	g.items[i].Sum = g.items[i].Sum.Add(amount)
}

// Len returns the number of distinct keys.
func (g Groups) Len() int { return len(g.items) }

// Items returns the groups in first-occurrence order.
func (g Groups) Items() []Group {
	return append([]Group(nil), g.items...)
}

// Keys returns the group keys in first-occurrence order.
func (g Groups) Keys() []string {
	keys := make([]string, len(g.items))
	for i, it := range g.items {
		keys[i] = it.Key
	}
	return keys
}

// Get returns the sum for key, or zero when the key is absent.
func (g Groups) Get(key string) decimal.Decimal {
	if i, ok := g.index[key]; ok {
		return g.items[i].Sum
	}
	return decimal.Zero
}

// Has reports whether key occurred.
func (g Groups) Has(key string) bool {
	_, ok := g.index[key]
	return ok
}

// Total returns the sum over all groups.
func (g Groups) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range g.items {
		total = total.Add(it.Sum)
	}
	return total
}

package rules

import (
	"cmp"
	"math"
	"slices"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/colgraph/components"
	"github.com/katalvlaran/colgraph/core"
	"github.com/katalvlaran/colgraph/indexer"
)

// Record is one (transaction, item) row. Weight is read only when mining
// weighted support.
type Record[T comparable] struct {
	Transaction T
	Item        string
	Weight      float64
}

// Itemset is a frequent itemset; Items follow first-seen item order.
type Itemset struct {
	Items   []string
	Support float64
}

// ItemRule is the output row of one frequent item.
type ItemRule struct {
	Item    string
	Support float64
	// Lift is the mean lift of the retained rules, 0 when there are none.
	Lift float64
	// Pattern is the 1-based component of the item in the rule graph.
	Pattern uint32
	// Consequents, Confidences and Lifts are parallel, best rule first.
	Consequents []string
	Confidences []float64
	Lifts       []float64
}

// Result is the outcome of Mine.
type Result struct {
	// Items has one row per frequent item in first-seen order.
	Items []ItemRule
	// Itemsets lists every frequent itemset by size, then lexicographically.
	Itemsets []Itemset
	// Transactions is the number of distinct transactions.
	Transactions int
	// Truncated reports that MaxCandidates stopped mining early.
	Truncated bool
}

// Mine groups records into transactions, finds frequent itemsets and derives
// the rules of every frequent item. No records yields an empty result.
//
// Errors: core.ErrInvalidOption, core.ErrNegativeWeight (weighted only).
func Mine[T comparable](records []Record[T], opts ...Option) (*Result, error) {
	cfg, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}

	m, err := group(records, cfg)
	if err != nil {
		return nil, err
	}

	return m.mine()
}

// entry is one distinct item of a transaction.
type entry struct {
	item   int
	weight float64
}

// miner is the per-call state of Mine.
type miner struct {
	cfg   Options
	items *indexer.Indexer[string]
	txs   [][]entry // sorted by item id
	total float64   // support denominator

	support   []float64 // per item
	frequent  []bool    // per item
	levels    []level   // levels[k-1] holds the frequent k-itemsets
	truncated bool
}

// group builds the transaction table.
func group[T comparable](records []Record[T], cfg Options) (*miner, error) {
	m := &miner{cfg: cfg, items: indexer.New[string](0)}
	txIndex := indexer.New[T](0)

	var weightSum float64
	for i, r := range records {
		if cfg.Weighted && (r.Weight < 0 || math.IsNaN(r.Weight) || math.IsInf(r.Weight, 1)) {
			return nil, errors.Wrapf(core.ErrNegativeWeight, "rules: record %d has weight %v", i, r.Weight)
		}
		t := txIndex.ID(r.Transaction)
		if t == len(m.txs) {
			m.txs = append(m.txs, nil)
		}
		m.txs[t] = append(m.txs[t], entry{item: m.items.ID(r.Item), weight: r.Weight})
		weightSum += r.Weight
	}

	// Merge repeated items; the stable sort keeps weights summed in input order.
	for t, es := range m.txs {
		slices.SortStableFunc(es, func(a, b entry) int { return cmp.Compare(a.item, b.item) })
		out := es[:0]
		for _, e := range es {
			if n := len(out); n > 0 && out[n-1].item == e.item {
				out[n-1].weight += e.weight
				continue
			}
			out = append(out, e)
		}
		m.txs[t] = out
	}

	m.total = float64(len(m.txs))
	if cfg.Weighted {
		m.total = weightSum
	}

	return m, nil
}

// ratio divides by the support denominator, giving 0 when it is empty.
func (m *miner) ratio(x float64) float64 {
	if m.total == 0 {
		return 0
	}

	return x / m.total
}

// contribution is what one transaction adds to an itemset it contains.
func (m *miner) contribution(minWeight float64) float64 {
	if m.cfg.Weighted {
		return minWeight
	}

	return 1
}

func (m *miner) mine() (*Result, error) {
	res := &Result{
		Items:        []ItemRule{},
		Itemsets:     []Itemset{},
		Transactions: len(m.txs),
	}
	if len(m.txs) == 0 {
		return res, nil
	}

	m.singles()
	m.pairs()
	for k := 3; k <= m.cfg.MaxItemsetSize && !m.truncated; k++ {
		if !m.grow(k) {
			break
		}
	}
	res.Truncated = m.truncated

	for _, lv := range m.levels {
		for i, set := range lv.sets {
			res.Itemsets = append(res.Itemsets, Itemset{Items: m.names(set), Support: lv.support[i]})
		}
	}
	items, err := m.itemRules()
	if err != nil {
		return nil, err
	}
	res.Items = items

	m.cfg.Logger.Debug("rules: mined",
		zap.Int("transactions", len(m.txs)),
		zap.Int("items", m.items.Len()),
		zap.Int("levels", len(m.levels)),
		zap.Int("itemsets", len(res.Itemsets)),
		zap.Int("rows", len(res.Items)),
		zap.Bool("weighted", m.cfg.Weighted),
	)

	return res, nil
}

// rule is one retained a→c rule, stored under its antecedent.
type rule struct {
	consequent int
	confidence float64
	lift       float64
}

// itemRules derives the rules of every frequent pair and labels patterns.
func (m *miner) itemRules() ([]ItemRule, error) {
	n := m.items.Len()
	byItem := make([][]rule, n)
	if len(m.levels) > 1 {
		pairs := m.levels[1]
		for i, set := range pairs.sets {
			m.addRule(byItem, set[0], set[1], pairs.support[i])
			m.addRule(byItem, set[1], set[0], pairs.support[i])
		}
	}

	var (
		edges []core.Edge
		keys  []int
	)
	for a := 0; a < n; a++ {
		rs := byItem[a]
		slices.SortFunc(rs, func(x, y rule) int {
			if c := cmp.Compare(y.confidence, x.confidence); c != 0 {
				return c
			}
			return cmp.Compare(x.consequent, y.consequent)
		})
		if k := m.cfg.MaxConsequents; k > 0 && len(rs) > k {
			rs = rs[:k]
		}
		byItem[a] = rs
		for _, r := range rs {
			edges = append(edges, core.Edge{From: a, To: r.consequent})
		}
		if m.frequent[a] {
			keys = append(keys, a)
		}
	}

	labels, _, err := components.LabelRows(n, edges, keys)
	if err != nil {
		return nil, errors.Wrap(err, "rules: patterns")
	}

	rows := make([]ItemRule, len(keys))
	for i, a := range keys {
		rs := byItem[a]
		row := ItemRule{
			Item:        m.items.Value(a),
			Support:     m.support[a],
			Pattern:     uint32(labels[i]),
			Consequents: make([]string, len(rs)),
			Confidences: make([]float64, len(rs)),
			Lifts:       make([]float64, len(rs)),
		}
		for j, r := range rs {
			row.Consequents[j] = m.items.Value(r.consequent)
			row.Confidences[j] = r.confidence
			row.Lifts[j] = r.lift
			row.Lift += r.lift
		}
		if len(rs) > 0 {
			row.Lift /= float64(len(rs))
		}
		rows[i] = row
	}

	return rows, nil
}

// addRule keeps a→c if its confidence reaches MinConfidence.
func (m *miner) addRule(byItem [][]rule, a, c int, pairSupport float64) {
	if m.support[a] == 0 {
		return
	}
	conf := pairSupport / m.support[a]
	if conf < m.cfg.MinConfidence {
		return
	}
	var lift float64
	if m.support[c] > 0 {
		lift = conf / m.support[c]
	}
	byItem[a] = append(byItem[a], rule{consequent: c, confidence: conf, lift: lift})
}

func (m *miner) names(set []int) []string {
	out := make([]string, len(set))
	for i, id := range set {
		out[i] = m.items.Value(id)
	}

	return out
}

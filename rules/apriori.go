package rules

import (
	"encoding/binary"
	"math"
	"slices"

	"go.uber.org/zap"
)

// level is the frequent itemsets of one size, sorted lexicographically by
// item id, with their supports.
type level struct {
	sets    [][]int
	support []float64
}

// singles scores every item and records the frequent ones as level 1.
func (m *miner) singles() {
	n := m.items.Len()
	sums := make([]float64, n)
	for _, es := range m.txs {
		for _, e := range es {
			sums[e.item] += m.contribution(e.weight)
		}
	}

	m.support = make([]float64, n)
	m.frequent = make([]bool, n)
	var lv level
	for a := 0; a < n; a++ {
		m.support[a] = m.ratio(sums[a])
		if m.support[a] >= m.cfg.MinSupport {
			m.frequent[a] = true
			lv.sets = append(lv.sets, []int{a})
			lv.support = append(lv.support, m.support[a])
		}
	}
	m.levels = append(m.levels, lv)
}

// pairs counts co-occurring frequent items in small enough transactions.
func (m *miner) pairs() {
	if m.cfg.MaxItemsetSize < 2 {
		return
	}

	counts := make(map[uint64]float64)
	var (
		i, j int
		key  uint64
		ok   bool
	)
	for _, es := range m.txs {
		if len(es) > m.cfg.MaxItemsetSize {
			continue
		}
		for i = 0; i < len(es); i++ {
			if !m.frequent[es[i].item] {
				continue
			}
			for j = i + 1; j < len(es); j++ {
				if !m.frequent[es[j].item] {
					continue
				}
				key = uint64(es[i].item)<<32 | uint64(es[j].item)
				if _, ok = counts[key]; !ok && len(counts) >= m.cfg.MaxCandidates {
					m.truncate(2)
					return
				}
				counts[key] += m.contribution(math.Min(es[i].weight, es[j].weight))
			}
		}
	}

	keys := make([]uint64, 0, len(counts))
	for key = range counts {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	var lv level
	for _, key = range keys {
		s := m.ratio(counts[key])
		if s < m.cfg.MinSupport {
			continue
		}
		lv.sets = append(lv.sets, []int{int(key >> 32), int(key & math.MaxUint32)})
		lv.support = append(lv.support, s)
	}
	if len(lv.sets) > 0 {
		m.levels = append(m.levels, lv)
	}
}

// grow mines the frequent k-itemsets, k ≥ 3, from level k-1. It reports
// whether any were found.
func (m *miner) grow(k int) bool {
	if len(m.levels) != k-1 {
		return false
	}
	cands := m.candidates(m.levels[k-2], k)
	if m.truncated || len(cands) == 0 {
		return false
	}

	// stamp marks the items of the transaction being scanned.
	n := m.items.Len()
	stamp := make([]int, n)
	weight := make([]float64, n)
	counts := make([]float64, len(cands))
	var (
		minW float64
		hit  bool
	)
	for t, es := range m.txs {
		if len(es) > m.cfg.MaxItemsetSize || len(es) < k {
			continue
		}
		for _, e := range es {
			stamp[e.item] = t + 1
			weight[e.item] = e.weight
		}
		for c, set := range cands {
			minW, hit = math.Inf(1), true
			for _, x := range set {
				if stamp[x] != t+1 {
					hit = false
					break
				}
				minW = math.Min(minW, weight[x])
			}
			if hit {
				counts[c] += m.contribution(minW)
			}
		}
	}

	var lv level
	for c, set := range cands {
		if s := m.ratio(counts[c]); s >= m.cfg.MinSupport {
			lv.sets = append(lv.sets, set)
			lv.support = append(lv.support, s)
		}
	}
	if len(lv.sets) == 0 {
		return false
	}
	m.levels = append(m.levels, lv)

	return true
}

// candidates joins itemsets of prev sharing their first k-2 items and keeps
// the joins whose every (k-1)-subset is in prev. Output stays sorted.
func (m *miner) candidates(prev level, k int) [][]int {
	known := make(map[string]struct{}, len(prev.sets))
	var buf []byte
	for _, set := range prev.sets {
		buf = setKey(buf[:0], set, -1)
		known[string(buf)] = struct{}{}
	}

	var out [][]int
	for i := 0; i < len(prev.sets); i++ {
		for j := i + 1; j < len(prev.sets) && slices.Equal(prev.sets[i][:k-2], prev.sets[j][:k-2]); j++ {
			cand := append(slices.Clone(prev.sets[i]), prev.sets[j][k-2])
			closed := true
			for drop := 0; drop < k-2 && closed; drop++ {
				buf = setKey(buf[:0], cand, drop)
				_, closed = known[string(buf)]
			}
			if !closed {
				continue
			}
			if len(out) >= m.cfg.MaxCandidates {
				m.truncate(k)
				return nil
			}
			out = append(out, cand)
		}
	}

	return out
}

// setKey appends the varint encoding of set without position skip.
func setKey(buf []byte, set []int, skip int) []byte {
	for i, x := range set {
		if i != skip {
			buf = binary.AppendUvarint(buf, uint64(x))
		}
	}

	return buf
}

func (m *miner) truncate(k int) {
	m.truncated = true
	m.cfg.Logger.Warn("rules: candidate limit reached",
		zap.Int("level", k),
		zap.Int("limit", m.cfg.MaxCandidates),
		zap.Int("kept_levels", len(m.levels)),
	)
}

// Package level partitions a category's clues into deterministic level packs.
//
// Packs are built by grouping clues on answer length, visiting the groups in
// ascending length order and slicing each group, in bank order, into
// consecutive packs of a fixed size. Leftovers smaller than a pack are dropped.
// The position of a pack in the result is its zero-based level index.
package level

import (
	"sort"
	"sync"

	"github.com/samber/lo"

	"github.com/robalobadob/wordy/internal/bank"
)

// Pack is the ordered set of clues played together as one level.
type Pack []bank.Clue

// Build partitions clues belonging to category into packs of size k.
// It never fails: an empty input or k < 1 yields no packs.
func Build(clues []bank.Clue, category string, k int) []Pack {
	if k < 1 {
		return nil
	}
	inCategory := lo.Filter(clues, func(c bank.Clue, _ int) bool { return c.Category == category })
	groups := lo.GroupBy(inCategory, func(c bank.Clue) int { return c.Len() })

	lengths := lo.Keys(groups)
	sort.Ints(lengths)

	var packs []Pack
	for _, n := range lengths {
		group := groups[n]
		full := len(group) / k * k
		for _, chunk := range lo.Chunk(group[:full], k) {
			packs = append(packs, Pack(chunk))
		}
	}
	return packs
}

// Partitioner builds packs once per category and caches them.
type Partitioner struct {
	bank *bank.Bank
	size int

	mu    sync.Mutex
	packs map[string][]Pack
}

// NewPartitioner returns a Partitioner producing packs of size k from b.
func NewPartitioner(b *bank.Bank, k int) *Partitioner {
	return &Partitioner{bank: b, size: k, packs: make(map[string][]Pack)}
}

// Categories lists the bank's categories in first-appearance order.
func (p *Partitioner) Categories() []string { return p.bank.Categories() }

// Size is the configured pack size.
func (p *Partitioner) Size() int { return p.size }

// Packs returns every pack of category in level order.
func (p *Partitioner) Packs(category string) []Pack {
	p.mu.Lock()
	defer p.mu.Unlock()
	if packs, ok := p.packs[category]; ok {
		return packs
	}
	packs := Build(p.bank.Clues(), category, p.size)
	p.packs[category] = packs
	return packs
}

// Count is the number of levels available in category.
func (p *Partitioner) Count(category string) int {
	return len(p.Packs(category))
}

// Pack returns the pack for a one-based level number.
// ok is false when the level is past the end of the category.
func (p *Partitioner) Pack(category string, levelNumber int) (Pack, bool) {
	packs := p.Packs(category)
	i := levelNumber - 1
	if i < 0 || i >= len(packs) {
		return nil, false
	}
	return packs[i], true
}

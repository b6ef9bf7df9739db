// Package glossary builds an abbreviation glossary from a library of
// extracted payslip records. Page one abbreviates earning descriptions
// severely; page two spells them out. Matching the two sides by equal summed
// amounts recovers unambiguous short-to-long mappings.
package glossary

import (
	"fmt"
	"sort"
	"strings"

	"github.com/payrollkit/payslip/internal/payslip"
)

// Entry is one many-to-many group of equivalent descriptions.
type Entry struct {
	Shorts []string
	Longs  []string
}

type pair struct {
	short string
	long  string
}

// Build derives glossary entries from records. It fails when a description
// pair would bridge two existing groups, which means the amount matching
// produced contradictory evidence.
func Build(records []*payslip.Record) ([]Entry, error) {
	pairSet := make(map[pair]bool)

	for _, record := range records {
		collectPairs(pairSet, record.Stem.TaxedEarnings,
			record.Body.PriorPeriodTaxedEarnings, record.Body.CurrentPeriodTaxedEarnings)
		collectPairs(pairSet, record.Stem.UntaxedEarnings,
			record.Body.PriorPeriodUntaxedEarnings, record.Body.CurrentPeriodUntaxedEarnings)
	}

	pairs := make([]pair, 0, len(pairSet))
	for p := range pairSet {
		pairs = append(pairs, p)
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].short != pairs[j].short {
			return pairs[i].short < pairs[j].short
		}
		return pairs[i].long < pairs[j].long
	})

	type group struct {
		shorts map[string]bool
		longs  map[string]bool
	}
	var groups []*group

	for _, p := range pairs {
		var matches []*group
		for _, g := range groups {
			if g.longs[p.long] || g.shorts[p.short] {
				matches = append(matches, g)
			}
		}
		switch len(matches) {
		case 0:
			groups = append(groups, &group{
				shorts: map[string]bool{p.short: true},
				longs:  map[string]bool{p.long: true},
			})
		case 1:
			matches[0].shorts[p.short] = true
			matches[0].longs[p.long] = true
		default:
			return nil, fmt.Errorf("pair (%s)(%s) matches too many groups", p.long, p.short)
		}
	}

	entries := make([]Entry, 0, len(groups))
	for _, g := range groups {
		entries = append(entries, Entry{
			Shorts: sortedKeys(g.shorts),
			Longs:  sortedKeys(g.longs),
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		return strings.Join(entries[i].Shorts, " | ") < strings.Join(entries[j].Shorts, " | ")
	})
	return entries, nil
}

// collectPairs matches one record's abbreviated stem rows against its
// per-period body rows, by amount. Only amounts naming exactly one
// description on each side produce a pair.
func collectPairs(pairs map[pair]bool, stem []payslip.EarningItem, body ...[]payslip.PeriodEarning) {
	shortSide := make(map[payslip.Money][]string)
	for _, item := range stem {
		if item.Amount == nil {
			continue
		}
		shortSide[*item.Amount] = append(shortSide[*item.Amount], item.Description)
	}

	sums := make(map[string]payslip.Money)
	for _, table := range body {
		for _, item := range table {
			if item.Amount == nil {
				continue
			}
			sums[item.Description] += *item.Amount
		}
	}

	longSide := make(map[payslip.Money][]string)
	for desc, amount := range sums {
		longSide[amount] = append(longSide[amount], desc)
	}

	for amount, shorts := range shortSide {
		longs := longSide[amount]
		if len(shorts) == 1 && len(longs) == 1 {
			pairs[pair{short: shorts[0], long: longs[0]}] = true
		}
	}
}

// Format renders entries as aligned "short = long" lines.
func Format(entries []Entry) string {
	type renderLine struct {
		short string
		long  string
	}
	lines := make([]renderLine, 0, len(entries))
	width := 0
	for _, e := range entries {
		line := renderLine{
			short: strings.Join(e.Shorts, " | "),
			long:  strings.Join(e.Longs, " | "),
		}
		if len(line.short) > width {
			width = len(line.short)
		}
		lines = append(lines, line)
	}

	var out strings.Builder
	for _, line := range lines {
		fmt.Fprintf(&out, "%*s = %s\n", width, line.short, line.long)
	}
	return out.String()
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Package search provides the exact-sum combinatorics underneath the
// Kasino move resolver: subset-sum enumeration, exact-sum partitioning
// and maximal disjoint selection. It operates on plain int values and
// index sets and knows nothing about cards.
package search

import "sort"

// Combinations returns every subset of vals with at least two elements
// whose values sum exactly to target. Each result is a list of indices
// into vals, ascending. Values are visited in descending order so that
// two prunes apply: a value larger than the remaining target is
// skipped, and a branch is abandoned once the sum of all values still
// available falls short of the remaining target.
func Combinations(vals []int, target int) [][]int {
	if target <= 0 || len(vals) < 2 {
		return nil
	}

	// Order positions by descending value.
	order := make([]int, len(vals))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return vals[order[a]] > vals[order[b]] })

	// suffix[i] = sum of vals over order[i:].
	suffix := make([]int, len(order)+1)
	for i := len(order) - 1; i >= 0; i-- {
		suffix[i] = suffix[i+1] + vals[order[i]]
	}

	var out [][]int
	var pick []int

	var dfs func(pos, remaining int)
	dfs = func(pos, remaining int) {
		if remaining == 0 {
			if len(pick) >= 2 {
				found := make([]int, len(pick))
				copy(found, pick)
				sort.Ints(found)
				out = append(out, found)
			}
			return
		}
		if pos >= len(order) || suffix[pos] < remaining {
			return
		}
		for i := pos; i < len(order); i++ {
			if suffix[i] < remaining {
				break
			}
			v := vals[order[i]]
			if v > remaining {
				continue
			}
			pick = append(pick, order[i])
			dfs(i+1, remaining-v)
			pick = pick[:len(pick)-1]
		}
	}
	dfs(0, target)
	return out
}

// Partition splits vals into exactly sum(vals)/target groups, each
// summing to target. It returns the groups as index lists and true on
// success, or nil and false when no exact partition exists. Rejected
// up front: a total that is not a multiple of target, and any single
// value exceeding target. This is an existence search — the first
// complete assignment found is returned.
func Partition(vals []int, target int) ([][]int, bool) {
	if target <= 0 || len(vals) == 0 {
		return nil, false
	}
	total := 0
	for _, v := range vals {
		if v > target || v <= 0 {
			return nil, false
		}
		total += v
	}
	if total%target != 0 {
		return nil, false
	}
	groups := total / target

	// Place the largest values first; they constrain the search most.
	order := make([]int, len(vals))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return vals[order[a]] > vals[order[b]] })

	sums := make([]int, groups)
	assign := make([][]int, groups)

	var place func(pos int) bool
	place = func(pos int) bool {
		if pos == len(order) {
			return true
		}
		idx := order[pos]
		v := vals[idx]
		tried := make(map[int]bool, groups)
		for g := 0; g < groups; g++ {
			// A group with the same running sum as one already tried
			// at this position yields an identical subtree.
			if tried[sums[g]] || sums[g]+v > target {
				continue
			}
			tried[sums[g]] = true
			sums[g] += v
			assign[g] = append(assign[g], idx)
			if place(pos + 1) {
				return true
			}
			assign[g] = assign[g][:len(assign[g])-1]
			sums[g] -= v
		}
		return false
	}
	if !place(0) {
		return nil, false
	}

	out := make([][]int, groups)
	for g := range assign {
		group := make([]int, len(assign[g]))
		copy(group, assign[g])
		sort.Ints(group)
		out[g] = group
	}
	return out, true
}

// MaximalDisjoint examines every subset of sets and returns the
// selections of pairwise-disjoint sets whose total element count is
// maximal. Each selection is a list of indices into sets. Elements are
// compared by value, so sets share an element when they contain the
// same int. With no disjoint pair at all, each largest single set is
// its own selection.
func MaximalDisjoint(sets [][]int) [][]int {
	if len(sets) == 0 {
		return nil
	}

	best := 0
	var selections [][]int

	n := len(sets)
	for mask := 1; mask < 1<<n; mask++ {
		seen := make(map[int]bool)
		count := 0
		ok := true
		for i := 0; i < n && ok; i++ {
			if mask&(1<<i) == 0 {
				continue
			}
			for _, e := range sets[i] {
				if seen[e] {
					ok = false
					break
				}
				seen[e] = true
			}
			count += len(sets[i])
		}
		if !ok || count < best {
			continue
		}
		sel := make([]int, 0, n)
		for i := 0; i < n; i++ {
			if mask&(1<<i) != 0 {
				sel = append(sel, i)
			}
		}
		if count > best {
			best = count
			selections = selections[:0]
		}
		selections = append(selections, sel)
	}
	return selections
}

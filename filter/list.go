package filter

// AndList is a conjunction of filters, short-circuiting on the first false
// result. Construct via CreateAndList, not &AndList{}, so the algebraic
// simplifications (flatten/dedupe/collapse) are applied.
type AndList struct {
	combinatorCache
	filters []Filter
}

// OrList is a disjunction of filters, short-circuiting on the first true
// result. Construct via CreateOrList.
type OrList struct {
	combinatorCache
	filters []Filter
}

func newAndList(a, b Filter) Filter {
	return createList(true, flattenAnd(nil, a, b))
}

func newOrList(a, b Filter) Filter {
	return createList(false, flattenOr(nil, a, b))
}

// CreateAndList flattens nested AndLists, deduplicates preserving
// first-occurrence order, and collapses to a single filter when only one
// remains. Returns Never if any member is Never, skips any Always members.
func CreateAndList(filters ...Filter) Filter {
	var flat []Filter
	for _, f := range filters {
		flat = flattenAnd(flat, f)
	}
	return createList(true, flat)
}

// CreateOrList is the symmetric counterpart of CreateAndList.
func CreateOrList(filters ...Filter) Filter {
	var flat []Filter
	for _, f := range filters {
		flat = flattenOr(flat, f)
	}
	return createList(false, flat)
}

func flattenAnd(into []Filter, fs ...Filter) []Filter {
	for _, f := range fs {
		if f == Always {
			continue
		}
		if al, ok := f.(*AndList); ok {
			into = flattenAnd(into, al.filters...)
			continue
		}
		into = append(into, f)
	}
	return into
}

func flattenOr(into []Filter, fs ...Filter) []Filter {
	for _, f := range fs {
		if f == Never {
			continue
		}
		if ol, ok := f.(*OrList); ok {
			into = flattenOr(into, ol.filters...)
			continue
		}
		into = append(into, f)
	}
	return into
}

// createList dedupes preserving first-occurrence order and collapses
// single-element / zero-element results. isAnd selects Never-short-circuit
// (AndList) vs Always-short-circuit (OrList) absorbing behavior.
func createList(isAnd bool, flat []Filter) Filter {
	absorbing := Never
	if !isAnd {
		absorbing = Always
	}

	seen := make(map[Filter]struct{}, len(flat))
	deduped := make([]Filter, 0, len(flat))
	for _, f := range flat {
		if f == absorbing {
			return absorbing
		}
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		deduped = append(deduped, f)
	}

	switch len(deduped) {
	case 0:
		if isAnd {
			return Always
		}
		return Never
	case 1:
		return deduped[0]
	}

	if isAnd {
		return &AndList{filters: deduped}
	}
	return &OrList{filters: deduped}
}

func (a *AndList) Invoke() bool {
	for _, f := range a.filters {
		if !f.Invoke() {
			return false
		}
	}
	return true
}
func (a *AndList) Name() string { return joinNames(a.filters, " & ") }
func (a *AndList) And(o Filter) Filter {
	if o == Always {
		return a
	}
	if o == Never {
		return Never
	}
	return a.combinatorCache.and(a, o)
}
func (a *AndList) Or(o Filter) Filter {
	if o == Always {
		return Always
	}
	if o == Never {
		return a
	}
	return a.combinatorCache.or(a, o)
}
func (a *AndList) Invert() Filter { return a.combinatorCache.invert(a) }

func (o *OrList) Invoke() bool {
	for _, f := range o.filters {
		if f.Invoke() {
			return true
		}
	}
	return false
}
func (o *OrList) Name() string { return joinNames(o.filters, " | ") }
func (o *OrList) And(other Filter) Filter {
	if other == Always {
		return o
	}
	if other == Never {
		return Never
	}
	return o.combinatorCache.and(o, other)
}
func (o *OrList) Or(other Filter) Filter {
	if other == Always {
		return Always
	}
	if other == Never {
		return o
	}
	return o.combinatorCache.or(o, other)
}
func (o *OrList) Invert() Filter { return o.combinatorCache.invert(o) }

func joinNames(fs []Filter, sep string) string {
	s := ""
	for i, f := range fs {
		if i > 0 {
			s += sep
		}
		s += f.Name()
	}
	return s
}

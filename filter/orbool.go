package filter

// OrBool is the FilterOrBool sum type: API surfaces that
// accept "a filter, or just a plain bool" take an OrBool and normalize with
// ToFilter/IsTrue.
type OrBool struct {
	b      bool
	f      Filter
	isBool bool
}

// Bool wraps a plain bool as an OrBool.
func Bool(b bool) OrBool { return OrBool{b: b, isBool: true} }

// Ref wraps a Filter as an OrBool.
func Ref(f Filter) OrBool { return OrBool{f: f} }

// ToFilter normalizes v to a Filter: a bool becomes Always/Never, a Filter
// reference is returned as-is.
func ToFilter(v OrBool) Filter {
	if v.isBool {
		if v.b {
			return Always
		}
		return Never
	}
	if v.f == nil {
		return Never
	}
	return v.f
}

// IsTrue evaluates v, normalizing through ToFilter first.
func IsTrue(v OrBool) bool {
	return ToFilter(v).Invoke()
}

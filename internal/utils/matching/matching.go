package matching

// Match reports whether s matches pattern, where '*' in the pattern matches
// any run of characters (including none). An empty pattern matches nothing,
// so an unset exclude filter never fires.
func Match(pattern, s string) bool {
	if pattern == "" {
		return false
	}
	return matchWildcard(pattern, s)
}

func matchWildcard(pattern, s string) bool {
	// Iterative wildcard match with single backtrack point per star.
	var pi, si int
	star, mark := -1, 0
	for si < len(s) {
		switch {
		case pi < len(pattern) && pattern[pi] == '*':
			star = pi
			mark = si
			pi++
		case pi < len(pattern) && pattern[pi] == s[si]:
			pi++
			si++
		case star >= 0:
			pi = star + 1
			mark++
			si = mark
		default:
			return false
		}
	}
	for pi < len(pattern) && pattern[pi] == '*' {
		pi++
	}
	return pi == len(pattern)
}

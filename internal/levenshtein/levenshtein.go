package levenshtein

// Distance returns the Levenshtein edit distance between two strings.
// Works on runes so Cyrillic and accented forms are compared per
// character, not per byte. Uses the single-row dynamic programming
// variant, O(min(m,n)) extra space.
func Distance(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)

	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	// Keep the shorter string in rb so the row stays small
	if len(ra) < len(rb) {
		ra, rb = rb, ra
	}

	row := make([]int, len(rb)+1)
	for j := range row {
		row[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		prev := row[0]
		row[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			ins := row[j-1] + 1
			del := row[j] + 1
			sub := prev + cost
			prev = row[j]
			row[j] = min3(ins, del, sub)
		}
	}

	return row[len(rb)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

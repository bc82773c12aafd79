package cipher

import "strings"

// DeriveKeyword builds the 26-letter permutation used by the Keyword cipher.
// The keyword is upper-cased, only the first occurrence of each alphabet
// letter is kept (spaces, digits, punctuation and repeats are dropped), and
// the remaining letters are appended in alphabet order. An empty keyword
// yields the plain alphabet.
func DeriveKeyword(keyword string) string {
	var seen [Size]bool
	var b strings.Builder
	b.Grow(Size)

	for _, r := range Normalize(keyword) {
		i, ok := Index(r)
		if !ok || seen[i] {
			continue
		}
		seen[i] = true
		b.WriteRune(r)
	}
	for i := 0; i < Size; i++ {
		if !seen[i] {
			b.WriteByte(Letters[i])
		}
	}
	return b.String()
}

// permutationOf converts a 26-letter permutation string into positions:
// p[i] is the alphabet position of the i-th letter of s.
func permutationOf(s string) []int {
	p := make([]int, 0, Size)
	for _, r := range s {
		i, _ := Index(r)
		p = append(p, i)
	}
	return p
}

// Inv computes the inverse mapping of a permutation p where p[i] is the value
// at position i. The returned slice inv has inv[p[i]] = i for all i.
func Inv(p []int) []int {
	inv := make([]int, len(p))
	for i, v := range p {
		inv[v] = i
	}
	return inv
}

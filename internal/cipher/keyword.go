package cipher

// keywordEngine substitutes through a keyword-derived permutation.
type keywordEngine struct {
	perm []int // plain position -> cipher position
	inv  []int // cipher position -> plain position
}

// NewKeyword returns a Keyword engine. The permutation is derived once here
// (see DeriveKeyword) and reused for every character.
func NewKeyword(keyword string) Engine {
	p := permutationOf(DeriveKeyword(keyword))
	return &keywordEngine{perm: p, inv: Inv(p)}
}

func (e *keywordEngine) Algorithm() Algorithm { return Keyword }

func (e *keywordEngine) Substitute(r rune, dir Direction) rune {
	i, ok := Index(r)
	if !ok {
		return r
	}
	if dir == Backward {
		return Letter(e.inv[i])
	}
	return Letter(e.perm[i])
}

func init() {
	mustRegister(Registration{
		Algorithm:   Keyword,
		Description: "Substitute through a keyword-led alphabet (default KRYPTHOS)",
		Factory: func(key Key) (Engine, error) {
			return NewKeyword(key.Keyword), nil
		},
	})
}

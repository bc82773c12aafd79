package cipher

// caesarEngine shifts every letter by a fixed offset.
type caesarEngine struct {
	offset int
}

// NewCaesar returns a Caesar engine. Any integer offset is valid; it is
// reduced modulo 26.
func NewCaesar(offset int) Engine {
	return &caesarEngine{offset: Mod(offset, Size)}
}

func (e *caesarEngine) Algorithm() Algorithm { return Caesar }

func (e *caesarEngine) Substitute(r rune, dir Direction) rune {
	i, ok := Index(r)
	if !ok {
		return r
	}
	if dir == Backward {
		return Letter(i - e.offset)
	}
	return Letter(i + e.offset)
}

func init() {
	mustRegister(Registration{
		Algorithm:   Caesar,
		Description: "Shift each letter by a fixed offset (default 3)",
		Factory: func(key Key) (Engine, error) {
			return NewCaesar(key.Offset), nil
		},
	})
}

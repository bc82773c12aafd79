package cipher

// atbashEngine mirrors the alphabet: A<->Z, B<->Y, ...
type atbashEngine struct{}

// NewAtbash returns the Atbash engine. It takes no key and is its own
// inverse.
func NewAtbash() Engine {
	return atbashEngine{}
}

func (atbashEngine) Algorithm() Algorithm { return Atbash }

func (atbashEngine) Substitute(r rune, _ Direction) rune {
	i, ok := Index(r)
	if !ok {
		return r
	}
	return Letter(Size - 1 - i)
}

func init() {
	mustRegister(Registration{
		Algorithm:   Atbash,
		Description: "Reverse the alphabet (self-inverse, no key)",
		Factory: func(Key) (Engine, error) {
			return NewAtbash(), nil
		},
	})
}

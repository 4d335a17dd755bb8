package main

// keepPolicy decides which non-letters survive encoding
type keepPolicy struct {
	spaces   bool
	special  bool
	newLines bool
}

func (k keepPolicy) any() bool {
	return k.spaces || k.special || k.newLines
}

func (k keepPolicy) keeps(r rune) bool {
	switch r {
	case ' ':
		return k.spaces
	case '\n':
		return k.newLines
	default:
		return k.special
	}
}

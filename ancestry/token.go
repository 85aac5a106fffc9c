package ancestry

import (
	"sort"

	"github.com/zlataovce/takenaka-sub001/mapping"
)

// Token is the atomic unit of identity matching between releases: a bare
// name for classes, a name plus descriptor for members.
type Token struct {
	Name       string
	Descriptor string
}

// NameToken makes a class token.
func NameToken(name string) Token {
	return Token{Name: name}
}

// MemberToken makes a field or method token.
func MemberToken(name, descriptor string) Token {
	return Token{Name: name, Descriptor: descriptor}
}

// TokenSet is an unordered set of match tokens.
type TokenSet map[Token]struct{}

func (s TokenSet) Add(t Token) {
	s[t] = struct{}{}
}

func (s TokenSet) Has(t Token) bool {
	_, ok := s[t]
	return ok
}

func (s TokenSet) Len() int {
	return len(s)
}

// Overlaps reports whether the sets share at least one token. One shared
// token is a full match; there is no weighting or minimum-overlap threshold.
func (s TokenSet) Overlaps(other TokenSet) bool {
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}
	for t := range small {
		if _, ok := large[t]; ok {
			return true
		}
	}
	return false
}

// Sorted returns the tokens ordered by name, then descriptor.
func (s TokenSet) Sorted() []Token {
	tokens := make([]Token, 0, len(s))
	for t := range s {
		tokens = append(tokens, t)
	}
	sort.Slice(tokens, func(i, j int) bool {
		if tokens[i].Name != tokens[j].Name {
			return tokens[i].Name < tokens[j].Name
		}
		return tokens[i].Descriptor < tokens[j].Descriptor
	})
	return tokens
}

// ExtractTokens derives one release's candidate token set for a record,
// reading only the supplied namespace ids. Namespaces where the record has
// no name (or, for members, no descriptor) contribute nothing — absence in
// one namespace must not prevent a match via another.
type ExtractTokens[T any] func(record T, namespaces []int) TokenSet

// ClassTokens extracts class name tokens.
func ClassTokens(c *mapping.Class, namespaces []int) TokenSet {
	set := TokenSet{}
	for _, ns := range namespaces {
		if name := c.Name(ns); name != "" {
			set.Add(NameToken(name))
		}
	}
	return set
}

// FieldTokens extracts (name, descriptor) tokens for a field.
func FieldTokens(f *mapping.Field, namespaces []int) TokenSet {
	set := TokenSet{}
	for _, ns := range namespaces {
		name, desc := f.Name(ns), f.Descriptor(ns)
		if name == "" || desc == "" {
			continue
		}
		set.Add(MemberToken(name, desc))
	}
	return set
}

// MethodTokens extracts (name, descriptor) tokens for a method. Constructors
// get the synthetic "<init>" name in every namespace, normalizing sources
// that map a constructor's binary name inconsistently.
func MethodTokens(m *mapping.Method, namespaces []int) TokenSet {
	ctor := mapping.IsConstructor(m)
	set := TokenSet{}
	for _, ns := range namespaces {
		name, desc := m.Name(ns), m.Descriptor(ns)
		if ctor {
			name = mapping.ConstructorName
		}
		if name == "" || desc == "" {
			continue
		}
		set.Add(MemberToken(name, desc))
	}
	return set
}

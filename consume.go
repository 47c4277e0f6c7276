package argbind

import (
	"slices"
	"strings"
)

// tokenBuffer holds the tokens not yet claimed by any role. It is consumed destructively, so that a token bound
// by one role is never seen by another.
type tokenBuffer struct {
	tokens []string
}

func newTokenBuffer(args []string) *tokenBuffer {
	return &tokenBuffer{tokens: slices.Clone(args)}
}

// indexOf returns the index of the first token equal to any of the given candidates, or -1.
func (b *tokenBuffer) indexOf(candidates ...string) int {
	return slices.IndexFunc(b.tokens, func(t string) bool { return slices.Contains(candidates, t) })
}

func (b *tokenBuffer) remove(i, count int) {
	b.tokens = slices.Delete(b.tokens, i, i+count)
}

func (b *tokenBuffer) shift() (string, bool) {
	if len(b.tokens) == 0 {
		return "", false
	}
	t := b.tokens[0]
	b.tokens = b.tokens[1:]
	return t, true
}

func isOption(token string) bool {
	return strings.HasPrefix(token, "-")
}

// consume binds tokens from the buffer to the roles of the given node and its active descendants.
//
// Flags and named arguments of a node are claimed before descending into its active subcommand, so options may be
// freely interleaved between parent and child in the input; each level only claims tokens matching its own roles.
// Unclaimed option tokens are rejected only after every level had its chance, and positionals are bound last,
// by the leaf only.
func consume(n *node, buf *tokenBuffer) error {
	for _, r := range n.roles {
		switch r := r.(type) {
		case *FlagRole:
			i := buf.indexOf(r.tokens()...)
			if i >= 0 {
				buf.remove(i, 1)
			}
			*r.target = i >= 0
		case *NamedRole:
			i := buf.indexOf(r.tokens()...)
			if i < 0 {
				if r.required {
					return &ErrRequiredArgument{Arg: r.displayName()}
				}
				continue
			} else if i == len(buf.tokens)-1 || isOption(buf.tokens[i+1]) {
				return &ErrMissingValue{Arg: buf.tokens[i]}
			}
			v := buf.tokens[i+1]
			buf.remove(i, 2)
			if err := r.value.set(v); err != nil {
				return err
			}
		}
	}

	if n.child != nil {
		if i := buf.indexOf(n.child.name); i >= 0 {
			buf.remove(i, 1)
		}
		if err := consume(n.child, buf); err != nil {
			return err
		}
	}

	for _, t := range buf.tokens {
		if isOption(t) {
			return &ErrUnknownArgument{Arg: t}
		}
	}

	for _, r := range n.roles {
		if p, ok := r.(*PositionalRole); ok {
			v, ok := buf.shift()
			if !ok {
				return &ErrRequiredArgument{Arg: p.name}
			}
			if err := p.value.set(v); err != nil {
				return err
			}
		}
	}

	if len(buf.tokens) > 0 {
		return &ErrUnknownArgument{Arg: buf.tokens[0]}
	}
	return nil
}

// Package syntax parses the textual notation for lambda expressions.
//
//	x             variable
//	(f a b)       invocation, ((f a) b)
//	([x y] b)     function, λx.λy.b
//	(\x.b)        function, as printed by expr.Function
//	(λx y.b)      function
package syntax

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/samber/lo"
)

type token struct {
	text string
	pos  int // byte offset in the source
}

var punctuation = []string{"(", ")", "[", "]", ".", "\\", "λ"}

func isPunct(s string) bool {
	return lo.Contains(punctuation, s)
}

func isIdent(s string) bool {
	first, size := utf8.DecodeRuneInString(s)
	if !unicode.IsLetter(first) {
		return false
	}
	return strings.IndexFunc(s[size:], func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_'
	}) < 0
}

// fields splits src around whitespace, keeping offsets.
func fields(src string) (res []token) {
	start := -1
	for i, r := range src {
		switch {
		case unicode.IsSpace(r) && start >= 0:
			res = append(res, token{src[start:i], start})
			start = -1
		case !unicode.IsSpace(r) && start < 0:
			start = i
		}
	}
	if start >= 0 {
		res = append(res, token{src[start:], start})
	}
	return res
}

func scan(src string) (res []token) {
	res = fields(src)
	sep := func(c string) []token {
		return lo.FlatMap(res, func(t token, _ int) (ret []token) {
			if t.text == c {
				return []token{t}
			}
			s, pos := t.text, t.pos
			for {
				before, after, found := strings.Cut(s, c)
				if before != "" {
					ret = append(ret, token{before, pos})
				}
				if !found {
					break
				}
				pos += len(before)
				ret = append(ret, token{c, pos})
				pos += len(c)
				s = after
			}
			return ret
		})
	}
	for _, c := range punctuation {
		res = sep(c)
	}
	return res
}

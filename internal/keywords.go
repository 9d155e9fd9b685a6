package internal

// KeywordSpec maps keyword lexemes to the TokenKind the Lexer should emit
// for them. It exists as a configuration point for embedders who want a
// different surface vocabulary; nothing in this module constructs one other
// than DefaultKeywordSpec, and no test exercises an override.
type KeywordSpec struct {
	Keywords map[string]TokenKind
}

// DefaultKeywordSpec returns the fixed keyword table described in the
// language surface: and, break, class, continue, elif, else, false, fun,
// for, if, inherits, nil, not, or, print, return, super, this, true, let,
// while.
func DefaultKeywordSpec() KeywordSpec {
	return KeywordSpec{
		Keywords: map[string]TokenKind{
			"and":      And,
			"break":    Break,
			"class":    ClassTok,
			"continue": Continue,
			"elif":     ElseIf,
			"else":     Else,
			"false":    False,
			"fun":      Fun,
			"for":      For,
			"if":       If,
			"inherits": Inherits,
			"nil":      Nil,
			"not":      Bang,
			"or":       Or,
			"print":    Print,
			"return":   Return,
			"super":    Super,
			"this":     This,
			"true":     True,
			"let":      Var,
			"while":    While,
		},
	}
}

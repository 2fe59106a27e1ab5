package token

import (
	"testing"
)

func TestLookupKeyword_Positive(t *testing.T) {
	cases := map[string]Kind{
		"LIBRA":   KwLibra,
		"DEFINE":  KwDefine,
		"HIDE":    KwHide,
		"IN":      KwIn,
		"END":     KwEnd,
		"MODULE":  KwModule,
		"PRIVATE": KwPrivate,
		"PUBLIC":  KwPublic,
		"CONST":   KwConst,
		"INLINE":  KwInline,
		"true":    KwTrue,
		"false":   KwFalse,
		"null":    KwNull,
	}

	for lexeme, want := range cases {
		got, ok := LookupKeyword(lexeme)
		if !ok {
			t.Fatalf("LookupKeyword(%q) = !ok, want %v", lexeme, want)
		}
		if got != want {
			t.Fatalf("LookupKeyword(%q) = %v, want %v", lexeme, got, want)
		}
	}
}

func TestLookupKeyword_Negative(t *testing.T) {
	notKw := []string{
		"define", "Libra", "True", "NULL", // case matters
		"DEFINEx", "in", "dup", "json",
	}
	for _, s := range notKw {
		if _, ok := LookupKeyword(s); ok {
			t.Fatalf("LookupKeyword(%q) returned ok=true, want false", s)
		}
	}
}

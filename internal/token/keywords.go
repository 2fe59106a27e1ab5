package token

var reserved = map[string]Kind{
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

// LookupKeyword reports the reserved kind for an exact, case-sensitive spelling.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := reserved[ident]
	return k, ok
}

var operators = map[string]Kind{
	">=":    GtEq,
	"<=":    LtEq,
	"!=":    BangEq,
	">":     Gt,
	"<":     Lt,
	"=":     Assign,
	"+":     Plus,
	"-":     Minus,
	"*":     Star,
	"/":     Slash,
	">set":  ToSet,
	">dict": ToDict,
	">vec":  ToVec,
	">mat":  ToMat,
	">list": ToList,
	">json": ToJSON,
	"json>": FromJSON,
	"v+":    VecPlus,
	"v-":    VecMinus,
	"v*":    VecStar,
	"v/":    VecSlash,
	"m+":    MatPlus,
	"m-":    MatMinus,
	"m*":    MatStar,
	"m/":    MatSlash,
}

// LookupOperator reports the operator kind for an exact spelling.
func LookupOperator(text string) (Kind, bool) {
	k, ok := operators[text]
	return k, ok
}

// Operators returns every operator spelling. The order is unspecified.
func Operators() []string {
	out := make([]string, 0, len(operators))
	for s := range operators {
		out = append(out, s)
	}
	return out
}

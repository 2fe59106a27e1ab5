package extscan

// BlockComment scans (* ... *) comments. Openers inside the body nest, and
// the comment ends at the closer that brings depth back to zero.
type BlockComment struct{}

func (BlockComment) Kind() Kind { return KindBlockComment }

func (BlockComment) Scan(src []byte, off int) Result {
	if off+1 >= len(src) || src[off] != '(' || src[off+1] != '*' {
		return Result{}
	}
	i := off + 2
	depth := 1
	for i < len(src) {
		switch {
		case src[i] == '(' && i+1 < len(src) && src[i+1] == '*':
			depth++
			i += 2
		case src[i] == '*' && i+1 < len(src) && src[i+1] == ')':
			depth--
			i += 2
			if depth == 0 {
				return Result{Kind: KindBlockComment, Status: Matched, Len: i - off, Open: 2}
			}
		default:
			i++
		}
	}
	return Result{Kind: KindBlockComment, Status: Unterminated, Open: 2}
}

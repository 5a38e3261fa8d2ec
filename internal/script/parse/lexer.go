package parse

import "fmt"

// tokenKind enumerates the script language's lexical categories. The
// grammar has no operators beyond call syntax, so the token set stays
// small: identifiers (which double as keywords, resolved by the
// parser rather than the lexer), the three literal kinds, and
// punctuation.
type tokenKind int

const (
	tokEOF tokenKind = iota
	tokIdent
	tokString
	tokInt
	tokFloat
	tokLParen
	tokRParen
	tokLBrace
	tokRBrace
	tokComma
)

type token struct {
	kind tokenKind
	text string
	ival int64
	fval float64
	line int
}

// tokenize scans src into a flat token slice (always ending in
// tokEOF), skipping whitespace and /* ... */ comments.
func tokenize(src string) ([]token, error) {
	runes := []rune(src)
	pos := 0
	line := 1
	var toks []token

	peek := func(off int) rune {
		if pos+off >= len(runes) {
			return 0
		}
		return runes[pos+off]
	}
	adv := func() rune {
		r := runes[pos]
		pos++
		if r == '\n' {
			line++
		}
		return r
	}

	for {
		// skip whitespace and comments
		for pos < len(runes) {
			r := peek(0)
			if r == ' ' || r == '\t' || r == '\r' || r == '\n' {
				adv()
				continue
			}
			if r == '/' && peek(1) == '*' {
				startLine := line
				adv()
				adv()
				closed := false
				for pos < len(runes) {
					if peek(0) == '*' && peek(1) == '/' {
						adv()
						adv()
						closed = true
						break
					}
					adv()
				}
				if !closed {
					return nil, fmt.Errorf("unterminated comment starting at line %d", startLine)
				}
				continue
			}
			break
		}

		if pos >= len(runes) {
			toks = append(toks, token{kind: tokEOF, line: line})
			return toks, nil
		}

		startLine := line
		r := peek(0)
		switch {
		case r == '(':
			adv()
			toks = append(toks, token{kind: tokLParen, line: startLine})
		case r == ')':
			adv()
			toks = append(toks, token{kind: tokRParen, line: startLine})
		case r == '{':
			adv()
			toks = append(toks, token{kind: tokLBrace, line: startLine})
		case r == '}':
			adv()
			toks = append(toks, token{kind: tokRBrace, line: startLine})
		case r == ',':
			adv()
			toks = append(toks, token{kind: tokComma, line: startLine})
		case r == '"':
			tok, err := lexString(runes, &pos, &line)
			if err != nil {
				return nil, err
			}
			toks = append(toks, tok)
		case r == '-' && isDigit(peek(1)):
			toks = append(toks, lexNumber(runes, &pos, startLine))
		case isDigit(r):
			toks = append(toks, lexNumber(runes, &pos, startLine))
		case isIdentStart(r):
			toks = append(toks, lexIdent(runes, &pos, startLine))
		default:
			return nil, fmt.Errorf("line %d: unexpected character %q", startLine, r)
		}
	}
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isIdentStart(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isIdentCont(r rune) bool { return isIdentStart(r) || isDigit(r) }

func lexIdent(runes []rune, pos *int, line int) token {
	start := *pos
	*pos++
	for *pos < len(runes) && isIdentCont(runes[*pos]) {
		*pos++
	}
	return token{kind: tokIdent, text: string(runes[start:*pos]), line: line}
}

func lexNumber(runes []rune, pos *int, line int) token {
	start := *pos
	if runes[*pos] == '-' {
		*pos++
	}
	for *pos < len(runes) && isDigit(runes[*pos]) {
		*pos++
	}
	isFloat := false
	if *pos < len(runes) && runes[*pos] == '.' && *pos+1 < len(runes) && isDigit(runes[*pos+1]) {
		isFloat = true
		*pos++
		for *pos < len(runes) && isDigit(runes[*pos]) {
			*pos++
		}
	}
	text := string(runes[start:*pos])
	if isFloat {
		var f float64
		fmt.Sscanf(text, "%g", &f)
		return token{kind: tokFloat, text: text, fval: f, line: line}
	}
	var n int64
	fmt.Sscanf(text, "%d", &n)
	return token{kind: tokInt, text: text, ival: n, line: line}
}

// lexString scans a double-quoted string literal, honoring \" \\ \n
// \t escapes.
func lexString(runes []rune, pos *int, line *int) (token, error) {
	startLine := *line
	*pos++ // opening quote
	var b []rune
	for {
		if *pos >= len(runes) {
			return token{}, fmt.Errorf("line %d: unterminated string literal", startLine)
		}
		r := runes[*pos]
		if r == '"' {
			*pos++
			return token{kind: tokString, text: string(b), line: startLine}, nil
		}
		if r == '\\' && *pos+1 < len(runes) {
			next := runes[*pos+1]
			switch next {
			case '"':
				b = append(b, '"')
			case '\\':
				b = append(b, '\\')
			case 'n':
				b = append(b, '\n')
			case 't':
				b = append(b, '\t')
			default:
				b = append(b, '\\', next)
			}
			*pos += 2
			continue
		}
		if r == '\n' {
			*line++
		}
		b = append(b, r)
		*pos++
	}
}

/*
 * rusformula
 *
 * Copyright 2026 The rusformula Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package parser

import (
	"fmt"
	"sort"
	"strings"

	"github.com/zyktin/rusformula/config"
)

/*
DisplayWindow is the number of characters shown on either side of an
offending character in a lexer diagnostic.
*/
const DisplayWindow = 10

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isLatin(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
}

func isCyrillic(r rune) bool {
	return (r >= 'А' && r <= 'я') || r == 'ё' || r == 'Ё'
}

func isLetter(r rune) bool {
	return isLatin(r) || isCyrillic(r)
}

func isNameStart(r rune) bool {
	return isLetter(r)
}

func isNameContinue(r rune) bool {
	return isLetter(r) || isDigit(r) || r == '_'
}

/*
allowedPunctuation is the fixed whitelist of non-alphanumeric characters the
source text may contain, mirroring the punctuation set the original tool
enforced before tokenising.
*/
var allowedPunctuation = map[rune]bool{
	'+': true, '-': true, '*': true, '/': true, '\\': true, '=': true,
	',': true, '(': true, ')': true, '[': true, ']': true, '{': true, '}': true,
	';': true, '"': true, '\'': true, '!': true, '?': true, '.': true, ':': true,
	'№': true, '%': true, '<': true, '>': true, '@': true, '_': true,
	' ': true, '\n': true, '\t': true, '\r': true,
}

func isAllowedRune(r rune) bool {
	return isDigit(r) || isLetter(r) || allowedPunctuation[r]
}

/*
LexError is a syntax error produced during lexical analysis. Bracket,
quote, string and unrecognised-character errors carry a human-readable
window around the offending position; the length and character-set
errors name the problem without one.
*/
type LexError struct {
	Detail string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("синтаксическая ошибка: %s", e.Detail)
}

/*
problemAt renders the +/-DisplayWindow excerpt around a rune index, in the
"... left --> c <-- right ..." shape used by every lexer diagnostic.
*/
func problemAt(runes []rune, index int) string {
	left := index - DisplayWindow
	prefix := "..."
	if left < 0 {
		left = 0
		prefix = ""
	}

	right := index + DisplayWindow + 1
	suffix := "..."
	if right >= len(runes) {
		right = len(runes)
		suffix = ""
	}

	var b strings.Builder
	b.WriteString(prefix)
	b.WriteString(string(runes[left:index]))
	b.WriteString(" --> ")
	b.WriteString(string(runes[index]))
	b.WriteString(" <-- ")
	b.WriteString(string(runes[index+1 : right]))
	b.WriteString(suffix)
	return b.String()
}

func checkCharset(runes []rune) error {
	bad := map[rune]bool{}
	for _, r := range runes {
		if !isAllowedRune(r) {
			bad[r] = true
		}
	}
	if len(bad) == 0 {
		return nil
	}

	var chars []string
	for r := range bad {
		chars = append(chars, string(r))
	}
	sort.Strings(chars)

	return &LexError{Detail: fmt.Sprintf(
		"в скрипте нельзя использовать символы %s", strings.Join(chars, " "))}
}

func checkBrackets(runes []rune) error {
	open := map[rune]bool{'(': true, '[': true, '{': true}
	match := map[rune]rune{')': '(', ']': '[', '}': '{'}

	var stack []int

	for i, r := range runes {
		if open[r] {
			stack = append(stack, i)
			continue
		}
		if want, ok := match[r]; ok {
			if len(stack) == 0 || runes[stack[len(stack)-1]] != want {
				return &LexError{Detail: fmt.Sprintf(
					`символ "%c" (№%d) не имеет пары. %s`,
					r, i+1, problemAt(runes, i))}
			}
			stack = stack[:len(stack)-1]
		}
	}

	if len(stack) > 0 {
		idx := stack[len(stack)-1]
		return &LexError{Detail: fmt.Sprintf(
			`символ "%c" (№%d) не имеет пары. %s`,
			runes[idx], idx+1, problemAt(runes, idx))}
	}

	return nil
}

func checkQuotes(runes []rune) error {
	singleCount, doubleCount := 0, 0
	singleLast, doubleLast := -1, -1

	for i, r := range runes {
		switch r {
		case '\'':
			singleCount++
			singleLast = i
		case '"':
			doubleCount++
			doubleLast = i
		}
	}

	if singleCount%2 == 1 {
		return &LexError{Detail: fmt.Sprintf(
			"нечётное число одинарных кавычек. Последняя из них символ №%d %s",
			singleLast+1, problemAt(runes, singleLast))}
	}
	if doubleCount%2 == 1 {
		return &LexError{Detail: fmt.Sprintf(
			"нечётное число двойных кавычек. Последняя из них символ №%d %s",
			doubleLast+1, problemAt(runes, doubleLast))}
	}

	return nil
}

/*
TokenQueue is the ordered, consumable result of lexing: a FIFO of Tokens
with peek/cut/dispose/lookahead operations.
*/
type TokenQueue struct {
	tokens []*Token
	pos    int
}

/*
ShowNext peeks at the next token without consuming it. Returns nil past the
end of the queue.
*/
func (q *TokenQueue) ShowNext() *Token {
	if q.pos >= len(q.tokens) {
		return nil
	}
	return q.tokens[q.pos]
}

/*
CutNext removes and returns the next token, or nil if the queue is empty.
*/
func (q *TokenQueue) CutNext() *Token {
	t := q.ShowNext()
	if t != nil {
		q.pos++
	}
	return t
}

/*
DisposeNext consumes the next token and errors unless it has the given kind.
*/
func (q *TokenQueue) DisposeNext(kind TokenKind) error {
	t := q.CutNext()
	if t == nil || t.Kind != kind {
		got := "ничего"
		if t != nil {
			got = string(t.Kind)
		}
		return &ParseError{Detail: fmt.Sprintf(
			"ожидался токен типа %s, а встречен %s", kind, got)}
	}
	return nil
}

/*
NextIn reports whether the next token's kind is one of the given kinds.
*/
func (q *TokenQueue) NextIn(kinds ...TokenKind) bool {
	t := q.ShowNext()
	if t == nil {
		return false
	}
	for _, k := range kinds {
		if t.Kind == k {
			return true
		}
	}
	return false
}

/*
TokensLeft returns the figures of the tokens still queued, for diagnostics.
*/
func (q *TokenQueue) TokensLeft() []string {
	out := make([]string, 0, len(q.tokens)-q.pos)
	for _, t := range q.tokens[q.pos:] {
		out = append(out, t.Figure)
	}
	return out
}

/*
HasNext reports whether any tokens remain in the queue.
*/
func (q *TokenQueue) HasNext() bool {
	return q.pos < len(q.tokens)
}

type symbolDescriptor struct {
	text string
	kind TokenKind
}

/*
symbolTable is tried in order, longest match first, so two-character
operators are recognised before their one-character prefixes.
*/
var symbolTable = []symbolDescriptor{
	{"**", TokPower},
	{"<=", TokLE},
	{">=", TokGE},
	{"==", TokEq},
	{"!=", TokNotEq},
	{"+", TokPlus},
	{"-", TokMinus},
	{"*", TokTimes},
	{"/", TokDivide},
	{"<", TokLT},
	{">", TokGT},
	{"=", TokAssign},
	{"(", TokLParen},
	{")", TokRParen},
	{"{", TokLCurl},
	{"}", TokRCurl},
	{";", TokSemicolon},
	{",", TokComma},
}

/*
Analyze validates and tokenises source text using the configured MaxLetters
as the size cap.
*/
func Analyze(source string) (*TokenQueue, error) {
	return AnalyzeWithLimit(source, config.Int(config.MaxLetters))
}

/*
AnalyzeWithLimit validates and tokenises source text, rejecting input longer
than maxLetters before doing any other work.
*/
func AnalyzeWithLimit(source string, maxLetters int) (*TokenQueue, error) {
	runes := []rune(source)

	if len(runes) > maxLetters {
		return nil, &LexError{Detail: fmt.Sprintf(
			"слишком длинный текст: %d символов", len(runes))}
	}

	if err := checkCharset(runes); err != nil {
		return nil, err
	}
	if err := checkBrackets(runes); err != nil {
		return nil, err
	}
	if err := checkQuotes(runes); err != nil {
		return nil, err
	}

	tokens, err := tokenize(runes)
	if err != nil {
		return nil, err
	}

	return &TokenQueue{tokens: tokens}, nil
}

func tokenize(runes []rune) ([]*Token, error) {
	var out []*Token
	pos := 0
	line, col := 1, 1

	advance := func(n int) {
		for i := 0; i < n; i++ {
			if runes[pos+i] == '\n' {
				line++
				col = 1
			} else {
				col++
			}
		}
		pos += n
	}

	for pos < len(runes) {
		r := runes[pos]
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			advance(1)
			continue
		}

		startPos, startLine, startCol := pos, line, col

		if r == '"' || r == '\'' {
			tok, n, err := lexString(runes, pos, r)
			if err != nil {
				return nil, err
			}
			tok.Pos, tok.Line, tok.Col = startPos, startLine, startCol
			out = append(out, tok)
			advance(n)
			continue
		}

		if tok, n, ok := lexNumber(runes, pos); ok {
			tok.Pos, tok.Line, tok.Col = startPos, startLine, startCol
			out = append(out, tok)
			advance(n)
			continue
		}

		if isNameStart(r) {
			tok, n := lexName(runes, pos)
			tok.Pos, tok.Line, tok.Col = startPos, startLine, startCol
			out = append(out, tok)
			advance(n)
			continue
		}

		if tok, n, ok := lexSymbol(runes, pos); ok {
			tok.Pos, tok.Line, tok.Col = startPos, startLine, startCol
			out = append(out, tok)
			advance(n)
			continue
		}

		return nil, &LexError{Detail: fmt.Sprintf(
			"не удалось распознать символ №%d %s", pos+1, problemAt(runes, pos))}
	}

	return out, nil
}

func lexString(runes []rune, pos int, quote rune) (*Token, int, error) {
	i := pos + 1
	for i < len(runes) && runes[i] != quote {
		i++
	}
	if i >= len(runes) {
		return nil, 0, &LexError{Detail: fmt.Sprintf(
			"не закрыта строка, начатая символом №%d %s", pos+1, problemAt(runes, pos))}
	}
	content := string(runes[pos+1 : i])
	return &Token{Kind: TokString, Raw: content, Figure: content}, i - pos + 1, nil
}

func lexNumber(runes []rune, pos int) (*Token, int, bool) {
	i := pos
	for i < len(runes) && isDigit(runes[i]) {
		i++
	}
	if i == pos {
		return nil, 0, false
	}

	if i < len(runes) && runes[i] == '.' && i+1 < len(runes) && isDigit(runes[i+1]) {
		j := i + 1
		for j < len(runes) && isDigit(runes[j]) {
			j++
		}
		raw := string(runes[pos:j])
		return &Token{Kind: TokFloat, Raw: raw, Figure: raw}, j - pos, true
	}

	raw := string(runes[pos:i])
	return &Token{Kind: TokInteger, Raw: raw, Figure: raw}, i - pos, true
}

func lexName(runes []rune, pos int) (*Token, int) {
	i := pos + 1
	for i < len(runes) && isNameContinue(runes[i]) {
		i++
	}
	raw := string(runes[pos:i])

	if kind, ok := keywordMap[strings.ToUpper(raw)]; ok {
		return &Token{Kind: kind, Raw: raw, Figure: Figures[kind]}, i - pos
	}

	return &Token{Kind: TokName, Raw: raw, Figure: raw}, i - pos
}

func lexSymbol(runes []rune, pos int) (*Token, int, bool) {
	for _, sym := range symbolTable {
		n := len([]rune(sym.text))
		if pos+n > len(runes) {
			continue
		}
		if string(runes[pos:pos+n]) == sym.text {
			return &Token{Kind: sym.kind, Raw: sym.text, Figure: Figures[sym.kind]}, n, true
		}
	}
	return nil, 0, false
}

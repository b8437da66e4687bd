package syntax

import (
	"strings"
)

// State is the lexer's carry-over state at the end of a line: the mode
// (plain/inside-quote/inside-heredoc) plus whatever that mode needs to
// resume correctly on the next line.
type State struct {
	Mode  LexerState
	Delim string // here-doc terminator, only meaningful when Mode == LexerStateHeredoc
}

// Unterminated reports whether state represents an open multi-line
// construct that never closed — callers tokenizing the last line of a
// buffer use this to flag an error token (§4.6 "error variants").
func (s State) Unterminated() bool {
	return s.Mode == LexerStateSingleQuote || s.Mode == LexerStateDoubleQuote || s.Mode == LexerStateBacktick
}

var shellKeywords = map[string]bool{
	"if": true, "then": true, "else": true, "elif": true, "fi": true,
	"for": true, "while": true, "until": true, "do": true, "done": true,
	"case": true, "esac": true, "function": true, "select": true,
	"in": true, "time": true, "!": true,
}

var shellBuiltins = map[string]bool{
	"cd": true, "echo": true, "export": true, "set": true, "unset": true,
	"read": true, "exit": true, "return": true, "shift": true, "eval": true,
	"exec": true, "source": true, ".": true, "alias": true, "unalias": true,
	"local": true, "declare": true, "typeset": true, "readonly": true,
	"trap": true, "wait": true, "jobs": true, "bg": true, "fg": true,
	"kill": true, "umask": true, "ulimit": true, "test": true, "[": true,
	"[[": true, "pwd": true, "pushd": true, "popd": true, "let": true,
	"printf": true, "getopts": true, "command": true, "builtin": true,
	"true": true, "false": true, "break": true, "continue": true,
}

var testComparisons = map[string]bool{
	"-eq": true, "-ne": true, "-lt": true, "-le": true, "-gt": true, "-ge": true,
	"-ef": true, "-nt": true, "-ot": true,
}

// Lexer is the shell tokenizer (§4.6): it produces a flat token list for
// one logical line plus the carry-state for the next.
type Lexer struct{}

// NewLexer returns a ready-to-use shell lexer. It holds no state of its
// own; all per-line state is threaded through State.
func NewLexer() *Lexer { return &Lexer{} }

// HighlightLine tokenizes one logical line, continuing from prev's
// carried state, and returns the tokens plus the state at line end.
func (l *Lexer) HighlightLine(line string, prev State) ([]Token, State) {
	if prev.Mode == LexerStateHeredoc {
		return l.continueHeredoc(line, prev)
	}
	if prev.Mode != LexerStateNormal {
		return l.continueQuote(line, prev)
	}
	toks, state := scanLine(line, 0)
	toks = reclassify(toks)
	return toks, state
}

// continueHeredoc emits the line as heredoc body unless it is the
// terminator, in which case lexing resumes normally from here.
func (l *Lexer) continueHeredoc(line string, prev State) ([]Token, State) {
	if strings.TrimSpace(line) == prev.Delim {
		toks, state := scanLine(line, 0)
		return reclassify(toks), state
	}
	return []Token{{Type: TokenHeredoc, StartCol: 0, EndCol: uint32(len(line)), Text: line}}, prev
}

// continueQuote resumes an unterminated quoted string from a prior line.
func (l *Lexer) continueQuote(line string, prev State) ([]Token, State) {
	var quote byte
	var tokType TokenType
	switch prev.Mode {
	case LexerStateSingleQuote:
		quote, tokType = '\'', TokenStringSingle
	case LexerStateDoubleQuote:
		quote, tokType = '"', TokenStringDouble
	case LexerStateBacktick:
		quote, tokType = '`', TokenStringBacktick
	}
	idx := findUnescapedQuote(line, 0, quote, prev.Mode == LexerStateSingleQuote)
	if idx < 0 {
		return []Token{{Type: tokType, StartCol: 0, EndCol: uint32(len(line)), Text: line}}, prev
	}
	closing := Token{Type: tokType, StartCol: 0, EndCol: uint32(idx + 1), Text: line[:idx+1]}
	rest, state := scanLine(line, idx+1)
	return append([]Token{closing}, reclassify(rest)...), state
}

// scanLine is the first pass: a linear scan producing generic tokens
// (word/number/string/operator/expansion/...) without regard to command
// position. startAt lets continuation lines resume mid-line after a
// closing quote.
func scanLine(line string, startAt int) ([]Token, State) {
	var toks []Token
	i := startAt
	n := len(line)
	shebang := startAt == 0 && strings.HasPrefix(line, "#!")
	if shebang {
		return []Token{{Type: TokenShebang, StartCol: 0, EndCol: uint32(n), Text: line}}, State{Mode: LexerStateNormal}
	}

	atWordStart := func(pos int) bool {
		return pos == 0 || line[pos-1] == ' ' || line[pos-1] == '\t'
	}

	for i < n {
		c := line[i]
		switch {
		case c == ' ' || c == '\t':
			start := i
			for i < n && (line[i] == ' ' || line[i] == '\t') {
				i++
			}
			toks = append(toks, Token{Type: TokenWhitespace, StartCol: uint32(start), EndCol: uint32(i), Text: line[start:i]})

		case c == '#' && atWordStart(i):
			toks = append(toks, Token{Type: TokenComment, StartCol: uint32(i), EndCol: uint32(n), Text: line[i:n]})
			i = n

		case c == '\'':
			idx := findUnescapedQuote(line, i+1, '\'', true)
			if idx < 0 {
				toks = append(toks, Token{Type: TokenStringSingle, StartCol: uint32(i), EndCol: uint32(n), Text: line[i:n]})
				return toks, State{Mode: LexerStateSingleQuote}
			}
			toks = append(toks, Token{Type: TokenStringSingle, StartCol: uint32(i), EndCol: uint32(idx + 1), Text: line[i : idx+1]})
			i = idx + 1

		case c == '"':
			idx := findUnescapedQuote(line, i+1, '"', false)
			if idx < 0 {
				toks = append(toks, scanDoubleQuoteBody(line, i, n, true)...)
				return toks, State{Mode: LexerStateDoubleQuote}
			}
			toks = append(toks, scanDoubleQuoteBody(line, i, idx+1, false)...)
			i = idx + 1

		case c == '`':
			idx := findUnescapedQuote(line, i+1, '`', false)
			if idx < 0 {
				toks = append(toks, Token{Type: TokenStringBacktick, StartCol: uint32(i), EndCol: uint32(n), Text: line[i:n]})
				return toks, State{Mode: LexerStateBacktick}
			}
			inner, _ := scanLine(line[i+1:idx], 0)
			toks = append(toks, wrapSpan(TokenStringBacktick, i, idx+1, line, offsetTokens(inner, i+1)))
			i = idx + 1

		case c == '\\':
			end := i + 2
			if end > n {
				end = n
			}
			toks = append(toks, Token{Type: TokenEscape, StartCol: uint32(i), EndCol: uint32(end), Text: line[i:end]})
			i = end

		case c == '$':
			tok, newI := scanExpansion(line, i)
			toks = append(toks, tok)
			i = newI

		case strings.HasPrefix(line[i:], "<<-") || strings.HasPrefix(line[i:], "<<"):
			opLen := 2
			if strings.HasPrefix(line[i:], "<<-") {
				opLen = 3
			}
			delimStart := i + opLen
			for delimStart < n && line[delimStart] == ' ' {
				delimStart++
			}
			delimEnd := delimStart
			quotedDelim := false
			for delimEnd < n && line[delimEnd] != ' ' && line[delimEnd] != '\t' {
				if line[delimEnd] == '\'' || line[delimEnd] == '"' {
					quotedDelim = true
				}
				delimEnd++
			}
			toks = append(toks, Token{Type: TokenOperatorRedirect, StartCol: uint32(i), EndCol: uint32(delimEnd), Text: line[i:delimEnd]})
			delim := strings.Trim(line[delimStart:delimEnd], "'\"")
			_ = quotedDelim
			i = delimEnd
			rest, _ := scanLine(line, i)
			toks = append(toks, rest...)
			return toks, State{Mode: LexerStateHeredoc, Delim: delim}

		case isOperatorStart(line, i):
			op, opLen := scanOperator(line, i)
			toks = append(toks, Token{Type: op, StartCol: uint32(i), EndCol: uint32(i + opLen), Text: line[i : i+opLen]})
			i += opLen

		default:
			start := i
			for i < n && !isBreaking(line, i) {
				i++
			}
			if i == start {
				i++
				continue
			}
			word := line[start:i]
			toks = append(toks, classifyWord(word, start, i))
		}
	}
	return toks, State{Mode: LexerStateNormal}
}

// scanDoubleQuoteBody tokenizes the inside of a double-quoted string,
// recognizing nested variable/command/arithmetic expansions the way a
// real shell would still expand them inside double quotes.
func scanDoubleQuoteBody(line string, openAt, closeAt int, unterminated bool) []Token {
	inner := line[openAt+1 : closeAt]
	if unterminated {
		inner = line[openAt+1:]
	}
	var toks []Token
	literalStart := 0
	j := 0
	for j < len(inner) {
		if inner[j] == '$' {
			if literalStart < j {
				toks = append(toks, Token{Type: TokenStringDouble, StartCol: uint32(openAt + 1 + literalStart), EndCol: uint32(openAt + 1 + j), Text: inner[literalStart:j]})
			}
			tok, newJ := scanExpansion(inner, j)
			toks = append(toks, offsetToken(tok, openAt+1))
			j = newJ
			literalStart = j
			continue
		}
		if inner[j] == '\\' && j+1 < len(inner) {
			if literalStart < j {
				toks = append(toks, Token{Type: TokenStringDouble, StartCol: uint32(openAt + 1 + literalStart), EndCol: uint32(openAt + 1 + j), Text: inner[literalStart:j]})
			}
			toks = append(toks, Token{Type: TokenEscape, StartCol: uint32(openAt + 1 + j), EndCol: uint32(openAt + 1 + j + 2), Text: inner[j : j+2]})
			j += 2
			literalStart = j
			continue
		}
		j++
	}
	if literalStart < len(inner) {
		toks = append(toks, Token{Type: TokenStringDouble, StartCol: uint32(openAt + 1 + literalStart), EndCol: uint32(openAt + 1 + len(inner)), Text: inner[literalStart:]})
	}
	quoteEnd := closeAt
	if unterminated {
		quoteEnd = len(line)
	}
	opener := Token{Type: TokenStringDouble, StartCol: uint32(openAt), EndCol: uint32(openAt + 1), Text: "\""}
	result := append([]Token{opener}, toks...)
	if !unterminated {
		result = append(result, Token{Type: TokenStringDouble, StartCol: uint32(quoteEnd - 1), EndCol: uint32(quoteEnd), Text: "\""})
	}
	return result
}

// scanExpansion handles the four forms starting with '$': arithmetic
// $((...)), command substitution $(...), parameter expansion ${...},
// and bare $var / $1 / $? / $@ / $$ / $! / $#.
func scanExpansion(line string, at int) (Token, int) {
	n := len(line)
	if strings.HasPrefix(line[at:], "$((") {
		end := matchBalanced(line, at+3, '(', ')')
		closeAt := end
		if closeAt < n && closeAt+1 < n && line[closeAt] == ')' && line[closeAt+1] == ')' {
			closeAt += 2
		} else if closeAt <= n {
			closeAt = n
		}
		return Token{Type: TokenArithmeticExpansion, StartCol: uint32(at), EndCol: uint32(closeAt), Text: line[at:closeAt]}, closeAt
	}
	if strings.HasPrefix(line[at:], "$(") {
		end := matchBalanced(line, at+2, '(', ')')
		closeAt := end
		if closeAt < n && line[closeAt] == ')' {
			closeAt++
		} else {
			closeAt = n
		}
		return Token{Type: TokenCommandSubstitution, StartCol: uint32(at), EndCol: uint32(closeAt), Text: line[at:closeAt]}, closeAt
	}
	if at+1 < n && line[at+1] == '{' {
		end := matchBalanced(line, at+2, '{', '}')
		closeAt := end
		if closeAt < n && line[closeAt] == '}' {
			closeAt++
		} else {
			closeAt = n
		}
		return Token{Type: TokenParameterExpansion, StartCol: uint32(at), EndCol: uint32(closeAt), Text: line[at:closeAt]}, closeAt
	}
	if at+1 < n && strings.ContainsRune("?#@$!-*", rune(line[at+1])) {
		return Token{Type: TokenVariable, StartCol: uint32(at), EndCol: uint32(at + 2), Text: line[at : at+2]}, at + 2
	}
	j := at + 1
	for j < n && isIdentChar(line[j]) {
		j++
	}
	if j == at+1 {
		return Token{Type: TokenWord, StartCol: uint32(at), EndCol: uint32(at + 1), Text: "$"}, at + 1
	}
	return Token{Type: TokenVariable, StartCol: uint32(at), EndCol: uint32(j), Text: line[at:j]}, j
}

// matchBalanced scans from start (just past an opener already consumed)
// counting nested open/close pairs and returns the index of the final
// unmatched close, or len(line) if never balanced.
func matchBalanced(line string, start int, open, close byte) int {
	depth := 1
	i := start
	for i < len(line) {
		switch line[i] {
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return i
			}
		}
		i++
	}
	return len(line)
}

func isIdentChar(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

func isBreaking(line string, i int) bool {
	c := line[i]
	if c == ' ' || c == '\t' || c == '"' || c == '\'' || c == '`' || c == '$' || c == '#' || c == '\\' {
		return true
	}
	// '=' inside a word stays part of it, so NAME=value reaches the
	// assignment check in reclassify; a word-initial '=' is an operator.
	if c == '=' {
		return false
	}
	return isOperatorStart(line, i)
}

var multiByteOperators = []string{"&&", "||", ";;", ">>", "<<", "<&", ">&", "<>", "==", "!=", "<=", ">="}

func isOperatorStart(line string, i int) bool {
	c := line[i]
	if strings.ContainsRune("|&;<>=(){}", rune(c)) {
		return true
	}
	return false
}

func scanOperator(line string, i int) (TokenType, int) {
	for _, op := range multiByteOperators {
		if strings.HasPrefix(line[i:], op) {
			return operatorTypeFor(op), len(op)
		}
	}
	switch line[i] {
	case '|':
		return TokenOperatorPipe, 1
	case '&', ';':
		return TokenOperatorLogical, 1
	case '<', '>':
		return TokenOperatorRedirect, 1
	case '=':
		return TokenOperatorAssignment, 1
	default:
		return TokenWord, 1
	}
}

func operatorTypeFor(op string) TokenType {
	switch op {
	case "&&", "||", ";;":
		return TokenOperatorLogical
	case ">>", "<<", "<&", ">&", "<>":
		return TokenOperatorRedirect
	case "==", "!=", "<=", ">=":
		return TokenOperatorComparison
	default:
		return TokenOperatorLogical
	}
}

// classifyWord assigns a family to a raw unquoted word based on its own
// shape — number, glob, path, option — deferring command/builtin/
// keyword/function classification to the context-aware second pass.
func classifyWord(word string, start, end int) Token {
	t := TokenWord
	switch {
	case isNumberLiteral(word):
		t = TokenNumber
	case testComparisons[word]:
		t = TokenOperatorComparison
	case containsGlobMeta(word):
		t = TokenGlob
	case strings.HasPrefix(word, "--") || (strings.HasPrefix(word, "-") && word != "-"):
		t = TokenCommandOption
	case strings.HasPrefix(word, "/"):
		t = TokenPathAbsolute
	case strings.HasPrefix(word, "~"):
		t = TokenPathHome
	case strings.HasPrefix(word, "./") || strings.HasPrefix(word, "../"):
		t = TokenPathRelative
	}
	return Token{Type: t, StartCol: uint32(start), EndCol: uint32(end), Text: word}
}

func isNumberLiteral(s string) bool {
	if s == "" {
		return false
	}
	i := 0
	if s[0] == '-' || s[0] == '+' {
		i++
	}
	if i == len(s) {
		return false
	}
	seenDigit, seenDot := false, false
	for ; i < len(s); i++ {
		switch {
		case s[i] >= '0' && s[i] <= '9':
			seenDigit = true
		case s[i] == '.' && !seenDot:
			seenDot = true
		default:
			return false
		}
	}
	return seenDigit
}

func containsGlobMeta(s string) bool {
	return strings.ContainsAny(s, "*?[]")
}

func findUnescapedQuote(line string, from int, quote byte, literal bool) int {
	for i := from; i < len(line); i++ {
		if !literal && line[i] == '\\' && i+1 < len(line) {
			i++
			continue
		}
		if line[i] == quote {
			return i
		}
	}
	return -1
}

func offsetToken(t Token, delta int) Token {
	t.StartCol += uint32(delta)
	t.EndCol += uint32(delta)
	return t
}

func offsetTokens(toks []Token, delta int) []Token {
	out := make([]Token, len(toks))
	for i, t := range toks {
		out[i] = offsetToken(t, delta)
	}
	return out
}

func wrapSpan(t TokenType, start, end int, line string, _ []Token) Token {
	return Token{Type: t, StartCol: uint32(start), EndCol: uint32(end), Text: line[start:end]}
}

// reclassify is the second pass (§4.6): a small state machine walks the
// token list tracking command position, upgrading generic Word tokens
// into Command/Builtin/Keyword/FunctionName, and recognizing
// NAME=value assignment prefixes at command position.
func reclassify(toks []Token) []Token {
	atCommand := true
	for i := range toks {
		switch toks[i].Type {
		case TokenWhitespace:
			continue
		case TokenOperatorPipe, TokenOperatorLogical:
			atCommand = true
			continue
		case TokenOperatorRedirect, TokenOperatorAssignment, TokenOperatorComparison, TokenOperatorArithmetic:
			continue
		case TokenWord:
			if !atCommand {
				continue
			}
			name, isAssign := splitAssignment(toks[i].Text)
			if isAssign {
				toks[i].Type = TokenVariable
				toks[i].Text = name
				continue
			}
			switch {
			case shellKeywords[toks[i].Text]:
				toks[i].Type = TokenKeyword
				if toks[i].Text == "do" || toks[i].Text == "then" || toks[i].Text == "else" || toks[i].Text == "in" {
					continue
				}
			case shellBuiltins[toks[i].Text]:
				toks[i].Type = TokenBuiltin
				atCommand = false
			case isFunctionDef(toks, i):
				toks[i].Type = TokenFunctionName
				atCommand = false
			default:
				toks[i].Type = TokenCommand
				atCommand = false
			}
		default:
			if atCommand {
				atCommand = false
			}
		}
	}
	return toks
}

// splitAssignment reports whether text is a NAME=value prefix word
// (only the name half is returned; it's just the leading identifier).
func splitAssignment(text string) (string, bool) {
	eq := strings.IndexByte(text, '=')
	if eq <= 0 {
		return text, false
	}
	name := text[:eq]
	for i, r := range name {
		if i == 0 && !(r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')) {
			return text, false
		}
		if i > 0 && !isIdentChar(byte(r)) {
			return text, false
		}
	}
	return name, true
}

// isFunctionDef reports whether the token at i is immediately followed
// by "(" and ")" with no intervening whitespace, the `name() {`
// function-definition idiom.
func isFunctionDef(toks []Token, i int) bool {
	if i+2 >= len(toks) {
		return false
	}
	return toks[i+1].Text == "(" && toks[i+2].Text == ")" &&
		toks[i+1].StartCol == toks[i].EndCol && toks[i+2].StartCol == toks[i+1].EndCol
}

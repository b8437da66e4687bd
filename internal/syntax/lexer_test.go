package syntax

import "testing"

func tokenTypes(toks []Token) []TokenType {
	out := make([]TokenType, len(toks))
	for i, t := range toks {
		out[i] = t.Type
	}
	return out
}

func hasType(toks []Token, want TokenType) bool {
	for _, t := range toks {
		if t.Type == want {
			return true
		}
	}
	return false
}

func TestLexerSimpleCommand(t *testing.T) {
	l := NewLexer()
	toks, state := l.HighlightLine("echo hello world", State{Mode: LexerStateNormal})
	if state.Mode != LexerStateNormal {
		t.Fatalf("state = %v, want Normal", state.Mode)
	}
	if !hasType(toks, TokenCommand) {
		t.Errorf("expected a command token, got %v", tokenTypes(toks))
	}
	if toks[0].Text != "echo" || toks[0].Type != TokenCommand {
		t.Errorf("first token = %+v, want command 'echo'", toks[0])
	}
}

func TestLexerBuiltinAndKeyword(t *testing.T) {
	l := NewLexer()
	toks, _ := l.HighlightLine("if cd /tmp; then echo ok; fi", State{Mode: LexerStateNormal})
	if !hasType(toks, TokenKeyword) {
		t.Errorf("expected a keyword token, got %v", tokenTypes(toks))
	}
	if !hasType(toks, TokenBuiltin) {
		t.Errorf("expected a builtin token for 'cd', got %v", tokenTypes(toks))
	}
}

func TestLexerComment(t *testing.T) {
	l := NewLexer()
	toks, _ := l.HighlightLine("echo hi # trailing comment", State{Mode: LexerStateNormal})
	if !hasType(toks, TokenComment) {
		t.Errorf("expected a comment token, got %v", tokenTypes(toks))
	}
}

func TestLexerShebang(t *testing.T) {
	l := NewLexer()
	toks, _ := l.HighlightLine("#!/bin/bash", State{Mode: LexerStateNormal})
	if len(toks) != 1 || toks[0].Type != TokenShebang {
		t.Errorf("expected a single shebang token, got %v", tokenTypes(toks))
	}
}

func TestLexerVariableAndParameterExpansion(t *testing.T) {
	l := NewLexer()
	toks, _ := l.HighlightLine(`echo $HOME ${PATH} $1 $?`, State{Mode: LexerStateNormal})
	if !hasType(toks, TokenVariable) {
		t.Errorf("expected variable tokens, got %v", tokenTypes(toks))
	}
	if !hasType(toks, TokenParameterExpansion) {
		t.Errorf("expected a parameter-expansion token, got %v", tokenTypes(toks))
	}
}

func TestLexerCommandSubstitution(t *testing.T) {
	l := NewLexer()
	toks, _ := l.HighlightLine("echo $(date +%s)", State{Mode: LexerStateNormal})
	if !hasType(toks, TokenCommandSubstitution) {
		t.Errorf("expected a command-substitution token, got %v", tokenTypes(toks))
	}
}

func TestLexerArithmeticExpansion(t *testing.T) {
	l := NewLexer()
	toks, _ := l.HighlightLine("echo $((1 + 2))", State{Mode: LexerStateNormal})
	if !hasType(toks, TokenArithmeticExpansion) {
		t.Errorf("expected an arithmetic-expansion token, got %v", tokenTypes(toks))
	}
}

func TestLexerStrings(t *testing.T) {
	l := NewLexer()
	toks, state := l.HighlightLine(`echo 'single' "double $x" `+"`backtick`", State{Mode: LexerStateNormal})
	if state.Mode != LexerStateNormal {
		t.Fatalf("state = %v, want Normal", state.Mode)
	}
	if !hasType(toks, TokenStringSingle) {
		t.Errorf("expected a single-quote string token, got %v", tokenTypes(toks))
	}
	if !hasType(toks, TokenStringDouble) {
		t.Errorf("expected a double-quote string token, got %v", tokenTypes(toks))
	}
	if !hasType(toks, TokenStringBacktick) {
		t.Errorf("expected a backtick string token, got %v", tokenTypes(toks))
	}
}

func TestLexerUnterminatedDoubleQuoteCarriesState(t *testing.T) {
	l := NewLexer()
	_, state := l.HighlightLine(`echo "unterminated`, State{Mode: LexerStateNormal})
	if state.Mode != LexerStateDoubleQuote {
		t.Fatalf("state = %v, want DoubleQuote", state.Mode)
	}
	if !state.Unterminated() {
		t.Error("State.Unterminated() should be true")
	}

	toks, state2 := l.HighlightLine(`rest of the string"`, state)
	if state2.Mode != LexerStateNormal {
		t.Fatalf("state2 = %v, want Normal after closing quote", state2.Mode)
	}
	if !hasType(toks, TokenStringDouble) {
		t.Errorf("expected string tokens on the continuation line, got %v", tokenTypes(toks))
	}
}

func TestLexerHeredoc(t *testing.T) {
	l := NewLexer()
	toks, state := l.HighlightLine("cat <<EOF", State{Mode: LexerStateNormal})
	if state.Mode != LexerStateHeredoc || state.Delim != "EOF" {
		t.Fatalf("state = %+v, want Heredoc with delim EOF", state)
	}
	if !hasType(toks, TokenOperatorRedirect) {
		t.Errorf("expected the heredoc operator token, got %v", tokenTypes(toks))
	}

	body, state2 := l.HighlightLine("some body text", state)
	if len(body) != 1 || body[0].Type != TokenHeredoc {
		t.Errorf("body line = %v, want single heredoc token", tokenTypes(body))
	}
	if state2.Mode != LexerStateHeredoc {
		t.Fatalf("state2 = %v, want still Heredoc", state2.Mode)
	}

	_, state3 := l.HighlightLine("EOF", state2)
	if state3.Mode != LexerStateNormal {
		t.Fatalf("state3 = %v, want Normal after terminator line", state3.Mode)
	}
}

func TestLexerGlobAndPaths(t *testing.T) {
	l := NewLexer()
	toks, _ := l.HighlightLine("ls *.go ./rel /abs ~/home", State{Mode: LexerStateNormal})
	if !hasType(toks, TokenGlob) {
		t.Errorf("expected a glob token, got %v", tokenTypes(toks))
	}
	if !hasType(toks, TokenPathRelative) {
		t.Errorf("expected a relative path token, got %v", tokenTypes(toks))
	}
	if !hasType(toks, TokenPathAbsolute) {
		t.Errorf("expected an absolute path token, got %v", tokenTypes(toks))
	}
	if !hasType(toks, TokenPathHome) {
		t.Errorf("expected a home-relative path token, got %v", tokenTypes(toks))
	}
}

func TestLexerOperators(t *testing.T) {
	l := NewLexer()
	toks, _ := l.HighlightLine("ls -la | grep foo && echo yes || echo no", State{Mode: LexerStateNormal})
	if !hasType(toks, TokenOperatorPipe) {
		t.Errorf("expected a pipe operator token, got %v", tokenTypes(toks))
	}
	if !hasType(toks, TokenOperatorLogical) {
		t.Errorf("expected logical operator tokens, got %v", tokenTypes(toks))
	}
	if !hasType(toks, TokenCommandOption) {
		t.Errorf("expected a command-option token for -la, got %v", tokenTypes(toks))
	}
}

func TestLexerAssignment(t *testing.T) {
	l := NewLexer()
	toks, _ := l.HighlightLine("FOO=bar echo $FOO", State{Mode: LexerStateNormal})
	if !hasType(toks, TokenVariable) {
		t.Errorf("expected FOO= to reclassify as a variable assignment, got %v", tokenTypes(toks))
	}
	if !hasType(toks, TokenCommand) {
		t.Errorf("expected echo to still be classified as the command, got %v", tokenTypes(toks))
	}
}

func TestLexerFunctionDefinition(t *testing.T) {
	l := NewLexer()
	toks, _ := l.HighlightLine("myfunc() { echo hi; }", State{Mode: LexerStateNormal})
	if !hasType(toks, TokenFunctionName) {
		t.Errorf("expected myfunc to be classified as a function name, got %v", tokenTypes(toks))
	}
}

func TestLexerNumber(t *testing.T) {
	l := NewLexer()
	toks, _ := l.HighlightLine("sleep 10", State{Mode: LexerStateNormal})
	if !hasType(toks, TokenNumber) {
		t.Errorf("expected a number token, got %v", tokenTypes(toks))
	}
}

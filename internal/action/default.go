package action

// DefaultRegistry builds a Registry with every action this package
// implements, under the Readline-compatible names internal/keymap's
// default keymaps bind against.
func DefaultRegistry() *Registry {
	r := NewRegistry()

	r.Register("forward_char", ForwardChar)
	r.Register("backward_char", BackwardChar)
	r.Register("forward_word", ForwardWord)
	r.Register("backward_word", BackwardWord)
	r.Register("beginning_of_line", BeginningOfLine)
	r.Register("end_of_line", EndOfLine)
	r.Register("beginning_of_buffer", BeginningOfBuffer)
	r.Register("end_of_buffer", EndOfBuffer)
	r.Register("previous_line", PreviousLine)
	r.Register("next_line", NextLine)

	r.Register("delete_char", DeleteChar)
	r.Register("backward_delete_char", BackwardDeleteChar)
	r.RegisterKill("kill_word", KillWord)
	r.RegisterKill("backward_kill_word", BackwardKillWord)
	r.RegisterKill("kill_line", KillLine)
	r.RegisterKill("backward_kill_line", BackwardKillLine)
	r.RegisterKill("kill_whole_line", KillWholeLine)
	r.Register("delete_horizontal_space", DeleteHorizontalSpace)

	r.RegisterYank("yank", Yank)
	r.RegisterYank("yank_pop", YankPop)

	r.Register("self_insert", SelfInsert)
	r.Register("quoted_insert", QuotedInsert)
	r.Register("newline", Newline)
	r.Register("transpose_chars", TransposeChars)
	r.Register("transpose_words", TransposeWords)
	r.Register("upcase_word", UpcaseWord)
	r.Register("downcase_word", DowncaseWord)
	r.Register("capitalize_word", CapitalizeWord)

	r.Register("accept_line", AcceptLine)
	r.Register("previous_history", PreviousHistory)
	r.Register("next_history", NextHistory)
	r.Register("reverse_search_history", ReverseSearchHistory)
	r.Register("forward_search_history", ForwardSearchHistory)
	r.Register("history_search_backward", HistorySearchBackward)
	r.Register("history_search_forward", HistorySearchForward)

	r.Register("complete", Complete)
	r.Register("possible_completions", PossibleCompletions)
	r.Register("insert_completions", InsertCompletions)

	r.Register("abort_line", AbortLine)
	r.Register("clear_screen", ClearScreen)
	r.Register("send_eof", SendEOF)
	r.Register("interrupt", Interrupt)
	r.Register("suspend", Suspend)

	r.Register("digit_argument", DigitArgument)
	r.Register("universal_argument", UniversalArgument)

	return r
}

// Package undo provides change tracking and undo/redo for a gap buffer.
//
// The tracker records gapbuf.Change values as they are applied to a
// buffer, grouping consecutive changes into sequences so a user's burst
// of typing undoes as one step rather than one keystroke at a time.
//
// # Changes and sequences
//
// A Change is a single atomic edit (see gapbuf.Change). A Sequence is
// an ordered group of changes that undo and redo together. Sequences
// are formed two ways:
//
//   - Explicitly, via BeginSequence/EndSequence, when a caller knows a
//     multi-step edit (e.g. a paste, or "transpose word") should be one
//     undo unit.
//   - Implicitly, by auto-grouping: consecutive RecordInsert/RecordDelete
//     calls of the same kind, arriving within the auto-group timeout of
//     each other, are folded into the same sequence.
//
// # Usage
//
//	tracker := undo.NewTracker(undo.WithMaxSequences(1000))
//	if err := tracker.RecordInsert(buf, pos, "h"); err != nil { ... }
//	if err := tracker.RecordInsert(buf, pos+1, "i"); err != nil { ... } // same sequence
//	tracker.Undo(buf) // removes "hi" in one step
//
// Explicit grouping for a compound operation:
//
//	tracker.BeginSequence()
//	tracker.RecordDelete(buf, start, n)
//	tracker.RecordInsert(buf, start, replacement)
//	tracker.EndSequence()
package undo

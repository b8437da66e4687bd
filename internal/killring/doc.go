// Package killring implements the Readline-style kill ring: a bounded
// circular buffer of killed text fragments, with append-on-successive-kill
// and yank-pop cycling.
package killring

// Package parse reads the two-class training file.
//
// File layout:
//
//	line 1: class 1 points
//	line 2: class 2 points
//	further lines are ignored
//
// Line grammar:
//
//	line   = ws* [ tuple ( sep tuple )* ] ws*
//	sep    = ws* [ ',' | ';' ] ws*
//	tuple  = '(' ws* number ( ws* ',' ws* number )* ws* ')'
//	number = any literal accepted by strconv.ParseFloat (64-bit)
//
// Example: "(1, 2) (3, 4)" yields [[1 2] [3 4]].
//
// Parsing is strict: stray characters, unclosed or nested parentheses, empty
// elements and malformed numbers are rejected with a sentinel error and the
// 1-based column where the problem starts.
package parse

package parse

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// scanner walks a single line rune by rune.
type scanner struct {
	src string
	pos int // byte offset
}

func (s *scanner) eof() bool { return s.pos >= len(s.src) }

func (s *scanner) peek() rune {
	r, _ := utf8.DecodeRuneInString(s.src[s.pos:])
	return r
}

func (s *scanner) next() rune {
	r, size := utf8.DecodeRuneInString(s.src[s.pos:])
	s.pos += size
	return r
}

// column returns the 1-based rune column of byte offset off.
func (s *scanner) column(off int) int {
	return utf8.RuneCountInString(s.src[:off]) + 1
}

func (s *scanner) skipSpace() {
	for !s.eof() && unicode.IsSpace(s.peek()) {
		s.next()
	}
}

// ParseLine parses a line of parenthesized, comma-separated numeric tuples.
// An empty or blank line yields no points and no error.
func ParseLine(line string) ([][]float64, error) {
	s := &scanner{src: line}
	var points [][]float64

	s.skipSpace()
	for !s.eof() {
		if len(points) > 0 {
			if r := s.peek(); r == ',' || r == ';' {
				sepAt := s.pos
				s.next()
				s.skipSpace()
				if s.eof() {
					return nil, columnErrorf(s.column(sepAt), string(r), ErrUnexpectedChar)
				}
			}
		}
		if s.peek() != '(' {
			return nil, columnErrorf(s.column(s.pos), string(s.peek()), ErrUnexpectedChar)
		}
		p, err := s.tuple()
		if err != nil {
			return nil, err
		}
		points = append(points, p)
		s.skipSpace()
	}

	return points, nil
}

// tuple parses '(' number (',' number)* ')' starting at '('.
func (s *scanner) tuple() ([]float64, error) {
	open := s.pos
	s.next() // '('

	var (
		values []float64
		start  = s.pos
	)
	for {
		if s.eof() {
			return nil, columnErrorf(s.column(open), "", ErrUnclosedTuple)
		}
		at := s.pos
		switch r := s.next(); r {
		case ',', ')':
			v, err := element(s.src[start:at], s.column(start))
			if err != nil {
				return nil, err
			}
			values = append(values, v)
			if r == ')' {
				return values, nil
			}
			start = s.pos
		case '(':
			return nil, columnErrorf(s.column(at), "(", ErrUnexpectedChar)
		}
	}
}

// element converts one trimmed tuple slot to a float.
func element(raw string, col int) (float64, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return 0, columnErrorf(col, "", ErrEmptyElement)
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, columnErrorf(col, text, ErrBadNumber)
	}

	return v, nil
}

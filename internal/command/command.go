// Package command is the line tokenizer: an external collaborator to the
// core graph package. It turns one input line into a tagged Command the
// dispatcher can act on, or reports that the line should be ignored.
//
// The scanner is a small byte-at-a-time lexer loosely in the shape of
// internal/query/lexer.go (skipSpaces/readWord/readQuoted instead of
// next/peek/backup), specialized to the fixed command forms and
// double-quoted arguments instead of a general query grammar.
package command

import "strings"

// Kind identifies which of the five commands a line names.
type Kind int

const (
	// Unknown marks a line that should be silently ignored: an unknown
	// command name, or a malformed line (missing argument, unterminated
	// quote).
	Unknown Kind = iota
	AddEnt
	DelEnt
	AddRel
	DelRel
	Report
	End
)

// Command is a parsed input line. Only the fields relevant to Kind are
// populated; the rest are zero values.
type Command struct {
	Kind Kind
	Arg1 string // id (AddEnt/DelEnt), from (AddRel/DelRel)
	Arg2 string // to (AddRel/DelRel)
	Arg3 string // type (AddRel/DelRel)
}

// Parse tokenizes one input line (without its trailing newline) into a
// Command. ok is false for a blank line, an unrecognized command name, or
// a line with a missing or unterminated quoted argument — all of which the
// dispatcher is specified to silently ignore.
func Parse(line string) (cmd Command, ok bool) {
	l := &lexer{input: line}
	name, hasName := l.readWord()
	if !hasName {
		return Command{}, false
	}

	var result Command
	switch name {
	case "addent":
		id, got := l.readQuoted()
		if !got {
			return Command{}, false
		}
		result = Command{Kind: AddEnt, Arg1: id}
	case "delent":
		id, got := l.readQuoted()
		if !got {
			return Command{}, false
		}
		result = Command{Kind: DelEnt, Arg1: id}
	case "addrel":
		c, got := l.readTriple(AddRel)
		if !got {
			return Command{}, false
		}
		result = c
	case "delrel":
		c, got := l.readTriple(DelRel)
		if !got {
			return Command{}, false
		}
		result = c
	case "report":
		result = Command{Kind: Report}
	case "end":
		result = Command{Kind: End}
	default:
		return Command{}, false
	}

	l.skipSpaces()
	if l.pos != len(l.input) {
		// Trailing content after the expected arguments: e.g. "report
		// extra" or "addent \"a\" \"b\"". Treated the same as any other
		// malformed line.
		return Command{}, false
	}
	return result, true
}

// readTriple reads the three quoted arguments addrel/delrel share. It does
// not check for trailing content; Parse does that once, uniformly, after
// the switch.
func (l *lexer) readTriple(kind Kind) (Command, bool) {
	from, ok := l.readQuoted()
	if !ok {
		return Command{}, false
	}
	to, ok := l.readQuoted()
	if !ok {
		return Command{}, false
	}
	typ, ok := l.readQuoted()
	if !ok {
		return Command{}, false
	}
	return Command{Kind: kind, Arg1: from, Arg2: to, Arg3: typ}, true
}

// lexer scans a single command line byte-at-a-time. Tokens are separated
// by one or more spaces; quoted arguments are delimited by ASCII '"'.
type lexer struct {
	input string
	pos   int
}

func (l *lexer) skipSpaces() {
	for l.pos < len(l.input) && l.input[l.pos] == ' ' {
		l.pos++
	}
}

// readWord reads the unquoted command name token up to the next space or
// end of input.
func (l *lexer) readWord() (string, bool) {
	l.skipSpaces()
	start := l.pos
	for l.pos < len(l.input) && l.input[l.pos] != ' ' {
		l.pos++
	}
	if l.pos == start {
		return "", false
	}
	return l.input[start:l.pos], true
}

// readQuoted reads a double-quoted argument: '"', then every byte up to
// the next '"', which must be present. Returns ok=false if the leading
// quote is missing or the closing quote never appears (an unterminated
// quote; malformed lines like this are dropped by the caller).
func (l *lexer) readQuoted() (string, bool) {
	l.skipSpaces()
	if l.pos >= len(l.input) || l.input[l.pos] != '"' {
		return "", false
	}
	l.pos++
	end := strings.IndexByte(l.input[l.pos:], '"')
	if end < 0 {
		return "", false
	}
	val := l.input[l.pos : l.pos+end]
	l.pos += end + 1
	if val == "" {
		return "", false
	}
	return val, true
}

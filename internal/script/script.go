// Package script reads and runs the textual command format of the huffman
// tool: a frequency table followed by a list of commands.
//
//	5
//	a 32
//	b 25
//	c 20
//	d 18
//	e 5
//	2
//	print
//	encode abc
//
// Tokens are separated by any whitespace, so line breaks are not
// significant; they are only tracked for error messages.
package script

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chronos-tachyon/huffcode"
)

// Command names.  print takes no argument; encode takes a message and
// decode takes a bit string.
const (
	CmdPrint  = "print"
	CmdEncode = "encode"
	CmdDecode = "decode"
)

// ErrSyntax is matched by every error returned from Parse for malformed
// scripts.
var ErrSyntax = errors.New("syntax error")

// MaxTokenSize is the longest line Parse accepts, which bounds the length of
// a single message or bit string.
const MaxTokenSize = 256 << 20

// Command is one parsed command.  Line is the input line it started on.
type Command struct {
	Name string
	Arg  string
	Line int
}

// Script is a parsed frequency table followed by the commands to run
// against the code built from it.
type Script struct {
	Frequencies []huffcode.Frequency[byte]
	Commands    []Command
}

type token struct {
	text string
	line int
}

type tokenizer struct {
	sc      *bufio.Scanner
	line    int
	pending []string
}

func (tz *tokenizer) next(what string) (token, error) {
	for len(tz.pending) == 0 {
		if !tz.sc.Scan() {
			if err := tz.sc.Err(); err != nil {
				return token{}, err
			}
			return token{}, fmt.Errorf("%w: line %d: unexpected end of input, expected %s", ErrSyntax, tz.line, what)
		}
		tz.line++
		tz.pending = strings.Fields(tz.sc.Text())
	}
	tok := token{text: tz.pending[0], line: tz.line}
	tz.pending = tz.pending[1:]
	return tok, nil
}

func (tz *tokenizer) count(what string) (int, error) {
	tok, err := tz.next(what)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(tok.text)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: line %d: expected %s, got %q", ErrSyntax, tok.line, what, tok.text)
	}
	return n, nil
}

// Parse reads a complete script from r.
func Parse(r io.Reader) (*Script, error) {
	tz := &tokenizer{sc: bufio.NewScanner(r)}
	tz.sc.Buffer(make([]byte, 0, 64*1024), MaxTokenSize)

	numSymbols, err := tz.count("symbol count")
	if err != nil {
		return nil, err
	}

	// The counts are untrusted, so nothing is preallocated from them.
	s := &Script{}
	for i := 0; i < numSymbols; i++ {
		sym, err := tz.next("symbol")
		if err != nil {
			return nil, err
		}
		if len(sym.text) != 1 {
			return nil, fmt.Errorf("%w: line %d: symbol must be a single byte, got %q", ErrSyntax, sym.line, sym.text)
		}
		weight, err := tz.next("weight")
		if err != nil {
			return nil, err
		}
		w, err := strconv.ParseInt(weight.text, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: expected weight, got %q", ErrSyntax, weight.line, weight.text)
		}
		s.Frequencies = append(s.Frequencies, huffcode.Frequency[byte]{Symbol: sym.text[0], Weight: w})
	}

	numCommands, err := tz.count("command count")
	if err != nil {
		return nil, err
	}

	for i := 0; i < numCommands; i++ {
		name, err := tz.next("command")
		if err != nil {
			return nil, err
		}
		cmd := Command{Name: name.text, Line: name.line}
		switch cmd.Name {
		case CmdPrint:
		case CmdEncode:
			arg, err := tz.next("message")
			if err != nil {
				return nil, err
			}
			cmd.Arg = arg.text
		case CmdDecode:
			arg, err := tz.next("bit string")
			if err != nil {
				return nil, err
			}
			cmd.Arg = arg.text
		default:
			return nil, fmt.Errorf("%w: line %d: unknown command %q", ErrSyntax, name.line, name.text)
		}
		s.Commands = append(s.Commands, cmd)
	}
	return s, nil
}

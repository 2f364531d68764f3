package parser

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

type Verb string

const (
	ADD      Verb = "add"
	APPEND   Verb = "append"
	GET      Verb = "get"
	SET      Verb = "set"
	REMOVE   Verb = "remove"
	SIZE     Verb = "size"
	EMPTY    Verb = "empty"
	CLEAR    Verb = "clear"
	PRINT    Verb = "print"
	FRONT    Verb = "front"
	BACK     Verb = "back"
	INDEXOF  Verb = "indexof"
	CONTAINS Verb = "contains"

	CURSOR   Verb = "cursor"
	CURSORAT Verb = "cursorat"
	NEXT     Verb = "next"
	PREV     Verb = "prev"
	HASNEXT  Verb = "hasnext"
	HASPREV  Verb = "hasprev"
	NEXTIDX  Verb = "nextidx"
	PREVIDX  Verb = "previdx"
	CSET     Verb = "cset"
	CREMOVE  Verb = "cremove"
	CADD     Verb = "cadd"
)

// arity holds the number of arguments every verb takes
var arity = map[Verb]int{
	ADD:      2,
	APPEND:   1,
	GET:      1,
	SET:      2,
	REMOVE:   1,
	SIZE:     0,
	EMPTY:    0,
	CLEAR:    0,
	PRINT:    0,
	FRONT:    0,
	BACK:     0,
	INDEXOF:  1,
	CONTAINS: 1,

	CURSOR:   1,
	CURSORAT: 2,
	NEXT:     1,
	PREV:     1,
	HASNEXT:  1,
	HASPREV:  1,
	NEXTIDX:  1,
	PREVIDX:  1,
	CSET:     2,
	CREMOVE:  1,
	CADD:     2,
}

type Command struct {
	Verb Verb
	Args []string
}

// Int returns argument i parsed as a decimal integer.
func (c *Command) Int(i int) (int, error) {
	n, err := strconv.Atoi(c.Args[i])
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidArg, "'%s' is not an integer", c.Args[i])
	}
	return n, nil
}

// Parse turns one statement, as yielded by CommandDivider, into a command.
func Parse(stmt []byte) (*Command, error) {
	stmt = bytes.TrimSpace(stmt)
	stmt = bytes.TrimSuffix(stmt, []byte{';'})

	words, err := tokenize(stmt)
	if err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, ErrEmptyStatement
	}

	verb := Verb(strings.ToLower(words[0]))
	n, ok := arity[verb]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownCommand, "'%s'", words[0])
	}

	args := words[1:]
	if len(args) != n {
		return nil, errors.Wrapf(ErrArgCount, "'%s' takes %d, got %d", verb, n, len(args))
	}

	return &Command{Verb: verb, Args: args}, nil
}

// tokenize splits stmt on whitespace. Quoted words keep their whitespace
// and lose the quotes; '\' inside quotes escapes the next character.
func tokenize(stmt []byte) ([]string, error) {
	words := []string{}
	word := bytes.Buffer{}
	inWord := false
	var quote byte = 0
	escaped := false

	for _, b := range stmt {
		switch {
		case escaped:
			word.WriteByte(b)
			escaped = false
		case quote != 0 && b == '\\':
			escaped = true
		case quote != 0 && b == quote:
			quote = 0
		case quote != 0:
			word.WriteByte(b)
		case isQuote(b):
			quote = b
			inWord = true
		case b == ' ' || b == '\t' || b == '\n' || b == '\r':
			if inWord {
				words = append(words, word.String())
				word.Reset()
				inWord = false
			}
		default:
			word.WriteByte(b)
			inWord = true
		}
	}

	if quote != 0 {
		return nil, errors.Wrapf(ErrSyntax, "unterminated %c quote", quote)
	}
	if inWord {
		words = append(words, word.String())
	}
	return words, nil
}

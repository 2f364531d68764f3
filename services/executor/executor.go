package executor

import (
	"fmt"

	"go-linkedlist/parser"
	"go-linkedlist/pkg/linkedlist"

	"github.com/pkg/errors"
)

var ErrUnknownCursor = errors.New("unknown cursor")

// ExecutorService runs parsed commands against one list of strings and any
// number of named cursors over it.
type ExecutorService struct {
	list    *linkedlist.List[string]
	cursors map[string]*linkedlist.Cursor[string]
}

func New(opts *linkedlist.Options) *ExecutorService {
	return &ExecutorService{
		list:    linkedlist.New[string](opts),
		cursors: map[string]*linkedlist.Cursor[string]{},
	}
}

func (es *ExecutorService) List() *linkedlist.List[string] {
	return es.list
}

// Exec runs cmd and renders its result.
func (es *ExecutorService) Exec(cmd *parser.Command) (string, error) {
	switch cmd.Verb {
	case parser.ADD, parser.APPEND, parser.GET, parser.SET, parser.REMOVE,
		parser.SIZE, parser.EMPTY, parser.CLEAR, parser.PRINT,
		parser.FRONT, parser.BACK, parser.INDEXOF, parser.CONTAINS:
		return es.execList(cmd)
	case parser.CURSOR, parser.CURSORAT:
		return es.openCursor(cmd)
	default:
		c, ok := es.cursors[cmd.Args[0]]
		if !ok {
			return "", errors.Wrapf(ErrUnknownCursor, "'%s'", cmd.Args[0])
		}
		return es.execCursor(c, cmd)
	}
}

func render(v interface{}) string {
	return fmt.Sprintf("%v", v)
}

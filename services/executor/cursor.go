package executor

import (
	"go-linkedlist/parser"
	"go-linkedlist/pkg/linkedlist"
)

// openCursor creates a cursor, replacing any cursor of the same name.
func (es *ExecutorService) openCursor(cmd *parser.Command) (string, error) {
	name := cmd.Args[0]

	if cmd.Verb == parser.CURSOR {
		es.cursors[name] = es.list.Cursor()
		return name, nil
	}

	index, err := cmd.Int(1)
	if err != nil {
		return "", err
	}
	c, err := es.list.CursorAt(index)
	if err != nil {
		return "", err
	}
	es.cursors[name] = c
	return name, nil
}

func (es *ExecutorService) execCursor(c *linkedlist.Cursor[string], cmd *parser.Command) (string, error) {
	switch cmd.Verb {
	case parser.NEXT:
		return c.Next()
	case parser.PREV:
		return c.Previous()
	case parser.HASNEXT:
		return render(c.HasNext()), nil
	case parser.HASPREV:
		return render(c.HasPrevious()), nil
	case parser.NEXTIDX:
		return render(c.NextIndex()), nil
	case parser.PREVIDX:
		return render(c.PreviousIndex()), nil
	case parser.CSET:
		return "", c.Set(cmd.Args[1])
	case parser.CREMOVE:
		return "", c.Remove()
	default: // parser.CADD
		return "", c.Add(cmd.Args[1])
	}
}

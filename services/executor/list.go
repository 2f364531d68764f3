package executor

import (
	"go-linkedlist/parser"
	"go-linkedlist/pkg/linkedlist"
)

func (es *ExecutorService) execList(cmd *parser.Command) (string, error) {
	l := es.list

	switch cmd.Verb {
	case parser.ADD:
		index, err := cmd.Int(0)
		if err != nil {
			return "", err
		}
		return "", l.Add(index, cmd.Args[1])

	case parser.APPEND:
		ok, err := l.Append(cmd.Args[0])
		return render(ok), err

	case parser.GET:
		index, err := cmd.Int(0)
		if err != nil {
			return "", err
		}
		return l.Get(index)

	case parser.SET:
		index, err := cmd.Int(0)
		if err != nil {
			return "", err
		}
		return l.Set(index, cmd.Args[1])

	case parser.REMOVE:
		index, err := cmd.Int(0)
		if err != nil {
			return "", err
		}
		return l.Remove(index)

	case parser.SIZE:
		return render(l.Size()), nil

	case parser.EMPTY:
		return render(l.IsEmpty()), nil

	case parser.CLEAR:
		l.Clear()
		return "", nil

	case parser.PRINT:
		return l.String(), nil

	case parser.FRONT:
		return l.Front()

	case parser.BACK:
		return l.Back()

	case parser.INDEXOF:
		return render(linkedlist.IndexOf(l, cmd.Args[0])), nil

	default: // parser.CONTAINS
		return render(linkedlist.Contains(l, cmd.Args[0])), nil
	}
}

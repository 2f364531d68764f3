package parser

// CommandDivider is a bufio.SplitFunc yielding ';' terminated statements.
// A ';' inside single, double or back quotes does not end a statement and
// '\' escapes the next character inside quotes. A trailing statement without
// ';' is yielded at EOF with one appended.
func CommandDivider(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	var lastQuoteChar byte = 0
	nextCharEscaped := false
	inQuoteScope := false
	for i, b := range data {
		if inQuoteScope && nextCharEscaped {
			nextCharEscaped = false
			continue
		}
		if inQuoteScope && b == '\\' {
			nextCharEscaped = true
			continue
		}

		if isQuote(b) {
			if inQuoteScope && lastQuoteChar == b {
				inQuoteScope = false
				lastQuoteChar = 0
			} else if !inQuoteScope {
				inQuoteScope = true
				lastQuoteChar = b
			}
		}

		if !inQuoteScope && b == ';' {
			return i + 1, data[0 : i+1], nil
		}
	}

	if atEOF {
		stmt := make([]byte, len(data), len(data)+1)
		copy(stmt, data)
		return len(data), append(stmt, ';'), nil
	}

	return
}

func isQuote(b byte) bool {
	return b == '\'' || b == '"' || b == '`'
}

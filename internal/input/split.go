package input

import "strings"

// SplitGames splits a multi-game PGN text into single documents. A new
// document starts at a tag line that follows movetext and is not inside a
// brace comment. Each document is trimmed of surrounding whitespace.
func SplitGames(text string) []string {
	var games []string
	start := 0
	inMovetext := false
	inComment := false

	flush := func(end int) {
		if game := strings.TrimSpace(text[start:end]); game != "" {
			games = append(games, game)
		}
		start = end
	}

	for pos := 0; pos < len(text); {
		lineEnd := strings.IndexByte(text[pos:], '\n')
		next := len(text)
		if lineEnd != -1 {
			next = pos + lineEnd + 1
		}
		line := strings.TrimRight(text[pos:next], "\r\n")

		switch {
		case !inComment && isTagLine(line):
			if inMovetext {
				flush(pos)
				inMovetext = false
			}
		case strings.TrimSpace(line) != "":
			inMovetext = true
			inComment = scanComments(line, inComment)
		}
		pos = next
	}
	flush(len(text))
	return games
}

func isTagLine(line string) bool {
	return strings.HasPrefix(line, "[") && strings.HasSuffix(line, `"]`) && strings.Contains(line, ` "`)
}

// scanComments reports whether a brace comment is still open at the end
// of line. Comments do not nest.
func scanComments(line string, inComment bool) bool {
	for i := 0; i < len(line); i++ {
		if inComment {
			inComment = line[i] != '}'
		} else {
			inComment = line[i] == '{'
		}
	}
	return inComment
}

// SplitLines returns the non-blank lines of text with line endings and
// surrounding whitespace removed. It is used for files holding one FEN
// or SAN token per line.
func SplitLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

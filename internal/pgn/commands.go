package pgn

import (
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// parseCommands extracts embedded commands such as [%clk 0:03:00] or
// [%eval 0.17] from a comment. Later commands with the same name win.
// It returns nil if the comment holds no commands.
func parseCommands(comment string) map[string]string {
	var commands map[string]string
	rest := comment
	for {
		start := strings.Index(rest, "[%")
		if start == -1 {
			break
		}
		rest = rest[start+2:]
		end := strings.IndexByte(rest, ']')
		if end == -1 {
			break
		}
		cmd := parseCommand(rest[:end])
		rest = rest[end+1:]
		if cmd == nil {
			continue
		}
		if commands == nil {
			commands = make(map[string]string)
		}
		maps.Copy(commands, cmd)
	}
	return commands
}

func parseCommand(body string) map[string]string {
	body = strings.TrimSpace(body)
	name, value, _ := strings.Cut(body, " ")
	if name == "" {
		return nil
	}
	return map[string]string{name: strings.TrimSpace(value)}
}

// CommandNames returns the command names of a ply in sorted order.
func (p Ply) CommandNames() []string {
	names := maps.Keys(p.Commands)
	slices.Sort(names)
	return names
}

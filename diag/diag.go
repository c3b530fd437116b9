// Package diag implements component I: caret-and-tilde rendering of a
// single failing token's source span, grounded on
// internal/tunascript/error.go's SyntaxError.SourceLineWithCursor.
//
// rosed (the teacher's table-layout library, wired elsewhere in this
// module) is deliberately not used here: its InsertTableOpts lays out
// tabular data, and a single caret line under a line of source isn't a
// table — stdlib strings.Builder renders it more directly than forcing it
// through a one-row table.
package diag

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/adrcodes/lrforge/lex"
)

// Render formats a diagnostic pointing at tok's location within content, in
// the form:
//
//	<path>:<line+1>:<col+1>: error: <message>
//	<line+1> | <line text>
//	         | <spaces to col>^<tildes for size-1>
//
// linePositions is the per-source line-start byte offset table lex.Lexer
// tracks during scanning (lex.Lexer.LinePositions). If linePositions is
// empty or tok's line falls outside it, Render falls back to the single line
// "<path>: error: <message>", with no position and no source excerpt.
func Render(path string, content []byte, linePositions []int, tok lex.Token, message string) string {
	line := tok.Location.Line
	if len(linePositions) == 0 || line < 0 || line >= len(linePositions) {
		return fmt.Sprintf("%s: error: %s", path, message)
	}

	start := linePositions[line]
	end := len(content)
	if line+1 < len(linePositions) {
		end = linePositions[line+1]
	}
	lineText := strings.TrimRight(string(content[start:end]), "\r\n\x00")

	lineNum := strconv.Itoa(line + 1)
	col := tok.Location.Column
	size := tok.Location.Size
	if size < 1 {
		size = 1
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s:%d:%d: error: %s\n", path, line+1, col+1, message)
	fmt.Fprintf(&b, "%s | %s\n", lineNum, lineText)
	fmt.Fprintf(&b, "%s | %s^%s", strings.Repeat(" ", len(lineNum)), strings.Repeat(" ", col), strings.Repeat("~", size-1))

	return b.String()
}

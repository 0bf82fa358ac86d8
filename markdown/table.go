package markdown

import (
	"github.com/colbyn/monado/ast"
	"github.com/colbyn/monado/combinator"
	"github.com/colbyn/monado/parser"
	"github.com/colbyn/monado/tape"
)

// scanLine consumes the rest of the current line plus its trailing
// newline, if any, as a single tape.
func scanLine(s parser.State) (tape.Tape, parser.State, bool) {
	o := combinator.RestOfLine(s)
	if o.IsBreak() {
		return tape.Empty, s, false
	}
	line := o.Value()
	cur := o.State()
	nlOutcome := parser.Optional(combinator.Newline)(cur)
	cur = nlOutcome.State()
	if nlOutcome.Value() != nil {
		line = line.Concat(tape.Single(*nlOutcome.Value()))
	}
	return line, cur, true
}

// splitCells splits line on `|`, keeping each pipe attached to the
// end of the cell preceding it so every character in line lands in
// exactly one cell's tape: concatenating the cells in order
// reconstructs the line exactly (including any trailing newline).
func splitCells(line tape.Tape) []tape.Tape {
	chars := line.Chars()
	var cells []tape.Tape
	cellStart := 0
	for i := 0; i < len(chars); i++ {
		if chars[i].Value == '|' {
			cells = append(cells, tape.FromChars(chars[cellStart:i+1]))
			cellStart = i + 1
		}
	}
	if cellStart < len(chars) || len(cells) == 0 {
		cells = append(cells, tape.FromChars(chars[cellStart:]))
	}
	return cells
}

func rowFromLine(line tape.Tape) ast.TableRow {
	cells := splitCells(line)
	raws := make([]ast.Raw, len(cells))
	for i, c := range cells {
		raws[i] = ast.Raw{Text: c}
	}
	return ast.TableRow{Cells: raws}
}

// isSeparatorCell reports whether a cell (ignoring its trailing pipe
// or newline) matches `:?---+:?`: three or more dashes with optional
// alignment colons.
func isSeparatorCell(cell tape.Tape) bool {
	chars := cell.Chars()
	end := len(chars)
	for end > 0 && (chars[end-1].Value == '|' || chars[end-1].Value == '\n') {
		end--
	}
	start := 0
	for start < end && isInlineSpace(chars[start].Value) {
		start++
	}
	for end > start && isInlineSpace(chars[end-1].Value) {
		end--
	}
	if start >= end {
		return false
	}
	if chars[start].Value == ':' {
		start++
	}
	if end > start && chars[end-1].Value == ':' {
		end--
	}
	if end-start < 3 {
		return false
	}
	for i := start; i < end; i++ {
		if chars[i].Value != '-' {
			return false
		}
	}
	return true
}

// TableParser implements a header row, a separator row validating
// each column as `:?---+:?`, and zero or more body rows.
func TableParser(s parser.State) parser.Outcome[ast.Block] {
	headerLine, cur, ok := scanLine(s)
	if !ok {
		return parser.Break[ast.Block](s)
	}
	header := rowFromLine(headerLine)

	sepLine, cur2, ok := scanLine(cur)
	if !ok {
		return parser.Break[ast.Block](s)
	}
	sepCells := splitCells(sepLine)
	for _, c := range sepCells {
		if !isSeparatorCell(c) {
			return parser.Break[ast.Block](s)
		}
	}
	separator := ast.TableSeparatorRow{Cells: sepCells}
	cur = cur2

	var rows []ast.TableRow
	for {
		line, next, ok := scanLine(cur)
		if !ok || line.IsEmpty() {
			break
		}
		chars := line.Chars()
		hasPipe := false
		for _, c := range chars {
			if c.Value == '|' {
				hasPipe = true
				break
			}
		}
		if !hasPipe {
			break
		}
		rows = append(rows, rowFromLine(line))
		cur = next
	}

	return parser.Continue[ast.Block](ast.Table{
		Header:    header,
		Separator: separator,
		Rows:      rows,
	}, cur)
}

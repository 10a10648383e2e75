// Text rendering of factors.

package factor

import "strings"

// String renders the factor as a fixed-width text table: one column per
// scope variable, then the weight column, headed by the factor's display
// name ("weight" when anonymous). Value columns are left justified, the
// weight column right justified, weights formatted with up to six
// significant digits.
//
//	 Burglary | P(Burglary) |
//	 -------- | ----------- |
//	 true     |       0.001 |
//	 false    |       0.999 |
func (f *Factor) String() string {
	if f == nil {
		return "<nil factor>"
	}

	// 1) Assemble the cell grid: header first, then one line per row.
	width := len(f.scope) + 1
	grid := make([][]string, 0, len(f.rows)+1)
	head := make([]string, width)
	copy(head, f.scope)
	head[width-1] = f.weightLabel()
	grid = append(grid, head)
	for _, r := range f.rows {
		line := make([]string, width)
		for i, v := range r.Values {
			line[i] = formatValue(v)
		}
		line[width-1] = formatWeight(r.Weight)
		grid = append(grid, line)
	}

	// 2) Only the weight column is right justified.
	rightJustify := make([]bool, width)
	rightJustify[width-1] = true

	return renderGrid(grid, rightJustify)
}

// weightLabel names the weight column after the factor when it has a
// display name.
func (f *Factor) weightLabel() string {
	if f.name == "" {
		return "weight"
	}

	return f.name
}

// renderGrid lays out the cell grid with padded columns and a divider
// under the header line.
func renderGrid(grid [][]string, rightJustify []bool) string {
	// Column widths.
	widths := make([]int, len(grid[0]))
	for _, line := range grid {
		for c, cell := range line {
			if len(cell) > widths[c] {
				widths[c] = len(cell)
			}
		}
	}

	var b strings.Builder
	writeLine := func(line []string) {
		for c, cell := range line {
			b.WriteByte(' ')
			pad := widths[c] - len(cell)
			if rightJustify[c] {
				b.WriteString(strings.Repeat(" ", pad))
				b.WriteString(cell)
			} else {
				b.WriteString(cell)
				b.WriteString(strings.Repeat(" ", pad))
			}
			b.WriteString(" |")
		}
		b.WriteByte('\n')
	}

	writeLine(grid[0])
	for c := range grid[0] {
		b.WriteByte(' ')
		b.WriteString(strings.Repeat("-", widths[c]))
		b.WriteString(" |")
	}
	b.WriteByte('\n')
	for _, line := range grid[1:] {
		writeLine(line)
	}

	return b.String()
}

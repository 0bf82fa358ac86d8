package ast

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/colbyn/monado/tape"
)

// tapeByText lets cmp.Diff compare Tape values by their text content
// rather than failing on Tape's unexported backing slice: the table
// comparisons below care whether two trees hold the same characters,
// not whether they share storage.
var tapeByText = cmp.Comparer(func(a, b tape.Tape) bool {
	return a.String() == b.String()
})

func TestTaskListItemMarkLeafEmptyWhenAbsent(t *testing.T) {
	item := TaskListItem{
		Header: InSquareBrackets[*tape.FatChar]{
			Open:    tape.FromString("["),
			Content: nil,
			Close:   tape.FromString("]"),
		},
		Space: tape.FromString(" "),
	}
	fields := item.Fields()
	assert.Equal(t, "mark", fields[1].Key)
	assert.Equal(t, "", fields[1].Leaf)
}

func TestTaskListItemMarkLeafPresent(t *testing.T) {
	c, _ := tape.FromString("x").Head()
	item := TaskListItem{
		Header: InSquareBrackets[*tape.FatChar]{
			Open:    tape.FromString("["),
			Content: &c,
			Close:   tape.FromString("]"),
		},
		Space: tape.FromString(" "),
	}
	fields := item.Fields()
	assert.Equal(t, "x", fields[1].Leaf)
}

func TestFencedCodeBlockOmitsInfoStringWhenNil(t *testing.T) {
	block := FencedCodeBlock{
		OpenFence:  tape.FromString("```"),
		Content:    tape.FromString("code\n"),
		CloseFence: tape.FromString("```"),
	}
	fields := block.Fields()
	keys := make([]string, len(fields))
	for i, f := range fields {
		keys[i] = f.Key
	}
	assert.Equal(t, []string{"open_fence", "content", "close_fence"}, keys)
}

func TestTableReconstructsRows(t *testing.T) {
	table := Table{
		Header: TableRow{Cells: []Raw{{Text: tape.FromString("a")}, {Text: tape.FromString("b")}}},
		Separator: TableSeparatorRow{Cells: []tape.Tape{
			tape.FromString("---"), tape.FromString("---"),
		}},
		Rows: []TableRow{
			{Cells: []Raw{{Text: tape.FromString("1")}, {Text: tape.FromString("2")}}},
		},
	}
	assert.Equal(t, "ab------12", Reconstruct(table))
}

// TestTableStructuralEquality uses go-cmp instead of a field-by-field
// assert.Equal: a Table carries nested Raw/Tape slices, and a single
// tree diff pinpoints a mismatched cell far more directly than
// testify's flat struct diff would.
func TestTableStructuralEquality(t *testing.T) {
	build := func() Table {
		return Table{
			Header: TableRow{Cells: []Raw{{Text: tape.FromString("a")}, {Text: tape.FromString("b")}}},
			Separator: TableSeparatorRow{Cells: []tape.Tape{
				tape.FromString("---"), tape.FromString("---"),
			}},
			Rows: []TableRow{
				{Cells: []Raw{{Text: tape.FromString("1")}, {Text: tape.FromString("2")}}},
			},
		}
	}
	if diff := cmp.Diff(build(), build(), tapeByText); diff != "" {
		t.Fatalf("unexpected diff (-want +got):\n%s", diff)
	}
}

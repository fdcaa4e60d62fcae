package alttex_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	alttex "github.com/NicholaCharlton/AltTeX-Personal"
)

func TestTable(t *testing.T) {
	tt := []struct {
		name   string
		body   string
		render string
	}{
		{
			name:   "rules between rows",
			body:   `{|c|c|}\hline a & b \\ \hline c & d \\ \hline`,
			render: "Table with 2 columns and 2 rows. a and b next row c and d",
		},
		{
			name:   "math in cells",
			body:   `{cc} $x^2$ & y \\`,
			render: "Table with 2 columns and 1 rows. x superscript 2 and y",
		},
		{
			name:   "formatted cells",
			body:   `{cc}\hline \textbf{Name} & \alpha \\ \hline a & b \\ \hline`,
			render: "Table with 2 columns and 2 rows. Name and alpha next row a and b",
		},
		{
			name:   "escaped characters in cells",
			body:   `{cc} 50\% & \emph{x} \\`,
			render: "Table with 2 columns and 1 rows. 50 percent and x",
		},
		{
			name:   "row spacing and partial rules",
			body:   `{lr} a & b \\[2pt] \cline{1-2} c & d \\`,
			render: "Table with 2 columns and 2 rows. a and b next row c and d",
		},
		{
			name:   "position and repeated columns",
			body:   `[t]{*{3}{c}} 1 & 2 & 3 \\`,
			render: "Table with 3 columns and 1 rows. 1 and 2 and 3",
		},
		{
			name:   "rows without separators are skipped",
			body:   `{c} only \\`,
			render: "Table with 1 columns and 1 rows.",
		},
		{
			name:   "empty",
			body:   `{c}`,
			render: "Table with 1 columns and 0 rows.",
		},
	}

	renderer := alttex.New()

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			got := renderer.Table(tc.body)

			if got != tc.render {
				t.Errorf("Alt text does not match:\nWANT:\n  %#v\nGOT:\n  %#v\n", tc.render, got)
			}
		})
	}
}

func TestColumnSpecs(t *testing.T) {
	tt := []struct {
		name   string
		input  string
		output []alttex.ColumnSpec
	}{
		{
			name:  "borders",
			input: "|l|c|",
			output: []alttex.ColumnSpec{
				{BorderLeft: true, BorderRight: true, Align: "l"},
				{BorderLeft: true, BorderRight: true, Align: "c"},
			},
		},
		{
			name:  "paragraph column",
			input: "p{3cm} r",
			output: []alttex.ColumnSpec{
				{Align: "p", Width: "3cm"},
				{Align: "r"},
			},
		},
		{
			name:  "decorations are ignored",
			input: `@{}l>{\bfseries}X`,
			output: []alttex.ColumnSpec{
				{Align: "l"},
				{Align: "X"},
			},
		},
		{
			name:  "repetition",
			input: "*{2}{|c}|",
			output: []alttex.ColumnSpec{
				{BorderLeft: true, BorderRight: true, Align: "c"},
				{BorderLeft: true, BorderRight: true, Align: "c"},
			},
		},
		{
			name:   "empty",
			input:  "",
			output: nil,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			got := alttex.ColumnSpecs(tc.input)

			if diff := cmp.Diff(tc.output, got); diff != "" {
				t.Errorf("Column spec does not match (-want +got):\n%s", diff)
			}
		})
	}
}

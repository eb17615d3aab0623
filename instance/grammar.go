package instance

import (
	"math"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"

	"github.com/katalvlaran/ringtsp/matrix"
)

// MatrixExpr is the parsed form of a matrix literal.
type MatrixExpr struct {
	Rows []*RowExpr `"[" ( @@ ( "," @@ )* ","? )? "]"`
}

// RowExpr is one bracketed row.
type RowExpr struct {
	Cells []*CellExpr `"[" ( @@ ( "," @@ )* ","? )? "]"`
}

// CellExpr is either a number or the unreachable marker.
type CellExpr struct {
	Unreachable bool     `  @( Inf | "-" )`
	Value       *float64 `| @Number`
}

func (c *CellExpr) cost() float64 {
	if c.Unreachable || c.Value == nil {
		return math.Inf(1)
	}
	return *c.Value
}

var sMatrixLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Number", Pattern: `[-+]?(?:\d+\.?\d*|\.\d+)(?:[eE][-+]?\d+)?`},
	{Name: "Inf", Pattern: `(?:(?i:\+?inf(?:inity)?)|∞)`},
	{Name: "Punct", Pattern: `[\[\],-]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var parseMatrixExpr = participle.MustBuild[MatrixExpr](
	participle.Lexer(sMatrixLexer),
	participle.Elide("Comment", "Whitespace"),
)

// ParseMatrix parses a matrix literal such as "[[0, 1], [inf, 0]]".
// Rows must all have the same length and the result must be square; values
// are not checked for solver preconditions (negative costs, diagonal), which
// is the job of package tsp.
func ParseMatrix(src string) (*matrix.Dense, error) {
	expr, err := parseMatrixExpr.ParseString("", strings.TrimSpace(src))
	if err != nil {
		return nil, errors.Wrap(ErrBadMatrix, err.Error())
	}

	rows := make([][]float64, len(expr.Rows))
	for i, row := range expr.Rows {
		rows[i] = make([]float64, len(row.Cells))
		for j, cell := range row.Cells {
			rows[i][j] = cell.cost()
		}
	}

	return fromRows(rows)
}

// fromRows wraps matrix construction failures with ErrBadMatrix context.
func fromRows(rows [][]float64) (*matrix.Dense, error) {
	d, err := matrix.NewFromRows(rows)
	if err != nil {
		return nil, errors.Wrapf(ErrBadMatrix, "%d rows: %v", len(rows), err)
	}
	return d, nil
}

package mapper_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/c360studio/xea2rdf/mapper"
	"github.com/c360studio/xea2rdf/storage/storagetest"
	"github.com/geoknoesis/rdf-go/rdf"
	"github.com/stretchr/testify/require"
)

const prefixes = "@prefix ea: <http://www.sparxsystems.eu/def/ea#>.\n" +
	"@prefix rdfs: <http://www.w3.org/2000/01/rdf-schema#>.\n"

func s(v string) *string { return &v }

// render exports the rows of a single table and returns the document
// without its prefix lines.
func render(t *testing.T, table mapper.Table, columns []string, rows ...[]*string) string {
	t.Helper()

	src := storagetest.NewMemory()
	src.Put(table.Name(), storagetest.Table{Columns: columns, Rows: rows})

	var buf bytes.Buffer
	_, err := mapper.NewConverter(src, &buf, mapper.WithTables(table)).Run(context.Background())
	require.NoError(t, err)

	out := buf.String()
	require.True(t, strings.HasPrefix(out, prefixes), "missing prefixes:\n%s", out)
	return strings.TrimPrefix(out, prefixes)
}

// countTriples parses doc as Turtle and returns the number of triples.
func countTriples(t *testing.T, doc string) int {
	t.Helper()

	n := 0
	err := rdf.Parse(context.Background(), strings.NewReader(doc), rdf.FormatTurtle, func(rdf.Statement) error {
		n++
		return nil
	})
	require.NoError(t, err, "not valid Turtle:\n%s", doc)
	return n
}

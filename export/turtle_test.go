package export_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/c360studio/xea2rdf/export"
	"github.com/c360studio/xea2rdf/vocabulary/ea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestTurtleWriter_Prefixes(t *testing.T) {
	var buf bytes.Buffer
	w := export.NewTurtleWriter(&buf)

	require.NoError(t, w.WritePrefixes())
	require.NoError(t, w.Flush())

	assert.Equal(t,
		"@prefix ea: <http://www.sparxsystems.eu/def/ea#>.\n"+
			"@prefix rdfs: <http://www.w3.org/2000/01/rdf-schema#>.\n",
		buf.String())
}

func TestTurtleWriter_SubjectBlock(t *testing.T) {
	var buf bytes.Buffer
	w := export.NewTurtleWriter(&buf)

	require.NoError(t, w.BeginSubject(ea.ClassObjectProperty, "12"))
	require.NoError(t, w.GUID(ea.Guid, ptr("{ABC-123}")))
	require.NoError(t, w.String(ea.Label, ptr(`C:\temp`)))
	require.NoError(t, w.Boolean(ea.Abstract, ptr(false)))
	require.NoError(t, w.Ref(ea.Element, ea.RefObject, ptr("5")))
	require.NoError(t, w.EndSubject())
	require.NoError(t, w.Flush())

	want := "<urn:objectproperty:12> a ea:ObjectProperty;\n" +
		"  ea:guid 'ABC-123';\n" +
		"  rdfs:label '''C:\\\\temp''';\n" +
		"  ea:abstract false;\n" +
		"  ea:element <urn:object:5>;\n" +
		".\n"
	assert.Equal(t, want, buf.String())
}

func TestTurtleWriter_NilValuesWriteNothing(t *testing.T) {
	var buf bytes.Buffer
	w := export.NewTurtleWriter(&buf)

	require.NoError(t, w.BeginSubject(ea.ClassPackage, "1"))
	require.NoError(t, w.String(ea.Label, nil))
	require.NoError(t, w.Boolean(ea.Abstract, nil))
	require.NoError(t, w.GUID(ea.Guid, nil))
	require.NoError(t, w.Ref(ea.Parent, ea.RefPackage, nil))
	require.NoError(t, w.EndSubject())
	require.NoError(t, w.Flush())

	assert.Equal(t, "<urn:package:1> a ea:Package;\n.\n", buf.String())
}

func TestTurtleWriter_MultilineLiteral(t *testing.T) {
	var buf bytes.Buffer
	w := export.NewTurtleWriter(&buf)

	require.NoError(t, w.String(ea.Comment, ptr("first\nsecond")))
	require.NoError(t, w.Flush())

	assert.Equal(t, "  rdfs:comment '''first\nsecond''';\n", buf.String())
}

type failingWriter struct {
	calls int
}

var errDiskFull = errors.New("disk full")

func (f *failingWriter) Write(p []byte) (int, error) {
	f.calls++
	return 0, errDiskFull
}

func TestTurtleWriter_StickyError(t *testing.T) {
	fw := &failingWriter{}
	w := export.NewTurtleWriter(fw)

	require.NoError(t, w.BeginSubject(ea.ClassPackage, "1"))
	err := w.Flush()
	require.ErrorIs(t, err, errDiskFull)

	assert.ErrorIs(t, w.EndSubject(), errDiskFull)
	assert.ErrorIs(t, w.Flush(), errDiskFull)
	assert.ErrorIs(t, w.Err(), errDiskFull)
	assert.Equal(t, 1, fw.calls)
}

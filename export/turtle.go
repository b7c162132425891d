// Package export provides streaming Turtle serialization of EA rows.
package export

import (
	"bufio"
	"io"
	"strconv"

	"github.com/c360studio/xea2rdf/vocabulary/ea"
)

// Terminator closes a subject block. It is written on a line of its own.
const Terminator = "."

// TurtleWriter writes subject blocks to an underlying writer as they are
// produced. Output is buffered; call Flush when done.
//
// The first write error is sticky: later calls write nothing and return
// the same error.
type TurtleWriter struct {
	w   *bufio.Writer
	err error
}

// NewTurtleWriter creates a Turtle writer over w.
func NewTurtleWriter(w io.Writer) *TurtleWriter {
	return &TurtleWriter{w: bufio.NewWriter(w)}
}

// WritePrefixes writes the ea: and rdfs: prefix declarations.
func (t *TurtleWriter) WritePrefixes() error {
	for _, b := range ea.Prefixes() {
		t.line("@prefix ", b.Prefix, ": <", b.IRI, ">.")
	}
	return t.err
}

// BeginSubject opens a block for urn:{lower(class)}:{id} typed ea:{class}.
// Every call must be paired with EndSubject.
func (t *TurtleWriter) BeginSubject(class, id string) error {
	t.line("<", ea.URN(class, id), "> a ", ea.Term(class), ";")
	return t.err
}

// EndSubject closes the current block.
func (t *TurtleWriter) EndSubject() error {
	t.line(Terminator)
	return t.err
}

// String writes a triple-quoted literal. A nil value writes nothing.
func (t *TurtleWriter) String(predicate string, value *string) error {
	if value == nil {
		return t.err
	}
	t.line("  ", predicate, " '''", EscapeLongString(*value), "''';")
	return t.err
}

// Boolean writes a true/false literal. A nil value writes nothing.
func (t *TurtleWriter) Boolean(predicate string, value *bool) error {
	if value == nil {
		return t.err
	}
	t.line("  ", predicate, " ", strconv.FormatBool(*value), ";")
	return t.err
}

// GUID writes an ea_guid value with its surrounding braces removed.
// A nil value writes nothing.
func (t *TurtleWriter) GUID(predicate string, guid *string) error {
	if guid == nil {
		return t.err
	}
	t.line("  ", predicate, " '", StripGUID(*guid), "';")
	return t.err
}

// Ref writes a reference to urn:{refType}:{value}. A nil value writes
// nothing. Callers decide whether zero identifiers are suppressed.
func (t *TurtleWriter) Ref(predicate, refType string, value *string) error {
	if value == nil {
		return t.err
	}
	t.line("  ", predicate, " <urn:", refType, ":", *value, ">;")
	return t.err
}

// Flush writes any buffered output to the underlying writer.
func (t *TurtleWriter) Flush() error {
	if t.err != nil {
		return t.err
	}
	t.err = t.w.Flush()
	return t.err
}

// Err returns the first error encountered while writing.
func (t *TurtleWriter) Err() error {
	return t.err
}

func (t *TurtleWriter) line(parts ...string) {
	if t.err != nil {
		return
	}
	for _, p := range parts {
		if _, err := t.w.WriteString(p); err != nil {
			t.err = err
			return
		}
	}
	t.err = t.w.WriteByte('\n')
}

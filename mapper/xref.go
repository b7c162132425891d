package mapper

import (
	"strconv"
	"strings"

	"github.com/c360studio/xea2rdf/export"
	"github.com/c360studio/xea2rdf/storage"
	"github.com/c360studio/xea2rdf/vocabulary/ea"
)

// XRef payload kinds selected by t_xref.Name.
const (
	XRefCustomProperties = "CustomProperties"
	XRefStereotypes      = "Stereotypes"
)

const (
	propDelimiter   = "@ENDPROP;"
	stereoDelimiter = "@ENDSTEREO;"
	stereoName      = "@STEREO;Name="
)

// CustomProperty is one @NAME/@VALU/@TYPE group of a CustomProperties
// description.
type CustomProperty struct {
	Name  string
	Value string
	Type  string
}

// XRefTable exports t_xref. Subjects are numbered by row position, so the
// ids are only stable for an unchanged file.
type XRefTable struct{}

// Name implements Table.
func (XRefTable) Name() string {
	return "t_xref"
}

// Emit implements Table. Rows of any other kind are ignored.
func (XRefTable) Emit(w *export.TurtleWriter, row storage.Row) (bool, error) {
	kind := row.Get("Name")
	if kind == nil || (*kind != XRefCustomProperties && *kind != XRefStereotypes) {
		return false, nil
	}

	if err := w.BeginSubject(ea.ClassXRef, strconv.Itoa(row.Ordinal())); err != nil {
		return false, err
	}
	if err := w.GUID(ea.Client, row.Get("Client")); err != nil {
		return false, err
	}

	if desc := row.Get("Description"); desc != nil {
		var err error
		switch *kind {
		case XRefCustomProperties:
			err = emitCustomProperties(w, ParseCustomProperties(*desc))
		case XRefStereotypes:
			err = emitStereotypes(w, ParseStereotypes(*desc))
		}
		if err != nil {
			return false, err
		}
	}

	if err := w.EndSubject(); err != nil {
		return false, err
	}
	return true, nil
}

func emitCustomProperties(w *export.TurtleWriter, props []CustomProperty) error {
	for _, p := range props {
		predicate := ea.Term(p.Name)
		if p.Type == "Boolean" {
			b := p.Value == "1"
			if err := w.Boolean(predicate, &b); err != nil {
				return err
			}
			continue
		}
		value := p.Value
		if err := w.String(predicate, &value); err != nil {
			return err
		}
	}
	return nil
}

func emitStereotypes(w *export.TurtleWriter, names []string) error {
	for _, name := range names {
		if err := w.String(ea.Stereotype, &name); err != nil {
			return err
		}
	}
	return nil
}

// ParseCustomProperties splits a CustomProperties description into its
// property groups. Each of NAME, VALU and TYPE is taken from the whole
// group independently. Groups without a name are dropped.
//
// A group that lacks a marker yields the whole group for that key, so a
// malformed group can produce a garbage name. Such names are kept.
func ParseCustomProperties(desc string) []CustomProperty {
	var props []CustomProperty
	for _, seg := range strings.Split(desc, propDelimiter) {
		name := extractField(seg, "@NAME=", "@ENDNAME")
		if name == "" {
			continue
		}
		props = append(props, CustomProperty{
			Name:  name,
			Value: extractField(seg, "@VALU=", "@ENDVALU"),
			Type:  extractField(seg, "@TYPE=", "@ENDTYPE"),
		})
	}
	return props
}

// ParseStereotypes returns the stereotype names of a Stereotypes
// description in order. Empty names are dropped.
func ParseStereotypes(desc string) []string {
	var names []string
	for _, seg := range strings.Split(desc, stereoDelimiter) {
		if name := extractStereotype(seg); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// extractField returns the text between the last open marker and the last
// close marker after it. Markers must sit on a single line; a segment that
// does not have that shape is returned unchanged. A single line break at
// the very end of the segment is kept after the value.
func extractField(seg, open, close string) string {
	body, tail := cutFinalTerminator(seg)
	if hasLineTerminator(body) {
		return seg
	}
	end := strings.LastIndex(body, close)
	if end < 0 {
		return seg
	}
	start := strings.LastIndex(body[:end], open)
	if start < 0 {
		return seg
	}
	return body[start+len(open):end] + tail
}

// extractStereotype returns the name following the last usable
// "@STEREO;Name=" marker, up to the next ';'. The name may span lines, the
// text around it may not. A segment without a usable marker is returned
// unchanged.
func extractStereotype(seg string) string {
	for p := strings.LastIndex(seg, stereoName); p >= 0; p = strings.LastIndex(seg[:p], stereoName) {
		if hasLineTerminator(seg[:p]) {
			continue
		}
		start := p + len(stereoName)
		semi := strings.IndexByte(seg[start:], ';')
		if semi < 0 {
			continue
		}
		name := seg[start : start+semi]
		rest := seg[start+semi+1:]
		if !hasLineTerminator(rest) {
			return name
		}
		if body, tail := cutFinalTerminator(rest); tail != "" && !hasLineTerminator(body) {
			return name + tail
		}
	}
	return seg
}

const lineTerminators = "\n\r\u0085\u2028\u2029"

func hasLineTerminator(s string) bool {
	return strings.ContainsAny(s, lineTerminators)
}

// cutFinalTerminator splits one trailing line terminator off s.
func cutFinalTerminator(s string) (body, tail string) {
	if strings.HasSuffix(s, "\r\n") {
		return s[:len(s)-2], "\r\n"
	}
	for _, t := range []string{"\n", "\r", "\u0085", "\u2028", "\u2029"} {
		if strings.HasSuffix(s, t) {
			return s[:len(s)-len(t)], t
		}
	}
	return s, ""
}

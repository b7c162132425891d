package mapper

import (
	"math"

	"github.com/c360studio/xea2rdf/export"
	"github.com/c360studio/xea2rdf/storage"
	"github.com/c360studio/xea2rdf/vocabulary/ea"
)

// Kind selects how a column value is written.
type Kind int

const (
	// KindString writes a triple-quoted literal.
	KindString Kind = iota
	// KindFlag maps '0'/'1' to false/true and ignores anything else.
	KindFlag
	// KindGUID writes the value with its braces removed.
	KindGUID
	// KindRef writes a reference to another subject.
	KindRef
)

// Field maps one column to one predicate.
type Field struct {
	Column    string
	Predicate string
	Kind      Kind

	// RefType is the URN type of the referenced subject (KindRef only).
	RefType string
	// SkipZero suppresses references whose integer value is 0.
	SkipZero bool
	// Note runs the value through export.FilterNote first.
	Note bool
}

// Table exports the rows of one source table.
type Table interface {
	// Name is the source table queried with SELECT *.
	Name() string
	// Emit writes the subject block for row, if any. It reports whether a
	// block was written.
	Emit(w *export.TurtleWriter, row storage.Row) (bool, error)
}

// Mapping is a declarative Table.
type Mapping struct {
	Table    string
	Class    string
	IDColumn string
	// Guard, when set, names a column that must be non-null for the row
	// to be exported at all.
	Guard  string
	Fields []Field
}

// Name implements Table.
func (m Mapping) Name() string {
	return m.Table
}

// Emit implements Table.
func (m Mapping) Emit(w *export.TurtleWriter, row storage.Row) (bool, error) {
	if m.Guard != "" && row.Get(m.Guard) == nil {
		return false, nil
	}

	if err := w.BeginSubject(m.Class, subjectID(row.Get(m.IDColumn))); err != nil {
		return false, err
	}
	for _, f := range m.Fields {
		if err := emitField(w, f, row.Get(f.Column)); err != nil {
			return false, err
		}
	}
	if err := w.EndSubject(); err != nil {
		return false, err
	}
	return true, nil
}

func emitField(w *export.TurtleWriter, f Field, value *string) error {
	switch f.Kind {
	case KindFlag:
		return w.Boolean(f.Predicate, flag(value))
	case KindGUID:
		return w.GUID(f.Predicate, value)
	case KindRef:
		if f.SkipZero && sqliteInt(value) == 0 {
			return nil
		}
		return w.Ref(f.Predicate, f.RefType, value)
	default:
		if f.Note {
			value = export.FilterNote(value)
		}
		return w.String(f.Predicate, value)
	}
}

// subjectID renders a NULL id as "null", which is what earlier exports of
// the same repositories contain.
func subjectID(id *string) string {
	if id == nil {
		return "null"
	}
	return *id
}

func flag(value *string) *bool {
	if value == nil {
		return nil
	}
	var b bool
	switch *value {
	case "0":
		b = false
	case "1":
		b = true
	default:
		return nil
	}
	return &b
}

// sqliteInt converts like SQLite's integer affinity on read: leading
// whitespace, an optional sign and the longest run of digits. NULL and
// text without leading digits are 0; values beyond int64 saturate.
func sqliteInt(value *string) int64 {
	if value == nil {
		return 0
	}
	s := *value
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n' || s[i] == '\r') {
		i++
	}
	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}
	var n int64
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		d := int64(s[i] - '0')
		if n > (math.MaxInt64-d)/10 {
			// Out of range values saturate.
			if neg {
				return math.MinInt64
			}
			return math.MaxInt64
		}
		n = n*10 + d
	}
	if neg {
		return -n
	}
	return n
}

// Tables returns the exporters in document order.
func Tables() []Table {
	return []Table{
		PackageMapping,
		ObjectMapping,
		AttributeMapping,
		ConnectorMapping,
		AttributeTagMapping,
		ConnectorTagMapping,
		ObjectPropertyMapping,
		XRefTable{},
	}
}

// PackageMapping exports t_package. Every package is also a row in
// t_object with the same ea_guid.
var PackageMapping = Mapping{
	Table:    "t_package",
	Class:    ea.ClassPackage,
	IDColumn: "Package_ID",
	Fields: []Field{
		{Column: "ea_guid", Predicate: ea.Guid, Kind: KindGUID},
		{Column: "Name", Predicate: ea.Label},
		{Column: "Parent_ID", Predicate: ea.Parent, Kind: KindRef, RefType: ea.RefPackage, SkipZero: true},
		{Column: "Notes", Predicate: ea.Comment, Note: true},
	},
}

// ObjectMapping exports t_object: classes, components and every other element.
var ObjectMapping = Mapping{
	Table:    "t_object",
	Class:    ea.ClassObject,
	IDColumn: "Object_ID",
	Fields: []Field{
		{Column: "ea_guid", Predicate: ea.Guid, Kind: KindGUID},
		{Column: "Object_Type", Predicate: ea.Type},
		{Column: "Stereotype", Predicate: ea.Stereotype},
		{Column: "Name", Predicate: ea.Label},
		{Column: "Alias", Predicate: ea.Alias},
		{Column: "Abstract", Predicate: ea.Abstract, Kind: KindFlag},
		{Column: "Package_ID", Predicate: ea.Package, Kind: KindRef, RefType: ea.RefPackage},
		{Column: "Note", Predicate: ea.Comment, Note: true},
		// ProxyConnector objects point at the connector they stand for.
		{Column: "Classifier", Predicate: ea.Classifier, Kind: KindRef, RefType: ea.RefConnector, SkipZero: true},
	},
}

// AttributeMapping exports t_attribute.
var AttributeMapping = Mapping{
	Table:    "t_attribute",
	Class:    ea.ClassAttribute,
	IDColumn: "ID",
	Fields: []Field{
		{Column: "ea_guid", Predicate: ea.Guid, Kind: KindGUID},
		{Column: "Name", Predicate: ea.Label},
		{Column: "Type", Predicate: ea.Type},
		{Column: "Classifier", Predicate: ea.Classifier, Kind: KindRef, RefType: ea.RefObject},
		{Column: "Stereotype", Predicate: ea.Stereotype},
		{Column: "Object_ID", Predicate: ea.Object, Kind: KindRef, RefType: ea.RefObject},
		{Column: "Notes", Predicate: ea.Comment, Note: true},
		{Column: "LowerBound", Predicate: ea.LowerBound},
		{Column: "UpperBound", Predicate: ea.UpperBound},
	},
}

// ConnectorMapping exports t_connector with both ends and their roles.
var ConnectorMapping = Mapping{
	Table:    "t_connector",
	Class:    ea.ClassConnector,
	IDColumn: "Connector_ID",
	Fields: []Field{
		{Column: "ea_guid", Predicate: ea.Guid, Kind: KindGUID},
		{Column: "Connector_Type", Predicate: ea.Type},
		{Column: "Stereotype", Predicate: ea.Stereotype},
		{Column: "Name", Predicate: ea.Label},
		{Column: "Start_Object_ID", Predicate: ea.Start, Kind: KindRef, RefType: ea.RefObject},
		{Column: "End_Object_ID", Predicate: ea.End, Kind: KindRef, RefType: ea.RefObject},
		// PDATA1 holds the object id of an association class.
		{Column: "PDATA1", Predicate: ea.PData1, Kind: KindRef, RefType: ea.RefObject},
		{Column: "Direction", Predicate: ea.Direction},
		{Column: "SourceRole", Predicate: ea.SourceRole},
		{Column: "DestRole", Predicate: ea.DestRole},
		{Column: "SourceCard", Predicate: ea.SourceCard},
		{Column: "DestCard", Predicate: ea.DestCard},
		{Column: "SourceIsNavigable", Predicate: ea.SourceIsNavigable},
		{Column: "DestIsNavigable", Predicate: ea.DestIsNavigable},
	},
}

// AttributeTagMapping exports attribute tagged values that carry a VALUE.
var AttributeTagMapping = Mapping{
	Table:    "t_attributetag",
	Class:    ea.ClassAttributeTag,
	IDColumn: "PropertyID",
	Guard:    "VALUE",
	Fields:   tagFields("ElementID", ea.RefAttribute, "VALUE", "NOTES"),
}

// ConnectorTagMapping exports connector tagged values that carry a VALUE.
var ConnectorTagMapping = Mapping{
	Table:    "t_connectortag",
	Class:    ea.ClassConnectorTag,
	IDColumn: "PropertyID",
	Guard:    "VALUE",
	Fields:   tagFields("ElementID", ea.RefConnector, "VALUE", "NOTES"),
}

// ObjectPropertyMapping exports t_objectproperties, the element tagged values.
var ObjectPropertyMapping = Mapping{
	Table:    "t_objectproperties",
	Class:    ea.ClassObjectProperty,
	IDColumn: "PropertyID",
	Guard:    "Value",
	Fields:   tagFields("Object_ID", ea.RefObject, "Value", "Notes"),
}

func tagFields(elementColumn, elementType, valueColumn, notesColumn string) []Field {
	return []Field{
		{Column: "ea_guid", Predicate: ea.Guid, Kind: KindGUID},
		{Column: elementColumn, Predicate: ea.Element, Kind: KindRef, RefType: elementType},
		{Column: "Property", Predicate: ea.Property},
		{Column: valueColumn, Predicate: ea.Value},
		{Column: notesColumn, Predicate: ea.Notes, Note: true},
	}
}

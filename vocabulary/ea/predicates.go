package ea

// Identity and labelling predicates shared by most classes.
const (
	// Guid carries the ea_guid column with its braces removed.
	Guid = "ea:guid"

	// Label is the element name.
	Label = "rdfs:label"

	// Comment holds the note text after note filtering.
	Comment = "rdfs:comment"

	// Type is the EA element or connector type (Class, Association, ...).
	Type = "ea:type"

	// Stereotype is repeated when an XRef lists several stereotypes.
	Stereotype = "ea:stereotype"

	// Alias is the object alias.
	Alias = "ea:alias"

	// Abstract is a boolean flag on objects.
	Abstract = "ea:abstract"
)

// Structural references between subjects.
const (
	Parent     = "ea:parent"
	Package    = "ea:package"
	Classifier = "ea:classifier"
	Object     = "ea:object"
	Element    = "ea:element"
	Client     = "ea:client"

	// PData1 links an association class to its connector.
	PData1 = "ea:pdata1"
)

// Attribute multiplicity.
const (
	LowerBound = "ea:lowerBound"
	UpperBound = "ea:upperBound"
)

// Connector ends.
const (
	Start             = "ea:start"
	End               = "ea:end"
	Direction         = "ea:direction"
	SourceRole        = "ea:sourceRole"
	DestRole          = "ea:destRole"
	SourceCard        = "ea:sourceCard"
	DestCard          = "ea:destCard"
	SourceIsNavigable = "ea:sourceIsNavigable"
	DestIsNavigable   = "ea:destIsNavigable"
)

// Tagged values and object properties.
const (
	Property = "ea:property"
	Value    = "ea:value"
	Notes    = "ea:notes"
)

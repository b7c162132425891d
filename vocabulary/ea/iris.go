package ea

import "strings"

// Namespace is the base IRI for Enterprise Architect terms.
const Namespace = "http://www.sparxsystems.eu/def/ea#"

// RDFSNamespace is the RDF Schema namespace.
const RDFSNamespace = "http://www.w3.org/2000/01/rdf-schema#"

// Prefix names bound in every exported document.
const (
	PrefixEA   = "ea"
	PrefixRDFS = "rdfs"
)

// Class names. The subject URN scheme uses the lower-cased class name.
const (
	ClassPackage        = "Package"
	ClassObject         = "Object"
	ClassAttribute      = "Attribute"
	ClassConnector      = "Connector"
	ClassAttributeTag   = "Attributetag"
	ClassConnectorTag   = "Connectortag"
	ClassObjectProperty = "ObjectProperty"
	ClassXRef           = "XRef"
)

// URN types used as targets of object references.
const (
	RefPackage   = "package"
	RefObject    = "object"
	RefAttribute = "attribute"
	RefConnector = "connector"
)

// Binding is a single prefix declaration.
type Binding struct {
	Prefix string
	IRI    string
}

// Prefixes returns the prefix declarations in document order.
func Prefixes() []Binding {
	return []Binding{
		{Prefix: PrefixEA, IRI: Namespace},
		{Prefix: PrefixRDFS, IRI: RDFSNamespace},
	}
}

// Term returns the prefixed name ea:{local}. It is used for predicates
// whose local name comes from the data, such as custom properties.
func Term(local string) string {
	return PrefixEA + ":" + local
}

// IRI expands a prefixed name to a full IRI. Names with an unknown prefix
// are returned unchanged.
func IRI(qname string) string {
	prefix, local, ok := strings.Cut(qname, ":")
	if !ok {
		return qname
	}
	for _, b := range Prefixes() {
		if b.Prefix == prefix {
			return b.IRI + local
		}
	}
	return qname
}

// URN returns the synthetic subject identifier urn:{lower(class)}:{id}.
func URN(class, id string) string {
	return "urn:" + strings.ToLower(class) + ":" + id
}

// Package ea provides the RDF vocabulary used to describe Sparx Enterprise
// Architect repositories.
//
// Terms are written as prefixed names (ea:guid, rdfs:label) because the
// converter emits Turtle with the two prefix declarations returned by
// Prefixes. Use IRI to expand a prefixed name when a full IRI is needed.
//
// # Classes
//
// Every exported row becomes a subject typed with one of the classes below.
// The subject URN is built from the lower-cased class name:
//
//	Class          → Source table          → URN
//	Package        → t_package             → urn:package:<Package_ID>
//	Object         → t_object              → urn:object:<Object_ID>
//	Attribute      → t_attribute           → urn:attribute:<ID>
//	Connector      → t_connector           → urn:connector:<Connector_ID>
//	Attributetag   → t_attributetag        → urn:attributetag:<PropertyID>
//	Connectortag   → t_connectortag        → urn:connectortag:<PropertyID>
//	ObjectProperty → t_objectproperties    → urn:objectproperty:<PropertyID>
//	XRef           → t_xref                → urn:xref:<row ordinal>
package ea

package resolver

const (
	// NamespacePrefix qualifies complex types declared by the service.
	NamespacePrefix = "ns"
	// ArrayTypePrefix starts every array type name.
	ArrayTypePrefix = "ArrayOf"
)

// ArrayTypeName returns the schema name of an array whose elements are
// named elementName.
func ArrayTypeName(elementName string) string {
	return ArrayTypePrefix + elementName
}

// NamespacedReference qualifies a complex type name with the service
// namespace prefix.
func NamespacedReference(name string) string {
	return NamespacePrefix + ":" + name
}

// ArrayOfReference is the arrayType value for arrays of name.
func ArrayOfReference(name string) string {
	return NamespacedReference(name) + "[]"
}

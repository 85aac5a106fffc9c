package mapping

// Class represents one class row of a tree: a destination name per
// namespace plus the class's members. An empty string reads as "no name in
// this namespace".
type Class struct {
	Names   []string
	Fields  []*Field
	Methods []*Method
}

// Name returns the class name in the given namespace, or "" when the
// namespace is out of range or carries no name.
func (c *Class) Name(namespace int) string {
	if namespace < 0 || namespace >= len(c.Names) {
		return ""
	}
	return c.Names[namespace]
}

// AddField appends a field to the class and returns it.
func (c *Class) AddField(f *Field) *Field {
	c.Fields = append(c.Fields, f)
	return f
}

// AddMethod appends a method to the class and returns it.
func (c *Class) AddMethod(m *Method) *Method {
	c.Methods = append(c.Methods, m)
	return m
}

// Field represents one field row: per-namespace names and descriptors.
type Field struct {
	Names       []string
	Descriptors []string
}

// Name returns the field name in the given namespace, or "".
func (f *Field) Name(namespace int) string {
	if namespace < 0 || namespace >= len(f.Names) {
		return ""
	}
	return f.Names[namespace]
}

// Descriptor returns the field descriptor in the given namespace, or "".
func (f *Field) Descriptor(namespace int) string {
	if namespace < 0 || namespace >= len(f.Descriptors) {
		return ""
	}
	return f.Descriptors[namespace]
}

// Pair returns the field's (name, descriptor) pair in the given namespace.
func (f *Field) Pair(namespace int) NameDescriptorPair {
	return NameDescriptorPair{Name: f.Name(namespace), Descriptor: f.Descriptor(namespace)}
}

// Method represents one method row: per-namespace names and descriptors.
// Overloads are disambiguated by descriptor.
type Method struct {
	Names       []string
	Descriptors []string
}

// Name returns the method name in the given namespace, or "".
func (m *Method) Name(namespace int) string {
	if namespace < 0 || namespace >= len(m.Names) {
		return ""
	}
	return m.Names[namespace]
}

// Descriptor returns the method descriptor in the given namespace, or "".
func (m *Method) Descriptor(namespace int) string {
	if namespace < 0 || namespace >= len(m.Descriptors) {
		return ""
	}
	return m.Descriptors[namespace]
}

// Pair returns the method's (name, descriptor) pair in the given namespace.
func (m *Method) Pair(namespace int) NameDescriptorPair {
	return NameDescriptorPair{Name: m.Name(namespace), Descriptor: m.Descriptor(namespace)}
}

// NameDescriptorPair identifies a member signature within one namespace of
// one release.
type NameDescriptorPair struct {
	Name       string
	Descriptor string
}

package mapping

// Synthetic member names that obfuscators may not preserve consistently.
const (
	ConstructorName       = "<init>"
	StaticInitializerName = "<clinit>"
)

// IsConstructor reports whether the method is a constructor in any
// namespace. Some namespaces map a constructor's binary name inconsistently,
// so one namespace reporting "<init>" is enough.
func IsConstructor(m *Method) bool {
	for _, name := range m.Names {
		if name == ConstructorName {
			return true
		}
	}
	return false
}

// IsStaticInitializer reports whether the method is a static initializer in
// any namespace.
func IsStaticInitializer(m *Method) bool {
	for _, name := range m.Names {
		if name == StaticInitializerName {
			return true
		}
	}
	return false
}

package mapping

import "strings"

// RemapDescriptor rewrites the class references inside a field or method
// descriptor using the supplied class-name mapping. Classes without a
// mapping entry keep their original name; primitive codes and array
// dimensions pass through untouched.
func RemapDescriptor(descriptor string, classNames map[string]string) string {
	if !strings.ContainsRune(descriptor, 'L') {
		return descriptor
	}
	var b strings.Builder
	b.Grow(len(descriptor))
	for i := 0; i < len(descriptor); {
		if descriptor[i] != 'L' {
			b.WriteByte(descriptor[i])
			i++
			continue
		}
		end := strings.IndexByte(descriptor[i:], ';')
		if end < 0 {
			// unterminated object type, keep the remainder as-is
			b.WriteString(descriptor[i:])
			break
		}
		name := descriptor[i+1 : i+end]
		if mapped, ok := classNames[name]; ok {
			name = mapped
		}
		b.WriteByte('L')
		b.WriteString(name)
		b.WriteByte(';')
		i += end + 1
	}
	return b.String()
}

// Package tiny reads Tiny v2 mapping files into mapping trees. Only the
// class, field and method rows participate; parameter, local-variable and
// comment rows are skipped.
package tiny

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/viant/afs"
	"github.com/zlataovce/takenaka-sub001/mapping"
)

const (
	magic        = "tiny"
	majorVersion = "2"

	escapedNamesProperty = "escaped-names"
)

// ReadFile reads a Tiny v2 mapping file from the given URL.
func ReadFile(ctx context.Context, URL string) (*mapping.Tree, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to read mapping file %s: %w", URL, err)
	}
	tree, err := ReadSource(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse mapping file %s: %w", URL, err)
	}
	return tree, nil
}

// ReadSource parses Tiny v2 mapping data.
func ReadSource(data []byte) (*mapping.Tree, error) {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 8*1024*1024)

	if !scanner.Scan() {
		return nil, fmt.Errorf("missing header")
	}
	header := strings.Split(scanner.Text(), "\t")
	if len(header) < 4 || header[0] != magic {
		return nil, fmt.Errorf("not a tiny v2 file")
	}
	if header[1] != majorVersion {
		return nil, fmt.Errorf("unsupported major version %s", header[1])
	}
	namespaces := header[3:]

	tree := mapping.NewTree(namespaces...)
	var (
		escaped  bool
		inHeader = true
		class    *mapping.Class
		line     = 1
	)
	for scanner.Scan() {
		line++
		raw := scanner.Text()
		if raw == "" {
			continue
		}
		indent := 0
		for indent < len(raw) && raw[indent] == '\t' {
			indent++
		}
		fields := strings.Split(raw[indent:], "\t")

		if inHeader && indent == 1 {
			// file property rows follow the header directly; member rows
			// this early are malformed, not properties
			switch fields[0] {
			case "f", "m":
				return nil, fmt.Errorf("line %d: member row outside a class", line)
			case escapedNamesProperty:
				escaped = true
			}
			continue
		}
		if escaped {
			for i := 1; i < len(fields); i++ {
				fields[i] = unescape(fields[i])
			}
		}

		switch indent {
		case 0:
			inHeader = false
			if fields[0] != "c" {
				return nil, fmt.Errorf("line %d: unsupported top-level entry %q", line, fields[0])
			}
			if len(fields) < 2 {
				return nil, fmt.Errorf("line %d: class row without a name", line)
			}
			class = tree.AddClass(&mapping.Class{Names: pad(fields[1:], len(namespaces))})
		case 1:
			if class == nil {
				return nil, fmt.Errorf("line %d: member row outside a class", line)
			}
			switch fields[0] {
			case "f", "m":
				if len(fields) < 3 {
					return nil, fmt.Errorf("line %d: member row without descriptor and name", line)
				}
				names := pad(fields[2:], len(namespaces))
				descriptors := make([]string, len(namespaces))
				descriptors[0] = fields[1]
				if fields[0] == "f" {
					class.AddField(&mapping.Field{Names: names, Descriptors: descriptors})
				} else {
					class.AddMethod(&mapping.Method{Names: names, Descriptors: descriptors})
				}
			case "c":
				// class comment
			default:
				return nil, fmt.Errorf("line %d: unsupported class entry %q", line, fields[0])
			}
		default:
			// parameters, locals, member comments
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	remapDescriptors(tree)
	return tree, nil
}

// remapDescriptors derives each non-source namespace's member descriptors by
// rewriting the source descriptor with that namespace's class names. Classes
// unnamed in a namespace keep their source name inside descriptors.
func remapDescriptors(tree *mapping.Tree) {
	for ns := 1; ns < tree.NamespaceCount(); ns++ {
		classNames := make(map[string]string, len(tree.Classes))
		for _, c := range tree.Classes {
			if src, dst := c.Name(0), c.Name(ns); src != "" && dst != "" {
				classNames[src] = dst
			}
		}
		for _, c := range tree.Classes {
			for _, f := range c.Fields {
				f.Descriptors[ns] = mapping.RemapDescriptor(f.Descriptors[0], classNames)
			}
			for _, m := range c.Methods {
				m.Descriptors[ns] = mapping.RemapDescriptor(m.Descriptors[0], classNames)
			}
		}
	}
}

func pad(names []string, count int) []string {
	out := make([]string, count)
	copy(out, names)
	return out
}

func unescape(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 == len(s) {
			b.WriteByte(s[i])
			continue
		}
		i++
		switch s[i] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case '0':
			b.WriteByte(0)
		case '\\':
			b.WriteByte('\\')
		default:
			b.WriteByte('\\')
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

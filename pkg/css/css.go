// Package css holds the ordered CSS declaration sets that style chains
// accumulate and that console sinks read back.
//
// Property names may be written in camelCase (the way style objects are
// written in script) or in kebab-case; rendering always emits kebab-case.
package css

import (
	"strings"

	"github.com/pearify/chalk/pkg/stringutil"
)

// Property is a single CSS declaration.
type Property struct {
	Name  string
	Value string
}

// Declaration is an ordered set of properties. Order is kept exactly as
// written so that rendering is deterministic.
type Declaration []Property

// Decl builds a declaration from name/value pairs. A trailing name without
// a value is dropped.
func Decl(pairs ...string) Declaration {
	d := make(Declaration, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		d = append(d, Property{Name: pairs[i], Value: pairs[i+1]})
	}
	return d
}

// Kebab converts a camelCase property name to kebab-case.
func Kebab(name string) string {
	return stringutil.KebabCase(name)
}

// String renders the declaration as "name:value" pairs joined by ";".
func (d Declaration) String() string {
	if len(d) == 0 {
		return ""
	}
	var b strings.Builder
	for i, p := range d {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(Kebab(p.Name))
		b.WriteByte(':')
		b.WriteString(p.Value)
	}
	return b.String()
}

// Clone returns a copy that shares no storage with d.
func (d Declaration) Clone() Declaration {
	if d == nil {
		return Declaration{}
	}
	out := make(Declaration, len(d))
	copy(out, d)
	return out
}

// Join renders each declaration and joins the results with ";".
// Empty declarations keep their position as empty segments.
func Join(decls []Declaration) string {
	parts := make([]string, len(decls))
	for i, d := range decls {
		parts[i] = d.String()
	}
	return strings.Join(parts, ";")
}

// Parse reads a CSS declaration string such as "color: red; font-weight:bold".
// Names are lower-cased and trimmed; items without a ':' or with an empty
// name are skipped. Later duplicates are kept, so callers resolving the
// cascade should let the last one win.
func Parse(s string) Declaration {
	var d Declaration
	for _, item := range strings.Split(s, ";") {
		name, value, ok := strings.Cut(item, ":")
		if !ok {
			continue
		}
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		d = append(d, Property{Name: name, Value: strings.TrimSpace(value)})
	}
	return d
}

// Lookup returns the value of the last property called name. Both camelCase
// and kebab-case spellings match.
func (d Declaration) Lookup(name string) (string, bool) {
	want := Kebab(name)
	for i := len(d) - 1; i >= 0; i-- {
		if Kebab(d[i].Name) == want {
			return d[i].Value, true
		}
	}
	return "", false
}

// Package idl parses the small varlink-style interface description
// language: interface/type/method/error declarations with
// doc-comment capture and scalar/list/map/optional field types.
package idl

// FieldType describes one field's declared type.
type FieldType struct {
	Scalar   string // "bool", "int", "float", "string", "object", or ""
	TypeName string // dotted reference to a declared type, when Scalar == ""
	List     bool   // Scalar[] / TypeName[]
	Map      bool   // [string]Scalar / [string]TypeName
	Optional bool   // trailing "?"
}

// Field is one member of a struct type (a method's input/output, a type
// alias's body, or an error's parameter list).
type Field struct {
	Name string
	Type FieldType
}

// MemberKind tags which declaration an interface Member holds.
type MemberKind int

const (
	MemberMethod MemberKind = iota
	MemberType
	MemberError
)

// Member is one ordered entry of an Interface: a method, type alias, or
// error declaration, each with its own optional doc string.
type Member struct {
	Kind MemberKind
	Doc  string

	// Method
	Name string
	In   []Field // method input struct fields
	Out  []Field // method output struct fields

	// Type alias / Error: Fields is the struct/parameter body.
	Fields []Field
}

// Interface is a fully parsed interface description: dotted name,
// optional doc string, and its ordered member list.
type Interface struct {
	Name    string
	Doc     string
	Members []Member
}

// Methods returns the method members in declared order.
func (i *Interface) Methods() []Member {
	var out []Member
	for _, m := range i.Members {
		if m.Kind == MemberMethod {
			out = append(out, m)
		}
	}
	return out
}

// Method returns the named method member, if declared.
func (i *Interface) Method(name string) (Member, bool) {
	for _, m := range i.Members {
		if m.Kind == MemberMethod && m.Name == name {
			return m, true
		}
	}
	return Member{}, false
}

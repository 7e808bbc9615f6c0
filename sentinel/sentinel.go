// Package sentinel provides unique marker values that are distinguishable
// by identity from any legitimate user value.
//
// A sentinel is useful wherever "no value" must be told apart from values
// that are themselves empty, zero, or nil. The classic case is any-typed
// nested data: a lookup that returns nil is ambiguous when nil is a valid
// stored value, but a lookup that returns a private *sentinel.Value can
// never collide with user data.
//
//	missing := sentinel.New("missing")
//	v := probe(data)
//	if v == missing {
//	    // the position genuinely held nothing
//	}
//
// Comparison is by pointer identity: two sentinels created with the same
// name are still distinct, so a sentinel can only ever be produced by the
// code that created it.
package sentinel

// Value is a unique marker. Each Value compares equal only to itself, so a
// Value stored in any-typed data can never be confused with a legitimate
// user value, including nil.
type Value struct {
	name string
}

// New creates a fresh marker. Every call returns a distinct instance, even
// for identical names; the name is only used for diagnostics.
func New(name string) *Value {
	if name == "" {
		name = "<unnamed>"
	}
	return &Value{name: name}
}

// String returns a diagnostic representation such as "<sentinel(missing)>".
func (v *Value) String() string {
	return "<sentinel(" + v.name + ")>"
}

// Missing is the marker conventionally used to flag a missing position
// during fan-out and padding operations. Treat it as read-only.
var Missing = New("missing")

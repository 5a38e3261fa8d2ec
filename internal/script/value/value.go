// Package value implements the script language's tagged value domain
//: a sum type over Null/Any/Int/Float/Bool/String/
// GNode/Person/Family/Source/Event/Other/List/Table/Sequence, rendered
// as a Value interface with one concrete wrapper type per variant —
// the same interface-per-variant idiom as package ast.
package value

import (
	"github.com/cacack/deadends/internal/gnode"
	"github.com/cacack/deadends/internal/sequence"
)

// Kind identifies a Value's variant.
type Kind int

const (
	KindNull Kind = iota
	KindAny
	KindInt
	KindFloat
	KindBool
	KindString
	KindGNode
	KindPerson
	KindFamily
	KindSource
	KindEvent
	KindOther
	KindList
	KindTable
	KindSequence
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindAny:
		return "any"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindGNode:
		return "gnode"
	case KindPerson:
		return "person"
	case KindFamily:
		return "family"
	case KindSource:
		return "source"
	case KindEvent:
		return "event"
	case KindOther:
		return "other"
	case KindList:
		return "list"
	case KindTable:
		return "table"
	case KindSequence:
		return "sequence"
	default:
		return "unknown"
	}
}

// Value is implemented by every tagged-value variant.
type Value interface {
	Kind() Kind
}

// Null is the shared null singleton. Evaluating a field of Null yields
// Null rather than an error.
type nullValue struct{}

func (nullValue) Kind() Kind { return KindNull }

// Null is the shared singleton; every null value is this one.
var Null Value = nullValue{}

// IsNull reports whether v is the null value (including a nil Go
// interface, which callers sometimes pass instead of Null).
func IsNull(v Value) bool {
	if v == nil {
		return true
	}
	_, ok := v.(nullValue)
	return ok
}

// Any wraps an arbitrary opaque payload; used for placeholder/table
// slots the rest of the evaluator does not interpret.
type Any struct{ Payload any }

func (Any) Kind() Kind { return KindAny }

// Int is a 64-bit signed integer value.
type Int int64

func (Int) Kind() Kind { return KindInt }

// Float is a floating-point value.
type Float float64

func (Float) Kind() Kind { return KindFloat }

// Bool is a boolean value. True and False below are the shared
// singletons calls for.
type Bool bool

func (Bool) Kind() Kind { return KindBool }

// True and False are the shared boolean singletons.
var (
	True  Value = Bool(true)
	False Value = Bool(false)
)

// BoolOf returns the shared True or False singleton for b.
func BoolOf(b bool) Value {
	if b {
		return True
	}
	return False
}

// Str is a string value. Every returned Str owns its bytes; nothing in
// this package exposes a shared buffer as a Value.
type Str string

func (Str) Kind() Kind { return KindString }

// GNode wraps a node reference of any tag — the untyped variant.
type GNode struct {
	Arena *gnode.Arena
	Ref   gnode.Ref
}

func (GNode) Kind() Kind { return KindGNode }

// recordKind is implemented by the tag-checked node variants below so
// shared coercion helpers (see the eval package) can extract the
// underlying ref generically.
type recordKind struct {
	Arena *gnode.Arena
	Ref   gnode.Ref
}

// Person wraps a node reference guaranteed to be an INDI record root.
type Person struct{ recordKind }

func (Person) Kind() Kind { return KindPerson }

// Family wraps a node reference guaranteed to be a FAM record root.
type Family struct{ recordKind }

func (Family) Kind() Kind { return KindFamily }

// Source wraps a node reference guaranteed to be a SOUR record root.
type Source struct{ recordKind }

func (Source) Kind() Kind { return KindSource }

// Event wraps a node reference guaranteed to be an EVEN record root.
type Event struct{ recordKind }

func (Event) Kind() Kind { return KindEvent }

// Other wraps a node reference for any record root not otherwise
// classified.
type Other struct{ recordKind }

func (Other) Kind() Kind { return KindOther }

// Ref returns the underlying node reference of any of the tag-checked
// record variants, or NoRef for anything else.
func Ref(v Value) (arena *gnode.Arena, ref gnode.Ref, ok bool) {
	switch t := v.(type) {
	case GNode:
		return t.Arena, t.Ref, true
	case Person:
		return t.Arena, t.Ref, true
	case Family:
		return t.Arena, t.Ref, true
	case Source:
		return t.Arena, t.Ref, true
	case Event:
		return t.Arena, t.Ref, true
	case Other:
		return t.Arena, t.Ref, true
	default:
		return nil, gnode.NoRef, false
	}
}

// recordKindFor maps a RecordType to the variant constructor NewTyped
// should produce.
var recordKindFor = map[gnode.RecordType]func(recordKind) Value{
	gnode.RecordPerson: func(r recordKind) Value { return Person{r} },
	gnode.RecordFamily: func(r recordKind) Value { return Family{r} },
	gnode.RecordSource: func(r recordKind) Value { return Source{r} },
	gnode.RecordEvent:  func(r recordKind) Value { return Event{r} },
}

// NewTyped wraps root in the Person/Family/Source/Event/Other variant
// matching its record type: "the distinguished
// Person/Family/... variants all carry a node reference but guarantee
// the node's tag matches."
func NewTyped(arena *gnode.Arena, root gnode.Ref) Value {
	rk := recordKind{Arena: arena, Ref: root}
	if ctor, ok := recordKindFor[arena.TypeOf(root)]; ok {
		return ctor(rk)
	}
	return Other{rk}
}

// List is an ordered, mutable list of tagged values (the script
// language's own `list`, distinct from the index/container layer's
// List[T]).
type List struct {
	Elements []Value
}

func NewList() *List { return &List{} }

func (*List) Kind() Kind { return KindList }

// Table is a string-keyed map of tagged values, the storage behind
// `extractnames`/`extractplaces`-style multi-valued results.
type Table struct {
	Entries map[string]Value
}

func NewTable() *Table { return &Table{Entries: map[string]Value{}} }

func (*Table) Kind() Kind { return KindTable }

// Seq wraps a query-layer Sequence as a tagged value.
type Seq struct {
	Sequence *sequence.Sequence
}

func (Seq) Kind() Kind { return KindSequence }

package ast

// TraverseLoop walks GnodeExpr's subtree depth-first, child-before-
// sibling, binding GnodeIdent and LevelIdent in place at each visit
// (the body sees the live cursor, not a fresh copy each iteration).
type TraverseLoop struct {
	base
	GnodeExpr  Node
	GnodeIdent string
	LevelIdent string
	BodyStmts  Node
}

func NewTraverseLoop(file string, line int, gnodeExpr Node, gnodeIdent, levelIdent string, bodyStmts Node) *TraverseLoop {
	return &TraverseLoop{base: newBase(file, line), GnodeExpr: gnodeExpr, GnodeIdent: gnodeIdent, LevelIdent: levelIdent, BodyStmts: bodyStmts}
}

// NodesLoop iterates the immediate children of GnodeExpr's value; an
// alias shape used by `fornodes`.
type NodesLoop struct {
	base
	GnodeExpr  Node
	GnodeIdent string
	BodyStmts  Node
}

func NewNodesLoop(file string, line int, gnodeExpr Node, gnodeIdent string, bodyStmts Node) *NodesLoop {
	return &NodesLoop{base: newBase(file, line), GnodeExpr: gnodeExpr, GnodeIdent: gnodeIdent, BodyStmts: bodyStmts}
}

// ChildrenLoop iterates every CHIL of FamilyExpr's family.
type ChildrenLoop struct {
	base
	FamilyExpr Node
	ChildIdent string
	CountIdent string
	BodyStmts  Node
}

func NewChildrenLoop(file string, line int, familyExpr Node, childIdent, countIdent string, bodyStmts Node) *ChildrenLoop {
	return &ChildrenLoop{base: newBase(file, line), FamilyExpr: familyExpr, ChildIdent: childIdent, CountIdent: countIdent, BodyStmts: bodyStmts}
}

// SpousesLoop iterates PersonExpr's FAMS families, binding the
// opposite-sex spouse and the family itself.
type SpousesLoop struct {
	base
	PersonExpr  Node
	SpouseIdent string
	FamilyIdent string
	CountIdent  string
	BodyStmts   Node
}

func NewSpousesLoop(file string, line int, personExpr Node, spouseIdent, familyIdent, countIdent string, bodyStmts Node) *SpousesLoop {
	return &SpousesLoop{base: newBase(file, line), PersonExpr: personExpr, SpouseIdent: spouseIdent, FamilyIdent: familyIdent, CountIdent: countIdent, BodyStmts: bodyStmts}
}

// FamiliesLoop iterates PersonExpr's FAMS families, binding the family
// and the opposite-sex spouse.
type FamiliesLoop struct {
	base
	PersonExpr  Node
	FamilyIdent string
	SpouseIdent string
	CountIdent  string
	BodyStmts   Node
}

func NewFamiliesLoop(file string, line int, personExpr Node, familyIdent, spouseIdent, countIdent string, bodyStmts Node) *FamiliesLoop {
	return &FamiliesLoop{base: newBase(file, line), PersonExpr: personExpr, FamilyIdent: familyIdent, SpouseIdent: spouseIdent, CountIdent: countIdent, BodyStmts: bodyStmts}
}

// ParentLoopKind distinguishes FathersLoop from MothersLoop without
// duplicating the struct shape.
type ParentLoopKind int

const (
	FathersKind ParentLoopKind = iota
	MothersKind
)

// ParentLoop iterates PersonExpr's FAMC families, binding the husband
// (FathersKind) or wife (MothersKind) of each, skipping families with
// none.
type ParentLoop struct {
	base
	Kind        ParentLoopKind
	PersonExpr  Node
	ParentIdent string
	FamilyIdent string
	CountIdent  string
	BodyStmts   Node
}

func NewParentLoop(file string, line int, kind ParentLoopKind, personExpr Node, parentIdent, familyIdent, countIdent string, bodyStmts Node) *ParentLoop {
	return &ParentLoop{base: newBase(file, line), Kind: kind, PersonExpr: personExpr, ParentIdent: parentIdent, FamilyIdent: familyIdent, CountIdent: countIdent, BodyStmts: bodyStmts}
}

// FamsAsChildLoop iterates PersonExpr's FAMC families without binding
// parents, only the family and a 1-based count (the `parents` form).
type FamsAsChildLoop struct {
	base
	PersonExpr  Node
	FamilyIdent string
	CountIdent  string
	BodyStmts   Node
}

func NewFamsAsChildLoop(file string, line int, personExpr Node, familyIdent, countIdent string, bodyStmts Node) *FamsAsChildLoop {
	return &FamsAsChildLoop{base: newBase(file, line), PersonExpr: personExpr, FamilyIdent: familyIdent, CountIdent: countIdent, BodyStmts: bodyStmts}
}

// RootListKind names which root list an AllXLoop iterates.
type RootListKind int

const (
	AllPersons RootListKind = iota
	AllFamilies
	AllSources
	AllEvents
	AllOthers
)

// AllXLoop iterates an entire root list (persons/families/sources/
// events/others) in key-sorted order, skipping numeric gaps silently.
type AllXLoop struct {
	base
	Kind       RootListKind
	ElemIdent  string
	CountIdent string
	BodyStmts  Node
}

func NewAllXLoop(file string, line int, kind RootListKind, elemIdent, countIdent string, bodyStmts Node) *AllXLoop {
	return &AllXLoop{base: newBase(file, line), Kind: kind, ElemIdent: elemIdent, CountIdent: countIdent, BodyStmts: bodyStmts}
}

// ListLoop iterates an arbitrary list of tagged values.
type ListLoop struct {
	base
	ListExpr   Node
	ElemIdent  string
	CountIdent string
	BodyStmts  Node
}

func NewListLoop(file string, line int, listExpr Node, elemIdent, countIdent string, bodyStmts Node) *ListLoop {
	return &ListLoop{base: newBase(file, line), ListExpr: listExpr, ElemIdent: elemIdent, CountIdent: countIdent, BodyStmts: bodyStmts}
}

// SequenceLoop iterates a Sequence, binding the element, its stored
// value, and a 1-based count (the `forindiset` form).
type SequenceLoop struct {
	base
	SeqExpr    Node
	ElemIdent  string
	ValueIdent string
	CountIdent string
	BodyStmts  Node
}

func NewSequenceLoop(file string, line int, seqExpr Node, elemIdent, valueIdent, countIdent string, bodyStmts Node) *SequenceLoop {
	return &SequenceLoop{base: newBase(file, line), SeqExpr: seqExpr, ElemIdent: elemIdent, ValueIdent: valueIdent, CountIdent: countIdent, BodyStmts: bodyStmts}
}

// NotesLoop iterates GnodeExpr's NOTE children, binding each note's
// string value.
type NotesLoop struct {
	base
	GnodeExpr Node
	ValueIdent string
	BodyStmts Node
}

func NewNotesLoop(file string, line int, gnodeExpr Node, valueIdent string, bodyStmts Node) *NotesLoop {
	return &NotesLoop{base: newBase(file, line), GnodeExpr: gnodeExpr, ValueIdent: valueIdent, BodyStmts: bodyStmts}
}

// Package ast defines the script language's program-node tree.
// Each variant is its own concrete type implementing Node,
// following the dolthub/go-mysql-server idiom of one struct per
// expression/statement shape rather than a single tagged union —
// adding a variant means adding a type, not widening a switch's
// payload struct.
package ast

// Node is implemented by every program-node variant. All variants
// carry a source location (for error messages, 
// "Error in <file> at line <N>" prefix), an optional parent
// back-pointer, and a next pointer for chaining statements within a
// block.
type Node interface {
	File() string
	Line() int
	Parent() Node
	SetParent(Node)
	Next() Node
	SetNext(Node)
}

// base is embedded by every concrete variant to supply the common
// Node fields without repeating their plumbing in each type.
type base struct {
	file   string
	line   int
	parent Node
	next   Node
}

func newBase(file string, line int) base {
	return base{file: file, line: line}
}

func (b *base) File() string    { return b.file }
func (b *base) Line() int       { return b.line }
func (b *base) Parent() Node    { return b.parent }
func (b *base) SetParent(p Node) { b.parent = p }
func (b *base) Next() Node      { return b.next }
func (b *base) SetNext(n Node)  { b.next = n }

// LinkStmts chains a slice of statement nodes via Next/Parent and
// returns the head (nil if stmts is empty), the shape every
// *Stmts-bearing variant below expects for its body.
func LinkStmts(parent Node, stmts []Node) Node {
	var head Node
	var prev Node
	for _, s := range stmts {
		s.SetParent(parent)
		if head == nil {
			head = s
		} else {
			prev.SetNext(s)
		}
		prev = s
	}
	return head
}

// Stmts walks a Next chain starting at head into a slice, the inverse
// of LinkStmts.
func Stmts(head Node) []Node {
	var out []Node
	for n := head; n != nil; n = n.Next() {
		out = append(out, n)
	}
	return out
}

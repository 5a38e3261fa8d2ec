package gnode

import "testing"

func buildFamilyTree(a *Arena) Ref {
	indi := a.New("INDI", "")
	a.SetKey(indi, "@I1@")
	name := a.New("NAME", "John /Smith/")
	a.AppendChild(indi, name)
	birt := a.New("BIRT", "")
	date := a.New("DATE", "1 JAN 1900")
	a.AppendChild(birt, date)
	a.AppendChild(indi, birt)
	return indi
}

func TestTreeStructureAndOrder(t *testing.T) {
	a := NewArena()
	indi := buildFamilyTree(a)

	children := a.Children(indi)
	if len(children) != 2 {
		t.Fatalf("len(children) = %d, want 2", len(children))
	}
	if a.Tag(children[0]) != "NAME" || a.Tag(children[1]) != "BIRT" {
		t.Fatalf("child order not preserved: %v", children)
	}
	for _, c := range children {
		if a.Parent(c) != indi {
			t.Fatalf("child %v parent mismatch", c)
		}
	}
}

func TestRootTraversal(t *testing.T) {
	a := NewArena()
	indi := buildFamilyTree(a)
	birt := a.FirstChildWithTag(indi, "BIRT")
	date := a.FirstChildWithTag(birt, "DATE")

	root, err := a.Root(date)
	if err != nil {
		t.Fatalf("Root() error: %v", err)
	}
	if root != indi {
		t.Fatalf("Root() = %v, want %v", root, indi)
	}
}

func TestRootOverflowOnCycle(t *testing.T) {
	a := NewArena()
	n1 := a.New("A", "")
	n2 := a.New("B", "")
	// Manufacture a cycle: n1's parent is n2 and n2's parent is n1.
	a.rec(n1).parent = n2
	a.rec(n2).parent = n1

	if _, err := a.Root(n1); err != ErrOverflow {
		t.Fatalf("Root() error = %v, want ErrOverflow", err)
	}
}

func TestTraverseOrderAndDepth(t *testing.T) {
	a := NewArena()
	indi := buildFamilyTree(a)

	var visited []string
	var depths []int
	err := a.Traverse(indi, func(n Ref, depth int) bool {
		visited = append(visited, a.Tag(n))
		depths = append(depths, depth)
		return true
	})
	if err != nil {
		t.Fatalf("Traverse() error: %v", err)
	}
	want := []string{"INDI", "NAME", "BIRT", "DATE"}
	if len(visited) != len(want) {
		t.Fatalf("visited = %v, want %v", visited, want)
	}
	for i := range want {
		if visited[i] != want[i] {
			t.Fatalf("visited[%d] = %s, want %s", i, visited[i], want[i])
		}
	}
	if depths[0] != 0 || depths[1] != 1 || depths[2] != 1 || depths[3] != 2 {
		t.Fatalf("depths = %v", depths)
	}
}

func TestDeleteNodeRefusesRoot(t *testing.T) {
	a := NewArena()
	indi := buildFamilyTree(a)
	if err := a.DeleteNode(indi); err != ErrDeleteRoot {
		t.Fatalf("DeleteNode(root) error = %v, want ErrDeleteRoot", err)
	}
}

func TestDeleteNodeDetachesChild(t *testing.T) {
	a := NewArena()
	indi := buildFamilyTree(a)
	name := a.FirstChildWithTag(indi, "NAME")

	if err := a.DeleteNode(name); err != nil {
		t.Fatalf("DeleteNode() error: %v", err)
	}
	children := a.Children(indi)
	if len(children) != 1 || a.Tag(children[0]) != "BIRT" {
		t.Fatalf("children after delete = %v", children)
	}
}

func TestCopySubtreeIsIndependent(t *testing.T) {
	a := NewArena()
	indi := buildFamilyTree(a)
	cp := a.CopySubtree(indi)

	if a.Key(cp) != "" {
		t.Fatalf("copy should not carry the original's key")
	}
	a.SetValue(a.FirstChildWithTag(cp, "NAME"), "Changed")
	if a.Value(a.FirstChildWithTag(indi, "NAME")) == "Changed" {
		t.Fatalf("mutating the copy should not affect the original")
	}
}

func TestCompareKeysNumericOrder(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"@I2@", "@I10@", -1},
		{"@I10@", "@I2@", 1},
		{"@I5@", "@I5@", 0},
		{"@F1@", "@I1@", -1}, // letter compares first
	}
	for _, c := range cases {
		got := CompareKeys(c.a, c.b)
		sign := func(n int) int {
			switch {
			case n < 0:
				return -1
			case n > 0:
				return 1
			default:
				return 0
			}
		}
		if sign(got) != c.want {
			t.Errorf("CompareKeys(%q, %q) = %d, want sign %d", c.a, c.b, got, c.want)
		}
	}
}

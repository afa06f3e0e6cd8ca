// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"reflect"
	"testing"
)

func TestBuildSet_SortsLexicographically(t *testing.T) {
	set := BuildSet([]Repository{
		{Path: "/srv/c"},
		{Path: "/srv/a"},
	}, []Repository{
		{Path: "/srv/b", Ancestor: true},
	})

	got := make([]string, len(set))
	for i, r := range set {
		got[i] = r.Path
	}
	want := []string{"/srv/a", "/srv/b", "/srv/c"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("BuildSet() order = %v, want %v", got, want)
	}
}

func TestBuildSet_FirstOccurrenceWins(t *testing.T) {
	set := BuildSet([]Repository{
		{Path: "/srv/a"},
	}, []Repository{
		{Path: "/srv/a", Ancestor: true},
	})

	if len(set) != 1 {
		t.Fatalf("BuildSet() len = %d, want 1", len(set))
	}
	if set[0].Ancestor {
		t.Error("BuildSet() kept the ancestor duplicate, want the first (tree) occurrence")
	}
}

func TestBuildSet_EmptyInputsYieldEmptySet(t *testing.T) {
	set := BuildSet(nil, nil)
	if len(set) != 0 {
		t.Errorf("BuildSet(nil, nil) = %v, want empty", set)
	}
}

func TestBuildSet_DoesNotMutateInputs(t *testing.T) {
	tree := []Repository{{Path: "/srv/b"}, {Path: "/srv/a"}}
	BuildSet(tree, nil)

	if tree[0].Path != "/srv/b" || tree[1].Path != "/srv/a" {
		t.Errorf("BuildSet() mutated its input: %v", tree)
	}
}

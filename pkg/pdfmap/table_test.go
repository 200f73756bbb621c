package pdfmap

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTableText(t *testing.T) {
	table := NewTable()
	table.Text("a", "value")
	table.Text("b", "  padded  ")
	table.Text("c", "")
	table.Text("d", "   ")
	table.Text("", "orphan")

	want := []Entry{{ID: "a", Value: "value"}, {ID: "b", Value: "padded"}}
	if diff := cmp.Diff(want, table.Entries()); diff != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", diff)
	}
}

func TestTableCheck(t *testing.T) {
	table := NewTable()
	table.Check("on", true)
	table.Check("off", false)

	if got, ok := table.Get("on"); !ok || got != "1" {
		t.Errorf("Get(on) = %q, %v", got, ok)
	}
	if _, ok := table.Get("off"); ok {
		t.Error("unchecked box entered the table")
	}
}

func TestTableConflict(t *testing.T) {
	table := NewTable()
	table.Text("id", "first")
	table.Text("id", "first")
	if err := table.Err(); err != nil {
		t.Fatalf("re-recording the same value errored: %v", err)
	}

	table.Text("id", "second")
	err := table.Err()
	if err == nil {
		t.Fatal("conflicting write went unreported")
	}
	if !strings.Contains(err.Error(), `"first" vs "second"`) {
		t.Errorf("Err() = %v", err)
	}
	if got, _ := table.Get("id"); got != "first" {
		t.Errorf("Get(id) = %q, the first value should win", got)
	}
}

func TestTableSorted(t *testing.T) {
	table := NewTable()
	table.Text("z", "1")
	table.Text("a", "2")
	table.Text("m", "3")

	wantOrder := []Entry{{ID: "z", Value: "1"}, {ID: "a", Value: "2"}, {ID: "m", Value: "3"}}
	if diff := cmp.Diff(wantOrder, table.Entries()); diff != "" {
		t.Errorf("insertion order mismatch (-want +got):\n%s", diff)
	}

	wantSorted := []Entry{{ID: "a", Value: "2"}, {ID: "m", Value: "3"}, {ID: "z", Value: "1"}}
	if diff := cmp.Diff(wantSorted, table.Sorted()); diff != "" {
		t.Errorf("sorted order mismatch (-want +got):\n%s", diff)
	}
	if table.Len() != 3 {
		t.Errorf("Len() = %d", table.Len())
	}
}

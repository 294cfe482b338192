package huffzip

import (
	"fmt"
	"strings"
	"testing"
)

func walkString(tree Tree) string {
	var parts []string
	tree.Walk(func(symbol Symbol, depth uint) {
		parts = append(parts, fmt.Sprintf("%d:%d", symbol, depth))
	})
	return strings.Join(parts, " ")
}

func TestBuildTree(t *testing.T) {
	type testRow struct {
		name      string
		hist      *Histogram
		expectLen int
		expectW   string
	}

	var scenario Histogram
	scenario.Scan([]byte("aaaabbbcc"))

	testData := [...]testRow{
		{name: "empty", hist: makeTestHistogram(), expectLen: 0, expectW: ""},
		{name: "single", hist: makeTestHistogram(0, 0, 7), expectLen: 1, expectW: "2:0"},
		{name: "scenario", hist: &scenario, expectLen: 5, expectW: "97:1 99:2 98:2"},
		{name: "classic", hist: makeTestHistogram(5, 9, 12, 13, 16, 45), expectLen: 11, expectW: "5:1 2:3 3:3 0:4 1:4 4:3"},
		{name: "ties-3", hist: makeTestHistogram(1, 1, 1), expectLen: 5, expectW: "2:1 0:2 1:2"},
		{name: "ties-4", hist: makeTestHistogram(1, 1, 1, 1), expectLen: 7, expectW: "0:2 1:2 2:2 3:2"},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			tree := BuildTree(row.hist)
			if tree.Len() != row.expectLen {
				t.Errorf("expected %d nodes, got %d", row.expectLen, tree.Len())
			}
			if tree.Freq() != row.hist.Total() {
				t.Errorf("expected root frequency %d, got %d", row.hist.Total(), tree.Freq())
			}
			if tree.NumLeaves() != row.hist.Distinct() {
				t.Errorf("expected %d leaves, got %d", row.hist.Distinct(), tree.NumLeaves())
			}
			if actual := walkString(tree); actual != row.expectW {
				t.Errorf("wrong walk:\n\texpect: %s\n\tactual: %s", row.expectW, actual)
			}
		})
	}
}

func TestBuildTree_Deterministic(t *testing.T) {
	h := makeTestHistogram(3, 3, 3, 1, 1, 2, 2, 8, 8, 8)
	expect := walkString(BuildTree(h))
	for i := 0; i < 10; i++ {
		if actual := walkString(BuildTree(h)); actual != expect {
			t.Fatalf("walk %d differs:\n\texpect: %s\n\tactual: %s", i, expect, actual)
		}
	}
}

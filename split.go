package gst

import "strings"

// testAndSplit decides whether the string alpha+t is already represented
// in the subtree rooted at s, splitting an edge in place when it is not.
// remainder is the full suffix of the key still to be inserted starting
// at t; id is the payload being attached.
//
// Returns (endpoint, r): endpoint is true when alpha+t is already
// represented (no structural change was needed); r is the anchor node a
// new leaf should be attached to when endpoint is false.
func testAndSplit(s *node, alpha string, t byte, remainder string, id int) (bool, *node) {
	s, alpha = canonize(s, alpha)

	if len(alpha) > 0 {
		g := s.getEdge(alpha[0])
		if g == nil {
			violate("testAndSplit", "canonical locus references a missing edge")
		}
		label := g.label
		if len(label) > len(alpha) && label[len(alpha)] == t {
			return true, s
		}

		r := newNode()
		s.putEdge(&edge{label: alpha, dest: r})
		r.putEdge(&edge{label: label[len(alpha):], dest: g.dest})
		return false, r
	}

	e := s.getEdge(t)
	if e == nil {
		return false, s
	}
	switch {
	case e.label == remainder:
		e.dest.addRef(id)
		return true, s
	case strings.HasPrefix(remainder, e.label):
		return true, s
	case strings.HasPrefix(e.label, remainder):
		n := newNode()
		n.addRef(id)
		e.label = e.label[len(remainder):]
		s.putEdge(&edge{label: remainder, dest: n})
		n.putEdge(e)
		return false, s
	default:
		// Neither remainder nor e.label is a prefix of the other, though
		// they share first byte t. No split happens here; the disagreement
		// resolves on a later suffix-link jump within the same Update call.
		// See the "cacacato" / "addressrestricted" regression tests.
		return true, s
	}
}

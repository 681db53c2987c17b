package gst

import "strings"

// canonize reduces the locus (s, alpha) to its canonical form, where
// alpha cannot be fully consumed by any single outgoing edge of s.
// Preconditions: whenever alpha is non-empty, its first byte must key an
// existing edge of the current s — callers are responsible for only ever
// presenting well-formed loci.
func canonize(s *node, alpha string) (*node, string) {
	for len(alpha) > 0 {
		e := s.getEdge(alpha[0])
		if e == nil || !strings.HasPrefix(alpha, e.label) {
			break
		}
		alpha = alpha[len(e.label):]
		s = e.dest
	}
	return s, alpha
}

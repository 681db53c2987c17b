package gst

// dropLast returns s with its final character removed, or s itself if s
// is already empty. tau can shrink to "" one character at a time while
// walking suffix links off the root, and slicing that directly would
// panic.
func dropLast(s string) string {
	if s == "" {
		return s
	}
	return s[:len(s)-1]
}

// update runs Ukkonen's extension step for a single new character c of
// the key currently being inserted, generalized to a multi-string tree
// by reusing any branch testAndSplit already attached id to, rather than
// assuming every leaf is freshly created.
//
// (s, alpha) is the canonical active point on entry; remainder is the
// full suffix of the key starting at c. It returns the new canonical
// active point for the next character.
func (t *Tree) update(s *node, alpha string, c byte, remainder string, id int) (*node, string) {
	oldRoot := t.root
	tau := alpha + string(c)

	endpoint, rAnchor := testAndSplit(s, alpha, c, remainder, id)
	for !endpoint {
		var leaf *node
		if e := rAnchor.getEdge(c); e != nil {
			// testAndSplit already attached id to e.dest when it created
			// this branch earlier in the same call.
			leaf = e.dest
		} else {
			leaf = newNode()
			leaf.addRef(id)
			rAnchor.putEdge(&edge{label: remainder, dest: leaf})
		}

		if t.activeLeaf != t.root {
			t.activeLeaf.suffixLink = leaf
		}
		t.activeLeaf = leaf

		if oldRoot != t.root {
			oldRoot.suffixLink = rAnchor
		}
		oldRoot = rAnchor

		if s.suffixLink == nil {
			if s != t.root {
				violate("update", "node without a suffix link is not root")
			}
			tau = tau[1:]
		} else {
			var tauRest string
			s, tauRest = canonize(s.suffixLink, dropLast(tau))
			tau = tauRest + tau[len(tau)-1:]
		}
		endpoint, rAnchor = testAndSplit(s, dropLast(tau), c, remainder, id)
	}

	if oldRoot != t.root {
		oldRoot.suffixLink = rAnchor
	}

	return canonize(s, tau)
}

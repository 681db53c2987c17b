// Package gst implements an in-memory generalized suffix tree: an index
// that ingests (string, id) pairs and answers, for any query string,
// the set of ids whose associated string contains the query as a
// substring.
//
// Construction follows Ukkonen's on-line algorithm, generalized across
// multiple inserted strings by propagating payload ids along suffix-link
// chains. Search cost is O(len(query)) plus the size of the result;
// insertion cost is amortized linear in the length of the inserted key.
//
// The tree is single-writer: Put must not be called concurrently with
// itself or with Search. Concurrent Search calls on a tree that is no
// longer being mutated are safe, since Search never writes to a node.
package gst

// Package index is the core, providing the prefix trie over catalog tokens and the build pass that fills it.
package index

import "sort"

// TrieNode is one character position in the token alphabet. Children are
// exclusively owned by their parent; bookIDs holds the identifiers of every
// record whose token ends exactly at this node.
type TrieNode struct {
	children map[rune]*TrieNode
	isEnd    bool
	bookIDs  []int
}

func newTrieNode() *TrieNode {
	return &TrieNode{children: make(map[rune]*TrieNode)}
}

// Trie maps word prefixes to the records containing a matching token.
// It is built once and must not be mutated afterwards; a built Trie is safe
// for unsynchronized concurrent reads.
type Trie struct {
	root *TrieNode
	size int
}

func NewTrie() *Trie {
	return &Trie{root: newTrieNode()}
}

// Insert walks the path for token, creating nodes as needed, marks the final
// node terminal and appends bookID there. Empty tokens are skipped: splitting
// non-empty text on whitespace never produces them, so an empty token here is
// caller noise, not data.
func (t *Trie) Insert(token string, bookID int) {
	if token == "" {
		return
	}
	node := t.root
	for _, r := range token {
		child, ok := node.children[r]
		if !ok {
			child = newTrieNode()
			node.children[r] = child
		}
		node = child
	}
	node.isEnd = true
	node.bookIDs = append(node.bookIDs, bookID)
	t.size++
}

// Search walks the path for prefix and returns the identifiers attached to
// the ending node and every terminal node below it. A missing edge yields an
// empty result, never an error. Duplicates are preserved: a record whose text
// contains two tokens under the prefix appears twice.
//
// An empty prefix walks zero characters and therefore collects the whole trie.
func (t *Trie) Search(prefix string) []int {
	node := t.root
	for _, r := range prefix {
		child, ok := node.children[r]
		if !ok {
			return nil
		}
		node = child
	}
	var ids []int
	return collect(node, ids)
}

// collect gathers identifiers depth-first. Children are visited in sorted
// rune order: map iteration order is randomized in Go, and the raw candidate
// order has to be deterministic for the stable sort downstream to mean
// anything. Recursion depth is bounded by the longest inserted token.
func collect(node *TrieNode, ids []int) []int {
	if node.isEnd {
		ids = append(ids, node.bookIDs...)
	}
	keys := make([]rune, 0, len(node.children))
	for r := range node.children {
		keys = append(keys, r)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	for _, r := range keys {
		ids = collect(node.children[r], ids)
	}
	return ids
}

// Tokens reports how many tokens have been inserted, counting repeats.
func (t *Trie) Tokens() int {
	return t.size
}

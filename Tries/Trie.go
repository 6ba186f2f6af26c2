package Tries

import (
	"slices"
	"strings"

	"github.com/g-m-twostay/datality"
)

type node struct {
	children map[rune]*node
	key      string
	end      bool // a key ends here, and is stored in key.
}

// Trie is a set of strings stored as a tree of runes: every key is the path
// from the root to a node marked as its end, and keys sharing a prefix share
// the nodes of that prefix. The empty string is the root.
// Keys are read as UTF-8, so keys differing only in invalid bytes, which all
// read as utf8.RuneError, are the same key.
// The zero value isn't usable, create it with NewTrie.
type Trie struct {
	root *node
	sz   uint
}

// NewTrie returns a Trie holding keys.
func NewTrie(keys ...string) *Trie {
	u := &Trie{root: new(node)}
	for _, k := range keys {
		u.Insert(k)
	}
	return u
}

// Insert key, returning true if it wasn't in the Trie.
// Time: O(len(key))
func (u *Trie) Insert(key string) bool {
	n := u.root
	for _, r := range key {
		c, ok := n.children[r]
		if !ok {
			if n.children == nil {
				n.children = make(map[rune]*node)
			}
			c = new(node)
			n.children[r] = c
		}
		n = c
	}
	if n.end {
		return false
	}
	n.key, n.end = key, true
	u.sz++
	return true
}

// walk follows key from the root, returning nil when it leaves the Trie.
func (u *Trie) walk(key string) *node {
	n := u.root
	for _, r := range key {
		if n = n.children[r]; n == nil {
			return nil
		}
	}
	return n
}

// Search returns the stored key equal to key. A prefix of stored keys that
// isn't a key itself isn't found.
// Time: O(len(key))
func (u *Trie) Search(key string) (string, error) {
	if n := u.walk(key); n != nil && n.end {
		return n.key, nil
	}
	return "", datality.NotFoundError[string]{Value: key}
}

func (u *Trie) Has(key string) bool {
	_, err := u.Search(key)
	return err == nil
}

// remove the key spelled by rs below n. prune tells the caller that n is
// left with neither a key nor children, and should be cut off.
func remove(n *node, rs []rune) (found, prune bool) {
	if len(rs) == 0 {
		if !n.end {
			return false, false
		}
		n.key, n.end = "", false
		return true, len(n.children) == 0
	}
	c, ok := n.children[rs[0]]
	if !ok {
		return false, false
	}
	if found, prune = remove(c, rs[1:]); prune {
		delete(n.children, rs[0])
	}
	return found, prune && !n.end && len(n.children) == 0
}

// Delete key, along with the nodes no other key goes through. Recursive.
// Time: O(len(key))
func (u *Trie) Delete(key string) error {
	if found, _ := remove(u.root, []rune(key)); !found {
		return datality.NotFoundError[string]{Value: key}
	}
	u.sz--
	return nil
}

// Predict returns every key starting with prefix, in ascending order.
// Time: O(len(prefix)+m) where m is the size of the subtree under prefix.
func (u *Trie) Predict(prefix string) []string {
	res := []string{}
	n := u.walk(prefix)
	if n == nil {
		return res
	}
	var collect func(*node)
	collect = func(n *node) {
		if n.end {
			res = append(res, n.key)
		}
		for _, c := range n.children {
			collect(c)
		}
	}
	collect(n)
	slices.Sort(res)
	return res
}

func (u *Trie) Size() uint {
	return u.sz
}

func (u *Trie) Empty() bool {
	return u.sz == 0
}

// String draws the Trie sideways, one line per node with its rune, indented
// by one tab per level. A node where a key ends is followed by "*".
// Children are in ascending rune order.
func (u *Trie) String() string {
	var sb strings.Builder
	var draw func(*node, int)
	draw = func(n *node, d int) {
		rs := make([]rune, 0, len(n.children))
		for r := range n.children {
			rs = append(rs, r)
		}
		slices.Sort(rs)
		for _, r := range rs {
			c := n.children[r]
			sb.WriteString(strings.Repeat("\t", d))
			sb.WriteString("-(" + string(r) + ")")
			if c.end {
				sb.WriteByte('*')
			}
			sb.WriteByte('\n')
			draw(c, d+1)
		}
	}
	if u.root.end {
		sb.WriteString("*\n")
	}
	draw(u.root, 0)
	return strings.TrimSuffix(sb.String(), "\n")
}

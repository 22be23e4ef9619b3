// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package cache

// node is an entry of a recency list. It carries the key so that evicting
// the oldest node can also drop the map entry.
type node[K comparable, V any] struct {
	key   K
	value V
	prev  *node[K, V]
	next  *node[K, V]
}

// recency is a doubly linked list ordered from most recently used (head)
// to least recently used (tail). It is not safe for concurrent use.
type recency[K comparable, V any] struct {
	head *node[K, V]
	tail *node[K, V]
	n    int
}

func (l *recency[K, V]) len() int { return l.n }

// pushFront inserts a new node as the most recently used one.
func (l *recency[K, V]) pushFront(key K, value V) *node[K, V] {
	nd := &node[K, V]{key: key, value: value}
	l.link(nd)
	return nd
}

// touch marks nd as the most recently used node.
func (l *recency[K, V]) touch(nd *node[K, V]) {
	if nd == l.head {
		return
	}
	l.unlink(nd)
	l.link(nd)
}

// remove drops nd from the list.
func (l *recency[K, V]) remove(nd *node[K, V]) {
	l.unlink(nd)
}

// popBack removes and returns the least recently used node, or nil.
func (l *recency[K, V]) popBack() *node[K, V] {
	nd := l.tail
	if nd != nil {
		l.unlink(nd)
	}
	return nd
}

func (l *recency[K, V]) reset() {
	l.head, l.tail, l.n = nil, nil, 0
}

func (l *recency[K, V]) link(nd *node[K, V]) {
	nd.prev = nil
	nd.next = l.head
	if l.head != nil {
		l.head.prev = nd
	} else {
		l.tail = nd
	}
	l.head = nd
	l.n++
}

func (l *recency[K, V]) unlink(nd *node[K, V]) {
	if nd.prev != nil {
		nd.prev.next = nd.next
	} else {
		l.head = nd.next
	}
	if nd.next != nil {
		nd.next.prev = nd.prev
	} else {
		l.tail = nd.prev
	}
	nd.prev, nd.next = nil, nil
	l.n--
}

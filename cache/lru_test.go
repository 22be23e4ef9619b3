// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keys[K comparable, V any](l *recency[K, V]) []K {
	var out []K
	for nd := l.head; nd != nil; nd = nd.next {
		out = append(out, nd.key)
	}
	return out
}

func TestRecency(t *testing.T) {
	var l recency[string, int]
	assert.Zero(t, l.len())
	assert.Nil(t, l.popBack())

	a := l.pushFront("a", 1)
	b := l.pushFront("b", 2)
	l.pushFront("c", 3)
	assert.Equal(t, []string{"c", "b", "a"}, keys(&l))
	assert.Equal(t, 3, l.len())

	l.touch(a)
	assert.Equal(t, []string{"a", "c", "b"}, keys(&l))
	l.touch(a)
	assert.Equal(t, []string{"a", "c", "b"}, keys(&l))

	l.remove(b)
	assert.Equal(t, []string{"a", "c"}, keys(&l))

	old := l.popBack()
	require.NotNil(t, old)
	assert.Equal(t, "c", old.key)
	assert.Equal(t, 3, old.value)
	assert.Equal(t, 1, l.len())
	assert.Same(t, a, l.head)
	assert.Same(t, a, l.tail)

	l.reset()
	assert.Zero(t, l.len())
	assert.Nil(t, l.head)
}

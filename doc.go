// Package diskavl implements an ordered set that lives entirely inside a
// single append-growing file.
//
// No portion of the tree is mirrored in memory: the pointer graph is file
// offsets, and every operation walks it through positioned reads and writes
// on the backing file. The structure is a height-balanced (AVL) binary
// search tree, so membership and ordered neighbor queries cost O(log n)
// node reads however large the set grows.
//
// # File layout
//
// The file opens with a fixed 24 byte header:
//
//	count     (8 bytes)  number of elements in the set
//	next-free (8 bytes)  first byte past the highest-addressed node
//	root      (8 bytes)  offset of the root node
//
// followed by the node records, allocated strictly in insertion order:
//
//	left      (8 bytes)  offset of the left child, -1 when absent
//	right     (8 bytes)  offset of the right child, -1 when absent
//	height    (4 bytes)  subtree height, 0 for a leaf
//	length    (4 bytes)  payload byte length P
//	payload   (P bytes)  encoded element
//
// All integers are big-endian two's complement. A node's total size is
// 24+P bytes. When the set is empty the root field equals next-free (the
// address the first node will be written at) and must not be dereferenced.
//
// # Core invariants
//
//  1. order: every value in a node's left subtree compares strictly less
//     than the node's value, every value in its right subtree strictly
//     greater; equal values deduplicate
//  2. balance: left and right subtree heights differ by at most 1 at every
//     node, with height(absent) = -1 and height(leaf) = 0
//  3. allocation: nodes reachable from the root are exactly the nodes laid
//     out back to back from offset 24 up to next-free
//
// Verify audits all three against the raw file.
//
// # Non-goals
//
// The allocator never frees: there is no removal, no compaction, and no
// in-place payload update. There is no journal and no file lock protocol;
// a crash mid-insert can leave the file inconsistent, and concurrent
// access from more than one process (or more than one Set over the same
// file) is undefined. One Set serializes its own callers with an internal
// mutex.
package diskavl

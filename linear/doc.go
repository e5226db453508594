// Package linear provides Linear, a generic mutable singly-linked list with
// constant-time access to both ends and a small, chainable API.
//
// 🚀 What is Linear?
//
//	A chain of Node cells, each holding a Value and a forward Next link.
//	The container owns the first node and tracks the last node and the
//	length, so Append and Prepend are O(1) while indexed access walks
//	from the head.
//
//	  root ──▶ [A] ──▶ [B] ──▶ [C] ──▶ nil
//	                            ▲
//	                           tail
//
// ✨ Key features:
//   - Append / Prepend with variadic values, returning the list for chaining
//   - Insert at any index in [0, Length()]
//   - Get / Set / Node / Remove by 0-based index with sentinel errors
//   - Reverse, Map, MapTo and Clone build new, independent lists
//   - ForEach, All, Values and ToSlice for traversal
//   - Join / String with a configurable default separator (",")
//
// ⚙️ Usage:
//
//	import "github.com/abhi543/singlie/linear"
//
//	l := linear.New[string]()
//	l.Append("C", "D").Prepend("B", "A")       // [A B C D]
//	if err := l.Insert(2, "X"); err != nil {   // [A B X C D]
//	  // handle ErrIndexOutOfRange
//	}
//	fmt.Println(l.Join(" "))                   // A B X C D
//
// Ordering notes:
//
//   - Prepend pushes each argument in front of the previous one, so
//     Prepend("A", "B") on an empty list yields [B A].
//   - Insert(i, v1, v2) places each value at i in turn: v2 ends at i and
//     v1 right after it.
//
// Errors:
//
//   - ErrIndexOutOfRange — index outside the valid range of the operation.
//   - ErrEmptyList       — Remove on a list with no nodes.
//
// Failed operations never modify the list.
//
// Concurrency:
//
//	Linear is not safe for concurrent use. Guard a shared list with a
//	single mutex (one mutator at a time).
//
// Performance:
//
//   - Append, Prepend, Head, Last, Length, IsEmpty, Clear: O(1)
//   - Get, Set, Node, Insert, Remove: O(i)
//   - Reverse, Map, Clone, ToSlice, Join: O(n)
package linear

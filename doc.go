// Package singlie is a small home for linked-list containers.
//
// 🚀 What is singlie?
//
//	A dependency-light Go module centred on linear.Linear, a generic
//	singly-linked list with O(1) access to both ends and a chainable API:
//		• Build: Append, Prepend, Insert
//		• Access: Head, Last, Get, Node, Set, Find
//		• Shrink: Remove, RemoveHead, Clear
//		• Derive: Reverse, Map, MapTo, Clone
//		• Traverse: ForEach, All, Values, ToSlice, Join, String
//
// Layout:
//
//	linear/   — Node and Linear types, options and sentinel errors
//	examples/ — runnable demo program
//
// Quick ASCII example:
//
//	root ──▶ [A] ──▶ [B] ──▶ [C] ──▶ nil
//
//	go get github.com/abhi543/singlie/linear
package singlie

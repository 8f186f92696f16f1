// SPDX-License-Identifier: MIT
// Package dll provides a generic doubly linked list with a sentinel element.
//
// What:
//
//   - PushFront inserts in O(1) and hands back an *Element position handle.
//   - Remove unlinks a handle in O(1) without searching.
//   - All iterates front to back (most recently pushed first).
//
// Handles remember the list that owns them. Removing a handle that belongs to
// another list, or one that was already removed, is rejected (Remove returns
// false) instead of corrupting either list.
//
// The list does not search by value; callers keep the handles they need.
//
// Complexity:
//
//   - PushFront, Remove, Len, Front: O(1).
//   - All: O(n).
package dll

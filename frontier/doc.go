// Package frontier provides the three ordering disciplines used by the
// search driver to hold discovered-but-not-yet-expanded entries.
//
// What:
//
//   - Stack         — LIFO: Pop returns the most recently pushed entry (depth-first).
//   - Queue         — FIFO: Pop returns the earliest pushed entry still present (breadth-first).
//   - PriorityQueue — min-priority by key; equal keys pop in push order (uniform-cost, A*).
//
// All three satisfy Frontier[T]. The discipline is chosen once through the
// Discipline tag and New; callers never inspect the concrete container.
//
// Contract:
//
//   - No discipline deduplicates. The same state may sit in a frontier many
//     times at different costs; stale copies are dropped by the caller at pop time.
//   - Pop on an empty frontier is a contract violation and panics with ErrEmptyFrontier.
//     Callers check IsEmpty first.
//   - Stack and Queue ignore the key passed to Push.
//
// Complexity:
//
//   - Stack:         Push/Pop O(1) amortized.
//   - Queue:         Push/Pop O(1) amortized (head index with periodic compaction).
//   - PriorityQueue: Push/Pop O(log n).
//
// Frontiers are not safe for concurrent use; each search owns its own.
package frontier

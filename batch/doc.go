// Package batch runs many independent searches concurrently on a bounded
// worker pool.
//
// Each query owns its frontier and visited set, so queries never share
// mutable search state; the problems themselves must tolerate concurrent
// reads (core.RouteProblem and gridgraph.MazeProblem do). Outcomes are
// returned in query order whatever the completion order was.
package batch

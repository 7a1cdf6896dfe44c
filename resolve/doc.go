// Package resolve drives a collapse.Grid to completion: Resolve
// repeatedly asks a queue.CollapseQueue for the next position,
// collapses it, and reacts to the result according to the queue's own
// Propagating policy, until every requested position is collapsed or a
// contradiction is found.
package resolve

// Package queue implements two ordering policies over uncollapsed
// positions (EntropyQueue, PositionQueue) behind one shared
// CollapseQueue interface, plus the Propagator worklist that cascades
// option removals through neighbours after a collapse.
package queue

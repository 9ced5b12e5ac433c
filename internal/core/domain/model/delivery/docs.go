// Package delivery implements the delivery state machine that moves a finished
// garment from the tailor's shop to the customer.
//
// The transition table is data (see Transitions). Every status change requested
// by a rider is checked against it before anything is mutated:
//
//	pending ──assign──> assigned ──> pickup_in_progress ──> picked_up ──> in_transit ──> delivered
//	                                        │                   │             │
//	                                        └───────────────────┴─────────────┴──> failed
//
// pending -> assigned only happens through AssignRider, which also allows
// reassignment while the delivery is still assigned. delivered and failed are
// terminal.
//
// A Delivery carries a version for optimistic concurrency. Repositories write
// with "WHERE id = ? AND version = ?" and call IncrementVersion after a
// successful write, so two riders racing on the same delivery cannot both win.
package delivery

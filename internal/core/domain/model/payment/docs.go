// Package payment models the escrow lifecycle of a customer's payment.
//
//	pending ──> processing ──> held_in_escrow ──> released
//	   │            │                │
//	   │            ├────────────────┴──────────> refunded
//	   └────────────┴──> failed
//
// Money moves to the platform when the gateway confirms the intent
// (held_in_escrow) and on to the tailor when escrow is released. A refund is
// possible while the money is still processing or held.
package payment

// Package order provides the Order aggregate of the tailoring marketplace: a
// custom garment commissioned by a customer from a tailor, together with its
// price breakdown and the fulfilment and payment state machines.
//
// The package includes:
//   - Order: the aggregate root holding identity, pricing and lifecycle
//   - Status: fulfilment state with the tailor-driven transition table
//   - PaymentStatus: where the customer's money currently is
//   - Pricing: tailoring + material + delivery = total
//
// Key business rules:
//   - Tailors move orders along pending -> confirmed -> in_progress -> ready_for_delivery
//   - Deliveries move orders to pending_delivery and delivered
//   - A refund cancels the order regardless of its fulfilment state
//   - completed and cancelled are terminal
package order

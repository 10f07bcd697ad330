package domain

// ShippingStatus is the delivery state of an order.
// Transitions only move forward: PENDING -> SHIPPED -> DELIVERED, with
// PENDING -> DELIVERED allowed as a shortcut. A transition to the same
// state is an idempotent no-op.
type ShippingStatus string

const (
	ShippingPending   ShippingStatus = "PENDING"
	ShippingShipped   ShippingStatus = "SHIPPED"
	ShippingDelivered ShippingStatus = "DELIVERED"
)

var allowedTransitions = map[ShippingStatus][]ShippingStatus{
	ShippingPending:   {ShippingShipped, ShippingDelivered},
	ShippingShipped:   {ShippingDelivered},
	ShippingDelivered: {},
}

// ParseShippingStatus converts raw input to a ShippingStatus.
func ParseShippingStatus(raw string) (ShippingStatus, error) {
	s := ShippingStatus(raw)
	if _, ok := allowedTransitions[s]; !ok {
		return "", Errorf(EPARAMETER, "shippingstatus.parse", "unknown shipping status: %q", raw)
	}
	return s, nil
}

// CanTransition reports whether moving from one status to another is legal.
// Same-state transitions are always legal.
func CanTransition(from, to ShippingStatus) bool {
	if from == to {
		return true
	}
	for _, t := range allowedTransitions[from] {
		if t == to {
			return true
		}
	}
	return false
}

// Transition returns the target status if the move is legal, and an
// ETRANSITION error naming both states otherwise. The predicate and the
// transition are split so callers can probe legality without committing.
func Transition(from, to ShippingStatus) (ShippingStatus, error) {
	if !CanTransition(from, to) {
		return "", Errorf(ETRANSITION, "shippingstatus.transition", "cannot transition from %s to %s", from, to)
	}
	return to, nil
}

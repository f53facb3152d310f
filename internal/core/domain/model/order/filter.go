package order

// Filter returns the orders whose status equals status, keeping their order.
// It never mutates its input.
func Filter(orders []*Order, status Status) []*Order {
	matched := make([]*Order, 0, len(orders))
	for _, o := range orders {
		if o != nil && o.status == status {
			matched = append(matched, o)
		}
	}
	return matched
}

package memory

import (
	"tailorshop/internal/core/domain/model/delivery"
	"tailorshop/internal/core/domain/model/material"
	"tailorshop/internal/core/domain/model/measurement"
	"tailorshop/internal/core/domain/model/order"
	"tailorshop/internal/core/domain/model/payment"
	"tailorshop/internal/core/domain/model/tailor"
	"tailorshop/internal/core/domain/model/user"
)

// The store never hands out the pointers it keeps. Every aggregate goes in and
// comes out through its Restore constructor, which also re-checks invariants.

func cloneUser(u *user.User) (*user.User, error) {
	return user.RestoreUser(u.ID(), u.Name(), u.Email(), u.Role())
}

func cloneTailor(t *tailor.Tailor) (*tailor.Tailor, error) {
	return tailor.RestoreTailor(
		t.ID(),
		t.UserID(),
		t.Profile(),
		copyPtr(t.Location()),
		t.Rating(),
		t.ReviewCount(),
		t.IsAvailable(),
		t.Portfolio(),
	)
}

func cloneMaterial(m *material.Material) (*material.Material, error) {
	return material.RestoreMaterial(
		m.ID(),
		m.TailorID(),
		m.Details(),
		m.PricePerYard(),
		m.QuantityAvailable(),
		m.IsAvailable(),
	)
}

func cloneMeasurementSet(m *measurement.MeasurementSet) (*measurement.MeasurementSet, error) {
	details := measurement.Details{
		Name:       m.Name(),
		Unit:       measurement.Inches,
		Readings:   m.Readings(),
		WeightLbs:  m.WeightLbs(),
		Additional: m.Additional(),
		Notes:      m.Notes(),
		Source:     m.Source(),
		MeasuredAt: m.MeasuredAt(),
	}
	return measurement.RestoreMeasurementSet(m.ID(), m.OwnerID(), details, m.IsDefault(), m.CreatedAt())
}

func cloneOrder(o *order.Order) (*order.Order, error) {
	details := o.Details()
	details.MeasurementID = copyPtr(details.MeasurementID)
	details.EstimatedCompletion = copyPtr(details.EstimatedCompletion)

	return order.RestoreOrder(
		o.ID(),
		o.CustomerID(),
		o.Tailor(),
		details,
		o.Pricing(),
		order.State{
			Status:           o.Status(),
			PaymentStatus:    o.PaymentStatus(),
			PaymentID:        copyPtr(o.PaymentID()),
			ActualCompletion: copyPtr(o.ActualCompletion()),
		},
		o.CreatedAt(),
	)
}

func cloneDelivery(d *delivery.Delivery, version int) (*delivery.Delivery, error) {
	return delivery.RestoreDelivery(
		d.ID(),
		d.OrderID(),
		d.Addresses(),
		d.Fee(),
		d.Notes(),
		d.CreatedAt(),
		delivery.Snapshot{
			Status:          d.Status(),
			TrackingCode:    d.TrackingCode(),
			RiderID:         copyPtr(d.RiderID()),
			CurrentLocation: copyPtr(d.CurrentLocation()),
			PickupDate:      copyPtr(d.PickupDate()),
			DeliveryDate:    copyPtr(d.DeliveryDate()),
			Version:         version,
		},
	)
}

func clonePayment(p *payment.Payment, version int) (*payment.Payment, error) {
	return payment.RestorePayment(
		p.ID(),
		copyPtr(p.OrderID()),
		p.CustomerID(),
		p.Amount(),
		p.Currency(),
		p.CreatedAt(),
		payment.Snapshot{
			Method:            p.Method(),
			GatewayReference:  p.GatewayReference(),
			Status:            p.Status(),
			HeldAt:            copyPtr(p.HeldAt()),
			EscrowReleaseDate: copyPtr(p.EscrowReleaseDate()),
			TransactionFee:    p.TransactionFee(),
			ReceiptURL:        p.ReceiptURL(),
			Notes:             p.Notes(),
			Version:           version,
		},
	)
}

func copyPtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

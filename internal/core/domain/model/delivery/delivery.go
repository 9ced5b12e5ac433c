package delivery

import (
	"errors"
	"strings"
	"time"

	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/pkg/errs"
)

var ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery constructor")

// Addresses holds the two ends of a delivery as free text.
type Addresses struct {
	Pickup   string
	Delivery string
}

// Delivery moves one order from the shop to the customer.
//
// Invariants:
//   - status only changes along the transition table
//   - pickupDate is written once, on entering picked_up
//   - deliveryDate is written once, on entering delivered
//   - a rider is set for every status after pending
type Delivery struct {
	id              kernel.UUID
	orderID         kernel.UUID
	status          Status
	trackingCode    TrackingCode
	riderID         *kernel.UUID
	addresses       Addresses
	currentLocation *kernel.GeoPoint
	pickupDate      *time.Time
	deliveryDate    *time.Time
	fee             kernel.Money
	notes           string
	version         int
	createdAt       time.Time

	isConstructed bool
}

// NewDelivery creates a pending delivery with a fresh tracking code.
func NewDelivery(
	id kernel.UUID,
	orderID kernel.UUID,
	addresses Addresses,
	fee kernel.Money,
	notes string,
	now time.Time,
) (*Delivery, error) {
	d := &Delivery{
		status:        Pending,
		trackingCode:  NewTrackingCode(),
		notes:         strings.TrimSpace(notes),
		createdAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setOrderID(orderID),
		d.setAddresses(addresses),
		d.setFee(fee),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// Snapshot is the persisted lifecycle state of a delivery.
type Snapshot struct {
	Status          Status
	TrackingCode    TrackingCode
	RiderID         *kernel.UUID
	CurrentLocation *kernel.GeoPoint
	PickupDate      *time.Time
	DeliveryDate    *time.Time
	Version         int
}

// RestoreDelivery rebuilds a persisted delivery.
func RestoreDelivery(
	id kernel.UUID,
	orderID kernel.UUID,
	addresses Addresses,
	fee kernel.Money,
	notes string,
	createdAt time.Time,
	s Snapshot,
) (*Delivery, error) {
	d, err := NewDelivery(id, orderID, addresses, fee, notes, createdAt)
	if err != nil {
		return nil, err
	}

	code, err := ParseTrackingCode(string(s.TrackingCode))
	if err != nil {
		return nil, err
	}
	if err = s.Status.Validate(); err != nil {
		return nil, err
	}
	if s.Status != Pending && s.RiderID == nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("riderId", errors.New("a rider is required once assigned"))
	}
	if s.Version < 0 {
		return nil, errs.NewValueIsOutOfRangeError("version", s.Version, 0, "unbounded")
	}

	d.status = s.Status
	d.trackingCode = code
	d.riderID = s.RiderID
	d.currentLocation = s.CurrentLocation
	d.pickupDate = s.PickupDate
	d.deliveryDate = s.DeliveryDate
	d.version = s.Version

	return d, nil
}

func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

func (d *Delivery) ID() kernel.UUID {
	return d.id
}

func (d *Delivery) OrderID() kernel.UUID {
	return d.orderID
}

func (d *Delivery) Status() Status {
	return d.status
}

func (d *Delivery) TrackingCode() TrackingCode {
	return d.trackingCode
}

// RiderID returns nil while the delivery is pending.
func (d *Delivery) RiderID() *kernel.UUID {
	return d.riderID
}

func (d *Delivery) Addresses() Addresses {
	return d.addresses
}

func (d *Delivery) CurrentLocation() *kernel.GeoPoint {
	return d.currentLocation
}

func (d *Delivery) PickupDate() *time.Time {
	return d.pickupDate
}

func (d *Delivery) DeliveryDate() *time.Time {
	return d.deliveryDate
}

func (d *Delivery) Fee() kernel.Money {
	return d.fee
}

func (d *Delivery) Notes() string {
	return d.notes
}

// Version is the optimistic concurrency token the delivery was loaded with.
func (d *Delivery) Version() int {
	return d.version
}

func (d *Delivery) CreatedAt() time.Time {
	return d.createdAt
}

// IsAssignedTo reports whether userID is the assigned rider.
func (d *Delivery) IsAssignedTo(userID kernel.UUID) bool {
	return d.riderID != nil && d.riderID.IsEqual(userID)
}

// RegenerateTrackingCode draws a new code after a uniqueness collision.
// Only valid before the delivery is first stored.
func (d *Delivery) RegenerateTrackingCode() {
	d.trackingCode = NewTrackingCode()
}

// AssignRider sets the rider and moves the delivery to assigned.
// Reassignment is allowed while the delivery is still assigned.
func (d *Delivery) AssignRider(riderID kernel.UUID) error {
	if err := riderID.Validate(); err != nil {
		return err
	}
	if !d.status.CanAssign() {
		return errs.NewTransitionIsNotAllowedError("delivery", d.status, Assigned)
	}

	d.riderID = &riderID
	d.status = Assigned
	return nil
}

// Advance moves the delivery to next if the transition table allows it. The
// table is checked before anything changes. When location is non-nil it
// replaces the current location.
//
// Side effects on success:
//   - picked_up stamps pickupDate (once)
//   - delivered stamps deliveryDate (once)
//
// Returns TransitionIsNotAllowedError for moves missing from the table.
func (d *Delivery) Advance(next Status, location *kernel.GeoPoint, now time.Time) error {
	if err := next.Validate(); err != nil {
		return err
	}
	if !d.status.CanAdvanceTo(next) {
		return errs.NewTransitionIsNotAllowedError("delivery", d.status, next)
	}
	if location != nil {
		if err := location.Validate(); err != nil {
			return err
		}
	}

	d.status = next
	switch next {
	case PickedUp:
		if d.pickupDate == nil {
			d.pickupDate = &now
		}
	case Delivered:
		if d.deliveryDate == nil {
			d.deliveryDate = &now
		}
	}
	if location != nil {
		loc := *location
		d.currentLocation = &loc
	}

	return nil
}

// UpdateLocation overwrites the rider's position with no status gating.
func (d *Delivery) UpdateLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}
	d.currentLocation = &location
	return nil
}

// IncrementVersion is called by repositories after a successful write.
func (d *Delivery) IncrementVersion() {
	d.version++
}

func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Delivery) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.orderID = id
	return nil
}

func (d *Delivery) setAddresses(a Addresses) error {
	a.Pickup = strings.TrimSpace(a.Pickup)
	a.Delivery = strings.TrimSpace(a.Delivery)

	var problems []error
	if a.Pickup == "" {
		problems = append(problems, errs.NewValueIsRequiredError("pickupAddress"))
	}
	if a.Delivery == "" {
		problems = append(problems, errs.NewValueIsRequiredError("deliveryAddress"))
	}
	if len(problems) > 0 {
		return errors.Join(problems...)
	}

	d.addresses = a
	return nil
}

func (d *Delivery) setFee(fee kernel.Money) error {
	if err := fee.Validate(); err != nil {
		return err
	}
	d.fee = fee
	return nil
}

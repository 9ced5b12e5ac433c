// Package tailor holds the Tailor aggregate: a shop profile owned by a user
// with the tailor role, searchable by location, specialty and rating.
package tailor

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strings"

	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/pkg/errs"
)

const (
	RatingMin = 0.0
	RatingMax = 5.0
)

var ErrTailorIsNotConstructed = errors.New("Tailor must be created via NewTailor constructor")

// Profile is the owner-editable part of a Tailor.
type Profile struct {
	ShopName                   string
	Description                string
	Specialties                []string
	ExperienceYears            int
	BusinessHours              map[string]any
	AcceptsInPerson            bool
	AcceptsDigitalMeasurements bool
	ProvidesMaterials          bool
}

// DefaultProfile returns the flags a new shop starts with.
func DefaultProfile(shopName string) Profile {
	return Profile{
		ShopName:                   shopName,
		AcceptsInPerson:            true,
		AcceptsDigitalMeasurements: true,
		ProvidesMaterials:          true,
	}
}

// Tailor is a shop profile. A shop without a location can still be found
// by specialty or rating, but never by distance.
type Tailor struct {
	id          kernel.UUID
	userID      kernel.UUID
	profile     Profile
	rating      float64
	reviewCount int
	isAvailable bool
	location    *kernel.GeoPoint
	portfolio   []string

	isConstructed bool
}

// NewTailor creates an available shop with no reviews.
func NewTailor(id kernel.UUID, userID kernel.UUID, profile Profile, location *kernel.GeoPoint) (*Tailor, error) {
	t := &Tailor{
		isAvailable:   true,
		portfolio:     []string{},
		isConstructed: true,
	}

	if err := errors.Join(
		t.setID(id),
		t.setUserID(userID),
		t.setProfile(profile),
		t.setLocation(location),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// RestoreTailor rebuilds a persisted shop including its review statistics.
func RestoreTailor(
	id kernel.UUID,
	userID kernel.UUID,
	profile Profile,
	location *kernel.GeoPoint,
	rating float64,
	reviewCount int,
	isAvailable bool,
	portfolio []string,
) (*Tailor, error) {
	t, err := NewTailor(id, userID, profile, location)
	if err != nil {
		return nil, err
	}

	if err = t.setRating(rating, reviewCount); err != nil {
		return nil, err
	}
	t.isAvailable = isAvailable
	t.portfolio = slices.Clone(portfolio)
	if t.portfolio == nil {
		t.portfolio = []string{}
	}

	return t, nil
}

func (t *Tailor) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTailorIsNotConstructed
	}
	return nil
}

func (t *Tailor) ID() kernel.UUID {
	return t.id
}

// UserID is the owning user account.
func (t *Tailor) UserID() kernel.UUID {
	return t.userID
}

// Profile returns a copy of the editable profile.
func (t *Tailor) Profile() Profile {
	p := t.profile
	p.Specialties = slices.Clone(t.profile.Specialties)
	p.BusinessHours = cloneMap(t.profile.BusinessHours)
	return p
}

func (t *Tailor) Rating() float64 {
	return t.rating
}

func (t *Tailor) ReviewCount() int {
	return t.reviewCount
}

func (t *Tailor) IsAvailable() bool {
	return t.isAvailable
}

// Location returns nil when the shop has no coordinates.
func (t *Tailor) Location() *kernel.GeoPoint {
	return t.location
}

func (t *Tailor) Portfolio() []string {
	return slices.Clone(t.portfolio)
}

// OwnedBy reports whether userID owns the shop.
func (t *Tailor) OwnedBy(userID kernel.UUID) bool {
	return t.userID.IsEqual(userID)
}

// HasAnySpecialty reports overlap with wanted, case-insensitively.
// An empty wanted list matches every shop.
func (t *Tailor) HasAnySpecialty(wanted []string) bool {
	if len(wanted) == 0 {
		return true
	}
	for _, w := range wanted {
		for _, s := range t.profile.Specialties {
			if strings.EqualFold(strings.TrimSpace(w), s) {
				return true
			}
		}
	}
	return false
}

// UpdateProfile replaces the editable profile and the location.
func (t *Tailor) UpdateProfile(profile Profile, location *kernel.GeoPoint) error {
	next := *t
	if err := errors.Join(next.setProfile(profile), next.setLocation(location)); err != nil {
		return err
	}
	*t = next
	return nil
}

// AddPortfolioItem appends an absolute http(s) image URL.
func (t *Tailor) AddPortfolioItem(imageURL string) error {
	imageURL = strings.TrimSpace(imageURL)
	if imageURL == "" {
		return errs.NewValueIsRequiredError("imageUrl")
	}
	u, err := url.Parse(imageURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errs.NewValueIsInvalidErrorWithCause("imageUrl", fmt.Errorf("%q is not an absolute http(s) URL", imageURL))
	}

	t.portfolio = append(t.portfolio, imageURL)
	return nil
}

// SetAvailability opens or closes the shop for new orders.
func (t *Tailor) SetAvailability(available bool) {
	t.isAvailable = available
}

// AddReview folds a 0..5 score into the running average.
func (t *Tailor) AddReview(score float64) error {
	if score < RatingMin || score > RatingMax {
		return errs.NewValueIsOutOfRangeError("rating", score, RatingMin, RatingMax)
	}
	total := t.rating*float64(t.reviewCount) + score
	t.reviewCount++
	t.rating = total / float64(t.reviewCount)
	return nil
}

func (t *Tailor) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Tailor) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	t.userID = userID
	return nil
}

func (t *Tailor) setProfile(p Profile) error {
	p.ShopName = strings.TrimSpace(p.ShopName)
	if p.ShopName == "" {
		return errs.NewValueIsRequiredError("shopName")
	}
	if p.ExperienceYears < 0 {
		return errs.NewValueIsOutOfRangeError("experience", p.ExperienceYears, 0, "unbounded")
	}

	specialties := make([]string, 0, len(p.Specialties))
	for _, s := range p.Specialties {
		s = strings.TrimSpace(s)
		if s != "" && !slices.Contains(specialties, s) {
			specialties = append(specialties, s)
		}
	}
	p.Specialties = specialties

	if p.BusinessHours == nil {
		p.BusinessHours = map[string]any{}
	} else {
		p.BusinessHours = cloneMap(p.BusinessHours)
	}

	t.profile = p
	return nil
}

func (t *Tailor) setLocation(location *kernel.GeoPoint) error {
	if location == nil {
		t.location = nil
		return nil
	}
	if err := location.Validate(); err != nil {
		return err
	}
	loc := *location
	t.location = &loc
	return nil
}

func (t *Tailor) setRating(rating float64, reviewCount int) error {
	if rating < RatingMin || rating > RatingMax {
		return errs.NewValueIsOutOfRangeError("rating", rating, RatingMin, RatingMax)
	}
	if reviewCount < 0 {
		return errs.NewValueIsOutOfRangeError("reviewCount", reviewCount, 0, "unbounded")
	}
	t.rating = rating
	t.reviewCount = reviewCount
	return nil
}

func cloneMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

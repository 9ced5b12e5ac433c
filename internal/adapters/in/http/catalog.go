package http

import (
	"net/http"

	"tailorshop/internal/core/application/usecases/commands"
	"tailorshop/internal/core/application/usecases/queries"
	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/core/domain/model/material"
	"tailorshop/internal/core/domain/model/tailor"
	"tailorshop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type RegisterUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// RegisterMe handles POST /api/users/me. The id and role come from the token.
func (s *Server) RegisterMe(c echo.Context) error {
	actor, err := principalFrom(c)
	if err != nil {
		return err
	}
	var req RegisterUserRequest
	if err = c.Bind(&req); err != nil {
		return err
	}

	cmd, err := commands.NewRegisterUserCommand(actor, req.Name, req.Email)
	if err != nil {
		return err
	}
	u, err := s.h.RegisterUser.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toUser(u))
}

// GetMe handles GET /api/users/me.
func (s *Server) GetMe(c echo.Context) error {
	actor, err := principalFrom(c)
	if err != nil {
		return err
	}
	query, err := queries.NewGetMeQuery(actor)
	if err != nil {
		return err
	}
	u, err := s.h.GetMe.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUser(u))
}

// ListUsers handles GET /api/users. Admins only.
func (s *Server) ListUsers(c echo.Context) error {
	actor, err := principalFrom(c)
	if err != nil {
		return err
	}
	query, err := queries.NewActorQuery(actor)
	if err != nil {
		return err
	}
	users, err := s.h.ListUsers.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	out := make([]User, 0, len(users))
	for _, u := range users {
		out = append(out, toUser(u))
	}
	return c.JSON(http.StatusOK, out)
}

// GetUser handles GET /api/users/:id.
func (s *Server) GetUser(c echo.Context) error {
	actor, err := principalFrom(c)
	if err != nil {
		return err
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	query, err := queries.NewGetUserQuery(actor, id)
	if err != nil {
		return err
	}
	u, err := s.h.GetUser.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUser(u))
}

// UpdateUser handles PUT /api/users/:id. Omitted fields are kept.
func (s *Server) UpdateUser(c echo.Context) error {
	actor, err := principalFrom(c)
	if err != nil {
		return err
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	var req RegisterUserRequest
	if err = c.Bind(&req); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateUserCommand(actor, id, req.Name, req.Email)
	if err != nil {
		return err
	}
	u, err := s.h.UpdateUser.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUser(u))
}

type RegisterTailorRequest struct {
	ShopName                   string         `json:"shopName"`
	Description                string         `json:"description"`
	Specialties                []string       `json:"specialties"`
	ExperienceYears            int            `json:"experienceYears"`
	BusinessHours              map[string]any `json:"businessHours"`
	Location                   *Location      `json:"location"`
	AcceptsInPerson            *bool          `json:"acceptsInPerson"`
	AcceptsDigitalMeasurements *bool          `json:"acceptsDigitalMeasurements"`
	ProvidesMaterials          *bool          `json:"providesMaterials"`
}

func (r RegisterTailorRequest) profile() tailor.Profile {
	p := tailor.DefaultProfile(r.ShopName)
	p.Description = r.Description
	p.Specialties = r.Specialties
	p.ExperienceYears = r.ExperienceYears
	p.BusinessHours = r.BusinessHours
	if r.AcceptsInPerson != nil {
		p.AcceptsInPerson = *r.AcceptsInPerson
	}
	if r.AcceptsDigitalMeasurements != nil {
		p.AcceptsDigitalMeasurements = *r.AcceptsDigitalMeasurements
	}
	if r.ProvidesMaterials != nil {
		p.ProvidesMaterials = *r.ProvidesMaterials
	}
	return p
}

// RegisterTailor handles POST /api/tailors.
func (s *Server) RegisterTailor(c echo.Context) error {
	actor, err := principalFrom(c)
	if err != nil {
		return err
	}
	var req RegisterTailorRequest
	if err = c.Bind(&req); err != nil {
		return err
	}
	location, err := req.Location.toGeoPoint()
	if err != nil {
		return err
	}

	cmd, err := commands.NewRegisterTailorCommand(actor, req.profile(), location)
	if err != nil {
		return err
	}
	t, err := s.h.RegisterTailor.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toTailor(t))
}

// SearchTailors handles GET /api/tailors. lat and lng go together.
func (s *Server) SearchTailors(c echo.Context) error {
	lat, err := queryFloat(c, "lat")
	if err != nil {
		return err
	}
	lng, err := queryFloat(c, "lng")
	if err != nil {
		return err
	}
	radius, err := queryFloat(c, "radius")
	if err != nil {
		return err
	}
	minRating, err := queryFloat(c, "minRating")
	if err != nil {
		return err
	}
	specialties, err := queryList(c, "specialties")
	if err != nil {
		return err
	}
	sortBy, err := queryString(c, "sortBy")
	if err != nil {
		return err
	}

	var origin *kernel.GeoPoint
	switch {
	case lat != nil && lng != nil:
		p, err := kernel.NewGeoPoint(*lat, *lng)
		if err != nil {
			return err
		}
		origin = &p
	case lat != nil:
		return errs.NewValueIsRequiredError("lng")
	case lng != nil:
		return errs.NewValueIsRequiredError("lat")
	}

	query, err := queries.NewSearchTailorsQuery(origin, deref(radius), specialties, deref(minRating), sortBy)
	if err != nil {
		return err
	}
	matches, err := s.h.SearchTailors.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTailorMatches(matches))
}

// GetTailor handles GET /api/tailors/:id.
func (s *Server) GetTailor(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	query, err := queries.NewGetTailorQuery(id)
	if err != nil {
		return err
	}
	t, err := s.h.GetTailor.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTailor(t))
}

type PortfolioItemRequest struct {
	ImageURL string `json:"imageUrl"`
}

// AddPortfolioItem handles POST /api/tailors/:id/portfolio.
func (s *Server) AddPortfolioItem(c echo.Context) error {
	actor, err := principalFrom(c)
	if err != nil {
		return err
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	var req PortfolioItemRequest
	if err = c.Bind(&req); err != nil {
		return err
	}

	cmd, err := commands.NewAddPortfolioItemCommand(actor, id, req.ImageURL)
	if err != nil {
		return err
	}
	t, err := s.h.AddPortfolioItem.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTailor(t))
}

// ListMaterials handles GET /api/materials, optionally narrowed by ?tailorId.
func (s *Server) ListMaterials(c echo.Context) error {
	tailorID, err := queryUUID(c, "tailorId")
	if err != nil {
		return err
	}
	return s.listMaterials(c, tailorID)
}

// ListTailorMaterials handles GET /api/materials/tailor/:tailorId.
func (s *Server) ListTailorMaterials(c echo.Context) error {
	tailorID, err := pathUUID(c, "tailorId")
	if err != nil {
		return err
	}
	return s.listMaterials(c, &tailorID)
}

func (s *Server) listMaterials(c echo.Context, tailorID *kernel.UUID) error {
	query, err := queries.NewListMaterialsQuery(tailorID)
	if err != nil {
		return err
	}
	ms, err := s.h.ListMaterials.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toMaterials(ms))
}

type CreateMaterialRequest struct {
	Name              string          `json:"name"`
	Description       string          `json:"description"`
	Type              string          `json:"type"`
	Color             string          `json:"color"`
	Pattern           string          `json:"pattern"`
	ImageURL          string          `json:"imageUrl"`
	PricePerYard      decimal.Decimal `json:"pricePerYard"`
	QuantityAvailable decimal.Decimal `json:"quantityAvailable"`
}

// CreateMaterial handles POST /api/materials. The material is filed under the
// caller's shop.
func (s *Server) CreateMaterial(c echo.Context) error {
	actor, err := principalFrom(c)
	if err != nil {
		return err
	}
	var req CreateMaterialRequest
	if err = c.Bind(&req); err != nil {
		return err
	}
	price, err := kernel.NewMoney(req.PricePerYard)
	if err != nil {
		return err
	}

	details := material.Details{
		Name:        req.Name,
		Description: req.Description,
		Type:        req.Type,
		Color:       req.Color,
		Pattern:     req.Pattern,
		ImageURL:    req.ImageURL,
	}
	cmd, err := commands.NewCreateMaterialCommand(actor, details, price, req.QuantityAvailable)
	if err != nil {
		return err
	}
	m, err := s.h.CreateMaterial.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toMaterial(m))
}

// GetMaterial handles GET /api/materials/:id.
func (s *Server) GetMaterial(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	query, err := queries.NewGetMaterialQuery(id)
	if err != nil {
		return err
	}
	m, err := s.h.GetMaterial.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toMaterial(m))
}

type UpdateMaterialRequest struct {
	Name              string           `json:"name"`
	Description       string           `json:"description"`
	Type              string           `json:"type"`
	Color             string           `json:"color"`
	Pattern           string           `json:"pattern"`
	ImageURL          string           `json:"imageUrl"`
	PricePerYard      decimal.Decimal  `json:"pricePerYard"`
	QuantityAvailable *decimal.Decimal `json:"quantityAvailable"`
	IsAvailable       *bool            `json:"isAvailable"`
}

// UpdateMaterial handles PUT /api/materials/:id. Only the shop owner may
// edit; quantityAvailable and isAvailable are optional.
func (s *Server) UpdateMaterial(c echo.Context) error {
	actor, err := principalFrom(c)
	if err != nil {
		return err
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	var req UpdateMaterialRequest
	if err = c.Bind(&req); err != nil {
		return err
	}
	price, err := kernel.NewMoney(req.PricePerYard)
	if err != nil {
		return err
	}

	details := material.Details{
		Name:        req.Name,
		Description: req.Description,
		Type:        req.Type,
		Color:       req.Color,
		Pattern:     req.Pattern,
		ImageURL:    req.ImageURL,
	}
	cmd, err := commands.NewUpdateMaterialCommand(actor, id, details, price, req.QuantityAvailable, req.IsAvailable)
	if err != nil {
		return err
	}
	m, err := s.h.UpdateMaterial.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toMaterial(m))
}

// DeleteMaterial handles DELETE /api/materials/:id.
func (s *Server) DeleteMaterial(c echo.Context) error {
	actor, err := principalFrom(c)
	if err != nil {
		return err
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	cmd, err := commands.NewDeleteMaterialCommand(actor, id)
	if err != nil {
		return err
	}
	if err = s.h.DeleteMaterial.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

type AdjustQuantityRequest struct {
	Delta decimal.Decimal `json:"delta"`
}

// AdjustMaterialQuantity handles PUT /api/materials/:id/quantity.
func (s *Server) AdjustMaterialQuantity(c echo.Context) error {
	actor, err := principalFrom(c)
	if err != nil {
		return err
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	var req AdjustQuantityRequest
	if err = c.Bind(&req); err != nil {
		return err
	}

	cmd, err := commands.NewAdjustMaterialQuantityCommand(actor, id, req.Delta)
	if err != nil {
		return err
	}
	m, err := s.h.AdjustMaterialQuantity.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toMaterial(m))
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

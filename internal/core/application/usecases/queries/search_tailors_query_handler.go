package queries

import (
	"context"

	"tailorshop/internal/core/domain/services"
	"tailorshop/internal/core/ports"
)

// SearchTailorsQueryHandler pushes specialty and rating filters down to the
// repository and ranks the candidates by distance or rating in memory.
type SearchTailorsQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
	finder     services.TailorFinder
}

func NewSearchTailorsQueryHandler(uowFactory ports.UnitOfWorkFactory) SearchTailorsQueryHandler {
	return SearchTailorsQueryHandler{
		uowFactory: uowFactory,
		finder:     services.NewTailorFinder(),
	}
}

func (h SearchTailorsQueryHandler) Handle(ctx context.Context, query SearchTailorsQuery) ([]services.TailorMatch, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	candidates, err := h.uowFactory.Create().TailorRepository().Search(ctx, ports.TailorFilter{
		Specialties:   query.Specialties(),
		MinRating:     query.MinRating(),
		OnlyAvailable: true,
	})
	if err != nil {
		return nil, err
	}

	return h.finder.Find(candidates, query.Criteria())
}

package commands

import (
	"errors"

	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/core/domain/model/user"
	"tailorshop/internal/pkg/guard"
)

var ErrAddPortfolioItemCommandIsNotConstructed = errors.New(
	"AddPortfolioItemCommand must be created via NewAddPortfolioItemCommand constructor",
)

// AddPortfolioItemCommand appends an image URL to a shop's portfolio.
type AddPortfolioItemCommand struct { //nolint:recvcheck //using for validation
	actor    user.Principal
	tailorID kernel.UUID
	imageURL string

	guard guard.ConstructorGuard
}

func NewAddPortfolioItemCommand(actor user.Principal, tailorID kernel.UUID, imageURL string) (AddPortfolioItemCommand, error) {
	if err := errors.Join(actor.Validate(), tailorID.Validate()); err != nil {
		return AddPortfolioItemCommand{}, err
	}

	return AddPortfolioItemCommand{
		actor:    actor,
		tailorID: tailorID,
		imageURL: imageURL,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c AddPortfolioItemCommand) Validate() error {
	return c.guard.Validate(ErrAddPortfolioItemCommandIsNotConstructed)
}

func (c AddPortfolioItemCommand) Actor() user.Principal {
	return c.actor
}

func (c AddPortfolioItemCommand) TailorID() kernel.UUID {
	return c.tailorID
}

func (c AddPortfolioItemCommand) ImageURL() string {
	return c.imageURL
}

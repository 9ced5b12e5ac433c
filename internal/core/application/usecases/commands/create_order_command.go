package commands

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/core/domain/model/user"
	"tailorshop/internal/pkg/errs"
	"tailorshop/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// OrderRequest carries the customer's order form.
type OrderRequest struct {
	TailorID            kernel.UUID
	MeasurementID       *kernel.UUID
	MaterialID          *kernel.UUID
	MaterialYards       decimal.Decimal
	MaterialDetails     map[string]any
	OrderType           string
	Description         string
	Instructions        string
	TailoringPrice      kernel.Money
	DeliveryPrice       kernel.Money
	EstimatedCompletion *time.Time
}

// CreateOrderCommand represents a customer commissioning a garment from a tailor.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(actor, OrderRequest{
//	    TailorID:       shopID,
//	    OrderType:      "suit",
//	    Description:    "Two-piece navy suit",
//	    TailoringPrice: tailoring,
//	    DeliveryPrice:  kernel.ZeroMoney(),
//	})
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	actor   user.Principal
	request OrderRequest

	guard guard.ConstructorGuard
}

func NewCreateOrderCommand(actor user.Principal, request OrderRequest) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setRequest(request),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) Actor() user.Principal {
	return c.actor
}

func (c CreateOrderCommand) Request() OrderRequest {
	return c.request
}

func (c *CreateOrderCommand) setActor(actor user.Principal) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if actor.Role != user.Customer {
		return errs.NewAccessDeniedError("create order", "customer role required")
	}
	c.actor = actor
	return nil
}

func (c *CreateOrderCommand) setRequest(r OrderRequest) error {
	var problems []error
	if err := r.TailorID.Validate(); err != nil {
		problems = append(problems, err)
	}
	if strings.TrimSpace(r.OrderType) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("orderType"))
	}
	if strings.TrimSpace(r.Description) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("description"))
	}
	if err := r.TailoringPrice.Validate(); err != nil {
		problems = append(problems, err)
	}
	if err := r.DeliveryPrice.Validate(); err != nil {
		problems = append(problems, err)
	}
	if r.MaterialID != nil && !r.MaterialYards.IsPositive() {
		problems = append(problems, errs.NewValueIsRequiredError("quantity"))
	}
	if len(problems) > 0 {
		return errors.Join(problems...)
	}

	c.request = r
	return nil
}

package commands

import (
	"errors"

	"tailorshop/internal/pkg/errs"
	"tailorshop/internal/pkg/guard"
)

var ErrHandleGatewayEventCommandIsNotConstructed = errors.New(
	"HandleGatewayEventCommand must be created via NewHandleGatewayEventCommand constructor",
)

// HandleGatewayEventCommand carries a raw webhook delivery. The signature is
// checked by the gateway adapter during handling.
type HandleGatewayEventCommand struct { //nolint:recvcheck //using for validation
	payload   []byte
	signature string

	guard guard.ConstructorGuard
}

func NewHandleGatewayEventCommand(payload []byte, signature string) (HandleGatewayEventCommand, error) {
	if len(payload) == 0 {
		return HandleGatewayEventCommand{}, errs.NewValueIsRequiredError("payload")
	}

	return HandleGatewayEventCommand{
		payload:   payload,
		signature: signature,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c HandleGatewayEventCommand) Validate() error {
	return c.guard.Validate(ErrHandleGatewayEventCommandIsNotConstructed)
}

func (c HandleGatewayEventCommand) Payload() []byte {
	return c.payload
}

func (c HandleGatewayEventCommand) Signature() string {
	return c.signature
}

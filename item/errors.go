package item

import (
	"fmt"

	"github.com/dcbor/dcbor/errs"
)

func errUnassignedOrReservedSimple(v uint8) error {
	return fmt.Errorf("%w: simple value %d", errs.ErrUnassignedSimpleValue, v)
}

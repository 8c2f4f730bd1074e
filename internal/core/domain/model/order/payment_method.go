package order

import (
	"fmt"

	"storefront/internal/pkg/errs"
)

type PaymentMethod string

const (
	PaymentOnline  PaymentMethod = "online"
	PaymentOffline PaymentMethod = "offline"
)

func ParsePaymentMethod(s string) (PaymentMethod, error) {
	pm := PaymentMethod(s)
	if err := pm.Validate(); err != nil {
		return "", err
	}
	return pm, nil
}

func (pm PaymentMethod) Validate() error {
	switch pm {
	case PaymentOnline, PaymentOffline:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("paymentMethod", fmt.Errorf("%q is not online or offline", string(pm)))
	}
}

func (pm PaymentMethod) String() string {
	return string(pm)
}

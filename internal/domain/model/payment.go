package model

// PaymentOrder is a provider-side order created for checkout. Amount
// is expressed in the currency's minor units.
type PaymentOrder struct {
	ProviderOrderID  string
	AmountMinorUnits int64
	Currency         string
	Receipt          string
}

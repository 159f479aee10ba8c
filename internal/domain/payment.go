package domain

// PaymentIntent is the provider-side charge attempt for a booking
type PaymentIntent struct {
	ID           string
	ClientSecret string
	Amount       int64 // minor units
	Currency     string
	Status       string
}

// IsSucceeded returns true if the provider has already captured the payment
func (p *PaymentIntent) IsSucceeded() bool {
	return p.Status == PaymentIntentStatusSucceeded
}

// Guest is the authenticated user on whose behalf a request is made
type Guest struct {
	ID    string
	Name  string
	Email string
}

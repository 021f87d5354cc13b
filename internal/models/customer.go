package models

// CustomerInfo is the contact block collected on the payment page. Phone is
// stored exactly as the customer typed it; normalization to the 62-prefixed
// international form happens at submission time.
type CustomerInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Notes   string `json:"notes,omitempty"`
}

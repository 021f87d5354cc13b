package models

import (
	"time"

	"github.com/gocql/gocql"
)

const (
	OrderStatusPending = "pending"
	OrderStatusPaid    = "paid"
	OrderStatusExpired = "expired"
)

type Order struct {
	ID         gocql.UUID   `json:"id" db:"order_id"`
	ExternalID string       `json:"externalId" db:"external_id"` // gateway checkout session id
	Items      []CartItem   `json:"items" db:"items"`
	Total      float64      `json:"total" db:"total"`
	Customer   CustomerInfo `json:"customer" db:"customer"`
	Status     string       `json:"status" db:"status"`
	InvoiceURL string       `json:"invoiceUrl" db:"invoice_url"`
	CreatedAt  time.Time    `json:"createdAt" db:"created_at"`
}

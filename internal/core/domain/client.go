package domain

import (
	"errors"
	"time"
)

var ErrClientNotFound = errors.New("client not found")
var ErrClientExists = errors.New("client already exists")

// Client is a buyer that sales are recorded against. Many sales may
// reference the same client.
type Client struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Package platform holds small helpers shared across packages.
package platform

import "github.com/google/uuid"

// NewID returns a random UUID used to correlate requests.
func NewID() string {
	return uuid.New().String()
}

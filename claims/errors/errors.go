package errors

import "fmt"

// ClaimNotFoundError reports a claim lookup for an identifier that does not
// exist in the store.
type ClaimNotFoundError struct {
	ClaimID uint
}

func (e *ClaimNotFoundError) Error() string {
	return fmt.Sprintf("no claim found for id %d", e.ClaimID)
}

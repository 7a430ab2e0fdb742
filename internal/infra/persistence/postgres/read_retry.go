package postgres

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// withReadRetry runs a read closure and retries it exactly once on a
// transient failure. Not-found results are returned as-is.
func withReadRetry(fn func() error) error {
	err := fn()
	if err == nil || errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return fn()
}

package sqlxrepos

import (
	"database/sql/driver"

	"github.com/pkg/errors"

	"github.com/jnedu/classroom2030/core"
)

// trapErr wraps repository errors. A lost driver connection becomes a
// shutdown error so the API server drains instead of serving 500s off a
// dead pool.
func trapErr(err error, msg string) error {
	if errors.Is(err, driver.ErrBadConn) {
		return core.NewShutdownError(msg + ": database connection lost")
	}
	return errors.Wrap(err, msg)
}

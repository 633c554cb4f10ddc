//go:build !linux && !darwin

package pathutil

import (
	"errors"
	"time"
)

func lutimes(path string, t time.Time) error {
	return errors.ErrUnsupported
}

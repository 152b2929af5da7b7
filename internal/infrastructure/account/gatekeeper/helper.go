package gatekeeper

import (
	"fmt"

	crerr "github.com/cockroachdb/errors"
)

var errGatekeeperTransient = crerr.New("gatekeeper transient failure")

func markTransient(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", errGatekeeperTransient, err)
}

func isCircuitFailure(err error) bool {
	return crerr.Is(err, errGatekeeperTransient)
}

// file: service/authorize.go

package service

import (
	"fmt"

	"github.com/derangga/laundry-app-sub001/common"
	"github.com/derangga/laundry-app-sub001/model"
)

// CurrentCaller is the identity derived from a verified access token for the
// duration of one request. It travels on the request context and is never
// persisted.
type CurrentCaller struct {
	UserID int
	Role   model.Role
}

// AuthorizeRole is a pure predicate: it performs no I/O. A nil caller means
// no verified identity is present at all and maps to ErrUnauthorized; a
// caller outside the allowed set gets ErrForbidden carrying the required
// roles for debuggability.
func AuthorizeRole(caller *CurrentCaller, allowed ...model.Role) error {
	if caller == nil {
		return common.ErrUnauthorized
	}
	for _, role := range allowed {
		if caller.Role == role {
			return nil
		}
	}
	return fmt.Errorf("%w: requires one of %v", common.ErrForbidden, allowed)
}

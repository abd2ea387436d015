// Package service holds the business operations of each entity.
//
// Every operation returns its result together with an error that is nil
// or an *errs.ServiceError: KindNotFound when the id matched nothing,
// KindStoreFailure for any other store error.
package service

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/Nikil-Srinivasan/Stint360-API/internal/errs"
	"github.com/Nikil-Srinivasan/Stint360-API/internal/sqlerr"
)

// storeError classifies an error returned for a lookup of entity by id.
func storeError(entity string, id int, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return errs.NewNotFound(fmt.Sprintf("%s with id '%d' not found", entity, id))
	}
	return listError(err)
}

func listError(err error) error {
	return errs.NewStoreFailure(sqlerr.UserMessage(err), err)
}

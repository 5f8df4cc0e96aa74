// Package registry implements the get-or-create services used while filing a
// shipment request: parties and addresses are deduplicated by natural key and
// every request receives a freshly issued tracking record.
//
// Registries are bound to repositories of a single UnitOfWork. A concurrent
// insert of the same natural key surfaces from the repository as
// errs.ErrConflict; the registry then re-reads the key once and returns the
// row written by the other transaction.
package registry

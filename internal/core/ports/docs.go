// Package ports defines the persistence contracts of the shipping core.
// Repositories are bound to a UnitOfWork so that every write of a command
// shares one transaction.
package ports

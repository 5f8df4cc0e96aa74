package postgres

import (
	"fmt"

	"shipping/internal/adapters/out/postgres/accountrepo"
	"shipping/internal/adapters/out/postgres/addressrepo"
	"shipping/internal/adapters/out/postgres/branchrepo"
	"shipping/internal/adapters/out/postgres/partyrepo"
	"shipping/internal/adapters/out/postgres/shipmentrepo"
	"shipping/internal/adapters/out/postgres/trackingrepo"

	"gorm.io/gorm"
)

type foreignKey struct {
	name     string
	column   string
	table    string
	onDelete string
}

// requestReferences are the foreign keys of shipment_requests that GORM cannot
// derive from the DTOs. Deleting a referenced branch fails with 23503.
var requestReferences = []foreignKey{
	{name: "fk_shipment_requests_creator", column: "creator_id", table: "accounts"},
	{name: "fk_shipment_requests_driver", column: "driver_id", table: "accounts"},
	{name: "fk_shipment_requests_manager", column: "manager_id", table: "accounts"},
	{name: "fk_shipment_requests_sender", column: "sender_id", table: "parties"},
	{name: "fk_shipment_requests_recipient", column: "recipient_id", table: "parties"},
	{name: "fk_shipment_requests_branch", column: "branch_id", table: "branches"},
	{name: "fk_shipment_requests_pickup_address", column: "pickup_address_id", table: "addresses"},
	{name: "fk_shipment_requests_delivery_address", column: "delivery_address_id", table: "addresses"},
}

// accountReferences detach staff from a branch when the branch goes away.
var accountReferences = []foreignKey{
	{name: "fk_accounts_branch", column: "branch_id", table: "branches", onDelete: "SET NULL"},
}

// Migrate creates or updates every table of the shipping schema. It is idempotent.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&accountrepo.AccountDTO{},
		&partyrepo.PartyDTO{},
		&addressrepo.AddressDTO{},
		&branchrepo.BranchDTO{},
		&trackingrepo.RecordDTO{},
		&shipmentrepo.RequestDTO{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	if err := addForeignKeys(db, &shipmentrepo.RequestDTO{}, requestReferences); err != nil {
		return err
	}
	return addForeignKeys(db, &accountrepo.AccountDTO{}, accountReferences)
}

type tabler interface {
	TableName() string
}

func addForeignKeys(db *gorm.DB, owner tabler, fks []foreignKey) error {
	m := db.Migrator()
	for _, fk := range fks {
		if m.HasConstraint(owner, fk.name) {
			continue
		}
		onDelete := fk.onDelete
		if onDelete == "" {
			onDelete = "RESTRICT"
		}
		stmt := fmt.Sprintf(
			"ALTER TABLE %s ADD CONSTRAINT %s FOREIGN KEY (%s) REFERENCES %s (id) ON DELETE %s",
			owner.TableName(), fk.name, fk.column, fk.table, onDelete,
		)
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("add constraint %s: %w", fk.name, err)
		}
	}
	return nil
}

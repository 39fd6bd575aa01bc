// database/bootstrap.go
package database

import (
	"database/sql"
	"fmt"
	"log"
	"strings"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"

	"harvestpro/entities"
)

func OpenSQLite(path string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}

	// IMPORTANT: run the PK migration BEFORE AutoMigrate so GORM doesn't try the failing ALTER TABLE
	if err := migrateInventoryTxAddPK(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	if err := db.AutoMigrate(
		&entities.User{},
		&entities.Farm{},
		&entities.Crop{},
		&entities.Field{},
		&entities.HarvestRecord{},
		&entities.StorageLocation{},
		&entities.InventoryItem{},
		&entities.InventoryTransaction{}, // now safe: table already has PK
	); err != nil {
		log.Fatalf("automigrate: %v", err)
	}

	return db
}

// migrateInventoryTxAddPK rebuilds inventory_transactions if it lacks a
// primary key on tx_id. Early deployments wrote the ledger without one,
// and SQLite cannot ALTER a PK in place.
func migrateInventoryTxAddPK(db *gorm.DB) error {
	// does table exist?
	var tbl string
	if err := db.Raw(`SELECT name FROM sqlite_master WHERE type='table' AND name='inventory_transactions'`).Scan(&tbl).Error; err != nil {
		return fmt.Errorf("check table exist: %w", err)
	}
	if tbl == "" {
		// fresh DB, nothing to do
		return nil
	}

	// inspect columns
	type colInfo struct {
		Cid       int
		Name      string
		Type      string
		NotNull   int
		DfltValue sql.NullString
		Pk        int
	}
	var cols []colInfo
	if err := db.Raw(`PRAGMA table_info(inventory_transactions)`).Scan(&cols).Error; err != nil {
		return fmt.Errorf("table_info: %w", err)
	}

	hasPK := false
	lower := func(s string) string { return strings.ToLower(s) }
	for _, c := range cols {
		if lower(c.Name) == "tx_id" {
			if c.Pk == 1 {
				hasPK = true
			}
			break
		}
	}
	if hasPK {
		// already good
		return nil
	}

	createSQL := `
CREATE TABLE inventory_transactions_new (
    tx_id INTEGER PRIMARY KEY AUTOINCREMENT,
    item_id INTEGER,
    action TEXT,
    quantity_tons REAL,
    performed_by INTEGER,
    notes TEXT,
    created_at DATETIME
);
`
	// figure which columns exist in old table
	oldCols := map[string]bool{}
	for _, c := range cols {
		oldCols[lower(c.Name)] = true
	}
	sel := func(name string) string {
		if oldCols[name] {
			return name
		}
		return "NULL AS " + name
	}
	copySQL := fmt.Sprintf(`
INSERT INTO inventory_transactions_new (item_id, action, quantity_tons, performed_by, notes, created_at)
SELECT %s, %s, %s, %s, %s, %s FROM inventory_transactions;
`,
		sel("item_id"),
		sel("action"),
		sel("quantity_tons"),
		sel("performed_by"),
		sel("notes"),
		sel("created_at"),
	)

	// do it in a transaction
	return db.Transaction(func(tx *gorm.DB) error {
		// turn off FK checks during rebuild (SQLite scopes to connection; OK for our short tx)
		if err := tx.Exec(`PRAGMA foreign_keys=OFF`).Error; err != nil {
			return err
		}
		if err := tx.Exec(createSQL).Error; err != nil {
			return err
		}
		if err := tx.Exec(copySQL).Error; err != nil {
			return err
		}
		if err := tx.Exec(`DROP TABLE inventory_transactions`).Error; err != nil {
			return err
		}
		if err := tx.Exec(`ALTER TABLE inventory_transactions_new RENAME TO inventory_transactions`).Error; err != nil {
			return err
		}
		if err := tx.Exec(`PRAGMA foreign_keys=ON`).Error; err != nil {
			return err
		}
		return nil
	})
}

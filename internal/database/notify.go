package database

import (
	"fmt"

	"gorm.io/gorm"
)

// WatchedTables are the tables whose changes invalidate the in-memory snapshot
var WatchedTables = []string{
	"members",
	"tasks",
	"task_assignments",
	"subtasks",
	"task_attachments",
	"ratings",
}

const notifyFunction = `
CREATE OR REPLACE FUNCTION perftrack_notify_change() RETURNS trigger AS $$
BEGIN
	PERFORM pg_notify(TG_ARGV[0], TG_TABLE_NAME);
	RETURN NULL;
END;
$$ LANGUAGE plpgsql`

// InstallNotifyTriggers creates a statement-level trigger on every watched table that
// sends the table name on the given channel. The channel must already be validated as
// a plain identifier since it is embedded in DDL.
func InstallNotifyTriggers(db *gorm.DB, channel string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(notifyFunction).Error; err != nil {
			return fmt.Errorf("create notify function: %w", err)
		}
		for _, table := range WatchedTables {
			trigger := table + "_notify_change"
			if err := tx.Exec(fmt.Sprintf(`DROP TRIGGER IF EXISTS %s ON %s`, trigger, table)).Error; err != nil {
				return fmt.Errorf("drop trigger on %s: %w", table, err)
			}
			stmt := fmt.Sprintf(
				`CREATE TRIGGER %s AFTER INSERT OR UPDATE OR DELETE ON %s FOR EACH STATEMENT EXECUTE FUNCTION perftrack_notify_change('%s')`,
				trigger, table, channel,
			)
			if err := tx.Exec(stmt).Error; err != nil {
				return fmt.Errorf("create trigger on %s: %w", table, err)
			}
		}
		return nil
	})
}

package models

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"
)

// exportTables lists the tables in insert order, parents first, so that
// the dump can be replayed with foreign keys enabled.
var exportTables = []string{
	"category_families",
	"categories",
	"sources",
	"users",
	"expenses",
	"budgets",
}

// Export produces a logical dump of the whole database as a portable
// SQL script.
func Export(db *gorm.DB) (string, error) {
	var dump strings.Builder
	dump.WriteString("PRAGMA foreign_keys=OFF;\nBEGIN TRANSACTION;\n")

	for _, table := range exportTables {
		var rows []map[string]interface{}
		err := db.Table(table).Find(&rows).Error
		if err != nil {
			return "", fmt.Errorf("error exporting table %s: %w", table, err)
		}

		for _, row := range rows {
			columns := make([]string, 0, len(row))
			for column := range row {
				columns = append(columns, column)
			}

			// Map iteration order is random, sort for reproducible dumps
			sort.Strings(columns)

			values := make([]string, 0, len(columns))
			for _, column := range columns {
				values = append(values, literal(row[column]))
			}

			dump.WriteString(fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s);\n", table, strings.Join(columns, ", "), strings.Join(values, ", ")))
		}
	}

	dump.WriteString("COMMIT;\n")
	return dump.String(), nil
}

// literal renders a value as a SQL literal.
func literal(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return "NULL"
	case string:
		return "'" + strings.ReplaceAll(v, "'", "''") + "'"
	case []byte:
		return "'" + strings.ReplaceAll(string(v), "'", "''") + "'"
	case time.Time:
		return "'" + v.In(time.UTC).Format("2006-01-02 15:04:05.999999-07:00") + "'"
	case bool:
		if v {
			return "1"
		}
		return "0"
	default:
		return fmt.Sprintf("%v", v)
	}
}

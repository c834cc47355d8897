package repository

import (
	"database/sql"

	"product-helium-addon/db"
)

// connOrDefault returns conn, or the shared connection when conn is nil
func connOrDefault(conn *sql.DB) *sql.DB {
	if conn != nil {
		return conn
	}
	return db.DB
}

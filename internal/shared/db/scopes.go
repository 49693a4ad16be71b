// Package db provides transaction management and query scopes shared by the
// gorm repositories.
package db

import (
	"gorm.io/gorm"
)

// NotDeletedWithAlias filters out soft-deleted rows of an aliased table.
// Needed for Table()-style joins where gorm does not apply soft delete on its own.
//
//	db.Table("users u").Scopes(db.NotDeletedWithAlias("u")).Find(&rows)
func NotDeletedWithAlias(alias string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(alias + ".deleted_at IS NULL")
	}
}

// BySite restricts a query to a single site.
func BySite(siteID uint) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("site_id = ?", siteID)
	}
}

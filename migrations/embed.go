// Package migrations содержит SQL-схему сервиса
package migrations

import "embed"

// FS миграции golang-migrate (NNNNNN_name.up.sql / .down.sql)
//
//go:embed *.sql
var FS embed.FS

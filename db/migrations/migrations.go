// Package migrations встраивает SQL-миграции схемы каталога в бинарник.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS

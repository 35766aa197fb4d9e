package migrations

import "embed"

// FS holds the SQL migrations of the marketplace schema. golang-migrate
// reads them through the iofs source driver.
//
//go:embed *.sql
var FS embed.FS

// Version is the schema version db.Migrate moves to.
const Version = 1

package trainhub

import "embed"

// EmailFS holds the html and plaintext email templates.
//
//go:embed templates/emails
var EmailFS embed.FS

// MigrationsFS holds the SQL schema applied by trainhubctl migrate.
//
//go:embed migrations/*.sql
var MigrationsFS embed.FS

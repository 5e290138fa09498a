// Package document opens the configured host style document.
package document

import (
	"fmt"

	"github.com/alexisbeaulieu97/swatchbook/internal/config"
	"github.com/alexisbeaulieu97/swatchbook/internal/infrastructure/document/memdoc"
	"github.com/alexisbeaulieu97/swatchbook/internal/infrastructure/document/sqlitedoc"
	"github.com/alexisbeaulieu97/swatchbook/internal/infrastructure/document/yamldoc"
	"github.com/alexisbeaulieu97/swatchbook/internal/ports"
)

// Document is what every driver provides.
type Document interface {
	ports.StyleDocument
	ports.StyleLister
}

// Open returns the document for driver, one of config.Drivers(), at path.
// dryRun forces the in-memory driver regardless of configuration.
func Open(driver, path string, dryRun bool, logger ports.Logger) (Document, error) {
	if dryRun {
		return memdoc.New(logger), nil
	}
	switch driver {
	case config.DriverYAML, "":
		return yamldoc.Open(path)
	case config.DriverSQLite:
		return sqlitedoc.Open(path)
	case config.DriverMemory:
		return memdoc.New(logger), nil
	default:
		return nil, fmt.Errorf("unknown document driver %q", driver)
	}
}

package ports

import "confex/internal/domain"

// ExportManifest records which pages an export run produced.
type ExportManifest interface {
	Record(entry domain.ExportEntry) error
	Close() error
}

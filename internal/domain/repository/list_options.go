// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

// ListOptions controls an owner-scoped list query. Values are assumed to be
// sanitized by the validation layer before reaching a repository: SortBy is
// one of the fields allowed for the resource kind and Limit is within
// bounds.
type ListOptions struct {
	SortBy    string
	Desc      bool
	Limit     int
	PageToken string // id of the last document of the previous page, or ""
}

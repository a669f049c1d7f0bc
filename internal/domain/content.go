package domain

import "context"

// LocalizedText carries Arabic-first copy with its English counterpart.
// The frontend picks the field matching the active locale.
type LocalizedText struct {
	Ar string `json:"ar"`
	En string `json:"en"`
}

// Item is an ordered label/value pair inside a page section
type Item struct {
	Label LocalizedText `json:"label"`
	Value LocalizedText `json:"value"`
}

// Section is one titled block of a page, optionally with an ordered item list
type Section struct {
	Title LocalizedText `json:"title"`
	Body  LocalizedText `json:"body,omitempty"`
	Items []Item        `json:"items,omitempty"`
}

// Page is a static marketing page composed of ordered sections
type Page struct {
	Slug     string        `json:"slug"`
	Title    LocalizedText `json:"title"`
	Intro    LocalizedText `json:"intro"`
	Sections []Section     `json:"sections"`
}

// Project is a portfolio entry shown on the projects pages
type Project struct {
	Slug       string        `json:"slug"`
	Name       LocalizedText `json:"name"`
	Summary    LocalizedText `json:"summary"`
	Sector     LocalizedText `json:"sector"`
	City       LocalizedText `json:"city"`
	Highlights []Item        `json:"highlights,omitempty"`
}

// ContentRepository serves the site's static bilingual content.
// Ordering is the declaration order of the underlying literals.
type ContentRepository interface {
	GetPage(slug string) (*Page, bool)
	ListProjects() []Project
	GetProject(slug string) (*Project, bool)
}

// ContentUsecase defines read-only access to page and project content
type ContentUsecase interface {
	GetPage(ctx context.Context, slug string) (*Page, error)
	ListProjects(ctx context.Context) ([]Project, error)
	GetProject(ctx context.Context, slug string) (*Project, error)
}

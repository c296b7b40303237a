package models

// Title shown on the game page
const GameTitle = "Mi Juego Fantástico"

// Template names
const (
	TemplateIndex = "index.html"
)

// Page types

// PageData is the rendering context for a full HTML page
type PageData struct {
	Title string
}

// ErrorPage is the rendering context for fallback error documents
type ErrorPage struct {
	Status     int
	StatusText string
	Message    string
	Detail     string // only set in debug mode
}

package templates

// PageContext provides shared layout context for admin pages.
type PageContext struct {
	Lang         string
	Loc          Localizer
	CurrentPath  string
	CurrentQuery string
	Notice       *Notice
}

// Notice is a one-time message shown above the page content.
type Notice struct {
	// Tone is one of success, info, warning or error.
	Tone string
	Text string
}

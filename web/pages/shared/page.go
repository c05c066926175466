// Package shared contains components reused by every page.
package shared

// Page is embedded by concrete pages to share the title, banner and footer.
//
//	type Home struct {
//	    shared.Page // Home now has Title, Banner() and Footer()
//	}
type Page struct {
	Title string
}

// Banner returns the header component for the page title
func (p Page) Banner() Banner {
	return Banner{Title: p.Title}
}

// Footer returns the page footer
func (p Page) Footer() Footer {
	return Footer{}
}

package maplib

import (
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pageTemplate = template.Must(template.New("index.html").
	Funcs(template.FuncMap{
		"countryName": CountryName,
	}).
	ParseFS(templatesFS, "templates/index.html"))

type PageProvider struct {
	Name            ProviderName
	Service         string
	NeedsCredential bool
	Selected        bool
}

// Page is a model of the web UI page. The same page is rendered by
// HTTP handler and by CLI.
type Page struct {
	Providers       []PageProvider
	Selected        ProviderName
	Self            *Record
	Messages        []Message
	Report          *Report
	FileName        string
	TileURL         string
	TileAttribution string
	Static          bool
}

// SelectedNeedsCredential tells if the token input has to be shown.
func (p Page) SelectedNeedsCredential() bool {
	return p.Selected.NeedsCredential()
}

func NewPageProviders(names []ProviderName, selected ProviderName) []PageProvider {
	rv := make([]PageProvider, 0, len(names))

	for _, v := range names {
		rv = append(rv, PageProvider{
			Name:            v,
			Service:         v.Service(),
			NeedsCredential: v.NeedsCredential(),
			Selected:        v == selected,
		})
	}

	return rv
}

// WritePage renders a page into w. Static pages have no upload form
// and can be opened from a disk.
func WritePage(w io.Writer, page Page) error {
	if page.TileURL == "" {
		page.TileURL = DefaultTileURL
		page.TileAttribution = DefaultTileAttribution
	}

	if err := pageTemplate.Execute(w, page); err != nil {
		return fmt.Errorf("cannot render page: %w", err)
	}

	return nil
}

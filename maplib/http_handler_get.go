package maplib

import (
	"net/http"
)

func (h httpHandler) handleIndex(w http.ResponseWriter, req *http.Request) {
	selected := h.defaultProvider

	if value := req.URL.Query().Get("provider"); value != "" {
		if name, err := ParseProviderName(value); err == nil {
			selected = name
		}
	}

	self, messages := h.mapper.LocateSelf(req.Context())

	h.renderPage(w, Page{
		Selected: selected,
		Self:     self,
		Messages: messages,
	})
}

func (h httpHandler) handleStats(w http.ResponseWriter, req *http.Request) {
	response := struct {
		Results []*UsageStats `json:"results"`
	}{
		Results: h.mapper.UsageStats(),
	}

	h.encodeJSON(w, response)
}

func (h httpHandler) renderPage(w http.ResponseWriter, page Page) {
	page.Providers = NewPageProviders(h.mapper.Providers(), page.Selected)
	page.TileURL = h.tileURL
	page.TileAttribution = h.tileAttribution

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if err := WritePage(w, page); err != nil && h.logger != nil {
		h.logger.RenderError(err)
	}
}

package handlers

import (
	"embed"
	"html/template"
	"net/http"
	"sort"
	"strings"

	"github.com/gorilla/mux"

	"castguide/config"
)

//go:embed templates/*.html
var pageTemplates embed.FS

// PagesHandler serves the HTML pages embedding the platform's video player.
type PagesHandler struct {
	Categories   config.CategoryTable
	PlayerParent string
	templates    *template.Template
}

// NewPagesHandler creates a new PagesHandler.
func NewPagesHandler(categories config.CategoryTable, playerParent string) *PagesHandler {
	return &PagesHandler{
		Categories:   categories,
		PlayerParent: playerParent,
		templates:    template.Must(template.ParseFS(pageTemplates, "templates/*.html")),
	}
}

type indexPage struct {
	CategoryKeys []string
}

type playerPage struct {
	Channel string
	Parent  string
}

// Index serves the landing page listing the configured categories.
func (h *PagesHandler) Index(w http.ResponseWriter, r *http.Request) {
	keys := make([]string, 0, len(h.Categories))
	for key := range h.Categories {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	h.templates.ExecuteTemplate(w, "index.html", indexPage{CategoryKeys: keys})
}

// Player serves a page embedding the platform's player for one channel.
func (h *PagesHandler) Player(w http.ResponseWriter, r *http.Request) {
	channel := strings.TrimSpace(mux.Vars(r)["channelName"])
	if channel == "" {
		http.Error(w, "channel name is required", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	h.templates.ExecuteTemplate(w, "player.html", playerPage{
		Channel: channel,
		Parent:  h.PlayerParent,
	})
}

package web

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) Mount(r chi.Router) {
	if h.Config.Debug {
		r.Use(RequestLogger)
	}
	r.Use(SessionMiddleware(h))

	r.Get(IndexRoute, Index(h))
	r.Post(LookupRoute, Lookup(h))
	r.Post(IdentifierRoute, SetIdentifier(h))

	h.MountStaticRoutes(r)
}

func (h *Handler) MountStaticRoutes(r chi.Router) {
	dir := h.Config.StaticDir
	if !filepath.IsAbs(dir) {
		wd, _ := os.Getwd()
		dir = filepath.Join(wd, dir)
	}

	fileServer := http.FileServer(http.FS(os.DirFS(dir)))
	r.Handle(StaticPath+"/{name}", http.StripPrefix(
		StaticPath+"/",
		fileServer,
	))
}

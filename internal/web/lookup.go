package web

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/profilechecker/internal/domain"
	"github.com/sidereusnuntius/profilechecker/internal/locale"
	"github.com/sidereusnuntius/profilechecker/templates"
)

func Index(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		visitor, _ := GetVisitor(ctx)

		if err := h.render(ctx, w, h.service.View(ctx, visitor)); err != nil {
			log.Error().Err(err).Msg("error rendering checker")
		}
	}
}

// SetIdentifier handles the input's change events.
func SetIdentifier(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		visitor, _ := GetVisitor(ctx)

		if err := r.ParseForm(); err != nil {
			http.Error(w, "failed to parse form body", http.StatusBadRequest)
			return
		}

		h.service.SetIdentifier(ctx, visitor, r.PostForm.Get(templates.IdentifierField))
		w.WriteHeader(http.StatusNoContent)
	}
}

// Lookup stores the submitted identifier, if any, performs the lookup and sends the visitor back to the index.
func Lookup(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		visitor, _ := GetVisitor(ctx)

		if err := r.ParseForm(); err != nil {
			http.Error(w, "failed to parse form body", http.StatusBadRequest)
			return
		}

		if r.PostForm.Has(templates.IdentifierField) {
			h.service.SetIdentifier(ctx, visitor, r.PostForm.Get(templates.IdentifierField))
		}
		h.service.PerformLookup(ctx, visitor)

		http.Redirect(w, r, IndexRoute, http.StatusSeeOther)
	}
}

func (h *Handler) render(ctx context.Context, w http.ResponseWriter, s domain.State) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return templates.Layout(templates.PageData{
		PageTitle: h.Messages.Text(locale.Title),
		Messages:  h.Messages,
		Child:     templates.Checker(s, h.Messages),
	}).Render(ctx, w)
}

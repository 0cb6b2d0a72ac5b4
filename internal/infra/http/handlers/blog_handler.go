package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hotelmol/leads-api/internal/entity"
)

type BlogHandler struct {
	Posts    entity.BlogRepositoryInterface
	Settings entity.SiteSettingRepositoryInterface
}

func NewBlogHandler(posts entity.BlogRepositoryInterface, settings entity.SiteSettingRepositoryInterface) *BlogHandler {
	return &BlogHandler{
		Posts:    posts,
		Settings: settings,
	}
}

type postListResponse struct {
	Success bool              `json:"success"`
	Posts   []entity.BlogPost `json:"posts"`
}

type postResponse struct {
	Success bool             `json:"success"`
	Post    *entity.BlogPost `json:"post"`
}

func (h *BlogHandler) ListPublished(w http.ResponseWriter, r *http.Request) {
	if !h.blogEnabled(r) {
		writeJSON(w, http.StatusOK, postListResponse{Success: true, Posts: []entity.BlogPost{}})
		return
	}

	posts, err := h.Posts.FindPublished(r.Context())
	if err != nil {
		log.Printf("[api] failed to fetch posts: %v", err)
		writeJSON(w, http.StatusInternalServerError, APIResponse{Success: false, Message: "Failed to fetch posts"})
		return
	}

	if posts == nil {
		posts = []entity.BlogPost{}
	}
	writeJSON(w, http.StatusOK, postListResponse{Success: true, Posts: posts})
}

// GetBySlug only ever sees published posts; a draft answers exactly like
// a slug that does not exist.
func (h *BlogHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	post, err := h.Posts.FindPublishedBySlug(r.Context(), slug)
	if errors.Is(err, entity.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, APIResponse{Success: false, Message: "Post not found"})
		return
	}
	if err != nil {
		log.Printf("[api] failed to fetch post %q: %v", slug, err)
		writeJSON(w, http.StatusInternalServerError, APIResponse{Success: false, Message: "Failed to fetch post"})
		return
	}

	writeJSON(w, http.StatusOK, postResponse{Success: true, Post: post})
}

// blogEnabled consults the site_settings kill switch. Anything but an
// explicit "false" leaves the blog on, so a missing table or row cannot
// take it down.
func (h *BlogHandler) blogEnabled(r *http.Request) bool {
	value, err := h.Settings.Get(r.Context(), "blog_enabled")
	if errors.Is(err, entity.ErrNotFound) {
		return true
	}
	if err != nil {
		log.Printf("[api] failed to read blog_enabled setting: %v", err)
		return true
	}
	return value != "false"
}

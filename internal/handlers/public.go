// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"blogicum/internal/markdown"
	"blogicum/internal/models"
	"blogicum/internal/storage"
	"blogicum/internal/store"
)

// Public groups the read-only handlers of the public feed. Only posts
// that are published, due and in a published category (or none) appear.
type Public struct {
	users         *store.UserStore
	categories    *store.CategoryStore
	posts         *store.PostStore
	comments      *store.CommentStore
	storageClient *storage.Client
	now           func() time.Time
}

// NewPublic creates the public handler group. storageClient may be nil.
func NewPublic(users *store.UserStore, categories *store.CategoryStore, posts *store.PostStore, comments *store.CommentStore, storageClient *storage.Client) *Public {
	return &Public{
		users:         users,
		categories:    categories,
		posts:         posts,
		comments:      comments,
		storageClient: storageClient,
		now:           time.Now,
	}
}

// feedPage is one page of a post listing. HasNext is set when another
// page follows; TotalPages and Count are only known for the main feed.
type feedPage struct {
	Page       int        `json:"page"`
	TotalPages int        `json:"total_pages,omitempty"`
	Count      int        `json:"count,omitempty"`
	HasNext    bool       `json:"has_next"`
	Posts      []postView `json:"posts"`
}

// postDetail is the public post page: the post, its rendered text and
// its comments oldest first.
type postDetail struct {
	postView
	TextHTML string        `json:"text_html"`
	Comments []commentView `json:"comments"`
}

// Feed lists visible posts, newest first, PageSize per page.
func (p *Public) Feed(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	now := p.now()
	page := parsePage(r.URL.Query())

	count, err := p.posts.CountPublished(ctx, now)
	if err != nil {
		writeStoreError(w, r, err, "post")
		return
	}
	pages := totalPages(count, PageSize)
	if page > pages {
		page = pages
	}

	posts, err := p.posts.ListPublished(ctx, now, PageSize, (page-1)*PageSize)
	if err != nil {
		writeStoreError(w, r, err, "post")
		return
	}

	writeJSON(w, http.StatusOK, feedPage{
		Page:       page,
		TotalPages: pages,
		Count:      count,
		HasNext:    page < pages,
		Posts:      newPostViews(posts, p.storageClient),
	})
}

// PostDetail shows a visible post with its comments. Hidden, scheduled
// and missing posts all answer 404.
func (p *Public) PostDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r, "id")
	if !ok {
		return
	}
	ctx := r.Context()

	post, err := p.posts.FindVisible(ctx, id, p.now())
	if err != nil {
		writeStoreError(w, r, err, "post")
		return
	}
	if post == nil {
		writeError(w, http.StatusNotFound, "post not found")
		return
	}

	comments, err := p.comments.ListByPost(ctx, id)
	if err != nil {
		writeStoreError(w, r, err, "comment")
		return
	}

	html, err := markdown.ToHTML(post.Text)
	if err != nil {
		slog.Warn("render post text failed", "error", err, "post_id", id)
	}

	writeJSON(w, http.StatusOK, postDetail{
		postView: newPostView(post, p.storageClient),
		TextHTML: html,
		Comments: newCommentViews(comments),
	})
}

// CategoryPosts lists the visible posts of a published category.
func (p *Public) CategoryPosts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	cat, err := p.categories.FindBySlug(ctx, chi.URLParam(r, "slug"))
	if err != nil {
		writeStoreError(w, r, err, "category")
		return
	}
	if cat == nil || !cat.IsPublished {
		writeError(w, http.StatusNotFound, "category not found")
		return
	}

	page := parsePage(r.URL.Query())
	posts, err := p.posts.ListPublishedByCategory(ctx, cat.ID, p.now(), PageSize+1, (page-1)*PageSize)
	if err != nil {
		writeStoreError(w, r, err, "post")
		return
	}

	writeJSON(w, http.StatusOK, struct {
		Category *models.Category `json:"category"`
		feedPage
	}{cat, p.pageOf(page, posts)})
}

// Profile shows a user and their visible posts.
func (p *Public) Profile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, err := p.users.FindByUsername(ctx, chi.URLParam(r, "username"))
	if err != nil {
		writeStoreError(w, r, err, "user")
		return
	}
	if user == nil {
		writeError(w, http.StatusNotFound, "user not found")
		return
	}

	page := parsePage(r.URL.Query())
	posts, err := p.posts.ListByAuthor(ctx, user.ID, false, p.now(), PageSize+1, (page-1)*PageSize)
	if err != nil {
		writeStoreError(w, r, err, "post")
		return
	}

	writeJSON(w, http.StatusOK, struct {
		User     *models.User `json:"user"`
		FullName string       `json:"full_name"`
		feedPage
	}{user, user.FullName(), p.pageOf(page, posts)})
}

// pageOf builds a page from a listing fetched with one extra row, which
// only signals that a next page exists.
func (p *Public) pageOf(page int, posts []models.Post) feedPage {
	hasNext := len(posts) > PageSize
	if hasNext {
		posts = posts[:PageSize]
	}
	return feedPage{Page: page, HasNext: hasNext, Posts: newPostViews(posts, p.storageClient)}
}

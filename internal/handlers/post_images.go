// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"blogicum/internal/imaging"
)

const (
	// maxImageSize is the maximum allowed image upload size (10 MB).
	maxImageSize = 10 << 20

	// imagePrefix is the object key prefix for post images.
	imagePrefix = "post_images/"
)

// PostImageUpload stores the multipart "image" file as the post's image,
// generates a JPEG thumbnail next to it, and removes the previous image.
func (a *API) PostImageUpload(w http.ResponseWriter, r *http.Request) {
	if a.storageClient == nil {
		writeError(w, http.StatusServiceUnavailable, "object storage is not configured")
		return
	}
	id, ok := urlID(w, r, "id")
	if !ok {
		return
	}
	ctx := r.Context()

	post, err := a.posts.FindByID(ctx, id)
	if err != nil {
		writeStoreError(w, r, err, "post")
		return
	}
	if post == nil {
		writeError(w, http.StatusNotFound, "post not found")
		return
	}

	// Limit request body to maxImageSize + some overhead for form fields.
	r.Body = http.MaxBytesReader(w, r.Body, maxImageSize+1024)
	if err := r.ParseMultipartForm(maxImageSize); err != nil {
		writeError(w, http.StatusRequestEntityTooLarge, "image too large (max 10 MB) or malformed form")
		return
	}
	file, _, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, "no image provided")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read image")
		return
	}

	info, err := imaging.Inspect(bytes.NewReader(data))
	if err != nil {
		msg := "file is not a supported image (jpeg, png, gif, webp)"
		if errors.Is(err, imaging.ErrTooLarge) {
			msg = "image dimensions are too large"
		}
		writeJSON(w, http.StatusUnprocessableEntity, errorBody{Error: msg, Field: "image"})
		return
	}

	key := imagePrefix + uuid.NewString() + info.Extension()
	if err := a.storageClient.Upload(ctx, key, info.ContentType(), bytes.NewReader(data), int64(len(data))); err != nil {
		slog.Error("s3 upload failed", "error", err, "key", key)
		writeError(w, http.StatusBadGateway, "failed to store image")
		return
	}

	thumb, err := imaging.Thumbnail(bytes.NewReader(data), imaging.ThumbWidth)
	if err != nil {
		slog.Warn("thumbnail generation failed", "error", err, "key", key)
	} else {
		tk := imaging.ThumbKey(key)
		if err := a.storageClient.Upload(ctx, tk, "image/jpeg", bytes.NewReader(thumb), int64(len(thumb))); err != nil {
			slog.Warn("thumbnail upload failed", "error", err, "key", tk)
		}
	}

	if err := a.posts.SetImage(ctx, id, &key); err != nil {
		a.deleteImageObjects(ctx, key)
		writeStoreError(w, r, err, "post")
		return
	}
	if post.HasImage() {
		a.deleteImageObjects(ctx, *post.Image)
	}

	post.Image = &key
	writeJSON(w, http.StatusOK, newPostView(post, a.storageClient))
}

// PostImageDelete clears the post's image and removes the stored objects.
func (a *API) PostImageDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r, "id")
	if !ok {
		return
	}
	ctx := r.Context()

	post, err := a.posts.FindByID(ctx, id)
	if err != nil {
		writeStoreError(w, r, err, "post")
		return
	}
	if post == nil {
		writeError(w, http.StatusNotFound, "post not found")
		return
	}
	if !post.HasImage() {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	if err := a.posts.SetImage(ctx, id, nil); err != nil {
		writeStoreError(w, r, err, "post")
		return
	}
	a.deleteImageObjects(ctx, *post.Image)
	w.WriteHeader(http.StatusNoContent)
}

// deleteImageObjects removes an image and its thumbnail from storage.
// Failures are logged; the database is the source of truth.
func (a *API) deleteImageObjects(ctx context.Context, key string) {
	if a.storageClient == nil {
		return
	}
	for _, k := range []string{key, imaging.ThumbKey(key)} {
		if err := a.storageClient.Delete(ctx, k); err != nil {
			slog.Warn("s3 delete failed", "error", err, "key", k)
		}
	}
}

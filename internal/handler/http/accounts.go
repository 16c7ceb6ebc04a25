package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/edukite/face-auth/internal/blobstore"
	"github.com/edukite/face-auth/internal/logger"
	"github.com/edukite/face-auth/internal/service"
	"github.com/edukite/face-auth/internal/store"
	"github.com/edukite/face-auth/internal/utils"
	"github.com/edukite/face-auth/internal/validators"
)

func (h *Handler) listAccounts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	accounts, err := h.services.AccountService.ListAccounts(ctx)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during account listing")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, accounts, http.StatusOK)
}

func (h *Handler) accountImage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	identityID := chi.URLParam(r, "id")

	image, err := h.services.AccountService.FaceImage(ctx, identityID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrFaceLinkNotFound), errors.Is(err, blobstore.ErrBlobNotFound):
			log.Err(err).Str("identity_id", identityID).Msg("face image not found")
			http.Error(w, "face image not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Str("identity_id", identityID).Msg("unexpected error occurred retrieving face image")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	w.Header().Set("Content-Type", http.DetectContentType(image))
	w.Write(image)
}

func (h *Handler) createCustomAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		log.Err(err).Msg("invalid multipart form was passed")
		http.Error(w, "invalid multipart form was passed", http.StatusBadRequest)
		return
	}

	fullName := r.FormValue("full_name")
	if fullName == "" {
		log.Error().Msg("full name is missing")
		http.Error(w, "full name is required", http.StatusBadRequest)
		return
	}

	image, err := readFormImage(r, "image")
	if err != nil {
		log.Err(err).Msg("account image is missing")
		http.Error(w, "account image is required", http.StatusBadRequest)
		return
	}

	identity, err := h.services.AccountService.RegisterCustom(ctx, fullName, image)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided),
			errors.Is(err, validators.ErrImageNotDecodable):
			log.Err(err).Msg("invalid custom account data provided")
			http.Error(w, "invalid custom account data provided", http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during custom account creation")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, map[string]string{
		"id":       identity.ID,
		"fullName": fullName,
		"message":  "custom account created successfully",
	}, http.StatusCreated)
}

func (h *Handler) userFaceLink(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	identityID := chi.URLParam(r, "id")

	link, err := h.services.AccountService.FaceLink(ctx, identityID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrFaceLinkNotFound):
			log.Err(err).Str("identity_id", identityID).Msg("face link not found")
			http.Error(w, "face link not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Str("identity_id", identityID).Msg("unexpected error occurred retrieving face link")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, link, http.StatusOK)
}

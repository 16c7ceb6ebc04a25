package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/edukite/face-auth/internal/logger"
	"github.com/edukite/face-auth/internal/matcher"
	"github.com/edukite/face-auth/internal/service"
	"github.com/edukite/face-auth/internal/store"
	"github.com/edukite/face-auth/internal/utils"
	"github.com/edukite/face-auth/internal/validators"
	"github.com/edukite/face-auth/models"
)

// maxUploadSize caps the in-memory portion of a parsed multipart form.
const maxUploadSize = 10 << 20

// readFormImage extracts the raw bytes of the named multipart file field.
func readFormImage(r *http.Request, field string) ([]byte, error) {
	file, _, err := r.FormFile(field)
	if err != nil {
		return nil, fmt.Errorf("reading form file %q: %w", field, err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("reading form file %q: %w", field, err)
	}

	return data, nil
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		log.Err(err).Msg("invalid multipart form was passed")
		http.Error(w, "invalid multipart form was passed", http.StatusBadRequest)
		return
	}

	image, err := readFormImage(r, "face_image")
	if err != nil {
		log.Err(err).Msg("face image is missing")
		http.Error(w, "face image is required", http.StatusBadRequest)
		return
	}

	request := models.RegistrationRequest{
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
		Image:    image,
	}

	identity, err := h.services.EnrollmentService.Register(ctx, request)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided),
			errors.Is(err, validators.ErrEmailRequired),
			errors.Is(err, validators.ErrPasswordRequired),
			errors.Is(err, validators.ErrImageRequired),
			errors.Is(err, validators.ErrImageNotDecodable):
			log.Err(err).Msg("invalid registration data provided")
			http.Error(w, "invalid registration data provided", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrIdentityAlreadyExists):
			log.Err(err).Msg("identity already exists")
			http.Error(w, "identity already exists", http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during registration")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	token, err := h.services.SessionService.CreateToken(ctx, identity.ID)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.AuthResponse{
		Success: true,
		UserID:  identity.ID,
		Email:   identity.Email,
		Message: "registration successful",
	}, http.StatusCreated)
}

func (h *Handler) authenticate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		log.Err(err).Msg("invalid multipart form was passed")
		http.Error(w, "invalid multipart form was passed", http.StatusBadRequest)
		return
	}

	image, err := readFormImage(r, "face_image")
	if err != nil {
		log.Err(err).Msg("face image is missing")
		http.Error(w, "face image is required", http.StatusBadRequest)
		return
	}

	if !matcher.Decodable(image) {
		log.Error().Msg("submitted face image is not decodable")
		http.Error(w, "face image is not a decodable raster image", http.StatusBadRequest)
		return
	}

	result, err := h.services.FaceAuthService.Authenticate(ctx, image)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid authentication data provided")
			http.Error(w, "invalid authentication data provided", http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrNoFacesEnrolled):
			log.Err(err).Msg("no faces enrolled")
			http.Error(w, "no faces enrolled", http.StatusUnauthorized)
			return
		case errors.Is(err, service.ErrFaceNotRecognized):
			log.Err(err).Msg("face not recognized")
			http.Error(w, "face not recognized", http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during authentication")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	token, err := h.services.SessionService.CreateToken(ctx, result.IdentityID)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.AuthResponse{
		Success: true,
		UserID:  result.IdentityID,
		Email:   result.Email,
		Message: "authentication successful",
	}, http.StatusOK)
}

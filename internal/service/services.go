package service

import (
	"github.com/edukite/face-auth/internal/blobstore"
	"github.com/edukite/face-auth/internal/config"
	"github.com/edukite/face-auth/internal/logger"
	"github.com/edukite/face-auth/internal/matcher"
	"github.com/edukite/face-auth/internal/store"
)

type Services struct {
	EnrollmentService EnrollmentService
	FaceAuthService   FaceAuthService
	AccountService    AccountService
	SessionService    SessionService
	AppInfoService    AppInfoService
}

func NewServices(storages *store.Storages, blobs blobstore.BlobStore, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	enrollment := NewEnrollmentValidationService().Wrap(
		NewEnrollmentService(storages.IdentityRepository, storages.FaceLinkRepository, blobs, logger),
	)

	return &Services{
		EnrollmentService: enrollment,
		FaceAuthService:   NewFaceAuthService(storages.IdentityRepository, storages.FaceLinkRepository, blobs, matcher.New(), logger),
		AccountService:    NewAccountService(storages.IdentityRepository, storages.FaceLinkRepository, blobs, enrollment, logger),
		SessionService:    NewSessionService(cfg.App, logger),
		AppInfoService:    appInfo,
	}, nil
}

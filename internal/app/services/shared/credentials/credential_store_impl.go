package credentials

import (
	"context"
	"meditrack-client/internal/app/contracts"
	"meditrack-client/internal/app/models"
	"meditrack-client/internal/pkg/constvars"
	"meditrack-client/internal/pkg/exceptions"
	"meditrack-client/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var sessionKeys = []string{
	constvars.StorageKeyAccessToken,
	constvars.StorageKeyRefreshToken,
	constvars.StorageKeyUser,
}

type credentialStore struct {
	Storage contracts.KeyValueStorage
	Log     *zap.Logger
}

// NewCredentialStore builds a session store over storage. Each caller gets its
// own instance, there is no package level state.
func NewCredentialStore(storage contracts.KeyValueStorage, logger *zap.Logger) contracts.CredentialStore {
	return &credentialStore{
		Storage: storage,
		Log:     logger,
	}
}

func (s *credentialStore) SetTokens(ctx context.Context, accessToken, refreshToken string) error {
	err := s.Storage.SetMany(ctx, map[string]string{
		constvars.StorageKeyAccessToken:  accessToken,
		constvars.StorageKeyRefreshToken: refreshToken,
	})
	if err != nil {
		s.Log.Error("credentialStore.SetTokens error persisting tokens",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
			zap.String(constvars.LoggingStorageDriverKey, s.Storage.Driver()),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (s *credentialStore) SetUser(ctx context.Context, user *models.User) error {
	userJSON, err := json.Marshal(user)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	err = s.Storage.SetMany(ctx, map[string]string{
		constvars.StorageKeyUser: string(userJSON),
	})
	if err != nil {
		s.Log.Error("credentialStore.SetUser error persisting user",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
			zap.String(constvars.LoggingStorageDriverKey, s.Storage.Driver()),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (s *credentialStore) GetToken(ctx context.Context) (string, bool) {
	return s.get(ctx, constvars.StorageKeyAccessToken)
}

func (s *credentialStore) GetRefreshToken(ctx context.Context) (string, bool) {
	return s.get(ctx, constvars.StorageKeyRefreshToken)
}

// GetUser treats a stored profile that fails to parse as absent.
func (s *credentialStore) GetUser(ctx context.Context) (*models.User, bool) {
	user, state := s.UserStatus(ctx)
	return user, state == models.UserStatePresent
}

func (s *credentialStore) UserStatus(ctx context.Context) (*models.User, models.UserState) {
	userJSON, found := s.get(ctx, constvars.StorageKeyUser)
	if !found {
		return nil, models.UserStateAbsent
	}

	user := new(models.User)
	err := json.Unmarshal([]byte(userJSON), user)
	if err != nil {
		s.Log.Warn("credentialStore.UserStatus stored user is corrupt",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
			zap.String(constvars.LoggingStorageKey, constvars.StorageKeyUser),
			zap.Error(err),
		)
		return nil, models.UserStateCorrupt
	}
	return user, models.UserStatePresent
}

// IsAuthenticated requires a non-empty access token; GetToken reports an empty
// stored token as present.
func (s *credentialStore) IsAuthenticated(ctx context.Context) bool {
	token, found := s.GetToken(ctx)
	return found && token != ""
}

// Clear never fails: a storage error is logged and the session is considered
// gone for the caller.
func (s *credentialStore) Clear(ctx context.Context) {
	err := s.Storage.Delete(ctx, sessionKeys...)
	if err != nil {
		s.Log.Error("credentialStore.Clear error removing session",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
			zap.String(constvars.LoggingStorageDriverKey, s.Storage.Driver()),
			zap.Error(err),
		)
	}
}

func (s *credentialStore) get(ctx context.Context, key string) (string, bool) {
	value, found, err := s.Storage.Get(ctx, key)
	if err != nil {
		s.Log.Error("credentialStore.get error reading storage, treating entry as absent",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
			zap.String(constvars.LoggingStorageKey, key),
			zap.String(constvars.LoggingStorageDriverKey, s.Storage.Driver()),
			zap.Error(err),
		)
		return "", false
	}
	return value, found
}

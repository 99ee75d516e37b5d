package auth

import (
	"context"
	"meditrack-client/internal/app/contracts"
	"meditrack-client/internal/app/models"
	"meditrack-client/internal/app/services/shared/transport"
	"meditrack-client/internal/pkg/constvars"
	"meditrack-client/internal/pkg/dto/requests"
	"meditrack-client/internal/pkg/dto/responses"
	"meditrack-client/internal/pkg/exceptions"
	"meditrack-client/internal/pkg/utils"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type authClient struct {
	BaseUrl   string
	Sender    transport.Sender
	Store     contracts.CredentialStore
	Publisher contracts.SessionEventPublisher
	Log       *zap.Logger
	now       func() time.Time
}

// NewAuthClient builds the client for the auth endpoints. sender must not
// refresh on 401, the auth endpoints are never retried. publisher may be nil.
func NewAuthClient(
	baseUrl string,
	sender transport.Sender,
	store contracts.CredentialStore,
	publisher contracts.SessionEventPublisher,
	logger *zap.Logger,
) contracts.AuthClient {
	return &authClient{
		BaseUrl:   baseUrl,
		Sender:    sender,
		Store:     store,
		Publisher: publisher,
		Log:       logger,
		now:       time.Now,
	}
}

func (c *authClient) Register(ctx context.Context, email, password, name string) (*responses.AuthResponse, error) {
	ctx, requestID := utils.EnsureRequestID(ctx)
	c.Log.Info("authClient.Register called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, email),
	)

	request := &requests.RegisterUser{
		Email:    email,
		Password: password,
		Name:     name,
	}
	utils.SanitizeRegisterUserRequest(request)
	err := utils.ValidateStruct(request)
	if err != nil {
		c.Log.Error("authClient.Register validation failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrInputValidation(err)
	}

	resp, err := c.post(ctx, constvars.EndpointAuthRegister, request)
	if err != nil {
		c.Log.Error("authClient.Register error sending request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	authResponse, err := c.decodeAuthResponse(resp, constvars.EndpointAuthRegister)
	if err != nil {
		c.Log.Error("authClient.Register rejected",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.Error(err),
		)
		return nil, err
	}

	err = c.storeSession(ctx, authResponse)
	if err != nil {
		return nil, err
	}
	c.publish(ctx, models.SessionEventRegistered, authResponse.User)

	c.Log.Info("authClient.Register succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, authResponse.User.ID.String()),
	)
	return authResponse, nil
}

func (c *authClient) Login(ctx context.Context, email, password string) (*responses.AuthResponse, error) {
	ctx, requestID := utils.EnsureRequestID(ctx)
	c.Log.Info("authClient.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, email),
	)

	request := &requests.LoginUser{
		Email:    email,
		Password: password,
	}
	utils.SanitizeLoginUserRequest(request)
	err := utils.ValidateStruct(request)
	if err != nil {
		c.Log.Error("authClient.Login validation failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrInputValidation(err)
	}

	resp, err := c.post(ctx, constvars.EndpointAuthLogin, request)
	if err != nil {
		c.Log.Error("authClient.Login error sending request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if resp.StatusCode == constvars.StatusUnauthorized {
		var backendError responses.BackendError
		_ = json.Unmarshal(resp.Body, &backendError)
		c.Log.Warn("authClient.Login rejected credentials",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEmailKey, email),
		)
		return nil, exceptions.ErrInvalidCredentials(backendError.Message, constvars.EndpointAuthLogin)
	}

	authResponse, err := c.decodeAuthResponse(resp, constvars.EndpointAuthLogin)
	if err != nil {
		c.Log.Error("authClient.Login rejected",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.Error(err),
		)
		return nil, err
	}

	err = c.storeSession(ctx, authResponse)
	if err != nil {
		return nil, err
	}
	c.publish(ctx, models.SessionEventLoggedIn, authResponse.User)

	c.Log.Info("authClient.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, authResponse.User.ID.String()),
	)
	return authResponse, nil
}

// Logout only drops the local session, the backend is not contacted.
func (c *authClient) Logout(ctx context.Context) {
	ctx, requestID := utils.EnsureRequestID(ctx)
	c.Log.Info("authClient.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	user, _ := c.Store.GetUser(ctx)
	wasAuthenticated := c.Store.IsAuthenticated(ctx)
	c.Store.Clear(ctx)
	if wasAuthenticated {
		c.publish(ctx, models.SessionEventLoggedOut, user)
	}

	c.Log.Info("authClient.Logout succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
}

// RefreshToken exchanges the stored refresh token for a new pair. Any failure
// ends the local session before the error is returned.
func (c *authClient) RefreshToken(ctx context.Context) (*models.Tokens, error) {
	ctx, requestID := utils.EnsureRequestID(ctx)
	c.Log.Info("authClient.RefreshToken called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	tokens, err := c.refreshToken(ctx)
	if err != nil {
		c.Log.Error("authClient.RefreshToken failed, clearing session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		user, _ := c.Store.GetUser(ctx)
		c.Store.Clear(ctx)
		c.publish(ctx, models.SessionEventExpired, user)
		return nil, err
	}

	user, _ := c.Store.GetUser(ctx)
	c.publish(ctx, models.SessionEventRefreshed, user)

	c.Log.Info("authClient.RefreshToken succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return tokens, nil
}

func (c *authClient) refreshToken(ctx context.Context) (*models.Tokens, error) {
	refreshToken, found := c.Store.GetRefreshToken(ctx)
	if !found || refreshToken == "" {
		return nil, exceptions.ErrRefreshTokenMissing()
	}

	resp, err := c.post(ctx, constvars.EndpointAuthRefreshTokens, &requests.RefreshTokens{RefreshToken: refreshToken})
	if err != nil {
		return nil, err
	}

	refreshResponse := new(responses.RefreshResponse)
	err = transport.DecodeResponse(resp, constvars.EndpointAuthRefreshTokens, constvars.ResourceRefreshTokens, refreshResponse)
	if err != nil {
		return nil, err
	}
	if !refreshResponse.Tokens.IsComplete() {
		return nil, exceptions.ErrMalformedResponse(constvars.ResourceRefreshTokens, "missing tokens")
	}

	err = c.Store.SetTokens(ctx, refreshResponse.Tokens.Access.Token, refreshResponse.Tokens.Refresh.Token)
	if err != nil {
		return nil, err
	}
	return refreshResponse.Tokens, nil
}

func (c *authClient) post(ctx context.Context, endpoint string, payload interface{}) (*transport.Response, error) {
	requestJSON, err := json.Marshal(payload)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}
	request := transport.NewPendingRequest(constvars.MethodPost, c.BaseUrl, endpoint, nil, requestJSON)
	return c.Sender.Send(ctx, request)
}

func (c *authClient) decodeAuthResponse(resp *transport.Response, endpoint string) (*responses.AuthResponse, error) {
	authResponse := new(responses.AuthResponse)
	err := transport.DecodeResponse(resp, endpoint, constvars.ResourceAuth, authResponse)
	if err != nil {
		return nil, err
	}
	if authResponse.User == nil {
		return nil, exceptions.ErrMalformedResponse(constvars.ResourceAuth, "missing user")
	}
	if !authResponse.Tokens.IsComplete() {
		return nil, exceptions.ErrMalformedResponse(constvars.ResourceAuth, "missing tokens")
	}
	return authResponse, nil
}

// storeSession leaves the store empty rather than half written.
func (c *authClient) storeSession(ctx context.Context, authResponse *responses.AuthResponse) error {
	err := c.Store.SetTokens(ctx, authResponse.Tokens.Access.Token, authResponse.Tokens.Refresh.Token)
	if err == nil {
		err = c.Store.SetUser(ctx, authResponse.User)
	}
	if err != nil {
		c.Store.Clear(ctx)
		return err
	}
	return nil
}

// publish is best effort, a broken event sink never fails a session change.
func (c *authClient) publish(ctx context.Context, eventType models.SessionEventType, user *models.User) {
	if c.Publisher == nil {
		return
	}

	event := &models.SessionEvent{
		ID:         uuid.NewString(),
		Type:       eventType,
		OccurredAt: c.now().UTC(),
	}
	if user != nil {
		event.UserID = user.ID.String()
		event.Email = user.Email
	}

	err := c.Publisher.Publish(ctx, event)
	if err != nil {
		c.Log.Warn("authClient.publish session event failed",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
			zap.String(constvars.LoggingEventTypeKey, string(eventType)),
			zap.Error(err),
		)
	}
}

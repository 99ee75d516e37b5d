package patients

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

	"go.uber.org/zap"
)

type patientClient struct {
	BaseUrl string
	Sender  transport.Sender
	Store   contracts.CredentialStore
	Log     *zap.Logger
}

// NewPatientClient expects sender to be an authorized chain, one that attaches
// the bearer token and refreshes once on 401.
func NewPatientClient(baseUrl string, sender transport.Sender, store contracts.CredentialStore, logger *zap.Logger) contracts.PatientClient {
	return &patientClient{
		BaseUrl: baseUrl,
		Sender:  sender,
		Store:   store,
		Log:     logger,
	}
}

func (c *patientClient) QueryPatients(ctx context.Context, filter requests.PatientFilter, options requests.PatientQueryOptions) ([]models.Patient, error) {
	page, err := c.QueryPatientPage(ctx, filter, options)
	if err != nil {
		return nil, err
	}
	return page.Patients, nil
}

func (c *patientClient) QueryPatientPage(ctx context.Context, filter requests.PatientFilter, options requests.PatientQueryOptions) (*responses.PatientPage, error) {
	ctx, requestID := utils.EnsureRequestID(ctx)
	query := utils.MergeQueryParams(utils.SanitizePatientFilter(filter), options)
	c.Log.Info("patientClient.QueryPatientPage called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Any(constvars.LoggingQueryParamsKey, query),
	)

	if !c.Store.IsAuthenticated(ctx) {
		c.Log.Warn("patientClient.QueryPatientPage called without a session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, exceptions.ErrTokenMissing()
	}

	request := transport.NewPendingRequest(constvars.MethodGet, c.BaseUrl, constvars.EndpointPatients, query, nil)
	resp, err := c.Sender.Send(ctx, request)
	if err != nil {
		c.Log.Error("patientClient.QueryPatientPage error sending request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	page := new(responses.PatientPage)
	err = transport.DecodeResponse(resp, constvars.EndpointPatients, constvars.ResourcePatient, page)
	if err != nil {
		c.Log.Error("patientClient.QueryPatientPage failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.Bool(constvars.LoggingRetriedKey, request.Retried),
			zap.Error(err),
		)
		return nil, err
	}
	if page.Patients == nil {
		page.Patients = []models.Patient{}
	}

	c.Log.Info("patientClient.QueryPatientPage succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingPatientCountKey, len(page.Patients)),
		zap.Bool(constvars.LoggingRetriedKey, request.Retried),
	)
	return page, nil
}

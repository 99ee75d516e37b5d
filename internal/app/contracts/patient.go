package contracts

import (
	"context"
	"meditrack-client/internal/app/models"
	"meditrack-client/internal/pkg/dto/requests"
	"meditrack-client/internal/pkg/dto/responses"
)

type PatientClient interface {
	QueryPatients(ctx context.Context, filter requests.PatientFilter, options requests.PatientQueryOptions) ([]models.Patient, error)
	QueryPatientPage(ctx context.Context, filter requests.PatientFilter, options requests.PatientQueryOptions) (*responses.PatientPage, error)
}

type PatientExporter interface {
	ExportPatients(ctx context.Context, patients []models.Patient) (objectName string, err error)
}

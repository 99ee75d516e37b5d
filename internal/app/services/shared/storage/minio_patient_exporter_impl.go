package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"meditrack-client/internal/app/contracts"
	"meditrack-client/internal/app/models"
	"meditrack-client/internal/pkg/constvars"
	"meditrack-client/internal/pkg/exceptions"
	"meditrack-client/internal/pkg/utils"
	"path"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

const exportTimestampLayout = "20060102T150405Z"

type objectStore interface {
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
}

type minioPatientExporter struct {
	MinioClient objectStore
	BucketName  string
	Prefix      string
	Log         *zap.Logger
	now         func() time.Time
}

func NewMinioPatientExporter(minioClient *minio.Client, bucketName, prefix string, logger *zap.Logger) contracts.PatientExporter {
	return newMinioPatientExporter(minioClient, bucketName, prefix, logger)
}

func newMinioPatientExporter(client objectStore, bucketName, prefix string, logger *zap.Logger) *minioPatientExporter {
	return &minioPatientExporter{
		MinioClient: client,
		BucketName:  bucketName,
		Prefix:      prefix,
		Log:         logger,
		now:         time.Now,
	}
}

// ExportPatients uploads patients as one JSON array and returns the object
// name. The bucket is created on first use.
func (e *minioPatientExporter) ExportPatients(ctx context.Context, patients []models.Patient) (string, error) {
	requestID := utils.RequestIDFromContext(ctx)
	e.Log.Info("minioPatientExporter.ExportPatients called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingPatientCountKey, len(patients)),
	)

	if patients == nil {
		patients = []models.Patient{}
	}
	body, err := json.Marshal(patients)
	if err != nil {
		return "", exceptions.ErrCannotMarshalJSON(err)
	}

	exists, err := e.MinioClient.BucketExists(ctx, e.BucketName)
	if err != nil {
		return "", exceptions.ErrMinioCreateObject(err, e.BucketName)
	}
	if !exists {
		err = e.MinioClient.MakeBucket(ctx, e.BucketName, minio.MakeBucketOptions{})
		if err != nil {
			return "", exceptions.ErrMinioCreateObject(err, e.BucketName)
		}
	}

	objectName := path.Join(e.Prefix, fmt.Sprintf("%s-%s.json", e.now().UTC().Format(exportTimestampLayout), uuid.NewString()))
	_, err = e.MinioClient.PutObject(ctx, e.BucketName, objectName, bytes.NewReader(body), int64(len(body)), minio.PutObjectOptions{
		ContentType: constvars.MIMEApplicationJSON,
	})
	if err != nil {
		e.Log.Error("minioPatientExporter.ExportPatients error uploading object",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBucketNameKey, e.BucketName),
			zap.Error(err),
		)
		return "", exceptions.ErrMinioCreateObject(err, e.BucketName)
	}

	e.Log.Info("minioPatientExporter.ExportPatients succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBucketNameKey, e.BucketName),
		zap.String(constvars.LoggingObjectNameKey, objectName),
	)
	return objectName, nil
}

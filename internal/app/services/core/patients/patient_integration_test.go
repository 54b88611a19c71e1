//go:build integration

package patients

import (
	"context"
	"errors"
	"fmt"
	"hospital-records-service/internal/app/config"
	"hospital-records-service/internal/app/services/shared/messaging"
	sharedRedis "hospital-records-service/internal/app/services/shared/redis"
	"hospital-records-service/internal/pkg/constvars"
	"hospital-records-service/internal/pkg/dto/requests"
	"hospital-records-service/internal/pkg/exceptions"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

func startMongoContainer(t *testing.T) *mongo.Database {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "mongo:7",
			ExposedPorts: []string{"27017/tcp"},
			WaitingFor:   wait.ForListeningPort("27017/tcp").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Skipf("Skipping test: cannot start mongo container: %v", err)
	}
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("Warning: failed to terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "27017/tcp")
	require.NoError(t, err)

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(fmt.Sprintf("mongodb://%s:%s", host, port.Port())))
	require.NoError(t, err)
	t.Cleanup(func() { client.Disconnect(ctx) })

	return client.Database("hospital_test")
}

func TestPatientIntegration_ConcurrentCreateSameEmail(t *testing.T) {
	db := startMongoContainer(t)
	ctx := context.Background()

	repository := NewPatientMongoRepository(db, "patients", "doctors")
	require.NoError(t, repository.EnsureIndexes(ctx))

	usecase := NewPatientUsecase(repository, nil, sharedRedis.NewNoopRedisRepository(), messaging.NewNoopEventPublisher(),
		&config.InternalConfig{App: config.App{ImageMaxUploadSizeInMB: 2, PatientCacheTTLInSeconds: 60}}, zap.NewNop())

	const attempts = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		created   int
		conflicts int
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := usecase.Create(ctx, &requests.CreatePatient{
				Name:  fmt.Sprintf("Jane %d", i),
				Email: "jane@example.com",
			})

			mu.Lock()
			defer mu.Unlock()
			var customErr *exceptions.CustomError
			switch {
			case err == nil:
				created++
			case errors.As(err, &customErr) && customErr.StatusCode == constvars.StatusConflict:
				conflicts++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, created)
	assert.Equal(t, attempts-1, conflicts)

	count, err := db.Collection("patients").CountDocuments(ctx, bson.M{"email": "jane@example.com"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestPatientIntegration_ListJoinsDoctorName(t *testing.T) {
	db := startMongoContainer(t)
	ctx := context.Background()

	doctorID := primitive.NewObjectID()
	_, err := db.Collection("doctors").InsertOne(ctx, bson.M{"_id": doctorID, "name": "Dr. Grey"})
	require.NoError(t, err)

	repository := NewPatientMongoRepository(db, "patients", "doctors")
	usecase := NewPatientUsecase(repository, nil, sharedRedis.NewNoopRedisRepository(), messaging.NewNoopEventPublisher(),
		&config.InternalConfig{App: config.App{ImageMaxUploadSizeInMB: 2, PatientCacheTTLInSeconds: 60}}, zap.NewNop())

	doctorRef := doctorID.Hex()
	created, err := usecase.Create(ctx, &requests.CreatePatient{Name: "Jane", Email: "jane@example.com", AssignedDoctor: &doctorRef})
	require.NoError(t, err)
	_, err = usecase.Create(ctx, &requests.CreatePatient{Name: "John", Email: "john@example.com"})
	require.NoError(t, err)

	patients, err := usecase.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, patients, 2)
	for _, patient := range patients {
		if patient.ID == created.ID {
			require.NotNil(t, patient.AssignedDoctor)
			assert.Equal(t, "Dr. Grey", patient.AssignedDoctor.Name)
		} else {
			assert.Nil(t, patient.AssignedDoctor)
		}
	}

	cleared := ""
	updated, err := usecase.Update(ctx, created.ID, &requests.UpdatePatient{AssignedDoctor: &cleared})
	require.NoError(t, err)
	assert.Nil(t, updated.AssignedDoctor)

	require.NoError(t, usecase.Delete(ctx, created.ID))
	_, err = usecase.FindByID(ctx, created.ID)
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
}

package main

import (
	"context"
	"fmt"
	"io"
	"meditrack-client/internal/app/config"
	"meditrack-client/internal/app/contracts"
	"meditrack-client/internal/app/drivers/database"
	"meditrack-client/internal/app/drivers/logger"
	"meditrack-client/internal/app/drivers/messaging"
	"meditrack-client/internal/app/drivers/storage"
	"meditrack-client/internal/app/services/core/apiclient"
	"meditrack-client/internal/app/services/shared/credentials"
	"meditrack-client/internal/app/services/shared/keyvalue"
	"meditrack-client/internal/app/services/shared/sessionevents"
	exportstorage "meditrack-client/internal/app/services/shared/storage"
	"meditrack-client/internal/app/services/shared/transport"
	"meditrack-client/internal/pkg/constvars"
	"meditrack-client/internal/pkg/exceptions"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

// application is what a command gets to work with.
type application struct {
	Bootstrap *config.Bootstrap
	Client    *apiclient.Client
	Metrics   *transport.Metrics
	Registry  *prometheus.Registry
	Exporter  contracts.PatientExporter
	Stdout    io.Writer
	Now       func() time.Time
}

type command struct {
	usage      string
	needsMinio bool
	run        func(ctx context.Context, app *application, args []string) error
}

var commands = map[string]command{
	"register": {usage: "create an account and start a session", run: runRegister},
	"login":    {usage: "start a session", run: runLogin},
	"logout":   {usage: "drop the local session", run: runLogout},
	"whoami":   {usage: "show the stored session", run: runWhoAmI},
	"patients": {usage: "list patients with search, filters and paging", run: runPatients},
	"vitals":   {usage: "show synthetic vital signs", run: runVitals},
	"export":   {usage: "upload the filtered patient list to object storage", needsMinio: true, run: runExport},
	"watch":    {usage: "refresh the patient list periodically and serve /metrics", run: runWatch},
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()
	console := logger.NewConsoleLogger(internalConfig, os.Stderr)

	if len(args) == 0 {
		printUsage(os.Stderr)
		return 2
	}
	cmd, ok := commands[args[0]]
	if !ok {
		console.Errorf("unknown command %q", args[0])
		printUsage(os.Stderr)
		return 2
	}

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		console.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	log, err := logger.NewZapLogger(driverConfig, internalConfig)
	if err != nil {
		console.Fatalf("Error initializing logger: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	bootstrap := &config.Bootstrap{
		Logger:         log,
		Console:        console,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}
	defer shutdown(bootstrap)

	app, err := bootstrapingTheApp(ctx, bootstrap, cmd)
	if err != nil {
		console.Errorf("Error bootstrapping: %s", exceptions.ClientMessage(err))
		log.Error("bootstrap failed", zap.Error(err))
		return 1
	}

	err = cmd.run(ctx, app, args[1:])
	if err != nil {
		console.Error(exceptions.ClientMessage(err))
		log.Debug("command failed",
			zap.String("command", args[0]),
			zap.Error(err),
		)
		return 1
	}
	return 0
}

func bootstrapingTheApp(ctx context.Context, bootstrap *config.Bootstrap, cmd command) (*application, error) {
	internalConfig := bootstrap.InternalConfig

	// Credential store
	keyValueStorage, err := newCredentialStorage(ctx, bootstrap)
	if err != nil {
		return nil, err
	}
	store := credentials.NewCredentialStore(keyValueStorage, bootstrap.Logger)

	// Session events
	var publisher contracts.SessionEventPublisher = sessionevents.NewLogPublisher(bootstrap.Logger)
	if internalConfig.SessionEvents.Enabled {
		bootstrap.RabbitMQ, err = messaging.NewRabbitMQ(bootstrap.DriverConfig, bootstrap.Logger)
		if err != nil {
			return nil, err
		}
		publisher, err = sessionevents.NewRabbitMQPublisher(bootstrap.RabbitMQ, internalConfig.SessionEvents.Queue, bootstrap.Logger)
		if err != nil {
			return nil, err
		}
	}

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	metrics := transport.NewMetrics(registry)

	// API client
	options := apiclient.OptionsFromConfig(internalConfig)
	options.Metrics = metrics
	options.Publisher = publisher
	client := apiclient.New(options, store, bootstrap.Logger)

	app := &application{
		Bootstrap: bootstrap,
		Client:    client,
		Metrics:   metrics,
		Registry:  registry,
		Stdout:    os.Stdout,
		Now:       time.Now,
	}

	// Export
	if cmd.needsMinio {
		bootstrap.Minio, err = storage.NewMinio(bootstrap.DriverConfig, bootstrap.Logger)
		if err != nil {
			return nil, err
		}
		app.Exporter = exportstorage.NewMinioPatientExporter(bootstrap.Minio, internalConfig.Export.BucketName, internalConfig.Export.Prefix, bootstrap.Logger)
	}

	return app, nil
}

func newCredentialStorage(ctx context.Context, bootstrap *config.Bootstrap) (contracts.KeyValueStorage, error) {
	credentialConfig := bootstrap.InternalConfig.CredentialStore

	switch credentialConfig.Driver {
	case constvars.CredentialStoreDriverMemory:
		return keyvalue.NewMemoryStorage(), nil
	case constvars.CredentialStoreDriverFile:
		return keyvalue.NewFileStorage(credentialConfig.FilePath, credentialConfig.Passphrase), nil
	case constvars.CredentialStoreDriverRedis:
		redisClient, err := database.NewRedisClient(ctx, bootstrap.DriverConfig, bootstrap.Logger)
		if err != nil {
			return nil, err
		}
		bootstrap.Redis = redisClient
		return keyvalue.NewRedisStorage(redisClient, credentialConfig.Namespace), nil
	case constvars.CredentialStoreDriverMongo:
		mongoClient, err := database.NewMongoDB(ctx, bootstrap.DriverConfig, bootstrap.Logger)
		if err != nil {
			return nil, err
		}
		bootstrap.MongoDB = mongoClient
		db := mongoClient.Database(bootstrap.DriverConfig.MongoDB.DbName)
		return keyvalue.NewMongoStorage(db, credentialConfig.Collection, credentialConfig.Namespace), nil
	}
	return nil, exceptions.ErrUnsupportedStorageDriver(credentialConfig.Driver)
}

func shutdown(bootstrap *config.Bootstrap) {
	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(bootstrap.InternalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err := bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		bootstrap.Console.Warnf("Error during shutdown: %v", err)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "usage: meditrack <command> [flags]")
	fmt.Fprintln(w)
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "  %-10s %s\n", name, commands[name].usage)
	}
}

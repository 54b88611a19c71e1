package config

type InternalConfig struct {
	App      App
	MongoDB  AppMongoDB
	Storage  AppStorage
	Minio    AppMinio
	RabbitMQ AppRabbitMQ
}

type App struct {
	Env                        string
	Port                       string
	Version                    string
	MaxRequests                int
	ShutdownTimeoutInSeconds   int
	RequestTimeoutInSeconds    int
	RequestBodyLimitInMegabyte int
	ImageMaxUploadSizeInMB     int64
	PatientCacheTTLInSeconds   int
	CORSAllowedOrigins         []string
}

type AppMongoDB struct {
	PatientCollection string
	DoctorCollection  string
}

type AppStorage struct {
	Driver    string
	UploadDir string
}

type AppMinio struct {
	BucketName string
}

type AppRabbitMQ struct {
	PatientEventQueue string
}

package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY ContextKey = "request_id"
)

const (
	ResourceAuth          = "auth"
	ResourcePatient       = "patients"
	ResourceRefreshTokens = "refresh-tokens"
	ResourceSession       = "session"
	ResourceUser          = "user"
	ResourceExport        = "export"
)

const (
	EndpointAuthRegister      = "/auth/register"
	EndpointAuthLogin         = "/auth/login"
	EndpointAuthRefreshTokens = "/auth/refresh-tokens"
	EndpointPatients          = "/patients"
)

// Logical keys of the persisted session entries.
const (
	StorageKeyAccessToken  = "auth_token"
	StorageKeyRefreshToken = "refresh_token"
	StorageKeyUser         = "user_data"
)

const (
	CredentialStoreDriverMemory = "memory"
	CredentialStoreDriverFile   = "file"
	CredentialStoreDriverRedis  = "redis"
	CredentialStoreDriverMongo  = "mongo"
)

const (
	QueryParamPage  = "page"
	QueryParamLimit = "limit"
)

const (
	DefaultPatientsPerPage = 10
	DefaultVitalDays       = 30
)

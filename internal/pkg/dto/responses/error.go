package responses

// BackendError is the error body returned by the patient backend.
type BackendError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

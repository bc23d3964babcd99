package dto

// ErrorResponse formato uniforme de error hacia el cliente. Message nunca
// expone internals del store.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

package httpx

import (
	"encoding/json"
	"net/http"
)

// Estados posibles del sobre de respuesta.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Response es el sobre estándar que devuelve la API.
// Mantener un formato consistente hace que los clientes (frontend/tests) sean más simples.
type Response struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Count   *int   `json:"count,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// JSON escribe una respuesta JSON con headers correctos.
// Nota: en caso de error de encodeo, responde 500 de forma segura.
func JSON(w http.ResponseWriter, status int, resp Response) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(true)

	if err := enc.Encode(resp); err != nil {
		// Último recurso: no se pudo serializar JSON.
		http.Error(w, `{"status":"error","message":"internal server error"}`, http.StatusInternalServerError)
	}
}

// OK devuelve una respuesta exitosa con data.
func OK(w http.ResponseWriter, r *http.Request, status int, data any) {
	echoRequestID(w, r)
	JSON(w, status, Response{
		Status: StatusSuccess,
		Data:   data,
	})
}

// OKCount devuelve una colección junto con su cantidad de elementos.
func OKCount(w http.ResponseWriter, r *http.Request, status int, count int, data any) {
	echoRequestID(w, r)
	JSON(w, status, Response{
		Status: StatusSuccess,
		Count:  &count,
		Data:   data,
	})
}

// Fail devuelve un error con mensaje para humanos.
// No exponer detalles internos (SQL, stacktrace, etc.) en producción.
func Fail(w http.ResponseWriter, r *http.Request, status int, message string) {
	echoRequestID(w, r)
	JSON(w, status, Response{
		Status:  StatusError,
		Message: message,
	})
}

// echoRequestID propaga el request id al header de respuesta para trazabilidad.
func echoRequestID(w http.ResponseWriter, r *http.Request) {
	if id := RequestIDFrom(r); id != "" {
		w.Header().Set("X-Request-Id", id)
	}
}

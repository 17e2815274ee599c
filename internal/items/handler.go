package items

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Lelo88/items-api-golang/internal/httpx"
)

// ServiceAPI define lo que el handler necesita.
// Permite testear handlers con stubs sin tocar DB.
type ServiceAPI interface {
	Create(ctx context.Context, in CreateItemInput) (Item, error)
	List(ctx context.Context) ([]Item, error)
	Get(ctx context.Context, id string) (Item, error)
	Replace(ctx context.Context, id string, in UpdateItemInput) (Item, error)
	Update(ctx context.Context, id string, in UpdateItemInput) (Item, error)
	Delete(ctx context.Context, id string) (Item, error)
}

// Handler HTTP para items.
// Solo traduce HTTP <-> dominio (service).
type Handler struct {
	service ServiceAPI
	logger  *zerolog.Logger
}

// NewHandler crea un handler de items.
func NewHandler(service ServiceAPI, logger *zerolog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Create maneja POST /api/items.
func (handler *Handler) Create(writer http.ResponseWriter, request *http.Request) {
	var itemInput CreateItemInput
	if err := json.NewDecoder(request.Body).Decode(&itemInput); err != nil {
		httpx.Fail(writer, request, http.StatusBadRequest, "invalid JSON body")
		return
	}

	item, err := handler.service.Create(request.Context(), itemInput)
	if err != nil {
		switch {
		case errors.Is(err, ErrorInvalidInput):
			httpx.Fail(writer, request, http.StatusBadRequest, "name is required and must be a non-empty string")
		default:
			handler.failInternal(writer, request, err)
		}
		return
	}

	httpx.OK(writer, request, http.StatusCreated, item)
}

// List maneja GET /api/items.
func (handler *Handler) List(writer http.ResponseWriter, request *http.Request) {
	itemList, err := handler.service.List(request.Context())
	if err != nil {
		handler.failInternal(writer, request, err)
		return
	}

	httpx.OKCount(writer, request, http.StatusOK, len(itemList), itemList)
}

// GetByID maneja GET /api/items/{id}.
// Valida que el id sea UUID porque en DB es uuid; esto evita consultas innecesarias.
func (handler *Handler) GetByID(writer http.ResponseWriter, request *http.Request) {
	id, ok := handler.requireID(writer, request)
	if !ok {
		return
	}

	item, err := handler.service.Get(request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrorNotFound):
			httpx.Fail(writer, request, http.StatusNotFound, "item not found")
		default:
			handler.failInternal(writer, request, err)
		}
		return
	}

	httpx.OK(writer, request, http.StatusOK, item)
}

// Put maneja PUT /api/items/{id}: reemplazo con name obligatorio.
func (handler *Handler) Put(writer http.ResponseWriter, request *http.Request) {
	handler.applyUpdate(writer, request, handler.service.Replace)
}

// Patch maneja PATCH /api/items/{id}: cualquier subconjunto de campos.
func (handler *Handler) Patch(writer http.ResponseWriter, request *http.Request) {
	handler.applyUpdate(writer, request, handler.service.Update)
}

// applyUpdate concentra el parseo común de PUT y PATCH.
func (handler *Handler) applyUpdate(writer http.ResponseWriter, request *http.Request, apply func(ctx context.Context, id string, in UpdateItemInput) (Item, error)) {
	id, ok := handler.requireID(writer, request)
	if !ok {
		return
	}

	// Primero leemos raw para saber qué campos vinieron.
	var raw map[string]json.RawMessage
	if err := json.NewDecoder(request.Body).Decode(&raw); err != nil {
		httpx.Fail(writer, request, http.StatusBadRequest, "invalid JSON body")
		return
	}

	// Re-encode y decode al struct para reutilizar tags y tipos.
	// Campos desconocidos quedan descartados acá.
	byteJson, _ := json.Marshal(raw)

	var itemInput UpdateItemInput
	if err := json.Unmarshal(byteJson, &itemInput); err != nil {
		httpx.Fail(writer, request, http.StatusBadRequest, "invalid JSON body")
		return
	}

	// Manejo explícito de description:
	// - Si el cliente envió "description": null => queremos guardar vacío.
	// - Si NO envió "description" => no queremos tocar.
	_, descriptionPresent := raw["description"]
	itemInput.DescriptionPresent = descriptionPresent

	item, err := apply(request.Context(), id, itemInput)
	if err != nil {
		switch {
		case errors.Is(err, ErrorInvalidInput):
			httpx.Fail(writer, request, http.StatusBadRequest, "name is required and must be a non-empty string")
		case errors.Is(err, ErrorEmptyUpdate):
			httpx.Fail(writer, request, http.StatusBadRequest, "request body must include name or description")
		case errors.Is(err, ErrorNotFound):
			httpx.Fail(writer, request, http.StatusNotFound, "item not found")
		default:
			handler.failInternal(writer, request, err)
		}
		return
	}

	httpx.OK(writer, request, http.StatusOK, item)
}

// Delete maneja DELETE /api/items/{id} y devuelve el documento borrado.
func (handler *Handler) Delete(writer http.ResponseWriter, request *http.Request) {
	id, ok := handler.requireID(writer, request)
	if !ok {
		return
	}

	item, err := handler.service.Delete(request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrorNotFound):
			httpx.Fail(writer, request, http.StatusNotFound, "item not found")
		default:
			handler.failInternal(writer, request, err)
		}
		return
	}

	httpx.OK(writer, request, http.StatusOK, item)
}

// requireID lee y valida el id de la URL. Si es inválido responde 400 y corta.
func (handler *Handler) requireID(writer http.ResponseWriter, request *http.Request) (string, bool) {
	id := chi.URLParam(request, "id")
	if _, err := uuid.Parse(id); err != nil {
		httpx.Fail(writer, request, http.StatusBadRequest, "id must be a valid UUID")
		return "", false
	}
	return id, true
}

// failInternal responde 500 genérico. El detalle va solo al log, nunca al cliente.
func (handler *Handler) failInternal(writer http.ResponseWriter, request *http.Request, err error) {
	handler.logger.Error().
		Err(err).
		Str("request_id", httpx.RequestIDFrom(request)).
		Str("method", request.Method).
		Str("path", request.URL.Path).
		Msg("unexpected error")
	httpx.Fail(writer, request, http.StatusInternalServerError, "unexpected error")
}

package items

import (
	"context"
	"errors"
	"strings"
)

// Errores de dominio (no HTTP). El handler los traduce a status codes.
var (
	ErrorInvalidInput = errors.New("invalid input")
	ErrorEmptyUpdate  = errors.New("no recognized field in update")
	ErrorNotFound     = errors.New("item not found")
)

// RepositoryAPI define lo que el service necesita del repositorio.
// Permite testear el service con fakes sin tocar DB.
type RepositoryAPI interface {
	Insert(ctx context.Context, input CreateItemInput) (Item, error)
	List(ctx context.Context) ([]Item, error)
	GetByID(ctx context.Context, id string) (Item, error)
	Update(ctx context.Context, id string, input UpdateItemInput) (Item, error)
	Delete(ctx context.Context, id string) (Item, error)
}

// Service contiene las reglas de validación de items.
type Service struct {
	repository RepositoryAPI
}

// NewService crea un service de items.
func NewService(repository RepositoryAPI) *Service {
	return &Service{repository: repository}
}

// Create valida reglas y crea el item en DB.
func (service *Service) Create(ctx context.Context, itemInput CreateItemInput) (Item, error) {
	// Normalización mínima.
	itemInput.Name = strings.TrimSpace(itemInput.Name)
	if itemInput.Name == "" {
		return Item{}, ErrorInvalidInput
	}

	// Description omitida o null => string vacío.
	description := ""
	if itemInput.Description != nil {
		description = strings.TrimSpace(*itemInput.Description)
	}
	itemInput.Description = &description

	return service.repository.Insert(ctx, itemInput)
}

// List devuelve todos los items (el orden lo garantiza el repositorio).
func (service *Service) List(ctx context.Context) ([]Item, error) {
	return service.repository.List(ctx)
}

// Get obtiene un item por ID.
// Nota: el service no valida formato UUID; eso es más de HTTP/entrada (handler).
func (service *Service) Get(ctx context.Context, id string) (Item, error) {
	return service.repository.GetByID(ctx, id)
}

// Replace maneja la actualización completa (PUT): name es obligatorio.
// Si description no vino, el valor guardado queda como está.
func (service *Service) Replace(ctx context.Context, id string, itemInput UpdateItemInput) (Item, error) {
	if itemInput.Name == nil {
		return Item{}, ErrorInvalidInput
	}
	return service.update(ctx, id, itemInput)
}

// Update maneja la actualización parcial (PATCH): debe venir al menos un campo reconocido.
func (service *Service) Update(ctx context.Context, id string, itemInput UpdateItemInput) (Item, error) {
	if itemInput.Name == nil && !itemInput.DescriptionPresent {
		return Item{}, ErrorEmptyUpdate
	}
	return service.update(ctx, id, itemInput)
}

// update concentra la normalización común a PUT y PATCH.
func (service *Service) update(ctx context.Context, id string, itemInput UpdateItemInput) (Item, error) {
	if itemInput.Name != nil {
		name := strings.TrimSpace(*itemInput.Name)
		if name == "" {
			return Item{}, ErrorInvalidInput
		}
		itemInput.Name = &name
	}

	if itemInput.DescriptionPresent {
		// "description": null cuenta como presente y se guarda vacío.
		description := ""
		if itemInput.Description != nil {
			description = strings.TrimSpace(*itemInput.Description)
		}
		itemInput.Description = &description
	}

	return service.repository.Update(ctx, id, itemInput)
}

// Delete elimina un item por ID y devuelve el documento borrado.
func (service *Service) Delete(ctx context.Context, id string) (Item, error) {
	return service.repository.Delete(ctx, id)
}

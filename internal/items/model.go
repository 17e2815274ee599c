package items

import "time"

// Item representa un documento persistido en DB.
// Description nunca es NULL: el default es string vacío.
type Item struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CreateItemInput representa el payload para crear un item.
// Description es puntero para distinguir omitido de vacío.
type CreateItemInput struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// UpdateItemInput representa el payload para actualizar un item.
// DescriptionPresent lo setea el handler mirando el JSON crudo:
// distingue "no vino description" de "vino description: null".
type UpdateItemInput struct {
	Name               *string `json:"name"`
	Description        *string `json:"description"`
	DescriptionPresent bool    `json:"-"`
}

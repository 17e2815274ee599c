package items

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
)

// Querier es lo mínimo que el repositorio necesita de la DB.
// *pgxpool.Pool lo cumple; los tests usan un fake.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// Repository accede a la tabla items.
// Contiene SQL y mapeo DB → modelo. Los ids llegan ya validados como UUID
// desde la capa HTTP, así que acá nunca se consulta con un id malformado.
type Repository struct {
	database Querier
}

// NewRepository crea un repositorio de items.
func NewRepository(database Querier) *Repository {
	return &Repository{database: database}
}

const itemColumns = "id::text, name, description, created_at, updated_at"

func scanItem(row pgx.Row) (Item, error) {
	var item Item
	err := row.Scan(&item.ID, &item.Name, &item.Description, &item.CreatedAt, &item.UpdatedAt)
	return item, err
}

// Insert crea un item y devuelve el documento persistido.
// Usamos RETURNING para obtener id y timestamps generados por DB.
func (repository *Repository) Insert(ctx context.Context, input CreateItemInput) (Item, error) {
	const query = `
		INSERT INTO items (name, description)
		VALUES ($1, $2)
		RETURNING ` + itemColumns + `;
	`

	description := ""
	if input.Description != nil {
		description = *input.Description
	}

	item, err := scanItem(repository.database.QueryRow(ctx, query, input.Name, description))
	if err != nil {
		return Item{}, err
	}

	return item, nil
}

// List devuelve todos los items ordenados por fecha de creación descendente.
func (repository *Repository) List(ctx context.Context) ([]Item, error) {
	const query = `
		SELECT ` + itemColumns + `
		FROM items
		ORDER BY created_at DESC, id DESC;
	`

	rows, err := repository.database.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	// Slice vacío (no nil) para que el JSON sea [] y no null.
	items := []Item{}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

// GetByID busca un item por id. Devuelve ErrorNotFound si no existe.
func (repository *Repository) GetByID(ctx context.Context, id string) (Item, error) {
	const query = `
		SELECT ` + itemColumns + `
		FROM items
		WHERE id = $1;
	`

	item, err := scanItem(repository.database.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Item{}, ErrorNotFound
		}
		return Item{}, err
	}

	return item, nil
}

// Update aplica los campos presentes y refresca updated_at.
// El SET se arma dinámicamente según qué vino en el input.
func (repository *Repository) Update(ctx context.Context, id string, input UpdateItemInput) (Item, error) {
	assignments := []string{"updated_at = now()"}
	arguments := []any{}

	if input.Name != nil {
		arguments = append(arguments, *input.Name)
		assignments = append(assignments, fmt.Sprintf("name = $%d", len(arguments)))
	}
	if input.DescriptionPresent {
		description := ""
		if input.Description != nil {
			description = *input.Description
		}
		arguments = append(arguments, description)
		assignments = append(assignments, fmt.Sprintf("description = $%d", len(arguments)))
	}

	arguments = append(arguments, id)
	query := fmt.Sprintf(`
		UPDATE items
		SET %s
		WHERE id = $%d
		RETURNING %s;
	`, strings.Join(assignments, ", "), len(arguments), itemColumns)

	item, err := scanItem(repository.database.QueryRow(ctx, query, arguments...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Item{}, ErrorNotFound
		}
		return Item{}, err
	}

	return item, nil
}

// Delete elimina un item y devuelve el documento borrado (el contrato lo devuelve al cliente).
func (repository *Repository) Delete(ctx context.Context, id string) (Item, error) {
	const query = `
		DELETE FROM items
		WHERE id = $1
		RETURNING ` + itemColumns + `;
	`

	item, err := scanItem(repository.database.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Item{}, ErrorNotFound
		}
		return Item{}, err
	}

	return item, nil
}

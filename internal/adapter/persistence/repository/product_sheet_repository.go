package repository

import (
	"context"

	"medpipeline/internal/infrastructure/sheetdb"
	"medpipeline/internal/usecase/interfaces"
)

type productRow struct {
	Name cell `json:"name"`
}

// ProductSheetRepository persists the product catalog in the remote products
// sheet. The catalog is small; writes replace the full list row by row.

type ProductSheetRepository struct {
	client  *sheetdb.Client
	baseURL string
}

var _ interfaces.IProductStore = (*ProductSheetRepository)(nil)

func NewProductSheetRepository(client *sheetdb.Client, baseURL string) *ProductSheetRepository {
	return &ProductSheetRepository{client: client, baseURL: baseURL}
}

func (r *ProductSheetRepository) FetchAll(ctx context.Context) ([]string, error) {
	var rows []productRow
	if err := r.client.GetAll(ctx, r.baseURL, &rows); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(rows))
	for _, row := range rows {
		names = append(names, row.Name.String())
	}
	return names, nil
}

func (r *ProductSheetRepository) ReplaceAll(ctx context.Context, names []string) error {
	rows := make([]productRow, 0, len(names))
	for _, name := range names {
		rows = append(rows, productRow{Name: cell(name)})
	}
	_, err := r.client.Create(ctx, r.baseURL, rows)
	return err
}

package repository

import (
	"context"

	"medpipeline/internal/domain/entities"
	"medpipeline/internal/infrastructure/sheetdb"
	"medpipeline/internal/usecase/interfaces"
)

type userRow struct {
	ID       cell `json:"id"`
	Name     cell `json:"name"`
	Email    cell `json:"email"`
	Password cell `json:"password"`
}

// UserSheetRepository reads and updates dashboard accounts in the remote
// users sheet. The sheet has no lookup endpoint, so reads fetch all rows and
// match locally.

type UserSheetRepository struct {
	client  *sheetdb.Client
	baseURL string
}

var _ interfaces.IUserStore = (*UserSheetRepository)(nil)

func NewUserSheetRepository(client *sheetdb.Client, baseURL string) *UserSheetRepository {
	return &UserSheetRepository{client: client, baseURL: baseURL}
}

func (r *UserSheetRepository) FetchAll(ctx context.Context) ([]entities.User, error) {
	var rows []userRow
	if err := r.client.GetAll(ctx, r.baseURL, &rows); err != nil {
		return nil, err
	}

	users := make([]entities.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, fromUserRow(row))
	}
	return users, nil
}

func (r *UserSheetRepository) GetByID(ctx context.Context, id string) (entities.User, error) {
	users, err := r.FetchAll(ctx)
	if err != nil {
		return entities.User{}, err
	}
	for _, u := range users {
		if u.ID == id {
			return u, nil
		}
	}
	return entities.User{}, nil
}

func (r *UserSheetRepository) Update(ctx context.Context, id string, u entities.User) (int, error) {
	return r.client.Update(ctx, r.baseURL, id, toUserRow(u))
}

func toUserRow(u entities.User) userRow {
	return userRow{
		ID:       cell(u.ID),
		Name:     cell(u.Name),
		Email:    cell(u.Email),
		Password: cell(u.Password),
	}
}

func fromUserRow(row userRow) entities.User {
	return entities.User{
		ID:       row.ID.String(),
		Name:     row.Name.String(),
		Email:    row.Email.String(),
		Password: row.Password.String(),
	}
}

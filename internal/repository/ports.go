package repository

import "context"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Storage . Storage
type Storage interface {
	MigrateTable(tbl ...any) error
	Create(ctx context.Context, record any) error
	GetOneBy(ctx context.Context, conds map[string]any, entity any) error
	GetAllBy(ctx context.Context, conds map[string]any, orderBy string, entity any) error
	Updates(ctx context.Context, model any, fields map[string]any) error
	DeleteWhere(ctx context.Context, model any, conds map[string]any) (int64, error)
}

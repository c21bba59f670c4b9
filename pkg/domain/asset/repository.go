package asset

import (
	"context"
)

//go:generate mockery --name=Repository --dir=. --output=./mocks --filename=asset_repository_mock.go --case=underscore
type Repository interface {
	FindByID(ctx context.Context, id string) (*Asset, error)
	FindAll(ctx context.Context) ([]Asset, error)
}

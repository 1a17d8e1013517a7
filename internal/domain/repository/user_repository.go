package repository

import (
	"context"

	"github.com/jhoicas/restaurante-stock-api/internal/domain/entity"
)

// UserRepository puerto de usuarios (auth y administración, fuera del núcleo contable).
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
	Create(ctx context.Context, u *entity.User) error
	UpdatePassword(ctx context.Context, email, passwordHash string) error
	Delete(ctx context.Context, id string) error
}

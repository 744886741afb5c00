package repository

import (
	"context"

	"tourgenius/internal/domain/repository"
)

// StubRepositoryFactory hands out pre-wired repositories, letting tests drive
// transactional code paths with ordinary mocks.
type StubRepositoryFactory struct {
	UserRepo         repository.UserRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	ItineraryRepo    repository.ItineraryRepository
	InvoiceRepo      repository.InvoiceRepository
}

func (f *StubRepositoryFactory) NewUserRepository() repository.UserRepository {
	return f.UserRepo
}

func (f *StubRepositoryFactory) NewRefreshTokenRepository() repository.RefreshTokenRepository {
	return f.RefreshTokenRepo
}

func (f *StubRepositoryFactory) NewItineraryRepository() repository.ItineraryRepository {
	return f.ItineraryRepo
}

func (f *StubRepositoryFactory) NewInvoiceRepository() repository.InvoiceRepository {
	return f.InvoiceRepo
}

// StubTransactionManager executes the callback immediately, without any real
// transaction, using the configured factory.
type StubTransactionManager struct {
	Factory *StubRepositoryFactory
}

func (m *StubTransactionManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m.Factory)
}

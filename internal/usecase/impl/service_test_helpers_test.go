package impl

import (
	"context"
	"io"
	"log/slog"

	"marketplace/internal/domain/repository"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeTxManager runs the transactional function directly against a fixed
// repository factory, so the error returned by fn is the error the service
// sees. No rollback semantics are simulated; the mocks record the calls.
type fakeTxManager struct {
	factory repository.RepositoryFactory
}

func (f *fakeTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(f.factory)
}

// fakeRepoFactory hands out whichever repository mocks the test wired in.
type fakeRepoFactory struct {
	users         repository.UserRepository
	categories    repository.CategoryRepository
	subcategories repository.SubcategoryRepository
	stores        repository.StoreRepository
	products      repository.ProductRepository
	shippingRates repository.ShippingRateRepository
	drafts        repository.DraftRepository
}

func (f *fakeRepoFactory) UserRepo() repository.UserRepository                 { return f.users }
func (f *fakeRepoFactory) CategoryRepo() repository.CategoryRepository         { return f.categories }
func (f *fakeRepoFactory) SubcategoryRepo() repository.SubcategoryRepository   { return f.subcategories }
func (f *fakeRepoFactory) StoreRepo() repository.StoreRepository               { return f.stores }
func (f *fakeRepoFactory) ProductRepo() repository.ProductRepository           { return f.products }
func (f *fakeRepoFactory) ShippingRateRepo() repository.ShippingRateRepository { return f.shippingRates }
func (f *fakeRepoFactory) DraftRepo() repository.DraftRepository               { return f.drafts }

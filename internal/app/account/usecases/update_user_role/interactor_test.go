package update_user_role

import (
	"context"
	"testing"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/assert"

	"github.com/light-bringer/storefront-service/internal/app/account/domain"
	"github.com/light-bringer/storefront-service/internal/auth"
)

type fakeRepo struct {
	user     *domain.User
	getCalls int
}

func (f *fakeRepo) GetByID(_ context.Context, userID string) (*domain.User, error) {
	f.getCalls++
	if f.user == nil || f.user.ID != userID {
		return nil, domain.ErrUserNotFound
	}
	return f.user, nil
}

func (f *fakeRepo) GetByEmail(context.Context, string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (f *fakeRepo) EmailExists(context.Context, string) (bool, error) { return false, nil }

func (f *fakeRepo) InsertMut(*domain.User) *spanner.Mutation { return nil }

func (f *fakeRepo) UpdateRoleMut(string, auth.Role) *spanner.Mutation { return nil }

func (f *fakeRepo) DeleteMut(string) *spanner.Mutation { return nil }

func TestExecute_RequiresAdmin(t *testing.T) {
	repo := &fakeRepo{}
	interactor := NewInteractor(repo, nil)

	_, err := interactor.Execute(context.Background(), &Request{
		Principal: &auth.Principal{UserID: "u-1", Role: auth.RoleUser},
		UserID:    "u-2",
		Role:      "ADMIN",
	})

	assert.ErrorIs(t, err, auth.ErrForbidden)
	assert.Zero(t, repo.getCalls, "guard must reject before any read")
}

func TestExecute_RejectsSelfRoleChange(t *testing.T) {
	repo := &fakeRepo{}
	interactor := NewInteractor(repo, nil)

	_, err := interactor.Execute(context.Background(), &Request{
		Principal: &auth.Principal{UserID: "admin-1", Role: auth.RoleAdmin},
		UserID:    "admin-1",
		Role:      "USER",
	})

	assert.ErrorIs(t, err, auth.ErrSelfAction)
	assert.Zero(t, repo.getCalls, "self-guard must reject before any read")
}

func TestExecute_RejectsUnknownRole(t *testing.T) {
	repo := &fakeRepo{user: &domain.User{ID: "u-2"}}
	interactor := NewInteractor(repo, nil)

	_, err := interactor.Execute(context.Background(), &Request{
		Principal: &auth.Principal{UserID: "admin-1", Role: auth.RoleAdmin},
		UserID:    "u-2",
		Role:      "SUPERUSER",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidRole)
	assert.Zero(t, repo.getCalls, "validation must reject before any read")
}

func TestExecute_TargetNotFound(t *testing.T) {
	interactor := NewInteractor(&fakeRepo{}, nil)

	_, err := interactor.Execute(context.Background(), &Request{
		Principal: &auth.Principal{UserID: "admin-1", Role: auth.RoleAdmin},
		UserID:    "missing",
		Role:      "ADMIN",
	})

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

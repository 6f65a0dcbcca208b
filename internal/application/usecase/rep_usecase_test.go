package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jarad-ux/eccocontrol-center/internal/application/dto"
	"github.com/jarad-ux/eccocontrol-center/internal/domain"
	"github.com/jarad-ux/eccocontrol-center/internal/domain/entity"
	"github.com/jarad-ux/eccocontrol-center/pkg/jwt"
)

func identity(sub, email, first, last string) *jwt.Identity {
	return &jwt.Identity{Subject: sub, Email: email, FirstName: first, LastName: last}
}

func TestMe_FirstLoginBootstrapsAdmin(t *testing.T) {
	repo := newMemRepRepo()
	uc := NewRepUseCase(repo, testLogger())

	rep, err := uc.Me(context.Background(), identity("u-1", "pat@example.com", "Pat", "Lane"))
	require.NoError(t, err)
	require.NotNil(t, rep)

	assert.Equal(t, "u-1", rep.UserID)
	assert.Equal(t, "Pat Lane", rep.Name)
	assert.Equal(t, entity.RoleAdmin, rep.Role)
	assert.Equal(t, entity.DivisionAll, rep.Division)
	assert.True(t, rep.IsActive)

	count, _ := repo.Count(context.Background())
	assert.Equal(t, 1, count)
}

func TestMe_SecondLoginIsNotAdmin(t *testing.T) {
	repo := newMemRepRepo()
	uc := NewRepUseCase(repo, testLogger())

	_, err := uc.Me(context.Background(), identity("u-1", "pat@example.com", "Pat", "Lane"))
	require.NoError(t, err)

	// A different user with no rep record gets nothing, not a second admin.
	rep, err := uc.Me(context.Background(), identity("u-2", "sam@example.com", "Sam", "Ortiz"))
	require.NoError(t, err)
	assert.Nil(t, rep)
}

func TestMe_ExistingRepIsReturnedUnchanged(t *testing.T) {
	repo := newMemRepRepo()
	uc := NewRepUseCase(repo, testLogger())

	created, err := uc.Create(context.Background(), dto.CreateSalesRepRequest{
		UserID:   "u-5",
		Name:     "Robin Vega",
		Role:     entity.RoleRep,
		Division: "MD",
	})
	require.NoError(t, err)

	rep, err := uc.Me(context.Background(), identity("u-5", "robin@example.com", "", ""))
	require.NoError(t, err)
	require.NotNil(t, rep)
	assert.Equal(t, created.ID, rep.ID)
	assert.Equal(t, entity.RoleRep, rep.Role, "an existing rep must never be upgraded")
}

func TestMe_NameFallsBackToEmail(t *testing.T) {
	repo := newMemRepRepo()
	uc := NewRepUseCase(repo, testLogger())

	rep, err := uc.Me(context.Background(), identity("u-1", "pat@example.com", "", ""))
	require.NoError(t, err)
	require.NotNil(t, rep)
	assert.Equal(t, "pat@example.com", rep.Name)
}

func TestCreate_RejectsUnknownDivision(t *testing.T) {
	uc := NewRepUseCase(newMemRepRepo(), testLogger())

	_, err := uc.Create(context.Background(), dto.CreateSalesRepRequest{
		UserID:   "u-1",
		Name:     "Pat Lane",
		Role:     entity.RoleRep,
		Division: "TX",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_DuplicateUserSurfacesConflict(t *testing.T) {
	uc := NewRepUseCase(newMemRepRepo(), testLogger())

	req := dto.CreateSalesRepRequest{
		UserID:   "u-1",
		Name:     "Pat Lane",
		Role:     entity.RoleRep,
		Division: "NV",
	}
	_, err := uc.Create(context.Background(), req)
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestUpdate_PartialEdit(t *testing.T) {
	repo := newMemRepRepo()
	uc := NewRepUseCase(repo, testLogger())

	created, err := uc.Create(context.Background(), dto.CreateSalesRepRequest{
		UserID:   "u-1",
		Name:     "Pat Lane",
		Role:     entity.RoleRep,
		Division: "NV",
	})
	require.NoError(t, err)

	newDivision := "GA"
	inactive := false
	updated, err := uc.Update(context.Background(), created.ID, dto.UpdateSalesRepRequest{
		Division: &newDivision,
		IsActive: &inactive,
	})
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, "GA", updated.Division)
	assert.False(t, updated.IsActive)
	assert.Equal(t, "Pat Lane", updated.Name, "unset fields stay as they were")
	assert.Equal(t, entity.RoleRep, updated.Role)
}

func TestUpdate_MissingRepReturnsNil(t *testing.T) {
	uc := NewRepUseCase(newMemRepRepo(), testLogger())

	name := "Nobody"
	rep, err := uc.Update(context.Background(), "no-such-id", dto.UpdateSalesRepRequest{Name: &name})
	require.NoError(t, err)
	assert.Nil(t, rep)
}

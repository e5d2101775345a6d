package service

import (
	"context"
	"mime/multipart"
	"testing"
	"time"

	"github.com/ds124wfegd/car-rental/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileHeader(name string) *multipart.FileHeader {
	return &multipart.FileHeader{Filename: name}
}

func seedInput() *AdminInput {
	return &AdminInput{Name: "Owner", Email: "Owner@Example.com", Password: "secret1"}
}

func TestAdminService_SeedOnlyOnce(t *testing.T) {
	svc := NewAdminService(newMemAdmins(), &stubTokens{}, time.Hour)
	ctx := context.Background()

	admin, err := svc.SeedAdmin(ctx, seedInput())
	require.NoError(t, err)
	assert.Equal(t, "owner@example.com", admin.Email)
	assert.Equal(t, entity.RoleAdmin, admin.Role)

	_, err = svc.SeedAdmin(ctx, &AdminInput{Name: "Other", Email: "other@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, entity.ErrAdminAlreadySeeded)
}

func TestAdminService_Login(t *testing.T) {
	tokens := &stubTokens{}
	svc := NewAdminService(newMemAdmins(), tokens, time.Hour)
	ctx := context.Background()

	admin, err := svc.SeedAdmin(ctx, seedInput())
	require.NoError(t, err)

	_, err = svc.Login(ctx, "owner@example.com", "wrong-password")
	assert.ErrorIs(t, err, entity.ErrInvalidCredentials)

	_, err = svc.Login(ctx, "nobody@example.com", "secret1")
	assert.ErrorIs(t, err, entity.ErrInvalidCredentials)

	_, err = svc.Login(ctx, "", "")
	assert.Error(t, err)

	session, err := svc.Login(ctx, " OWNER@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "token-for-"+admin.ID, session.Token)
	assert.Equal(t, admin.ID, session.User.ID)
	require.Len(t, tokens.issued, 1)
	assert.Equal(t, entity.Claims{ID: admin.ID, Email: "owner@example.com", Role: entity.RoleAdmin}, tokens.issued[0])
}

func TestAdminService_InviteAndDelete(t *testing.T) {
	svc := NewAdminService(newMemAdmins(), &stubTokens{}, time.Hour)
	ctx := context.Background()

	owner, err := svc.SeedAdmin(ctx, seedInput())
	require.NoError(t, err)

	_, err = svc.InviteAdmin(ctx, &AdminInput{Name: "Dup", Email: "owner@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, entity.ErrEmailTaken)

	_, err = svc.InviteAdmin(ctx, &AdminInput{Name: "Short", Email: "short@example.com", Password: "123"})
	assert.Equal(t, []string{"password"}, fieldNames(t, err))

	invited, err := svc.InviteAdmin(ctx, &AdminInput{Name: "Ops", Email: "ops@example.com", Password: "secret2"})
	require.NoError(t, err)

	admins, err := svc.ListAdmins(ctx)
	require.NoError(t, err)
	assert.Len(t, admins, 2)

	assert.ErrorIs(t, svc.DeleteAdmin(ctx, owner.ID, owner.ID), entity.ErrSelfDelete)
	require.NoError(t, svc.DeleteAdmin(ctx, owner.ID, invited.ID))
	assert.ErrorIs(t, svc.DeleteAdmin(ctx, owner.ID, invited.ID), entity.ErrAdminNotFound)
}

func TestAdminService_ChangePassword(t *testing.T) {
	svc := NewAdminService(newMemAdmins(), &stubTokens{}, time.Hour)
	ctx := context.Background()

	admin, err := svc.SeedAdmin(ctx, seedInput())
	require.NoError(t, err)

	assert.Error(t, svc.ChangePassword(ctx, admin.ID, "", "newsecret"))
	assert.ErrorIs(t, svc.ChangePassword(ctx, admin.ID, "nope", "newsecret"), entity.ErrWrongPassword)
	assert.ErrorIs(t, svc.ChangePassword(ctx, "missing", "secret1", "newsecret"), entity.ErrAdminNotFound)

	require.NoError(t, svc.ChangePassword(ctx, admin.ID, "secret1", "newsecret"))

	_, err = svc.Login(ctx, "owner@example.com", "secret1")
	assert.ErrorIs(t, err, entity.ErrInvalidCredentials)
	_, err = svc.Login(ctx, "owner@example.com", "newsecret")
	assert.NoError(t, err)
}

func TestCustomerService(t *testing.T) {
	repo := newMemCustomers()
	tokens := &stubTokens{}
	svc := NewCustomerService(repo, tokens, 24*time.Hour)
	ctx := context.Background()

	_, err := svc.Signup(ctx, &SignupInput{Email: "bad", Password: "1"})
	assert.ElementsMatch(t, []string{"fullName", "email", "password"}, fieldNames(t, err))

	session, err := svc.Signup(ctx, &SignupInput{
		FullName: " Jane Doe ",
		Email:    "Jane@Example.com",
		Phone:    "+256700000000",
		Password: "secret1",
	})
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", session.User.FullName)
	assert.Equal(t, "jane@example.com", session.User.Email)
	assert.Equal(t, entity.RoleCustomer, tokens.issued[0].Role)

	_, err = svc.Signup(ctx, &SignupInput{FullName: "Jane", Email: "jane@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, entity.ErrEmailTaken)

	_, err = svc.Login(ctx, "jane@example.com", "wrong")
	assert.ErrorIs(t, err, entity.ErrInvalidCredentials)

	again, err := svc.Login(ctx, "JANE@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, session.User.ID, again.User.ID)

	stored := repo.items[session.User.ID]
	stored.IsActive = false
	repo.items[session.User.ID] = stored

	_, err = svc.Login(ctx, "jane@example.com", "secret1")
	assert.ErrorIs(t, err, entity.ErrInvalidCredentials)
}

package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcastan/inventario-ventas/internal/application/auth"
	"github.com/jcastan/inventario-ventas/internal/application/dto"
	"github.com/jcastan/inventario-ventas/internal/domain"
	"github.com/jcastan/inventario-ventas/internal/domain/entity"
)

// fakeUserRepo usuarios en memoria, indexados por username.
type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	if _, ok := r.users[u.Username]; ok {
		return domain.ErrDuplicate
	}
	cp := *u
	r.users[u.Username] = &cp
	return nil
}

func (r *fakeUserRepo) FindByUsername(username string) (*entity.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func newAuthFixture() (*auth.AuthUseCase, *fakeUserRepo) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     "test-secret",
		ExpMinutes: 60,
		Issuer:     "test",
	})
	return uc, repo
}

func TestCreateUserYLogin(t *testing.T) {
	uc, _ := newAuthFixture()

	created, err := uc.CreateUser("demo_ventas", "ventas@example.com", "s3creta!", entity.GroupVentas)
	require.NoError(t, err)
	assert.Equal(t, entity.GroupVentas, created.Group)
	assert.Equal(t, "active", created.Status)

	out, err := uc.Login(dto.LoginRequest{Username: "demo_ventas", Password: "s3creta!"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "demo_ventas", out.User.Username)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	uc, _ := newAuthFixture()
	_, err := uc.CreateUser("admin", "", "correcta", entity.GroupAdministradores)
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Username: "admin", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc, _ := newAuthFixture()

	_, err := uc.Login(dto.LoginRequest{Username: "nadie", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_CuentaInactiva(t *testing.T) {
	uc, repo := newAuthFixture()
	_, err := uc.CreateUser("admin", "", "clave", entity.GroupAdministradores)
	require.NoError(t, err)
	repo.users["admin"].Status = "suspended"

	_, err = uc.Login(dto.LoginRequest{Username: "admin", Password: "clave"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCreateUser_Duplicado(t *testing.T) {
	uc, _ := newAuthFixture()
	_, err := uc.CreateUser("admin", "", "clave", entity.GroupAdministradores)
	require.NoError(t, err)

	_, err = uc.CreateUser("admin", "", "otra", entity.GroupAdministradores)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCreateUser_EntradaInvalida(t *testing.T) {
	uc, _ := newAuthFixture()

	_, err := uc.CreateUser("", "", "clave", entity.GroupAdministradores)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.CreateUser("admin", "", "", entity.GroupAdministradores)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.CreateUser("admin", "", "clave", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

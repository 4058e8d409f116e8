package user_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"quizmaster/internal/auth"
	"quizmaster/internal/user"
)

type fakeUserRepo struct {
	byEmail map[string]*user.User
	updates map[string]interface{}
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]*user.User{}}
}

func (f *fakeUserRepo) Create(u *user.User) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	f.byEmail[u.Email] = u
	return nil
}

func (f *fakeUserRepo) FindByEmail(email string) (*user.User, error) {
	return f.byEmail[email], nil
}

func (f *fakeUserRepo) FindByID(id uuid.UUID) (*user.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) UpdateColumns(id uuid.UUID, columns map[string]interface{}) error {
	f.updates = columns
	return nil
}

func (f *fakeUserRepo) Stats(id uuid.UUID) (*user.Stats, error) {
	return &user.Stats{TotalQuizzes: 3, AverageScore: 70}, nil
}

func TestMain(m *testing.M) {
	os.Setenv("JWT_SECRET", "a-long-and-secure-signing-secret-for-tests")
	auth.Init()
	os.Exit(m.Run())
}

func TestRegister(t *testing.T) {
	repo := newFakeUserRepo()
	svc := user.NewService(repo)
	ctx := context.Background()

	dto := user.RegisterDTO{Name: "Alice", Email: "alice@example.com", Password: "s3cret"}

	t.Run("FirstRegistrationSucceeds", func(t *testing.T) {
		resp, err := svc.Register(ctx, dto)
		if err != nil {
			t.Fatalf("Register failed: %v", err)
		}
		if resp.Token == "" {
			t.Error("Expected a token in the registration response")
		}
		if resp.User.Email != dto.Email {
			t.Errorf("Wrong email in response: %s", resp.User.Email)
		}

		stored := repo.byEmail[dto.Email]
		if stored.Password == dto.Password {
			t.Error("Password was stored in plaintext")
		}
		if err := bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte(dto.Password)); err != nil {
			t.Errorf("Stored hash does not verify against the password: %v", err)
		}
	})

	t.Run("DuplicateEmailFails", func(t *testing.T) {
		_, err := svc.Register(ctx, dto)
		if !errors.Is(err, user.ErrUserExists) {
			t.Errorf("Expected ErrUserExists for a duplicate email, got %v", err)
		}
	})

	t.Run("MissingFieldFails", func(t *testing.T) {
		_, err := svc.Register(ctx, user.RegisterDTO{Email: "bob@example.com", Password: "x"})
		if !errors.Is(err, user.ErrMissingFields) {
			t.Errorf("Expected ErrMissingFields, got %v", err)
		}
	})
}

func TestLogin(t *testing.T) {
	repo := newFakeUserRepo()
	svc := user.NewService(repo)
	ctx := context.Background()

	if _, err := svc.Register(ctx, user.RegisterDTO{Name: "Alice", Email: "alice@example.com", Password: "s3cret"}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	t.Run("CorrectPassword", func(t *testing.T) {
		resp, err := svc.Login(ctx, user.LoginDTO{Email: "alice@example.com", Password: "s3cret"})
		if err != nil {
			t.Fatalf("Login failed: %v", err)
		}
		if resp.Token == "" {
			t.Error("Expected a token in the login response")
		}
	})

	t.Run("WrongPasswordAndUnknownEmailAreUniform", func(t *testing.T) {
		_, errWrongPassword := svc.Login(ctx, user.LoginDTO{Email: "alice@example.com", Password: "wrong"})
		_, errUnknownEmail := svc.Login(ctx, user.LoginDTO{Email: "nobody@example.com", Password: "s3cret"})

		if !errors.Is(errWrongPassword, user.ErrInvalidCredentials) {
			t.Errorf("Wrong password: expected ErrInvalidCredentials, got %v", errWrongPassword)
		}
		if !errors.Is(errUnknownEmail, user.ErrInvalidCredentials) {
			t.Errorf("Unknown email: expected ErrInvalidCredentials, got %v", errUnknownEmail)
		}
		if errWrongPassword.Error() != errUnknownEmail.Error() {
			t.Error("Login failures must be indistinguishable")
		}
	})
}

func TestUpdateProfile(t *testing.T) {
	repo := newFakeUserRepo()
	svc := user.NewService(repo)
	ctx := context.Background()

	resp, err := svc.Register(ctx, user.RegisterDTO{Name: "Alice", Email: "alice@example.com", Password: "s3cret"})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	userID := resp.User.ID.String()

	t.Run("OnlyProvidedColumns", func(t *testing.T) {
		name := "Alice B."
		if err := svc.UpdateProfile(ctx, userID, user.UpdateProfileDTO{Name: &name}); err != nil {
			t.Fatalf("UpdateProfile failed: %v", err)
		}
		if len(repo.updates) != 1 {
			t.Fatalf("Expected exactly one updated column, got %v", repo.updates)
		}
		if repo.updates["name"] != name {
			t.Errorf("Wrong name column value: %v", repo.updates["name"])
		}
	})

	t.Run("PasswordIsHashed", func(t *testing.T) {
		password := "newpass"
		if err := svc.UpdateProfile(ctx, userID, user.UpdateProfileDTO{Password: &password}); err != nil {
			t.Fatalf("UpdateProfile failed: %v", err)
		}
		hash, ok := repo.updates["password"].(string)
		if !ok {
			t.Fatalf("Password column missing from update: %v", repo.updates)
		}
		if hash == password {
			t.Error("New password was stored in plaintext")
		}
		if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
			t.Errorf("Updated hash does not verify: %v", err)
		}
	})

	t.Run("NoFieldsRejected", func(t *testing.T) {
		err := svc.UpdateProfile(ctx, userID, user.UpdateProfileDTO{})
		if !errors.Is(err, user.ErrMissingFields) {
			t.Errorf("Expected ErrMissingFields, got %v", err)
		}
	})
}

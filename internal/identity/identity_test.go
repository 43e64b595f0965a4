package identity

import (
	"context"
	"testing"
)

func TestRegister_DuplicateEmailConflicts(t *testing.T) {
	repo := NewMemRepo(nil)
	first, err := repo.Register(context.Background(), "Test User", "user@example.com", "secret1")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := repo.Register(context.Background(), "Other", "user@example.com", "secret2"); err != ErrAlreadyExist {
		t.Fatalf("err=%v, esperaba ErrAlreadyExist", err)
	}
	// the first registration is unaffected
	got, err := repo.FindByID(context.Background(), first.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != "Test User" {
		t.Fatalf("got=%+v", got)
	}
}

func TestRegister_EmailMatchIsCaseSensitive(t *testing.T) {
	repo := NewMemRepo(nil)
	if _, err := repo.Register(context.Background(), "A", "user@example.com", "pw"); err != nil {
		t.Fatal(err)
	}
	if _, err := repo.Register(context.Background(), "B", "User@example.com", "pw"); err != nil {
		t.Fatalf("distinct-case email debía registrarse: %v", err)
	}
}

func TestRegister_PasswordIsHashed(t *testing.T) {
	repo := NewMemRepo(nil)
	u, err := repo.Register(context.Background(), "A", "a@example.com", "hunter2")
	if err != nil {
		t.Fatal(err)
	}
	if u.PasswordHash == "hunter2" || u.PasswordHash == "" {
		t.Fatal("password almacenado en claro")
	}
	if !CheckPassword(u.PasswordHash, "hunter2") {
		t.Fatal("hash no verifica")
	}
	if CheckPassword(u.PasswordHash, "wrong") {
		t.Fatal("hash verifica password incorrecto")
	}
}

func TestFindByEmail_AbsenceIsNotFound(t *testing.T) {
	repo := NewMemRepo(nil)
	if _, err := repo.FindByEmail(context.Background(), "ghost@example.com"); err != ErrNotFound {
		t.Fatalf("err=%v", err)
	}
}

func TestGuestRepo_IndependentSequence(t *testing.T) {
	users := NewMemRepo(nil)
	guests := NewGuestRepo(nil)
	_, _ = users.Register(context.Background(), "A", "a@example.com", "pw")
	_, _ = users.Register(context.Background(), "B", "b@example.com", "pw")

	g, err := guests.Create(context.Background(), "Guest User 1", "guest1@example.com")
	if err != nil {
		t.Fatal(err)
	}
	if g.ID != 1 {
		t.Fatalf("guest id=%d, esperado 1 (secuencia propia)", g.ID)
	}

	if ok, _ := guests.Delete(context.Background(), g.ID); !ok {
		t.Fatal("delete falló")
	}
	if ok, _ := guests.Delete(context.Background(), g.ID); ok {
		t.Fatal("segundo delete debía fallar")
	}
}

func TestSessions_LoginAuthenticateLogout(t *testing.T) {
	repo := NewMemRepo(nil)
	_, _ = repo.Register(context.Background(), "A", "a@example.com", "hunter2")
	sessions := NewSessions(repo)

	if _, err := sessions.Login(context.Background(), "a@example.com", "wrong"); err == nil {
		t.Fatal("login con password incorrecto debía fallar")
	}
	tok, err := sessions.Login(context.Background(), "a@example.com", "hunter2")
	if err != nil {
		t.Fatal(err)
	}
	if !sessions.Authenticate(tok) {
		t.Fatal("token emitido no autentica")
	}
	sessions.Logout(tok)
	if sessions.Authenticate(tok) {
		t.Fatal("token sigue vivo tras logout")
	}
}

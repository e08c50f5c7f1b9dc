package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/pragma/auth-service/internal/core/domain"
)

type stubUserRepo struct {
	mu        sync.Mutex
	byEmail   map[string]*domain.User
	nextID    int
	inserts   int
	lookups   int
	existsErr error
	findErr   error
	createErr error // if set, Create returns this error
	// existsOverride forces ExistsByEmail to report false, simulating a
	// concurrent registration that slipped past the probe.
	existsOverride *bool
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byEmail: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.existsErr != nil {
		return false, r.existsErr
	}
	if r.existsOverride != nil {
		return *r.existsOverride, nil
	}
	_, ok := r.byEmail[email]
	return ok, nil
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return nil, r.createErr
	}
	// Unique index backstop.
	if _, ok := r.byEmail[user.Email]; ok {
		return nil, domain.ErrEmailAlreadyRegistered
	}
	for _, u := range r.byEmail {
		if u.DocumentNumber == user.DocumentNumber {
			return nil, domain.ErrDocumentAlreadyExists
		}
	}
	r.nextID++
	stored := cloneUser(user)
	stored.ID = fmt.Sprintf("user-%d", r.nextID)
	r.byEmail[stored.Email] = stored
	r.inserts++
	return cloneUser(stored), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lookups++
	if r.findErr != nil {
		return nil, r.findErr
	}
	u, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByDocumentNumber(_ context.Context, documentNumber string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, u := range r.byEmail {
		if u.DocumentNumber == documentNumber {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmails(_ context.Context, emails []string) ([]*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lookups++
	if r.findErr != nil {
		return nil, r.findErr
	}
	out := make([]*domain.User, 0, len(emails))
	for _, e := range emails {
		if u, ok := r.byEmail[e]; ok {
			out = append(out, cloneUser(u))
		}
	}
	return out, nil
}

func (r *stubUserRepo) put(u *domain.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byEmail[u.Email] = cloneUser(u)
}

type stubRoleRepo struct {
	mu      sync.Mutex
	byID    map[string]*domain.Role
	calls   []string
	findErr error
}

func newStubRoleRepo(roles ...domain.Role) *stubRoleRepo {
	r := &stubRoleRepo{byID: make(map[string]*domain.Role)}
	for i := range roles {
		role := roles[i]
		r.byID[role.ID] = &role
	}
	return r
}

func (r *stubRoleRepo) FindByType(_ context.Context, roleType domain.RoleType) (*domain.Role, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, "FindByType:"+string(roleType))
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, role := range r.byID {
		if role.Type == roleType {
			clone := *role
			return &clone, nil
		}
	}
	return nil, domain.ErrRoleNotFound
}

func (r *stubRoleRepo) FindByID(_ context.Context, id string) (*domain.Role, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, "FindByID:"+id)
	if r.findErr != nil {
		return nil, r.findErr
	}
	role, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrRoleNotFound
	}
	clone := *role
	return &clone, nil
}

// stubHasher "hashes" by prefixing; good enough to tell hash from plaintext.
type stubHasher struct {
	matchCalls int
	hashErr    error
}

func (h *stubHasher) Hash(password string) (string, error) {
	if h.hashErr != nil {
		return "", h.hashErr
	}
	return "hashed:" + password, nil
}

func (h *stubHasher) Matches(password, hash string) bool {
	h.matchCalls++
	return hash == "hashed:"+password
}

type stubTokens struct {
	issued   int
	lastUser *domain.User
	lastRole domain.RoleType
	issueErr error
}

func (t *stubTokens) Issue(user *domain.User, role domain.RoleType) (string, error) {
	t.issued++
	t.lastUser = user
	t.lastRole = role
	if t.issueErr != nil {
		return "", t.issueErr
	}
	return "token-for-" + user.Email, nil
}

func (t *stubTokens) IsValid(token string) bool { return token != "" }

func (t *stubTokens) Claim(string, string) (string, bool) { return "", false }

// stubTransactor runs fn inline and tracks the transaction outcome.
type stubTransactor struct {
	mu        sync.Mutex
	commits   int
	rollbacks int
	beginErr  error
}

func (tx *stubTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if tx.beginErr != nil {
		return tx.beginErr
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	err := fn(ctx)
	tx.mu.Lock()
	defer tx.mu.Unlock()
	if err != nil {
		tx.rollbacks++
		return err
	}
	tx.commits++
	return nil
}

var errBoom = errors.New("connection reset by peer")

const (
	applicantRoleID = "65c9bbc9-d240-4ed0-a2f7-91d7297c1315"
	adminRoleID     = "0f7c5a8e-7d5c-4a2b-9f44-1b1e5b7c9d10"
)

func applicantRole() domain.Role {
	return domain.Role{ID: applicantRoleID, Type: domain.RoleApplicant, Description: "Rol APPLICANT"}
}

func adminRole() domain.Role {
	return domain.Role{ID: adminRoleID, Type: domain.RoleAdmin, Description: "Rol ADMIN"}
}

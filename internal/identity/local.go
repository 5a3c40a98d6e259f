package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"net/mail"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/ngmaloney/wardrobe-terminal/internal/models"
)

// accountKey holds the provider's remembered account in the local store
const accountKey = "identity.account"

// Store is the key-value collaborator the provider remembers accounts in
type Store interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
}

// LocalProvider signs users in from the name and e-mail typed into the
// terminal and issues an opaque identity token scoped to the web client ID.
type LocalProvider struct {
	cfg   Config
	store Store

	mu        sync.Mutex
	signingIn bool
}

// NewLocalProvider configures the provider. Call once during startup.
func NewLocalProvider(cfg Config, store Store) (*LocalProvider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if store == nil {
		return nil, fmt.Errorf("identity: store is required")
	}
	return &LocalProvider{cfg: cfg, store: store}, nil
}

// HasPreviousSignIn reports whether an account is remembered
func (p *LocalProvider) HasPreviousSignIn(ctx context.Context) (bool, error) {
	_, ok, err := p.store.Get(accountKey)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	return ok, nil
}

// SignIn validates the hint and remembers the account
func (p *LocalProvider) SignIn(ctx context.Context, hint LoginHint) (*models.Account, error) {
	p.mu.Lock()
	if p.signingIn {
		p.mu.Unlock()
		return nil, ErrInProgress
	}
	p.signingIn = true
	p.mu.Unlock()

	defer func() {
		p.mu.Lock()
		p.signingIn = false
		p.mu.Unlock()
	}()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSignInCancelled, err)
	}

	email := strings.TrimSpace(hint.Email)
	if email == "" {
		return nil, ErrSignInCancelled
	}

	addr, err := mail.ParseAddress(email)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidEmail, email)
	}

	name := strings.TrimSpace(hint.Name)
	if name == "" {
		name = addr.Name
	}
	if name == "" {
		name = strings.SplitN(addr.Address, "@", 2)[0]
	}

	account := &models.Account{
		Name:    name,
		Email:   addr.Address,
		IDToken: p.issueToken(),
	}

	if err := p.remember(account); err != nil {
		return nil, err
	}

	return account, nil
}

// SignInSilently restores the remembered account with a fresh token
func (p *LocalProvider) SignInSilently(ctx context.Context) (*models.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSignInCancelled, err)
	}

	raw, ok, err := p.store.Get(accountKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	if !ok {
		return nil, ErrNoPreviousSignIn
	}

	var account models.Account
	if err := json.Unmarshal([]byte(raw), &account); err != nil {
		return nil, fmt.Errorf("decoding remembered account: %w", err)
	}
	if account.Email == "" {
		return nil, ErrNoPreviousSignIn
	}

	account.IDToken = p.issueToken()
	return &account, nil
}

// SignOut forgets the remembered account
func (p *LocalProvider) SignOut(ctx context.Context) error {
	if err := p.store.Delete(accountKey); err != nil {
		return fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	return nil
}

func (p *LocalProvider) remember(account *models.Account) error {
	stored := *account
	stored.IDToken = ""

	data, err := json.Marshal(stored)
	if err != nil {
		return fmt.Errorf("encoding account: %w", err)
	}
	if err := p.store.Set(accountKey, string(data)); err != nil {
		return fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	return nil
}

func (p *LocalProvider) issueToken() string {
	return p.cfg.WebClientID + "." + uuid.NewString()
}

package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/hcstnb2047/lvdash/internal/github"
	"github.com/hcstnb2047/lvdash/internal/secret"
	"github.com/sirupsen/logrus"
)

const (
	keyPAT       = "pat"
	keyMasterKey = "key"
)

// ClientFactory builds a GitHub client for a token.
type ClientFactory func(token string) github.Client

// ClientSource hands out the client bound to the current token.
type ClientSource interface {
	Client(ctx context.Context) (github.Client, error)
}

type AuthService interface {
	ClientSource
	SetPAT(ctx context.Context, token string) error
	ClearPAT(ctx context.Context) error
	Authenticated(ctx context.Context) bool
}

type authService struct {
	mu       sync.Mutex
	store    Store
	factory  ClientFactory
	envToken string
	client   github.Client
	cipher   *secret.Cipher
	log      logrus.FieldLogger
}

// NewAuthService manages the stored PAT. envToken is used when no token has
// been stored.
func NewAuthService(store Store, factory ClientFactory, envToken string) AuthService {
	return &authService{
		store:    store,
		factory:  factory,
		envToken: strings.TrimSpace(envToken),
		log:      logrus.WithField("component", "auth"),
	}
}

func (s *authService) Client(ctx context.Context) (github.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client != nil {
		return s.client, nil
	}

	token, err := s.storedToken(ctx)
	if err != nil {
		return nil, err
	}
	if token == "" {
		token = s.envToken
	}
	if token == "" {
		return nil, ErrNoToken
	}

	s.client = s.factory(token)
	return s.client, nil
}

func (s *authService) SetPAT(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return fmt.Errorf("%w: token is blank", ErrInvalidToken)
	}

	candidate := s.factory(token)
	if err := candidate.ValidateToken(ctx); err != nil {
		if github.StatusCode(err) == http.StatusUnauthorized {
			return ErrInvalidToken
		}
		return fmt.Errorf("validating token: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cipher, err := s.loadCipher(ctx)
	if err != nil {
		return err
	}
	sealed, err := cipher.Seal(token)
	if err != nil {
		return fmt.Errorf("sealing token: %w", err)
	}
	if err := s.store.Set(ctx, keyPAT, sealed); err != nil {
		return fmt.Errorf("saving token: %w", err)
	}

	s.client = candidate
	s.log.Info("token saved")
	return nil
}

func (s *authService) ClearPAT(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Delete(ctx, keyPAT); err != nil {
		return fmt.Errorf("removing token: %w", err)
	}
	s.client = nil
	for _, key := range repoCaches {
		if err := s.store.DeleteCache(ctx, key); err != nil {
			return fmt.Errorf("dropping %s cache: %w", key, err)
		}
	}
	s.log.Info("token removed")
	return nil
}

func (s *authService) Authenticated(ctx context.Context) bool {
	_, err := s.Client(ctx)
	return err == nil
}

// storedToken returns "" when nothing is stored or the stored value can no
// longer be opened.
func (s *authService) storedToken(ctx context.Context) (string, error) {
	sealed, ok, err := s.store.Get(ctx, keyPAT)
	if err != nil {
		return "", fmt.Errorf("loading token: %w", err)
	}
	if !ok {
		return "", nil
	}

	cipher, err := s.loadCipher(ctx)
	if err != nil {
		return "", err
	}
	token, err := cipher.Open(sealed)
	if err != nil {
		s.log.WithError(err).Warn("stored token could not be decrypted, ignoring it")
		return "", nil
	}
	return token, nil
}

func (s *authService) loadCipher(ctx context.Context) (*secret.Cipher, error) {
	if s.cipher != nil {
		return s.cipher, nil
	}

	encoded, ok, err := s.store.Get(ctx, keyMasterKey)
	if err != nil {
		return nil, fmt.Errorf("loading master key: %w", err)
	}

	var master []byte
	if ok {
		master, err = base64.StdEncoding.DecodeString(encoded)
		if err != nil || len(master) != secret.MasterKeySize {
			master = nil
			s.log.Warn("stored master key is corrupt, generating a new one")
		}
	}
	if master == nil {
		master, err = secret.GenerateMasterKey()
		if err != nil {
			return nil, err
		}
		if err := s.store.Set(ctx, keyMasterKey, base64.StdEncoding.EncodeToString(master)); err != nil {
			return nil, fmt.Errorf("saving master key: %w", err)
		}
	}

	cipher, err := secret.New(master)
	if err != nil {
		return nil, err
	}
	s.cipher = cipher
	return cipher, nil
}

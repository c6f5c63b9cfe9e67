package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/MKhiriev/heart-journal/internal/config"
	"github.com/MKhiriev/heart-journal/internal/logger"
	"github.com/MKhiriev/heart-journal/internal/utils"
	"github.com/MKhiriev/heart-journal/models"
)

// sessionService issues bearer tokens bound to a journal session id. Tokens
// are only honoured while that session is the current one, which is checked
// by the caller against JournalService.SessionID.
type sessionService struct {
	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewSessionService builds a SessionService from cfg. Without a configured
// sign key a random one is generated, so tokens do not survive a restart.
func NewSessionService(cfg config.App, log *logger.Logger) (SessionService, error) {
	signKey := cfg.TokenSignKey
	if signKey == "" {
		raw := make([]byte, 32)
		if _, err := rand.Read(raw); err != nil {
			return nil, fmt.Errorf("error generating token sign key: %w", err)
		}
		signKey = base64.RawStdEncoding.EncodeToString(raw)
		log.Warn().Str("func", "NewSessionService").Msg("no token sign key configured, using an ephemeral one")
	}

	issuer := cfg.TokenIssuer
	if issuer == "" {
		issuer = config.DefaultTokenIssuer
	}
	duration := cfg.TokenDuration
	if duration <= 0 {
		duration = config.DefaultTokenDuration
	}

	return &sessionService{
		tokenSignKey:  signKey,
		tokenIssuer:   issuer,
		tokenDuration: duration,
		logger:        log,
	}, nil
}

// CreateToken issues a signed JWT whose jti is sessionID.
func (s *sessionService) CreateToken(ctx context.Context, sessionID string) (models.Token, error) {
	token, err := utils.GenerateSessionToken(s.tokenIssuer, sessionID, s.tokenDuration, s.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates tokenString. Any validation failure (expired, wrong
// issuer, malformed) is normalised to ErrTokenIsExpiredOrInvalid.
func (s *sessionService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateSessionToken(tokenString, s.tokenSignKey, s.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "sessionService.ParseToken").Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

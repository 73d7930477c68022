package identity

import (
	"context"
	"encoding/base64"
	"encoding/json"

	"log/slog"

	"github.com/astro-web3/ledger-authz/pkg/logger"
)

type localToken struct {
	Subject string `json:"subject"`
}

// LocalStrategy resolves tokens that are base64 of a JSON object carrying a
// "subject" field. Additional fields are ignored. No signature is checked;
// this strategy is for environments where the credential is minted by a
// trusted upstream.
type LocalStrategy struct{}

func NewLocalStrategy() LocalStrategy {
	return LocalStrategy{}
}

func (LocalStrategy) Resolve(ctx context.Context, token string) Resolution {
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		logger.WarnContext(ctx, "token decode failed", slog.String("error", err.Error()))
		return Failed("token decode failed")
	}

	var claims localToken
	if err := json.Unmarshal(raw, &claims); err != nil {
		logger.WarnContext(ctx, "token parse failed", slog.String("error", err.Error()))
		return Failed("token parse failed")
	}

	if claims.Subject == "" {
		return Failed("token carries no subject")
	}

	return Resolved(claims.Subject)
}

package server

import (
	"context"
	"fmt"

	"google.golang.org/api/idtoken"
)

// GoogleProfile is the subset of the Google ID-token payload the backend
// cares about.
type GoogleProfile struct {
	Email   string
	Name    string
	Subject string
	Picture string
}

// TokenVerifier verifies a Google ID token and returns the holder's profile.
// The production implementation calls Google's certs endpoint; tests use a
// fake.
type TokenVerifier interface {
	Verify(ctx context.Context, idToken string) (*GoogleProfile, error)
}

// googleVerifier validates ID tokens against Google's public keys for a
// fixed OAuth client ID audience.
type googleVerifier struct {
	clientID string
}

// NewGoogleVerifier creates a TokenVerifier for the given OAuth client ID.
func NewGoogleVerifier(clientID string) TokenVerifier {
	return &googleVerifier{clientID: clientID}
}

func (v *googleVerifier) Verify(ctx context.Context, token string) (*GoogleProfile, error) {
	payload, err := idtoken.Validate(ctx, token, v.clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to validate ID token: %w", err)
	}

	email, _ := payload.Claims["email"].(string)
	if email == "" {
		return nil, fmt.Errorf("ID token has no email claim")
	}
	name, _ := payload.Claims["name"].(string)
	picture, _ := payload.Claims["picture"].(string)

	return &GoogleProfile{
		Email:   email,
		Name:    name,
		Subject: payload.Subject,
		Picture: picture,
	}, nil
}

package auth

import (
	"context"
	"errors"
	"fmt"

	firebase "firebase.google.com/go"
	fbauth "firebase.google.com/go/auth"
	"google.golang.org/api/option"

	"github.com/Rahul77977/gagan-server/config"
)

// Claims is the decoded, verified payload of an identity token. UID is the
// identifier issued by the identity provider, distinct from the document
// store's internal id.
type Claims struct {
	UID         string `json:"uid"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Picture     string `json:"picture"`
	PhoneNumber string `json:"phone_number"`
}

// Verifier validates an externally issued identity token. Verification is
// stateless; no local session is created.
type Verifier interface {
	Verify(ctx context.Context, idToken string) (*Claims, error)
}

// FirebaseVerifier delegates verification to the Firebase Admin SDK.
type FirebaseVerifier struct {
	client *fbauth.Client
}

func NewFirebaseVerifier(ctx context.Context, cfg config.FirebaseConfig) (*FirebaseVerifier, error) {
	if cfg.CredentialsJSON == "" {
		return nil, errors.New("auth: FIREBASE_CREDENTIALS_JSON must be set")
	}

	opt := option.WithCredentialsJSON([]byte(cfg.CredentialsJSON))
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opt)
	if err != nil {
		return nil, fmt.Errorf("auth: initializing firebase app: %w", err)
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("auth: getting firebase auth client: %w", err)
	}

	return &FirebaseVerifier{client: client}, nil
}

func (v *FirebaseVerifier) Verify(ctx context.Context, idToken string) (*Claims, error) {
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, err
	}

	claims := &Claims{UID: token.UID}
	claims.Email, _ = token.Claims["email"].(string)
	claims.Name, _ = token.Claims["name"].(string)
	claims.Picture, _ = token.Claims["picture"].(string)
	claims.PhoneNumber, _ = token.Claims["phone_number"].(string)
	return claims, nil
}

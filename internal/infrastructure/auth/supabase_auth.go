package auth

import (
	"fmt"

	"LocalLoop-App/internal/infrastructure/database"
)

// RoleAdmin marks users allowed to review submissions.
const RoleAdmin = "admin"

// AuthUser is the resolved identity behind a bearer token.
type AuthUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// IsAdmin checks whether the user carries the admin role.
func (u *AuthUser) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// SupabaseAuthProvider wraps the hosted GoTrue auth service behind the
// Supabase client. The application never stores credentials itself.
type SupabaseAuthProvider struct {
	client *database.SupabaseClient
}

// NewSupabaseAuthProvider creates the auth wrapper.
func NewSupabaseAuthProvider(client *database.SupabaseClient) *SupabaseAuthProvider {
	return &SupabaseAuthProvider{client: client}
}

// SignIn exchanges email/password credentials for an access token.
func (p *SupabaseAuthProvider) SignIn(email, password string) (string, error) {
	resp, err := p.client.GetClient().Auth.SignInWithEmailPassword(email, password)
	if err != nil {
		return "", fmt.Errorf("sign-in failed: %w", err)
	}
	return resp.AccessToken, nil
}

// CurrentUser resolves the user behind an access token.
func (p *SupabaseAuthProvider) CurrentUser(accessToken string) (*AuthUser, error) {
	resp, err := p.client.GetClient().Auth.WithToken(accessToken).GetUser()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve current user: %w", err)
	}

	user := &AuthUser{
		ID:    resp.ID.String(),
		Email: resp.Email,
		Role:  resp.Role,
	}

	// The role may live in app_metadata instead of the top-level field
	// depending on how the project assigns it.
	if user.Role == "" || user.Role == "authenticated" {
		if role, ok := resp.AppMetadata["role"].(string); ok && role != "" {
			user.Role = role
		}
	}

	return user, nil
}

// SignOut revokes the session behind an access token.
func (p *SupabaseAuthProvider) SignOut(accessToken string) error {
	if err := p.client.GetClient().Auth.WithToken(accessToken).Logout(); err != nil {
		return fmt.Errorf("sign-out failed: %w", err)
	}
	return nil
}

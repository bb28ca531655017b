package backoffice

import (
	"context"
	"fmt"
)

// UsersService covers account administration (super admin only on the backend)
// and the signed-in user's self service: profile and password.
type UsersService struct {
	api     *Client
	session *SessionController
}

// NewUsersService builds the service. session may be nil when profile updates
// should not feed back into an active session (e.g. scripted administration).
func NewUsersService(api *Client, session *SessionController) *UsersService {
	return &UsersService{api: api, session: session}
}

// List returns every account.
func (s *UsersService) List(ctx context.Context) ([]User, error) {
	var users []User
	if err := s.api.Get(ctx, "/api/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Get returns one account by id.
func (s *UsersService) Get(ctx context.Context, id int) (*User, error) {
	var user User
	if err := s.api.Get(ctx, fmt.Sprintf("/api/users/%d", id), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Create provisions a new ordinary-administrator account.
func (s *UsersService) Create(ctx context.Context, req CreateUserRequest) (int, error) {
	if err := req.Validate(); err != nil {
		return 0, err
	}

	var resp struct {
		Message string `json:"message"`
		ID      int    `json:"id"`
	}
	if err := s.api.Post(ctx, "/api/users", req, &resp); err != nil {
		return 0, err
	}
	return resp.ID, nil
}

// Update modifies an account. Username and employee id changes are only
// honored by the backend for super administrators.
func (s *UsersService) Update(ctx context.Context, id int, req UpdateUserRequest) error {
	return s.api.Put(ctx, fmt.Sprintf("/api/users/%d", id), req, nil)
}

// Delete removes an account. The backend refuses self-deletion and super
// admin deletion.
func (s *UsersService) Delete(ctx context.Context, id int) error {
	return s.api.Delete(ctx, fmt.Sprintf("/api/users/%d", id), nil)
}

// UpdateProfile updates the signed-in user's own profile and merges the
// confirmed fields into the active session without a second round trip.
func (s *UsersService) UpdateProfile(ctx context.Context, req UpdateProfileRequest) (*Principal, error) {
	var updated Principal
	if err := s.api.Put(ctx, "/api/users/profile", req, &updated); err != nil {
		return nil, err
	}

	if s.session != nil {
		s.session.UpdatePrincipal(UpdateProfileRequest{
			RealName: updated.RealName,
			Gender:   updated.Gender,
			Age:      updated.Age,
		})
	}
	return &updated, nil
}

// ResetPassword sets a new password on another account (super admin only).
func (s *UsersService) ResetPassword(ctx context.Context, id int, newPassword string) error {
	body := map[string]string{"new_password": newPassword}
	return s.api.Post(ctx, fmt.Sprintf("/api/users/%d/reset-password", id), body, nil)
}

// ChangePassword changes the signed-in user's own password.
func (s *UsersService) ChangePassword(ctx context.Context, req ChangePasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.api.Post(ctx, "/api/auth/change-password", req, nil)
}

package users

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/kultura-platform/adminkit/gateway"
)

const (
	listPath = "/api/users/all"
	byIDPath = "/api/users/getById"
)

// Role is a backend role record. Older records carry the role name in
// "nom", newer ones in "role"/"type".
type Role struct {
	ID   int64  `json:"id"`
	Name string `json:"nom,omitempty"`
	Role string `json:"role,omitempty"`
	Type string `json:"type,omitempty"`
}

// Label returns the best available role name.
func (r Role) Label() string {
	if r.Role != "" {
		return r.Role
	}
	if r.Name != "" {
		return r.Name
	}
	return r.Type
}

// User is the normalized account record. The backend answers with either
// "id" or "idUser" and either a single "role" object or a "roles" array;
// UnmarshalJSON folds both shapes into this one.
type User struct {
	ID        int64  `json:"id"`
	LastName  string `json:"nom"`
	FirstName string `json:"prenom"`
	Email     string `json:"email"`
	Enabled   bool   `json:"enabled"`
	Roles     []Role `json:"roles,omitempty"`
}

type apiUser struct {
	ID      *int64 `json:"id"`
	IDUser  *int64 `json:"idUser"`
	Nom     string `json:"nom"`
	Prenom  string `json:"prenom"`
	Email   string `json:"email"`
	Enabled *bool  `json:"enabled"`
	Role    *Role  `json:"role"`
	Roles   []Role `json:"roles"`
}

// UnmarshalJSON normalizes either account spelling into the canonical User
// shape.
func (u *User) UnmarshalJSON(data []byte) error {
	var api apiUser
	if err := json.Unmarshal(data, &api); err != nil {
		return err
	}

	user := User{
		LastName:  api.Nom,
		FirstName: api.Prenom,
		Email:     api.Email,
		Roles:     api.Roles,
	}
	switch {
	case api.ID != nil && *api.ID != 0:
		user.ID = *api.ID
	case api.IDUser != nil:
		user.ID = *api.IDUser
	}
	if api.Enabled != nil {
		user.Enabled = *api.Enabled
	}
	if len(user.Roles) == 0 && api.Role != nil {
		user.Roles = []Role{*api.Role}
	}

	*u = user
	return nil
}

// CreateInput is the account-creation payload for the admin user screen.
type CreateInput struct {
	LastName  string `json:"nom"`
	FirstName string `json:"prenom"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      Ref    `json:"role"`
}

// UpdateInput is a partial account update; nil fields are left untouched.
type UpdateInput struct {
	LastName  *string `json:"nom,omitempty"`
	FirstName *string `json:"prenom,omitempty"`
	Email     *string `json:"email,omitempty"`
	Password  *string `json:"password,omitempty"`
	Role      *Ref    `json:"role,omitempty"`
}

// Ref references a role by ID in the backend's nested shape.
type Ref struct {
	ID int64 `json:"id"`
}

// Client exposes the user CRUD surface of the backend.
type Client struct {
	gw *gateway.Gateway
}

// NewClient creates a user client sharing the given gateway.
func NewClient(gw *gateway.Gateway) *Client {
	return &Client{gw: gw}
}

// List returns all accounts.
func (c *Client) List(ctx context.Context) ([]User, error) {
	var list []User
	if err := c.gw.Get(ctx, listPath, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// Get returns a single account by ID.
func (c *Client) Get(ctx context.Context, id int64) (User, error) {
	var user User
	if err := c.gw.Get(ctx, fmt.Sprintf("%s/%d", byIDPath, id), &user); err != nil {
		return User{}, err
	}
	return user, nil
}

// Create adds an account.
func (c *Client) Create(ctx context.Context, in CreateInput) (User, error) {
	var user User
	if err := c.gw.Post(ctx, listPath, in, &user); err != nil {
		return User{}, err
	}
	return user, nil
}

// Update applies a partial account update.
func (c *Client) Update(ctx context.Context, id int64, in UpdateInput) (User, error) {
	var user User
	if err := c.gw.Put(ctx, fmt.Sprintf("%s/%d", byIDPath, id), in, &user); err != nil {
		return User{}, err
	}
	return user, nil
}

// Delete removes an account.
func (c *Client) Delete(ctx context.Context, id int64) error {
	return c.gw.Delete(ctx, fmt.Sprintf("%s/%d", byIDPath, id))
}

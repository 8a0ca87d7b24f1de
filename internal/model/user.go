package model

// UserPrimitives is the plain-data shape of a user as it crosses the
// persistence and transport boundaries.
type UserPrimitives struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status bool   `json:"status"`
	Email  string `json:"email"`
}

// User is the validated aggregate: every field is a well-formed value
// object, enforced at construction. It holds no behavior beyond
// construction and projection; business logic lives in the services.
type User struct {
	id     Uuid
	name   Name
	status Bool
	email  Name
}

// NewUser assembles a User from already validated value objects.
func NewUser(id Uuid, name Name, status Bool, email Name) User {
	return User{id: id, name: name, status: status, email: email}
}

// UserFromPrimitives validates each field and assembles the aggregate.
// The first malformed field aborts construction.
func UserFromPrimitives(data UserPrimitives) (User, error) {
	id, err := NewUuid(data.ID)
	if err != nil {
		return User{}, err
	}
	name, err := NewName(data.Name)
	if err != nil {
		return User{}, err
	}
	status := NewBool(data.Status)
	email, err := NewName(data.Email)
	if err != nil {
		return User{}, err
	}
	return User{id: id, name: name, status: status, email: email}, nil
}

// Primitives projects the aggregate back to plain data. Total, never fails.
func (u User) Primitives() UserPrimitives {
	return UserPrimitives{
		ID:     u.id.Value(),
		Name:   u.name.Value(),
		Status: u.status.Value(),
		Email:  u.email.Value(),
	}
}

func (u User) ID() Uuid     { return u.id }
func (u User) Name() Name   { return u.name }
func (u User) Status() Bool { return u.status }
func (u User) Email() Name  { return u.email }

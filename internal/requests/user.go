package requests

type CreateUserRequest struct {
	Name      string  `json:"name" validate:"required"`
	Email     string  `json:"email" validate:"required,email"`
	Username  string  `json:"username" validate:"required,max=100"`
	FirstName string  `json:"first_name" validate:"required"`
	LastName  string  `json:"last_name" validate:"required"`
	Password  string  `json:"password" validate:"required,min=8"`
	Status    string  `json:"status" validate:"omitempty,oneof=active inactive suspended"`
	Address   *string `json:"address"`
	Country   *string `json:"country"`
	City      *string `json:"city"`
	State     *string `json:"state"`
}

// UpdateUserRequest carries a partial update: nil fields are left untouched.
type UpdateUserRequest struct {
	Name      *string `json:"name"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Username  *string `json:"username" validate:"omitempty,max=100"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Password  *string `json:"password" validate:"omitempty,min=8"`
	Status    *string `json:"status" validate:"omitempty,oneof=active inactive suspended"`
	Address   *string `json:"address"`
	Country   *string `json:"country"`
	City      *string `json:"city"`
	State     *string `json:"state"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

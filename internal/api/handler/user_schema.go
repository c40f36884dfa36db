package handler

// errorResponse documents the error envelope emitted by the central handler.
type errorResponse struct {
	Error string `json:"error"`
}

// createUserRequest is the mass-assignment allow-list for user creation.
// Anything outside these fields is dropped at bind time.
type createUserRequest struct {
	Email       string `json:"email"       validate:"required,email"`
	DNI         string `json:"dni"         validate:"required"`
	Name        string `json:"name"        validate:"required,max=255"`
	Surname     string `json:"surname"     validate:"required,max=255"`
	Age         int    `json:"age"         validate:"required,gte=18"`
	Picture     string `json:"picture"`
	Description string `json:"description"`
}

// updateUserRequest is the allow-list for updates. Pointer fields distinguish
// "absent" from "set to zero"; absent fields are left untouched.
type updateUserRequest struct {
	Name        *string `json:"name"        validate:"omitempty,max=255"`
	Surname     *string `json:"surname"     validate:"omitempty,max=255"`
	Email       *string `json:"email"       validate:"omitempty,email"`
	DNI         *string `json:"dni"`
	Age         *int    `json:"age"         validate:"omitempty,gte=18"`
	Picture     *string `json:"picture"`
	Description *string `json:"description"`
	Removed     *bool   `json:"removed"`
}

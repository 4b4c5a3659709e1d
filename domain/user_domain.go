package domain

var (
	MessageSuccessRegister = "user registered successfully"
	MessageSuccessLogin    = "login success"
	MessageFailedRegister  = "failed to register user"
	MessageFailedLogin     = "failed to login"
	MessageFailedGetUser   = "failed to get user"

	MessageUsernameNotValid  = "%s is not a valid username! Check for typos and try again."
	MessageNoUserWithID      = "No user with ID %s could be found."
	MessagePasswordRequired  = "You must set a password"
	MessagePasswordTooShort  = "Password is too short. Must be longer than 6 characters"
	MessageWelcomeMailFailed = "failed to send welcome mail"
)

type (
	UserRegisterRequest struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
		Email    string `json:"email" validate:"required,email"`
		Name     string `json:"name" validate:"required"`
	}

	UserLoginRequest struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	UserLoginResponse struct {
		Token string `json:"token"`
		Role  string `json:"role"`
	}

	UserResponse struct {
		ID       string   `json:"id"`
		Username string   `json:"username"`
		Roles    []string `json:"roles"`
	}
)

package api

type signupInput struct {
	FirstName string `json:"firstName" form:"first_name"`
	LastName  string `json:"lastName" form:"last_name"`
	Email     string `json:"email" form:"email"`
	Password  string `json:"password" form:"password"`
}

type verifyOTPInput struct {
	Email string `json:"email" form:"email"`
	Code  string `json:"code" form:"code"`
}

type loginInput struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type forgotPasswordInput struct {
	Email string `json:"email" form:"email"`
}

type resetPasswordInput struct {
	Email       string `json:"email" form:"email"`
	Code        string `json:"code" form:"code"`
	NewPassword string `json:"newPassword" form:"new_password"`
}

type deleteAccountInput struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type logoutInput struct {
	Token string `json:"token" form:"token"`
}

type federatedSignInInput struct {
	AssertionToken string `json:"assertionToken" form:"assertion_token"`
}

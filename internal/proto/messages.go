// Package proto describes the gophauth.v1.AuthService wire contract: request
// and response messages, the service descriptor, a client and the JSON codec
// the service is spoken with.
package proto

const (
	ServiceName = "gophauth.v1.AuthService"

	AuthService_Authenticate_FullMethodName    = "/gophauth.v1.AuthService/Authenticate"
	AuthService_Deauthenticate_FullMethodName  = "/gophauth.v1.AuthService/Deauthenticate"
	AuthService_Register_FullMethodName        = "/gophauth.v1.AuthService/Register"
	AuthService_GetUserRole_FullMethodName     = "/gophauth.v1.AuthService/GetUserRole"
	AuthService_SetUserRole_FullMethodName     = "/gophauth.v1.AuthService/SetUserRole"
	AuthService_SetUserBanned_FullMethodName   = "/gophauth.v1.AuthService/SetUserBanned"
	AuthService_SetUserVerified_FullMethodName = "/gophauth.v1.AuthService/SetUserVerified"
	AuthService_SetEmailToken_FullMethodName   = "/gophauth.v1.AuthService/SetEmailToken"
	AuthService_Ping_FullMethodName            = "/gophauth.v1.AuthService/Ping"
)

type AuthRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token string `json:"token"`
}

type TokenRequest struct {
	Token string `json:"token"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

type RegisterResponse struct {
	Id       int64  `json:"id"`
	Username string `json:"username"`
}

type RoleResponse struct {
	Role string `json:"role"`
}

type SetUserRoleRequest struct {
	UserId int64  `json:"user_id"`
	Role   string `json:"role"`
}

type SetUserBannedRequest struct {
	UserId int64 `json:"user_id"`
	Banned bool  `json:"banned"`
}

type SetUserVerifiedRequest struct {
	UserId   int64 `json:"user_id"`
	Verified bool  `json:"verified"`
}

// SetEmailTokenRequest clears the token when EmailToken is null.
type SetEmailTokenRequest struct {
	UserId     int64   `json:"user_id"`
	EmailToken *string `json:"email_token"`
}

type PingRequest struct{}

type PingResponse struct {
	Status string `json:"status"`
}

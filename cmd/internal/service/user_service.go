package service

import (
	"doctorsportal/cmd/internal/domain/entity"
	"doctorsportal/cmd/internal/utils"
	"doctorsportal/cmd/internal/utils/apierror"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type UserRepository interface {
	FindByEmail(email string) (*entity.User, error)
	FindAll() ([]*entity.User, error)
	Upsert(user *entity.User) error
	SetRole(email, role string) (int64, error)
}

// TokenIssuer signs access credentials for known users.
type TokenIssuer interface {
	Issue(email string) (string, error)
}

type CreateUserRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"required,min=2,max=80"`
}

type UserResponse struct {
	Email     string `json:"email"`
	Name      string `json:"name"`
	Role      string `json:"role,omitempty"`
	CreatedAt string `json:"createdAt"`
}

type TokenResponse struct {
	AccessToken string `json:"accessToken"`
}

type DefaultUserService struct {
	UserRepo UserRepository
	Validate *validator.Validate
	Tokens   TokenIssuer
}

func NewUserService(userRepo UserRepository, validate *validator.Validate, tokens TokenIssuer) *DefaultUserService {
	return &DefaultUserService{UserRepo: userRepo, Validate: validate, Tokens: tokens}
}

// CreateUser records a signup. Signups are idempotent per email: a
// repeated one refreshes the name and leaves any granted role alone.
func (u *DefaultUserService) CreateUser(req *CreateUserRequest) (*UserResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := u.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	now := utils.NowUTC()
	user := &entity.User{
		Email:     req.Email,
		Name:      req.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := u.UserRepo.Upsert(user); err != nil {
		log.Errorf("failed to create user %s: %v", req.Email, err)
		return nil, apierror.InternalServerError
	}
	return toUserResponse(user), nil
}

func (u *DefaultUserService) GetUsers() ([]*UserResponse, apierror.ErrorResponse) {
	users, err := u.UserRepo.FindAll()
	if err != nil {
		log.Errorf("failed to fetch all users: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*UserResponse, len(users))
	for i, user := range users {
		resp[i] = toUserResponse(user)
	}
	return resp, nil
}

// IsAdmin reports whether the user holds the administrative role. An
// unknown email is simply not an admin.
func (u *DefaultUserService) IsAdmin(email string) (bool, apierror.ErrorResponse) {
	user, err := u.UserRepo.FindByEmail(email)
	if err != nil {
		log.Errorf("failed to check admin role for %s: %v", email, err)
		return false, apierror.InternalServerError
	}
	return user != nil && user.IsAdmin(), nil
}

// GrantAdmin promotes an existing user. Unknown users are a 404 rather
// than an implicit insert of a half-shaped record.
func (u *DefaultUserService) GrantAdmin(email string) apierror.ErrorResponse {
	rows, err := u.UserRepo.SetRole(email, entity.RoleAdmin)
	if err != nil {
		log.Errorf("failed to grant admin to %s: %v", email, err)
		return apierror.InternalServerError
	}
	if rows == 0 {
		return apierror.NewNotFound("no user with that email")
	}
	return nil
}

// IssueToken signs a credential for an email that already exists as a
// user record; anyone else is refused.
func (u *DefaultUserService) IssueToken(email string) (*TokenResponse, apierror.ErrorResponse) {
	user, err := u.UserRepo.FindByEmail(email)
	if err != nil {
		log.Errorf("failed to fetch user %s: %v", email, err)
		return nil, apierror.InternalServerError
	}
	if user == nil {
		return nil, apierror.NewForbidden("unknown user")
	}

	token, err := u.Tokens.Issue(user.Email)
	if err != nil {
		log.Errorf("failed to issue token for %s: %v", email, err)
		return nil, apierror.InternalServerError
	}
	return &TokenResponse{AccessToken: token}, nil
}

func toUserResponse(user *entity.User) *UserResponse {
	return &UserResponse{
		Email:     user.Email,
		Name:      user.Name,
		Role:      user.Role,
		CreatedAt: utils.FormatEpoch(user.CreatedAt),
	}
}

package routes

import (
	"net/http"
	"strings"

	"doctorsportal/cmd/internal/service"
	"doctorsportal/cmd/internal/utils/apierror"
	"github.com/labstack/echo/v4"
)

type UserService interface {
	CreateUser(req *service.CreateUserRequest) (*service.UserResponse, apierror.ErrorResponse)
	GetUsers() ([]*service.UserResponse, apierror.ErrorResponse)
	IsAdmin(email string) (bool, apierror.ErrorResponse)
	GrantAdmin(email string) apierror.ErrorResponse
	IssueToken(email string) (*service.TokenResponse, apierror.ErrorResponse)
}

type DefaultUserRoute struct {
	UserService UserService
}

func NewUserDefault(userService UserService) *DefaultUserRoute {
	return &DefaultUserRoute{UserService: userService}
}

func (u *DefaultUserRoute) CreateUser(c echo.Context) error {
	var req service.CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	user, apierr := u.UserService.CreateUser(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, user)
}

func (u *DefaultUserRoute) GetUsers(c echo.Context) error {
	users, apierr := u.UserService.GetUsers()
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"users": users}
	return c.JSON(http.StatusOK, &resp)
}

func (u *DefaultUserRoute) GetAdminStatus(c echo.Context) error {
	email := strings.TrimSpace(c.Param("email"))
	if email == "" {
		apierr := apierror.NewMissingParamError("email")
		return c.JSON(apierr.Code(), apierr)
	}

	isAdmin, apierr := u.UserService.IsAdmin(email)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"isAdmin": isAdmin}
	return c.JSON(http.StatusOK, &resp)
}

// GrantAdmin promotes the user the :id path segment names by email.
func (u *DefaultUserRoute) GrantAdmin(c echo.Context) error {
	email := strings.TrimSpace(c.Param("id"))
	if email == "" {
		apierr := apierror.NewMissingParamError("id")
		return c.JSON(apierr.Code(), apierr)
	}

	if apierr := u.UserService.GrantAdmin(email); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusNoContent)
}

func (u *DefaultUserRoute) IssueToken(c echo.Context) error {
	email := strings.TrimSpace(c.QueryParam("email"))
	if email == "" {
		apierr := apierror.NewMissingParamError("email")
		return c.JSON(apierr.Code(), apierr)
	}

	token, apierr := u.UserService.IssueToken(email)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, token)
}

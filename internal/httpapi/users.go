package httpapi

import (
	"net/http"
	"strings"
	"time"

	"taza-be/internal/address"
	"taza-be/internal/auth"
	"taza-be/internal/user"
	"taza-be/internal/utils"

	"github.com/gin-gonic/gin"
)

type addressReq struct {
	Label        string   `json:"label"`
	ReceiverName string   `json:"receiverName"`
	Phone        string   `json:"phone"`
	AddressLine1 string   `json:"addressLine1"`
	AddressLine2 *string  `json:"addressLine2"`
	Landmark     *string  `json:"landmark"`
	City         string   `json:"city"`
	State        string   `json:"state"`
	PostalCode   string   `json:"postalCode"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
	IsDefault    bool     `json:"isDefault"`
}

func (r addressReq) input() address.CreateAddressInput {
	return address.CreateAddressInput{
		Label:        r.Label,
		ReceiverName: r.ReceiverName,
		Phone:        r.Phone,
		AddressLine1: r.AddressLine1,
		AddressLine2: r.AddressLine2,
		Landmark:     r.Landmark,
		City:         r.City,
		State:        r.State,
		PostalCode:   r.PostalCode,
		Latitude:     r.Latitude,
		Longitude:    r.Longitude,
		SetAsDefault: r.IsDefault,
	}
}

type signUpReq struct {
	Name     string      `json:"name"`
	Phone    string      `json:"phone"`
	Email    *string     `json:"email"`
	Password string      `json:"password"`
	Gender   *string     `json:"gender"`
	Address  *addressReq `json:"address"`
}

type signInReq struct {
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) setTokenCookie(c *gin.Context, token string, expires time.Time) {
	maxAge := int(time.Until(expires).Seconds())
	if token == "" {
		maxAge = -1
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(auth.AccessTokenCookie, token, maxAge, "/", "", s.secureCookies, true)
}

func (s *Server) signUp(c *gin.Context) {
	var req signUpReq
	if !bind(c, &req) {
		return
	}

	in := user.SignUpInput{
		Name:      req.Name,
		Phone:     req.Phone,
		Email:     req.Email,
		Password:  req.Password,
		Gender:    req.Gender,
		UserAgent: c.Request.UserAgent(),
		IPAddress: c.ClientIP(),
	}
	if req.Address != nil {
		addr := req.Address.input()
		addr.SetAsDefault = true
		in.Address = &addr
	}

	res, err := s.svc.Users.SignUp(c.Request.Context(), in)
	if err != nil {
		fail(c, err)
		return
	}
	s.setTokenCookie(c, res.Token, res.ExpiresAt)
	ok(c, http.StatusCreated, user.ToAuthResponse(res))
}

func (s *Server) signIn(c *gin.Context) {
	var req signInReq
	if !bind(c, &req) {
		return
	}

	res, err := s.svc.Users.SignIn(c.Request.Context(), user.SignInInput{
		Phone:     req.Phone,
		Email:     req.Email,
		Password:  req.Password,
		UserAgent: c.Request.UserAgent(),
		IPAddress: c.ClientIP(),
	})
	if err != nil {
		fail(c, err)
		return
	}
	s.setTokenCookie(c, res.Token, res.ExpiresAt)
	ok(c, http.StatusOK, user.ToAuthResponse(res))
}

func (s *Server) signOut(c *gin.Context) {
	ctx := c.Request.Context()
	if err := s.svc.Users.SignOut(ctx, currentUser(c), utils.GetSessionIDFromContext(ctx)); err != nil {
		fail(c, err)
		return
	}
	s.setTokenCookie(c, "", time.Time{})
	noContent(c)
}

func (s *Server) me(c *gin.Context) {
	u, err := s.svc.Users.Me(c.Request.Context(), currentUser(c))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, user.ToUserResponse(u))
}

func (s *Server) getProfile(c *gin.Context) {
	p, err := s.svc.Users.GetProfile(c.Request.Context(), currentUser(c))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, user.ToProfileResponse(p))
}

type updateProfileReq struct {
	FullName    *string `json:"fullName"`
	AvatarURL   *string `json:"avatarUrl"`
	Phone       *string `json:"phone"`
	Email       *string `json:"email"`
	DateOfBirth *string `json:"dateOfBirth"`
}

// parseDate accepts a calendar date or a full RFC 3339 timestamp.
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

func (s *Server) updateProfile(c *gin.Context) {
	var req updateProfileReq
	if !bind(c, &req) {
		return
	}

	params := user.UpdateProfileParams{
		UserID:    currentUser(c),
		FullName:  req.FullName,
		AvatarURL: req.AvatarURL,
		Phone:     req.Phone,
		Email:     req.Email,
	}
	if req.DateOfBirth != nil {
		dob, err := parseDate(*req.DateOfBirth)
		if err != nil {
			fail(c, ErrInvalidBody)
			return
		}
		params.DateOfBirth = &dob
	}

	p, err := s.svc.Users.UpdateProfile(c.Request.Context(), params)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, user.ToProfileResponse(p))
}

func (s *Server) listAddresses(c *gin.Context) {
	list, err := s.svc.Addresses.List(c.Request.Context(), currentUser(c))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, address.ToResponses(list))
}

func (s *Server) getAddress(c *gin.Context) {
	id, valid := pathUUID(c)
	if !valid {
		return
	}
	a, err := s.svc.Addresses.Get(c.Request.Context(), currentUser(c), id)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, address.ToResponse(a))
}

func (s *Server) createAddress(c *gin.Context) {
	var req addressReq
	if !bind(c, &req) {
		return
	}
	a, err := s.svc.Addresses.Create(c.Request.Context(), currentUser(c), req.input())
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusCreated, address.ToResponse(a))
}

type updateAddressReq struct {
	Label        *string  `json:"label"`
	ReceiverName *string  `json:"receiverName"`
	Phone        *string  `json:"phone"`
	AddressLine1 *string  `json:"addressLine1"`
	AddressLine2 *string  `json:"addressLine2"`
	Landmark     *string  `json:"landmark"`
	City         *string  `json:"city"`
	State        *string  `json:"state"`
	PostalCode   *string  `json:"postalCode"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
}

func (s *Server) updateAddress(c *gin.Context) {
	id, valid := pathUUID(c)
	if !valid {
		return
	}
	var req updateAddressReq
	if !bind(c, &req) {
		return
	}

	a, err := s.svc.Addresses.Update(c.Request.Context(), currentUser(c), id, address.UpdateAddressInput(req))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, address.ToResponse(a))
}

func (s *Server) deleteAddress(c *gin.Context) {
	id, valid := pathUUID(c)
	if !valid {
		return
	}
	if err := s.svc.Addresses.Delete(c.Request.Context(), currentUser(c), id); err != nil {
		fail(c, err)
		return
	}
	noContent(c)
}

func (s *Server) setDefaultAddress(c *gin.Context) {
	id, valid := pathUUID(c)
	if !valid {
		return
	}
	if err := s.svc.Addresses.SetDefaultAddress(c.Request.Context(), currentUser(c), id); err != nil {
		fail(c, err)
		return
	}
	noContent(c)
}

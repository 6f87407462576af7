package api

import (
	"encoding/json"
	"net/http"
	"strings"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type userResponse struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

type messageResponse struct {
	Message string `json:"message"`
}

const maxBodyBytes = 1 << 16

func decodeCredentials(r *http.Request) (credentialsRequest, error) {
	var req credentialsRequest
	if err := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		return req, invalidInput("Invalid JSON body")
	}
	return req, nil
}

func (s *Server) register(r *http.Request) (any, error) {
	req, err := decodeCredentials(r)
	if err != nil {
		return nil, err
	}
	u, err := s.deps.Accounts.Register(r.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		return nil, err
	}
	s.log.Info("user registered", "email", u.Email)
	return messageResponse{Message: "User registered successfully"}, nil
}

func (s *Server) login(r *http.Request) (any, error) {
	req, err := decodeCredentials(r)
	if err != nil {
		return nil, err
	}
	token, u, err := s.deps.Accounts.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		return nil, err
	}
	return loginResponse{
		Token: token,
		User:  userResponse{Email: u.Email, Name: u.Name},
	}, nil
}

// me returns the identity carried by the bearer token.
func (s *Server) me(r *http.Request) (any, error) {
	token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !ok || strings.TrimSpace(token) == "" {
		return nil, &Error{Status: http.StatusUnauthorized, Code: CodeUnauthorized, Message: "Missing bearer token"}
	}
	claims, err := s.deps.Accounts.Verify(strings.TrimSpace(token))
	if err != nil {
		return nil, err
	}
	return userResponse{Email: claims.Email, Name: claims.Name}, nil
}

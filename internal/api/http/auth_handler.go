package http

import (
	"net/http"

	"hostelhub-backend/internal/domain"
	"hostelhub-backend/internal/service"
)

// AuthHandler serves signup submission and the login/logout endpoints.
type AuthHandler struct {
	signupSvc service.SignupService
	authSvc   service.AuthService
}

func NewAuthHandler(signupSvc service.SignupService, authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{
		signupSvc: signupSvc,
		authSvc:   authSvc,
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string             `json:"token"`
	SessionID string             `json:"session_id"`
	Kind      domain.SessionKind `json:"kind"`
	SubjectID string             `json:"subject_id,omitempty"`
	Username  string             `json:"username"`
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req service.SignupRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	id, err := h.signupSvc.SubmitSignup(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusAccepted, map[string]string{
		"signup_id": id,
		"status":    "pending approval",
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	sess, err := h.authSvc.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, sessionResponse(sess))
}

func (h *AuthHandler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	sess, err := h.authSvc.AdminLogin(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, sessionResponse(sess))
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	id, ok := IdentityFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "not authenticated"})
		return
	}

	if err := h.authSvc.Logout(r.Context(), id.SessionID); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "logged out"})
}

func sessionResponse(sess *domain.Session) loginResponse {
	return loginResponse{
		Token:     sess.Token,
		SessionID: sess.ID,
		Kind:      sess.Kind,
		SubjectID: sess.SubjectID,
		Username:  sess.Username,
	}
}

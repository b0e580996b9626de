package v1

import (
	"net/http"

	"storefront-gateway/internal/domain"
	"storefront-gateway/internal/usecase"
	"storefront-gateway/pkg/utils"

	"github.com/goccy/go-json"
)

type AuthHandler struct {
	session *usecase.AuthSession
}

func NewAuthHandler(session *usecase.AuthSession) *AuthHandler {
	return &AuthHandler{session: session}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var in domain.LoginInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if in.Email == "" || in.Password == "" {
		utils.WriteError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	customer, err := h.session.Login(r.Context(), in)
	if err != nil {
		writeUpstreamError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, customer)
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var in domain.RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if in.Email == "" || in.Password == "" {
		utils.WriteError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	customer, err := h.session.Register(r.Context(), in)
	if err != nil {
		writeUpstreamError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, customer)
}

type sessionView struct {
	Customer *domain.Customer `json:"customer"`
	Loading  bool             `json:"loading"`
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	customer := h.session.Current()
	if customer == nil {
		utils.WriteError(w, http.StatusUnauthorized, "Not logged in")
		return
	}
	utils.WriteJSON(w, http.StatusOK, sessionView{
		Customer: customer,
		Loading:  h.session.Loading(),
	})
}

type adoptTokenRequest struct {
	Token string `json:"token"`
}

// AdoptToken accepts a token obtained out of band, for example from a
// browser session, and makes it the gateway's active identity.
func (h *AuthHandler) AdoptToken(w http.ResponseWriter, r *http.Request) {
	var req adoptTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if req.Token == "" {
		utils.WriteError(w, http.StatusBadRequest, "Token is required")
		return
	}

	customer, err := h.session.AdoptToken(r.Context(), req.Token)
	if err != nil {
		utils.WriteError(w, http.StatusUnauthorized, "Token is expired or malformed")
		return
	}
	utils.WriteJSON(w, http.StatusOK, customer)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.session.Logout(r.Context())
	utils.WriteJSON(w, http.StatusOK, map[string]string{"message": "Logged out"})
}

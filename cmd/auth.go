package main

import (
	"encoding/json"
	"net/http"
	"time"

	"garageFront/internal/models"
	"garageFront/utils"
)

// CreateSessionHandler mints a refresh session for an already-authenticated
// subscriber. The access token alone expires quickly; the returned
// "<id>.<secret>" refresh token lets the auth middleware reissue access
// tokens against the stored session.
func (app *application) CreateSessionHandler(w http.ResponseWriter, r *http.Request) {
	subscriberID, _ := r.Context().Value("subscriber_id").(int)
	businessID, _ := r.Context().Value("business_id").(int)
	role, _ := r.Context().Value("role").(string)
	if subscriberID == 0 {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	refreshToken, sessionID, hash, err := app.tokenManager.NewRefreshToken()
	if err != nil {
		app.serverError(w, err)
		return
	}

	session := models.Session{
		SubscriberID: subscriberID,
		BusinessID:   businessID,
		Role:         role,
		RefreshHash:  hash,
		ExpiresAt:    time.Now().Add(time.Duration(app.cfg.Auth.RefreshTTLHours) * time.Hour),
	}
	if err := app.sessionRepo.CreateSession(r.Context(), sessionID, session); err != nil {
		app.serverError(w, err)
		return
	}

	accessToken, err := app.generateAccessToken(subscriberID, businessID, role)
	if err != nil {
		app.serverError(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(models.Tokens{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	})
}

// DeleteSessionHandler revokes the presented refresh session (logout).
func (app *application) DeleteSessionHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.RefreshToken == "" {
		app.clientError(w, http.StatusBadRequest)
		return
	}
	sessionID, _, ok := utils.SplitRefreshToken(req.RefreshToken)
	if !ok {
		app.clientError(w, http.StatusBadRequest)
		return
	}
	if err := app.sessionRepo.DeleteSession(r.Context(), sessionID); err != nil {
		app.serverError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

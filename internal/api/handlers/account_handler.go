// filepath: internal/api/handlers/account_handler.go
package handlers

import (
	"encoding/json"
	"net/http"

	"daylog/internal/models"
)

// @Summary Change password
// @Description Change the caller's password. Requires the current password and a matching confirmation.
// @Tags Account
// @Accept  json
// @Param   passwords  body  models.ChangePasswordRequest  true  "Current and new password"
// @Success 204 "Password changed"
// @Failure 409 {object} ErrorResponse "Wrong current password or confirmation mismatch"
// @Failure 422 {object} ErrorResponse "Validation failed"
// @Security BearerAuth
// @Router /account [put]
func (h *Handlers) ChangePassword(w http.ResponseWriter, r *http.Request) {
	ident, ok := identity(w, r)
	if !ok {
		return
	}
	var req models.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}
	if err := h.User.ChangePassword(ident.ID, req.CurrentPassword, req.NewPassword, req.ConfirmPassword); err != nil {
		respondWithServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// @Summary Delete all own data
// @Description Wipe every day, effect, bug and suggestion the caller owns. The account itself is kept.
// @Tags Account
// @Success 204 "Data deleted"
// @Security BearerAuth
// @Router /account/data [delete]
func (h *Handlers) DeleteAccountData(w http.ResponseWriter, r *http.Request) {
	ident, ok := identity(w, r)
	if !ok {
		return
	}
	if err := h.User.DeleteUserData(ident.ID); err != nil {
		respondWithServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

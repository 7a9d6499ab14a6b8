package handlers

import (
	"fmt"
	"net/http"

	"rollout-config/src/models"
	"rollout-config/src/services"

	"github.com/labstack/echo/v4"
)

// WhitelistHandler handles HTTP requests for IP whitelist entries
type WhitelistHandler struct {
	whitelistService *services.WhitelistService
}

// NewWhitelistHandler creates a new whitelist handler
func NewWhitelistHandler(whitelistService *services.WhitelistService) *WhitelistHandler {
	return &WhitelistHandler{
		whitelistService: whitelistService,
	}
}

// ListWhitelist handles GET /whitelist
//
//	@Summary		List whitelist entries
//	@Tags			whitelist
//	@Produce		json
//	@Param			keys	query		string	false	"Comma separated keys; all keys when omitted"
//	@Success		200		{object}	models.Response
//	@Router			/whitelist [get]
func (wh *WhitelistHandler) ListWhitelist(c echo.Context) error {
	keys := services.ParseKeys(c.QueryParam("keys"))

	entries, err := wh.whitelistService.List(c.Request().Context(), keys...)
	if err != nil {
		return handleError(c, err)
	}

	return respond(c, http.StatusOK, entries)
}

// PutWhitelist handles POST /whitelist
//
//	@Summary		Create or update a whitelist entry
//	@Description	Without a key a new entry is stored under a generated key; with a key that entry is overwritten. Fields may be sent at the top level or nested under value. At least one of ipv4 and ipv6 is required.
//	@Tags			whitelist
//	@Accept			json
//	@Produce		json
//	@Param			body	body		models.WhitelistWriteRequest	true	"Whitelist entry"
//	@Success		200		{object}	models.Response
//	@Failure		400		{object}	models.Response
//	@Failure		500		{object}	models.Response
//	@Router			/whitelist [post]
//
//	@Example request
//	{
//	  "ipv4": "10.0.0.1",
//	  "comment": "office"
//	}
//	@Example response 200
//	{
//	  "status": 200,
//	  "message": {
//	    "message": "Stored new whitelist entry",
//	    "stored": {"key": "3f1c...", "value": {"ipv4": "10.0.0.1", "ipv6": "", "comment": "office"}}
//	  }
//	}
func (wh *WhitelistHandler) PutWhitelist(c echo.Context) error {
	var req models.WhitelistWriteRequest

	if err := decodeBody(c, &req); err != nil {
		return invalidBody(c, err)
	}

	stored, updated, err := wh.whitelistService.Put(c.Request().Context(), req)
	if err != nil {
		return handleError(c, err)
	}

	message := "Stored new whitelist entry"
	if updated {
		message = "Updated whitelist entry"
	}

	return respond(c, http.StatusOK, models.WriteResult{
		Message: message,
		Stored:  stored,
	})
}

// DeleteWhitelist handles DELETE /whitelist
//
//	@Summary		Delete a whitelist entry
//	@Description	Deletes the entry unconditionally; deleting a missing key succeeds.
//	@Tags			whitelist
//	@Accept			json
//	@Produce		json
//	@Param			body	body		models.WhitelistDeleteRequest	true	"Key to delete"
//	@Success		200		{object}	models.Response
//	@Failure		400		{object}	models.Response
//	@Router			/whitelist [delete]
func (wh *WhitelistHandler) DeleteWhitelist(c echo.Context) error {
	var req models.WhitelistDeleteRequest

	if err := decodeBody(c, &req); err != nil {
		return invalidBody(c, err)
	}

	if err := wh.whitelistService.Delete(c.Request().Context(), req.Key); err != nil {
		return handleError(c, err)
	}

	return respond(c, http.StatusOK, models.DeleteResult{
		Message: fmt.Sprintf("Deleted whitelist entry %q", req.Key),
	})
}

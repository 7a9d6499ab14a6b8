package handlers

import (
	"fmt"
	"net/http"

	"rollout-config/src/models"
	"rollout-config/src/services"

	"github.com/labstack/echo/v4"
)

// RolloutHandler handles HTTP requests for feature-rollout records
type RolloutHandler struct {
	rolloutService *services.RolloutService
}

// NewRolloutHandler creates a new rollout handler
func NewRolloutHandler(rolloutService *services.RolloutService) *RolloutHandler {
	return &RolloutHandler{
		rolloutService: rolloutService,
	}
}

// ListRollouts handles GET /rollouts
//
//	@Summary		List rollout records
//	@Description	Returns a mapping from key to stored value. Values that are not valid JSON are reported as "Invalid JSON"; requested keys that do not exist as null.
//	@Tags			rollouts
//	@Produce		json
//	@Param			keys	query		string	false	"Comma separated keys; all keys when omitted"
//	@Success		200		{object}	models.Response
//	@Router			/rollouts [get]
//
//	@Example response 200
//	{
//	  "status": 200,
//	  "message": {"exp1": {"rollout": 0.25, "comment": "trial"}}
//	}
func (rh *RolloutHandler) ListRollouts(c echo.Context) error {
	keys := services.ParseKeys(c.QueryParam("keys"))

	entries, err := rh.rolloutService.List(c.Request().Context(), keys...)
	if err != nil {
		return handleError(c, err)
	}

	return respond(c, http.StatusOK, entries)
}

// PutRollout handles POST /rollouts
//
//	@Summary		Store a rollout record
//	@Description	Validates that value carries rollout and comment, overwrites the key and returns the value read back from the store.
//	@Tags			rollouts
//	@Accept			json
//	@Produce		json
//	@Param			body	body		models.RolloutWriteRequest	true	"Rollout record"
//	@Success		200		{object}	models.Response
//	@Failure		400		{object}	models.Response
//	@Failure		500		{object}	models.Response
//	@Router			/rollouts [post]
//
//	@Example request
//	{
//	  "key": "exp1",
//	  "value": {"rollout": 0.25, "comment": "trial"}
//	}
func (rh *RolloutHandler) PutRollout(c echo.Context) error {
	var req models.RolloutWriteRequest

	if err := decodeBody(c, &req); err != nil {
		return invalidBody(c, err)
	}

	stored, err := rh.rolloutService.Put(c.Request().Context(), req.Key, req.Value)
	if err != nil {
		return handleError(c, err)
	}

	return respond(c, http.StatusOK, models.WriteResult{
		Message: fmt.Sprintf("Stored key %q with value", stored.Key),
		Stored:  stored,
	})
}

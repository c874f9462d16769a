package httpapi

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/treechess/backend/internal/chessgame"
	"github.com/treechess/backend/internal/store"
)

type gameHandler struct {
	games *store.GameStore
}

type createGameRequest struct {
	Name string `json:"name"`
	FEN  string `json:"fen"`
}

// create makes a new, empty game (optionally from a custom FEN) and
// persists it immediately so the client gets back a real id to mutate.
// POST /api/games
func (h *gameHandler) create(c echo.Context) error {
	userID := c.Get("userID").(string)

	var req createGameRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	name := req.Name
	if name == "" {
		name = "Untitled game"
	}

	var g *chessgame.Game
	var err error
	if req.FEN != "" {
		g, err = chessgame.NewGameFromFEN(req.FEN)
		if err != nil {
			return badRequest(c, "invalid FEN: "+err.Error())
		}
	} else {
		g = chessgame.NewGame()
	}

	rec, err := h.games.Create(userID, name, g)
	if err != nil {
		return internalError(c, "failed to create game")
	}
	return c.JSON(http.StatusCreated, toView(*rec, g))
}

// list returns every game owned by the caller.
// GET /api/games
func (h *gameHandler) list(c echo.Context) error {
	userID := c.Get("userID").(string)

	recs, err := h.games.List(userID)
	if err != nil {
		return internalError(c, "failed to list games")
	}

	summaries := make([]gameSummary, 0, len(recs))
	for _, rec := range recs {
		summaries = append(summaries, toSummary(rec))
	}
	return c.JSON(http.StatusOK, summaries)
}

// get loads one game in full.
// GET /api/games/:id
func (h *gameHandler) get(c echo.Context) error {
	userID := c.Get("userID").(string)
	id, ok := validateUUIDParam(c, "id")
	if !ok {
		return nil
	}

	rec, g, err := h.games.Get(userID, id)
	if err != nil {
		return gameStoreError(c, err)
	}
	return c.JSON(http.StatusOK, toView(*rec, g))
}

type renameRequest struct {
	Name string `json:"name"`
}

// rename updates a game's display name without touching its tree.
// PATCH /api/games/:id
func (h *gameHandler) rename(c echo.Context) error {
	userID := c.Get("userID").(string)
	id, ok := validateUUIDParam(c, "id")
	if !ok {
		return nil
	}

	var req renameRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if !requireField(c, "name", req.Name) {
		return nil
	}

	_, g, err := h.games.Get(userID, id)
	if err != nil {
		return gameStoreError(c, err)
	}
	rec, err := h.games.Update(userID, id, req.Name, g)
	if err != nil {
		return gameStoreError(c, err)
	}
	return c.JSON(http.StatusOK, toView(*rec, g))
}

// delete removes a game.
// DELETE /api/games/:id
func (h *gameHandler) delete(c echo.Context) error {
	userID := c.Get("userID").(string)
	id, ok := validateUUIDParam(c, "id")
	if !ok {
		return nil
	}

	if err := h.games.Delete(userID, id); err != nil {
		return gameStoreError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func gameStoreError(c echo.Context, err error) error {
	if errors.Is(err, store.ErrGameNotFound) {
		return notFound(c, "game")
	}
	return internalError(c, "failed to load game")
}

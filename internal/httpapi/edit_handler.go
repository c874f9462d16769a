package httpapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/treechess/backend/internal/chessgame"
)

// editHandler wraps every mutating operation on a loaded game: position the
// cursor at the request's "at" node where the request carries one, apply a
// chessgame.Game mutator, save the resulting snapshot, and respond with the
// updated game view. Most handlers treat a nil *chessgame.MutationResult
// (the core's own signal per spec.md §9) as failure; annotate and setTag
// save and respond whatever their mutators return.
type editHandler struct {
	games *gameHandler
}

type moveRequest struct {
	At         int32  `json:"at"`
	SAN        string `json:"san"`
	Variation  bool   `json:"variation"`
	Comment    string `json:"comment"`
	Nags       []int  `json:"nags"`
}

// addMove plays san off node "at" (the cursor is repositioned there first),
// either as the mainline continuation or as a new variation.
// POST /api/games/:id/moves
func (h *editHandler) addMove(c echo.Context) error {
	return h.mutate(c, func(g *chessgame.Game) (any, bool) {
		var req moveRequest
		if err := c.Bind(&req); err != nil {
			badRequest(c, "invalid request body")
			return nil, false
		}
		if !requireField(c, "san", req.SAN) {
			return nil, false
		}
		if !g.MoveToId(chessgame.NodeID(req.At)) {
			badRequest(c, "unknown node id")
			return nil, false
		}

		var id chessgame.NodeID
		var res *chessgame.MutationResult
		if req.Variation {
			id, res = g.AddVariationSAN(req.SAN, req.Comment, req.Nags)
		} else {
			id, res = g.AddMoveSAN(req.SAN, req.Comment, req.Nags)
		}
		if res == nil {
			badRequest(c, "illegal move")
			return nil, false
		}
		return map[string]any{"nodeId": int32(id)}, true
	})
}

type nodeRequest struct {
	NodeID int32 `json:"nodeId"`
}

// promote swaps a variation with its parent's mainline continuation.
// POST /api/games/:id/promote
func (h *editHandler) promote(c echo.Context) error {
	return h.mutate(c, func(g *chessgame.Game) (any, bool) {
		var req nodeRequest
		if err := c.Bind(&req); err != nil {
			badRequest(c, "invalid request body")
			return nil, false
		}
		res := g.PromoteVariation(chessgame.NodeID(req.NodeID))
		if res == nil {
			badRequest(c, "cannot promote: already mainline or not found")
			return nil, false
		}
		return nil, true
	})
}

// removeVariation tombstones a variation and its subtree.
// DELETE /api/games/:id/variations/:nodeId
func (h *editHandler) removeVariation(c echo.Context) error {
	return h.mutate(c, func(g *chessgame.Game) (any, bool) {
		nodeID, ok := parseNodeIDParam(c)
		if !ok {
			return nil, false
		}
		res := g.RemoveVariation(nodeID)
		if res == nil {
			badRequest(c, "cannot remove: mainline node or not found")
			return nil, false
		}
		return nil, true
	})
}

type truncateRequest struct {
	At    int32  `json:"at"`
	Point string `json:"point"`
}

// truncate cuts the tree either after or before the cursor's move.
// POST /api/games/:id/truncate
func (h *editHandler) truncate(c echo.Context) error {
	return h.mutate(c, func(g *chessgame.Game) (any, bool) {
		var req truncateRequest
		if err := c.Bind(&req); err != nil {
			badRequest(c, "invalid request body")
			return nil, false
		}
		if !g.MoveToId(chessgame.NodeID(req.At)) {
			badRequest(c, "unknown node id")
			return nil, false
		}
		var point chessgame.TruncatePoint
		switch req.Point {
		case "before":
			point = chessgame.TruncateBefore
		case "after", "":
			point = chessgame.TruncateAfter
		default:
			badRequest(c, "point must be 'before' or 'after'")
			return nil, false
		}
		res := g.TruncateVariation(point)
		if res == nil {
			badRequest(c, "nothing to truncate")
			return nil, false
		}
		return nil, true
	})
}

type annotationRequest struct {
	NodeID     int32  `json:"nodeId"`
	Comment    *string `json:"comment"`
	PreComment *string `json:"preComment"`
	Nags       *[]int  `json:"nags"`
}

// annotate updates a node's comments and/or NAG set.
// PATCH /api/games/:id/annotations
func (h *editHandler) annotate(c echo.Context) error {
	return h.mutate(c, func(g *chessgame.Game) (any, bool) {
		var req annotationRequest
		if err := c.Bind(&req); err != nil {
			badRequest(c, "invalid request body")
			return nil, false
		}
		id := chessgame.NodeID(req.NodeID)
		if req.Comment != nil {
			g.SetAnnotation(chessgame.AfterMove, id, *req.Comment)
		}
		if req.PreComment != nil {
			g.SetAnnotation(chessgame.BeforeMove, id, *req.PreComment)
		}
		if req.Nags != nil {
			g.SetNags(id, *req.Nags)
		}
		return nil, true
	})
}

type tagRequest struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// setTag writes or removes (on empty value) a PGN tag.
// PATCH /api/games/:id/tags
func (h *editHandler) setTag(c echo.Context) error {
	return h.mutate(c, func(g *chessgame.Game) (any, bool) {
		var req tagRequest
		if err := c.Bind(&req); err != nil {
			badRequest(c, "invalid request body")
			return nil, false
		}
		if !requireField(c, "key", req.Key) {
			return nil, false
		}
		if req.Value == "" {
			g.RemoveTag(req.Key)
		} else {
			g.SetTag(req.Key, req.Value)
		}
		return nil, true
	})
}

type mergeRequest struct {
	OtherGameID string `json:"otherGameId"`
}

// merge overlays another owned game's moves and variations onto this one.
// POST /api/games/:id/merge
func (h *editHandler) merge(c echo.Context) error {
	userID := c.Get("userID").(string)
	return h.mutate(c, func(g *chessgame.Game) (any, bool) {
		var req mergeRequest
		if err := c.Bind(&req); err != nil {
			badRequest(c, "invalid request body")
			return nil, false
		}
		if !requireField(c, "otherGameId", req.OtherGameID) {
			return nil, false
		}
		_, other, err := h.games.games.Get(userID, req.OtherGameID)
		if err != nil {
			notFound(c, "other game")
			return nil, false
		}
		res := g.MergeWithGame(other)
		if res == nil {
			badRequest(c, "nothing to merge")
			return nil, false
		}
		return nil, true
	})
}

// moveVariationUp swaps a variation earlier in its parent's variations list.
// POST /api/games/:id/variations/:nodeId/move-up
func (h *editHandler) moveVariationUp(c echo.Context) error {
	return h.mutate(c, func(g *chessgame.Game) (any, bool) {
		nodeID, ok := parseNodeIDParam(c)
		if !ok {
			return nil, false
		}
		res := g.MoveVariationUp(nodeID)
		if res == nil {
			badRequest(c, "cannot move variation up")
			return nil, false
		}
		return nil, true
	})
}

// moveVariationDown swaps a variation later in its parent's variations list.
// POST /api/games/:id/variations/:nodeId/move-down
func (h *editHandler) moveVariationDown(c echo.Context) error {
	return h.mutate(c, func(g *chessgame.Game) (any, bool) {
		nodeID, ok := parseNodeIDParam(c)
		if !ok {
			return nil, false
		}
		res := g.MoveVariationDown(nodeID)
		if res == nil {
			badRequest(c, "cannot move variation down")
			return nil, false
		}
		return nil, true
	})
}

func parseNodeIDParam(c echo.Context) (chessgame.NodeID, bool) {
	val, err := strconv.Atoi(c.Param("nodeId"))
	if err != nil {
		badRequest(c, "nodeId must be a valid integer")
		return 0, false
	}
	return chessgame.NodeID(val), true
}

// mutate is the shared load->apply->save->respond pipeline every editing
// endpoint runs: it centralizes the ownership check and snapshot rewrite so
// each handler only has to express its one chessgame.Game call.
func (h *editHandler) mutate(c echo.Context, fn func(g *chessgame.Game) (extra any, ok bool)) error {
	userID := c.Get("userID").(string)
	id, ok := validateUUIDParam(c, "id")
	if !ok {
		return nil
	}

	rec, g, err := h.games.games.Get(userID, id)
	if err != nil {
		return gameStoreError(c, err)
	}

	extra, mutated := fn(g)
	if !mutated {
		return nil
	}

	updated, err := h.games.games.Update(userID, id, rec.Name, g)
	if err != nil {
		return gameStoreError(c, err)
	}

	view := toView(*updated, g)
	if extra == nil {
		return c.JSON(http.StatusOK, view)
	}
	return c.JSON(http.StatusOK, map[string]any{"game": view, "result": extra})
}

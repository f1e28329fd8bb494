// Package mazeapi handles maze generation, solving and retrieval over HTTP.
package mazeapi

import (
	"errors"
	"io"
	"net/http"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/service"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MazeController exposes a MazeService.
type MazeController struct {
	mazeService i.MazeService
}

// NewMazeController initializes a MazeController.
func NewMazeController(ms i.MazeService) (*MazeController, error) {
	if ms == nil {
		return nil, errors.New("maze controller requires a maze service")
	}
	return &MazeController{mazeService: ms}, nil
}

// RegisterPublic registers public routes.
func (mc *MazeController) RegisterPublic(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.GET("/:ID", mc.byID)
		mazes.GET("/:ID/render", mc.render)
	}
}

// RegisterProtected registers protected routes.
func (mc *MazeController) RegisterProtected(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("", mc.generate)
		mazes.POST("/:ID/escape", mc.escape)
		mazes.POST("/:ID/copy", mc.copy)
	}
}

// generate handles maze creation requests.
func (mc *MazeController) generate(ctx *gin.Context) {
	var request GenerateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := mc.mazeService.Generate(ctx, request.Rows, request.Cols, request.Seed)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, newMazeResponse(record))
}

// byID returns a stored maze.
func (mc *MazeController) byID(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	record, err := mc.mazeService.ByID(ctx, id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newMazeResponse(record))
}

// render draws a stored maze as plain text.
func (mc *MazeController) render(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	m, _, err := mc.mazeService.Load(ctx, id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	symbols := maze.DefaultSymbols
	if s := ctx.Query("symbols"); s != "" {
		runes := []rune(s)
		if len(runes) != 3 {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "symbols must hold exactly three characters: wall, path, route"})
			return
		}
		symbols = maze.Symbols{Wall: runes[0], Path: runes[1], Escape: runes[2]}
	}
	ctx.String(http.StatusOK, m.Render(symbols))
}

// escape marks the escape route of a stored maze.
func (mc *MazeController) escape(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var request EscapeRequest
	if err := ctx.ShouldBindJSON(&request); err != nil && !errors.Is(err, io.EOF) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := mc.mazeService.Escape(ctx, id, request.Seed)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newMazeResponse(record))
}

// copy duplicates a stored maze.
func (mc *MazeController) copy(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	record, err := mc.mazeService.Copy(ctx, id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, newMazeResponse(record))
}

func parseID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid maze id"})
		return uuid.Nil, false
	}
	return id, true
}

func respondError(ctx *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "unexpected error"
	switch {
	case errors.Is(err, maze.ErrInvalidDimensions), errors.Is(err, service.ErrDimensionTooLarge):
		status, message = http.StatusBadRequest, err.Error()
	case errors.Is(err, dmn.ErrMazeNotFound):
		status, message = http.StatusNotFound, err.Error()
	case errors.Is(err, maze.ErrMazeIntegrity), errors.Is(err, service.ErrCorruptedLayout):
		status, message = http.StatusConflict, err.Error()
	}
	ctx.JSON(status, gin.H{"error": message})
}

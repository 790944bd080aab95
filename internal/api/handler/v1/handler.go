package v1

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yizeng/gab/gin/gorm/eventmaster/internal/api/handler/v1/response"
)

const (
	msgVenueNotFound      = "Recinto no encontrado"
	msgEventVenueNotFound = "El recinto asociado no existe"
	msgEventNotFound      = "Evento no encontrado"
	msgCapacityExceeded   = "Aforo insuficiente en el recinto"
	msgVenueDeleted       = "Recinto eliminado satisfactoriamente"
	msgWelcome            = "Bienvenido a la API de EventMaster"
	docsPath              = "/docs"
)

// HandleIndex godoc
// @Summary      Welcome message
// @Tags         root
// @Produce      json
// @Success      200  {object}  response.Welcome
// @Router       / [get]
func HandleIndex(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, response.Welcome{
		Message:       msgWelcome,
		Documentation: docsPath,
	})
}

// HandleHealthcheck godoc
// @Summary      Liveness probe
// @Tags         root
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func HandleHealthcheck(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func parseID(ctx *gin.Context) (uint, *response.Err) {
	raw := ctx.Param("id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, response.ErrValidation(fmt.Errorf("id inválido: %q", raw))
	}

	return uint(id), nil
}

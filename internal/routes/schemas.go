package routes

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

type UpdateTableRequestJson struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

type SchemasRoutes struct {
	logger *slog.Logger
}

func NewSchemasRoutes(logger *slog.Logger) *SchemasRoutes {
	return &SchemasRoutes{logger: logger}
}

func (r *SchemasRoutes) getConfig(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	connectorId := gctx.Param("id")

	config, err := currentSession(gctx).Client.Schemas.GetConfig(ctx, connectorId)
	if err != nil {
		writeAPIError(gctx, r.logger, err)
		return
	}

	gctx.PureJSON(http.StatusOK, config)
}

func (r *SchemasRoutes) updateTable(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	connectorId := gctx.Param("id")
	schema := gctx.Param("schema")
	table := gctx.Param("table")

	var req UpdateTableRequestJson
	if err := gctx.ShouldBindJSON(&req); err != nil {
		writeBadRequest(gctx, "enabled is required")
		return
	}

	entry, err := currentSession(gctx).Client.Schemas.UpdateTable(ctx, connectorId, schema, table, *req.Enabled)
	if err != nil {
		writeAPIError(gctx, r.logger, err)
		return
	}

	r.logger.Info("table toggled",
		"connector_id", connectorId,
		"schema", schema,
		"table", table,
		"enabled", *req.Enabled)
	gctx.PureJSON(http.StatusOK, entry)
}

func (r *SchemasRoutes) resyncTable(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	connectorId := gctx.Param("id")
	schema := gctx.Param("schema")
	table := gctx.Param("table")

	if err := currentSession(gctx).Client.Schemas.ResyncTable(ctx, connectorId, schema, table); err != nil {
		writeAPIError(gctx, r.logger, err)
		return
	}

	r.logger.Info("table resync triggered",
		"connector_id", connectorId,
		"schema", schema,
		"table", table)
	gctx.PureJSON(http.StatusOK, OperationResultJson{
		Message: fmt.Sprintf("Resync triggered for %s.%s", schema, table),
	})
}

func (r *SchemasRoutes) Register(g gin.IRouter) {
	g.GET("/connectors/:id/schemas", r.getConfig)
	g.PATCH("/connectors/:id/schemas/:schema/tables/:table", r.updateTable)
	g.POST("/connectors/:id/schemas/:schema/tables/:table/resync", r.resyncTable)
}

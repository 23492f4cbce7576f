package routes

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/redhat-data-and-ai/fivetran-console/pkg/fivetran"
)

// ConnectorJson is the flattened connector representation the UI renders.
type ConnectorJson struct {
	Id            string     `json:"id"`
	Name          string     `json:"name"`
	Service       string     `json:"service"`
	GroupId       string     `json:"group_id"`
	Status        string     `json:"status"`
	SetupState    string     `json:"setup_state"`
	SyncState     string     `json:"sync_state"`
	Paused        bool       `json:"paused"`
	LastSync      *time.Time `json:"last_sync,omitempty"`
	FailedAt      *time.Time `json:"failed_at,omitempty"`
	SyncFrequency int        `json:"sync_frequency,omitempty"`
	ScheduleType  string     `json:"schedule_type,omitempty"`
	DailySyncTime string     `json:"daily_sync_time,omitempty"`
}

func ConnectorToJson(c *fivetran.Connector) ConnectorJson {
	status := "Active"
	if c.Paused {
		status = "Paused"
	}

	return ConnectorJson{
		Id:            c.ID,
		Name:          c.Schema,
		Service:       c.Service,
		GroupId:       c.GroupID,
		Status:        status,
		SetupState:    c.Status.SetupState,
		SyncState:     c.Status.SyncState,
		Paused:        c.Paused,
		LastSync:      c.SucceededAt,
		FailedAt:      c.FailedAt,
		SyncFrequency: c.SyncFrequency,
		ScheduleType:  c.ScheduleType,
		DailySyncTime: c.DailySyncTime,
	}
}

type ListConnectorsRequestQueryParams struct {
	GroupId string `form:"group_id"`
}

type ListConnectorsResponseJson struct {
	Items []ConnectorJson `json:"items"`
}

type SyncRequestQueryParams struct {
	Force bool `form:"force"`
}

type OperationResultJson struct {
	Message string `json:"message"`
}

type SetupTestJson struct {
	Title   string `json:"title"`
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

type TestConnectionResponseJson struct {
	Id         string          `json:"id"`
	SetupTests []SetupTestJson `json:"setup_tests"`
}

type ConnectorsRoutes struct {
	logger *slog.Logger
}

func NewConnectorsRoutes(logger *slog.Logger) *ConnectorsRoutes {
	return &ConnectorsRoutes{logger: logger}
}

func (r *ConnectorsRoutes) list(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var req ListConnectorsRequestQueryParams
	if err := gctx.ShouldBindQuery(&req); err != nil {
		writeBadRequest(gctx, err.Error())
		return
	}

	client := currentSession(gctx).Client

	var connectors []fivetran.Connector
	var err error
	if req.GroupId != "" {
		connectors, err = client.Connectors.ListForGroup(ctx, req.GroupId)
	} else {
		connectors, err = client.Connectors.List(ctx)
	}
	if err != nil {
		writeAPIError(gctx, r.logger, err)
		return
	}

	items := make([]ConnectorJson, 0, len(connectors))
	for i := range connectors {
		items = append(items, ConnectorToJson(&connectors[i]))
	}

	gctx.PureJSON(http.StatusOK, ListConnectorsResponseJson{Items: items})
}

func (r *ConnectorsRoutes) get(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	connectorId := gctx.Param("id")

	connector, err := currentSession(gctx).Client.Connectors.Get(ctx, connectorId)
	if err != nil {
		writeAPIError(gctx, r.logger, err)
		return
	}

	gctx.PureJSON(http.StatusOK, ConnectorToJson(connector))
}

func (r *ConnectorsRoutes) pause(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	connectorId := gctx.Param("id")

	connector, err := currentSession(gctx).Client.Connectors.Pause(ctx, connectorId)
	if err != nil {
		writeAPIError(gctx, r.logger, err)
		return
	}

	r.logger.Info("connector paused", "connector_id", connectorId)
	gctx.PureJSON(http.StatusOK, ConnectorToJson(connector))
}

func (r *ConnectorsRoutes) activate(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	connectorId := gctx.Param("id")

	connector, err := currentSession(gctx).Client.Connectors.Activate(ctx, connectorId)
	if err != nil {
		writeAPIError(gctx, r.logger, err)
		return
	}

	r.logger.Info("connector activated", "connector_id", connectorId)
	gctx.PureJSON(http.StatusOK, ConnectorToJson(connector))
}

func (r *ConnectorsRoutes) sync(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	connectorId := gctx.Param("id")

	var req SyncRequestQueryParams
	if err := gctx.ShouldBindQuery(&req); err != nil {
		writeBadRequest(gctx, err.Error())
		return
	}

	if err := currentSession(gctx).Client.Connectors.Sync(ctx, connectorId, req.Force); err != nil {
		writeAPIError(gctx, r.logger, err)
		return
	}

	msg := "Sync triggered"
	if req.Force {
		msg = "Historical resync triggered"
	}
	r.logger.Info("sync triggered", "connector_id", connectorId, "force", req.Force)
	gctx.PureJSON(http.StatusOK, OperationResultJson{Message: msg})
}

func (r *ConnectorsRoutes) test(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	connectorId := gctx.Param("id")

	result, err := currentSession(gctx).Client.Connectors.TestConnection(ctx, connectorId)
	if err != nil {
		writeAPIError(gctx, r.logger, err)
		return
	}

	resp := TestConnectionResponseJson{Id: result.ID}
	for _, test := range result.SetupTests {
		resp.SetupTests = append(resp.SetupTests, SetupTestJson{
			Title:   test.Title,
			Status:  test.Status,
			Message: test.Message,
		})
	}

	gctx.PureJSON(http.StatusOK, resp)
}

func (r *ConnectorsRoutes) Register(g gin.IRouter) {
	g.GET("/connectors", r.list)
	g.GET("/connectors/:id", r.get)
	g.POST("/connectors/:id/pause", r.pause)
	g.POST("/connectors/:id/activate", r.activate)
	g.POST("/connectors/:id/sync", r.sync)
	g.POST("/connectors/:id/test", r.test)
}

package routes

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/redhat-data-and-ai/fivetran-console/pkg/fivetran"
)

type GroupJson struct {
	Id        string     `json:"id"`
	Name      string     `json:"name"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

func GroupToJson(g *fivetran.Group) GroupJson {
	return GroupJson{
		Id:        g.ID,
		Name:      g.Name,
		CreatedAt: g.CreatedAt,
	}
}

type ListGroupsResponseJson struct {
	Items []GroupJson `json:"items"`
}

type GroupsRoutes struct {
	logger *slog.Logger
}

func NewGroupsRoutes(logger *slog.Logger) *GroupsRoutes {
	return &GroupsRoutes{logger: logger}
}

func (r *GroupsRoutes) list(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	groups, err := currentSession(gctx).Client.Groups.List(ctx)
	if err != nil {
		writeAPIError(gctx, r.logger, err)
		return
	}

	items := make([]GroupJson, 0, len(groups))
	for i := range groups {
		items = append(items, GroupToJson(&groups[i]))
	}

	gctx.PureJSON(http.StatusOK, ListGroupsResponseJson{Items: items})
}

func (r *GroupsRoutes) get(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	groupId := gctx.Param("id")

	group, err := currentSession(gctx).Client.Groups.Get(ctx, groupId)
	if err != nil {
		writeAPIError(gctx, r.logger, err)
		return
	}

	gctx.PureJSON(http.StatusOK, GroupToJson(group))
}

func (r *GroupsRoutes) Register(g gin.IRouter) {
	g.GET("/groups", r.list)
	g.GET("/groups/:id", r.get)
}

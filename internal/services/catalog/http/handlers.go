// Package http provides http transport for the course catalog
package http

import (
	stdhttp "net/http"

	"forumscope/internal/modkit/httpkit"
	svc "forumscope/internal/services/catalog/service"
)

// Register mounts catalog endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.Get(r, "/", h.list)
	httpkit.Get(r, "/{key}", h.get)
}

type handlers struct{ svc svc.Service }

// swagger:route GET /courses Catalog listCourses
// @Summary List known courses
// @Tags Catalog
// @Produce json
// @Success 200 {array} domain.Course "ok"
// @Router /courses [get]
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	return h.svc.List(r.Context())
}

// swagger:route GET /courses/{key} Catalog getCourse
// @Summary Get one course by key
// @Tags Catalog
// @Produce json
// @Param key path string true "Course key"
// @Success 200 {object} domain.Course "ok"
// @Failure 404 {object} httpkit.Envelope "not found"
// @Router /courses/{key} [get]
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	return h.svc.Get(r.Context(), httpkit.Param(r, "key"))
}

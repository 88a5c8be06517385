package handler

import (
	"github.com/gin-gonic/gin"
)

// Handlers groups every API handler mounted by RegisterRoutes.
type Handlers struct {
	Auth         *AuthHandler
	Winners      *WinnerHandler
	Activities   *ActivityHandler
	Gallery      *GalleryHandler
	Participants *ParticipantHandler
	Students     *StudentHandler
	Performance  *PerformanceHandler
	Uploads      *UploadHandler
	Changes      *ChangeHandler
}

// RegisterRoutes mounts the API under prefix. Reads are public; every write
// runs behind the admin middleware chain.
func RegisterRoutes(r gin.IRouter, prefix string, h Handlers, admin ...gin.HandlerFunc) {
	api := r.Group(prefix)
	secured := api.Group("", admin...)

	api.POST("/auth/login", h.Auth.Login)

	api.GET("/winners", h.Winners.List)
	secured.POST("/winners", h.Winners.Create)
	secured.PUT("/winners/:id", h.Winners.Update)
	secured.DELETE("/winners/:id", h.Winners.Delete)

	api.GET("/activities", h.Activities.List)
	api.GET("/activities/:id", h.Activities.Get)
	secured.POST("/activities", h.Activities.Create)
	secured.PUT("/activities/:id", h.Activities.Update)
	secured.POST("/activities/:id/photos", h.Activities.AddPhoto)
	secured.DELETE("/activities/:id", h.Activities.Delete)

	api.GET("/gallery", h.Gallery.List)
	secured.POST("/gallery", h.Gallery.Create)
	secured.PUT("/gallery/:id", h.Gallery.Update)
	secured.DELETE("/gallery/:id", h.Gallery.Delete)

	api.GET("/participants", h.Participants.List)
	secured.POST("/participants", h.Participants.Create)
	secured.PUT("/participants/:id", h.Participants.Update)
	secured.DELETE("/participants/:id", h.Participants.Delete)

	api.GET("/students", h.Students.List)
	api.GET("/students/:pin", h.Students.Get)
	secured.POST("/students", h.Students.Create)
	secured.POST("/students/import", h.Students.Import)
	secured.PUT("/students/:pin", h.Students.Update)
	secured.DELETE("/students/:pin", h.Students.Delete)

	api.GET("/performance/:pin", h.Performance.Get)
	api.GET("/performance/:pin/export", h.Performance.Export)

	secured.POST("/uploads/:category", h.Uploads.Upload)

	api.GET("/changes", h.Changes.Versions)
}

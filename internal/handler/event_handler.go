package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"eventboard/internal/model"
	"eventboard/internal/service"
	"eventboard/internal/upload"
	apperrors "eventboard/pkg/app_errors"
	"eventboard/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// imageField is the multipart field name carrying the uploaded file.
const imageField = "eventImage"

type EventHandler struct {
	service  service.EventService
	notifier service.NotificationService
	uploader *upload.Uploader
}

func NewEventHandler(service service.EventService, notifier service.NotificationService, uploader *upload.Uploader) *EventHandler {
	return &EventHandler{service: service, notifier: notifier, uploader: uploader}
}

func (h *EventHandler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.List)
	r.GET("/events/new", h.NewForm)
	r.POST("/events", h.Create)
	r.GET("/events/:id", h.Show)
	r.POST("/events/:id/send-email", h.SendEmail)
	r.GET("/events/:id/edit", h.EditForm)
	r.PUT("/events/:id", h.Update)
	r.DELETE("/events/:id", h.Delete)
}

func (h *EventHandler) List(c *gin.Context) {
	events, err := h.service.List(c)
	if err != nil {
		h.handleError(c, err, "List")
		return
	}
	c.HTML(http.StatusOK, "index.html", gin.H{"events": events})
}

func (h *EventHandler) NewForm(c *gin.Context) {
	c.HTML(http.StatusOK, "new.html", nil)
}

func (h *EventHandler) Create(c *gin.Context) {
	event := eventFromForm(c)

	image, err := h.saveUpload(c)
	if err != nil {
		h.handleError(c, err, "Create")
		return
	}

	created, err := h.service.Create(c, event, image)
	if err != nil {
		h.handleError(c, err, "Create")
		return
	}

	// Past the point of no return: the rows are committed, so notification
	// problems are logged and the request still succeeds.
	if err := h.notifier.NotifyCreated(c, created, image, c.PostForm("additionalAttendees")); err != nil {
		logger.WithComponent("handler").Error("notify on create failed",
			zap.Int("event_id", created.ID), zap.Error(err))
	}

	c.Redirect(http.StatusFound, "/")
}

func (h *EventHandler) Show(c *gin.Context) {
	id, ok := h.eventID(c)
	if !ok {
		return
	}
	event, err := h.service.Get(c, id)
	if err != nil {
		h.handleError(c, err, "Show")
		return
	}
	image, err := h.service.GetImage(c, id)
	if err != nil {
		h.handleError(c, err, "Show")
		return
	}
	c.HTML(http.StatusOK, "show.html", gin.H{"event": event, "image": image})
}

func (h *EventHandler) SendEmail(c *gin.Context) {
	id, ok := h.eventID(c)
	if !ok {
		return
	}
	event, err := h.service.Get(c, id)
	if err != nil {
		h.handleError(c, err, "SendEmail")
		return
	}
	image, err := h.service.GetImage(c, id)
	if err != nil {
		h.handleError(c, err, "SendEmail")
		return
	}

	if err := h.notifier.NotifyInvite(c, event, image, c.PostForm("additionalAttendees")); err != nil {
		logger.WithComponent("handler").Error("notify failed",
			zap.Int("event_id", id), zap.Error(err))
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/events/%d", id))
}

func (h *EventHandler) EditForm(c *gin.Context) {
	id, ok := h.eventID(c)
	if !ok {
		return
	}
	event, err := h.service.Get(c, id)
	if err != nil {
		h.handleError(c, err, "EditForm")
		return
	}
	image, err := h.service.GetImage(c, id)
	if err != nil {
		h.handleError(c, err, "EditForm")
		return
	}
	c.HTML(http.StatusOK, "edit.html", gin.H{"event": event, "image": image})
}

func (h *EventHandler) Update(c *gin.Context) {
	id, ok := h.eventID(c)
	if !ok {
		return
	}
	event := eventFromForm(c)

	image, err := h.saveUpload(c)
	if err != nil {
		h.handleError(c, err, "Update")
		return
	}

	if err := h.service.Update(c, id, event, image); err != nil {
		h.handleError(c, err, "Update")
		return
	}
	c.Redirect(http.StatusFound, "/")
}

func (h *EventHandler) Delete(c *gin.Context) {
	id, ok := h.eventID(c)
	if !ok {
		return
	}
	image, err := h.service.Delete(c, id)
	if err != nil {
		h.handleError(c, err, "Delete")
		return
	}
	if image != nil {
		// The rows are already gone; a failed file removal still surfaces as
		// a server error and leaves the file orphaned.
		if err := h.uploader.Remove(*image); err != nil {
			logger.WithComponent("handler").Error("removing image file failed",
				zap.String("image", *image), zap.Error(err))
			c.String(http.StatusInternalServerError, "Internal Server Error")
			return
		}
	}
	c.Redirect(http.StatusFound, "/")
}

// eventID parses the :id path parameter. A non-numeric id cannot match any
// row, so it reports not found, mirroring what a database miss would do.
func (h *EventHandler) eventID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.String(http.StatusNotFound, "Event not found")
		return 0, false
	}
	return id, true
}

// saveUpload stores the uploaded image if one was attached and returns its
// generated filename, or nil when the form carried no file.
func (h *EventHandler) saveUpload(c *gin.Context) (*string, error) {
	fh, err := c.FormFile(imageField)
	if err != nil {
		return nil, nil
	}
	name, err := h.uploader.Save(fh)
	if err != nil {
		return nil, err
	}
	return &name, nil
}

func eventFromForm(c *gin.Context) *model.Event {
	description := c.PostForm("description")
	return &model.Event{
		Name:        c.PostForm("name"),
		Date:        c.PostForm("date"),
		Time:        c.PostForm("time"),
		Location:    c.PostForm("location"),
		Description: &description,
	}
}

func (h *EventHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case err == apperrors.ErrEventNotFound:
		log.Warn("Event not found")
		c.String(http.StatusNotFound, "Event not found")
	default:
		log.Error("Unexpected error")
		c.String(http.StatusInternalServerError, "Internal Server Error")
	}
}

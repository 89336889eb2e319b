package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tableflip.dev/studyhub/pkg/app"
	"tableflip.dev/studyhub/pkg/derive"
	"tableflip.dev/studyhub/pkg/timeutil"
	"tableflip.dev/studyhub/pkg/watch"
)

func (s *Server) listTasks(c *gin.Context) {
	f, err := derive.ParseTaskFilter(c.Query("filter"))
	if err != nil {
		badRequest(c, err)
		return
	}
	list, err := s.Service.FilterTasks(c.Request.Context(), f)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (s *Server) getTask(c *gin.Context) {
	t, err := s.Service.Task(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (s *Server) createTask(c *gin.Context) {
	var in app.TaskInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	t, err := s.Service.CreateTask(c.Request.Context(), in)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

func (s *Server) updateTask(c *gin.Context) {
	var in app.TaskInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	t, err := s.Service.UpdateTask(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (s *Server) toggleTask(c *gin.Context) {
	t, err := s.Service.ToggleTask(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (s *Server) deleteTask(c *gin.Context) {
	if err := s.Service.DeleteTask(c.Request.Context(), c.Param("id")); err != nil {
		s.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) listEvents(c *gin.Context) {
	f, err := derive.ParseEventFilter(c.Query("filter"))
	if err != nil {
		badRequest(c, err)
		return
	}
	list, err := s.Service.FilterEvents(c.Request.Context(), f)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (s *Server) getEvent(c *gin.Context) {
	ev, err := s.Service.Event(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, ev)
}

func (s *Server) createEvent(c *gin.Context) {
	var in app.EventInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	ev, err := s.Service.CreateEvent(c.Request.Context(), in)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, ev)
}

func (s *Server) updateEvent(c *gin.Context) {
	var in app.EventInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	ev, err := s.Service.UpdateEvent(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, ev)
}

func (s *Server) deleteEvent(c *gin.Context) {
	if err := s.Service.DeleteEvent(c.Request.Context(), c.Param("id")); err != nil {
		s.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) listNotes(c *gin.Context) {
	notes, err := s.Service.Notes(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, derive.SortNotes(notes))
}

func (s *Server) noteGroups(c *gin.Context) {
	groups, err := s.Service.NoteGroups(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, groups)
}

func (s *Server) getNote(c *gin.Context) {
	n, err := s.Service.Note(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, n)
}

func (s *Server) createNote(c *gin.Context) {
	var in app.NoteInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	n, err := s.Service.CreateNote(c.Request.Context(), in)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, n)
}

func (s *Server) updateNote(c *gin.Context) {
	var in app.NoteInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	n, err := s.Service.UpdateNote(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, n)
}

func (s *Server) deleteNote(c *gin.Context) {
	if err := s.Service.DeleteNote(c.Request.Context(), c.Param("id")); err != nil {
		s.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) dashboard(c *gin.Context) {
	d, err := s.Service.Dashboard(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

func (s *Server) agenda(c *gin.Context) {
	window, _, err := timeutil.ParseWindow(c.Query("within"))
	if err != nil {
		badRequest(c, err)
		return
	}
	a, err := s.Service.Agenda(c.Request.Context(), window)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

type themeBody struct {
	Theme string `json:"theme"`
}

func (s *Server) getTheme(c *gin.Context) {
	theme, err := s.Service.Theme(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, themeBody{Theme: theme})
}

func (s *Server) putTheme(c *gin.Context) {
	var body themeBody
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err)
		return
	}
	theme, err := s.Service.SetTheme(c.Request.Context(), body.Theme)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, themeBody{Theme: theme})
}

type notificationsBody struct {
	Enabled    *bool            `json:"enabled,omitempty"`
	Permission watch.Permission `json:"permission,omitempty"`
}

var errNoPermissions = errors.New("api: notification settings unavailable")

func (s *Server) getNotifications(c *gin.Context) {
	if s.Permissions == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": errNoPermissions.Error()})
		return
	}
	c.JSON(http.StatusOK, notificationsBody{Permission: s.Permissions.Permission(c.Request.Context())})
}

// putNotifications records consent given in the client. There is nobody to
// prompt on the server side.
func (s *Server) putNotifications(c *gin.Context) {
	if s.Permissions == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": errNoPermissions.Error()})
		return
	}
	var body notificationsBody
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err)
		return
	}
	if body.Enabled == nil {
		badRequest(c, errors.New(`api: "enabled" is required`))
		return
	}
	ctx := c.Request.Context()
	var err error
	if *body.Enabled {
		err = s.Permissions.Grant(ctx)
	} else {
		err = s.Permissions.Revoke(ctx)
	}
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, notificationsBody{Permission: s.Permissions.Permission(ctx)})
}

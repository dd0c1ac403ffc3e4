package web

import (
	"errors"
	"io/fs"
	"net/http"
	"strconv"
	"time"

	embedded "campusevents"
	authservice "campusevents/auth/service"
	"campusevents/auth/users"
	"campusevents/internal/config"
	"campusevents/internal/domain"
	"campusevents/internal/service"
	"campusevents/internal/web/webpath"

	"github.com/google/uuid"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html"
)

const dashboardWindow = 30 * 24 * time.Hour

type Server struct {
	auth          *authservice.Service
	events        *service.EventService
	registrations *service.RegistrationService
	notifications *service.NotificationService
	app           *fiber.App
	cfg           config.Server
}

func New(
	cfg config.Server,
	authService *authservice.Service,
	es *service.EventService,
	rs *service.RegistrationService,
	ns *service.NotificationService,
) (*Server, error) {
	server := Server{
		auth:          authService,
		events:        es,
		registrations: rs,
		notifications: ns,
		cfg:           cfg,
	}

	fsFS, err := fs.Sub(embedded.Views, "views")
	if err != nil {
		return nil, err
	}
	engine := html.NewFileSystem(http.FS(fsFS), ".html")
	engine.Reload(cfg.Debug)
	engine.Debug(cfg.Debug)
	engine.AddFunc("FormatDate", formatDate)
	engine.AddFunc("FormatTime", formatTime)
	engine.AddFunc("FormatDateTime", formatDateTime)
	engine.AddFunc("DaysUntil", daysUntil)

	app := fiber.New(fiber.Config{
		Views: engine,
	})
	app.Use(webpath.Api, func(c *fiber.Ctx) error {
		tokenCookie := c.Cookies("token")
		user, err := authService.Auth(c.Context(), tokenCookie, c.Method(), c.OriginalURL())
		if err != nil {
			switch {
			case errors.Is(err, authservice.ErrForbidden):
				c.Status(fiber.StatusForbidden)
			case errors.Is(err, authservice.ErrNotAuthorized):
				c.Status(fiber.StatusUnauthorized)
			default:
				c.Status(fiber.StatusInternalServerError)
			}
			return nil
		}
		c.Context().SetUserValue(userKey, user)
		return c.Next()
	})
	app.Get(webpath.Signin, server.handleGetSignIn)
	app.Post(webpath.Signin, server.handlePostSignIn)
	app.Get(webpath.Signup, server.handleGetSignup)
	app.Post(webpath.Signup, server.handlePostSignup)
	app.Get(webpath.Signout, server.handleSignOut)
	app.Get(webpath.ForgotPassword, server.handleGetForgotPassword)
	app.Post(webpath.ForgotPassword, server.handlePostForgotPassword)
	app.Get(webpath.ResetPassword, server.handleGetResetPassword)
	app.Post(webpath.ResetPassword, server.handlePostResetPassword)
	app.Get(webpath.Home, func(ctx *fiber.Ctx) error {
		return ctx.Redirect(webpath.Api)
	})

	app.Get(webpath.ApiHome, server.handleDashboard)
	app.Get(webpath.ApiEvents, server.handleEvents)
	app.Get(webpath.ApiNewEvent, server.handleNewEventGet)
	app.Post(webpath.ApiNewEvent, server.handleNewEventPost)
	app.Get(webpath.ApiEditEvent, server.handleEditEventGet)
	app.Post(webpath.ApiEditEvent, server.handleEditEventPost)
	app.Get(webpath.ApiDeleteEvent, server.handleDeleteEventGet)
	app.Post(webpath.ApiDeleteEvent, server.handleDeleteEventPost)
	app.Get(webpath.ApiRegisterEvent, server.handleRegisterGet)
	app.Post(webpath.ApiRegisterEvent, server.handleRegisterPost)
	app.Get(webpath.ApiEventRegs, server.handleEventRegistrations)
	app.Get(webpath.ApiMyRegistrations, server.handleMyRegistrations)
	app.Get(webpath.ApiAllRegistrations, server.handleAllRegistrations)
	app.Post(webpath.ApiCancelReg, server.handleCancelRegistration)
	app.Get(webpath.ApiNotifications, server.handleNotifications)
	app.Post(webpath.ApiNotificationRead, server.handleNotificationRead)
	app.Post(webpath.ApiNotificationsRead, server.handleNotificationsReadAll)
	server.app = app
	return &server, nil
}

func (s *Server) Serve() error {
	return s.app.Listen(s.cfg.Host + ":" + strconv.Itoa(s.cfg.Port))
}

const userKey = "user"

func currentUser(ctx *fiber.Ctx) users.User {
	user, _ := ctx.Context().UserValue(userKey).(users.User)
	return user
}

// pageData assembles the common template payload for signed in pages.
func (s *Server) pageData(ctx *fiber.Ctx, title string) data {
	user := currentUser(ctx)
	d := newData(title).WithUser(user)
	if user.ID != uuid.Nil {
		unread, err := s.notifications.UnreadCount(ctx.Context(), user.ID)
		if err == nil {
			d = d.WithUnread(unread)
		}
	}
	return d
}

func (s *Server) handleDashboard(ctx *fiber.Ctx) error {
	user := currentUser(ctx)
	upcoming, err := s.events.Upcoming(ctx.Context(), dashboardWindow, 5)
	if err != nil {
		return err
	}
	d := s.pageData(ctx, "Dashboard").With("Upcoming", upcoming)
	if user.ID != uuid.Nil {
		regs, err := s.registrations.ListByStudent(ctx.Context(), user.ID)
		if err != nil {
			return err
		}
		d = d.With("Registrations", activeOnly(regs))
	}
	return ctx.Render("dashboard", d, "layouts/main")
}

func (s *Server) handleEvents(ctx *fiber.Ctx) error {
	user := currentUser(ctx)
	events, err := s.events.List(ctx.Context())
	if err != nil {
		return err
	}
	d := s.pageData(ctx, "Events").With("Events", events)
	if user.ID != uuid.Nil {
		regs, err := s.registrations.ListByStudent(ctx.Context(), user.ID)
		if err != nil {
			return err
		}
		registered := make(map[uuid.UUID]bool)
		for _, reg := range regs {
			if reg.Active() {
				registered[reg.EventID] = true
			}
		}
		d = d.With("Registered", registered)
	}
	return ctx.Render("events", d, "layouts/main")
}

func (s *Server) handleNewEventGet(ctx *fiber.Ctx) error {
	return ctx.Render("newEvent", s.pageData(ctx, "New Event"), "layouts/main")
}

func (s *Server) handleNewEventPost(ctx *fiber.Ctx) error {
	user := currentUser(ctx)
	form, err := parseEventForm(ctx)
	if err != nil {
		return ctx.Render("newEvent", s.pageData(ctx, "New Event").WithErrors(err), "layouts/main")
	}
	_, err = s.events.Create(ctx.Context(), user.ID, form.title, form.description, form.startsAt, form.location)
	if err != nil {
		if errors.Is(err, service.ErrEventExists) || errors.Is(err, service.ErrEventInPast) {
			return ctx.Render("newEvent", s.pageData(ctx, "New Event").WithErrors(err), "layouts/main")
		}
		return err
	}
	return ctx.Redirect(webpath.ApiEvents)
}

func (s *Server) handleEditEventGet(ctx *fiber.Ctx) error {
	event, err := s.eventFromParams(ctx)
	if err != nil {
		return err
	}
	d := s.pageData(ctx, "Edit Event").With("Event", event)
	return ctx.Render("editEvent", d, "layouts/main")
}

func (s *Server) handleEditEventPost(ctx *fiber.Ctx) error {
	event, err := s.eventFromParams(ctx)
	if err != nil {
		return err
	}
	form, err := parseEventForm(ctx)
	if err != nil {
		d := s.pageData(ctx, "Edit Event").With("Event", event).WithErrors(err)
		return ctx.Render("editEvent", d, "layouts/main")
	}
	err = s.events.Update(ctx.Context(), event.ID, form.title, form.description, form.startsAt, form.location)
	if err != nil {
		if errors.Is(err, service.ErrEventExists) {
			d := s.pageData(ctx, "Edit Event").With("Event", event).WithErrors(err)
			return ctx.Render("editEvent", d, "layouts/main")
		}
		return err
	}
	return ctx.Redirect(webpath.ApiEvents)
}

func (s *Server) handleDeleteEventGet(ctx *fiber.Ctx) error {
	event, err := s.eventFromParams(ctx)
	if err != nil {
		return err
	}
	regs, err := s.registrations.ListByEvent(ctx.Context(), event.ID)
	if err != nil {
		return err
	}
	d := s.pageData(ctx, "Delete Event").
		With("Event", event).
		With("RegistrationCount", len(regs))
	return ctx.Render("deleteEvent", d, "layouts/main")
}

func (s *Server) handleDeleteEventPost(ctx *fiber.Ctx) error {
	event, err := s.eventFromParams(ctx)
	if err != nil {
		return err
	}
	err = s.events.Delete(ctx.Context(), event.ID)
	if err != nil {
		return err
	}
	return ctx.Redirect(webpath.ApiEvents)
}

func (s *Server) handleRegisterGet(ctx *fiber.Ctx) error {
	event, err := s.eventFromParams(ctx)
	if err != nil {
		return err
	}
	d := s.pageData(ctx, "Register").With("Event", event)
	return ctx.Render("registerEvent", d, "layouts/main")
}

func (s *Server) handleRegisterPost(ctx *fiber.Ctx) error {
	user := currentUser(ctx)
	event, err := s.eventFromParams(ctx)
	if err != nil {
		return err
	}
	form, err := parseRegisterForm(ctx)
	if err != nil {
		d := s.pageData(ctx, "Register").With("Event", event).WithErrors(err)
		return ctx.Render("registerEvent", d, "layouts/main")
	}
	_, err = s.registrations.Register(ctx.Context(), user.ID, event.ID, form.phone, form.comment)
	if err != nil {
		var conflict *service.TimeConflictError
		switch {
		case errors.As(err, &conflict),
			errors.Is(err, service.ErrAlreadyRegistered),
			errors.Is(err, service.ErrRegistrationClosed),
			errors.Is(err, service.ErrInvalidPhone):
			d := s.pageData(ctx, "Register").With("Event", event).WithErrors(err)
			return ctx.Render("registerEvent", d, "layouts/main")
		}
		return err
	}
	return ctx.Redirect(webpath.ApiMyRegistrations)
}

func (s *Server) handleMyRegistrations(ctx *fiber.Ctx) error {
	user := currentUser(ctx)
	regs, err := s.registrations.ListByStudent(ctx.Context(), user.ID)
	if err != nil {
		return err
	}
	d := s.pageData(ctx, "My Registrations").With("Registrations", regs)
	return ctx.Render("myRegistrations", d, "layouts/main")
}

func (s *Server) handleEventRegistrations(ctx *fiber.Ctx) error {
	event, err := s.eventFromParams(ctx)
	if err != nil {
		return err
	}
	regs, err := s.registrations.ListByEvent(ctx.Context(), event.ID)
	if err != nil {
		return err
	}
	d := s.pageData(ctx, "Event Registrations").
		With("Event", event).
		With("Registrations", regs)
	return ctx.Render("eventRegistrations", d, "layouts/main")
}

func (s *Server) handleAllRegistrations(ctx *fiber.Ctx) error {
	regs, err := s.registrations.ListAll(ctx.Context())
	if err != nil {
		return err
	}
	d := s.pageData(ctx, "All Registrations").With("Registrations", regs)
	return ctx.Render("allRegistrations", d, "layouts/main")
}

func (s *Server) handleCancelRegistration(ctx *fiber.Ctx) error {
	user := currentUser(ctx)
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return err
	}
	err = s.registrations.Cancel(ctx.Context(), id, user.ID)
	if err != nil && !errors.Is(err, service.ErrRegistrationNotFound) {
		return err
	}
	return ctx.Redirect(webpath.ApiMyRegistrations)
}

func (s *Server) handleNotifications(ctx *fiber.Ctx) error {
	user := currentUser(ctx)
	unreadOnly := ctx.Query("unread") == "1"
	list, err := s.notifications.ListRecent(ctx.Context(), user.ID, 0, unreadOnly)
	if err != nil {
		return err
	}
	d := s.pageData(ctx, "Notifications").
		With("Notifications", list).
		With("UnreadOnly", unreadOnly)
	return ctx.Render("notifications", d, "layouts/main")
}

func (s *Server) handleNotificationRead(ctx *fiber.Ctx) error {
	user := currentUser(ctx)
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return err
	}
	_, err = s.notifications.MarkRead(ctx.Context(), id, user.ID)
	if err != nil {
		return err
	}
	return ctx.Redirect(webpath.ApiNotifications)
}

func (s *Server) handleNotificationsReadAll(ctx *fiber.Ctx) error {
	user := currentUser(ctx)
	_, err := s.notifications.MarkAllRead(ctx.Context(), user.ID)
	if err != nil {
		return err
	}
	return ctx.Redirect(webpath.ApiNotifications)
}

func (s *Server) handleGetSignIn(ctx *fiber.Ctx) error {
	return ctx.Render("signin", newData("Sign In"), "layouts/main")
}

func (s *Server) handlePostSignIn(ctx *fiber.Ctx) error {
	req, err := parseSignInRequest(ctx)
	if err != nil {
		return ctx.Render("signin", newData("Sign In").WithErrors(err), "layouts/main")
	}
	user, err := s.auth.Login(ctx.Context(), req.email, req.password)
	if err != nil {
		if errors.Is(err, authservice.ErrInvalidCredentials) {
			return ctx.Render("signin", newData("Sign In").WithErrors(err), "layouts/main")
		}
		return err
	}
	cookie, err := s.auth.GenerateJWTCookie(user.ID, s.cfg.Host)
	if err != nil {
		return err
	}
	ctx.Cookie(cookie)
	return ctx.Redirect(webpath.ApiHome)
}

func (s *Server) handleGetSignup(ctx *fiber.Ctx) error {
	return ctx.Render("signup", newData("Sign Up"), "layouts/main")
}

func (s *Server) handlePostSignup(ctx *fiber.Ctx) error {
	req, err := parseSignUpRequest(ctx)
	if err != nil {
		return ctx.Render("signup", newData("Sign Up").WithErrors(err), "layouts/main")
	}
	_, err = s.auth.SignUp(ctx.Context(), req.name, req.email, req.password, req.role)
	if err != nil {
		if errors.Is(err, authservice.ErrEmailTaken) ||
			errors.Is(err, authservice.ErrWeakPassword) ||
			errors.Is(err, authservice.ErrInvalidRole) {
			return ctx.Render("signup", newData("Sign Up").WithErrors(err), "layouts/main")
		}
		return err
	}
	return ctx.Redirect(webpath.Signin)
}

func (s *Server) handleSignOut(ctx *fiber.Ctx) error {
	ctx.ClearCookie("token")
	return ctx.Redirect(webpath.ApiHome)
}

func (s *Server) handleGetForgotPassword(ctx *fiber.Ctx) error {
	return ctx.Render("forgotPassword", newData("Forgot Password"), "layouts/main")
}

func (s *Server) handlePostForgotPassword(ctx *fiber.Ctx) error {
	email := ctx.FormValue("email", "")
	if err := validateEmail(email); err != nil {
		return ctx.Render("forgotPassword", newData("Forgot Password").WithErrors(err), "layouts/main")
	}
	token, ok, err := s.auth.RequestPasswordReset(ctx.Context(), email)
	if err != nil {
		return err
	}
	d := newData("Forgot Password").With("Submitted", true)
	// No mailer is wired up, so the reset link is shown on the page
	// when the account exists. The page looks the same either way.
	if ok {
		d = d.With("ResetLink", webpath.ResetPassword+"?token="+token)
	}
	return ctx.Render("forgotPassword", d, "layouts/main")
}

func (s *Server) handleGetResetPassword(ctx *fiber.Ctx) error {
	token := ctx.Query("token")
	d := newData("Reset Password").With("Token", token)
	return ctx.Render("resetPassword", d, "layouts/main")
}

func (s *Server) handlePostResetPassword(ctx *fiber.Ctx) error {
	req, err := parseResetPasswordRequest(ctx)
	if err != nil {
		d := newData("Reset Password").With("Token", ctx.FormValue("token", "")).WithErrors(err)
		return ctx.Render("resetPassword", d, "layouts/main")
	}
	err = s.auth.ResetPassword(ctx.Context(), req.token, req.password)
	if err != nil {
		if errors.Is(err, authservice.ErrInvalidResetToken) || errors.Is(err, authservice.ErrWeakPassword) {
			d := newData("Reset Password").With("Token", req.token).WithErrors(err)
			return ctx.Render("resetPassword", d, "layouts/main")
		}
		return err
	}
	return ctx.Redirect(webpath.Signin)
}

func (s *Server) eventFromParams(ctx *fiber.Ctx) (domain.Event, error) {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return domain.Event{}, err
	}
	event, err := s.events.Get(ctx.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			return domain.Event{}, fiber.ErrNotFound
		}
		return domain.Event{}, err
	}
	return event, nil
}

func activeOnly(regs []domain.Registration) []domain.Registration {
	active := make([]domain.Registration, 0, len(regs))
	for _, reg := range regs {
		if reg.Active() {
			active = append(active, reg)
		}
	}
	return active
}

func formatDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

func formatTime(t time.Time) string {
	return t.Format("3:04 PM")
}

func formatDateTime(t time.Time) string {
	return t.Format("Jan 2, 2006 3:04 PM")
}

func daysUntil(t time.Time) int {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return int(day.Sub(today) / (24 * time.Hour))
}

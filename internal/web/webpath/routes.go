package webpath

const (
	Signin         = "/signin"
	Signup         = "/signup"
	Signout        = "/signout"
	ForgotPassword = "/forgot-password"
	ResetPassword  = "/reset-password"
	Home           = "/"

	Api                  = "/api"
	ApiHome              = Api + Home
	ApiEvents            = Api + "/events"
	ApiNewEvent          = ApiEvents + "/new"
	ApiEditEvent         = ApiEvents + "/:id/edit"
	ApiDeleteEvent       = ApiEvents + "/:id/delete"
	ApiRegisterEvent     = ApiEvents + "/:id/register"
	ApiEventRegs         = ApiEvents + "/:id/registrations"
	ApiMyRegistrations   = Api + "/my-registrations"
	ApiAllRegistrations  = Api + "/registrations"
	ApiCancelReg         = Api + "/registrations/:id/cancel"
	ApiNotifications     = Api + "/notifications"
	ApiNotificationRead  = ApiNotifications + "/:id/read"
	ApiNotificationsRead = ApiNotifications + "/read-all"
)

func Path() map[string]string {
	return map[string]string{
		"SignUp":           Signup,
		"SignIn":           Signin,
		"SignOut":          Signout,
		"ForgotPassword":   ForgotPassword,
		"Home":             Home,
		"Api":              Api,
		"ApiHome":          ApiHome,
		"ApiEvents":        ApiEvents,
		"ApiNewEvent":      ApiNewEvent,
		"ApiMyRegs":        ApiMyRegistrations,
		"ApiAllRegs":       ApiAllRegistrations,
		"ApiNotifications": ApiNotifications,
	}
}

package sel

const (
	Logo = ".brand-logo"

	SignInFormEmail  = "#email-field"
	SignInFormPass   = "#password-field"
	SignInFormSubmit = "#signin-form-submit"

	SignUpFormName       = "#name-field"
	SignUpFormEmail      = "#email-field"
	SignUpFormPass       = "#password-field"
	SignUpFormPassRepeat = "#password-repeat-field"
	SignUpFormSubmit     = "#signup-form-submit"

	EventFormTitle    = "#event-form-title"
	EventFormDate     = "#event-form-date"
	EventFormTime     = "#event-form-time"
	EventFormLocation = "#event-form-location"
	EventFormSubmit   = "#event-form-submit"

	EventListRow      = "#event-list-row"
	EventListRowTitle = "#event-list-row-title"

	RegisterFormPhone  = "#register-form-phone"
	RegisterFormSubmit = "#register-form-submit"

	RegistrationRow       = "#registration-row"
	RegistrationRowTitle  = "#registration-row-title"
	RegistrationRowStatus = "#registration-row-status"

	FormErrors = "#form-errors"
)

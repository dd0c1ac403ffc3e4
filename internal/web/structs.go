package web

import (
	"errors"
	"regexp"
	"time"

	"github.com/gofiber/fiber/v2"
)

var (
	emailRegexp = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phoneRegexp = regexp.MustCompile(`^\d{10}$`)
)

type signupRequest struct {
	name     string
	email    string
	password string
	role     string
}

func parseSignUpRequest(ctx *fiber.Ctx) (signupRequest, error) {
	var err error
	name := ctx.FormValue("name", "")
	if name == "" {
		err = errors.Join(err, errors.New("name must not be empty"))
	}
	email := ctx.FormValue("email", "")
	err = errors.Join(err, validateEmail(email))
	password := ctx.FormValue("password", "")
	err = errors.Join(err, validatePassword(password))
	passwordRepeat := ctx.FormValue("password-repeat", "")
	if passwordRepeat != password {
		err = errors.Join(err, errors.New("passwords don't match"))
	}
	role := ctx.FormValue("role", "")
	if err != nil {
		return signupRequest{}, err
	}
	return signupRequest{
		name:     name,
		email:    email,
		password: password,
		role:     role,
	}, nil
}

type signInRequest struct {
	email    string
	password string
}

func parseSignInRequest(ctx *fiber.Ctx) (req signInRequest, err error) {
	email := ctx.FormValue("email", "")
	err = errors.Join(err, validateEmail(email))
	password := ctx.FormValue("password", "")
	err = errors.Join(err, validatePassword(password))
	if err != nil {
		return signInRequest{}, err
	}
	return signInRequest{
		email:    email,
		password: password,
	}, nil
}

type eventForm struct {
	title       string
	description string
	location    string
	startsAt    time.Time
}

func parseEventForm(ctx *fiber.Ctx) (eventForm, error) {
	var err error
	title := ctx.FormValue("title", "")
	if title == "" {
		err = errors.Join(err, errors.New("event title must not be empty"))
	}
	location := ctx.FormValue("location", "")
	if location == "" {
		err = errors.Join(err, errors.New("event location must not be empty"))
	}
	date := ctx.FormValue("date", "")
	clock := ctx.FormValue("time", "")
	startsAt, parseErr := time.ParseInLocation("2006-01-02 15:04", date+" "+clock, time.Local)
	if parseErr != nil {
		err = errors.Join(err, errors.New("event date and time are required"))
	}
	if err != nil {
		return eventForm{}, err
	}
	return eventForm{
		title:       title,
		description: ctx.FormValue("description", ""),
		location:    location,
		startsAt:    startsAt,
	}, nil
}

type registerForm struct {
	phone   string
	comment string
}

func parseRegisterForm(ctx *fiber.Ctx) (registerForm, error) {
	var err error
	phone := ctx.FormValue("phone", "")
	err = errors.Join(err, validatePhone(phone))
	if err != nil {
		return registerForm{}, err
	}
	return registerForm{
		phone:   phone,
		comment: ctx.FormValue("comment", ""),
	}, nil
}

type resetPasswordRequest struct {
	token    string
	password string
}

func parseResetPasswordRequest(ctx *fiber.Ctx) (resetPasswordRequest, error) {
	var err error
	token := ctx.FormValue("token", "")
	if token == "" {
		err = errors.Join(err, errors.New("reset token is missing"))
	}
	password := ctx.FormValue("password", "")
	err = errors.Join(err, validatePassword(password))
	passwordRepeat := ctx.FormValue("password-repeat", "")
	if passwordRepeat != password {
		err = errors.Join(err, errors.New("passwords don't match"))
	}
	if err != nil {
		return resetPasswordRequest{}, err
	}
	return resetPasswordRequest{
		token:    token,
		password: password,
	}, nil
}

func validatePassword(password string) error {
	if password == "" {
		return errors.New("password must not be empty")
	}
	return nil
}

func validateEmail(email string) error {
	if email == "" {
		return errors.New("email must not be empty")
	}
	if !emailRegexp.MatchString(email) {
		return errors.New("email address is not valid")
	}
	return nil
}

func validatePhone(phone string) error {
	if phone == "" {
		return errors.New("phone number must not be empty")
	}
	if !phoneRegexp.MatchString(phone) {
		return errors.New("phone number must be exactly 10 digits")
	}
	return nil
}

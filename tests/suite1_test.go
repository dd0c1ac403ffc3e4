package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	sel "campusevents/tests/selectors"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/stretchr/testify/suite"
)

type TestSuite1 struct {
	suite.Suite
	process *Process
}

var (
	serverConfigPath string
	botConfigPath    string
)

var testDBFiles = []string{
	"test_campusevents.sqlite",
	"test_auth.sqlite",
	"test_bot.sqlite",
}

func init() {
	flag.StringVar(&serverConfigPath, "server-config", "", "path to server configs")
	flag.StringVar(&botConfigPath, "bot-config", "", "path to bot configs")
}

func (s *TestSuite1) SetupSuite() {
	fmt.Println("setupSuite")
	s.Require().NotEmpty(serverConfigPath, "-server-config MUST be set")
	s.Require().NotEmpty(botConfigPath, "-bot-config MUST be set")
	removeTestDBs()
	p := NewProcess(context.Background(), "../bin/server",
		"-server-config", serverConfigPath,
		"-bot-config", botConfigPath)
	s.process = p
	err := p.Start(context.Background())
	if err != nil {
		s.T().Errorf("cant start process: %v", err)
	}

	if err := waitForStartup(time.Second * 5); err != nil {
		s.T().Fatalf("unable to start app: %v", err)
	}
}

func waitForStartup(duration time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), duration)
	defer cancel()

	ticker := time.NewTicker(time.Second / 2)
	for {
		select {
		case <-ticker.C:
			r, _ := http.Get("http://0.0.0.0:3000/")
			if r != nil && r.StatusCode == http.StatusOK {
				return nil
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (s *TestSuite1) TearDownSuite() {
	fmt.Println("teardown Suite1")
	exitCode, err := s.process.Stop()
	if err != nil {
		s.T().Logf("cant stop process: %v", err)
	}
	removeTestDBs()
	s.T().Logf("process finished with code %d", exitCode)
}

func removeTestDBs() {
	for _, f := range testDBFiles {
		_ = os.Remove(f)
	}
}

func (s *TestSuite1) TestHandlers() {
	fmt.Println("test handlers")
	defer fmt.Println("test finished")

	ctx, cancelTimeout := context.WithTimeout(context.Background(), time.Second*10)
	defer cancelTimeout()

	ctx, cancel := chromedp.NewContext(ctx)
	defer cancel()
	var logo string
	err := chromedp.Run(ctx,
		s.CheckGuestAccessDenied(`http://0.0.0.0:3000/api/my-registrations`),
		s.CheckGuestAccessDenied(`http://0.0.0.0:3000/api/events/new`),
		s.CheckGuestAccessDenied(`http://0.0.0.0:3000/api/registrations`),
		s.CheckGuestAccessDenied(`http://0.0.0.0:3000/api/notifications`),
		s.CheckGuestAccessGranted(`http://0.0.0.0:3000/`),
		s.CheckGuestAccessGranted(`http://0.0.0.0:3000/api`),
		s.CheckGuestAccessGranted(`http://0.0.0.0:3000/api/events`),
		s.CheckGuestAccessGranted(`http://0.0.0.0:3000/signin`),
		s.CheckGuestAccessGranted(`http://0.0.0.0:3000/signout`),
		s.CheckGuestAccessGranted(`http://0.0.0.0:3000/signup`),
		s.CheckGuestAccessGranted(`http://0.0.0.0:3000/forgot-password`),
		chromedp.Navigate(`http://0.0.0.0:3000/`),
		chromedp.Text(sel.Logo, &logo),
		chromedp.ActionFunc(func(ctx context.Context) error {
			if logo != "Campus Events" {
				err := errors.New("invalid logo text: " + logo)
				screenShot, errS := page.CaptureScreenshot().Do(ctx)
				if errS != nil {
					return errors.Join(errS, err)
				}
				if errW := os.WriteFile("invalid_logo.png", screenShot, 0o644); errW != nil {
					return errors.Join(errW, err)
				}
				return err
			}
			return nil
		}),
	)

	if err != nil {
		s.T().Fatalf(err.Error())
	}
	s.Equal("Campus Events", logo)
}

// TestWorkflow drives the happy path end to end: the root admin
// creates an event, a fresh student signs up and registers for it.
func (s *TestSuite1) TestWorkflow() {
	fmt.Println("test workflow")
	defer fmt.Println("test finished")

	ctx, cancelTimeout := context.WithTimeout(context.Background(), time.Second*30)
	defer cancelTimeout()

	ctx, cancel := chromedp.NewContext(ctx)
	defer cancel()

	eventDate := time.Now().AddDate(0, 0, 7)
	var rowTitle string
	var regStatus string
	err := chromedp.Run(ctx,
		// Admin creates an event.
		chromedp.Navigate(`http://0.0.0.0:3000/signin`),
		chromedp.WaitVisible(sel.SignInFormSubmit),
		chromedp.SendKeys(sel.SignInFormEmail, "root@localhost"),
		chromedp.SendKeys(sel.SignInFormPass, "root-test-pass"),
		chromedp.Click(sel.SignInFormSubmit),
		chromedp.WaitVisible(sel.Logo),
		chromedp.Navigate(`http://0.0.0.0:3000/api/events/new`),
		chromedp.WaitVisible(sel.EventFormSubmit),
		chromedp.SendKeys(sel.EventFormTitle, "Tech Talk"),
		chromedp.SendKeys(sel.EventFormDate, eventDate.Format("2006-01-02")),
		chromedp.SendKeys(sel.EventFormTime, "18:00"),
		chromedp.SendKeys(sel.EventFormLocation, "Main Hall"),
		chromedp.Click(sel.EventFormSubmit),
		chromedp.WaitVisible(sel.EventListRow),
		chromedp.Text(sel.EventListRowTitle, &rowTitle),
		chromedp.Navigate(`http://0.0.0.0:3000/signout`),

		// A student signs up and registers.
		chromedp.Navigate(`http://0.0.0.0:3000/signup`),
		chromedp.WaitVisible(sel.SignUpFormSubmit),
		chromedp.SendKeys(sel.SignUpFormName, "Alice Smith"),
		chromedp.SendKeys(sel.SignUpFormEmail, "alice@example.com"),
		chromedp.SendKeys(sel.SignUpFormPass, "secret1"),
		chromedp.SendKeys(sel.SignUpFormPassRepeat, "secret1"),
		chromedp.Click(sel.SignUpFormSubmit),
		chromedp.WaitVisible(sel.SignInFormSubmit),
		chromedp.SendKeys(sel.SignInFormEmail, "alice@example.com"),
		chromedp.SendKeys(sel.SignInFormPass, "secret1"),
		chromedp.Click(sel.SignInFormSubmit),
		chromedp.WaitVisible(sel.Logo),
		chromedp.Navigate(`http://0.0.0.0:3000/api/events`),
		chromedp.WaitVisible(sel.EventListRow),
		chromedp.Click(sel.EventListRow+` a`),
		chromedp.WaitVisible(sel.RegisterFormSubmit),
		chromedp.SendKeys(sel.RegisterFormPhone, "5551234567"),
		chromedp.Click(sel.RegisterFormSubmit),
		chromedp.WaitVisible(sel.RegistrationRow),
		chromedp.Text(sel.RegistrationRowStatus, &regStatus),
	)

	if err != nil {
		s.T().Fatalf(err.Error())
	}
	s.Equal("Tech Talk", rowTitle)
	s.Equal("active", regStatus)
}

func (s *TestSuite1) CheckGuestAccessDenied(path string) chromedp.Tasks {
	return []chromedp.Action{
		chromedp.ActionFunc(func(ctx context.Context) error {
			resp, err := chromedp.RunResponse(ctx,
				chromedp.Navigate(path))
			if err != nil {
				return err
			}
			if resp.Status != http.StatusForbidden {
				s.T().Errorf("guest access to %s must be denied (status 403), server responded with %d", path, resp.Status)
			}
			return nil
		}),
	}
}

func (s *TestSuite1) CheckGuestAccessGranted(path string) chromedp.Tasks {
	return []chromedp.Action{
		chromedp.ActionFunc(func(ctx context.Context) error {
			resp, err := chromedp.RunResponse(ctx,
				chromedp.Navigate(path))
			if err != nil {
				return err
			}
			if resp.Status != http.StatusOK {
				s.T().Errorf("guest access to %s must be allowed (status 200), server responded with %d", path, resp.Status)
			}
			return nil
		}),
	}
}

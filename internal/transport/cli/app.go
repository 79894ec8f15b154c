// Package cli renders the two screens of the booking client on a terminal:
// provider selection and the booking dashboard. Screens are thin loops over
// the services; every state transition triggers its fetches synchronously,
// so a superseded response can never overwrite a newer selection.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"

	"agenda/internal/service"
)

type App struct {
	services *service.Services
	logger   *zap.Logger
	in       *bufio.Scanner
	out      io.Writer
	now      func() time.Time
}

func NewApp(services *service.Services, logger *zap.Logger, in io.Reader, out io.Writer, now func() time.Time) *App {
	if now == nil {
		now = time.Now
	}
	return &App{
		services: services,
		logger:   logger,
		in:       bufio.NewScanner(in),
		out:      out,
		now:      now,
	}
}

// Run drives home → dashboard → back until the user leaves or signs out.
func (a *App) Run(ctx context.Context) error {
	for {
		providerID, action := a.homeScreen(ctx)
		switch action {
		case actionQuit:
			return nil
		case actionSignOut:
			a.services.Auth.SignOut()
			fmt.Fprintln(a.out, "Sessão encerrada. Até logo!")
			return nil
		case actionOpenDashboard:
			a.dashboardScreen(ctx, providerID)
		}
	}
}

type homeAction int

const (
	actionQuit homeAction = iota
	actionSignOut
	actionOpenDashboard
)

func (a *App) readLine(prompt string) (string, bool) {
	fmt.Fprint(a.out, prompt)
	if !a.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(a.in.Text()), true
}

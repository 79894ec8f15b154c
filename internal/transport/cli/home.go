package cli

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"agenda/internal/domain"
)

// homeScreen lists the providers and returns the one picked by the user.
func (a *App) homeScreen(ctx context.Context) (string, homeAction) {
	now := a.now()

	fmt.Fprintln(a.out)
	if user := a.services.Auth.CurrentUser(); user.Name != "" {
		fmt.Fprintf(a.out, "Bem-vindo, %s\n", user.Name)
	}
	fmt.Fprintf(a.out, "Hoje | %s | %s\n\n", dateLine(now), weekdayName(now))
	fmt.Fprintln(a.out, "Prestadores de serviços")

	providers, err := a.services.Provider.List(ctx)
	if err != nil {
		a.logger.Warn("falha ao carregar a lista de prestadores", zap.Error(err))
		fmt.Fprintf(a.out, "  %v\n", err)
	}
	for i, provider := range providers {
		fmt.Fprintf(a.out, "  [%d] %s — %s\n", i+1, provider.Name, provider.Phone)
	}

	for {
		input, ok := a.readLine("\nEscolha um prestador (número), [r]ecarregar, [s]air da conta ou [q] para fechar: ")
		if !ok {
			return "", actionQuit
		}

		switch input {
		case "q":
			return "", actionQuit
		case "s":
			return "", actionSignOut
		case "r":
			return a.homeScreen(ctx)
		default:
			if id, found := pickProvider(providers, input); found {
				return id, actionOpenDashboard
			}
			fmt.Fprintln(a.out, "Opção inválida.")
		}
	}
}

func pickProvider(providers []domain.Provider, input string) (string, bool) {
	index, err := strconv.Atoi(input)
	if err != nil || index < 1 || index > len(providers) {
		return "", false
	}
	return providers[index-1].ID, true
}

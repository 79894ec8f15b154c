package cli

import (
	"fmt"
	"time"
)

var ptMonths = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

var ptWeekdays = [...]string{
	"domingo", "segunda-feira", "terça-feira", "quarta-feira",
	"quinta-feira", "sexta-feira", "sábado",
}

func dateLine(t time.Time) string {
	return fmt.Sprintf("Dia %02d de %s", t.Day(), ptMonths[t.Month()-1])
}

func weekdayName(t time.Time) string {
	return ptWeekdays[t.Weekday()]
}

func monthLabel(t time.Time) string {
	return fmt.Sprintf("%s de %d", ptMonths[t.Month()-1], t.Year())
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

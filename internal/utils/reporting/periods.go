// Package reporting holds the period arithmetic used by the reports module.
package reporting

import (
	"fmt"
	"time"

	"github.com/fundacion-admin/backend/internal/apperrors"
	"github.com/fundacion-admin/backend/internal/core/domain"
)

var monthNames = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// MonthName returns the lowercase Spanish name of a month.
func MonthName(m time.Month) string {
	return monthNames[int(m)-1]
}

// ResolveWindow turns the report filters into a concrete [from, to] window.
// Periodo ANIO spans the whole calendar year; RANGO uses the caller's dates,
// extending fin to the end of its day.
func ResolveWindow(f domain.ReportFilters) (time.Time, time.Time, error) {
	switch f.Periodo {
	case domain.PeriodoAnio:
		if f.Anio == 0 {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: anio is required for periodo ANIO", apperrors.ErrValidation)
		}
		from := time.Date(f.Anio, time.January, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(f.Anio, time.December, 31, 23, 59, 59, 999999999, time.UTC)
		return from, to, nil
	case domain.PeriodoRango:
		if f.FechaInicio.IsZero() || f.FechaFin.IsZero() {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: fechaInicio and fechaFin are required for periodo RANGO", apperrors.ErrValidation)
		}
		if f.FechaFin.Before(f.FechaInicio) {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: fechaFin precedes fechaInicio", apperrors.ErrValidation)
		}
		from := f.FechaInicio
		to := time.Date(f.FechaFin.Year(), f.FechaFin.Month(), f.FechaFin.Day(), 23, 59, 59, 999999999, f.FechaFin.Location())
		return from, to, nil
	default:
		return time.Time{}, time.Time{}, fmt.Errorf("%w: unknown periodo %q", apperrors.ErrValidation, f.Periodo)
	}
}

// GroupLabel buckets a row timestamp according to the report granularity:
// month name for Mensual, T1..T4 for Trimestral, C1..C3 for Cuatrimestral,
// S1/S2 for Semestral and the four-digit year for Anual.
func GroupLabel(tipo domain.TipoReporte, t time.Time) (string, error) {
	switch tipo {
	case domain.ReporteMensual:
		return MonthName(t.Month()), nil
	case domain.ReporteTrimestral:
		return fmt.Sprintf("T%d", (int(t.Month())-1)/3+1), nil
	case domain.ReporteCuatrimestre:
		return fmt.Sprintf("C%d", (int(t.Month())-1)/4+1), nil
	case domain.ReporteSemestral:
		return fmt.Sprintf("S%d", (int(t.Month())-1)/6+1), nil
	case domain.ReporteAnual:
		return fmt.Sprintf("%d", t.Year()), nil
	default:
		return "", fmt.Errorf("%w: unknown tipoReporte %q", apperrors.ErrValidation, tipo)
	}
}

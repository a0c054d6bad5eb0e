package reporting

import (
	"testing"
	"time"

	"github.com/fundacion-admin/backend/internal/apperrors"
	"github.com/fundacion-admin/backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveWindowAnio(t *testing.T) {
	from, to, err := ResolveWindow(domain.ReportFilters{Periodo: domain.PeriodoAnio, Anio: 2024})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, 2024, to.Year())
	assert.Equal(t, time.December, to.Month())
	assert.Equal(t, 31, to.Day())
}

func TestResolveWindowAnioMissingYear(t *testing.T) {
	_, _, err := ResolveWindow(domain.ReportFilters{Periodo: domain.PeriodoAnio})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestResolveWindowRango(t *testing.T) {
	inicio := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	fin := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	from, to, err := ResolveWindow(domain.ReportFilters{
		Periodo:     domain.PeriodoRango,
		FechaInicio: inicio,
		FechaFin:    fin,
	})
	require.NoError(t, err)
	assert.Equal(t, inicio, from)
	assert.Equal(t, 15, to.Day())
	assert.Equal(t, 23, to.Hour())
}

func TestResolveWindowRangoInverted(t *testing.T) {
	_, _, err := ResolveWindow(domain.ReportFilters{
		Periodo:     domain.PeriodoRango,
		FechaInicio: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		FechaFin:    time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestGroupLabel(t *testing.T) {
	march := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	august := time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		tipo  domain.TipoReporte
		at    time.Time
		label string
	}{
		{domain.ReporteMensual, march, "marzo"},
		{domain.ReporteMensual, august, "agosto"},
		{domain.ReporteTrimestral, march, "T1"},
		{domain.ReporteTrimestral, august, "T3"},
		{domain.ReporteCuatrimestre, march, "C1"},
		{domain.ReporteCuatrimestre, august, "C2"},
		{domain.ReporteSemestral, march, "S1"},
		{domain.ReporteSemestral, august, "S2"},
		{domain.ReporteAnual, march, "2024"},
	}
	for _, tc := range cases {
		label, err := GroupLabel(tc.tipo, tc.at)
		require.NoError(t, err)
		assert.Equal(t, tc.label, label, "tipo=%s at=%s", tc.tipo, tc.at)
	}
}

func TestGroupLabelUnknownTipo(t *testing.T) {
	_, err := GroupLabel(domain.TipoReporte("Decenal"), time.Now())
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

package csvio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindHeader(t *testing.T) {
	rows := [][]string{
		{"Universidad", ""},
		{},
		{" AULA ", "Inicio"},
		{"Aula", "Inicio"},
	}
	i, err := FindHeader(rows, "aula")
	require.NoError(t, err)
	assert.Equal(t, 2, i)

	_, err = FindHeader(rows[:2], "aula")
	assert.ErrorIs(t, err, ErrHeaderNotFound)
}

func TestResolveColumns(t *testing.T) {
	cols, err := ResolveColumns([]string{"Pabellón", "Aula", "Materia", "Hora Inicio", "Hora Fin"}, DefaultKeywords)
	require.NoError(t, err)
	assert.Equal(t, Columns{Room: 1, Start: 3, End: 4, Pavilion: 0}, cols)
	assert.Equal(t, 4, cols.Max())
}

func TestResolveColumnsFirstMatchWins(t *testing.T) {
	// "Fin" also matches "Final", the first matching cell is kept
	cols, err := ResolveColumns([]string{"Aula", "Examen final", "Inicio", "Fin", "Pab"}, DefaultKeywords)
	require.NoError(t, err)
	assert.Equal(t, 1, cols.End)
}

func TestResolveColumnsMissing(t *testing.T) {
	for _, kw := range []string{"aula", "inicio", "fin", "pab"} {
		header := []string{}
		for _, h := range []string{"aula", "inicio", "fin", "pab"} {
			if h != kw {
				header = append(header, h)
			}
		}
		_, err := ResolveColumns(header, DefaultKeywords)
		require.ErrorIs(t, err, ErrColumnNotFound, kw)
		assert.ErrorContains(t, err, kw)
	}
}

func TestColumnsExtract(t *testing.T) {
	cols := Columns{Room: 1, Start: 2, End: 3, Pavilion: 0}
	r, ok := cols.Extract([]string{" 0 ", " 1105", "10:00 ", "12:00"})
	require.True(t, ok)
	assert.Equal(t, "0", r.Pavilion)
	assert.Equal(t, "1105", r.Room)
	assert.Equal(t, "10:00", r.Start)
	assert.Equal(t, "12:00", r.End)

	_, ok = cols.Extract([]string{"0", "1105", "10:00"})
	assert.False(t, ok)
}

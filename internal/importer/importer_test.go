package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"troop_cookies/internal/models"
)

func TestParseMatchesHeadersByLabelAndCode(t *testing.T) {
	csvText := "Scout Name,Thin Mints,Samoas,ADVF,Mystery Flavor\n" +
		"Maya Lopez,24,12,6,99\n" +
		"Harper Quinn,0,3,,1\n"

	report, err := Parse(csvText)
	require.NoError(t, err)

	// The unrecognized column is reported, not silently dropped.
	require.Len(t, report.Errors, 1)
	assert.Contains(t, report.Errors[0], "Mystery Flavor")

	assert.ElementsMatch(t, []Cell{
		{ScoutName: "Maya Lopez", CookieType: "TMint", Quantity: 24},
		{ScoutName: "Maya Lopez", CookieType: "Sam", Quantity: 12},
		{ScoutName: "Maya Lopez", CookieType: "Advf", Quantity: 6},
		{ScoutName: "Harper Quinn", CookieType: "Sam", Quantity: 3},
	}, report.Cells)
}

func TestParseFallsBackToFirstColumn(t *testing.T) {
	csvText := "Kid,Trefoils\nMaya,5\n"
	report, err := Parse(csvText)
	require.NoError(t, err)
	require.Len(t, report.Cells, 1)
	assert.Equal(t, "Maya", report.Cells[0].ScoutName)
	assert.Equal(t, "Tre", report.Cells[0].CookieType)
}

func TestParseReportsUnusableRows(t *testing.T) {
	csvText := "Name,Tagalongs\n,4\nMaya,8\n"
	report, err := Parse(csvText)
	require.NoError(t, err)
	assert.Len(t, report.Cells, 1)
	require.Len(t, report.Errors, 1)
	assert.Contains(t, report.Errors[0], "missing scout name")
}

func TestParseNoCookieColumns(t *testing.T) {
	report, err := Parse("Name,Shoe Size\nMaya,4\n")
	require.NoError(t, err)
	assert.Empty(t, report.Cells)
	require.Len(t, report.Errors, 2)
	assert.Contains(t, report.Errors[0], "Shoe Size")
	assert.Contains(t, report.Errors[1], "no cookie columns")
}

func TestParseEmptyReport(t *testing.T) {
	_, err := Parse("Name,Thin Mints\n")
	assert.Error(t, err)
}

func TestMatchScout(t *testing.T) {
	users := []models.User{
		{ID: 1, Name: "Maya Lopez", Username: "mayal"},
		{ID: 2, Name: "Harper Quinn", Username: "harperq"},
	}

	assert.Equal(t, int32(1), MatchScout(users, "Maya Lopez").ID)
	assert.Equal(t, int32(1), MatchScout(users, "maya lopez").ID)
	assert.Equal(t, int32(1), MatchScout(users, "mayal").ID)
	assert.Equal(t, int32(2), MatchScout(users, "Harper").ID)
	assert.Nil(t, MatchScout(users, "Rosie"))
	assert.Nil(t, MatchScout(users, ""))
}

package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractExperienceTitleAtCompany(t *testing.T) {
	section := `Senior Software Engineer at Acme Corp
Jan 2020 - Present
- Led the payments platform team
- Reduced p99 latency by 40 percent`

	xps := ExtractExperience(section, section)
	require.Len(t, xps, 1)
	xp := xps[0]

	assert.Equal(t, 1, xp.ID)
	assert.Equal(t, "Senior Software Engineer", xp.JobTitle)
	assert.Equal(t, "Acme Corp", xp.Employer)
	assert.True(t, xp.Current)
	assert.Nil(t, xp.EndDate)
	require.NotNil(t, xp.StartDate)
	assert.Equal(t, 2020, xp.StartDate.Year())
	assert.Equal(t, time.January, xp.StartDate.Month())
	assert.Contains(t, xp.Accomplishments, "payments platform")
	assert.Contains(t, xp.Accomplishments, "p99 latency")
}

func TestExtractExperienceMultipleEntries(t *testing.T) {
	section := `Senior Engineer at Acme Corp
Jan 2020 - Present
- Built internal tools

Software Developer at Initech LLC
Mar 2016 - Dec 2019
- Maintained the billing system`

	xps := ExtractExperience(section, section)
	require.Len(t, xps, 2)
	assert.Equal(t, "Senior Engineer", xps[0].JobTitle)
	assert.Equal(t, "Acme Corp", xps[0].Employer)
	assert.Equal(t, "Software Developer", xps[1].JobTitle)
	assert.Equal(t, "Initech LLC", xps[1].Employer)
	assert.Equal(t, []int{1, 2}, []int{xps[0].ID, xps[1].ID})

	require.NotNil(t, xps[1].EndDate)
	assert.Equal(t, 2019, xps[1].EndDate.Year())
	assert.False(t, xps[1].Current)
}

func TestExtractExperienceCompanyOnFollowingLine(t *testing.T) {
	section := `Staff Engineer
Globex Systems
Feb 2018 - Jun 2021
Austin, TX
- Shipped the ingestion pipeline`

	xps := ExtractExperience(section, section)
	require.Len(t, xps, 1)
	assert.Equal(t, "Staff Engineer", xps[0].JobTitle)
	assert.Equal(t, "Globex Systems", xps[0].Employer)
	assert.Equal(t, "Austin, TX", xps[0].Location)
}

func TestExtractExperienceRemote(t *testing.T) {
	section := `Backend Developer at Acme Corp
Jan 2021 - Present
Remote
- Owned the auth service`

	xps := ExtractExperience(section, section)
	require.Len(t, xps, 1)
	assert.True(t, xps[0].Remote)
	assert.Empty(t, xps[0].Location)
}

func TestExtractExperienceAlwaysReturnsAnEntry(t *testing.T) {
	xps := ExtractExperience("", "")
	require.Len(t, xps, 1)
	assert.True(t, xps[0].IsEmpty())
	assert.Equal(t, 1, xps[0].ID)
}

func TestExtractExperienceFullTextFallback(t *testing.T) {
	full := `Jane Doe

Project Manager at Hooli Inc
2015 - 2018
- Coordinated three release trains`

	xps := ExtractExperience(full, "")
	require.Len(t, xps, 1)
	assert.Equal(t, "Project Manager", xps[0].JobTitle)
	assert.Equal(t, "Hooli Inc", xps[0].Employer)
}

func TestExtractExperienceTitleOutsideKeywordList(t *testing.T) {
	// "Title at Company" shape carries the entry even when no known
	// job-title word appears.
	section := `Accountant at Deloitte
Jan 2020 - Present
- Prepared quarterly audits
- Reconciled ledgers`

	xps := ExtractExperience(section, section)
	require.Len(t, xps, 1)
	assert.Equal(t, "Accountant", xps[0].JobTitle)
	assert.Equal(t, "Deloitte", xps[0].Employer)
	assert.True(t, xps[0].Current)
	assert.Contains(t, xps[0].Accomplishments, "quarterly audits")
}

func TestExtractExperienceStructuralTitle(t *testing.T) {
	section := `Registered Nurse
Jan 2018 - Mar 2022
- Administered medications on two wards`

	xps := ExtractExperience(section, section)
	require.Len(t, xps, 1)
	assert.Equal(t, "Registered Nurse", xps[0].JobTitle)
	require.NotNil(t, xps[0].StartDate)
	assert.Equal(t, 2018, xps[0].StartDate.Year())
	require.NotNil(t, xps[0].EndDate)
	assert.Equal(t, 2022, xps[0].EndDate.Year())
	assert.Contains(t, xps[0].Accomplishments, "medications")
}

func TestExtractExperienceNameLineIsNotAnEntry(t *testing.T) {
	full := `Jane Doe

Accountant at Deloitte
Jan 2020 - Present`

	xps := ExtractExperience(full, "")
	require.Len(t, xps, 1)
	assert.Equal(t, "Accountant", xps[0].JobTitle)
}

func TestExtractExperienceFallbackRanksByScore(t *testing.T) {
	// Bulleted lines never form structured entries; the scored
	// fallback must put the stronger line first regardless of order.
	section := "* engineer side notes\n* senior manager at heart 2019 - 2021"

	xps := ExtractExperience(section, section)
	require.Len(t, xps, 2)
	assert.Contains(t, xps[0].JobTitle, "manager")
	assert.Contains(t, xps[1].JobTitle, "engineer")
}

func TestExtractExperienceFallbackOnFullText(t *testing.T) {
	full := "* staff engineer 2017 - 2020"

	xps := ExtractExperience(full, "")
	require.Len(t, xps, 1)
	assert.False(t, xps[0].IsEmpty())
	require.NotNil(t, xps[0].StartDate)
	assert.Equal(t, 2017, xps[0].StartDate.Year())
}

func TestExtractExperienceCurrentImpliesNoEndDate(t *testing.T) {
	// "Present" plus a stray later year must still leave the end open.
	section := `Data Analyst at Acme Corp
Jun 2019 - Present (promoted in 2021)`

	xps := ExtractExperience(section, section)
	require.Len(t, xps, 1)
	assert.True(t, xps[0].Current)
	assert.Nil(t, xps[0].EndDate)
}

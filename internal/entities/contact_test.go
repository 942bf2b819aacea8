package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const contactBlock = `Jane Doe
jane.doe@example.com | (555) 123-4567
linkedin.com/in/janedoe
San Francisco, CA 94107`

func TestExtractContact(t *testing.T) {
	c := ExtractContact(contactBlock, contactBlock)

	assert.Equal(t, "Jane", c.FirstName)
	assert.Equal(t, "Doe", c.LastName)
	assert.Equal(t, "jane.doe@example.com", c.Email)
	assert.Equal(t, "(555) 123-4567", c.Phone)
	assert.Equal(t, "linkedin.com/in/janedoe", c.LinkedInURL)
	assert.Equal(t, "San Francisco", c.City)
	assert.Equal(t, "CA", c.State)
	assert.Equal(t, "94107", c.ZipCode)
}

func TestExtractContactFullTextFallback(t *testing.T) {
	full := "Header noise\n\nReach me at john_smith@corp.io or 555.987.6543"
	c := ExtractContact(full, "")
	assert.Equal(t, "john_smith@corp.io", c.Email)
	assert.Equal(t, "555.987.6543", c.Phone)
}

func TestExtractContactNameFromEmail(t *testing.T) {
	// No name-shaped line anywhere; the email local part is the last resort.
	full := "contact: jane.doe@example.com"
	c := ExtractContact(full, "")
	assert.Equal(t, "Jane", c.FirstName)
	assert.Equal(t, "Doe", c.LastName)
}

func TestExtractContactNameNotGuessedFromNoisyEmail(t *testing.T) {
	c := ExtractContact("contact: jd1234@example.com", "")
	assert.Empty(t, c.FirstName)
	assert.Empty(t, c.LastName)
}

func TestExtractContactWebsiteExcludesLinkedIn(t *testing.T) {
	full := "https://www.linkedin.com/in/janedoe\nhttps://janedoe.dev/portfolio"
	c := ExtractContact(full, full)
	assert.Contains(t, c.LinkedInURL, "linkedin.com/in/janedoe")
	assert.Equal(t, "https://janedoe.dev/portfolio", c.WebsiteURL)
}

func TestExtractContactLinkedInOnlyHasNoWebsite(t *testing.T) {
	full := "Jane Doe\nhttps://www.linkedin.com/in/janedoe"
	c := ExtractContact(full, full)
	assert.Contains(t, c.LinkedInURL, "linkedin.com/in/janedoe")
	assert.Empty(t, c.WebsiteURL)
}

func TestExtractContactMiddleInitial(t *testing.T) {
	full := "Mary J. Blige-Smith\nmjb@example.com"
	c := ExtractContact(full, full)
	assert.Equal(t, "Mary J.", c.FirstName)
	assert.Equal(t, "Blige-Smith", c.LastName)
}

func TestExtractContactEmpty(t *testing.T) {
	c := ExtractContact("", "")
	assert.Empty(t, c.Email)
	assert.Empty(t, c.FirstName)
	assert.Empty(t, c.City)
}
